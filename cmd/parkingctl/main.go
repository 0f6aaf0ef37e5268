// parkingctl утилита администрирования парковки: схема БД, места, тариф и балансы
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
