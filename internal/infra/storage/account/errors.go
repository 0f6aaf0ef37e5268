package account

import "errors"

var (
	// ErrAccountNotFound возвращается, когда профиль пользователя не найден
	ErrAccountNotFound = errors.New("account.repository: account not found")

	// ErrInsufficientBalance возвращается, когда баланса не хватает для списания
	ErrInsufficientBalance = errors.New("account.repository: insufficient balance")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("account.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("account.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("account.repository: failed to scan row")
)
