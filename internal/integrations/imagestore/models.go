package imagestore

// Ключи пользовательских метаданных объекта (S3 хранит их в нижнем регистре)
const (
	metaLicensePlate = "license-plate"
	metaVehicleType  = "vehicle-type"
	metaSlotNumber   = "slot-number"
	metaTimestamp    = "timestamp"
)

const contentTypeJPEG = "image/jpeg"

// UploadResult результат загрузки фотографии
type UploadResult struct {
	Name string // имя файла внутри каталога
	Key  string // полный ключ объекта
	URL  string
}
