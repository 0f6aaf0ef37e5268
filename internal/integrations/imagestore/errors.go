package imagestore

import "errors"

var (
	// ErrImageNotFound возвращается, когда фотографии с таким именем нет
	ErrImageNotFound = errors.New("imagestore: image not found")

	// ErrInvalidName возвращается для имени, которое выходит за пределы каталога фотографий
	ErrInvalidName = errors.New("imagestore: invalid image name")

	// ErrInternal возвращается при ошибках обращения к хранилищу
	ErrInternal = errors.New("imagestore: internal error")

	// ErrServiceDegraded возвращается, когда загрузка фотографии не удалась,
	// а регистрация автомобиля продолжается без нее
	ErrServiceDegraded = errors.New("imagestore unavailable: continuing without image")
)
