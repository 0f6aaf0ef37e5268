package delete_image

import "context"

type ImageService interface {
	Delete(ctx context.Context, userID, name string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
