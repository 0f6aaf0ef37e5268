package delete_image

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/service/images"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	err     error
	gotName string
}

func (f *fakeService) Delete(_ context.Context, _, name string) error {
	f.gotName = name
	return f.err
}

func TestHandle(t *testing.T) {
	const name = "ABC123_1_2026-10-15T09:30:00Z.jpg"

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"deleted", nil, http.StatusNoContent},
		{"not found", images.ErrImageNotFound, http.StatusNotFound},
		{"invalid", images.ErrInvalidInput, http.StatusBadRequest},
		{"not admin", images.ErrAccessDenied, http.StatusForbidden},
		{"backend", images.ErrBackendUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			r := httptest.NewRequest(http.MethodDelete, "/api/v1/images/x", nil)
			r = mux.SetURLVars(r, map[string]string{"name": name})
			r = r.WithContext(middleware.WithUserID(r.Context(), "admin"))
			w := httptest.NewRecorder()

			NewHandler(svc, nopLogger{}).Handle(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, name, svc.gotName)
		})
	}
}
