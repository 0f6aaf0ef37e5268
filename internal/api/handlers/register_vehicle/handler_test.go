package register_vehicle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	registerVehicle "github.com/m04kA/SMC-ParkingService/internal/usecase/register_vehicle"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got *registerVehicle.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *registerVehicle.Request) (*registerVehicle.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &registerVehicle.Response{
		SlotID:       "slot-1",
		SlotNumber:   req.SlotNumber,
		VehiclePlate: "ABC123",
		VehicleType:  req.VehicleType,
		EntryTime:    types.ClockTime("9:30 AM"),
		EnteredAt:    time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC),
		OwnerID:      req.UserID,
	}, nil
}

func newRequest(slotNumber, body, userID string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/slots/"+slotNumber+"/vehicle", strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"slotNumber": slotNumber})
	if userID != "" {
		r = r.WithContext(middleware.WithUserID(r.Context(), userID))
	}
	return r
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})
	w := httptest.NewRecorder()

	// "aGVsbG8=" - base64("hello")
	h.Handle(w, newRequest("3", `{"vehiclePlate":"abc123","vehicleType":"Sedan","entryTime":"9:30 AM","image":"aGVsbG8="}`, "u1"))

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, 3, uc.got.SlotNumber)
	assert.Equal(t, "u1", uc.got.UserID)
	assert.Equal(t, types.ClockTime("9:30 AM"), uc.got.EntryTime)
	assert.Equal(t, []byte("hello"), uc.got.Image)

	var resp RegisterVehicleResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "slot-1", resp.SlotID)
	assert.Equal(t, "9:30 AM", resp.EntryTime)
}

func TestHandle_Errors(t *testing.T) {
	body := `{"vehiclePlate":"ABC123","vehicleType":"Sedan"}`

	tests := []struct {
		name       string
		slotNumber string
		body       string
		userID     string
		ucErr      error
		wantStatus int
	}{
		{"bad slot number", "x", body, "u1", nil, http.StatusBadRequest},
		{"zero slot number", "0", body, "u1", nil, http.StatusBadRequest},
		{"missing user", "1", body, "", nil, http.StatusUnauthorized},
		{"malformed body", "1", `{"vehiclePlate":`, "u1", nil, http.StatusBadRequest},
		{"invalid input", "1", body, "u1", fmt.Errorf("%w: plate", registerVehicle.ErrInvalidInput), http.StatusBadRequest},
		{"not found", "1", body, "u1", registerVehicle.ErrSlotNotFound, http.StatusNotFound},
		{"occupied", "1", body, "u1", registerVehicle.ErrSlotAlreadyOccupied, http.StatusConflict},
		{"backend", "1", body, "u1", registerVehicle.ErrBackendUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.ucErr}, nopLogger{})
			w := httptest.NewRecorder()

			h.Handle(w, newRequest(tt.slotNumber, tt.body, tt.userID))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
