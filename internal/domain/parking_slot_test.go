package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParkingSlotState(t *testing.T) {
	slot := &ParkingSlot{ID: "s2", SlotNumber: 2}
	assert.Equal(t, SlotAvailable, slot.State())
	assert.False(t, slot.IsOwnedBy("u1"))

	slot.Occupancy = &Occupancy{VehiclePlate: "XYZ999", VehicleType: "Sedan", EntryTime: "9:00 AM", OwnerID: "u1"}
	assert.Equal(t, SlotOccupied, slot.State())
	assert.True(t, slot.IsOwnedBy("u1"))
	assert.False(t, slot.IsOwnedBy("u2"))

	slot.Release()
	assert.False(t, slot.Occupied())
	assert.Nil(t, slot.Occupancy)
}

func TestOccupancyEntryInstant(t *testing.T) {
	now := time.Date(2025, 10, 15, 11, 30, 0, 0, time.UTC)

	occ := &Occupancy{EntryTime: "9:00 AM"}
	got, err := occ.EntryInstant(now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC), got)

	// Сохраненный абсолютный момент важнее строки: сессия через полночь
	occ.EntryTime = "11:00 PM"
	occ.EnteredAt = time.Date(2025, 10, 14, 23, 0, 0, 0, time.UTC)
	got, err = occ.EntryInstant(now)
	require.NoError(t, err)
	assert.Equal(t, occ.EnteredAt, got)
}

func TestProfileCanAfford(t *testing.T) {
	p := &Profile{Balance: decimal.RequireFromString("12.50")}
	assert.True(t, p.CanAfford(decimal.RequireFromString("12.5")))
	assert.False(t, p.CanAfford(decimal.RequireFromString("12.51")))
	assert.False(t, p.IsAdmin())
}
