package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/service/slots/models"
)

func TestParseAmount(t *testing.T) {
	got, err := parseAmount("rate", "5.25")
	require.NoError(t, err)
	assert.Equal(t, "5.25", got.String())

	_, err = parseAmount("rate", "five")
	assert.ErrorContains(t, err, "--rate")

	_, err = parseAmount("minimum", "0")
	assert.ErrorContains(t, err, "positive")
}

func TestParseBalance(t *testing.T) {
	got, err := parseBalance("0")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	got, err = parseBalance("12.50")
	require.NoError(t, err)
	assert.Equal(t, "12.5", got.String())

	_, err = parseBalance("-1")
	assert.Error(t, err)

	_, err = parseBalance("lots")
	assert.Error(t, err)
}

func TestSetBalanceCmd_RequiresEmailAndAmount(t *testing.T) {
	cmd := newAccountSetBalanceCmd(&env{})

	assert.Error(t, cmd.Args(cmd, []string{"driver@example.com"}))
	assert.NoError(t, cmd.Args(cmd, []string{"driver@example.com", "10"}))
}

func TestPrintSlots(t *testing.T) {
	plate, vtype, entry := "ABC123", "Sedan", "9:30 AM"
	var buf bytes.Buffer

	err := printSlots(&buf, []models.SlotResponse{
		{ID: "a", SlotNumber: 1, State: "available"},
		{ID: "b", SlotNumber: 2, State: "occupied", VehiclePlate: &plate, VehicleType: &vtype, EntryTime: &entry},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "available")
	assert.Contains(t, lines[1], "-")
	assert.Contains(t, lines[2], "ABC123")
	assert.Contains(t, lines[2], "9:30 AM")
}

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd()

	for _, path := range [][]string{
		{"migrate"},
		{"slots", "list"},
		{"slots", "reset"},
		{"pricing", "set"},
		{"account", "deposit"},
		{"account", "set-balance"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}
