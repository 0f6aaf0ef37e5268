package pricing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	accountRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/account"
	pricingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/pricing"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-ParkingService/internal/service/pricing/models"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

type fakePricingRepo struct {
	cfg     *domain.PricingConfig
	creates int
	getErr  error
}

func (f *fakePricingRepo) Get(_ context.Context, id string) (*domain.PricingConfig, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.cfg == nil || f.cfg.ID != id {
		return nil, pricingRepo.ErrPricingNotFound
	}
	cp := *f.cfg
	return &cp, nil
}

func (f *fakePricingRepo) CreateIfAbsent(_ context.Context, cfg domain.PricingConfig) error {
	f.creates++
	if f.cfg == nil {
		f.cfg = &cfg
	}
	return nil
}

func (f *fakePricingRepo) Update(_ context.Context, cfg domain.PricingConfig) error {
	if f.cfg == nil {
		return pricingRepo.ErrPricingNotFound
	}
	f.cfg = &cfg
	return nil
}

type fakeAccounts map[string]*domain.Profile

func (f fakeAccounts) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	p, ok := f[id]
	if !ok {
		return nil, accountRepo.ErrAccountNotFound
	}
	return p, nil
}

type fakeSlots map[string]*domain.ParkingSlot

func (f fakeSlots) GetByID(_ context.Context, id string) (*domain.ParkingSlot, error) {
	s, ok := f[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	return s, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var now = time.Date(2026, 3, 1, 11, 30, 0, 0, time.UTC)

func defaults() domain.PricingConfig {
	return domain.PricingConfig{
		HourlyRate:    decimal.RequireFromString("5.00"),
		MinimumCharge: decimal.RequireFromString("2.00"),
		Currency:      "USD",
	}
}

func newService(repo *fakePricingRepo, slots fakeSlots) *Service {
	accounts := fakeAccounts{
		"admin": {ID: "admin", Role: domain.RoleAdmin},
		"user":  {ID: "user", Role: domain.RoleUser},
	}
	return NewService(repo, accounts, slots, defaults(), fixedTime{now: now}, logger.NewNop())
}

func TestGet_CreatesDefaultsOnFirstAccess(t *testing.T) {
	repo := &fakePricingRepo{}
	svc := newService(repo, nil)

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "5.00", resp.HourlyRate)
	assert.Equal(t, "2.00", resp.MinimumCharge)
	assert.Equal(t, "$5.00", resp.HourlyRateDisplay)
	assert.Equal(t, "USD", resp.Currency)
	assert.Equal(t, domain.SystemActor, resp.UpdatedBy)
	assert.Equal(t, 1, repo.creates)

	_, err = svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.creates)
}

func TestGet_RepositoryFailure(t *testing.T) {
	svc := newService(&fakePricingRepo{getErr: errors.New("connection reset")}, nil)

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestUpdate(t *testing.T) {
	t.Run("admin updates rate and currency", func(t *testing.T) {
		repo := &fakePricingRepo{}
		svc := newService(repo, nil)

		resp, err := svc.Update(context.Background(), &models.UpdatePricingRequest{
			UserID:        "admin",
			HourlyRate:    decimal.RequireFromString("7.25"),
			MinimumCharge: decimal.RequireFromString("3"),
			Currency:      ptr.Ptr("eur"),
		})
		require.NoError(t, err)

		assert.Equal(t, "7.25", resp.HourlyRate)
		assert.Equal(t, "€3.00", resp.MinimumChargeDisplay)
		assert.Equal(t, "admin", repo.cfg.UpdatedBy)
		assert.Equal(t, "EUR", repo.cfg.Currency)
		assert.Equal(t, now, repo.cfg.UpdatedAt)
	})

	t.Run("non-admin is rejected", func(t *testing.T) {
		svc := newService(&fakePricingRepo{}, nil)

		_, err := svc.Update(context.Background(), &models.UpdatePricingRequest{
			UserID:        "user",
			HourlyRate:    decimal.NewFromInt(1),
			MinimumCharge: decimal.NewFromInt(1),
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown account", func(t *testing.T) {
		svc := newService(&fakePricingRepo{}, nil)

		_, err := svc.Update(context.Background(), &models.UpdatePricingRequest{UserID: "ghost"})
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("non-positive values are rejected", func(t *testing.T) {
		svc := newService(&fakePricingRepo{}, nil)

		_, err := svc.Update(context.Background(), &models.UpdatePricingRequest{
			UserID:        "admin",
			HourlyRate:    decimal.Zero,
			MinimumCharge: decimal.NewFromInt(1),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.Update(context.Background(), &models.UpdatePricingRequest{
			UserID:        "admin",
			HourlyRate:    decimal.NewFromInt(1),
			MinimumCharge: decimal.NewFromInt(-1),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown currency is rejected", func(t *testing.T) {
		svc := newService(&fakePricingRepo{}, nil)

		_, err := svc.Update(context.Background(), &models.UpdatePricingRequest{
			UserID:        "admin",
			HourlyRate:    decimal.NewFromInt(1),
			MinimumCharge: decimal.NewFromInt(1),
			Currency:      ptr.Ptr("XXXX"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestQuote(t *testing.T) {
	slots := fakeSlots{
		"slot-2": {
			ID:         "slot-2",
			SlotNumber: 2,
			Occupancy: &domain.Occupancy{
				VehiclePlate: "XYZ999",
				VehicleType:  "car",
				EntryTime:    "9:00 AM",
				EnteredAt:    time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
				OwnerID:      "user",
			},
		},
		"slot-3": {ID: "slot-3", SlotNumber: 3},
	}
	svc := newService(&fakePricingRepo{}, slots)

	resp, err := svc.Quote(context.Background(), "slot-2")
	require.NoError(t, err)

	assert.Equal(t, "12.50", resp.Fee)
	assert.Equal(t, "$12.50", resp.FeeDisplay)
	assert.Equal(t, "2h 30m", resp.Duration)
	assert.Equal(t, "XYZ999", resp.VehiclePlate)
	assert.NotNil(t, slots["slot-2"].Occupancy)

	_, err = svc.Quote(context.Background(), "slot-3")
	assert.ErrorIs(t, err, ErrSlotNotOccupied)

	_, err = svc.Quote(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSlotNotFound)
}
