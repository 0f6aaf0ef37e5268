package slots

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	accountRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/account"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-ParkingService/internal/service/slots/models"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type fakeSlotRepo struct {
	slots     map[int]*domain.ParkingSlot
	listErr   error
	createErr error
}

func newFakeSlotRepo(numbers ...int) *fakeSlotRepo {
	r := &fakeSlotRepo{slots: map[int]*domain.ParkingSlot{}}
	for _, n := range numbers {
		r.slots[n] = &domain.ParkingSlot{ID: fmt.Sprintf("slot-%d", n), SlotNumber: n}
	}
	return r
}

func (r *fakeSlotRepo) sorted(filter func(*domain.ParkingSlot) bool) []*domain.ParkingSlot {
	result := make([]*domain.ParkingSlot, 0)
	for _, s := range r.slots {
		if filter(s) {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SlotNumber < result[j].SlotNumber })
	return result
}

func (r *fakeSlotRepo) List(context.Context) ([]*domain.ParkingSlot, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.sorted(func(*domain.ParkingSlot) bool { return true }), nil
}

func (r *fakeSlotRepo) ListAvailable(context.Context) ([]*domain.ParkingSlot, error) {
	return r.sorted(func(s *domain.ParkingSlot) bool { return !s.Occupied() }), nil
}

func (r *fakeSlotRepo) Count(context.Context) (int, error) {
	return len(r.slots), nil
}

func (r *fakeSlotRepo) Create(_ context.Context, slot *domain.ParkingSlot) (*domain.ParkingSlot, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, ok := r.slots[slot.SlotNumber]; ok {
		return nil, fmt.Errorf("%w: slot_number=%d", slotRepo.ErrDuplicateSlotNumber, slot.SlotNumber)
	}
	r.slots[slot.SlotNumber] = slot
	return slot, nil
}

func (r *fakeSlotRepo) ReleaseAll(context.Context) (int64, error) {
	var released int64
	for _, s := range r.slots {
		if s.Occupied() {
			s.Release()
			released++
		}
	}
	return released, nil
}

type fakeAccounts map[string]*domain.Profile

func (f fakeAccounts) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	p, ok := f[id]
	if !ok {
		return nil, accountRepo.ErrAccountNotFound
	}
	return p, nil
}

type inlineTx struct{ calls int }

func (tx *inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

func newService(repo *fakeSlotRepo) (*Service, *inlineTx) {
	accounts := fakeAccounts{
		"admin": {ID: "admin", Role: domain.RoleAdmin},
		"user":  {ID: "user", Role: domain.RoleUser},
	}
	tx := &inlineTx{}
	return NewService(repo, accounts, tx, logger.NewNop()), tx
}

func occupy(s *domain.ParkingSlot, plate string) {
	s.Occupancy = &domain.Occupancy{VehiclePlate: plate, VehicleType: "car", EntryTime: "9:00 AM", OwnerID: "user"}
}

func TestList_OrderedBySlotNumber(t *testing.T) {
	repo := newFakeSlotRepo(3, 1, 2)
	occupy(repo.slots[2], "XYZ999")
	svc, _ := newService(repo)

	resp, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{resp.Slots[0].SlotNumber, resp.Slots[1].SlotNumber, resp.Slots[2].SlotNumber})
	assert.Equal(t, "occupied", resp.Slots[1].State)
	require.NotNil(t, resp.Slots[1].VehiclePlate)
	assert.Equal(t, "XYZ999", *resp.Slots[1].VehiclePlate)
	assert.Nil(t, resp.Slots[0].VehiclePlate)
}

func TestList_BackendFailure(t *testing.T) {
	repo := newFakeSlotRepo()
	repo.listErr = errors.New("connection refused")
	svc, _ := newService(repo)

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestListAvailable(t *testing.T) {
	repo := newFakeSlotRepo(1, 2, 3)
	occupy(repo.slots[1], "AAA")
	svc, _ := newService(repo)

	resp, err := svc.ListAvailable(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Slots, 2)
	assert.Equal(t, 2, resp.Slots[0].SlotNumber)
	assert.Equal(t, 3, resp.Slots[1].SlotNumber)
}

func TestAdd(t *testing.T) {
	repo := newFakeSlotRepo(1)
	svc, _ := newService(repo)

	resp, err := svc.Add(context.Background(), &models.AddSlotRequest{UserID: "admin", SlotNumber: 7})
	require.NoError(t, err)
	assert.Equal(t, 7, resp.SlotNumber)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "available", resp.State)

	_, err = svc.Add(context.Background(), &models.AddSlotRequest{UserID: "admin", SlotNumber: 1})
	assert.ErrorIs(t, err, ErrSlotNumberTaken)

	_, err = svc.Add(context.Background(), &models.AddSlotRequest{UserID: "admin", SlotNumber: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Add(context.Background(), &models.AddSlotRequest{UserID: "user", SlotNumber: 9})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Add(context.Background(), &models.AddSlotRequest{UserID: "ghost", SlotNumber: 9})
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestReset(t *testing.T) {
	repo := newFakeSlotRepo(1, 2, 3)
	occupy(repo.slots[1], "AAA")
	occupy(repo.slots[3], "CCC")
	svc, _ := newService(repo)

	_, err := svc.Reset(context.Background(), "user")
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.True(t, repo.slots[1].Occupied())

	resp, err := svc.Reset(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Released)

	for _, s := range repo.slots {
		assert.False(t, s.Occupied())
	}
}

func TestSeed(t *testing.T) {
	t.Run("creates slots on empty table", func(t *testing.T) {
		repo := newFakeSlotRepo()
		svc, tx := newService(repo)

		created, err := svc.Seed(context.Background(), domain.DefaultInitialSlots)
		require.NoError(t, err)

		assert.Equal(t, 6, created)
		assert.Equal(t, 1, tx.calls)
		for n := 1; n <= 6; n++ {
			require.Contains(t, repo.slots, n)
			assert.False(t, repo.slots[n].Occupied())
		}
	})

	t.Run("skips when slots exist", func(t *testing.T) {
		repo := newFakeSlotRepo(4)
		svc, _ := newService(repo)

		created, err := svc.Seed(context.Background(), 6)
		require.NoError(t, err)
		assert.Equal(t, 0, created)
		assert.Len(t, repo.slots, 1)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := newFakeSlotRepo()
		repo.createErr = errors.New("disk full")
		svc, _ := newService(repo)

		_, err := svc.Seed(context.Background(), 3)
		assert.ErrorIs(t, err, ErrBackendUnavailable)
	})
}
