package images

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	accountRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/account"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/imagestore"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type fakeStore struct {
	images  []domain.StoredImage
	listErr error
}

func (f *fakeStore) List(context.Context) ([]domain.StoredImage, error) {
	return f.images, f.listErr
}

func (f *fakeStore) Delete(_ context.Context, name string) error {
	if name == "" {
		return imagestore.ErrInvalidName
	}
	for i, img := range f.images {
		if img.Name == name {
			f.images = append(f.images[:i], f.images[i+1:]...)
			return nil
		}
	}
	return imagestore.ErrImageNotFound
}

func (f *fakeStore) DeleteAll(context.Context) (int, error) {
	n := len(f.images)
	f.images = nil
	return n, nil
}

type fakeAccounts map[string]*domain.Profile

func (f fakeAccounts) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	p, ok := f[id]
	if !ok {
		return nil, accountRepo.ErrAccountNotFound
	}
	return p, nil
}

func newService(store *fakeStore) *Service {
	accounts := fakeAccounts{
		"admin": {ID: "admin", Role: domain.RoleAdmin},
		"user":  {ID: "user", Role: domain.RoleUser},
	}
	return NewService(store, accounts, logger.NewNop())
}

func sampleStore() *fakeStore {
	return &fakeStore{images: []domain.StoredImage{
		{Name: "B_2.jpg", LicensePlate: "B", SlotNumber: "2", CapturedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
		{Name: "A_1.jpg", LicensePlate: "A", SlotNumber: "1", CapturedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
	}}
}

func TestList(t *testing.T) {
	svc := newService(sampleStore())

	resp, err := svc.List(context.Background(), "admin")
	require.NoError(t, err)
	require.Len(t, resp.Images, 2)
	assert.Equal(t, "B_2.jpg", resp.Images[0].Name)

	_, err = svc.List(context.Background(), "user")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.List(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestList_StoreFailure(t *testing.T) {
	svc := newService(&fakeStore{listErr: errors.New("timeout")})

	_, err := svc.List(context.Background(), "admin")
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestDelete(t *testing.T) {
	store := sampleStore()
	svc := newService(store)

	require.NoError(t, svc.Delete(context.Background(), "admin", "A_1.jpg"))
	assert.Len(t, store.images, 1)

	assert.ErrorIs(t, svc.Delete(context.Background(), "admin", "A_1.jpg"), ErrImageNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), "admin", ""), ErrInvalidInput)
	assert.ErrorIs(t, svc.Delete(context.Background(), "user", "B_2.jpg"), ErrAccessDenied)
	assert.Len(t, store.images, 1)
}

func TestDeleteAll(t *testing.T) {
	store := sampleStore()
	svc := newService(store)

	_, err := svc.DeleteAll(context.Background(), "user")
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.DeleteAll(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Deleted)
	assert.Empty(t, store.images)
}
