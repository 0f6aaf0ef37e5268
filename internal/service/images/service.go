package images

import (
	"context"
	"errors"
	"fmt"

	accountRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/account"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/imagestore"
	"github.com/m04kA/SMC-ParkingService/internal/service/images/models"
)

// Service журнал фотографий номеров
// Все операции доступны только администратору
type Service struct {
	store       ImageStore
	accountRepo AccountRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса журнала фотографий
func NewService(store ImageStore, accountRepo AccountRepository, logger Logger) *Service {
	return &Service{
		store:       store,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// List возвращает журнал фотографий, новые первыми
func (s *Service) List(ctx context.Context, userID string) (*models.ImageListResponse, error) {
	if err := s.requireAdmin(ctx, userID); err != nil {
		return nil, err
	}

	images, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error("List: image store error: %v", err)
		return nil, fmt.Errorf("%w: List - image store error: %v", ErrBackendUnavailable, err)
	}

	s.logger.Info("List: fetched %d images for user=%s", len(images), userID)
	return models.FromDomainImages(images), nil
}

// Delete удаляет фотографию по имени
func (s *Service) Delete(ctx context.Context, userID, name string) error {
	s.logger.Info("Delete: deleting image name=%s by user=%s", name, userID)

	if err := s.requireAdmin(ctx, userID); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, name); err != nil {
		switch {
		case errors.Is(err, imagestore.ErrImageNotFound):
			s.logger.Warn("Delete: image name=%s not found", name)
			return ErrImageNotFound
		case errors.Is(err, imagestore.ErrInvalidName):
			s.logger.Warn("Delete: invalid image name=%q", name)
			return fmt.Errorf("%w: invalid image name", ErrInvalidInput)
		default:
			s.logger.Error("Delete: image store error for name=%s: %v", name, err)
			return fmt.Errorf("%w: Delete - image store error: %v", ErrBackendUnavailable, err)
		}
	}

	s.logger.Info("Delete: successfully deleted image name=%s", name)
	return nil
}

// DeleteAll очищает журнал фотографий
func (s *Service) DeleteAll(ctx context.Context, userID string) (*models.DeleteAllResponse, error) {
	s.logger.Info("DeleteAll: deleting all images by user=%s", userID)

	if err := s.requireAdmin(ctx, userID); err != nil {
		return nil, err
	}

	deleted, err := s.store.DeleteAll(ctx)
	if err != nil {
		s.logger.Error("DeleteAll: image store error after %d deletions: %v", deleted, err)
		return nil, fmt.Errorf("%w: DeleteAll - image store error: %v", ErrBackendUnavailable, err)
	}

	s.logger.Info("DeleteAll: deleted %d images", deleted)
	return &models.DeleteAllResponse{Deleted: deleted}, nil
}

func (s *Service) requireAdmin(ctx context.Context, userID string) error {
	profile, err := s.accountRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			s.logger.Warn("requireAdmin: account id=%s not found", userID)
			return ErrAccountNotFound
		}
		s.logger.Error("requireAdmin: repository error for account id=%s: %v", userID, err)
		return fmt.Errorf("%w: requireAdmin - repository error: %v", ErrBackendUnavailable, err)
	}

	if !profile.IsAdmin() {
		s.logger.Warn("requireAdmin: user=%s is not an admin", userID)
		return ErrAccessDenied
	}

	return nil
}
