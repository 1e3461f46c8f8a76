// internal/services/suspension_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fanwell/fanwell-backend/internal/models"
)

// SuspensionService is the authorization gate's view over suspensions. Expiry
// is lazy: an expired temporary suspension is deactivated the first time the
// gate observes it, so no background sweeper is needed.
type SuspensionService struct {
	db *gorm.DB
}

func NewSuspensionService(db *gorm.DB) *SuspensionService {
	return &SuspensionService{db: db}
}

// CheckAccess returns the suspension currently blocking the user, or nil if
// the user may proceed. Only the most recent active record is honored.
func (s *SuspensionService) CheckAccess(userID uuid.UUID) (*models.AccountSuspension, error) {
	var suspension models.AccountSuspension
	err := s.db.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		First(&suspension).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch suspension: %w", err)
	}

	if suspension.IsExpired(time.Now()) {
		if err := s.expire(&suspension); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return &suspension, nil
}

func (s *SuspensionService) expire(suspension *models.AccountSuspension) error {
	if err := s.db.Model(&models.AccountSuspension{}).
		Where("id = ?", suspension.ID).
		Update("is_active", false).Error; err != nil {
		return fmt.Errorf("failed to deactivate expired suspension: %w", err)
	}

	// Restore the account unless a newer suspension or ban still applies.
	var stillActive int64
	s.db.Model(&models.AccountSuspension{}).
		Where("user_id = ? AND is_active = ?", suspension.UserID, true).
		Count(&stillActive)
	if stillActive == 0 {
		if err := s.db.Model(&models.User{}).
			Where("id = ? AND status = ?", suspension.UserID, models.UserStatusSuspended).
			Update("status", models.UserStatusActive).Error; err != nil {
			return fmt.Errorf("failed to reactivate user: %w", err)
		}
	}

	return nil
}

func (s *SuspensionService) GetHistory(userID uuid.UUID) ([]models.AccountSuspension, error) {
	var suspensions []models.AccountSuspension
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&suspensions).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch suspension history: %w", err)
	}
	return suspensions, nil
}
