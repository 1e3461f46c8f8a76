// internal/services/credibility_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fanwell/fanwell-backend/internal/config"
	"github.com/fanwell/fanwell-backend/internal/models"
)

// CredibilityService owns the per-reporter trust aggregates. Intake bumps the
// submission counter; the enforcement engine folds in review outcomes.
type CredibilityService struct {
	db         *gorm.DB
	thresholds models.CredibilityThresholds
}

func NewCredibilityService(db *gorm.DB, cfg *config.ModerationConfig) *CredibilityService {
	return &CredibilityService{
		db: db,
		thresholds: models.CredibilityThresholds{
			TrustedScore:       cfg.TrustedScore,
			TrustedMinResolved: cfg.TrustedMinResolved,
			FlaggedScore:       cfg.FlaggedScore,
			FlaggedMinFalse:    cfg.FlaggedMinFalse,
		},
	}
}

func (s *CredibilityService) Get(userID uuid.UUID) (*models.ReporterCredibility, error) {
	var cred models.ReporterCredibility
	if err := s.db.First(&cred, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch reporter credibility: %w", err)
	}
	return &cred, nil
}

// RecordSubmission upserts the reporter's row and increments total_reports.
// Runs inside the intake transaction so a failed report insert rolls it back.
func (s *CredibilityService) RecordSubmission(tx *gorm.DB, userID uuid.UUID) error {
	result := tx.Model(&models.ReporterCredibility{}).
		Where("user_id = ?", userID).
		UpdateColumn("total_reports", gorm.Expr("total_reports + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to increment total reports: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	cred := &models.ReporterCredibility{
		UserID:       userID,
		TotalReports: 1,
		Score:        50,
	}
	if err := tx.Create(cred).Error; err != nil {
		// Concurrent first reports from the same user race the create; the
		// loser falls back to incrementing the winner's row.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			retry := tx.Model(&models.ReporterCredibility{}).
				Where("user_id = ?", userID).
				UpdateColumn("total_reports", gorm.Expr("total_reports + 1"))
			if retry.Error != nil {
				return fmt.Errorf("failed to increment total reports: %w", retry.Error)
			}
			return nil
		}
		return fmt.Errorf("failed to create reporter credibility: %w", err)
	}
	return nil
}

// RecordResolution folds one review outcome into the reporter's aggregates.
// The row is locked for the enclosing transaction; a missing row is a no-op
// so a review can always close even if ancillary state is gone.
func (s *CredibilityService) RecordResolution(tx *gorm.DB, userID uuid.UUID, wasValid bool) error {
	var cred models.ReporterCredibility
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&cred, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to lock reporter credibility: %w", err)
	}

	cred.ApplyResolution(wasValid, s.thresholds)

	if err := tx.Save(&cred).Error; err != nil {
		return fmt.Errorf("failed to update reporter credibility: %w", err)
	}
	return nil
}
