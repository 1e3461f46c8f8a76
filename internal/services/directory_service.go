// internal/services/directory_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fanwell/fanwell-backend/internal/models"
)

// TargetRef is the directory's answer for a report target: whether it exists
// and which user and creator profile own it.
type TargetRef struct {
	Exists         bool
	OwnerUserID    *uuid.UUID
	OwnerCreatorID *uuid.UUID
}

// TargetSnapshot carries the current state of a report's target, resolved at
// read time so administrators always see what the entity looks like now.
type TargetSnapshot struct {
	Type    models.ReportType      `json:"type"`
	ID      uuid.UUID              `json:"id"`
	Exists  bool                   `json:"exists"`
	Content *models.Content        `json:"content,omitempty"`
	Creator *models.CreatorProfile `json:"creator,omitempty"`
	Message *models.Message        `json:"message,omitempty"`
	User    *models.User           `json:"user,omitempty"`
}

// DirectoryService resolves report targets against the platform directory.
type DirectoryService struct {
	db *gorm.DB
}

func NewDirectoryService(db *gorm.DB) *DirectoryService {
	return &DirectoryService{db: db}
}

func (s *DirectoryService) ResolveTarget(reportType models.ReportType, targetID uuid.UUID) (*TargetRef, error) {
	switch reportType {
	case models.ReportTypeContent:
		var content models.Content
		if err := s.db.Preload("Creator").First(&content, "id = ?", targetID).Error; err != nil {
			return s.missingOrError(err)
		}
		return &TargetRef{
			Exists:         true,
			OwnerUserID:    &content.Creator.UserID,
			OwnerCreatorID: &content.CreatorID,
		}, nil

	case models.ReportTypeCreator:
		var profile models.CreatorProfile
		if err := s.db.First(&profile, "id = ?", targetID).Error; err != nil {
			return s.missingOrError(err)
		}
		return &TargetRef{
			Exists:         true,
			OwnerUserID:    &profile.UserID,
			OwnerCreatorID: &profile.ID,
		}, nil

	case models.ReportTypeMessage:
		var message models.Message
		if err := s.db.First(&message, "id = ?", targetID).Error; err != nil {
			return s.missingOrError(err)
		}
		return &TargetRef{
			Exists:      true,
			OwnerUserID: &message.SenderID,
		}, nil

	case models.ReportTypeUser:
		var user models.User
		if err := s.db.First(&user, "id = ?", targetID).Error; err != nil {
			return s.missingOrError(err)
		}
		ref := &TargetRef{
			Exists:      true,
			OwnerUserID: &user.ID,
		}
		var profile models.CreatorProfile
		if err := s.db.First(&profile, "user_id = ?", user.ID).Error; err == nil {
			ref.OwnerCreatorID = &profile.ID
		}
		return ref, nil
	}

	return nil, fmt.Errorf("unknown report type: %s", reportType)
}

// SnapshotTarget loads the target entity itself for the review detail view.
// A missing entity is not an error; the snapshot reports Exists=false.
func (s *DirectoryService) SnapshotTarget(reportType models.ReportType, targetID uuid.UUID) (*TargetSnapshot, error) {
	snapshot := &TargetSnapshot{Type: reportType, ID: targetID}

	switch reportType {
	case models.ReportTypeContent:
		var content models.Content
		err := s.db.Preload("Creator").First(&content, "id = ?", targetID).Error
		if err == nil {
			snapshot.Exists = true
			snapshot.Content = &content
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to snapshot content: %w", err)
		}

	case models.ReportTypeCreator:
		var profile models.CreatorProfile
		err := s.db.Preload("User").First(&profile, "id = ?", targetID).Error
		if err == nil {
			snapshot.Exists = true
			snapshot.Creator = &profile
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to snapshot creator: %w", err)
		}

	case models.ReportTypeMessage:
		var message models.Message
		err := s.db.Preload("Sender").First(&message, "id = ?", targetID).Error
		if err == nil {
			snapshot.Exists = true
			snapshot.Message = &message
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to snapshot message: %w", err)
		}

	case models.ReportTypeUser:
		var user models.User
		err := s.db.First(&user, "id = ?", targetID).Error
		if err == nil {
			snapshot.Exists = true
			snapshot.User = &user
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to snapshot user: %w", err)
		}
	}

	return snapshot, nil
}

func (s *DirectoryService) missingOrError(err error) (*TargetRef, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &TargetRef{Exists: false}, nil
	}
	return nil, fmt.Errorf("database error: %w", err)
}
