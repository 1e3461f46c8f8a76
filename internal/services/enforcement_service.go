// internal/services/enforcement_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/fanwell/fanwell-backend/internal/database"
	"github.com/fanwell/fanwell-backend/internal/models"
)

// EnforcementService executes an administrator's decision on a report:
// terminal status transition, target side effects, audit trail, and the
// reporter credibility update, all in one transaction.
type EnforcementService struct {
	db           *gorm.DB
	credibility  *CredibilityService
	notification *NotificationService
}

func NewEnforcementService(db *gorm.DB, credibility *CredibilityService, notification *NotificationService) *EnforcementService {
	return &EnforcementService{
		db:           db,
		credibility:  credibility,
		notification: notification,
	}
}

type ReviewReportInput struct {
	Action         models.ReportAction `json:"action" validate:"required"`
	ActionNote     string              `json:"action_note" validate:"max=2000"`
	SuspensionDays *int                `json:"suspension_days" validate:"omitempty,min=1,max=365"`
	IPAddress      string              `json:"-"`
}

// ReviewReport resolves one report exactly once. A second concurrent call on
// the same report observes ErrAlreadyResolved; the status transition is a
// compare-and-set over the non-terminal statuses.
func (s *EnforcementService) ReviewReport(reportID, adminID uuid.UUID, input ReviewReportInput) error {
	if !input.Action.IsValid() {
		return ErrInvalidReportInput
	}

	var report models.Report
	var suspension *models.AccountSuspension
	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.First(&report, "id = ?", reportID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReportNotFound
			}
			return fmt.Errorf("failed to fetch report: %w", err)
		}

		if err := s.precheckReview(&report, input.Action); err != nil {
			return err
		}

		now := time.Now()
		newStatus := models.ReportStatusResolved
		if input.Action == models.ActionDismissed {
			newStatus = models.ReportStatusDismissed
		}

		result := tx.Model(&models.Report{}).
			Where("id = ? AND status IN ?", reportID,
				[]models.ReportStatus{models.ReportStatusPending, models.ReportStatusUnderReview}).
			Updates(map[string]interface{}{
				"status":      newStatus,
				"action":      input.Action,
				"action_note": input.ActionNote,
				"reviewed_by": adminID,
				"reviewed_at": now,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to resolve report: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrAlreadyResolved
		}

		report.Status = newStatus
		action := input.Action
		report.Action = &action
		report.ActionNote = input.ActionNote
		report.ReviewedBy = &adminID
		report.ReviewedAt = &now

		switch input.Action {
		case models.ActionDismissed:
			// No side effect beyond the status change.
		case models.ActionWarningIssued:
			// Advisory only; the warning carries no automated system effect.
		case models.ActionContentRemoved:
			if err := s.removeContent(tx, &report, adminID, input.IPAddress); err != nil {
				return err
			}
		case models.ActionCreatorSuspended:
			created, err := s.suspendCreator(tx, &report, adminID, input.SuspensionDays, input.IPAddress)
			if err != nil {
				return err
			}
			suspension = created
		case models.ActionUserBanned:
			created, err := s.banUser(tx, &report, adminID, input.IPAddress)
			if err != nil {
				return err
			}
			suspension = created
		}

		decisionAudit := models.AuditReportReviewed
		if input.Action == models.ActionDismissed {
			decisionAudit = models.AuditReportDismissed
		}
		if err := s.appendAudit(tx, adminID, decisionAudit, "report", &report.ID, models.JSONB{
			"action":      string(input.Action),
			"action_note": input.ActionNote,
		}, input.IPAddress); err != nil {
			return err
		}

		wasValid := input.Action != models.ActionDismissed
		return s.credibility.RecordResolution(tx, report.ReporterID, wasValid)
	})
	if err != nil {
		return err
	}

	// Post-commit, best effort.
	go s.notification.SendReportResolvedNotification(&report)
	if suspension != nil {
		go func() {
			var user models.User
			if err := s.db.First(&user, "id = ?", suspension.UserID).Error; err != nil {
				logrus.WithError(err).WithField("user_id", suspension.UserID).
					Warn("could not load user for suspension notice")
				return
			}
			s.notification.SendSuspensionNotification(&user, suspension)
		}()
	}

	return nil
}

// precheckReview orders the caller errors: a report already in a terminal
// state is AlreadyResolved regardless of any action-specific validation.
// The compare-and-set below still decides the concurrent case.
func (s *EnforcementService) precheckReview(report *models.Report, action models.ReportAction) error {
	if report.Status.IsTerminal() {
		return ErrAlreadyResolved
	}
	return s.validateSuspensionContext(report, action)
}

// validateSuspensionContext rejects suspension actions on reports whose target
// type can never name a suspendable creator. Reports whose referenced entities
// were deleted after filing still pass; the side effect is skipped later.
func (s *EnforcementService) validateSuspensionContext(report *models.Report, action models.ReportAction) error {
	if action != models.ActionCreatorSuspended {
		return nil
	}
	if report.TargetCreatorID == nil && report.TargetContentID == nil && report.TargetUserID == nil {
		return ErrMissingSuspensionContext
	}
	return nil
}

func (s *EnforcementService) removeContent(tx *gorm.DB, report *models.Report, adminID uuid.UUID, ipAddress string) error {
	if report.TargetContentID == nil {
		return nil
	}

	result := tx.Model(&models.Content{}).
		Where("id = ?", *report.TargetContentID).
		Update("is_published", false)
	if result.Error != nil {
		return fmt.Errorf("failed to unpublish content: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Content was deleted after the report was filed; the report still
		// resolves.
		logrus.WithField("content_id", *report.TargetContentID).
			Warn("content referenced by report no longer exists, skipping removal")
		return nil
	}

	return s.appendAudit(tx, adminID, models.AuditContentRemoved, "content", report.TargetContentID, models.JSONB{
		"report_id": report.ID.String(),
		"reason":    string(report.Reason),
	}, ipAddress)
}

func (s *EnforcementService) suspendCreator(tx *gorm.DB, report *models.Report, adminID uuid.UUID, suspensionDays *int, ipAddress string) (*models.AccountSuspension, error) {
	userID, err := s.resolveSuspendableUser(tx, report)
	if err != nil {
		return nil, err
	}
	if userID == nil {
		logrus.WithField("report_id", report.ID).
			Warn("creator referenced by report no longer resolvable, skipping suspension")
		return nil, nil
	}

	now := time.Now()
	suspension := &models.AccountSuspension{
		UserID:      *userID,
		Type:        models.SuspensionTypePermanent,
		Reason:      string(report.Reason),
		ReportID:    &report.ID,
		SuspendedBy: adminID,
		IsActive:    true,
	}
	if suspensionDays != nil && *suspensionDays > 0 {
		endsAt := now.Add(time.Duration(*suspensionDays) * 24 * time.Hour)
		suspension.Type = models.SuspensionTypeTemporary
		suspension.EndsAt = &endsAt
	}

	if err := tx.Create(suspension).Error; err != nil {
		return nil, fmt.Errorf("failed to create suspension: %w", err)
	}

	if err := tx.Model(&models.User{}).
		Where("id = ?", *userID).
		Update("status", models.UserStatusSuspended).Error; err != nil {
		return nil, fmt.Errorf("failed to mark user suspended: %w", err)
	}

	err = s.appendAudit(tx, adminID, models.AuditAccountSuspended, "user", userID, models.JSONB{
		"report_id": report.ID.String(),
		"type":      string(suspension.Type),
		"ends_at":   suspension.EndsAt,
		"reason":    suspension.Reason,
	}, ipAddress)
	if err != nil {
		return nil, err
	}
	return suspension, nil
}

func (s *EnforcementService) banUser(tx *gorm.DB, report *models.Report, adminID uuid.UUID, ipAddress string) (*models.AccountSuspension, error) {
	userID, err := s.resolveSuspendableUser(tx, report)
	if err != nil {
		return nil, err
	}
	if userID == nil {
		logrus.WithField("report_id", report.ID).
			Warn("user referenced by report no longer resolvable, skipping ban")
		return nil, nil
	}

	suspension := &models.AccountSuspension{
		UserID:      *userID,
		Type:        models.SuspensionTypePermanent,
		Reason:      string(report.Reason),
		ReportID:    &report.ID,
		SuspendedBy: adminID,
		IsActive:    true,
	}

	if err := tx.Create(suspension).Error; err != nil {
		return nil, fmt.Errorf("failed to create suspension: %w", err)
	}

	if err := tx.Model(&models.User{}).
		Where("id = ?", *userID).
		Update("status", models.UserStatusBanned).Error; err != nil {
		return nil, fmt.Errorf("failed to mark user banned: %w", err)
	}

	err = s.appendAudit(tx, adminID, models.AuditAccountBanned, "user", userID, models.JSONB{
		"report_id": report.ID.String(),
		"reason":    suspension.Reason,
	}, ipAddress)
	if err != nil {
		return nil, err
	}
	return suspension, nil
}

// resolveSuspendableUser walks the report's references to the owning user
// account: direct user target, creator profile, content's creator, or the
// message sender.
func (s *EnforcementService) resolveSuspendableUser(tx *gorm.DB, report *models.Report) (*uuid.UUID, error) {
	if report.TargetUserID != nil {
		var user models.User
		err := tx.First(&user, "id = ?", *report.TargetUserID).Error
		if err == nil {
			return &user.ID, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to resolve target user: %w", err)
		}
	}

	if report.TargetCreatorID != nil {
		var profile models.CreatorProfile
		err := tx.First(&profile, "id = ?", *report.TargetCreatorID).Error
		if err == nil {
			return &profile.UserID, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to resolve target creator: %w", err)
		}
	}

	if report.TargetContentID != nil {
		var content models.Content
		err := tx.Preload("Creator").First(&content, "id = ?", *report.TargetContentID).Error
		if err == nil {
			return &content.Creator.UserID, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to resolve content owner: %w", err)
		}
	}

	if report.TargetMessageID != nil {
		var message models.Message
		err := tx.First(&message, "id = ?", *report.TargetMessageID).Error
		if err == nil {
			return &message.SenderID, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to resolve message sender: %w", err)
		}
	}

	return nil, nil
}

func (s *EnforcementService) appendAudit(tx *gorm.DB, adminID uuid.UUID, action, targetType string, targetID *uuid.UUID, details models.JSONB, ipAddress string) error {
	entry := &models.AuditLog{
		AdminID:    adminID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Details:    details,
		IPAddress:  ipAddress,
	}
	if err := tx.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append audit log: %w", err)
	}
	return nil
}

func (s *EnforcementService) GetAuditLogs(filter AuditLogFilter) ([]models.AuditLog, int64, error) {
	query := s.db.Model(&models.AuditLog{}).Preload("Admin")

	if filter.AdminID != nil {
		query = query.Where("admin_id = ?", *filter.AdminID)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.TargetType != "" {
		query = query.Where("target_type = ?", filter.TargetType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	query = query.Order("created_at DESC")
	query = applyAuditPagination(query, filter)

	var logs []models.AuditLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch audit logs: %w", err)
	}

	return logs, total, nil
}

type AuditLogFilter struct {
	AdminID    *uuid.UUID
	Action     string
	TargetType string
	Page       int
	Limit      int
}

func applyAuditPagination(db *gorm.DB, filter AuditLogFilter) *gorm.DB {
	page := filter.Page
	limit := filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}
	return db.Offset((page - 1) * limit).Limit(limit)
}
