// internal/services/report_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/fanwell/fanwell-backend/internal/config"
	"github.com/fanwell/fanwell-backend/internal/database"
	"github.com/fanwell/fanwell-backend/internal/models"
	"github.com/fanwell/fanwell-backend/internal/utils"
)

type ReportService struct {
	db          *gorm.DB
	cfg         *config.ModerationConfig
	directory   *DirectoryService
	credibility *CredibilityService
	limiter     ReportRateLimiter
}

func NewReportService(db *gorm.DB, cfg *config.ModerationConfig, directory *DirectoryService, credibility *CredibilityService, limiter ReportRateLimiter) *ReportService {
	return &ReportService{
		db:          db,
		cfg:         cfg,
		directory:   directory,
		credibility: credibility,
		limiter:     limiter,
	}
}

type CreateReportInput struct {
	ReportType   models.ReportType   `json:"report_type" validate:"required"`
	TargetID     uuid.UUID           `json:"target_id" validate:"required"`
	Reason       models.ReportReason `json:"reason" validate:"required"`
	Description  string              `json:"description" validate:"max=2000"`
	EvidenceURLs []string            `json:"evidence_urls" validate:"max=10"`
}

type ReportQueueFilter struct {
	utils.PaginationParams
	Status     *models.ReportStatus
	ReportType *models.ReportType
	Reason     *models.ReportReason
}

type ReportDetail struct {
	Report models.Report   `json:"report"`
	Target *TargetSnapshot `json:"target"`
}

// CreateReport runs the intake gate: rate limit, target resolution,
// self-report guard, duplicate guard, priority computation, then persists the
// report and bumps the reporter's submission counter in one transaction.
func (s *ReportService) CreateReport(reporterID uuid.UUID, input CreateReportInput) (*models.Report, error) {
	if !input.ReportType.IsValid() || !input.Reason.IsValid() {
		return nil, ErrInvalidReportInput
	}

	window := time.Duration(s.cfg.RateWindowMinutes) * time.Minute
	allowed, _, err := s.limiter.CheckAndConsume(
		fmt.Sprintf("reports:%s", reporterID),
		s.cfg.MaxReportsPerWindow,
		window,
	)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrRateLimited
	}

	ref, err := s.directory.ResolveTarget(input.ReportType, input.TargetID)
	if err != nil {
		return nil, err
	}
	if !ref.Exists {
		return nil, ErrTargetNotFound
	}
	if ref.OwnerUserID != nil && *ref.OwnerUserID == reporterID {
		return nil, ErrSelfReport
	}

	var report *models.Report
	err = database.WithTransaction(s.db, func(tx *gorm.DB) error {
		targetID := input.TargetID
		var existing int64
		dupQuery := tx.Model(&models.Report{}).
			Where("reporter_id = ? AND report_type = ? AND status IN ?",
				reporterID, input.ReportType,
				[]models.ReportStatus{models.ReportStatusPending, models.ReportStatusUnderReview})
		switch input.ReportType {
		case models.ReportTypeContent:
			dupQuery = dupQuery.Where("target_content_id = ?", targetID)
		case models.ReportTypeCreator:
			dupQuery = dupQuery.Where("target_creator_id = ?", targetID)
		case models.ReportTypeMessage:
			dupQuery = dupQuery.Where("target_message_id = ?", targetID)
		case models.ReportTypeUser:
			dupQuery = dupQuery.Where("target_user_id = ?", targetID)
		}
		if err := dupQuery.Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to check for duplicate report: %w", err)
		}
		if existing > 0 {
			return ErrDuplicateReport
		}

		// Priority uses the reporter's standing at this moment; later
		// credibility changes do not reprioritize existing reports.
		var cred *models.ReporterCredibility
		var row models.ReporterCredibility
		if err := tx.First(&row, "user_id = ?", reporterID).Error; err == nil {
			cred = &row
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to fetch reporter credibility: %w", err)
		}

		report = &models.Report{
			ReporterID:   reporterID,
			ReportType:   input.ReportType,
			Reason:       input.Reason,
			Description:  input.Description,
			EvidenceURLs: pq.StringArray(input.EvidenceURLs),
			Priority:     models.ComputePriority(input.Reason, cred),
			Status:       models.ReportStatusPending,
		}

		switch input.ReportType {
		case models.ReportTypeContent:
			report.TargetContentID = &targetID
		case models.ReportTypeCreator:
			report.TargetCreatorID = &targetID
			report.TargetUserID = ref.OwnerUserID
		case models.ReportTypeMessage:
			report.TargetMessageID = &targetID
		case models.ReportTypeUser:
			report.TargetUserID = &targetID
			report.TargetCreatorID = ref.OwnerCreatorID
		}

		if err := tx.Create(report).Error; err != nil {
			// A concurrent submission may win the race past the check above;
			// the partial unique index turns the loser into a duplicate.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateReport
			}
			return fmt.Errorf("failed to create report: %w", err)
		}

		return s.credibility.RecordSubmission(tx, reporterID)
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

// GetReports is the review queue: open reports ordered by priority then
// recency, highest severity and newest first.
func (s *ReportService) GetReports(filter ReportQueueFilter) ([]models.Report, int64, error) {
	query := s.db.Model(&models.Report{}).Preload("Reporter")

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.ReportType != nil {
		query = query.Where("report_type = ?", *filter.ReportType)
	}
	if filter.Reason != nil {
		query = query.Where("reason = ?", *filter.Reason)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reports: %w", err)
	}

	query = query.Order("priority DESC, created_at DESC")
	query = utils.ApplyPagination(query, filter.PaginationParams)

	var reports []models.Report
	if err := query.Find(&reports).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch reports: %w", err)
	}

	return reports, total, nil
}

// GetReportDetail loads one report with its reporter and a live snapshot of
// the target, resolved at read time.
func (s *ReportService) GetReportDetail(reportID uuid.UUID) (*ReportDetail, error) {
	var report models.Report
	if err := s.db.Preload("Reporter").Preload("Reviewer").
		First(&report, "id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to fetch report: %w", err)
	}

	detail := &ReportDetail{Report: report}
	if targetID := report.TargetID(); targetID != nil {
		snapshot, err := s.directory.SnapshotTarget(report.ReportType, *targetID)
		if err != nil {
			return nil, err
		}
		detail.Target = snapshot
	}

	return detail, nil
}

func (s *ReportService) GetReportsByReporter(reporterID uuid.UUID, params utils.PaginationParams) ([]models.Report, int64, error) {
	query := s.db.Model(&models.Report{}).Where("reporter_id = ?", reporterID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reports: %w", err)
	}

	query = query.Order("created_at DESC")
	query = utils.ApplyPagination(query, params)

	var reports []models.Report
	if err := query.Find(&reports).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch reports: %w", err)
	}

	return reports, total, nil
}

type ModerationStats struct {
	PendingReports    int64            `json:"pending_reports"`
	UnderReview       int64            `json:"under_review"`
	ResolvedThisWeek  int64            `json:"resolved_this_week"`
	DismissedThisWeek int64            `json:"dismissed_this_week"`
	ActiveSuspensions int64            `json:"active_suspensions"`
	FlaggedReporters  int64            `json:"flagged_reporters"`
	TrustedReporters  int64            `json:"trusted_reporters"`
	ActionBreakdown   map[string]int64 `json:"action_breakdown"`
}

func (s *ReportService) GetDashboardStats() (*ModerationStats, error) {
	stats := &ModerationStats{ActionBreakdown: make(map[string]int64)}
	weekStart := time.Now().AddDate(0, 0, -7)

	counts := []struct {
		name  string
		dest  *int64
		query *gorm.DB
	}{
		{"pending reports", &stats.PendingReports,
			s.db.Model(&models.Report{}).Where("status = ?", models.ReportStatusPending)},
		{"reports under review", &stats.UnderReview,
			s.db.Model(&models.Report{}).Where("status = ?", models.ReportStatusUnderReview)},
		{"resolved reports", &stats.ResolvedThisWeek,
			s.db.Model(&models.Report{}).Where("status = ? AND reviewed_at >= ?", models.ReportStatusResolved, weekStart)},
		{"dismissed reports", &stats.DismissedThisWeek,
			s.db.Model(&models.Report{}).Where("status = ? AND reviewed_at >= ?", models.ReportStatusDismissed, weekStart)},
		{"active suspensions", &stats.ActiveSuspensions,
			s.db.Model(&models.AccountSuspension{}).Where("is_active = ?", true)},
		{"flagged reporters", &stats.FlaggedReporters,
			s.db.Model(&models.ReporterCredibility{}).Where("is_flagged = ?", true)},
		{"trusted reporters", &stats.TrustedReporters,
			s.db.Model(&models.ReporterCredibility{}).Where("is_trusted = ?", true)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.name, err)
		}
	}

	rows, err := s.db.Model(&models.Report{}).
		Select("action, COUNT(*) as count").
		Where("action IS NOT NULL").
		Group("action").Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate report actions: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var action string
		var count int64
		if err := rows.Scan(&action, &count); err != nil {
			return nil, fmt.Errorf("failed to scan action breakdown: %w", err)
		}
		stats.ActionBreakdown[action] = count
	}

	return stats, nil
}
