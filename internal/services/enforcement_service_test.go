// internal/services/enforcement_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/fanwell/fanwell-backend/internal/models"
)

func TestValidateSuspensionContext(t *testing.T) {
	svc := &EnforcementService{}
	creatorID := uuid.New()
	contentID := uuid.New()
	userID := uuid.New()
	messageID := uuid.New()

	tests := []struct {
		name    string
		report  models.Report
		action  models.ReportAction
		wantErr error
	}{
		{
			name:   "suspend creator report",
			report: models.Report{ReportType: models.ReportTypeCreator, TargetCreatorID: &creatorID},
			action: models.ActionCreatorSuspended,
		},
		{
			name:   "suspend via content report",
			report: models.Report{ReportType: models.ReportTypeContent, TargetContentID: &contentID},
			action: models.ActionCreatorSuspended,
		},
		{
			name:   "suspend via user report",
			report: models.Report{ReportType: models.ReportTypeUser, TargetUserID: &userID},
			action: models.ActionCreatorSuspended,
		},
		{
			name:    "suspend with no suspendable reference",
			report:  models.Report{ReportType: models.ReportTypeMessage, TargetMessageID: &messageID},
			action:  models.ActionCreatorSuspended,
			wantErr: ErrMissingSuspensionContext,
		},
		{
			name:   "dismissal never needs context",
			report: models.Report{ReportType: models.ReportTypeMessage, TargetMessageID: &messageID},
			action: models.ActionDismissed,
		},
		{
			name:   "warning never needs context",
			report: models.Report{ReportType: models.ReportTypeMessage, TargetMessageID: &messageID},
			action: models.ActionWarningIssued,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.validateSuspensionContext(&tt.report, tt.action)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPrecheckReviewOrdersErrors(t *testing.T) {
	svc := &EnforcementService{}
	messageID := uuid.New()

	// A terminal report is AlreadyResolved even when the action would also
	// fail context validation.
	resolved := models.Report{
		ReportType:      models.ReportTypeMessage,
		TargetMessageID: &messageID,
		Status:          models.ReportStatusResolved,
	}
	err := svc.precheckReview(&resolved, models.ActionCreatorSuspended)
	assert.ErrorIs(t, err, ErrAlreadyResolved)

	dismissed := resolved
	dismissed.Status = models.ReportStatusDismissed
	err = svc.precheckReview(&dismissed, models.ActionCreatorSuspended)
	assert.ErrorIs(t, err, ErrAlreadyResolved)

	// Open reports still fail context validation.
	pending := resolved
	pending.Status = models.ReportStatusPending
	err = svc.precheckReview(&pending, models.ActionCreatorSuspended)
	assert.ErrorIs(t, err, ErrMissingSuspensionContext)
}

func TestReviewReportRejectsUnknownAction(t *testing.T) {
	svc := &EnforcementService{}

	err := svc.ReviewReport(uuid.New(), uuid.New(), ReviewReportInput{Action: "escalated"})
	assert.ErrorIs(t, err, ErrInvalidReportInput)
}
