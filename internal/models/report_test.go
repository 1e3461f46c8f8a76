// internal/models/report_test.go
package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestReasonWeights(t *testing.T) {
	tests := []struct {
		reason ReportReason
		weight int
	}{
		{ReasonUnderage, 10},
		{ReasonIllegalContent, 9},
		{ReasonFraud, 7},
		{ReasonImpersonation, 6},
		{ReasonHarassment, 5},
		{ReasonCopyright, 4},
		{ReasonSpam, 2},
		{ReasonOther, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.weight, tt.reason.Weight(), "weight for %s", tt.reason)
	}
}

func TestComputePriority(t *testing.T) {
	neutral := &ReporterCredibility{Score: 50}
	trusted := &ReporterCredibility{Score: 90, IsTrusted: true}
	flagged := &ReporterCredibility{Score: 10, IsFlagged: true}

	// Neutral credibility: base weight only
	assert.Equal(t, 10, ComputePriority(ReasonUnderage, neutral))

	// Trusted reporters get a boost
	assert.Equal(t, 15, ComputePriority(ReasonUnderage, trusted))

	// Flagged reporters get a penalty, clamped at zero
	assert.Equal(t, 0, ComputePriority(ReasonSpam, flagged))
	assert.Equal(t, 2, ComputePriority(ReasonHarassment, flagged))

	// First-time reporters have no credibility row yet
	assert.Equal(t, 9, ComputePriority(ReasonIllegalContent, nil))
}

func TestApplyResolutionScore(t *testing.T) {
	th := DefaultCredibilityThresholds()
	cred := &ReporterCredibility{Score: 50}

	cred.ApplyResolution(true, th)
	assert.Equal(t, 1, cred.ValidReports)
	assert.Equal(t, 100, cred.Score)
	assert.False(t, cred.IsTrusted, "one resolution is not enough for trust")

	cred.ApplyResolution(false, th)
	assert.Equal(t, 1, cred.FalseReports)
	assert.Equal(t, 50, cred.Score)
}

func TestApplyResolutionTrustThreshold(t *testing.T) {
	th := DefaultCredibilityThresholds()
	cred := &ReporterCredibility{Score: 50}

	// 4 valid + 1 false: score 80 but only at the 5th resolution does
	// trusted flip on.
	cred.ApplyResolution(true, th)
	cred.ApplyResolution(true, th)
	cred.ApplyResolution(true, th)
	cred.ApplyResolution(false, th)
	assert.Equal(t, 75, cred.Score)
	assert.False(t, cred.IsTrusted)

	cred.ApplyResolution(true, th)
	assert.Equal(t, 80, cred.Score)
	assert.True(t, cred.IsTrusted)
}

func TestApplyResolutionFlaggedThreshold(t *testing.T) {
	th := DefaultCredibilityThresholds()
	cred := &ReporterCredibility{Score: 50}

	cred.ApplyResolution(false, th)
	cred.ApplyResolution(false, th)
	assert.False(t, cred.IsFlagged, "two false reports are not enough to flag")

	cred.ApplyResolution(false, th)
	assert.Equal(t, 0, cred.Score)
	assert.True(t, cred.IsFlagged)
	assert.False(t, cred.IsTrusted)
}

func TestApplyResolutionRounding(t *testing.T) {
	th := DefaultCredibilityThresholds()
	cred := &ReporterCredibility{Score: 50}

	// 1 valid, 2 false -> 33.3% rounds to 33
	cred.ApplyResolution(true, th)
	cred.ApplyResolution(false, th)
	cred.ApplyResolution(false, th)
	assert.Equal(t, 33, cred.Score)

	// 2 valid, 1 false -> 66.7% rounds to 67
	cred = &ReporterCredibility{Score: 50}
	cred.ApplyResolution(true, th)
	cred.ApplyResolution(true, th)
	cred.ApplyResolution(false, th)
	assert.Equal(t, 67, cred.Score)
}

func TestApplyResolutionConfiguredThresholds(t *testing.T) {
	// Tightened trust bar: 3 resolved reports suffice.
	th := CredibilityThresholds{
		TrustedScore:       80,
		TrustedMinResolved: 3,
		FlaggedScore:       20,
		FlaggedMinFalse:    3,
	}
	cred := &ReporterCredibility{Score: 50}

	cred.ApplyResolution(true, th)
	cred.ApplyResolution(true, th)
	assert.False(t, cred.IsTrusted)

	cred.ApplyResolution(true, th)
	assert.True(t, cred.IsTrusted, "configured minimum of 3 resolved reports applies")

	// Stricter flag bar: a single false report flags at low score.
	th = CredibilityThresholds{
		TrustedScore:       80,
		TrustedMinResolved: 5,
		FlaggedScore:       20,
		FlaggedMinFalse:    1,
	}
	cred = &ReporterCredibility{Score: 50}
	cred.ApplyResolution(false, th)
	assert.True(t, cred.IsFlagged)
}

func TestReportTargetID(t *testing.T) {
	contentID := uuid.New()
	creatorID := uuid.New()
	userID := uuid.New()

	report := &Report{
		ReportType:      ReportTypeCreator,
		TargetCreatorID: &creatorID,
		TargetUserID:    &userID,
	}
	assert.Equal(t, &creatorID, report.TargetID(), "creator reports resolve to the creator id, not the secondary user id")

	report = &Report{
		ReportType:      ReportTypeContent,
		TargetContentID: &contentID,
	}
	assert.Equal(t, &contentID, report.TargetID())

	report = &Report{ReportType: ReportTypeUser}
	assert.Nil(t, report.TargetID())
}

func TestReportStatusIsTerminal(t *testing.T) {
	assert.False(t, ReportStatusPending.IsTerminal())
	assert.False(t, ReportStatusUnderReview.IsTerminal())
	assert.True(t, ReportStatusResolved.IsTerminal())
	assert.True(t, ReportStatusDismissed.IsTerminal())
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, ReportTypeContent.IsValid())
	assert.True(t, ReportTypeUser.IsValid())
	assert.False(t, ReportType("post").IsValid())

	assert.True(t, ReasonUnderage.IsValid())
	assert.False(t, ReportReason("rude").IsValid())

	assert.True(t, ActionUserBanned.IsValid())
	assert.False(t, ReportAction("escalated").IsValid())
}
