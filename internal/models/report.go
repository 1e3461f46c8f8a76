// internal/models/report.go
package models

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Report struct {
	BaseModel
	ReporterID uuid.UUID  `json:"reporter_id" gorm:"type:uuid;not null;index"`
	ReportType ReportType `json:"report_type" gorm:"type:varchar(20);not null;index"`

	// Exactly one target column matches ReportType. Creator and user reports
	// also carry the other side's id for cascading lookups.
	TargetContentID *uuid.UUID `json:"target_content_id" gorm:"type:uuid;index"`
	TargetCreatorID *uuid.UUID `json:"target_creator_id" gorm:"type:uuid;index"`
	TargetMessageID *uuid.UUID `json:"target_message_id" gorm:"type:uuid;index"`
	TargetUserID    *uuid.UUID `json:"target_user_id" gorm:"type:uuid;index"`

	Reason       ReportReason   `json:"reason" gorm:"type:varchar(30);not null;index"`
	Description  string         `json:"description" gorm:"type:text"`
	EvidenceURLs pq.StringArray `json:"evidence_urls" gorm:"type:text[]"`
	Priority     int            `json:"priority" gorm:"not null;default:0;index"`
	Status       ReportStatus   `json:"status" gorm:"type:varchar(20);default:'pending';index"`

	Action     *ReportAction `json:"action" gorm:"type:varchar(30)"`
	ActionNote string        `json:"action_note,omitempty" gorm:"type:text"`
	ReviewedBy *uuid.UUID    `json:"reviewed_by" gorm:"type:uuid"`
	ReviewedAt *time.Time    `json:"reviewed_at"`

	// Relationships
	Reporter User  `json:"reporter,omitempty" gorm:"foreignKey:ReporterID"`
	Reviewer *User `json:"reviewer,omitempty" gorm:"foreignKey:ReviewedBy"`
}

// TargetID returns the id of the entity the report accuses, per ReportType.
func (r *Report) TargetID() *uuid.UUID {
	switch r.ReportType {
	case ReportTypeContent:
		return r.TargetContentID
	case ReportTypeCreator:
		return r.TargetCreatorID
	case ReportTypeMessage:
		return r.TargetMessageID
	case ReportTypeUser:
		return r.TargetUserID
	}
	return nil
}

// reasonWeights is the severity base used for queue priority.
var reasonWeights = map[ReportReason]int{
	ReasonUnderage:       10,
	ReasonIllegalContent: 9,
	ReasonFraud:          7,
	ReasonImpersonation:  6,
	ReasonHarassment:     5,
	ReasonCopyright:      4,
	ReasonSpam:           2,
	ReasonOther:          1,
}

func (r ReportReason) Weight() int {
	return reasonWeights[r]
}

type ReporterCredibility struct {
	BaseModel
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	TotalReports int       `json:"total_reports" gorm:"not null;default:0"`
	ValidReports int       `json:"valid_reports" gorm:"not null;default:0"`
	FalseReports int       `json:"false_reports" gorm:"not null;default:0"`
	Score        int       `json:"score" gorm:"not null;default:50"`
	IsTrusted    bool      `json:"is_trusted" gorm:"default:false"`
	IsFlagged    bool      `json:"is_flagged" gorm:"default:false"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// ComputePriority combines the reason's severity with the reporter's standing
// at submission time. The result is stored on the report and never recomputed.
func ComputePriority(reason ReportReason, cred *ReporterCredibility) int {
	priority := reason.Weight()
	if cred != nil {
		if cred.IsTrusted {
			priority += 5
		}
		if cred.IsFlagged {
			priority -= 3
		}
	}
	if priority < 0 {
		priority = 0
	}
	return priority
}

// CredibilityThresholds sets when the trusted and flagged flags flip.
type CredibilityThresholds struct {
	TrustedScore       int
	TrustedMinResolved int
	FlaggedScore       int
	FlaggedMinFalse    int
}

func DefaultCredibilityThresholds() CredibilityThresholds {
	return CredibilityThresholds{
		TrustedScore:       80,
		TrustedMinResolved: 5,
		FlaggedScore:       20,
		FlaggedMinFalse:    3,
	}
}

// ApplyResolution folds one review outcome into the reporter's aggregates and
// rederives score and the trusted/flagged flags.
func (c *ReporterCredibility) ApplyResolution(wasValid bool, th CredibilityThresholds) {
	if wasValid {
		c.ValidReports++
	} else {
		c.FalseReports++
	}

	totalResolved := c.ValidReports + c.FalseReports
	if totalResolved == 0 {
		c.Score = 50
	} else {
		c.Score = int(math.Round(100 * float64(c.ValidReports) / float64(totalResolved)))
	}

	c.IsTrusted = c.Score >= th.TrustedScore && totalResolved >= th.TrustedMinResolved
	c.IsFlagged = c.Score <= th.FlaggedScore && c.FalseReports >= th.FlaggedMinFalse
}
