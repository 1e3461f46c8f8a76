// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// Enums
type UserType string

const (
	UserTypeFan     UserType = "fan"
	UserTypeCreator UserType = "creator"
	UserTypeAdmin   UserType = "admin"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"
)

type ReportType string

const (
	ReportTypeContent ReportType = "content"
	ReportTypeCreator ReportType = "creator"
	ReportTypeMessage ReportType = "message"
	ReportTypeUser    ReportType = "user"
)

func (t ReportType) IsValid() bool {
	switch t {
	case ReportTypeContent, ReportTypeCreator, ReportTypeMessage, ReportTypeUser:
		return true
	}
	return false
}

type ReportReason string

const (
	ReasonIllegalContent ReportReason = "illegal_content"
	ReasonUnderage       ReportReason = "underage"
	ReasonHarassment     ReportReason = "harassment"
	ReasonSpam           ReportReason = "spam"
	ReasonCopyright      ReportReason = "copyright"
	ReasonImpersonation  ReportReason = "impersonation"
	ReasonFraud          ReportReason = "fraud"
	ReasonOther          ReportReason = "other"
)

func (r ReportReason) IsValid() bool {
	switch r {
	case ReasonIllegalContent, ReasonUnderage, ReasonHarassment, ReasonSpam,
		ReasonCopyright, ReasonImpersonation, ReasonFraud, ReasonOther:
		return true
	}
	return false
}

type ReportStatus string

const (
	ReportStatusPending     ReportStatus = "pending"
	ReportStatusUnderReview ReportStatus = "under_review"
	ReportStatusResolved    ReportStatus = "resolved"
	ReportStatusDismissed   ReportStatus = "dismissed"
)

// IsTerminal reports whether no further status transition is possible.
func (s ReportStatus) IsTerminal() bool {
	return s == ReportStatusResolved || s == ReportStatusDismissed
}

type ReportAction string

const (
	ActionDismissed        ReportAction = "dismissed"
	ActionWarningIssued    ReportAction = "warning_issued"
	ActionContentRemoved   ReportAction = "content_removed"
	ActionCreatorSuspended ReportAction = "creator_suspended"
	ActionUserBanned       ReportAction = "user_banned"
)

func (a ReportAction) IsValid() bool {
	switch a {
	case ActionDismissed, ActionWarningIssued, ActionContentRemoved,
		ActionCreatorSuspended, ActionUserBanned:
		return true
	}
	return false
}

type SuspensionType string

const (
	SuspensionTypeTemporary SuspensionType = "temporary"
	SuspensionTypePermanent SuspensionType = "permanent"
)

// Audit log actions
const (
	AuditReportReviewed   = "report_reviewed"
	AuditReportDismissed  = "report_dismissed"
	AuditContentRemoved   = "content_removed"
	AuditAccountSuspended = "account_suspended"
	AuditAccountBanned    = "account_banned"
)
