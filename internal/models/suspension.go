// internal/models/suspension.go
package models

import (
	"time"

	"github.com/google/uuid"
)

type AccountSuspension struct {
	BaseModel
	UserID      uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index"`
	Type        SuspensionType `json:"type" gorm:"type:varchar(20);not null"`
	Reason      string         `json:"reason" gorm:"size:255;not null"`
	ReportID    *uuid.UUID     `json:"report_id" gorm:"type:uuid;index"`
	EndsAt      *time.Time     `json:"ends_at"`
	SuspendedBy uuid.UUID      `json:"suspended_by" gorm:"type:uuid;not null"`
	IsActive    bool           `json:"is_active" gorm:"default:true;index"`

	// Relationships
	User   User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Report *Report `json:"report,omitempty" gorm:"foreignKey:ReportID"`
}

// IsExpired reports whether a temporary suspension's window has passed.
// Permanent suspensions (ends_at null) never expire.
func (s *AccountSuspension) IsExpired(now time.Time) bool {
	return s.EndsAt != nil && s.EndsAt.Before(now)
}
