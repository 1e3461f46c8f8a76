// internal/models/audit.go
package models

import (
	"github.com/google/uuid"
)

// AuditLog is append-only. Rows are never updated or deleted.
type AuditLog struct {
	BaseModel
	AdminID    uuid.UUID  `json:"admin_id" gorm:"type:uuid;not null;index"`
	Action     string     `json:"action" gorm:"size:100;not null;index"`
	TargetType string     `json:"target_type" gorm:"size:50;not null;index"`
	TargetID   *uuid.UUID `json:"target_id" gorm:"type:uuid;index"`
	Details    JSONB      `json:"details" gorm:"type:jsonb"`
	IPAddress  string     `json:"ip_address" gorm:"size:45"`

	// Relationships
	Admin User `json:"admin,omitempty" gorm:"foreignKey:AdminID"`
}
