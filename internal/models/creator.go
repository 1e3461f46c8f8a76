// internal/models/creator.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreatorProfile struct {
	BaseModel
	UserID      uuid.UUID      `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	DisplayName string         `json:"display_name" gorm:"size:100;not null"`
	Bio         string         `json:"bio" gorm:"type:text"`
	AvatarURL   string         `json:"avatar_url" gorm:"size:500"`
	BannerURL   string         `json:"banner_url" gorm:"size:500"`
	Tags        pq.StringArray `json:"tags" gorm:"type:text[]"`
	IsVerified  bool           `json:"is_verified" gorm:"default:false"`

	// Relationships
	User     User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Contents []Content `json:"contents,omitempty" gorm:"foreignKey:CreatorID"`
}

type Content struct {
	BaseModel
	CreatorID   uuid.UUID      `json:"creator_id" gorm:"type:uuid;not null;index"`
	Title       string         `json:"title" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"type:text"`
	MediaURLs   pq.StringArray `json:"media_urls" gorm:"type:text[]"`
	Tags        pq.StringArray `json:"tags" gorm:"type:text[]"`
	IsPublished bool           `json:"is_published" gorm:"default:true;index"`
	PublishedAt *time.Time     `json:"published_at"`

	// Relationships
	Creator CreatorProfile `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`
}

type Message struct {
	BaseModel
	SenderID    uuid.UUID  `json:"sender_id" gorm:"type:uuid;not null;index"`
	RecipientID uuid.UUID  `json:"recipient_id" gorm:"type:uuid;not null;index"`
	Body        string     `json:"body" gorm:"type:text;not null"`
	ReadAt      *time.Time `json:"read_at"`

	// Relationships
	Sender    User `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
	Recipient User `json:"recipient,omitempty" gorm:"foreignKey:RecipientID"`
}
