// internal/services/rate_limiter.go
package services

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/fanwell/fanwell-backend/internal/models"
)

// ReportRateLimiter guards report intake. Keys are namespaced strings such as
// "reports:<reporter-id>".
type ReportRateLimiter interface {
	CheckAndConsume(key string, limit int, window time.Duration) (allowed bool, remaining int, err error)
}

// slidingWindowLimiter counts the reporter's reports over the trailing window
// directly from the reports table, so the limit follows created_at rather than
// a fixed bucket. Consuming is implicit: the report insert that follows an
// allowed check is the consumption.
type slidingWindowLimiter struct {
	db *gorm.DB
}

func NewSlidingWindowLimiter(db *gorm.DB) ReportRateLimiter {
	return &slidingWindowLimiter{db: db}
}

func (l *slidingWindowLimiter) CheckAndConsume(key string, limit int, window time.Duration) (bool, int, error) {
	reporterID := strings.TrimPrefix(key, "reports:")

	var count int64
	err := l.db.Model(&models.Report{}).
		Where("reporter_id = ? AND created_at > ?", reporterID, time.Now().Add(-window)).
		Count(&count).Error
	if err != nil {
		return false, 0, fmt.Errorf("failed to count recent reports: %w", err)
	}

	remaining := limit - int(count)
	if remaining <= 0 {
		return false, 0, nil
	}
	return true, remaining, nil
}
