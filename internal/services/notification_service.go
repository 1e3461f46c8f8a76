// internal/services/notification_service.go
package services

import (
	"fmt"
	"net/smtp"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/fanwell/fanwell-backend/internal/config"
	"github.com/fanwell/fanwell-backend/internal/models"
)

type NotificationService struct {
	db     *gorm.DB
	config *config.Config
}

func NewNotificationService(db *gorm.DB, config *config.Config) *NotificationService {
	return &NotificationService{
		db:     db,
		config: config,
	}
}

// SendReportResolvedNotification tells the reporter what came of their report.
// Best effort; failures are logged and never fail the review.
func (s *NotificationService) SendReportResolvedNotification(report *models.Report) {
	var reporter models.User
	if err := s.db.First(&reporter, "id = ?", report.ReporterID).Error; err != nil {
		logrus.WithError(err).WithField("report_id", report.ID).
			Warn("could not load reporter for resolution notice")
		return
	}

	outcome := "resolved"
	if report.Status == models.ReportStatusDismissed {
		outcome = "dismissed after review"
	}

	subject := "Update on your report"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour report filed for %s has been %s. Thank you for helping keep the platform safe.\n\nThe Fanwell Trust & Safety team",
		reporter.Username, report.Reason, outcome,
	)

	if err := s.sendEmail(reporter.Email, subject, body); err != nil {
		logrus.WithError(err).WithField("report_id", report.ID).
			Warn("failed to send resolution notice")
	}
}

// SendSuspensionNotification informs a user their account was actioned.
func (s *NotificationService) SendSuspensionNotification(user *models.User, suspension *models.AccountSuspension) {
	subject := "Your account has been suspended"
	detail := "This suspension is permanent."
	if suspension.EndsAt != nil {
		detail = fmt.Sprintf("The suspension ends on %s.", suspension.EndsAt.Format("2006-01-02"))
	}

	body := fmt.Sprintf(
		"Hi %s,\n\nYour account was suspended for: %s. %s\n\nThe Fanwell Trust & Safety team",
		user.Username, suspension.Reason, detail,
	)

	if err := s.sendEmail(user.Email, subject, body); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).
			Warn("failed to send suspension notice")
	}
}

func (s *NotificationService) sendEmail(to, subject, body string) error {
	if s.config.Email.SMTPUsername == "" {
		logrus.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).Debug("SMTP not configured, skipping email")
		return nil
	}

	addr := fmt.Sprintf("%s:%s", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	auth := smtp.PlainAuth("", s.config.Email.SMTPUsername, s.config.Email.SMTPPassword, s.config.Email.SMTPHost)

	msg := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.config.Email.FromName, s.config.Email.FromEmail, to, subject, body)

	if err := smtp.SendMail(addr, auth, s.config.Email.FromEmail, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
