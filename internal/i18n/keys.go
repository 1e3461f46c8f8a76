// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Authentication
	KeyAuthRequired     = "auth.required"
	KeyAuthInvalidToken = "auth.invalid_token"
	KeyAuthTokenExpired = "auth.token_expired"

	// Admin
	KeyAdminAccessDenied  = "admin.access_denied"
	KeyAdminActionSuccess = "admin.action_success"

	// Users
	KeyUserNotFound  = "user.not_found"
	KeyUserSuspended = "user.suspended"
	KeyUserBanned    = "user.banned"

	// Reports
	KeyReportCreated         = "report.created"
	KeyReportNotFound        = "report.not_found"
	KeyReportDuplicate       = "report.duplicate"
	KeyReportRateLimited     = "report.rate_limited"
	KeyReportSelfReport      = "report.self_report"
	KeyReportTargetNotFound  = "report.target_not_found"
	KeyReportAlreadyResolved = "report.already_resolved"
	KeyReportResolved        = "report.resolved"
	KeyReportDismissed       = "report.dismissed"

	// Suspensions
	KeySuspensionActive  = "suspension.active"
	KeySuspensionDetails = "suspension.details"

	// Validation
	KeyValidationInvalid  = "validation.invalid"
	KeyValidationRequired = "validation.required"
)
