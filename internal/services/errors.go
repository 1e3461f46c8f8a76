// internal/services/errors.go
package services

import "errors"

// Caller errors. These are expected outcomes, surfaced verbatim to the
// caller and never logged as faults. Infrastructure failures are wrapped
// with fmt.Errorf and propagate unchanged.
var (
	ErrRateLimited              = errors.New("report rate limit exceeded")
	ErrTargetNotFound           = errors.New("report target not found")
	ErrSelfReport               = errors.New("cannot report yourself")
	ErrDuplicateReport          = errors.New("open report already exists for this target")
	ErrReportNotFound           = errors.New("report not found")
	ErrAlreadyResolved          = errors.New("report is already resolved")
	ErrMissingSuspensionContext = errors.New("report carries no suspendable principal for this action")
	ErrInvalidReportInput       = errors.New("invalid report input")
)
