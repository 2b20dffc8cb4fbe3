package usecase

import "errors"

// Validation errors handlers map to 4xx responses.
var (
	ErrSessionArchived    = errors.New("audit session is archived")
	ErrAuditCompleted     = errors.New("security audit is completed")
	ErrInvalidOutcome     = errors.New("outcome must be one of YES, NO, IN_PROGRESS, NOT_APPLICABLE")
	ErrInvalidAnswerValue = errors.New("answer value must be 0, 0.5 or 1")
	ErrVendorNoEmail      = errors.New("vendor has no contact email")
	ErrChannelInactive    = errors.New("whistleblowing channel is not active for this company")
	ErrCompanyNoDomain    = errors.New("company has no domain configured")
)
