package claim

import "drop-arbiter/internal/pkg/errs"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
	StatusExpired   Status = "expired"
)

func (s Status) String() string { return string(s) }

func (s Status) IsTerminal() bool { return s != StatusPending }

var (
	ErrPhoneRequired = errs.Validation("claimant_phone is required")
	ErrNameRequired  = errs.Validation("claimant_name is required")
	ErrInvalidPhone  = errs.Validation("claimant_phone must contain digits")

	ErrNotFound        = errs.NotFound("Claim not found")
	ErrPendingNotFound = errs.NotFound("Pending claim not found")
	ErrNotPending      = errs.Conflict("Only pending claims can be confirmed")
)
