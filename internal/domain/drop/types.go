package drop

import (
	"fmt"

	"drop-arbiter/internal/pkg/errs"
)

type Status string

const (
	StatusLive      Status = "live"
	StatusFilled    Status = "filled"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string { return string(s) }

func (s Status) IsTerminal() bool {
	return s == StatusFilled || s == StatusExpired || s == StatusCancelled
}

func ParseStatus(v string) (Status, error) {
	switch s := Status(v); s {
	case StatusLive, StatusFilled, StatusExpired, StatusCancelled:
		return s, nil
	default:
		return "", ErrInvalidStatus
	}
}

var (
	ErrOperatorRequired = errs.Validation("operator_id is required")
	ErrOfferingRequired = errs.Validation("offering_id is required")
	ErrTitleRequired    = errs.Validation("title is required")
	ErrSpotsRequired    = errs.Validation("spots_available is required")
	ErrInvalidSpots     = errs.Validation("spots_available must be a positive integer")
	ErrInvalidPrice     = errs.Validation("price_cents must be zero or greater")
	ErrInvalidTimer     = errs.Validation("timer_seconds must be a positive integer")
	ErrInvalidExtension = errs.Validation("additional_seconds must be a positive integer")
	ErrTimerOverflow    = errs.Validation("additional_seconds would push timer_seconds past its maximum")
	ErrInvalidStatus    = errs.Validation("status must be one of: live, filled, expired, cancelled")

	ErrNotFound           = errs.NotFound("Drop not found")
	ErrNotLive            = errs.Conflict("Drop is not live")
	ErrExpired            = errs.Conflict("Drop has expired")
	ErrAlreadyFilled      = errs.Conflict("Drop is already filled")
	ErrCannotCancelFilled = errs.Conflict("Cannot cancel a filled drop")
	ErrNotCancellable     = errs.Conflict("Only live drops can be cancelled or stopped")
	ErrNotExtendable      = errs.Conflict("Only live drops can be extended")
)

// ErrCannotConfirm reports the actual terminal status of a drop that no longer accepts confirmations.
func ErrCannotConfirm(status Status) error {
	return errs.Mark(errs.New(fmt.Sprintf("Drop is %s; cannot confirm more claims", status)), errs.ErrConflict)
}
