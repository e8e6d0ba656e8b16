package operator

import (
	"strings"
	"time"

	"drop-arbiter/internal/pkg/errs"
	"drop-arbiter/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrBusinessNameRequired = errs.Validation("business_name is required")
	ErrAccessCodeRequired   = errs.Validation("access_code is required")
	ErrAccessCodeTooLong    = errs.Validation("access_code must be at most 72 bytes")
	ErrInvalidCredentials   = errs.Unauthorized("Invalid operator credentials")
)

// Operator is the tenant that owns drops, claims and events.
type Operator struct {
	id             uuid.UUID
	businessName   string
	accessCodeHash string
	createdAt      time.Time
}

func NewOperator(id uuid.UUID, businessName, accessCode string, now time.Time) (*Operator, error) {
	name := strings.TrimSpace(businessName)
	if name == "" {
		return nil, ErrBusinessNameRequired
	}
	if accessCode == "" {
		return nil, ErrAccessCodeRequired
	}
	hash, err := password.Hash(accessCode)
	if errs.Is(err, password.ErrTooLong) {
		return nil, ErrAccessCodeTooLong
	}
	if err != nil {
		return nil, errs.Wrap(err, "hash access code")
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Operator{id: id, businessName: name, accessCodeHash: hash, createdAt: now}, nil
}

func Reconstruct(id uuid.UUID, businessName, accessCodeHash string, createdAt time.Time) *Operator {
	return &Operator{id: id, businessName: businessName, accessCodeHash: accessCodeHash, createdAt: createdAt}
}

func (o *Operator) VerifyAccessCode(code string) error {
	if err := password.Verify(o.accessCodeHash, code); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func (o *Operator) ID() uuid.UUID          { return o.id }
func (o *Operator) BusinessName() string   { return o.businessName }
func (o *Operator) AccessCodeHash() string { return o.accessCodeHash }
func (o *Operator) CreatedAt() time.Time   { return o.createdAt }
