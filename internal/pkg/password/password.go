// Package password hashes operator access codes with bcrypt.
package password

import (
	"drop-arbiter/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores input past 72 bytes, so longer codes are refused rather
// than silently truncated.
const MaxLength = 72

var (
	ErrEmpty    = errs.New("access code is empty")
	ErrTooLong  = errs.New("access code is longer than 72 bytes")
	ErrMismatch = errs.New("access code does not match")
)

func Hash(code string) (string, error) {
	if err := check(code); err != nil {
		return "", err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", errs.Wrap(err, "bcrypt hash")
	}
	return string(hashed), nil
}

// Verify returns ErrMismatch for a wrong code and a wrapped error for a
// malformed hash.
func Verify(hash, code string) error {
	if hash == "" {
		return ErrMismatch
	}
	if err := check(code); err != nil {
		return err
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code))
	switch {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errs.Wrap(err, "bcrypt compare")
	}
}

func check(code string) error {
	if code == "" {
		return ErrEmpty
	}
	if len(code) > MaxLength {
		return ErrTooLong
	}
	return nil
}
