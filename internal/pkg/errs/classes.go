package errs

// Error classes. Domain and usecase sentinels are marked with one of these so
// the transport layer can pick a status code without knowing every sentinel.
var (
	ErrValidation   = New("validation error")
	ErrNotFound     = New("resource not found")
	ErrConflict     = New("state conflict")
	ErrUnauthorized = New("unauthorized")
)

func Validation(msg string) error   { return Mark(New(msg), ErrValidation) }
func NotFound(msg string) error     { return Mark(New(msg), ErrNotFound) }
func Conflict(msg string) error     { return Mark(New(msg), ErrConflict) }
func Unauthorized(msg string) error { return Mark(New(msg), ErrUnauthorized) }
