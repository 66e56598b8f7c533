package apperror

// AppError carries the HTTP status a domain error should surface as.
// Packages declare their failure modes as package-level *AppError sentinels
// and return them directly, so errors.Is works by identity.
type AppError struct {
	Code    int    // HTTP status (e.g. 400, 404, 409)
	Message string // user-facing message
	Err     error  // underlying cause, never exposed to the client
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a sentinel AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap attaches a status code and user-facing message to an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
