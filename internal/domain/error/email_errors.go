package error

import "errors"

// Delivery errors. A permanent failure will fail again if retried unchanged.
var (
	ErrTemplateRenderFailed  = errors.New("failed to render email template")
	ErrPermanentEmailFailure = errors.New("permanent email failure")
	ErrTemporaryEmailFailure = errors.New("temporary email failure")
)

// EmailErrorCode identifies an e-mail failure. Format: EMAIL-XXYYYY.
type EmailErrorCode string

const (
	// Provider (02)
	ErrCodePermanentEmailFailure EmailErrorCode = "EMAIL-020002"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EMAIL-020003"

	// Templates (03)
	ErrCodeTemplateRenderFailed EmailErrorCode = "EMAIL-030002"
)

// EmailError is returned by e-mail senders and the alert mailer.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *EmailError) Unwrap() error {
	return e.Err
}

// Temporary reports whether retrying later may succeed.
func (e *EmailError) Temporary() bool {
	return e.Code == ErrCodeTemporaryEmailFailure
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
