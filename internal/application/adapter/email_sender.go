package adapter

import "context"

// OutgoingEmail is one message handed to the e-mail provider.
type OutgoingEmail struct {
	// From overrides the sender configured on the provider client when set.
	From    string
	To      string
	Subject string
	HTML    string
	Text    string

	// Tags are attached to the message for filtering in the provider dashboard.
	Tags map[string]string
}

// EmailSender delivers messages through an external provider. Failures are
// *domainerror.EmailError values classified as permanent or temporary.
type EmailSender interface {
	Send(ctx context.Context, email OutgoingEmail) (messageID string, err error)
}
