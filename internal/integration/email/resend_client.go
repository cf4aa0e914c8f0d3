package email

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"

	"github.com/budgetwise/backend/internal/application/adapter"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

const sendTimeout = 10 * time.Second

// ResendClient implements adapter.EmailSender on top of the Resend API.
type ResendClient struct {
	client *resend.Client
	from   string
}

// NewResendClient creates a client for the public Resend API.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	httpClient := &http.Client{
		Timeout:   sendTimeout,
		Transport: statusRecorder{next: http.DefaultTransport},
	}
	return &ResendClient{
		client: resend.NewCustomClient(httpClient, apiKey),
		from:   formatAddress(fromName, fromEmail),
	}
}

// NewResendClientWithBaseURL points the client at baseURL, e.g. a local stand-in of the API.
func NewResendClientWithBaseURL(apiKey, fromName, fromEmail, baseURL string) (*ResendClient, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid resend base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid resend base url %q: scheme and host are required", baseURL)
	}

	c := NewResendClient(apiKey, fromName, fromEmail)
	c.client.BaseURL = u
	return c, nil
}

func formatAddress(name, address string) string {
	if name == "" {
		return address
	}
	return fmt.Sprintf("%s <%s>", name, address)
}

func (c *ResendClient) Send(ctx context.Context, email adapter.OutgoingEmail) (string, error) {
	from := c.from
	if email.From != "" {
		from = email.From
	}

	request := &resend.SendEmailRequest{
		From:    from,
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		Tags:    toResendTags(email.Tags),
	}

	status := new(int)
	sent, err := c.client.Emails.SendWithContext(withStatusSlot(ctx, status), request)
	if err != nil {
		return "", classifySendError(*status, err)
	}
	return sent.Id, nil
}

// toResendTags sorts by key so requests are stable.
func toResendTags(tags map[string]string) []resend.Tag {
	if len(tags) == 0 {
		return nil
	}
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]resend.Tag, 0, len(keys))
	for _, k := range keys {
		out = append(out, resend.Tag{Name: k, Value: tags[k]})
	}
	return out
}

// classifySendError marks client errors as permanent, except timeouts and rate limiting.
// Without a status (transport failure) the error is temporary.
func classifySendError(status int, err error) error {
	permanent := status >= 400 && status < 500 &&
		status != http.StatusRequestTimeout &&
		status != http.StatusTooManyRequests

	if permanent {
		return domainerror.NewEmailError(
			domainerror.ErrCodePermanentEmailFailure,
			fmt.Sprintf("resend rejected the message (status %d)", status),
			fmt.Errorf("%w: %v", domainerror.ErrPermanentEmailFailure, err),
		)
	}
	return domainerror.NewEmailError(
		domainerror.ErrCodeTemporaryEmailFailure,
		"resend is temporarily unavailable",
		fmt.Errorf("%w: %v", domainerror.ErrTemporaryEmailFailure, err),
	)
}

type statusSlotKey struct{}

func withStatusSlot(ctx context.Context, slot *int) context.Context {
	return context.WithValue(ctx, statusSlotKey{}, slot)
}

// statusRecorder copies the response status into the slot carried by the request context.
type statusRecorder struct {
	next http.RoundTripper
}

func (t statusRecorder) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err == nil {
		if slot, ok := req.Context().Value(statusSlotKey{}).(*int); ok {
			*slot = resp.StatusCode
		}
	}
	return resp, err
}

var _ adapter.EmailSender = (*ResendClient)(nil)
