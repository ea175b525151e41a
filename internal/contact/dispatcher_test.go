package contact_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactrelay/internal/contact"
	"github.com/dmitrymomot/contactrelay/pkg/mailer"
)

func TestDispatcher_FixedRecipient(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	sender.On("Send", mock.Anything, mock.Anything).Return(nil).Once()

	d := contact.NewDispatcher(sender, adminEmail)
	err := d.Dispatch(context.Background(), contact.Submission{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "Hi",
	}, "<p>Hi</p>")
	require.NoError(t, err)

	email, ok := sender.Calls[0].Arguments.Get(1).(*mailer.Email)
	require.True(t, ok)
	assert.Equal(t, []string{adminEmail}, email.To)
	assert.Empty(t, email.CC)
	assert.Empty(t, email.BCC)
	assert.Equal(t, "ana@example.com", email.ReplyTo)
	assert.Empty(t, email.Text)
}

func TestDispatcher_PlainText(t *testing.T) {
	t.Parallel()

	var sent *mailer.Email
	sender := mailer.SenderFunc(func(_ context.Context, e *mailer.Email) error {
		sent = e
		return nil
	})

	body, err := contact.NewRenderer(contact.FormatEscaped).Render(contact.Submission{
		Name: "Ana", Email: "ana@example.com", Message: "line1\nline2 & more",
	})
	require.NoError(t, err)

	err = contact.NewDispatcher(sender, adminEmail, contact.WithPlainText()).
		Dispatch(context.Background(), contact.Submission{Name: "Ana", Email: "ana@example.com"}, body)
	require.NoError(t, err)

	require.NotNil(t, sent)
	assert.Contains(t, sent.Text, "Name: Ana")
	assert.Contains(t, sent.Text, "line1\nline2 & more")
	assert.NotContains(t, sent.Text, "<")
}

func TestDispatcher_Failure(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp 203.0.113.5:465: i/o timeout")
	sender := &MockSender{}
	sender.On("Send", mock.Anything, mock.Anything).Return(cause).Once()

	err := contact.NewDispatcher(sender, adminEmail).
		Dispatch(context.Background(), contact.Submission{Name: "Ana", Email: "ana@example.com"}, "<p>x</p>")

	require.ErrorIs(t, err, contact.ErrDeliveryFailed)
	require.ErrorIs(t, err, mailer.ErrSendFailed)
	require.ErrorIs(t, err, cause)
	sender.AssertNumberOfCalls(t, "Send", 1)
}

func TestDispatcher_Timeout(t *testing.T) {
	t.Parallel()

	sender := mailer.SenderFunc(func(ctx context.Context, _ *mailer.Email) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
			return nil
		}
	})

	start := time.Now()
	err := contact.NewDispatcher(sender, adminEmail, contact.WithTimeout(20*time.Millisecond)).
		Dispatch(context.Background(), contact.Submission{Name: "Ana", Email: "ana@example.com"}, "<p>x</p>")

	require.ErrorIs(t, err, contact.ErrDeliveryFailed)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Less(t, time.Since(start), 2*time.Second)
}
