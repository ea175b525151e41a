package ses_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactrelay/pkg/mailer"
	"github.com/dmitrymomot/contactrelay/pkg/mailer/ses"
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) SendEmail(ctx context.Context, in *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*sesv2.SendEmailOutput)
	return out, args.Error(1)
}

func (m *mockAPI) GetAccount(ctx context.Context, in *sesv2.GetAccountInput, _ ...func(*sesv2.Options)) (*sesv2.GetAccountOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*sesv2.GetAccountOutput)
	return out, args.Error(1)
}

func TestNew_RequiresFrom(t *testing.T) {
	t.Parallel()

	_, err := ses.New(context.Background(), ses.Config{})
	require.ErrorIs(t, err, ses.ErrNoFrom)
}

func TestSender_Send(t *testing.T) {
	t.Parallel()

	t.Run("builds simple message", func(t *testing.T) {
		t.Parallel()

		api := &mockAPI{}
		api.On("SendEmail", mock.Anything, mock.MatchedBy(func(in *sesv2.SendEmailInput) bool {
			msg := in.Content.Simple
			return aws.ToString(in.FromEmailAddress) == "relay@example.com" &&
				assert.ObjectsAreEqual([]string{"admin@example.com"}, in.Destination.ToAddresses) &&
				assert.ObjectsAreEqual([]string{"ana@example.com"}, in.ReplyToAddresses) &&
				aws.ToString(msg.Subject.Data) == "New Website Message from Ana" &&
				aws.ToString(msg.Body.Html.Data) == "<p>Hi</p>" &&
				msg.Body.Text == nil &&
				len(in.EmailTags) == 1 && aws.ToString(in.EmailTags[0].Value) == "true"
		})).Return(&sesv2.SendEmailOutput{MessageId: aws.String("0100-abc")}, nil).Once()

		err := ses.NewWithAPI(api, "relay@example.com").Send(context.Background(), &mailer.Email{
			To:      []string{"admin@example.com"},
			Subject: "New Website Message from Ana",
			HTML:    "<p>Hi</p>",
			ReplyTo: "ana@example.com",
			Tags:    mailer.SimpleTags("contact_form"),
		})

		require.NoError(t, err)
		api.AssertExpectations(t)
	})

	t.Run("api error carries code", func(t *testing.T) {
		t.Parallel()

		apiErr := &smithy.GenericAPIError{Code: "MessageRejected", Message: "Email address is not verified."}
		api := &mockAPI{}
		api.On("SendEmail", mock.Anything, mock.Anything).Return(nil, apiErr).Once()

		err := ses.NewWithAPI(api, "relay@example.com").Send(context.Background(), &mailer.Email{
			To:      []string{"admin@example.com"},
			Subject: "s",
			HTML:    "h",
			Text:    "t",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "MessageRejected")
		var target *smithy.GenericAPIError
		require.True(t, errors.As(err, &target))
	})
}

func TestSender_Healthcheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		out     *sesv2.GetAccountOutput
		err     error
		wantErr bool
	}{
		{"enabled", &sesv2.GetAccountOutput{SendingEnabled: true}, nil, false},
		{"disabled", &sesv2.GetAccountOutput{SendingEnabled: false}, nil, true},
		{"api error", nil, errors.New("no credentials"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			api := &mockAPI{}
			api.On("GetAccount", mock.Anything, mock.Anything).Return(tt.out, tt.err)

			err := ses.NewWithAPI(api, "relay@example.com").Healthcheck()(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
