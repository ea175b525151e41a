package ses

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/aws/smithy-go"

	"github.com/dmitrymomot/contactrelay/pkg/mailer"
)

const charset = "UTF-8"

// API is the subset of the SES v2 client the sender uses.
type API interface {
	SendEmail(ctx context.Context, in *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
	GetAccount(ctx context.Context, in *sesv2.GetAccountInput, optFns ...func(*sesv2.Options)) (*sesv2.GetAccountOutput, error)
}

// Sender implements mailer.Sender on Amazon SES v2.
type Sender struct {
	api  API
	from string
}

// New loads AWS configuration and builds an SES client.
func New(ctx context.Context, cfg Config) (*Sender, error) {
	if cfg.From == "" {
		return nil, ErrNoFrom
	}
	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Join(ErrLoadConfig, err)
	}
	return NewWithAPI(sesv2.NewFromConfig(awsCfg), cfg.From), nil
}

// NewWithAPI builds a Sender around an existing client.
func NewWithAPI(api API, from string) *Sender {
	return &Sender{api: api, from: from}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	from := email.From
	if from == "" {
		from = s.from
	}

	body := &types.Body{
		Html: &types.Content{Data: aws.String(email.HTML), Charset: aws.String(charset)},
	}
	if email.Text != "" {
		body.Text = &types.Content{Data: aws.String(email.Text), Charset: aws.String(charset)}
	}

	in := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from),
		Destination: &types.Destination{
			ToAddresses:  email.To,
			CcAddresses:  email.CC,
			BccAddresses: email.BCC,
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(email.Subject), Charset: aws.String(charset)},
				Body:    body,
			},
		},
	}
	if email.ReplyTo != "" {
		in.ReplyToAddresses = []string{email.ReplyTo}
	}
	for name, value := range email.Tags {
		in.EmailTags = append(in.EmailTags, types.MessageTag{
			Name:  aws.String(name),
			Value: aws.String(tagValue(value)),
		})
	}

	if _, err := s.api.SendEmail(ctx, in); err != nil {
		return describe("send email", err)
	}
	return nil
}

// Healthcheck verifies the credentials can reach the SES account API.
func (s *Sender) Healthcheck() func(context.Context) error {
	return func(ctx context.Context) error {
		out, err := s.api.GetAccount(ctx, &sesv2.GetAccountInput{})
		if err != nil {
			return describe("get account", err)
		}
		if !out.SendingEnabled {
			return errors.New("ses: sending is disabled for this account")
		}
		return nil
	}
}

// describe surfaces the SES error code, which is what operators grep for.
func describe(op string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("ses: %s: %s: %w", op, apiErr.ErrorCode(), err)
	}
	return fmt.Errorf("ses: %s: %w", op, err)
}

func tagValue(v any) string {
	switch val := v.(type) {
	case nil, struct{}:
		return "true"
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
