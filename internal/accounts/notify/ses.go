package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

// SESAPI is the slice of the SES v2 client the sink needs.
type SESAPI interface {
	SendEmail(ctx context.Context, in *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type SESConfig struct {
	Region   string
	From     string
	FromName string
}

// SES sends messages through Amazon SES.
type SES struct {
	Client SESAPI
	From   string // full From header, "Name <addr>" or just "addr"
}

// NewSES loads the default AWS credential chain for cfg.Region.
func NewSES(ctx context.Context, cfg SESConfig) (*SES, error) {
	if cfg.From == "" {
		return nil, fmt.Errorf("notify: ses sender address is required")
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("notify: load aws config: %w", err)
	}

	from := cfg.From
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.From)
	}

	return &SES{Client: sesv2.NewFromConfig(awsCfg), From: from}, nil
}

func (s *SES) Notify(ctx context.Context, m Message) error {
	html, text, err := Render(m)
	if err != nil {
		return fmt.Errorf("%w: render: %w", ErrDelivery, err)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.From),
		Destination: &types.Destination{
			ToAddresses: []string{m.To},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(m.Subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(html), Charset: aws.String("UTF-8")},
					Text: &types.Content{Data: aws.String(text), Charset: aws.String("UTF-8")},
				},
			},
		},
	}

	out, err := s.Client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("%w: ses: %w", ErrDelivery, err)
	}

	attrs := []any{slog.String("subject", m.Subject)}
	if out != nil && out.MessageId != nil {
		attrs = append(attrs, slog.String("message_id", *out.MessageId))
	}
	slogx.FromContext(ctx).Debug("email sent", attrs...)
	return nil
}
