package notify_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/accounts/internal/accounts/notify"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

var links = notify.Links{AppName: "Bartab", BaseURL: "https://app.example.com/"}

func TestLinks(t *testing.T) {
	require.Equal(t, "https://app.example.com/registration/abc123", links.RegistrationURL("abc123"))
	require.Equal(t, "https://app.example.com/reset-password/abc123", links.ResetPasswordURL("abc123"))
}

func TestInviteMessage(t *testing.T) {
	m := links.InviteMessage("ada@example.com", "tok")
	require.Equal(t, "ada@example.com", m.To)
	require.Equal(t, "Registration", m.Subject)
	require.Equal(t, "You were invited to Bartab application. Follow link below to continue.", m.Body)
	require.Equal(t, "https://app.example.com/registration/tok", m.ActionURL)
}

func TestResetMessage(t *testing.T) {
	m := links.ResetMessage("ada@example.com", "tok")
	require.Equal(t, "Reset password", m.Subject)
	require.Equal(t, "Reset password", m.ActionText)
	require.Equal(t, "https://app.example.com/reset-password/tok", m.ActionURL)
}

func TestRender(t *testing.T) {
	m := links.InviteMessage("ada@example.com", "tok")
	m.Body = "<script>alert(1)</script>"

	html, text, err := notify.Render(m)
	require.NoError(t, err)
	require.Contains(t, html, `href="https://app.example.com/registration/tok"`)
	require.NotContains(t, html, "<script>")
	require.Contains(t, text, "Registration: https://app.example.com/registration/tok")
	require.Contains(t, text, "<script>", "plain text is not escaped")
}

type fakeSES struct {
	input *sesv2.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(ctx context.Context, in *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	return &sesv2.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSES_Notify(t *testing.T) {
	client := &fakeSES{}
	sink := &notify.SES{Client: client, From: "Bartab <no-reply@example.com>"}

	err := sink.Notify(context.Background(), links.ResetMessage("ada@example.com", "tok"))
	require.NoError(t, err)

	in := client.input
	require.Equal(t, "Bartab <no-reply@example.com>", aws.ToString(in.FromEmailAddress))
	require.Equal(t, []string{"ada@example.com"}, in.Destination.ToAddresses)
	require.Equal(t, "Reset password", aws.ToString(in.Content.Simple.Subject.Data))
	require.Contains(t, aws.ToString(in.Content.Simple.Body.Html.Data), "reset-password/tok")
	require.Contains(t, aws.ToString(in.Content.Simple.Body.Text.Data), "reset-password/tok")
}

func TestSES_NotifyFailure(t *testing.T) {
	sink := &notify.SES{Client: &fakeSES{err: errors.New("throttled")}, From: "no-reply@example.com"}

	err := sink.Notify(context.Background(), links.InviteMessage("ada@example.com", "tok"))
	require.ErrorIs(t, err, notify.ErrDelivery)
	require.True(t, strings.Contains(err.Error(), "throttled"))
}

func TestNewSES_RequiresSender(t *testing.T) {
	_, err := notify.NewSES(context.Background(), notify.SESConfig{Region: "ap-southeast-2"})
	require.Error(t, err)
}

func TestLog_Notify(t *testing.T) {
	var buf bytes.Buffer
	ctx := slogx.WithContext(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, notify.Log{}.Notify(ctx, links.InviteMessage("ada@example.com", "tok")))
	require.Contains(t, buf.String(), `"msg":"notification"`)
	require.Contains(t, buf.String(), `"action_url":"https://app.example.com/registration/tok"`)
}
