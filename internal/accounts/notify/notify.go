// Package notify delivers account emails: registration invites and password
// reset links. A Notifier is the only way the service reaches a recipient.
package notify

import (
	"bytes"
	"context"
	"errors"
	htemplate "html/template"
	"net/url"
	"strings"
	ttemplate "text/template"
)

// ErrDelivery wraps every failure of a sink to hand a message over.
var ErrDelivery = errors.New("notify: delivery failed")

// Notifier hands a message to a delivery channel.
type Notifier interface {
	Notify(ctx context.Context, m Message) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, m Message) error

func (f NotifierFunc) Notify(ctx context.Context, m Message) error { return f(ctx, m) }

// Message is a single call-to-action email.
type Message struct {
	To         string
	Subject    string
	Greeting   string
	Body       string
	ActionText string
	ActionURL  string
}

// Links builds the front-end URLs embedded in messages.
type Links struct {
	AppName string
	BaseURL string
}

func (l Links) RegistrationURL(token string) string {
	return l.join("registration", token)
}

func (l Links) ResetPasswordURL(token string) string {
	return l.join("reset-password", token)
}

func (l Links) join(section, token string) string {
	return strings.TrimRight(l.BaseURL, "/") + "/" + section + "/" + url.PathEscape(token)
}

// InviteMessage is sent when an administrator invites an email address.
func (l Links) InviteMessage(to, token string) Message {
	return Message{
		To:         to,
		Subject:    "Registration",
		Greeting:   "Hi there!",
		Body:       "You were invited to " + l.AppName + " application. Follow link below to continue.",
		ActionText: "Registration",
		ActionURL:  l.RegistrationURL(token),
	}
}

// ResetMessage is sent when an account owner asks for a password reset.
func (l Links) ResetMessage(to, token string) Message {
	return Message{
		To:         to,
		Subject:    "Reset password",
		Greeting:   "Hi there!",
		Body:       "It looks like you forgot your password, follow the link below and reset it.",
		ActionText: "Reset password",
		ActionURL:  l.ResetPasswordURL(token),
	}
}

var htmlTmpl = htemplate.Must(htemplate.New("html").Parse(`<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.button { display: inline-block; padding: 12px 30px; background-color: #4a90e2; color: white; text-decoration: none; border-radius: 5px; margin: 20px 0; }
	</style>
</head>
<body>
	<div class="container">
		<p>{{.Greeting}}</p>
		<p>{{.Body}}</p>
		<p style="text-align: center;"><a href="{{.ActionURL}}" class="button">{{.ActionText}}</a></p>
		<p style="word-break: break-all; font-size: 12px; color: #666;">{{.ActionURL}}</p>
	</div>
</body>
</html>
`))

var textTmpl = ttemplate.Must(ttemplate.New("text").Parse(`{{.Greeting}}

{{.Body}}

{{.ActionText}}: {{.ActionURL}}
`))

// Render produces the HTML and plain text bodies of m.
func Render(m Message) (html, text string, err error) {
	var hb, tb bytes.Buffer
	if err := htmlTmpl.Execute(&hb, m); err != nil {
		return "", "", err
	}
	if err := textTmpl.Execute(&tb, m); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}
