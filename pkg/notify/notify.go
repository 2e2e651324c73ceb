// Package notify delivers transactional e-mail for the contact form.
package notify

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when delivery is disabled or lacks credentials.
var ErrNotConfigured = errors.New("notify: email delivery not configured")

// Email is one outbound message.
type Email struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// Sender delivers an Email and returns the provider's message id.
type Sender interface {
	Send(ctx context.Context, email Email) (string, error)
}

// Disabled is a Sender that always fails with ErrNotConfigured.
type Disabled struct{}

// Send implements Sender.
func (Disabled) Send(context.Context, Email) (string, error) {
	return "", ErrNotConfigured
}

// Mailer composes the folio e-mails and hands them to a Sender.
type Mailer struct {
	sender     Sender
	from       string
	adminEmail string
	ownerName  string
}

// NewMailer returns a Mailer. adminEmail receives new-message alerts.
func NewMailer(sender Sender, from, adminEmail, ownerName string) *Mailer {
	if sender == nil {
		sender = Disabled{}
	}
	return &Mailer{sender: sender, from: from, adminEmail: adminEmail, ownerName: ownerName}
}

// SetAdminEmail changes the alert recipient.
func (m *Mailer) SetAdminEmail(addr string) { m.adminEmail = addr }

// NotifyNewMessage alerts the site owner about a contact-form submission.
func (m *Mailer) NotifyNewMessage(ctx context.Context, name, email, subject, body string) error {
	if m.adminEmail == "" {
		return fmt.Errorf("%w: admin address missing", ErrNotConfigured)
	}

	html, err := render(newMessageTmpl, map[string]string{
		"Name":    name,
		"Email":   email,
		"Subject": subject,
		"Body":    body,
	})
	if err != nil {
		return err
	}

	_, err = m.sender.Send(ctx, Email{
		From:    m.from,
		To:      []string{m.adminEmail},
		Subject: "New Portfolio Message: " + subject,
		HTML:    html,
		ReplyTo: email,
	})
	return err
}

// SendReply sends the owner's reply to a visitor and returns the provider id.
func (m *Mailer) SendReply(ctx context.Context, to, text string) (string, error) {
	html, err := render(replyTmpl, map[string]string{
		"Body":  text,
		"Owner": m.ownerName,
	})
	if err != nil {
		return "", err
	}

	return m.sender.Send(ctx, Email{
		From:    m.from,
		To:      []string{to},
		Subject: "Re: Your message from portfolio",
		HTML:    html,
	})
}
