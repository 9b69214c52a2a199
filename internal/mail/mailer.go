package mail

import (
	"fmt"
	"net/smtp"

	"golang.org/x/oauth2"
	gomail "gopkg.in/gomail.v2"
)

// Sender is the outbound email contract.
type Sender interface {
	Send(to, subject, html string) error
}

// InMemory records messages instead of delivering them. Test double.
type InMemory struct {
	Outbox []Message
}

// Message is a single captured email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

func (m *InMemory) Send(to, subject, html string) error {
	m.Outbox = append(m.Outbox, Message{To: to, Subject: subject, HTML: html})
	return nil
}

// Nop implements Sender without doing anything, for deployments with no SMTP
// credentials configured.
type Nop struct{}

func (Nop) Send(string, string, string) error { return nil }

// SMTPSender delivers through an SMTP relay. When a token source is supplied
// the dialer authenticates with XOAUTH2 (Gmail); otherwise plain user/pass.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender builds a password-authenticated sender.
func NewSMTPSender(host string, port int, user, pass, from string) *SMTPSender {
	return &SMTPSender{dialer: gomail.NewDialer(host, port, user, pass), from: from}
}

// NewOAuth2Sender builds a sender authenticating with a bearer token from the
// injected token source. The source owns token caching and refresh; nothing
// here keeps global state.
func NewOAuth2Sender(host string, port int, user, from string, ts oauth2.TokenSource) *SMTPSender {
	d := gomail.NewDialer(host, port, user, "")
	d.Auth = &xoauth2Auth{user: user, source: ts}
	return &SMTPSender{dialer: d, from: from}
}

func (s *SMTPSender) Send(to, subject, html string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)
	return s.dialer.DialAndSend(msg)
}

// xoauth2Auth implements the SASL XOAUTH2 initial-response exchange used by
// Gmail. The access token is fetched per connection from the token source.
type xoauth2Auth struct {
	user   string
	source oauth2.TokenSource
}

func (a *xoauth2Auth) Start(_ *smtp.ServerInfo) (string, []byte, error) {
	token, err := a.source.Token()
	if err != nil {
		return "", nil, fmt.Errorf("fetch oauth2 token: %w", err)
	}
	resp := fmt.Sprintf("user=%s\x01auth=Bearer %s\x01\x01", a.user, token.AccessToken)
	return "XOAUTH2", []byte(resp), nil
}

func (a *xoauth2Auth) Next(_ []byte, more bool) ([]byte, error) {
	if more {
		// Server pushed an error payload; reply empty so it fails the exchange.
		return []byte(""), nil
	}
	return nil, nil
}
