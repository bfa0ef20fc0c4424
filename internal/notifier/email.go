package notifier

import (
	"fmt"
	"path/filepath"

	"gopkg.in/gomail.v2"

	"CoinReport/internal/model"
)

// Sender delivers a composed report.
type Sender interface {
	Send(rep *model.Report) error
}

// EmailSender sends reports over an implicit-TLS SMTP session.
type EmailSender struct {
	Host      string
	Port      int
	From      string
	Password  string
	Recipient string
}

// NewEmailSender creates a sender for a single recipient.
func NewEmailSender(host string, port int, from, password, recipient string) *EmailSender {
	return &EmailSender{
		Host:      host,
		Port:      port,
		From:      from,
		Password:  password,
		Recipient: recipient,
	}
}

// Send composes and transmits the report email. The message is
// multipart/alternative; the HTML part and its inline chart are only attached
// when a chart was rendered.
func (s *EmailSender) Send(rep *model.Report) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.Recipient)
	m.SetHeader("Subject", Subject(rep))
	m.SetBody("text/plain", FormatPlainBody(rep))

	if rep.ChartPath != "" {
		// gomail uses the embedded file's base name as the content-id.
		cid := filepath.Base(rep.ChartPath)
		m.AddAlternative("text/html", FormatHTMLBody(rep, cid))
		m.Embed(rep.ChartPath)
	}

	d := gomail.NewDialer(s.Host, s.Port, s.From, s.Password)
	d.SSL = true

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send report email: %w", err)
	}
	return nil
}
