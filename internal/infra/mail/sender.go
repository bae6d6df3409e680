package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, user, password, from, notifyTo string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		NotifyTo: notifyTo,
	}
}

// SendLeadCaptured notifies the admin inbox that a new submission arrived.
func (s *EmailSender) SendLeadCaptured(name, email string) error {
	subject := fmt.Sprintf("New lead: %s", name)
	return s.send("lead_captured.html", subject, LeadEmailData{Name: name, Email: email})
}

// SendOutreachSent notifies the admin inbox that outreach was dispatched.
func (s *EmailSender) SendOutreachSent(name, email string) error {
	subject := fmt.Sprintf("Outreach sent: %s", name)
	return s.send("outreach_sent.html", subject, LeadEmailData{Name: name, Email: email})
}

func (s *EmailSender) send(templateName, subject string, data LeadEmailData) error {
	tmplPath := filepath.Join("templates", templateName)
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("failed to read email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.NotifyTo)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send SMTP email: %w", err)
	}

	return nil
}
