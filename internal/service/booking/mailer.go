package booking

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"
	"time"

	"github.com/bunniesplumbing/chat-gateway/internal/config"
	"github.com/bunniesplumbing/chat-gateway/internal/knowledge"
	"github.com/bunniesplumbing/chat-gateway/internal/model/booking"
)

// SMTPMailer renders and sends the two booking emails over SMTP.
// Notification volume is a handful of messages a day to two known
// addresses; plain net/smtp with an HTML template is sufficient.
type SMTPMailer struct {
	cfg config.BookingConfig
}

// NewSMTPMailer builds a mailer, or nil when mail is not configured.
func NewSMTPMailer(cfg config.BookingConfig) *SMTPMailer {
	if !cfg.MailEnabled() {
		return nil
	}
	return &SMTPMailer{cfg: cfg}
}

type emailData struct {
	Name          string
	Phone         string
	PhoneDigits   string
	Email         string
	ServiceName   string
	DateFormatted string
	TimeName      string
	Message       string
	CompanyPhone  string
	Timestamp     string
}

// SendBookingEmails sends the admin notification, then the customer
// confirmation when an address was provided.
func (m *SMTPMailer) SendBookingEmails(_ context.Context, req *booking.Request) error {
	data := emailData{
		Name:          req.Name,
		Phone:         req.Phone,
		PhoneDigits:   nonDigits.ReplaceAllString(req.Phone, ""),
		Email:         req.Email,
		ServiceName:   ServiceLabel(req.Service),
		DateFormatted: formatDate(req.Date),
		TimeName:      TimeSlotLabel(req.TimeSlot),
		Message:       req.Message,
		CompanyPhone:  knowledge.CompanyPhone,
		Timestamp:     time.Now().Format("January 2, 2006 at 3:04 PM"),
	}

	adminSubject := fmt.Sprintf("New Booking Request — %s — %s", data.ServiceName, data.Name)
	if err := m.send(m.cfg.AdminEmail, adminSubject, adminTemplate, data); err != nil {
		return fmt.Errorf("admin notification: %w", err)
	}

	if req.Email != "" {
		subject := "We received your booking request — Bunnies Plumbing"
		if err := m.send(req.Email, subject, customerTemplate, data); err != nil {
			return fmt.Errorf("customer confirmation: %w", err)
		}
	}
	return nil
}

func (m *SMTPMailer) send(to, subject string, tmpl *template.Template, data emailData) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render email: %w", err)
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: Bunnies Plumbing <%s>\r\n", m.cfg.FromEmail)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	addr := m.cfg.SMTPHost + ":" + m.cfg.SMTPPort
	var auth smtp.Auth
	if m.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", m.cfg.SMTPUsername, m.cfg.SMTPPassword, m.cfg.SMTPHost)
	}
	return smtp.SendMail(addr, auth, m.cfg.FromEmail, []string{to}, []byte(msg.String()))
}

func formatDate(raw string) string {
	if raw == "" {
		return "Not specified"
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return raw
	}
	return parsed.Format("Monday, January 2, 2006")
}

var adminTemplate = template.Must(template.New("admin").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="margin:0;padding:0;background:#f4f4f4;font-family:Arial,Helvetica,sans-serif;">
<table width="600" cellpadding="0" cellspacing="0" style="background:#ffffff;border-radius:8px;margin:24px auto;">
<tr><td style="background:#0D0D0D;padding:24px 32px;text-align:center;">
  <h1 style="margin:0;color:#ffffff;font-size:20px;">New Booking Request</h1>
  <p style="margin:8px 0 0;color:#D42B2B;font-size:14px;font-weight:bold;">{{.ServiceName}}</p>
</td></tr>
<tr><td style="padding:32px;">
  <table width="100%" cellpadding="0" cellspacing="0">
    <tr><td style="padding:8px 0;font-size:13px;color:#888;width:140px;">Customer Name</td>
        <td style="padding:8px 0;font-size:15px;color:#333;font-weight:bold;">{{.Name}}</td></tr>
    <tr><td style="padding:8px 0;font-size:13px;color:#888;">Phone</td>
        <td style="padding:8px 0;font-size:15px;"><a href="tel:{{.PhoneDigits}}" style="color:#D42B2B;text-decoration:none;">{{.Phone}}</a></td></tr>
    <tr><td style="padding:8px 0;font-size:13px;color:#888;">Email</td>
        <td style="padding:8px 0;font-size:15px;color:#333;">{{if .Email}}<a href="mailto:{{.Email}}" style="color:#D42B2B;">{{.Email}}</a>{{else}}Not provided{{end}}</td></tr>
    <tr><td style="padding:8px 0;font-size:13px;color:#888;">Service</td>
        <td style="padding:8px 0;font-size:15px;color:#333;font-weight:bold;">{{.ServiceName}}</td></tr>
    <tr><td style="padding:8px 0;font-size:13px;color:#888;">Preferred Date</td>
        <td style="padding:8px 0;font-size:15px;color:#333;">{{.DateFormatted}}</td></tr>
    <tr><td style="padding:8px 0;font-size:13px;color:#888;">Preferred Time</td>
        <td style="padding:8px 0;font-size:15px;color:#333;">{{.TimeName}}</td></tr>
    {{if .Message}}<tr><td style="padding:8px 0;font-size:13px;color:#888;">Message</td>
        <td style="padding:8px 0;font-size:15px;color:#333;">{{.Message}}</td></tr>{{end}}
  </table>
  <p style="margin:24px 0 0;font-size:12px;color:#aaa;">Received {{.Timestamp}}</p>
</td></tr>
</table>
</body>
</html>`))

var customerTemplate = template.Must(template.New("customer").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="margin:0;padding:0;background:#f4f4f4;font-family:Arial,Helvetica,sans-serif;">
<table width="600" cellpadding="0" cellspacing="0" style="background:#ffffff;border-radius:8px;margin:24px auto;">
<tr><td style="background:#0D0D0D;padding:24px 32px;text-align:center;">
  <h1 style="margin:0;color:#ffffff;font-size:20px;">Thanks, {{.Name}}!</h1>
</td></tr>
<tr><td style="padding:32px;font-size:15px;color:#333;line-height:1.6;">
  <p>We received your request for <strong>{{.ServiceName}}</strong> and will reach out shortly to confirm your appointment.</p>
  <p>Preferred date: {{.DateFormatted}}<br>Preferred time: {{.TimeName}}</p>
  <p>Need help sooner? Call us any time at <a href="tel:14084275318" style="color:#D42B2B;">{{.CompanyPhone}}</a> — we're available 24/7.</p>
  <p style="margin-top:24px;">— Bunnies Plumbing &amp; Trenchless Technology</p>
</td></tr>
</table>
</body>
</html>`))
