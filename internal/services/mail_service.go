package services

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"time"

	"lexia/internal/config"
	"lexia/internal/models/request_models"
)

type MailServiceInterface interface {
	SendEmergencyEmail(ctx context.Context, to, userName, message string, location request_models.Location, attachment *VoiceAttachment) error
}

// SMTPConfig holds the SMTP + branding config.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	UseSSL   bool // true for SMTPS 465, false for STARTTLS 587
}

type smtpMailService struct {
	cfg          SMTPConfig
	emergencyTpl *template.Template
}

func NewSMTPMailService(appCfg *config.Config) MailServiceInterface {
	return &smtpMailService{
		cfg: SMTPConfig{
			Host:     appCfg.SMTPHost,
			Port:     appCfg.SMTPPort,
			Username: appCfg.SMTPUsername,
			Password: appCfg.SMTPPassword,
			From:     appCfg.SMTPFrom,
			FromName: appCfg.SMTPFromName,
			UseSSL:   appCfg.SMTPUseSSL,
		},
		emergencyTpl: template.Must(template.New("emergencyHTML").Parse(emergencyHTMLTemplate)),
	}
}

type emergencyEmailData struct {
	UserName string
	Message  string
	Address  string
	MapsURL  string
	Year     int
}

const emergencyHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Alerta de emergencia</title>
  <style>
    body { margin: 0; padding: 24px; background: #f8fafc; color: #0f172a; font-family: -apple-system, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; }
    .card { max-width: 600px; margin: 0 auto; background: #ffffff; border-radius: 12px; padding: 32px; border-top: 6px solid #dc2626; }
    h1 { margin: 0 0 16px; font-size: 24px; color: #dc2626; }
    p { line-height: 1.6; }
    .location { background: #fef2f2; padding: 12px 16px; border-radius: 8px; }
    .btn { display: inline-block; margin-top: 16px; padding: 12px 24px; background: #dc2626; color: #ffffff !important; text-decoration: none; border-radius: 8px; font-weight: 600; }
    .footer { margin-top: 24px; color: #64748b; font-size: 12px; }
  </style>
</head>
<body>
  <div class="card">
    <h1>🚨 Alerta de emergencia</h1>
    <p>{{.Message}}</p>
    <div class="location">
      {{if .Address}}<p><strong>Dirección:</strong> {{.Address}}</p>{{end}}
      <a class="btn" href="{{.MapsURL}}">Ver ubicación en el mapa</a>
    </div>
    <p class="footer">Enviado automáticamente en nombre de {{.UserName}} · © {{.Year}}</p>
  </div>
</body>
</html>`

func (s *smtpMailService) SendEmergencyEmail(ctx context.Context, to, userName, message string, location request_models.Location, attachment *VoiceAttachment) error {
	var html bytes.Buffer
	err := s.emergencyTpl.Execute(&html, emergencyEmailData{
		UserName: userName,
		Message:  message,
		Address:  location.Address,
		MapsURL:  fmt.Sprintf("https://maps.google.com/?q=%f,%f", location.Latitude, location.Longitude),
		Year:     time.Now().Year(),
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("🚨 EMERGENCIA: %s necesita ayuda", userName)
	msg := s.buildMessage(to, subject, message, html.String(), attachment)
	return s.send(ctx, to, msg)
}

func (s *smtpMailService) buildMessage(to, subject, textBody, htmlBody string, attachment *VoiceAttachment) []byte {
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())
	altBoundary := fmt.Sprintf("alt_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { fmt.Fprintf(&msg, format, a...) }

	write("From: %s\r\n", s.formatFromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/mixed; boundary=%q\r\n", boundary)
	write("\r\n")

	// Text + HTML alternatives
	write("--%s\r\n", boundary)
	write("Content-Type: multipart/alternative; boundary=%q\r\n\r\n", altBoundary)

	write("--%s\r\n", altBoundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", altBoundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", altBoundary)

	if attachment != nil && len(attachment.Content) > 0 {
		write("--%s\r\n", boundary)
		write("Content-Type: audio/mpeg; name=%q\r\n", attachment.Filename)
		write("Content-Disposition: attachment; filename=%q\r\n", attachment.Filename)
		write("Content-Transfer-Encoding: base64\r\n\r\n")

		encoded := base64.StdEncoding.EncodeToString(attachment.Content)
		for len(encoded) > 76 {
			write("%s\r\n", encoded[:76])
			encoded = encoded[76:]
		}
		write("%s\r\n", encoded)
	}

	write("--%s--\r\n", boundary)
	return msg.Bytes()
}

func (s *smtpMailService) send(ctx context.Context, to string, msg []byte) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	dialer := &net.Dialer{Timeout: 10 * time.Second}
	tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}

	var conn net.Conn
	var err error
	if s.cfg.UseSSL {
		// SMTPS (implicit TLS, usually port 465)
		conn, err = tls.DialWithDialer(dialer, "tcp", addr, tlsCfg)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if !s.cfg.UseSSL {
		// Upgrade to TLS if supported
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err = c.StartTLS(tlsCfg); err != nil {
				return err
			}
		}
	}

	if err = c.Auth(auth); err != nil {
		return err
	}
	if err = c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) formatFromHeader() string {
	if s.cfg.FromName == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.From)
}
