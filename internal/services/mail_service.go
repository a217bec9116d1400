package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"time"

	"memberpay/internal/config"
	"memberpay/internal/models/db_models"
)

// IMailService delivers the association's transactional mail. All
// sends are best-effort; callers log and ignore failures.
type IMailService interface {
	SendRegistrationMail(member *db_models.Member, plainPassword string) error
	SendActivationMail(member *db_models.Member) error
	SendResetCodeMail(email, name, code string) error
}

type smtpMailService struct {
	cfg     config.SMTPConfig
	appName string
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg config.SMTPConfig, appName string) (IMailService, error) {
	return &smtpMailService{
		cfg:     cfg,
		appName: appName,
		htmlTpl: template.Must(template.New("mailHTML").Parse(mailHTMLTemplate)),
		textTpl: template.Must(template.New("mailText").Parse(mailTextTemplate)),
	}, nil
}

type mailData struct {
	Title   string
	Lines   []string
	AppName string
	Year    int
}

const mailHTMLTemplate = `<!doctype html>
<html>
<head><meta charset="UTF-8"><title>{{.Title}}</title></head>
<body style="font-family:Arial,Helvetica,sans-serif;background:#f4f5f7;margin:0;padding:24px">
  <div style="max-width:600px;margin:0 auto;background:#ffffff;border-radius:8px;padding:32px">
    <h2 style="color:#1a2332;margin-top:0">{{.Title}}</h2>
    {{range .Lines}}<p style="color:#475569;line-height:1.6">{{.}}</p>{{end}}
    <p style="color:#94a3b8;font-size:12px;margin-bottom:0">&copy; {{.Year}} {{.AppName}}. All rights reserved.</p>
  </div>
</body>
</html>`

const mailTextTemplate = `{{.Title}}

{{range .Lines}}{{.}}
{{end}}
{{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) SendRegistrationMail(member *db_models.Member, plainPassword string) error {
	return s.send(member.Email, s.appName, mailData{
		Title: "Welcome to " + s.appName,
		Lines: []string{
			fmt.Sprintf("Dear %s, your account has been created and is pending review.", member.FullName()),
			fmt.Sprintf("Membership ID: %s", member.MembershipID),
			fmt.Sprintf("Username: %s", member.Username),
			fmt.Sprintf("Password: %s", plainPassword),
			"You will be notified once an administrator activates your account.",
		},
	})
}

func (s *smtpMailService) SendActivationMail(member *db_models.Member) error {
	subject := fmt.Sprintf("Your %s Account Has Been Successfully Activated", s.appName)
	return s.send(member.Email, subject, mailData{
		Title: subject,
		Lines: []string{
			fmt.Sprintf("Dear %s, your membership account is now active.", member.FullName()),
			fmt.Sprintf("Membership ID: %s", member.MembershipID),
			fmt.Sprintf("Username: %s", member.Username),
			"You can now log in and complete your subscription payment.",
		},
	})
}

func (s *smtpMailService) SendResetCodeMail(email, name, code string) error {
	return s.send(email, s.appName, mailData{
		Title: "Reset your password",
		Lines: []string{
			fmt.Sprintf("Dear %s, we received a request to reset your password.", name),
			fmt.Sprintf("Your reset code is: %s", code),
			"The code expires in one hour. If you didn't request this, you can ignore this email.",
		},
	})
}

func (s *smtpMailService) send(to, subject string, data mailData) error {
	data.AppName = s.appName
	data.Year = time.Now().Year()

	var htmlBody, textBody bytes.Buffer
	if err := s.htmlTpl.Execute(&htmlBody, data); err != nil {
		return err
	}
	if err := s.textTpl.Execute(&textBody, data); err != nil {
		return err
	}

	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", textBody.String())

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", htmlBody.String())

	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
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
	if _, err = w.Write(msg.Bytes()); err != nil {
		return err
	}
	return w.Close()
}
