package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"praxis/config"
)

// SendEmail sends an HTML email through the configured SMTP account.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Praxis <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
}

// SendInviteEmail mails a course join link to a patient.
func SendInviteEmail(to, courseTitle, joinURL string) error {
	subject := fmt.Sprintf("You have been invited to %s", courseTitle)
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto;">
			<h2>Your therapist invited you to a course</h2>
			<p>You can join <strong>%s</strong> using the link below:</p>
			<p><a href="%s">%s</a></p>
			<p>If you were not expecting this invitation you can ignore this email.</p>
		</div>`, courseTitle, joinURL, joinURL)

	return SendEmail([]string{to}, subject, body)
}
