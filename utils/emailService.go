package utils

import (
	"fmt"
	"log"
	"souk/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends a single HTML email through SendGrid. Skipped with a log
// line when no API key is configured (local development, tests).
func SendEmail(toName, toEmail, subject, htmlBody string) error {
	if config.AppConfig.SendGridKey == "" {
		log.Printf("Email skipped (no SendGrid key): %s -> %s", subject, toEmail)
		return nil
	}

	from := mail.NewEmail("Souk", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid responded with %d", resp.StatusCode)
	}

	return nil
}

// SendListingDecisionEmail notifies a seller about a moderation decision
func SendListingDecisionEmail(toName, toEmail, listingTitle, status string) error {
	subject := fmt.Sprintf("Your listing %q was %s", listingTitle, status)
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your listing <b>%s</b> has been reviewed and is now <b>%s</b>.</p>
		<p>— The Souk team</p>`,
		toName, listingTitle, status,
	)
	return SendEmail(toName, toEmail, subject, body)
}
