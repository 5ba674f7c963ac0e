package utils

import (
	"fmt"
	"log"

	"learnhub/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendEmail delivers one email through Sendgrid. A missing API key
// disables delivery; callers fire and forget.
func sendEmail(to, subject, htmlBody string) {
	if config.AppConfig.SendgridApiKey == "" {
		return
	}

	from := mail.NewEmail("LearnHub", config.AppConfig.EmailSender)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), "", htmlBody)
	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)

	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return
	}
	if resp.StatusCode >= 400 {
		log.Printf("Email to %s rejected with status %d: %s", to, resp.StatusCode, resp.Body)
	}
}

// SendWelcomeEmail greets a freshly registered user.
func SendWelcomeEmail(email, firstName string) {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif;">
				<h2>Welcome to LearnHub, %s!</h2>
				<p>Your account is ready. Browse the course catalog and enroll to start learning.</p>
			</body>
		</html>`, firstName)

	sendEmail(email, "Welcome to LearnHub", body)
}

// SendEnrollmentEmail confirms a course enrollment.
func SendEnrollmentEmail(email, firstName, courseTitle string) {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif;">
				<h2>You're enrolled, %s!</h2>
				<p>You now have access to <strong>%s</strong>. Your progress is tracked from your first chapter.</p>
			</body>
		</html>`, firstName, courseTitle)

	sendEmail(email, fmt.Sprintf("Enrolled: %s", courseTitle), body)
}
