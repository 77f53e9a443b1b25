package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"lms/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Open Classroom <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by every outgoing email
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A3C6E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A3C6E; line-height: 1.6; }
			.content h2 { color: #1A3C6E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #6DA7D7; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>OPEN CLASSROOM</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Open Classroom. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func SendWelcomeEmail(email, name, role string) {
	subject := "Welcome to Open Classroom"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>Open Classroom</strong>! Your %s account has been created.</p>
		<p>Verify your email address from the app to unlock all features.</p>
	`, name, strings.ToLower(role))

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

// 2. Email verification OTP
func SendOTPEmail(otp, email string) error {
	subject := "Your Open Classroom Verification Code"
	body := fmt.Sprintf(`
		<p>Use the code below to verify your email address.</p>
		<div class="info-box"><strong>%s</strong></div>
		<p>The code expires in 10 minutes. If you did not request it, you can ignore this email.</p>
	`, otp)

	return SendEmail([]string{email}, subject, getEmailTemplate("Email Verification", body))
}

// 3. Assignment due-date reminder (sent by the daily scheduler)
func SendAssignmentReminderEmail(email, name, assignmentTitle, courseTitle, dueDate string) {
	subject := "Reminder: " + assignmentTitle + " is due soon"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>The assignment <strong>%s</strong> in <strong>%s</strong> is due on %s and we have not received your submission yet.</p>
		<div class="info-box">
			<strong>Next Steps:</strong> Open the course page and submit before the deadline.
		</div>
	`, name, assignmentTitle, courseTitle, dueDate)

	go SendEmail([]string{email}, subject, getEmailTemplate("Assignment Due Soon", body))
}
