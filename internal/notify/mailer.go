package notify

import (
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPMailer sends the confirmation over plain-auth SMTP.
type SMTPMailer struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

func (m SMTPMailer) OrderConfirmation(orderID, total, email string) error {
	body := strings.Join([]string{
		"<h2>Order Confirmation</h2>",
		fmt.Sprintf("<p>Thank you for your order! Your order %s has been confirmed.</p>", orderID),
		fmt.Sprintf("<p><strong>Total: $%s</strong></p>", total),
		"<p>Your server will be provisioned within 60 seconds.</p>",
	}, "\r\n")

	msg := strings.Join([]string{
		"From: " + m.From,
		"To: " + email,
		"Subject: Order Confirmation - " + orderID,
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		body,
	}, "\r\n")

	auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)
	return smtp.SendMail(m.Host+":"+m.Port, auth, m.From, []string{email}, []byte(msg))
}
