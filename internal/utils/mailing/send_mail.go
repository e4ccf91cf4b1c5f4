// Package mailing delivers transactional notifications (reservation
// alerts to restaurant owners) over SMTP. Credentials come from the
// application config; callers treat delivery as best effort.
package mailing

import (
	"strconv"

	"gopkg.in/gomail.v2"

	"foodbridge/internal/utils"
)

func SendMail(toEmail string, subject string, body string) error {
	host := utils.GetConfig("SMTP_HOST")
	sender := utils.GetConfig("SMTP_AUTH_EMAIL")
	password := utils.GetConfig("SMTP_AUTH_PASSWORD")

	port, err := strconv.Atoi(utils.GetConfig("SMTP_PORT"))
	if err != nil {
		return err
	}

	message := gomail.NewMessage()
	message.SetHeader("From", sender)
	message.SetHeader("To", toEmail)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", body)

	return gomail.NewDialer(host, port, sender, password).DialAndSend(message)
}
