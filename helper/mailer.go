package helper

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendMail mengirim email notifikasi. Gagal kirim hanya dicatat di log,
// tidak pernah menggagalkan request pemanggil.
func SendMail(to, subject, body string) {
	host := os.Getenv("MAIL_HOST")
	if host == "" || to == "" {
		return
	}

	port, err := strconv.Atoi(os.Getenv("MAIL_PORT"))
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(host, port, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"))

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("MAIL_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := dialer.DialAndSend(m); err != nil {
		log.Printf("Gagal mengirim email ke %s: %v", to, err)
	}
}
