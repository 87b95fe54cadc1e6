// Package sender реализует отправку писем воронки: пользовательские письма
// о доставке бесплатного плана и апселле, а также служебные уведомления
// администратору. Одно SMTP-соединение на отправку.
package sender

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/welforehealth/funnel/internal/lib/sl"
	"github.com/welforehealth/funnel/internal/lib/smtp"
)

// Темы писем воронки.
const (
	SubjectFreePlan = "Your FREE 3-Day Meal Plan"
	SubjectUpsell   = "Upgrade Your Meal Plan"
)

// mimeBoundary разделяет части multipart/alternative сообщения.
const mimeBoundary = "flavor-reset-alt"

// Transport описывает SMTP-транспорт, через который уходят письма.
type Transport interface {
	Connect() (smtp.Client, error)
	GetSMTPUser() string
}

// SenderService собирает и отправляет письма.
type SenderService struct {
	transport  Transport
	adminEmail string
	log        *slog.Logger
}

// NewSenderService создает новый экземпляр SenderService.
// adminEmail — адрес получателя служебных уведомлений (может быть пустым,
// тогда уведомления не отправляются).
func NewSenderService(transport Transport, adminEmail string, log *slog.Logger) *SenderService {
	return &SenderService{
		transport:  transport,
		adminEmail: adminEmail,
		log:        log,
	}
}

// Send отправляет одно HTML-письмо. Любая ошибка транспорта или
// аутентификации логируется и приводит к false: за границу сервиса
// ошибки отправки не выходят.
func (s *SenderService) Send(toEmail, subject, bodyHTML string) bool {
	msg := strings.Join([]string{
		"From: " + s.transport.GetSMTPUser(),
		"To: " + toEmail,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: multipart/alternative; boundary="` + mimeBoundary + `"`,
		"",
		"--" + mimeBoundary,
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		bodyHTML,
		"--" + mimeBoundary + "--",
		"",
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return false
	}
	defer client.Close()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("failed to set MAIL FROM", sl.Err(err))
		return false
	}
	if err := client.Rcpt(toEmail); err != nil {
		s.log.Error("failed to set RCPT TO", sl.Email(toEmail), sl.Err(err))
		return false
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get Data writer", sl.Err(err))
		return false
	}
	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return false
	}
	if err = wc.Close(); err != nil {
		s.log.Error("failed to close Data writer", sl.Err(err))
		return false
	}
	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return false
	}

	s.log.Info("email sent successfully", sl.Email(toEmail), slog.String("subject", subject))
	return true
}

// SendAdminNotification отправляет администратору уведомление о доставке
// плана. Сбой никогда не влияет на ответ пользователю — только лог.
func (s *SenderService) SendAdminNotification(userEmail, planType, userStatus string) {
	if s.adminEmail == "" {
		s.log.Warn("admin email is not configured, skipping notification")
		return
	}

	subject := fmt.Sprintf("WelFore Health - %s Plan Delivered to %s User", planType, userStatus)
	body := fmt.Sprintf(`
    <html>
    <body>
        <h2>Plan Delivery Notification</h2>
        <p><strong>User Email:</strong> %s</p>
        <p><strong>Plan Type:</strong> %s</p>
        <p><strong>User Status:</strong> %s</p>
        <p><strong>Timestamp:</strong> %s</p>
    </body>
    </html>
    `, userEmail, planType, userStatus, time.Now().Format("2006-01-02 15:04:05"))

	if !s.Send(s.adminEmail, subject, body) {
		s.log.Error("failed to send admin notification", sl.Email(s.adminEmail))
	}
}
