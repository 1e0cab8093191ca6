package services

import (
	"fmt"
	"html"
	"log"

	"github.com/Alok-CS-2022/import-export-site/app/models"
	"github.com/leekchan/accounting"
	"gopkg.in/gomail.v2"
)

type MailerConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	NotifyTo string
}

// Mailer sends the inquiry notification to the shop owner. It is a
// side channel: callers log its errors and move on.
type Mailer struct {
	config MailerConfig
}

func NewMailer(cfg MailerConfig) *Mailer {
	return &Mailer{config: cfg}
}

func (m *Mailer) SendInquiryNotification(inquiry *models.Inquiry) error {
	if m.config.Host == "" || m.config.NotifyTo == "" {
		log.Println("Mailer: email not configured, skipping inquiry notification")
		return nil
	}

	subject := fmt.Sprintf("New inquiry from %s", inquiry.CustomerName)
	body := buildInquiryEmailBody(inquiry)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", m.config.NotifyTo)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.config.Host, m.config.Port, m.config.Username, m.config.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send inquiry notification: %w", err)
	}

	return nil
}

func buildInquiryEmailBody(inquiry *models.Inquiry) string {
	usd := accounting.Accounting{Symbol: "$", Precision: 2}

	total := "to be quoted"
	if inquiry.TotalAmount.Valid {
		total = usd.FormatMoneyDecimal(inquiry.TotalAmount.Decimal)
	}

	phone := inquiry.CustomerPhone
	if phone == "" {
		phone = "-"
	}

	return fmt.Sprintf(`
        <!DOCTYPE html>
        <html>
        <head>
            <meta charset="utf-8">
            <style>
                body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
                .container { max-width: 600px; margin: 20px auto; padding: 20px; border: 1px solid #ddd; border-radius: 5px; }
                .row { margin: 6px 0; }
                .label { font-weight: bold; }
                .message { background-color: #f8f8f8; padding: 12px; border-radius: 5px; white-space: pre-wrap; }
            </style>
        </head>
        <body>
            <div class="container">
                <h2>New customer inquiry</h2>
                <div class="row"><span class="label">Name:</span> %s</div>
                <div class="row"><span class="label">Email:</span> %s</div>
                <div class="row"><span class="label">Phone:</span> %s</div>
                <div class="row"><span class="label">Product:</span> %s</div>
                <div class="row"><span class="label">Total:</span> %s</div>
                <div class="row"><span class="label">Message:</span></div>
                <div class="message">%s</div>
            </div>
        </body>
        </html>
    `,
		html.EscapeString(inquiry.CustomerName),
		html.EscapeString(inquiry.CustomerEmail),
		html.EscapeString(phone),
		html.EscapeString(inquiry.ProductName),
		total,
		html.EscapeString(inquiry.Message),
	)
}
