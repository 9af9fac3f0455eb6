package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridSender отправляет email-уведомления через SendGrid.
type SendGridSender struct {
	client *sendgrid.Client
	from   string
}

// NewSendGridSender создает отправителя. Отсутствие ключа или адреса
// отправителя - ошибка конфигурации процесса, а не отдельного вызова.
func NewSendGridSender(apiKey, from string) (*SendGridSender, error) {
	if apiKey == "" || from == "" {
		return nil, fmt.Errorf("sendgrid: EMAIL_ADDRESS or SENDGRID_API_KEY not configured")
	}
	return &SendGridSender{
		client: sendgrid.NewSendClient(apiKey),
		from:   from,
	}, nil
}

// SendAssignment отправляет письмо о назначении по фиксированному шаблону.
func (s *SendGridSender) SendAssignment(ctx context.Context, to string, p Payload) error {
	body := fmt.Sprintf(`A new emergency requires attention:
Severity: %s
Type: %s
Description: %s
Location: Approx. %s
Reported At: %s
---
ResQForce Automated System
(ID: %s)
`,
		capitalize(p.Severity),
		capitalize(p.Tag),
		p.Description,
		p.Location,
		p.ReportedAt.UTC().Format("2006-01-02 15:04:05 UTC"),
		p.EmergencyID,
	)

	subject := fmt.Sprintf("New Emergency Assignment: %s", capitalize(p.Tag))
	message := mail.NewSingleEmail(
		mail.NewEmail("ResQForce", s.from),
		subject,
		mail.NewEmail("", to),
		body,
		"",
	)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid: failed to send email to %s: %w", to, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid: send to %s rejected with status %d", to, resp.StatusCode)
	}
	return nil
}

// capitalize поднимает первый символ строки в верхний регистр, как в шаблонах писем
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
