package notify

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioCaller выполняет автоматические голосовые вызовы через Twilio.
// Номер назначения должен быть в формате E.164.
type TwilioCaller struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioCaller создает клиента вызовов. Все три учетных параметра
// обязательны: их отсутствие - ошибка конфигурации процесса.
func NewTwilioCaller(accountSID, authToken, from string) (*TwilioCaller, error) {
	if accountSID == "" || authToken == "" || from == "" {
		return nil, fmt.Errorf("twilio: TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN or TWILIO_PHONE_NUMBER not configured")
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioCaller{
		client: client,
		from:   from,
	}, nil
}

// PlaceCall синтезирует короткое голосовое объявление по данным сообщения
// и инициирует вызов. Контекст вызова контролируется клиентом Twilio.
func (t *TwilioCaller) PlaceCall(_ context.Context, to string, p Payload) error {
	twiml := fmt.Sprintf(`<Response>
    <Say voice="alice" language="en-US">
        This is an automated dispatch from ResQForce.
    </Say>
    <Pause length="1"/>
    <Say voice="alice" language="en-US">
        New emergency reported.
        Severity: %s.
        Type: %s.
        Description: %s.
        Location: %s.
    </Say>
    <Pause length="1"/>
    <Say voice="alice" language="en-US">
        Please check your email for full details. This is an automated message.
    </Say>
</Response>`,
		p.Severity,
		p.Tag,
		p.Description,
		Landmark(p.Description),
	)

	params := &api.CreateCallParams{}
	params.SetTo(to)
	params.SetFrom(t.from)
	params.SetTwiml(twiml)

	call, err := t.client.Api.CreateCall(params)
	if err != nil {
		return fmt.Errorf("twilio: failed to place call to %s: %w", to, err)
	}
	if call.Sid == nil {
		return fmt.Errorf("twilio: call to %s accepted without sid", to)
	}
	return nil
}
