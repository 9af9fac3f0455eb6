package notify_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/notify"
	"github.com/shenikar/emergency_dispatch_system/internal/notify/mocks"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

// newTestDispatcher — вспомогательная функция для создания диспетчера с моками.
func newTestDispatcher(t *testing.T) (*notify.Dispatcher, *mocks.MockEmailSender, *mocks.MockVoiceCaller) {
	ctrl := gomock.NewController(t)
	emailMock := mocks.NewMockEmailSender(ctrl)
	voiceMock := mocks.NewMockVoiceCaller(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return notify.NewDispatcher(emailMock, voiceMock, logger), emailMock, voiceMock
}

func strPtr(s string) *string {
	return &s
}

func testPayload() notify.Payload {
	return notify.Payload{
		EmergencyID: uuid.NewString(),
		Description: "flooding near bridge",
		Tag:         "flood",
		Severity:    models.SeverityHigh,
		Location:    "19.07600, 72.87770",
		ReportedAt:  time.Now().UTC(),
	}
}

func TestNotify_EmailThenCall(t *testing.T) {
	// Подготовка
	dispatcher, emailMock, voiceMock := newTestDispatcher(t)
	ctx := context.Background()
	payload := testPayload()
	agency := &models.Agency{
		ID:    uuid.New(),
		Email: "b@x.com",
		Phone: strPtr("+911234567890"),
	}

	// Ожидания: сначала email, затем голосовой вызов
	emailCall := emailMock.EXPECT().
		SendAssignment(ctx, "b@x.com", payload).
		Return(nil).
		Times(1)
	voiceMock.EXPECT().
		PlaceCall(ctx, "+911234567890", payload).
		After(emailCall).
		Return(nil).
		Times(1)

	// Действие
	dispatcher.Notify(ctx, agency, payload)
}

func TestNotify_NoPhoneSkipsCall(t *testing.T) {
	// Подготовка
	dispatcher, emailMock, voiceMock := newTestDispatcher(t)
	ctx := context.Background()
	payload := testPayload()
	agency := &models.Agency{
		ID:    uuid.New(),
		Email: "a@x.com",
	}

	// Ожидания: только email, голосовой канал не трогаем
	emailMock.EXPECT().SendAssignment(ctx, "a@x.com", payload).Return(nil).Times(1)
	voiceMock.EXPECT().PlaceCall(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	dispatcher.Notify(ctx, agency, payload)
}

func TestNotify_NoEmailSkipsEmail(t *testing.T) {
	// Подготовка
	dispatcher, emailMock, voiceMock := newTestDispatcher(t)
	ctx := context.Background()
	payload := testPayload()
	agency := &models.Agency{
		ID:    uuid.New(),
		Phone: strPtr("+911234567890"),
	}

	// Ожидания
	emailMock.EXPECT().SendAssignment(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	voiceMock.EXPECT().PlaceCall(ctx, "+911234567890", payload).Return(nil).Times(1)

	// Действие
	dispatcher.Notify(ctx, agency, payload)
}

func TestNotify_EmailFailureDoesNotBlockCall(t *testing.T) {
	// Подготовка
	dispatcher, emailMock, voiceMock := newTestDispatcher(t)
	ctx := context.Background()
	payload := testPayload()
	agency := &models.Agency{
		ID:    uuid.New(),
		Email: "b@x.com",
		Phone: strPtr("+911234567890"),
	}

	// Ожидания: провал email не мешает голосовому вызову
	emailMock.EXPECT().
		SendAssignment(ctx, "b@x.com", payload).
		Return(errors.New("provider rejected")).
		Times(1)
	voiceMock.EXPECT().
		PlaceCall(ctx, "+911234567890", payload).
		Return(nil).
		Times(1)

	// Действие: ошибки каналов не распространяются
	dispatcher.Notify(ctx, agency, payload)
}

func TestNotify_NilAgencyDoesNothing(t *testing.T) {
	// Подготовка
	dispatcher, emailMock, voiceMock := newTestDispatcher(t)

	// Ожидания: ни один канал не вызывается
	emailMock.EXPECT().SendAssignment(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	voiceMock.EXPECT().PlaceCall(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	dispatcher.Notify(context.Background(), nil, testPayload())
}
