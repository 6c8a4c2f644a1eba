package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"patient-records-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func TestRabbitMQNotifier_SendOTP(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")
	publisher := new(MockPublisher)
	notifier := NewRabbitMQNotifier(publisher, "patient_otp", zap.NewNop())
	expiresAt := time.Now().Add(5 * time.Minute)

	var published amqp091.Publishing
	publisher.On("PublishWithContext", ctx, "", "patient_otp", false, false, mock.AnythingOfType("amqp091.Publishing")).
		Run(func(args mock.Arguments) { published = args.Get(5).(amqp091.Publishing) }).
		Return(nil).Once()

	require.NoError(t, notifier.SendOTP(ctx, "+27-82-123-4567", "123456", expiresAt))
	publisher.AssertExpectations(t)

	var message OTPMessage
	require.NoError(t, json.Unmarshal(published.Body, &message))
	assert.Equal(t, "+27-82-123-4567", message.Phone)
	assert.Equal(t, "123456", message.Code)
	assert.Equal(t, amqp091.Persistent, published.DeliveryMode)
	assert.Equal(t, "req-1", published.Headers[constvars.HeaderXRequestID])
	assert.NotEmpty(t, published.Expiration)
}

func TestRabbitMQNotifier_SendOTPPublishFailure(t *testing.T) {
	ctx := context.Background()
	publisher := new(MockPublisher)
	notifier := NewRabbitMQNotifier(publisher, "patient_otp", zap.NewNop())

	publisher.On("PublishWithContext", ctx, "", "patient_otp", false, false, mock.Anything).
		Return(errors.New("channel closed")).Once()

	err := notifier.SendOTP(ctx, "+27-82-123-4567", "123456", time.Now().Add(time.Minute))
	assert.Error(t, err)
}

func TestExpirationMillis(t *testing.T) {
	assert.Equal(t, "1", expirationMillis(-time.Second))
	assert.Equal(t, "1500", expirationMillis(1500*time.Millisecond))
}
