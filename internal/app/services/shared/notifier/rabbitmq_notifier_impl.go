package notifier

import (
	"context"
	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/exceptions"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher is the part of *amqp091.Channel the notifier needs.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// OTPMessage is consumed by the SMS/WhatsApp gateway worker.
type OTPMessage struct {
	Phone     string    `json:"phone"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

type rabbitMQNotifier struct {
	publisher Publisher
	queueName string
	Log       *zap.Logger
}

func NewRabbitMQNotifier(publisher Publisher, queueName string, logger *zap.Logger) contracts.OTPNotifier {
	return &rabbitMQNotifier{
		publisher: publisher,
		queueName: queueName,
		Log:       logger,
	}
}

func (n *rabbitMQNotifier) SendOTP(ctx context.Context, phone, code string, expiresAt time.Time) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	n.Log.Info("rabbitMQNotifier.SendOTP called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, n.queueName),
	)

	body, err := json.Marshal(OTPMessage{Phone: phone, Code: code, ExpiresAt: expiresAt})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = n.publisher.PublishWithContext(ctx, "", n.queueName, false, false, amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		MessageId:    uuid.NewString(),
		DeliveryMode: amqp091.Persistent,
		Timestamp:    time.Now(),
		Expiration:   expirationMillis(time.Until(expiresAt)),
		Body:         body,
		Headers: amqp091.Table{
			constvars.HeaderXRequestID: requestID,
		},
	})
	if err != nil {
		n.Log.Error("rabbitMQNotifier.SendOTP error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, n.queueName)
	}

	n.Log.Info("rabbitMQNotifier.SendOTP succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, n.queueName),
	)
	return nil
}

// expirationMillis drops the message from the queue once the code has expired.
func expirationMillis(ttl time.Duration) string {
	if ttl <= 0 {
		return "1"
	}
	return strconv.FormatInt(ttl.Milliseconds(), 10)
}
