package events

import (
	"context"
	"registrar-service/internal/app/contracts"
	"registrar-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

// Envelope is the wire format for schedule change events consumed by
// downstream services (notifications, reporting).
type Envelope struct {
	Action     string      `json:"action"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

type rabbitMQPublisher struct {
	connection *amqp091.Connection
	queueName  string
}

func NewRabbitMQPublisher(connection *amqp091.Connection, queueName string) contracts.EventPublisher {
	return &rabbitMQPublisher{
		connection: connection,
		queueName:  queueName,
	}
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, action string, payload interface{}) error {
	body, err := json.Marshal(Envelope{
		Action:     action,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	channel, err := p.connection.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQOpenChannel(err)
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(p.queueName, true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	err = channel.PublishWithContext(
		ctx,
		"",
		p.queueName,
		false,
		false,
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}
	return nil
}
