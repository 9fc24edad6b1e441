package submission

import (
	"calculator-service/internal/app/contracts"
	"calculator-service/internal/app/models"
	"calculator-service/internal/pkg/constvars"
	"calculator-service/internal/pkg/exceptions"
	"context"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

// amqpPublisher is the part of *amqp091.Channel the sink uses.
type amqpPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type rabbitMQSink struct {
	channel amqpPublisher
	queue   string
}

// NewRabbitMQSink opens a channel on connection and declares queue as durable.
func NewRabbitMQSink(connection *amqp091.Connection, queue string) (contracts.SubmissionSink, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, err
	}
	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		channel.Close()
		return nil, err
	}
	return newRabbitMQSink(channel, queue), nil
}

func newRabbitMQSink(channel amqpPublisher, queue string) *rabbitMQSink {
	return &rabbitMQSink{channel: channel, queue: queue}
}

func (s *rabbitMQSink) Name() string {
	return constvars.SubmissionSinkRabbitMQ
}

func (s *rabbitMQSink) Deliver(ctx context.Context, envelope *models.SubmissionEnvelope) error {
	body, err := json.Marshal(envelope)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":    "JSON",
		"calculator_type": string(envelope.CalculatorType),
		"sealed":          envelope.Sealed,
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    envelope.SubmissionID,
		Headers:      headers,
	}

	err = s.channel.PublishWithContext(ctx, "", s.queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queue)
	}
	return nil
}
