package events

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"mna-assessment-service/internal/app/contracts"
	"mna-assessment-service/internal/pkg/constvars"
	"mna-assessment-service/internal/pkg/dto/requests"
	"mna-assessment-service/internal/pkg/exceptions"
)

// AMQPChannel is the part of *amqp091.Channel the publisher uses.
type AMQPChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type eventPublisher struct {
	Channel AMQPChannel
	Queue   string
	Log     *zap.Logger
}

func NewEventPublisher(channel AMQPChannel, queue string, logger *zap.Logger) contracts.EventPublisher {
	return &eventPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}
}

func (p *eventPublisher) PublishAssessmentSubmitted(ctx context.Context, event *requests.AssessmentSubmittedEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Log.Info("eventPublisher.PublishAssessmentSubmitted called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.Queue),
		zap.String(constvars.LoggingAssessmentIDKey, event.AssessmentID),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Type:         event.Type,
		MessageId:    event.AssessmentID,
		Timestamp:    event.CreatedAt,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Headers: amqp091.Table{
			"message_type":     "JSON",
			"requeue_strategy": "DROP",
		},
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		p.Log.Error("eventPublisher.PublishAssessmentSubmitted error calling Channel.PublishWithContext",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Info("eventPublisher.PublishAssessmentSubmitted succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, event.Type),
	)
	return nil
}
