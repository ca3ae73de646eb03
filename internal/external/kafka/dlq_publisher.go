package kafka

import (
	"context"
	"time"

	"paytrailgw/pkg/logger"

	"github.com/segmentio/kafka-go"
)

// DLQPublisher publishes permanently failed notification items to a dead
// letter topic for manual reconciliation.
type DLQPublisher struct {
	writer *kafka.Writer
	logger *logger.Logger
}

func NewDLQPublisher(l *logger.Logger, brokers []string, dlqTopic string) *DLQPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        dlqTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}

	return &DLQPublisher{
		writer: writer,
		logger: l,
	}
}

// PublishToDLQ sends a failed item to the DLQ with error info in headers.
func (p *DLQPublisher) PublishToDLQ(ctx context.Context, key, value []byte, cause error) error {
	msg := kafka.Message{
		Key:   key,
		Value: value,
		Headers: []kafka.Header{
			{Key: "error", Value: []byte(cause.Error())},
			{Key: "failed_at", Value: []byte(time.Now().UTC().Format(time.RFC3339))},
		},
	}

	if writeErr := p.writer.WriteMessages(ctx, msg); writeErr != nil {
		p.logger.Error("Failed to publish to DLQ: topic=%s key=%s error=%v original_error=%v",
			p.writer.Topic, string(key), writeErr, cause)
		return writeErr
	}

	p.logger.Warn("Message sent to DLQ: topic=%s key=%s error=%v",
		p.writer.Topic, string(key), cause)
	return nil
}

// Close closes the DLQ writer.
func (p *DLQPublisher) Close() error {
	return p.writer.Close()
}
