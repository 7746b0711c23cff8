package queue

import (
	"fmt"

	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/doanhtu/image-interpolation/internal/services/processor"
	"github.com/doanhtu/image-interpolation/internal/services/storage"
)

const queueName = "image_processing"

type Service struct {
	conn        *amqp.Connection
	channel     *amqp.Channel
	logger      *zap.Logger
	queueName   string
	processor   *processor.ImageProcessor
	storage     *storage.Service
	maxFileSize int64
}

func NewService(
	rabbitmqURL string,
	proc *processor.ImageProcessor,
	store *storage.Service,
	logger *zap.Logger,
	maxFileSize int64,
) (*Service, error) {
	conn, err := amqp.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &Service{
		conn:        conn,
		channel:     channel,
		logger:      logger,
		queueName:   queueName,
		processor:   proc,
		storage:     store,
		maxFileSize: maxFileSize,
	}, nil
}

// Close closes the queue connection.
func (q *Service) Close() error {
	if q.channel != nil {
		q.channel.Close()
	}
	if q.conn != nil {
		q.conn.Close()
	}
	return nil
}
