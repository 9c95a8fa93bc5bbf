package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"hotel-booking/internal/domain/support"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher writes events to a durable RabbitMQ queue through the default exchange.
type AMQPPublisher struct {
	conn  *amqp.Connection
	mu    sync.Mutex
	ch    *amqp.Channel
	queue string
}

func DialAMQP(url, queue string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: dial failed: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: channel open failed: %w", err)
	}
	if _, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: queue declare failed: %w", err)
	}
	return &AMQPPublisher{conn: conn, ch: ch, queue: queue}, nil
}

func (p *AMQPPublisher) Handle(ctx context.Context, ev support.MessageAppended) error {
	body, err := encode(ev)
	if err != nil {
		return fmt.Errorf("rabbitmq: marshal event: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         EventTypeMessageAppended,
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		pub,
	); err != nil {
		return fmt.Errorf("rabbitmq: publish failed: %w", err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	chErr := p.ch.Close()
	connErr := p.conn.Close()
	if chErr != nil {
		return chErr
	}
	return connErr
}
