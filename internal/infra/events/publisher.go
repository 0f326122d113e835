package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeName = "grooming.events"
	exchangeKind = "topic"

	// RouteReservationCreated routing key события создания бронирования
	RouteReservationCreated = "reservation.created"

	// RouteReservationStatusChanged routing key события смены статуса
	RouteReservationStatusChanged = "reservation.status_changed"
)

// ReservationCreated payload события создания бронирования
type ReservationCreated struct {
	ReservationID int64  `json:"reservationId"`
	PetID         string `json:"petId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	ServiceName   string `json:"serviceName"`
	TotalPrice    int    `json:"totalPrice"`
	CreatedAt     string `json:"createdAt"`
}

// ReservationStatusChanged payload события смены статуса бронирования
type ReservationStatusChanged struct {
	ReservationID int64  `json:"reservationId"`
	OldStatus     string `json:"oldStatus"`
	NewStatus     string `json:"newStatus"`
	ChangedAt     string `json:"changedAt"`
}

// Publisher публикует события бронирования в RabbitMQ topic exchange
// Публикация fire-and-forget: ошибка публикации логируется вызывающим,
// но никогда не проваливает само бронирование
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewPublisher подключается к RabbitMQ и объявляет exchange
func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("events: rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("events: rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchangeName, exchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("events: rabbitmq exchange declare: %w", err)
	}

	return &Publisher{conn: conn, channel: ch}, nil
}

// Publish сериализует payload в JSON и публикует его с указанным routing key
func (p *Publisher) Publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("events: marshal payload: %w", err)
	}

	err = p.channel.PublishWithContext(
		ctx,
		exchangeName,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Timestamp:   time.Now(),
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("events: publish %s: %w", routingKey, err)
	}

	return nil
}

// Close закрывает канал и соединение
func (p *Publisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

// NoopPublisher заглушка для конфигураций без RabbitMQ
type NoopPublisher struct{}

// NewNoopPublisher создает publisher, который ничего не публикует
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

// Publish ничего не делает
func (p *NoopPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	return nil
}

// Close ничего не делает
func (p *NoopPublisher) Close() {}
