package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/blossomkart/blossomkart/internal/adapter/config"
	"github.com/blossomkart/blossomkart/internal/core/domain"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type orderEvent struct {
	EventID      string    `json:"event_id"`
	Type         string    `json:"type"`
	OrderID      string    `json:"order_id"`
	Username     string    `json:"username"`
	ProductName  string    `json:"product_name"`
	Quantity     int       `json:"quantity"`
	TotalAmount  string    `json:"total_amount"`
	Status       string    `json:"status"`
	PurchaseDate string    `json:"purchase_date"`
	DeliveryTime string    `json:"delivery_time"`
	Timestamp    time.Time `json:"timestamp"`
}

// KafkaPublisher pushes order events to a single topic, keyed by order id so
// events for one order stay in partition order.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher returns nil when no brokers are configured; the service
// treats a nil publisher as events-disabled.
func NewKafkaPublisher(conf *config.Kafka) *KafkaPublisher {
	brokers := make([]string, 0)
	for _, b := range strings.Split(conf.Brokers, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return nil
	}

	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        conf.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *KafkaPublisher) PublishOrderCreated(ctx context.Context, order *domain.Order) error {
	return p.publish(ctx, "order.created", order)
}

func (p *KafkaPublisher) PublishOrderCancelled(ctx context.Context, order *domain.Order) error {
	return p.publish(ctx, "order.cancelled", order)
}

func (p *KafkaPublisher) publish(ctx context.Context, eventType string, order *domain.Order) error {
	event := orderEvent{
		EventID:      uuid.NewString(),
		Type:         eventType,
		OrderID:      order.ID,
		Username:     order.Username,
		ProductName:  order.ProductName,
		Quantity:     order.Quantity,
		TotalAmount:  order.TotalAmount.String(),
		Status:       string(order.Status),
		PurchaseDate: order.PurchaseDate.Format("2006-01-02"),
		DeliveryTime: string(order.DeliveryTime),
		Timestamp:    time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.ID),
		Value: data,
		Time:  event.Timestamp,
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
