package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

type Producer struct {
	l             *slog.Logger
	w             *kafka.Writer
	workflowTopic string
	kitchenTopic  string
}

func NewProducer(l *slog.Logger, brokers []string, workflowTopic, kitchenTopic string) *Producer {
	l = l.WithGroup("kafka")

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.Hash{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:             l,
		w:             w,
		workflowTopic: workflowTopic,
		kitchenTopic:  kitchenTopic,
	}
}

type WorkflowEventType string

const (
	EventSessionStarted      WorkflowEventType = "session_started"
	EventOrderPlaced         WorkflowEventType = "order_placed"
	EventSessionEndRequested WorkflowEventType = "session_end_requested"
	EventSessionEnded        WorkflowEventType = "session_ended"
)

type WorkflowEvent struct {
	ID          uuid.UUID         `json:"id"`
	Type        WorkflowEventType `json:"type"`
	SessionID   int64             `json:"session_id"`
	TableNumber string            `json:"table_number"`
	OrderID     int64             `json:"order_id,omitempty"`
	Quantity    int               `json:"quantity,omitempty"`
	Amount      decimal.Decimal   `json:"amount"`
	OccurredAt  time.Time         `json:"occurred_at"`
}

// SendWorkflowEvent publishes e keyed by table so events of one table stay ordered.
func (p *Producer) SendWorkflowEvent(ctx context.Context, e WorkflowEvent) {
	if e.ID == uuid.Nil {
		e.ID = uuid.Must(uuid.NewV4())
	}

	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}

	p.send(ctx, p.workflowTopic, e.TableNumber, e)
}

type KitchenItemQueuedEvent struct {
	OrderItemID int64     `json:"order_item_id"`
	OrderID     int64     `json:"order_id"`
	TableNumber string    `json:"table_number"`
	ItemName    string    `json:"item_name"`
	Quantity    int       `json:"quantity"`
	QueuedAt    time.Time `json:"queued_at"`
}

func (p *Producer) SendKitchenItemQueued(ctx context.Context, e KitchenItemQueuedEvent) {
	p.send(ctx, p.kitchenTopic, strconv.FormatInt(e.OrderID, 10), e)
}

func (p *Producer) send(ctx context.Context, topic, key string, event any) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: b,
		Topic: topic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err), "topic", topic)
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
