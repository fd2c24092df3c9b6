package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

type Producer struct {
	l     *slog.Logger
	w     *kafka.Writer
	topic string
}

func NewProducer(brokers []string, topic string) *Producer {
	l := slog.Default().WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:     l,
		w:     w,
		topic: topic,
	}
}

type AuditCompletedEvent struct {
	ClientID      uuid.UUID `json:"clientId"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	Payments      int       `json:"payments"`
	TotalRetained string    `json:"totalRetained"`
	CompletedAt   time.Time `json:"completedAt"`
}

// SendAuditCompleted is fire and forget: a broker outage must not fail the
// audit that already ran.
func (p *Producer) SendAuditCompleted(
	ctx context.Context,
	clientID uuid.UUID,
	from, to time.Time,
	payments int,
	totalRetained decimal.Decimal,
) {
	event := AuditCompletedEvent{
		ClientID:      clientID,
		StartDate:     from,
		EndDate:       to,
		Payments:      payments,
		TotalRetained: totalRetained.String(),
		CompletedAt:   time.Now(),
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(clientID.String()),
		Value: b,
		Topic: p.topic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
