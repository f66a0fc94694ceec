package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/agence-menage/service-leads/internal/domain/lead"
)

// LeadSubmitted is the event type published for every finalized booking
// request. Downstream consumers (CRM import, follow-up reminders) key on it.
const LeadSubmitted = "lead.submitted"

const eventSource = "service-leads"

// Envelope is the JSON wrapper around every published event.
type Envelope struct {
	ID     string          `json:"id"`
	Source string          `json:"source"`
	Type   string          `json:"type"`
	Time   time.Time       `json:"time"`
	Data   json.RawMessage `json:"data"`
}

// LeadSubmittedData is the payload of a LeadSubmitted event.
type LeadSubmittedData struct {
	BookingID     uuid.UUID `json:"booking_id"`
	Reference     string    `json:"reference"`
	ServiceID     string    `json:"service_id"`
	Audience      string    `json:"audience"`
	Frequency     string    `json:"frequency"`
	DurationHours int       `json:"duration_hours"`
	CrewSize      int       `json:"crew_size"`
	Total         int       `json:"total"`
	Currency      string    `json:"currency"`
	OnQuote       bool      `json:"on_quote"`
	City          string    `json:"city"`
	CreatedAt     time.Time `json:"created_at"`
	Summary       string    `json:"summary"`
}

// LeadProducer publishes lead events to Kafka. It satisfies the notification
// Dispatcher contract so it can join the dispatch fan-out as a best-effort
// channel.
type LeadProducer struct {
	writer *kafkago.Writer
	logger *zap.Logger
}

// NewLeadProducer creates a producer writing to the given brokers and topic.
func NewLeadProducer(brokers []string, topic string, logger *zap.Logger) *LeadProducer {
	writer := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireOne,
	}
	return &LeadProducer{writer: writer, logger: logger}
}

// Name identifies the channel in dispatch logs.
func (p *LeadProducer) Name() string { return "kafka" }

// Dispatch publishes a LeadSubmitted event for the booking. One attempt; the
// caller logs and swallows failures.
func (p *LeadProducer) Dispatch(ctx context.Context, booking *lead.Booking, summary string) error {
	price := booking.Price()
	est := booking.EstimateResult()

	data, err := json.Marshal(LeadSubmittedData{
		BookingID:     booking.ID(),
		Reference:     booking.Reference(),
		ServiceID:     booking.ServiceID(),
		Audience:      string(booking.Audience()),
		Frequency:     string(booking.Frequency()),
		DurationHours: est.DurationHours,
		CrewSize:      est.CrewSize,
		Total:         price.Total,
		Currency:      price.Currency,
		OnQuote:       price.OnQuote,
		City:          booking.Location().City,
		CreatedAt:     booking.CreatedAt(),
		Summary:       summary,
	})
	if err != nil {
		return fmt.Errorf("failed to encode lead event data: %w", err)
	}

	envelope, err := json.Marshal(Envelope{
		ID:     uuid.NewString(),
		Source: eventSource,
		Type:   LeadSubmitted,
		Time:   time.Now().UTC(),
		Data:   data,
	})
	if err != nil {
		return fmt.Errorf("failed to encode lead event envelope: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(booking.Reference()),
		Value: envelope,
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", LeadSubmitted, err)
	}

	p.logger.Debug("published lead event",
		zap.String("reference", booking.Reference()),
		zap.String("type", LeadSubmitted),
	)
	return nil
}

// Close closes the underlying Kafka writer.
func (p *LeadProducer) Close() error {
	return p.writer.Close()
}
