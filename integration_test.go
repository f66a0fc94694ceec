//go:build integration

package main_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	kafkamodule "github.com/testcontainers/testcontainers-go/modules/kafka"
	"go.uber.org/zap"

	"github.com/agence-menage/service-leads/internal/application"
	"github.com/agence-menage/service-leads/internal/domain/lead"
	"github.com/agence-menage/service-leads/internal/events"
	"github.com/agence-menage/service-leads/internal/notify"
)

const testTopic = "lead.events"

// setupKafka starts a Kafka testcontainer and pre-creates the lead topic.
func setupKafka(t *testing.T) []string {
	t.Helper()
	ctx := context.Background()

	container, err := kafkamodule.Run(ctx, "confluentinc/confluent-local:7.5.0")
	require.NoError(t, err, "failed to start Kafka container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate Kafka container: %v", err)
		}
	})

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err, "failed to get Kafka brokers")

	createTopics(t, brokers, testTopic)
	return brokers
}

// createTopics pre-creates Kafka topics so producers don't fail with "Unknown Topic".
func createTopics(t *testing.T, brokers []string, topics ...string) {
	t.Helper()
	conn, err := kafkago.Dial("tcp", brokers[0])
	require.NoError(t, err, "failed to dial Kafka for topic creation")
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err, "failed to get Kafka controller")

	controllerConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, fmt.Sprintf("%d", controller.Port)))
	require.NoError(t, err, "failed to connect to Kafka controller")
	defer controllerConn.Close()

	topicConfigs := make([]kafkago.TopicConfig, len(topics))
	for i, topic := range topics {
		topicConfigs[i] = kafkago.TopicConfig{
			Topic:             topic,
			NumPartitions:     1,
			ReplicationFactor: 1,
		}
	}
	require.NoError(t, controllerConn.CreateTopics(topicConfigs...), "failed to create Kafka topics")

	// Give Kafka a moment to propagate topic metadata.
	time.Sleep(1 * time.Second)
}

// consumeOneEvent reads from a Kafka topic until it finds an event of the expected type.
func consumeOneEvent(t *testing.T, brokers []string, topic, expectedType string, timeout time.Duration) events.Envelope {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	groupID := fmt.Sprintf("test-assert-%s", uuid.New().String()[:8])
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		Topic:       topic,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafkago.FirstOffset,
	})
	defer func() { _ = reader.Close() }()

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				t.Fatalf("timed out waiting for event type %q on topic %q", expectedType, topic)
			}
			continue
		}
		var envelope events.Envelope
		if err := json.Unmarshal(msg.Value, &envelope); err != nil {
			continue
		}
		if envelope.Type == expectedType {
			return envelope
		}
	}
}

// TestSubmit_PublishesLeadEvent verifies that finalizing a booking request
// through the lead service publishes a lead.submitted event with the booking
// reference and price on the lead topic.
func TestSubmit_PublishesLeadEvent(t *testing.T) {
	brokers := setupKafka(t)
	logger, _ := zap.NewDevelopment()

	producer := events.NewLeadProducer(brokers, testTopic, logger)
	defer func() { _ = producer.Close() }()

	service := application.NewLeadService(
		notify.NewLinkBuilder("212669372603"),
		notify.NewFanout(logger, producer),
		logger,
	)

	draft := lead.Draft{
		RoomCounts: map[string]int{"cuisine": 1, "salle-de-bain": 1, "chambre": 2},
		Frequency:  lead.FrequencyOneShot,
		Contact: lead.Contact{
			FirstName: "Amina",
			LastName:  "Benali",
			Phone:     "661234567",
		},
		Location: lead.Location{City: "Casablanca", Neighborhood: "Maarif"},
	}

	result, err := service.Submit(context.Background(), "menage-regulier", draft)
	require.NoError(t, err, "submit should succeed")
	require.NotEmpty(t, result.Reference)

	envelope := consumeOneEvent(t, brokers, testTopic, events.LeadSubmitted, 30*time.Second)
	assert.Equal(t, "service-leads", envelope.Source)

	var data events.LeadSubmittedData
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	assert.Equal(t, result.Reference, data.Reference)
	assert.Equal(t, "menage-regulier", data.ServiceID)
	assert.Equal(t, 4, data.DurationHours)
	assert.Equal(t, 1, data.CrewSize)
	assert.Equal(t, 240, data.Total)
	assert.Equal(t, "MAD", data.Currency)
	assert.False(t, data.OnQuote)
	assert.Equal(t, "Casablanca", data.City)
	assert.Equal(t, result.Summary, data.Summary)
}
