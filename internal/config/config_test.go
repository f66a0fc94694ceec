package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailJSConfig_Configured(t *testing.T) {
	full := EmailJSConfig{ServiceID: "service_abc", TemplateID: "template_xyz", PublicKey: "pk_123"}
	assert.True(t, full.Configured())

	tests := []struct {
		name string
		cfg  EmailJSConfig
	}{
		{"empty", EmailJSConfig{}},
		{"placeholder service id", EmailJSConfig{ServiceID: placeholderServiceID, TemplateID: "t", PublicKey: "k"}},
		{"placeholder template id", EmailJSConfig{ServiceID: "s", TemplateID: placeholderTemplateID, PublicKey: "k"}},
		{"placeholder public key", EmailJSConfig{ServiceID: "s", TemplateID: "t", PublicKey: placeholderPublicKey}},
		{"missing public key", EmailJSConfig{ServiceID: "s", TemplateID: "t"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.cfg.Configured())
		})
	}
}

func TestKafkaConfig_Configured(t *testing.T) {
	assert.False(t, KafkaConfig{}.Configured())
	assert.True(t, KafkaConfig{Brokers: []string{"localhost:9092"}}.Configured())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "212669372603", cfg.WhatsApp.DestinationNumber)
	assert.False(t, cfg.EmailJS.Configured(), "placeholder credentials count as unconfigured")
	assert.False(t, cfg.Kafka.Configured())
	assert.Equal(t, "lead.events", cfg.Kafka.Topic)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LEADS_SERVICE_PORT", "9000")
	t.Setenv("LEADS_KAFKA_BROKERS", "broker-1:9092, broker-2:9092")
	t.Setenv("LEADS_EMAILJS_SERVICE_ID", "service_abc")
	t.Setenv("LEADS_EMAILJS_TEMPLATE_ID", "template_xyz")
	t.Setenv("LEADS_EMAILJS_PUBLIC_KEY", "pk_123")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Port, "bare port numbers gain a colon")
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.EmailJS.Configured())
}
