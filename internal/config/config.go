package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Placeholder defaults shipped in .env.example. A channel left at its
// placeholder counts as unconfigured.
const (
	placeholderServiceID  = "service_placeholder"
	placeholderTemplateID = "template_placeholder"
	placeholderPublicKey  = "public_key_placeholder"
)

// WhatsAppConfig holds the primary channel's destination.
type WhatsAppConfig struct {
	DestinationNumber string
}

// EmailJSConfig holds the transactional email channel credentials.
type EmailJSConfig struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
}

// Configured reports whether all three EmailJS values are present and none is
// a placeholder. Checked once at startup when wiring the dispatcher, never in
// the call path.
func (c EmailJSConfig) Configured() bool {
	switch {
	case c.ServiceID == "" || c.ServiceID == placeholderServiceID:
		return false
	case c.TemplateID == "" || c.TemplateID == placeholderTemplateID:
		return false
	case c.PublicKey == "" || c.PublicKey == placeholderPublicKey:
		return false
	}
	return true
}

// KafkaConfig holds the optional lead-event channel settings.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Configured reports whether any broker was supplied.
func (c KafkaConfig) Configured() bool {
	return len(c.Brokers) > 0
}

// ServiceConfig holds all configuration for the leads service.
type ServiceConfig struct {
	Port     string
	AppEnv   string
	LogLevel string

	WhatsApp WhatsAppConfig
	EmailJS  EmailJSConfig
	Kafka    KafkaConfig
}

// Load reads configuration from environment variables, with a best-effort
// .env file for local development.
func Load() (*ServiceConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("LEADS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("SERVICE_PORT", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("WHATSAPP_NUMBER", "212669372603")
	v.SetDefault("EMAILJS_SERVICE_ID", placeholderServiceID)
	v.SetDefault("EMAILJS_TEMPLATE_ID", placeholderTemplateID)
	v.SetDefault("EMAILJS_PUBLIC_KEY", placeholderPublicKey)
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TOPIC", "lead.events")

	port := v.GetString("SERVICE_PORT")
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	var brokers []string
	if raw := v.GetString("KAFKA_BROKERS"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	return &ServiceConfig{
		Port:     port,
		AppEnv:   v.GetString("APP_ENV"),
		LogLevel: v.GetString("LOG_LEVEL"),
		WhatsApp: WhatsAppConfig{
			DestinationNumber: v.GetString("WHATSAPP_NUMBER"),
		},
		EmailJS: EmailJSConfig{
			ServiceID:  v.GetString("EMAILJS_SERVICE_ID"),
			TemplateID: v.GetString("EMAILJS_TEMPLATE_ID"),
			PublicKey:  v.GetString("EMAILJS_PUBLIC_KEY"),
		},
		Kafka: KafkaConfig{
			Brokers: brokers,
			Topic:   v.GetString("KAFKA_TOPIC"),
		},
	}, nil
}
