package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/agence-menage/service-leads/internal/domain/lead"
)

// defaultEmailJSEndpoint is the EmailJS REST send endpoint. EmailJS ships no
// Go SDK; the payload shape below matches its browser client.
const defaultEmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

const emailJSTimeout = 10 * time.Second

// EmailJSDispatcher sends the booking summary through an EmailJS template.
type EmailJSDispatcher struct {
	serviceID  string
	templateID string
	publicKey  string
	endpoint   string
	client     *http.Client
	logger     *zap.Logger
}

// NewEmailJSDispatcher creates a dispatcher for a fully configured EmailJS
// account. Callers check configuration before wiring; this constructor does
// not re-validate credentials.
func NewEmailJSDispatcher(serviceID, templateID, publicKey string, logger *zap.Logger) *EmailJSDispatcher {
	return &EmailJSDispatcher{
		serviceID:  serviceID,
		templateID: templateID,
		publicKey:  publicKey,
		endpoint:   defaultEmailJSEndpoint,
		client:     &http.Client{Timeout: emailJSTimeout},
		logger:     logger,
	}
}

// Name implements Dispatcher.
func (d *EmailJSDispatcher) Name() string { return "emailjs" }

// emailJSRequest is the EmailJS send payload.
type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Dispatch posts the booking to the configured template. One attempt, no
// retries; the error is reported to the caller for logging only.
func (d *EmailJSDispatcher) Dispatch(ctx context.Context, booking *lead.Booking, summary string) error {
	payload := emailJSRequest{
		ServiceID:      d.serviceID,
		TemplateID:     d.templateID,
		UserID:         d.publicKey,
		TemplateParams: templateParams(booking, summary),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode emailjs payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build emailjs request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs call failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("emailjs rejected the request: status %d: %s", resp.StatusCode, string(detail))
	}

	d.logger.Debug("emailjs accepted booking email",
		zap.String("reference", booking.Reference()),
	)
	return nil
}

// templateParams mirrors the variables the agency's EmailJS template expects.
func templateParams(booking *lead.Booking, summary string) map[string]string {
	contact := booking.Contact()
	location := booking.Location()
	schedule := booking.Schedule()

	clientName := fmt.Sprintf("%s %s", contact.FirstName, contact.LastName)
	if contact.EntityName != "" {
		clientName = contact.EntityName
	}

	return map[string]string{
		"service_name":    booking.ServiceName(),
		"client_name":     clientName,
		"client_phone":    contact.Phone,
		"client_whatsapp": orNotSpecified(contact.WhatsApp),
		"client_email":    orNotSpecified(contact.Email),
		"city":            location.City,
		"neighborhood":    location.Neighborhood,
		"scheduling_date": schedule.Date,
		"scheduling_time": schedule.TimeLabel(),
		"total_price":     lead.PriceLabel(booking.Price()),
		"details":         summary,
	}
}

func orNotSpecified(v string) string {
	if v == "" {
		return "Non spécifié"
	}
	return v
}
