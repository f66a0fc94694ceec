package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agence-menage/service-leads/internal/domain/catalog"
	"github.com/agence-menage/service-leads/internal/domain/lead"
	"github.com/agence-menage/service-leads/internal/notify"
)

// ErrServiceNotFound is returned for an unknown service id.
var ErrServiceNotFound = errors.New("service not found")

// EstimateRequest carries the sizing facts for an estimate or a quote.
type EstimateRequest struct {
	RoomCounts    map[string]int `json:"room_counts"`
	SurfaceArea   float64        `json:"surface_area"`
	DurationHours int            `json:"duration_hours"`
}

// QuoteRequest extends the sizing facts with the pricing choices.
type QuoteRequest struct {
	EstimateRequest
	Frequency lead.Frequency `json:"frequency"`
	CrewSize  int            `json:"crew_size"`
	AddOns    []string       `json:"add_ons"`
}

// SubmissionResult is the response to a successful booking submission.
type SubmissionResult struct {
	ID           uuid.UUID           `json:"id"`
	Reference    string              `json:"reference"`
	ServiceID    string              `json:"service_id"`
	Estimate     lead.Estimate       `json:"estimate"`
	Price        lead.PriceBreakdown `json:"price"`
	Summary      string              `json:"summary"`
	WhatsAppLink string              `json:"whatsapp_link"`
	CreatedAt    time.Time           `json:"created_at"`
}

// LeadService orchestrates the lead funnel use cases: estimating, quoting and
// submitting booking requests. It owns no state between calls; every request
// is computed from the catalog and the caller's input alone.
type LeadService struct {
	links  *notify.LinkBuilder
	fanout *notify.Fanout
	logger *zap.Logger
}

// NewLeadService creates a new LeadService.
func NewLeadService(links *notify.LinkBuilder, fanout *notify.Fanout, logger *zap.Logger) *LeadService {
	return &LeadService{
		links:  links,
		fanout: fanout,
		logger: logger,
	}
}

// Estimate computes the recommended duration and crew size for a service.
func (s *LeadService) Estimate(_ context.Context, serviceID string, req EstimateRequest) (*lead.Estimate, error) {
	svc, ok := catalog.ByID(serviceID)
	if !ok {
		return nil, ErrServiceNotFound
	}

	est := lead.ComputeEstimate(svc, sanitizeSizing(svc, req))
	return &est, nil
}

// Quote computes the price breakdown for a sized job. Quote-only services
// return the on-quote sentinel, never a number.
func (s *LeadService) Quote(_ context.Context, serviceID string, req QuoteRequest) (*lead.PriceBreakdown, error) {
	svc, ok := catalog.ByID(serviceID)
	if !ok {
		return nil, ErrServiceNotFound
	}

	est := lead.ComputeEstimate(svc, sanitizeSizing(svc, req.EstimateRequest))
	if svc.ManualAdjust {
		// Same override rules as Finalize, so a quote never disagrees with
		// the booking it previews.
		if req.DurationHours > 0 {
			est.DurationHours = lead.ClampDuration(svc, req.DurationHours)
		}
		if req.CrewSize > 0 {
			est.CrewSize = lead.ClampCrew(req.CrewSize)
		}
	}

	price := lead.Price(svc, est, req.Frequency, req.AddOns)
	return &price, nil
}

// Submit validates and finalizes a draft, prices it, formats the summary and
// fans it out to the notification channels. Dispatch is best effort: the
// result is returned optimistically and channel failures are only logged.
func (s *LeadService) Submit(ctx context.Context, serviceID string, draft lead.Draft) (*SubmissionResult, error) {
	svc, ok := catalog.ByID(serviceID)
	if !ok {
		return nil, ErrServiceNotFound
	}

	draft.ServiceID = svc.ID
	sanitizeDraft(svc, &draft)

	booking, err := draft.Finalize(svc)
	if err != nil {
		return nil, err
	}

	summary := lead.FormatSummary(svc, booking)

	s.logger.Info("booking request finalized",
		zap.String("reference", booking.Reference()),
		zap.String("service_id", booking.ServiceID()),
		zap.String("price", lead.PriceLabel(booking.Price())),
	)

	s.fanout.Dispatch(ctx, booking, summary)

	return &SubmissionResult{
		ID:           booking.ID(),
		Reference:    booking.Reference(),
		ServiceID:    booking.ServiceID(),
		Estimate:     booking.EstimateResult(),
		Price:        booking.Price(),
		Summary:      summary,
		WhatsAppLink: s.links.BookingLink(summary),
		CreatedAt:    booking.CreatedAt(),
	}, nil
}

// sanitizeSizing clamps raw caller input into the engine's domain: the
// engines are total functions over pre-clamped inputs and never validate.
func sanitizeSizing(svc *catalog.ServiceDefinition, req EstimateRequest) lead.SizingInput {
	counts := make(map[string]int, len(req.RoomCounts))
	for key, count := range req.RoomCounts {
		if count < 0 {
			count = 0
		}
		counts[key] = count
	}

	return lead.SizingInput{
		RoomCounts:    counts,
		SurfaceArea:   lead.ClampSurface(svc, req.SurfaceArea),
		DurationHours: req.DurationHours,
	}
}

// sanitizeDraft applies the same boundary clamps to a submitted draft.
func sanitizeDraft(svc *catalog.ServiceDefinition, draft *lead.Draft) {
	for key, count := range draft.RoomCounts {
		if count < 0 {
			draft.RoomCounts[key] = 0
		}
	}
	draft.SurfaceArea = lead.ClampSurface(svc, draft.SurfaceArea)
	if draft.Frequency == "" {
		draft.Frequency = lead.FrequencyOneShot
	}
	if draft.DurationHours < 0 {
		draft.DurationHours = 0
	}
	if draft.CrewSize < 0 {
		draft.CrewSize = 0
	}
}
