package lead

import (
	"fmt"
	"strings"

	"github.com/agence-menage/service-leads/internal/domain/catalog"
)

// OnQuoteLabel is the literal shown in place of a price for fixed-quote
// services.
const OnQuoteLabel = "Sur devis"

// PriceLabel renders the price line value: either the total in whole dirhams
// or the on-quote marker.
func PriceLabel(price PriceBreakdown) string {
	if price.OnQuote {
		return OnQuoteLabel
	}
	return fmt.Sprintf("%d DH", price.Total)
}

// FormatSummary turns a finalized booking into the labeled plain-text block
// handed to the notification channels. The per-service branches are the one
// place where service shapes are allowed to differ; the engines stay uniform.
func FormatSummary(svc *catalog.ServiceDefinition, b *Booking) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "*Nouvelle demande de réservation - %s*\n", b.ServiceName())
	sb.WriteString("\n")

	switch {
	case svc.Audience == catalog.AudienceEntreprise && svc.Sizing != catalog.SizingQuote:
		fmt.Fprintf(&sb, "*Surface:* %s m²\n", formatSurface(b.SurfaceArea()))
		fmt.Fprintf(&sb, "*Durée:* %dh\n", b.EstimateResult().DurationHours)
	case svc.HasPatientDetails:
		p := b.Patient()
		fmt.Fprintf(&sb, "*Patient:* %s, %s ans\n", p.Gender, p.Age)
		fmt.Fprintf(&sb, "*Mobilité:* %s\n", p.Mobility)
		fmt.Fprintf(&sb, "*Lieu:* %s\n", p.CareLocation)
		fmt.Fprintf(&sb, "*Durée:* %dh\n", b.EstimateResult().DurationHours)
	case svc.Sizing == catalog.SizingQuote:
		fmt.Fprintf(&sb, "*Surface:* %s m²\n", formatSurface(b.SurfaceArea()))
	default:
		fmt.Fprintf(&sb, "*Durée:* %dh\n", b.EstimateResult().DurationHours)
		fmt.Fprintf(&sb, "*Nombre de personnes:* %d\n", b.EstimateResult().CrewSize)
	}

	fmt.Fprintf(&sb, "*Client:* %s\n", clientLine(svc, b.Contact()))
	fmt.Fprintf(&sb, "*Téléphone:* %s\n", b.Contact().Phone)
	fmt.Fprintf(&sb, "*Ville:* %s (%s)\n", b.Location().City, b.Location().Neighborhood)
	fmt.Fprintf(&sb, "*Fréquence:* %s\n", frequencyLine(b))
	fmt.Fprintf(&sb, "*Date souhaitée:* %s\n", orUnspecified(b.Schedule().Date))
	fmt.Fprintf(&sb, "*Heure:* %s\n", b.Schedule().TimeLabel())
	fmt.Fprintf(&sb, "*Prix estimé:* %s\n", PriceLabel(b.Price()))

	sb.WriteString("--------------------------------\n")
	sb.WriteString("Ceci est une simulation de réservation.")

	return sb.String()
}

func clientLine(svc *catalog.ServiceDefinition, c Contact) string {
	if svc.Audience == catalog.AudienceEntreprise {
		if c.ContactPerson != "" {
			return fmt.Sprintf("%s (%s)", c.EntityName, c.ContactPerson)
		}
		return c.EntityName
	}
	return fmt.Sprintf("%s %s", c.FirstName, c.LastName)
}

func frequencyLine(b *Booking) string {
	if b.Frequency() == FrequencySubscription {
		return SubFrequencyLabel(b.SubFrequency())
	}
	return "Ponctuel"
}

func orUnspecified(v string) string {
	if v == "" {
		return "Non spécifiée"
	}
	return v
}

// formatSurface prints whole square meters; the sliders only ever produce
// integral values.
func formatSurface(surface float64) string {
	return fmt.Sprintf("%.0f", surface)
}
