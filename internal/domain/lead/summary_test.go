package lead

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var totalLine = regexp.MustCompile(`\*Prix estimé:\* (\d+) DH`)

// parseSummaryTotal extracts the numeric total from a formatted summary.
func parseSummaryTotal(t *testing.T, summary string) int {
	t.Helper()
	m := totalLine.FindStringSubmatch(summary)
	require.Len(t, m, 2, "summary must carry a numeric total:\n%s", summary)
	total, err := strconv.Atoi(m[1])
	require.NoError(t, err)
	return total
}

func finalizedBooking(t *testing.T, serviceID string, mutate func(*Draft)) (*Booking, string) {
	t.Helper()
	svc := mustService(t, serviceID)
	d := NewDraft(svc)
	d.Contact = Contact{
		FirstName:     "Amina",
		LastName:      "Benali",
		EntityName:    "Atlas Conseil",
		ContactPerson: "Karim",
		Phone:         "661234567",
	}
	d.Location = Location{City: "Casablanca", Neighborhood: "Maarif"}
	if mutate != nil {
		mutate(d)
	}
	booking, err := d.Finalize(svc)
	require.NoError(t, err)
	return booking, FormatSummary(svc, booking)
}

func TestFormatSummary_RoundTripTotal(t *testing.T) {
	booking, summary := finalizedBooking(t, "menage-regulier", func(d *Draft) {
		svc := mustService(t, "menage-regulier")
		d.SetRoomCount(svc, "cuisine", 1)
		d.SetRoomCount(svc, "salle-de-bain", 1)
		d.SetRoomCount(svc, "chambre", 2)
		d.ToggleAddOn(svc, "produits-et-outils")
	})

	assert.Equal(t, booking.Price().Total, parseSummaryTotal(t, summary))
	assert.Equal(t, 330, booking.Price().Total)
}

func TestFormatSummary_StandardCleaningShape(t *testing.T) {
	_, summary := finalizedBooking(t, "menage-regulier", nil)

	assert.Contains(t, summary, "*Nouvelle demande de réservation - Ménage Régulier*")
	assert.Contains(t, summary, "*Durée:* 4h")
	assert.Contains(t, summary, "*Nombre de personnes:* 1")
	assert.Contains(t, summary, "*Client:* Amina Benali")
	assert.Contains(t, summary, "*Téléphone:* 661234567")
	assert.Contains(t, summary, "*Ville:* Casablanca (Maarif)")
	assert.Contains(t, summary, "*Fréquence:* Ponctuel")
	assert.Contains(t, summary, "*Date souhaitée:* Non spécifiée")
	assert.Contains(t, summary, "Ceci est une simulation de réservation.")
}

func TestFormatSummary_SubscriptionFrequencyLabel(t *testing.T) {
	_, summary := finalizedBooking(t, "menage-regulier", func(d *Draft) {
		d.Frequency = FrequencySubscription
		d.SubFrequency = "2foisMois"
	})

	assert.Contains(t, summary, "*Fréquence:* 2 fois par mois")
}

func TestFormatSummary_OfficeShape(t *testing.T) {
	_, summary := finalizedBooking(t, "menage-bureaux", func(d *Draft) {
		d.SurfaceArea = 220
		d.DurationHours = 5
	})

	assert.Contains(t, summary, "*Surface:* 220 m²")
	assert.Contains(t, summary, "*Durée:* 5h")
	assert.Contains(t, summary, "*Client:* Atlas Conseil (Karim)")
	assert.Contains(t, summary, "*Prix estimé:* 350 DH")
	assert.NotContains(t, summary, "*Nombre de personnes:*")
}

func TestFormatSummary_CaregiverShape(t *testing.T) {
	_, summary := finalizedBooking(t, "garde-malade", func(d *Draft) {
		d.DurationHours = 6
		d.Patient = PatientDetails{
			Age:          "78",
			Gender:       "femme",
			Mobility:     "mobilité réduite",
			CareLocation: "domicile",
		}
	})

	assert.Contains(t, summary, "*Patient:* femme, 78 ans")
	assert.Contains(t, summary, "*Mobilité:* mobilité réduite")
	assert.Contains(t, summary, "*Lieu:* domicile")
	assert.Contains(t, summary, "*Durée:* 6h")
	assert.Contains(t, summary, "*Prix estimé:* 540 DH")
}

func TestFormatSummary_QuoteServiceNeverShowsANumber(t *testing.T) {
	_, summary := finalizedBooking(t, "menage-fin-chantier", func(d *Draft) {
		d.SurfaceArea = 1200
	})

	assert.Contains(t, summary, "*Prix estimé:* Sur devis")
	assert.Contains(t, summary, "*Surface:* 1200 m²")
	assert.Nil(t, totalLine.FindStringSubmatch(summary), "no numeric total may appear")
}

func TestFormatSummary_ScheduleTimeFallbacks(t *testing.T) {
	_, summary := finalizedBooking(t, "menage-regulier", func(d *Draft) {
		d.Schedule = Schedule{Date: "2026-09-12", FlexibleWindow: "matin"}
	})

	assert.Contains(t, summary, "*Date souhaitée:* 2026-09-12")
	assert.Contains(t, summary, "*Heure:* Matin")
}

func TestPriceLabel(t *testing.T) {
	assert.Equal(t, "240 DH", PriceLabel(PriceBreakdown{Total: 240}))
	assert.Equal(t, "Sur devis", PriceLabel(OnQuoteBreakdown()))
}
