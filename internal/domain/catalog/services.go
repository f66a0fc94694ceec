package catalog

// The values below encode business policy carried over from the agency's
// published offer: per-room unit minutes, surface thresholds and subscription
// terms. Threshold edges are exact (a 70m² job and a 71m² job land in
// different bands), so treat every number here as a fixture, not a tunable.

const (
	// subscriptionDiscountPercent is the recurring-frequency discount applied
	// to the subtotal of eligible services.
	subscriptionDiscountPercent = 10

	// surfaceSliderMax bounds the surface-area input for slider-based services.
	surfaceSliderMax = 5000
)

// defaultCrewSteps is the shared crew rule for room-counted cleanings:
// one worker up to six hours, two beyond.
var defaultCrewSteps = []CrewStep{
	{MaxHours: 6, CrewSize: 1},
	{MaxHours: 0, CrewSize: 2},
}

var soloCrew = []CrewStep{
	{MaxHours: 0, CrewSize: 1},
}

var cleaningAddOns = []AddOn{
	{Key: "produits-et-outils", Label: "Produits et outils", FlatFee: 90},
}

var services = []ServiceDefinition{
	{
		ID:       "menage-regulier",
		Name:     "Ménage Régulier",
		Audience: AudienceParticulier,
		Sizing:   SizingRooms,
		Pricing:  PricingHourly,

		HourlyRate:           60,
		MinimumDurationHours: 4,
		DefaultDurationHours: 4,

		RoomCatalog: []RoomType{
			{Key: "cuisine", Label: "Cuisine", UnitMinutes: 45},
			{Key: "suite-avec-bain", Label: "Suite avec salle de bain", UnitMinutes: 75},
			{Key: "suite-sans-bain", Label: "Suite sans salle de bain", UnitMinutes: 45},
			{Key: "salle-de-bain", Label: "Salle de bain", UnitMinutes: 30},
			{Key: "chambre", Label: "Chambre", UnitMinutes: 40},
			{Key: "salon-mezzanine", Label: "Salon mezzanine", UnitMinutes: 35},
			{Key: "salon-europeen", Label: "Salon européen", UnitMinutes: 35},
			{Key: "toilettes-lavabo", Label: "Toilettes & lavabo", UnitMinutes: 25},
			{Key: "rooftop", Label: "Rooftop", UnitMinutes: 30},
			{Key: "escalier", Label: "Escalier", UnitMinutes: 25},
		},
		CrewSteps:    defaultCrewSteps,
		ManualAdjust: true,

		SupportsSubscription:     true,
		SubscriptionDiscountRate: subscriptionDiscountPercent,
		AddOns:                   cleaningAddOns,
	},
	{
		ID:       "grand-menage",
		Name:     "Grand Ménage",
		Audience: AudienceParticulier,
		Sizing:   SizingSurface,
		Pricing:  PricingHourly,

		HourlyRate:           65,
		MinimumDurationHours: 4,
		DefaultDurationHours: 4,

		SurfaceBands: []SurfaceBand{
			{MaxSurface: 70, DurationHours: 6, CrewSize: 1},
			{MaxSurface: 150, DurationHours: 4, CrewSize: 2},
			{MaxSurface: 300, DurationHours: 8, CrewSize: 2},
			{MaxSurface: 0, DurationHours: 8, CrewSize: 3},
		},
		MaxSurfaceInput: surfaceSliderMax,

		// Duration and crew come straight from the matched band; the stepper
		// controls are locked once a surface estimate exists.
		ManualAdjust: false,

		SupportsSubscription:     true,
		SubscriptionDiscountRate: subscriptionDiscountPercent,
		AddOns:                   cleaningAddOns,
	},
	{
		ID:       "menage-bureaux",
		Name:     "Ménage Bureaux",
		Audience: AudienceEntreprise,
		Sizing:   SizingManual,
		Pricing:  PricingFlat,

		FlatPrice:            350,
		MinimumDurationHours: 1,
		DefaultDurationHours: 4,

		CrewSteps:    soloCrew,
		ManualAdjust: true,
	},
	{
		ID:       "garde-malade",
		Name:     "Garde Malade",
		Audience: AudienceParticulier,
		Sizing:   SizingManual,
		Pricing:  PricingHourly,

		HourlyRate:           90,
		MinimumDurationHours: 1,
		DefaultDurationHours: 4,

		CrewSteps:    soloCrew,
		ManualAdjust: true,

		HasPatientDetails: true,
	},
	{
		ID:       "menage-fin-chantier",
		Name:     "Ménage Fin de chantier",
		Audience: AudienceParticulier,
		Sizing:   SizingQuote,
		Pricing:  PricingQuote,

		MaxSurfaceInput: surfaceSliderMax,
	},
	{
		ID:       "menage-fin-chantier-entreprise",
		Name:     "Ménage Fin de chantier (Entreprise)",
		Audience: AudienceEntreprise,
		Sizing:   SizingQuote,
		Pricing:  PricingQuote,

		MaxSurfaceInput: surfaceSliderMax,
	},
}

// All returns every service definition in display order.
func All() []ServiceDefinition {
	out := make([]ServiceDefinition, len(services))
	copy(out, services)
	return out
}

// ByID returns the service definition with the given id.
func ByID(id string) (*ServiceDefinition, bool) {
	for i := range services {
		if services[i].ID == id {
			return &services[i], true
		}
	}
	return nil, false
}
