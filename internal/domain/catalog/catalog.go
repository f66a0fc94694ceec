package catalog

// Audience identifies which client segment a service is sold to.
type Audience string

const (
	AudienceParticulier Audience = "particulier"
	AudienceEntreprise  Audience = "entreprise"
)

// IsValid returns true if the audience is recognized.
func (a Audience) IsValid() bool {
	switch a {
	case AudienceParticulier, AudienceEntreprise:
		return true
	}
	return false
}

// SizingMode is the method used to describe job size for a service.
type SizingMode string

const (
	// SizingRooms sums per-room unit minutes over user-entered counters.
	SizingRooms SizingMode = "rooms"
	// SizingSurface maps a surface-area slider onto discrete duration/crew bands.
	SizingSurface SizingMode = "surface"
	// SizingManual exposes only a duration stepper; no automatic estimate.
	SizingManual SizingMode = "manual"
	// SizingQuote collects descriptive inputs only; price is always quoted by a human.
	SizingQuote SizingMode = "quote"
)

// IsValid returns true if the sizing mode is recognized.
func (m SizingMode) IsValid() bool {
	switch m {
	case SizingRooms, SizingSurface, SizingManual, SizingQuote:
		return true
	}
	return false
}

// PricingKind selects how a service's total is computed.
type PricingKind string

const (
	// PricingHourly charges duration x hourly rate x crew size.
	PricingHourly PricingKind = "hourly"
	// PricingFlat charges a fixed amount regardless of duration.
	PricingFlat PricingKind = "flat"
	// PricingQuote never produces a number; the request is quoted manually.
	PricingQuote PricingKind = "quote"
)

// RoomType is one row of a service's room catalog.
type RoomType struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	UnitMinutes int    `json:"unit_minutes"`
}

// SurfaceBand maps a surface-area range onto a fixed duration and crew size.
// Bands are ordered by ascending MaxSurface; the last band is the catch-all
// for any surface above it.
type SurfaceBand struct {
	MaxSurface    float64 `json:"max_surface"`
	DurationHours int     `json:"duration_hours"`
	CrewSize      int     `json:"crew_size"`
}

// CrewStep maps an upper duration bound onto a crew size. Steps are ordered
// by ascending MaxHours; the last step is the catch-all.
type CrewStep struct {
	MaxHours int `json:"max_hours"`
	CrewSize int `json:"crew_size"`
}

// AddOn is an optional flat-fee extra layered onto the base price.
type AddOn struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	FlatFee int    `json:"flat_fee"`
}

// ServiceDefinition is the declarative configuration of one bookable service.
// All estimation and pricing behavior is driven by this table; there is no
// per-service code anywhere else.
type ServiceDefinition struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Audience Audience `json:"audience"`

	Sizing  SizingMode  `json:"sizing_mode"`
	Pricing PricingKind `json:"pricing_kind"`

	// HourlyRate is the rate per hour per worker in whole dirhams.
	// Only meaningful for PricingHourly.
	HourlyRate int `json:"hourly_rate,omitempty"`
	// FlatPrice is the fixed total for PricingFlat services.
	FlatPrice int `json:"flat_price,omitempty"`

	MinimumDurationHours int `json:"minimum_duration_hours,omitempty"`
	DefaultDurationHours int `json:"default_duration_hours,omitempty"`

	RoomCatalog  []RoomType    `json:"room_catalog,omitempty"`
	SurfaceBands []SurfaceBand `json:"surface_bands,omitempty"`
	// MaxSurfaceInput is the slider upper bound for surface and quote services.
	MaxSurfaceInput float64 `json:"max_surface_input,omitempty"`

	CrewSteps []CrewStep `json:"crew_steps,omitempty"`

	// ManualAdjust permits +/- adjustment of the duration after an automatic
	// estimate. Surface-band services lock the controls once estimated.
	ManualAdjust bool `json:"manual_adjust"`

	SupportsSubscription bool `json:"supports_subscription"`
	// SubscriptionDiscountRate is expressed in percent of the subtotal.
	SubscriptionDiscountRate int `json:"subscription_discount_rate,omitempty"`

	AddOns []AddOn `json:"add_ons,omitempty"`

	// HasPatientDetails marks caregiver services whose summaries carry the
	// patient block (age, gender, mobility, care location).
	HasPatientDetails bool `json:"has_patient_details,omitempty"`
}

// Room returns the room type with the given key, if present.
func (s *ServiceDefinition) Room(key string) (RoomType, bool) {
	for _, r := range s.RoomCatalog {
		if r.Key == key {
			return r, true
		}
	}
	return RoomType{}, false
}

// AddOnByKey returns the add-on with the given key, if present.
func (s *ServiceDefinition) AddOnByKey(key string) (AddOn, bool) {
	for _, a := range s.AddOns {
		if a.Key == key {
			return a, true
		}
	}
	return AddOn{}, false
}

// IsQuoteOnly returns true when the service never produces a numeric price.
func (s *ServiceDefinition) IsQuoteOnly() bool {
	return s.Pricing == PricingQuote
}
