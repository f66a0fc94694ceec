package lead

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/agence-menage/service-leads/internal/domain/catalog"
)

// PropertyType describes the kind of property, for the summary only. It never
// influences the price.
type PropertyType string

const (
	PropertyStudio      PropertyType = "studio"
	PropertyAppartement PropertyType = "appartement"
	PropertyDuplex      PropertyType = "duplex"
	PropertyVilla       PropertyType = "villa"
	PropertyMaison      PropertyType = "maison"
)

// subFrequencyLabels maps the recurring-cadence keys offered on the forms to
// their display labels.
var subFrequencyLabels = map[string]string{
	"1foisMois":    "1 fois par mois",
	"2foisMois":    "2 fois par mois",
	"1semaine2":    "Une semaine sur deux",
	"1foisSemaine": "Une fois par semaine",
	"3foisSemaine": "3 fois par semaine",
	"5foisSemaine": "5 fois par semaine",
	"6foisSemaine": "6 fois par semaine",
	"7foisSemaine": "7 fois par semaine",
}

// SubFrequencyLabel returns the display label for a cadence key, falling back
// to "Ponctuel" for one-shot or unknown cadences.
func SubFrequencyLabel(key string) string {
	if label, ok := subFrequencyLabels[key]; ok {
		return label
	}
	return "Ponctuel"
}

// Schedule is the requested date and time window. Descriptive only.
type Schedule struct {
	Date           string `json:"date"`
	Time           string `json:"time"`
	FlexibleWindow string `json:"flexible_window"` // "matin" or "apres-midi"
}

// TimeLabel renders the requested time, falling back to the flexible window
// when no exact time was picked. Shared by every outbound channel so they
// all show the same slot.
func (s Schedule) TimeLabel() string {
	if s.Time != "" {
		return s.Time
	}
	switch s.FlexibleWindow {
	case "matin":
		return "Matin"
	case "apres-midi":
		return "Après-midi"
	}
	return "Non spécifiée"
}

// Location is where the service takes place. Descriptive only.
type Location struct {
	City          string `json:"city"`
	Neighborhood  string `json:"neighborhood"`
	LandmarkNotes string `json:"landmark_notes"`
}

// Contact identifies the requester. Particulier services use the name and
// phone fields; entreprise services use the entity fields instead.
type Contact struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	EntityName    string `json:"entity_name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	WhatsApp      string `json:"whatsapp"`
	Email         string `json:"email"`
}

// PatientDetails is the caregiver-service block. Descriptive only.
type PatientDetails struct {
	Age          string `json:"age"`
	Gender       string `json:"gender"`
	Mobility     string `json:"mobility"`
	CareLocation string `json:"care_location"`
}

// Draft is the mutable booking request a form collects into. It lives only
// for the duration of one form session: created with defaults, mutated
// field-by-field, finalized once at submit, discarded otherwise. Every
// mutation goes through a method so clamping rules hold for all reachable
// states.
type Draft struct {
	ServiceID    string       `json:"service_id"`
	PropertyType PropertyType `json:"property_type"`

	Frequency    Frequency `json:"frequency"`
	SubFrequency string    `json:"sub_frequency"`

	RoomCounts  map[string]int `json:"room_counts"`
	SurfaceArea float64        `json:"surface_area"`

	DurationHours int `json:"duration_hours"`
	CrewSize      int `json:"crew_size"`

	AddOns []string `json:"add_ons"`

	Schedule Schedule       `json:"schedule"`
	Location Location       `json:"location"`
	Contact  Contact        `json:"contact"`
	Patient  PatientDetails `json:"patient"`
}

// NewDraft creates a draft with the service's form defaults.
func NewDraft(svc *catalog.ServiceDefinition) *Draft {
	d := &Draft{
		ServiceID:     svc.ID,
		PropertyType:  PropertyStudio,
		Frequency:     FrequencyOneShot,
		RoomCounts:    make(map[string]int),
		DurationHours: svc.DefaultDurationHours,
	}
	if svc.Sizing == catalog.SizingSurface {
		d.SurfaceArea = 50
	}
	d.CrewSize = ClampCrew(crewFor(svc, d.DurationHours))
	return d
}

// SetRoomCount sets a room counter and re-runs the full estimate. Counts are
// clamped at zero and unknown room keys are ignored.
func (d *Draft) SetRoomCount(svc *catalog.ServiceDefinition, key string, count int) {
	if _, ok := svc.Room(key); !ok {
		return
	}
	if count < 0 {
		count = 0
	}
	if d.RoomCounts == nil {
		d.RoomCounts = make(map[string]int)
	}
	d.RoomCounts[key] = count
	d.applyEstimate(svc)
}

// SetSurfaceArea moves the surface slider and re-runs the full estimate.
func (d *Draft) SetSurfaceArea(svc *catalog.ServiceDefinition, surface float64) {
	d.SurfaceArea = ClampSurface(svc, surface)
	d.applyEstimate(svc)
}

// AdjustDuration applies a manual +/- on the duration stepper, clamped to the
// service minimum. Services that lock the stepper after an automatic estimate
// ignore the adjustment.
func (d *Draft) AdjustDuration(svc *catalog.ServiceDefinition, delta int) {
	if !svc.ManualAdjust {
		return
	}
	d.DurationHours = ClampDuration(svc, d.DurationHours+delta)
}

// AdjustCrew applies a manual +/- on the crew stepper, clamped to one worker.
func (d *Draft) AdjustCrew(svc *catalog.ServiceDefinition, delta int) {
	if !svc.ManualAdjust {
		return
	}
	d.CrewSize = ClampCrew(d.CrewSize + delta)
}

// ToggleAddOn selects or deselects an add-on by key.
func (d *Draft) ToggleAddOn(svc *catalog.ServiceDefinition, key string) {
	if _, ok := svc.AddOnByKey(key); !ok {
		return
	}
	for i, existing := range d.AddOns {
		if existing == key {
			d.AddOns = append(d.AddOns[:i], d.AddOns[i+1:]...)
			return
		}
	}
	d.AddOns = append(d.AddOns, key)
}

// applyEstimate recomputes duration and crew from the current sizing input.
// Recomputed from scratch on every sizing change, never accumulated.
func (d *Draft) applyEstimate(svc *catalog.ServiceDefinition) {
	est := ComputeEstimate(svc, d.SizingInput())
	if est.DurationHours > 0 {
		d.DurationHours = est.DurationHours
		d.CrewSize = est.CrewSize
	}
}

// SizingInput extracts the sizing facts relevant to the service's mode.
func (d *Draft) SizingInput() SizingInput {
	return SizingInput{
		RoomCounts:    d.RoomCounts,
		SurfaceArea:   d.SurfaceArea,
		DurationHours: d.DurationHours,
	}
}

// Validate checks the minimum viable submission: name and phone for
// particulier services, entity and contact person plus phone for entreprise.
// It returns a ValidationError listing exactly the empty required fields.
func (d *Draft) Validate(svc *catalog.ServiceDefinition) *ValidationError {
	var missing []string
	if svc.Audience == catalog.AudienceEntreprise {
		if d.Contact.EntityName == "" {
			missing = append(missing, "entity_name")
		}
		if d.Contact.ContactPerson == "" {
			missing = append(missing, "contact_person")
		}
	} else {
		if d.Contact.FirstName == "" {
			missing = append(missing, "first_name")
		}
		if d.Contact.LastName == "" {
			missing = append(missing, "last_name")
		}
	}
	if d.Contact.Phone == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return &ValidationError{MissingFields: missing}
	}
	return nil
}

// Finalize validates the draft, recomputes the authoritative estimate and
// price, and returns the immutable booking snapshot. The draft itself stays
// untouched; callers discard it after a successful submit.
func (d *Draft) Finalize(svc *catalog.ServiceDefinition) (*Booking, error) {
	if err := d.Validate(svc); err != nil {
		return nil, err
	}

	est := ComputeEstimate(svc, d.SizingInput())
	if svc.ManualAdjust {
		// Manual steppers are authoritative for these services; the clamps
		// still guarantee the duration and crew invariants.
		if d.DurationHours > 0 {
			est.DurationHours = ClampDuration(svc, d.DurationHours)
		}
		if d.CrewSize > 0 {
			est.CrewSize = ClampCrew(d.CrewSize)
		}
	}

	price := Price(svc, est, d.Frequency, d.AddOns)

	reference, err := generateReference()
	if err != nil {
		return nil, err
	}

	addOns := make([]string, len(d.AddOns))
	copy(addOns, d.AddOns)

	return &Booking{
		id:           uuid.New(),
		reference:    reference,
		serviceID:    svc.ID,
		serviceName:  svc.Name,
		audience:     svc.Audience,
		propertyType: d.PropertyType,
		frequency:    d.Frequency,
		subFrequency: d.SubFrequency,
		surfaceArea:  d.SurfaceArea,
		estimate:     est,
		price:        price,
		addOns:       addOns,
		schedule:     d.Schedule,
		location:     d.Location,
		contact:      d.Contact,
		patient:      d.Patient,
		createdAt:    time.Now().UTC(),
	}, nil
}

// Booking is the finalized, immutable booking request handed to the summary
// formatter and the dispatcher. It is a snapshot: nothing mutates it after
// Finalize.
type Booking struct {
	id           uuid.UUID
	reference    string
	serviceID    string
	serviceName  string
	audience     catalog.Audience
	propertyType PropertyType
	frequency    Frequency
	subFrequency string
	surfaceArea  float64
	estimate     Estimate
	price        PriceBreakdown
	addOns       []string
	schedule     Schedule
	location     Location
	contact      Contact
	patient      PatientDetails
	createdAt    time.Time
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) Reference() string          { return b.reference }
func (b *Booking) ServiceID() string          { return b.serviceID }
func (b *Booking) ServiceName() string        { return b.serviceName }
func (b *Booking) Audience() catalog.Audience { return b.audience }
func (b *Booking) PropertyType() PropertyType { return b.propertyType }
func (b *Booking) Frequency() Frequency       { return b.frequency }
func (b *Booking) SubFrequency() string       { return b.subFrequency }
func (b *Booking) SurfaceArea() float64       { return b.surfaceArea }
func (b *Booking) EstimateResult() Estimate   { return b.estimate }
func (b *Booking) Price() PriceBreakdown      { return b.price }
func (b *Booking) Schedule() Schedule         { return b.schedule }
func (b *Booking) Location() Location         { return b.location }
func (b *Booking) Contact() Contact           { return b.contact }
func (b *Booking) Patient() PatientDetails    { return b.patient }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }

// AddOns returns a copy of the selected add-on keys.
func (b *Booking) AddOns() []string {
	out := make([]string, len(b.addOns))
	copy(out, b.addOns)
	return out
}

const referenceChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// generateReference creates a human-facing request number "DM-XXXXXX".
func generateReference() (string, error) {
	result := make([]byte, 6)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(referenceChars))))
		if err != nil {
			return "", fmt.Errorf("failed to generate reference: %w", err)
		}
		result[i] = referenceChars[n.Int64()]
	}
	return "DM-" + string(result), nil
}
