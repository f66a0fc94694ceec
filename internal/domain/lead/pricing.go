package lead

import "github.com/agence-menage/service-leads/internal/domain/catalog"

// CurrencyMAD is the only currency the agency quotes in. All amounts are
// whole dirhams; no decimals appear anywhere in the offer.
const CurrencyMAD = "MAD"

// Frequency is the booking cadence choice.
type Frequency string

const (
	FrequencyOneShot      Frequency = "oneshot"
	FrequencySubscription Frequency = "subscription"
)

// IsValid returns true if the frequency is recognized.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyOneShot, FrequencySubscription:
		return true
	}
	return false
}

// PriceBreakdown is the computed price of a booking. For quote-only services
// OnQuote is set and every amount stays zero; a fabricated number must never
// reach the client.
type PriceBreakdown struct {
	Subtotal   int    `json:"subtotal"`
	Discount   int    `json:"discount"`
	AddOnTotal int    `json:"add_on_total"`
	Total      int    `json:"total"`
	Currency   string `json:"currency"`
	OnQuote    bool   `json:"on_quote,omitempty"`
}

// OnQuoteBreakdown is the sentinel returned for fixed-quote services.
func OnQuoteBreakdown() PriceBreakdown {
	return PriceBreakdown{Currency: CurrencyMAD, OnQuote: true}
}

// Price computes the breakdown for an estimated job. The subscription
// discount applies only when the customer picked a recurring cadence AND the
// service sells subscriptions. Add-on fees are flat, unaffected by duration
// or crew size.
func Price(svc *catalog.ServiceDefinition, est Estimate, freq Frequency, addOnKeys []string) PriceBreakdown {
	if svc.IsQuoteOnly() {
		return OnQuoteBreakdown()
	}

	var subtotal int
	switch svc.Pricing {
	case catalog.PricingFlat:
		subtotal = svc.FlatPrice
	default:
		subtotal = est.DurationHours * svc.HourlyRate * est.CrewSize
	}

	discount := 0
	if freq == FrequencySubscription && svc.SupportsSubscription {
		discount = subtotal * svc.SubscriptionDiscountRate / 100
	}

	addOnTotal := 0
	for _, key := range addOnKeys {
		if addOn, ok := svc.AddOnByKey(key); ok {
			addOnTotal += addOn.FlatFee
		}
	}

	return PriceBreakdown{
		Subtotal:   subtotal,
		Discount:   discount,
		AddOnTotal: addOnTotal,
		Total:      subtotal - discount + addOnTotal,
		Currency:   CurrencyMAD,
	}
}
