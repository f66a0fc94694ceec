package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Lookup(t *testing.T) {
	svc, ok := ByID("menage-regulier")
	require.True(t, ok)
	assert.Equal(t, "Ménage Régulier", svc.Name)

	_, ok = ByID("menage-imaginaire")
	assert.False(t, ok)

	all := All()
	assert.Len(t, all, 6)
}

func TestCatalog_EveryServiceIsWellFormed(t *testing.T) {
	for _, svc := range All() {
		t.Run(svc.ID, func(t *testing.T) {
			assert.True(t, svc.Audience.IsValid())
			assert.True(t, svc.Sizing.IsValid())

			switch svc.Sizing {
			case SizingRooms:
				assert.NotEmpty(t, svc.RoomCatalog)
				assert.Empty(t, svc.SurfaceBands)
			case SizingSurface:
				assert.NotEmpty(t, svc.SurfaceBands)
				assert.Empty(t, svc.RoomCatalog)
			case SizingManual:
				assert.Empty(t, svc.RoomCatalog)
				assert.Empty(t, svc.SurfaceBands)
			case SizingQuote:
				assert.Equal(t, PricingQuote, svc.Pricing)
			}

			if svc.Pricing == PricingHourly {
				assert.Positive(t, svc.HourlyRate)
				assert.Positive(t, svc.MinimumDurationHours)
				assert.GreaterOrEqual(t, svc.DefaultDurationHours, svc.MinimumDurationHours)
			}
			if svc.Pricing == PricingFlat {
				assert.Positive(t, svc.FlatPrice)
			}
			if svc.SupportsSubscription {
				assert.Positive(t, svc.SubscriptionDiscountRate)
				assert.Less(t, svc.SubscriptionDiscountRate, 100)
			}
		})
	}
}

func TestCatalog_RoomTableFixtures(t *testing.T) {
	svc, ok := ByID("menage-regulier")
	require.True(t, ok)

	want := map[string]int{
		"cuisine":          45,
		"suite-avec-bain":  75,
		"suite-sans-bain":  45,
		"salle-de-bain":    30,
		"chambre":          40,
		"salon-mezzanine":  35,
		"salon-europeen":   35,
		"toilettes-lavabo": 25,
		"rooftop":          30,
		"escalier":         25,
	}
	require.Len(t, svc.RoomCatalog, len(want))
	for key, minutes := range want {
		room, ok := svc.Room(key)
		require.True(t, ok, "room %s missing", key)
		assert.Equal(t, minutes, room.UnitMinutes, "room %s", key)
	}

	for _, room := range svc.RoomCatalog {
		assert.Positive(t, room.UnitMinutes)
		assert.NotEmpty(t, room.Label)
	}
}

func TestCatalog_SurfaceBandsAreOrdered(t *testing.T) {
	svc, ok := ByID("grand-menage")
	require.True(t, ok)

	bands := svc.SurfaceBands
	require.NotEmpty(t, bands)

	// Bounded bands ascend; only the last band may be the catch-all.
	for i := 0; i < len(bands)-1; i++ {
		assert.Positive(t, bands[i].MaxSurface, "only the last band may be unbounded")
		if i > 0 {
			assert.Greater(t, bands[i].MaxSurface, bands[i-1].MaxSurface)
		}
	}
	assert.Zero(t, bands[len(bands)-1].MaxSurface)

	for _, b := range bands {
		assert.Positive(t, b.DurationHours)
		assert.Positive(t, b.CrewSize)
	}
}

func TestCatalog_CrewStepsEndWithCatchAll(t *testing.T) {
	for _, svc := range All() {
		if len(svc.CrewSteps) == 0 {
			continue
		}
		last := svc.CrewSteps[len(svc.CrewSteps)-1]
		assert.Zero(t, last.MaxHours, "%s: last crew step must be the catch-all", svc.ID)
		for _, step := range svc.CrewSteps {
			assert.Positive(t, step.CrewSize)
		}
	}
}

func TestCatalog_AddOnLookup(t *testing.T) {
	svc, ok := ByID("menage-regulier")
	require.True(t, ok)

	addOn, ok := svc.AddOnByKey("produits-et-outils")
	require.True(t, ok)
	assert.Equal(t, 90, addOn.FlatFee)

	_, ok = svc.AddOnByKey("rien")
	assert.False(t, ok)
}

func TestCatalog_QuoteServicesComputeNothing(t *testing.T) {
	for _, id := range []string{"menage-fin-chantier", "menage-fin-chantier-entreprise"} {
		svc, ok := ByID(id)
		require.True(t, ok)
		assert.True(t, svc.IsQuoteOnly())
		assert.Zero(t, svc.HourlyRate)
		assert.Zero(t, svc.FlatPrice)
	}
}
