package lead

import (
	"github.com/agence-menage/service-leads/internal/domain/catalog"
)

// SizingInput carries the job-size facts for one estimate. Exactly one of the
// fields is meaningful, selected by the service's sizing mode. Inputs are
// assumed pre-clamped (non-negative counts, surface within the slider range);
// clamping happens at the draft boundary, never here.
type SizingInput struct {
	RoomCounts    map[string]int `json:"room_counts,omitempty"`
	SurfaceArea   float64        `json:"surface_area,omitempty"`
	DurationHours int            `json:"duration_hours,omitempty"`
}

// Estimate is the recommended duration and crew size for a job.
type Estimate struct {
	DurationHours int `json:"duration_hours"`
	CrewSize      int `json:"crew_size"`
}

// ComputeEstimate derives duration and crew size from the sizing input. It is
// a total function: every call recomputes from scratch so repeated increments
// and decrements can never drift. Quote-only services have no estimate and
// return the zero value.
func ComputeEstimate(svc *catalog.ServiceDefinition, in SizingInput) Estimate {
	switch svc.Sizing {
	case catalog.SizingRooms:
		return estimateFromRooms(svc, in.RoomCounts)
	case catalog.SizingSurface:
		return estimateFromSurface(svc, in.SurfaceArea)
	case catalog.SizingManual:
		hours := in.DurationHours
		if hours == 0 {
			hours = svc.DefaultDurationHours
		}
		hours = ClampDuration(svc, hours)
		return Estimate{DurationHours: hours, CrewSize: crewFor(svc, hours)}
	default:
		return Estimate{}
	}
}

// estimateFromRooms sums per-room unit minutes, rounds the total up to whole
// hours and applies the service's minimum. Ceiling is deliberate: the
// provider is never underpaid relative to the estimated work.
func estimateFromRooms(svc *catalog.ServiceDefinition, counts map[string]int) Estimate {
	totalMinutes := 0
	for key, count := range counts {
		room, ok := svc.Room(key)
		if !ok {
			continue
		}
		totalMinutes += room.UnitMinutes * count
	}

	hours := (totalMinutes + 59) / 60
	if hours < svc.MinimumDurationHours {
		hours = svc.MinimumDurationHours
	}

	return Estimate{DurationHours: hours, CrewSize: crewFor(svc, hours)}
}

// estimateFromSurface picks the first band whose MaxSurface covers the given
// area. A band with MaxSurface == 0 is the catch-all for anything above the
// previous bound. This is a step function, not an interpolation; the band
// thresholds encode business policy and must match exactly at the edges.
func estimateFromSurface(svc *catalog.ServiceDefinition, surface float64) Estimate {
	var band catalog.SurfaceBand
	for _, b := range svc.SurfaceBands {
		band = b
		if b.MaxSurface == 0 || surface <= b.MaxSurface {
			break
		}
	}
	return Estimate{DurationHours: band.DurationHours, CrewSize: band.CrewSize}
}

// crewFor resolves the crew size for a duration from the service's ordered
// crew steps. A step with MaxHours == 0 is the catch-all.
func crewFor(svc *catalog.ServiceDefinition, durationHours int) int {
	for _, step := range svc.CrewSteps {
		if step.MaxHours == 0 || durationHours <= step.MaxHours {
			return step.CrewSize
		}
	}
	return 1
}

// ClampDuration bounds a requested duration to the service minimum.
func ClampDuration(svc *catalog.ServiceDefinition, hours int) int {
	if hours < svc.MinimumDurationHours {
		return svc.MinimumDurationHours
	}
	return hours
}

// ClampCrew bounds a requested crew size to at least one worker.
func ClampCrew(crew int) int {
	if crew < 1 {
		return 1
	}
	return crew
}

// ClampSurface bounds a surface-area input to the service's slider range.
func ClampSurface(svc *catalog.ServiceDefinition, surface float64) float64 {
	if surface < 0 {
		return 0
	}
	if svc.MaxSurfaceInput > 0 && surface > svc.MaxSurfaceInput {
		return svc.MaxSurfaceInput
	}
	return surface
}
