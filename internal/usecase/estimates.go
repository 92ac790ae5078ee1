package usecase

import (
	"math"
	"time"

	"cert-roadmap/internal/catalog"
	"cert-roadmap/internal/model"
)

// Pace multipliers applied to the total preparation hours.
const (
	paceOptimistic   = 0.8
	paceRealistic    = 1.0
	paceConservative = 1.2
)

// EstimateCompletion sums the preparation hours of every certification in the
// roadmap (prep tier chosen per cert by the user's experience with that
// provider) and converts them into optimistic/realistic/conservative target
// dates from now. Returns nil when there is nothing to estimate with.
func (g *Generator) EstimateCompletion(r *model.Roadmap, a *model.Assessment) *model.CompletionEstimate {
	if r == nil || a == nil || a.Preferences.AvailableHoursPerWeek <= 0 {
		return nil
	}

	var totalHours float64
	for _, rc := range r.Certifications {
		cert, ok := g.catalog.ByID(rc.ID)
		if !ok {
			continue
		}
		// Completed work needs no further study time.
		if rc.Status == model.StatusCompleted {
			continue
		}
		totalHours += tieredHours(cert, a)
	}
	if totalHours == 0 {
		return nil
	}

	now := time.Now()
	return &model.CompletionEstimate{
		Optimistic:   addWeeks(now, weeksFor(totalHours*paceOptimistic, a.Preferences.AvailableHoursPerWeek)),
		Realistic:    addWeeks(now, weeksFor(totalHours*paceRealistic, a.Preferences.AvailableHoursPerWeek)),
		Conservative: addWeeks(now, weeksFor(totalHours*paceConservative, a.Preferences.AvailableHoursPerWeek)),
	}
}

// tieredHours picks the beginner/intermediate/advanced prep estimate using the
// experience ratio (level/4) for the cert's provider: >=0.75 advanced,
// >=0.25 intermediate, else beginner.
func tieredHours(cert *model.Certification, a *model.Assessment) float64 {
	ratio := float64(a.ProviderExperience(catalog.ProviderOf(cert.ID))) / 4
	switch {
	case ratio >= 0.75:
		return cert.PreparationHours.Advanced
	case ratio >= 0.25:
		return cert.PreparationHours.Intermediate
	default:
		return cert.PreparationHours.Beginner
	}
}

func weeksFor(hours, hoursPerWeek float64) int {
	return int(math.Ceil(hours / hoursPerWeek))
}

func addWeeks(t time.Time, weeks int) time.Time {
	return t.AddDate(0, 0, weeks*7)
}
