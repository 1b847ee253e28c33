// Package latefee computes the late-checkout penalty. Everything here is
// pure: identical inputs always produce identical results, so the calculator
// can back both the real settlement at check-out and the on-demand folio
// preview without side effects.
package latefee

import (
	"sort"
	"time"

	"reception/config"
)

// Tier charges Percent of one night's rate when the guest is at most
// UpToHours late.
type Tier struct {
	UpToHours int
	Percent   int64
}

// Policy is the stepped penalty table. Lateness beyond the last tier is
// charged at MaxPercent.
type Policy struct {
	Tiers      []Tier
	MaxPercent int64
}

// Result is the outcome of a single penalty computation.
type Result struct {
	HoursLate      int   `json:"hours_late"`
	PenaltyPercent int64 `json:"penalty_percent"`
	PenaltyAmount  int64 `json:"penalty_amount"`
}

// PolicyFromConfig builds the tier table from configuration. Mismatched
// hour/percent lists are truncated to the shorter of the two.
func PolicyFromConfig(cfg *config.Config) Policy {
	lc := cfg.Folio.LateCheckout

	n := len(lc.TierHours)
	if len(lc.TierPercents) < n {
		n = len(lc.TierPercents)
	}

	tiers := make([]Tier, 0, n)
	for i := 0; i < n; i++ {
		tiers = append(tiers, Tier{
			UpToHours: lc.TierHours[i],
			Percent:   int64(lc.TierPercents[i]),
		})
	}

	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].UpToHours < tiers[j].UpToHours
	})

	return Policy{
		Tiers:      tiers,
		MaxPercent: int64(lc.MaxPercent),
	}
}

// Calculate determines the penalty for checking out at actual against a
// scheduled check-out time. Lateness is counted in started hours; checking
// out on time or early yields the zero Result.
func Calculate(policy Policy, scheduled, actual time.Time, nightlyRate int64) Result {
	delta := actual.Sub(scheduled)
	if delta <= 0 {
		return Result{}
	}

	hoursLate := int(delta / time.Hour)
	if delta%time.Hour != 0 {
		hoursLate++
	}

	percent := policy.MaxPercent
	for _, tier := range policy.Tiers {
		if hoursLate <= tier.UpToHours {
			percent = tier.Percent
			break
		}
	}

	return Result{
		HoursLate:      hoursLate,
		PenaltyPercent: percent,
		PenaltyAmount:  nightlyRate * percent / 100,
	}
}
