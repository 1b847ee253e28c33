package latefee_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"reception/internal/domains/folio/latefee"
)

var testPolicy = latefee.Policy{
	Tiers: []latefee.Tier{
		{UpToHours: 3, Percent: 20},
		{UpToHours: 6, Percent: 50},
	},
	MaxPercent: 100,
}

func TestCalculate_OnTimeOrEarly(t *testing.T) {
	scheduled := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	nightlyRate := int64(1_500_000)

	testCases := []struct {
		name   string
		actual time.Time
	}{
		{name: "exactly on time", actual: scheduled},
		{name: "one hour early", actual: scheduled.Add(-time.Hour)},
		{name: "a day early", actual: scheduled.Add(-24 * time.Hour)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := latefee.Calculate(testPolicy, scheduled, tc.actual, nightlyRate)

			assert.Equal(t, latefee.Result{}, result)
		})
	}
}

func TestCalculate_Tiers(t *testing.T) {
	scheduled := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	nightlyRate := int64(1_000_000)

	testCases := []struct {
		name            string
		lateBy          time.Duration
		expectHoursLate int
		expectPercent   int64
		expectAmount    int64
	}{
		{
			name:            "one minute late counts as a started hour",
			lateBy:          time.Minute,
			expectHoursLate: 1,
			expectPercent:   20,
			expectAmount:    200_000,
		},
		{
			name:            "exactly three hours stays in the first tier",
			lateBy:          3 * time.Hour,
			expectHoursLate: 3,
			expectPercent:   20,
			expectAmount:    200_000,
		},
		{
			name:            "three hours one second rolls into the second tier",
			lateBy:          3*time.Hour + time.Second,
			expectHoursLate: 4,
			expectPercent:   50,
			expectAmount:    500_000,
		},
		{
			name:            "exactly six hours stays in the second tier",
			lateBy:          6 * time.Hour,
			expectHoursLate: 6,
			expectPercent:   50,
			expectAmount:    500_000,
		},
		{
			name:            "beyond the last tier charges a full night",
			lateBy:          7 * time.Hour,
			expectHoursLate: 7,
			expectPercent:   100,
			expectAmount:    1_000_000,
		},
		{
			name:            "a day late still caps at one night",
			lateBy:          26 * time.Hour,
			expectHoursLate: 26,
			expectPercent:   100,
			expectAmount:    1_000_000,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := latefee.Calculate(testPolicy, scheduled, scheduled.Add(tc.lateBy), nightlyRate)

			assert.Equal(t, tc.expectHoursLate, result.HoursLate)
			assert.Equal(t, tc.expectPercent, result.PenaltyPercent)
			assert.Equal(t, tc.expectAmount, result.PenaltyAmount)
		})
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	scheduled := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	actual := scheduled.Add(4 * time.Hour)

	first := latefee.Calculate(testPolicy, scheduled, actual, 750_000)
	second := latefee.Calculate(testPolicy, scheduled, actual, 750_000)

	assert.Equal(t, first, second)
}
