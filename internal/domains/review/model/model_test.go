package model_test

import (
	"testing"

	"voyage/internal/domains/review/model"

	"github.com/stretchr/testify/assert"
)

func TestTotals_Summary(t *testing.T) {
	tests := []struct {
		name    string
		totals  model.Totals
		average float64
	}{
		{name: "no reviews", totals: model.Totals{}, average: 0},
		{name: "five and three", totals: model.Totals{ReviewCount: 2, OverallSum: 8}, average: 4},
		{name: "single", totals: model.Totals{ReviewCount: 1, OverallSum: 5}, average: 5},
		{name: "repeating", totals: model.Totals{ReviewCount: 3, OverallSum: 13}, average: 13.0 / 3},
		{name: "not rounded", totals: model.Totals{ReviewCount: 8, OverallSum: 29}, average: 3.625},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := tt.totals.Summary()

			assert.InDelta(t, tt.average, summary.AverageRating, 1e-9)
			assert.Equal(t, tt.totals.ReviewCount, summary.ReviewCount)
		})
	}
}

func TestTotals_SummaryAspects(t *testing.T) {
	summary := model.Totals{
		ReviewCount:    2,
		OverallSum:     8,
		CleanlinessSum: 10,
		LocationSum:    9,
		ServiceSum:     7,
		ValueSum:       6,
	}.Summary()

	assert.InDelta(t, 5.0, summary.CleanlinessRating, 1e-9)
	assert.InDelta(t, 4.5, summary.LocationRating, 1e-9)
	assert.InDelta(t, 3.5, summary.ServiceRating, 1e-9)
	assert.InDelta(t, 3.0, summary.ValueRating, 1e-9)
}

func TestVote_CounterField(t *testing.T) {
	assert.Equal(t, model.FieldHelpfulCount, model.Vote{VoteType: model.VoteHelpful}.CounterField())
	assert.Equal(t, model.FieldNotHelpfulCount, model.Vote{VoteType: model.VoteNotHelpful}.CounterField())
}
