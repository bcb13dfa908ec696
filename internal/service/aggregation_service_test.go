package service

import (
	"testing"

	"github.com/hqdat/workpulse/internal/model"
)

func fptr(f float64) *float64 { return &f }

func scoredResponse(score *float64, factor *model.Factor) model.SurveyResponse {
	return model.SurveyResponse{
		Score: score,
		Question: model.Question{
			HasScoring: true,
			Factor:     factor,
		},
	}
}

func TestTotalAppliesFactorWeights(t *testing.T) {
	aggregator := NewAggregationService()
	heavy := &model.Factor{Weight: 2.0}

	responses := []model.SurveyResponse{
		scoredResponse(fptr(5), heavy), // 5 * 2.0
		scoredResponse(fptr(4), nil),   // unweighted
	}

	if total := aggregator.Total(responses); total != 14 {
		t.Fatalf("expected total 14, got %g", total)
	}
}

func TestTotalSkipsUnscoredResponses(t *testing.T) {
	aggregator := NewAggregationService()

	responses := []model.SurveyResponse{
		scoredResponse(fptr(5), nil),
		scoredResponse(nil, &model.Factor{Weight: 10}), // unscored, excluded
		{Score: fptr(100), Question: model.Question{HasScoring: false}},
	}

	if total := aggregator.Total(responses); total != 5 {
		t.Fatalf("unscored and non-scoring responses must not contribute, got %g", total)
	}
}

func TestTotalZeroScoreCounts(t *testing.T) {
	aggregator := NewAggregationService()

	responses := []model.SurveyResponse{
		scoredResponse(fptr(0), &model.Factor{Weight: 3}),
		scoredResponse(fptr(2), nil),
	}

	if total := aggregator.Total(responses); total != 2 {
		t.Fatalf("explicit zero differs from unscored but adds nothing, got %g", total)
	}
}

func TestTotalOrderInvariant(t *testing.T) {
	aggregator := NewAggregationService()
	factor := &model.Factor{Weight: 1.5}

	forward := []model.SurveyResponse{
		scoredResponse(fptr(2), factor),
		scoredResponse(fptr(3), nil),
		scoredResponse(fptr(4), factor),
	}
	reversed := []model.SurveyResponse{forward[2], forward[1], forward[0]}

	a, b := aggregator.Total(forward), aggregator.Total(reversed)
	if a != b {
		t.Fatalf("totals differ by order: %g vs %g", a, b)
	}
	if again := aggregator.Total(forward); again != a {
		t.Fatalf("recomputation changed the total: %g vs %g", again, a)
	}
}

func TestTotalEmpty(t *testing.T) {
	aggregator := NewAggregationService()
	if total := aggregator.Total(nil); total != 0 {
		t.Fatalf("empty response set must total zero, got %g", total)
	}
}
