package service

import "github.com/hqdat/workpulse/internal/model"

// AggregationService reduces an assignment's full response set to its total
// score. It always recomputes over everything currently stored rather than
// updating incrementally, so the result is idempotent and independent of
// submission order or prior rescoring. Responses must be loaded with their
// Question and Factor reference data.
type AggregationService interface {
	Total(responses []model.SurveyResponse) float64
}

type aggregationService struct{}

func NewAggregationService() AggregationService {
	return &aggregationService{}
}

func (s *aggregationService) Total(responses []model.SurveyResponse) float64 {
	total := 0.0
	for _, response := range responses {
		if !response.Question.HasScoring || response.Score == nil {
			continue
		}
		if response.Question.Factor != nil {
			total += *response.Score * response.Question.Factor.Weight
		} else {
			total += *response.Score
		}
	}
	return total
}
