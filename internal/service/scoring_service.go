package service

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/hqdat/workpulse/internal/model"
)

// ScoringService computes the score of a single raw answer against its
// question definition. A nil result means "unscored", which is distinct from
// zero: unscored responses are excluded from aggregation entirely.
type ScoringService interface {
	Score(question *model.Question, answer model.AnswerPayload) *float64
}

type scoringService struct{}

func NewScoringService() ScoringService {
	return &scoringService{}
}

// Score applies the per-type rules. Malformed payloads, guide misses and
// unscorable types all yield nil; a single bad answer never aborts a batch.
func (s *scoringService) Score(question *model.Question, answer model.AnswerPayload) *float64 {
	if question == nil || !question.HasScoring || answer == nil {
		return nil
	}

	switch question.Type {
	case model.QuestionTypeRadio, model.QuestionTypeDropdown:
		if len(question.ScoringGuide) == 0 {
			return nil
		}
		value, ok := answer["value"]
		if !ok {
			return nil
		}
		points, ok := question.ScoringGuide[optionKey(value)]
		if !ok {
			return nil
		}
		return &points

	case model.QuestionTypeRating:
		// The guide is not consulted: the rating value is the score.
		value, ok := answer["value"]
		if !ok {
			return nil
		}
		rating, ok := toFloat(value)
		if !ok {
			return nil
		}
		return &rating

	case model.QuestionTypeCheckbox:
		if len(question.ScoringGuide) == 0 {
			return nil
		}
		raw, ok := answer["values"]
		if !ok {
			return nil
		}
		values, ok := raw.([]any)
		if !ok {
			return nil
		}
		// Selected options absent from the guide contribute zero rather than
		// invalidating the answer.
		total := 0.0
		for _, v := range values {
			if points, hit := question.ScoringGuide[optionKey(v)]; hit {
				total += points
			}
		}
		return &total
	}

	// TEXT / TEXTAREA and unknown types: no guide mapping can exist.
	return nil
}

// optionKey normalizes an answer-option identifier to the string keys used by
// scoring guides. JSON numbers arrive as float64, so integral values must
// render without a decimal part ("1", not "1.0").
func optionKey(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(t, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
