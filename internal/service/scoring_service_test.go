package service

import (
	"testing"

	"github.com/hqdat/workpulse/internal/model"
)

func scoredQuestion(qType string, points float64, guide model.ScoringGuide) *model.Question {
	return &model.Question{
		Type:          qType,
		HasScoring:    true,
		ScoringPoints: points,
		ScoringGuide:  guide,
	}
}

func TestScoreRadioUsesGuide(t *testing.T) {
	scorer := NewScoringService()
	question := scoredQuestion(model.QuestionTypeRadio, 5, model.ScoringGuide{"1": 5, "2": 0})

	score := scorer.Score(question, model.AnswerPayload{"value": "1"})
	if score == nil || *score != 5 {
		t.Fatalf("expected score 5, got %v", score)
	}

	score = scorer.Score(question, model.AnswerPayload{"value": "2"})
	if score == nil || *score != 0 {
		t.Fatalf("expected explicit zero score, got %v", score)
	}
}

func TestScoreRadioNumericValueMatchesStringKey(t *testing.T) {
	scorer := NewScoringService()
	question := scoredQuestion(model.QuestionTypeRadio, 5, model.ScoringGuide{"1": 5})

	// JSON numbers decode to float64; the guide keys stay strings.
	score := scorer.Score(question, model.AnswerPayload{"value": float64(1)})
	if score == nil || *score != 5 {
		t.Fatalf("expected float64(1) to hit guide key %q, got %v", "1", score)
	}
}

func TestScoreGuideMissIsUnscored(t *testing.T) {
	scorer := NewScoringService()
	question := scoredQuestion(model.QuestionTypeDropdown, 5, model.ScoringGuide{"1": 5})

	if score := scorer.Score(question, model.AnswerPayload{"value": "99"}); score != nil {
		t.Fatalf("guide miss must yield nil, got %v", *score)
	}
}

func TestScoreChoiceWithoutGuideIsUnscored(t *testing.T) {
	scorer := NewScoringService()
	question := scoredQuestion(model.QuestionTypeRadio, 5, nil)

	if score := scorer.Score(question, model.AnswerPayload{"value": "1"}); score != nil {
		t.Fatalf("choice question without a guide must yield nil, got %v", *score)
	}
}

func TestScoreRatingIgnoresGuide(t *testing.T) {
	scorer := NewScoringService()
	question := scoredQuestion(model.QuestionTypeRating, 10, nil)

	score := scorer.Score(question, model.AnswerPayload{"value": float64(4)})
	if score == nil || *score != 4 {
		t.Fatalf("rating value should become the score directly, got %v", score)
	}

	// A guide on a rating question has no effect.
	question.ScoringGuide = model.ScoringGuide{"4": 100}
	score = scorer.Score(question, model.AnswerPayload{"value": float64(4)})
	if score == nil || *score != 4 {
		t.Fatalf("rating must not consult the guide, got %v", score)
	}
}

func TestScoreRatingMalformedValue(t *testing.T) {
	scorer := NewScoringService()
	question := scoredQuestion(model.QuestionTypeRating, 10, nil)

	if score := scorer.Score(question, model.AnswerPayload{"value": "not a number"}); score != nil {
		t.Fatalf("unparseable rating must yield nil, got %v", *score)
	}
	if score := scorer.Score(question, model.AnswerPayload{"wrong_key": float64(4)}); score != nil {
		t.Fatalf("missing value key must yield nil, got %v", *score)
	}
}

func TestScoreCheckboxSumsGuideHits(t *testing.T) {
	scorer := NewScoringService()
	question := scoredQuestion(model.QuestionTypeCheckbox, 6, model.ScoringGuide{"a": 2, "b": 3})

	score := scorer.Score(question, model.AnswerPayload{"values": []any{"a", "b", "unknown"}})
	if score == nil || *score != 5 {
		t.Fatalf("expected 2+3 with unknown option contributing zero, got %v", score)
	}

	// An empty selection is a valid answer worth zero, not unscored.
	score = scorer.Score(question, model.AnswerPayload{"values": []any{}})
	if score == nil || *score != 0 {
		t.Fatalf("empty checkbox selection should score zero, got %v", score)
	}
}

func TestScoreCheckboxMalformedPayload(t *testing.T) {
	scorer := NewScoringService()
	question := scoredQuestion(model.QuestionTypeCheckbox, 6, model.ScoringGuide{"a": 2})

	if score := scorer.Score(question, model.AnswerPayload{"values": "a"}); score != nil {
		t.Fatalf("non-list values must yield nil, got %v", *score)
	}
	if score := scorer.Score(question, model.AnswerPayload{"value": []any{"a"}}); score != nil {
		t.Fatalf("checkbox answers use the values key, got %v", *score)
	}
}

func TestScoreTextNeverScored(t *testing.T) {
	scorer := NewScoringService()
	for _, qType := range []string{model.QuestionTypeText, model.QuestionTypeTextArea} {
		question := scoredQuestion(qType, 5, model.ScoringGuide{"anything": 5})
		if score := scorer.Score(question, model.AnswerPayload{"value": "anything"}); score != nil {
			t.Fatalf("%s questions must never be scored, got %v", qType, *score)
		}
	}
}

func TestScoreSkipsUnscoredInputs(t *testing.T) {
	scorer := NewScoringService()

	if score := scorer.Score(nil, model.AnswerPayload{"value": "1"}); score != nil {
		t.Fatalf("nil question must yield nil, got %v", *score)
	}

	question := scoredQuestion(model.QuestionTypeRadio, 5, model.ScoringGuide{"1": 5})
	question.HasScoring = false
	if score := scorer.Score(question, model.AnswerPayload{"value": "1"}); score != nil {
		t.Fatalf("question without scoring must yield nil, got %v", *score)
	}

	question.HasScoring = true
	if score := scorer.Score(question, nil); score != nil {
		t.Fatalf("nil answer must yield nil, got %v", *score)
	}
}

func TestOptionKeyNormalizesNumbers(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"3", "3"},
		{float64(1), "1"},
		{float64(1.5), "1.5"},
		{float64(10), "10"},
		{true, "true"},
	}
	for _, tc := range cases {
		if got := optionKey(tc.in); got != tc.want {
			t.Errorf("optionKey(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
