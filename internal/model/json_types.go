package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// AnswerPayload is the stored answer for one response. The wire shape is an
// open mapping; recognized keys are "value" (single-choice, dropdown, rating)
// and "values" (multi-choice). Anything else is tolerated and simply unscored.
type AnswerPayload map[string]any

func (p AnswerPayload) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	raw, err := json.Marshal(p)
	return string(raw), err
}

func (p *AnswerPayload) Scan(value any) error {
	return scanJSON(value, p)
}

// ScoringGuide maps an answer-option identifier to its point value.
type ScoringGuide map[string]float64

func (g ScoringGuide) Value() (driver.Value, error) {
	if g == nil {
		return nil, nil
	}
	raw, err := json.Marshal(g)
	return string(raw), err
}

func (g *ScoringGuide) Scan(value any) error {
	return scanJSON(value, g)
}

// OptionList holds the selectable options of a choice question.
type OptionList []string

func (o OptionList) Value() (driver.Value, error) {
	if o == nil {
		return nil, nil
	}
	raw, err := json.Marshal(o)
	return string(raw), err
}

func (o *OptionList) Scan(value any) error {
	return scanJSON(value, o)
}

func scanJSON(value, dest any) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported column type %T for JSON field", value)
	}
}
