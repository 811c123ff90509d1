package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Question is an imported multiple-choice question
type Question struct {
	ID            int64      `json:"id" db:"id"`
	Category      string     `json:"category" db:"category"`
	Question      string     `json:"question" db:"question"`
	Options       OptionList `json:"options" db:"options"`
	CorrectAnswer int        `json:"correct_answer" db:"correct_answer"` // Index into Options
	Explanation   *string    `json:"explanation" db:"explanation"`
	Difficulty    string     `json:"difficulty" db:"difficulty"`
	Province      string     `json:"province" db:"province"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

// IsCorrect reports whether choice is the correct option index
func (q Question) IsCorrect(choice int) bool {
	return choice == q.CorrectAnswer
}

// CorrectOption returns the text of the correct option
func (q Question) CorrectOption() string {
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectAnswer]
}

// ExplanationText returns the explanation or an empty string
func (q Question) ExplanationText() string {
	if q.Explanation == nil {
		return ""
	}
	return *q.Explanation
}

// OptionList is the ordered answer choices, stored as a JSON array
type OptionList []string

// Value implements driver.Valuer
func (o OptionList) Value() (driver.Value, error) {
	if o == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(o))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner. Rows written by older tooling may hold
// bullet or newline separated text instead of JSON.
func (o *OptionList) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*o = OptionList{}
		return nil
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("unsupported options type %T", src)
	}

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		*o = list
		return nil
	}

	*o = splitOptions(raw)
	return nil
}

func splitOptions(raw string) OptionList {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '•' || r == '\n' || r == '\r'
	})

	options := make(OptionList, 0, 4)
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		options = append(options, p)
		if len(options) == 4 {
			break
		}
	}
	return options
}
