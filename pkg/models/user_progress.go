package models

import "time"

// UserProgress is the cumulative per-user, per-category tally across all test sessions
type UserProgress struct {
	ID                 int64      `json:"id" db:"id"`
	UserID             int64      `json:"user_id" db:"user_id"`
	Category           string     `json:"category" db:"category"`
	QuestionsAttempted int        `json:"questions_attempted" db:"questions_attempted"`
	QuestionsCorrect   int        `json:"questions_correct" db:"questions_correct"`
	LastAttempted      *time.Time `json:"last_attempted" db:"last_attempted"`
}

// Accuracy returns the rounded percentage of correct answers
func (p UserProgress) Accuracy() int {
	return Score(p.QuestionsCorrect, p.QuestionsAttempted)
}
