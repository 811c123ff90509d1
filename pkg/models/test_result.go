package models

import (
	"math"
	"time"
)

// PassingScore is the minimum percentage required to pass a test
const PassingScore = 75

// TestResult is an immutable record of one completed test attempt
type TestResult struct {
	ID             int64     `json:"id" db:"id"`
	UserID         int64     `json:"user_id" db:"user_id"`
	Category       string    `json:"category" db:"category"`
	Score          int       `json:"score" db:"score"` // Percentage 0-100
	TotalQuestions int       `json:"total_questions" db:"total_questions"`
	CorrectAnswers int       `json:"correct_answers" db:"correct_answers"`
	TimeTaken      *int      `json:"time_taken" db:"time_taken"` // Duration in seconds
	CompletedAt    time.Time `json:"completed_at" db:"completed_at"`
}

// Passed reports whether the attempt reached the passing score
func (r TestResult) Passed() bool {
	return Passed(r.Score)
}

// Score converts a correct/total pair into a rounded percentage
func Score(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// Passed reports whether a percentage score passes
func Passed(score int) bool {
	return score >= PassingScore
}

// Grade returns the feedback message shown for a score
func Grade(score int) string {
	switch {
	case score >= 90:
		return "Excellent! You have a strong understanding of the material."
	case score >= 75:
		return "Good job! You passed the test with a solid score."
	case score >= 60:
		return "You're on the right track, but need more practice."
	default:
		return "Keep studying! Focus on the areas where you struggled."
	}
}
