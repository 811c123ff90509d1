package models

// ResultStats aggregates a user's test history
type ResultStats struct {
	TotalTests     int     `json:"total_tests" db:"total_tests"`
	AverageScore   float64 `json:"average_score" db:"average_score"`
	TotalQuestions int     `json:"total_questions" db:"total_questions"`
	TotalCorrect   int     `json:"total_correct" db:"total_correct"`
}

// Dashboard is the progress overview returned to an authenticated user
type Dashboard struct {
	Name           string         `json:"name"`
	TotalTests     int            `json:"total_tests"`
	AverageScore   int            `json:"average_score"`
	Grade          string         `json:"grade,omitempty"`
	TotalQuestions int            `json:"total_questions"`
	TotalCorrect   int            `json:"total_correct"`
	Progress       []UserProgress `json:"progress"`
	Recent         []TestResult   `json:"recent"`
}
