package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/citizenprep/pkg/models"
	"github.com/xuri/excelize/v2"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath          string   // Path to the .txt, .xlsx or .csv file
	QuestionColumn    string   // Column with the question text
	OptionColumns     []string // Columns with the four options, in order
	CorrectColumn     string   // Column with the correct option (A-D or 1-4)
	ExplanationColumn string   // Column with the explanation
	CategoryColumn    string   // Column with the category; blank cells are classified
	ProvinceColumn    string   // Column with the province code; blank cells mean all
	SheetName         string   // Name of the sheet to import
	StartRow          int      // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		QuestionColumn:    "A",
		OptionColumns:     []string{"B", "C", "D", "E"},
		CorrectColumn:     "F",
		ExplanationColumn: "G",
		CategoryColumn:    "H",
		ProvinceColumn:    "I",
		SheetName:         "Sheet1",
		StartRow:          2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int      `json:"total_processed"`
	Imported       int      `json:"imported"`
	Skipped        int      `json:"skipped"`
	Errors         []string `json:"errors"`
}

func (r *ImportResult) skip(format string, args ...interface{}) {
	r.Skipped++
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Replacer stores a complete question bank, discarding the previous one
type Replacer interface {
	ReplaceAll(ctx context.Context, questions []models.Question) (int, error)
}

// ErrNoQuestions is returned when a file yields no importable question
var ErrNoQuestions = errors.New("no valid questions found")

// ImportFile loads the configured file and replaces the stored question bank with it
func ImportFile(ctx context.Context, config ImportConfig, repo Replacer) (*ImportResult, error) {
	questions, result, err := Load(config)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return result, ErrNoQuestions
	}

	inserted, err := repo.ReplaceAll(ctx, questions)
	if err != nil {
		return nil, fmt.Errorf("failed to store questions: %w", err)
	}
	result.Imported = inserted
	return result, nil
}

// Load reads questions from the configured file without touching the store
func Load(config ImportConfig) ([]models.Question, *ImportResult, error) {
	// Check the file extension
	switch ext := strings.ToLower(filepath.Ext(config.FilePath)); ext {
	case ".txt":
		return loadText(config)
	case ".csv":
		return loadCSV(config)
	case ".xlsx", ".xlsm":
		return loadExcel(config)
	default:
		return nil, nil, fmt.Errorf("unsupported file type %q", ext)
	}
}

func loadText(config ImportConfig) ([]models.Question, *ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open question bank: %w", err)
	}
	defer file.Close()

	parsed, err := ParseText(file)
	if err != nil {
		return nil, nil, err
	}

	result := &ImportResult{Errors: make([]string, 0)}
	questions := make([]models.Question, 0, len(parsed))

	for _, p := range parsed {
		result.TotalProcessed++
		if !p.Valid() {
			result.skip("Question %d: invalid format (%d options, correct answer %d)", p.Number, len(p.Options), p.CorrectAnswer)
			continue
		}
		questions = append(questions, models.Question{
			Category:      p.Category,
			Question:      p.Text,
			Options:       p.Options,
			CorrectAnswer: p.CorrectAnswer,
			Province:      models.ProvinceAll,
		})
	}
	return questions, result, nil
}

// loadExcel imports questions from an Excel workbook
func loadExcel(config ImportConfig) ([]models.Question, *ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get rows: %w", err)
	}

	return processRows(rows, config)
}

// loadCSV imports questions from a CSV file laid out like the workbook
func loadCSV(config ImportConfig) ([]models.Question, *ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("error reading CSV: %w", err)
		}
		rows = append(rows, row)
	}

	return processRows(rows, config)
}

func processRows(rows [][]string, config ImportConfig) ([]models.Question, *ImportResult, error) {
	result := &ImportResult{Errors: make([]string, 0)}
	questions := make([]models.Question, 0, len(rows))

	for i, row := range rows {
		// Skip header rows
		if i < config.StartRow-1 {
			continue
		}
		if isBlank(row) {
			continue
		}

		result.TotalProcessed++

		q, err := processRow(row, config)
		if err != nil {
			result.skip("Row %d: %v", i+1, err)
			continue
		}
		questions = append(questions, q)
	}
	return questions, result, nil
}

// processRow converts a single spreadsheet row into a question
func processRow(row []string, config ImportConfig) (models.Question, error) {
	cell := func(column string) string {
		if column == "" {
			return ""
		}
		if idx := columnToIndex(column); idx >= 0 && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	text := cell(config.QuestionColumn)
	if text == "" {
		return models.Question{}, errors.New("question cannot be empty")
	}

	options := make(models.OptionList, 0, len(config.OptionColumns))
	for _, column := range config.OptionColumns {
		if opt := cell(column); opt != "" {
			options = append(options, opt)
		}
	}
	if len(options) != 4 {
		return models.Question{}, fmt.Errorf("expected 4 options, got %d", len(options))
	}

	correct, err := parseCorrect(cell(config.CorrectColumn), len(options))
	if err != nil {
		return models.Question{}, err
	}

	category := strings.ToLower(cell(config.CategoryColumn))
	if category == "" {
		category = Classify(text)
	}
	if !models.IsCategory(category) || category == models.CategoryFull {
		return models.Question{}, fmt.Errorf("unknown category %q", category)
	}

	province := strings.ToLower(cell(config.ProvinceColumn))
	if province == "" {
		province = models.ProvinceAll
	}
	if !models.IsProvince(province) {
		return models.Question{}, fmt.Errorf("unknown province %q", province)
	}

	q := models.Question{
		Category:      category,
		Question:      text,
		Options:       options,
		CorrectAnswer: correct,
		Province:      province,
	}
	if explanation := cell(config.ExplanationColumn); explanation != "" {
		q.Explanation = &explanation
	}
	return q, nil
}

// parseCorrect accepts an option letter (A-D) or a 1-based option number
func parseCorrect(s string, options int) (int, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, errors.New("correct answer is missing")
	}

	if len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z' {
		if idx := int(s[0] - 'A'); idx < options {
			return idx, nil
		}
		return 0, fmt.Errorf("correct answer %q out of range", s)
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid correct answer %q", s)
	}
	if n < 1 || n > options {
		return 0, fmt.Errorf("correct answer %d out of range", n)
	}
	return n - 1, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Helper function to convert Excel column letter to index
func columnToIndex(column string) int {
	column = strings.ToUpper(column)
	index := 0
	for i := 0; i < len(column); i++ {
		index = index*26 + int(column[i]-'A'+1)
	}
	return index - 1
}
