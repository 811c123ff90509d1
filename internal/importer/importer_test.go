package importer

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/citizenprep/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const bank = `1. When did Confederation take place?
1867 (correct answer)
1776
1901
1812

2. What is the capital of Canada?
Toronto
Ottawa (correct answer)
Montreal
Vancouver

3. Who is the head of government?
The Prime Minister (correct answer)
The Governor General
The Queen

4. Name one fundamental freedom.
Freedom of religion (correct answer)
Freedom to vote twice
None
All of them
An extra line that is ignored
`

type fakeReplacer struct {
	got []models.Question
	err error
}

func (f *fakeReplacer) ReplaceAll(_ context.Context, questions []models.Question) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.got = questions
	return len(questions), nil
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want string
	}{
		{"When did Confederation take place?", models.CategoryHistory},
		{"What happened at Vimy Ridge?", models.CategoryHistory},
		{"Who is the Prime Minister?", models.CategoryGovernment},
		{"When do Canadians VOTE in a federal election?", models.CategoryGovernment},
		{"What is the capital of Alberta?", models.CategoryGeography},
		{"Which ocean borders British Columbia?", models.CategoryGeography},
		{"What does the Charter protect?", models.CategoryRights},
		{"Name a responsibility of citizenship.", models.CategoryRights},
		{"What is on the Canadian flag?", models.CategoryGeneral},
		// History is checked first
		{"Which war changed the province?", models.CategoryHistory},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestParseText(t *testing.T) {
	t.Parallel()

	got, err := ParseText(strings.NewReader(bank))
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, 1, got[0].Number)
	assert.Equal(t, []string{"1867", "1776", "1901", "1812"}, got[0].Options)
	assert.Equal(t, 0, got[0].CorrectAnswer)
	assert.Equal(t, models.CategoryHistory, got[0].Category)
	assert.True(t, got[0].Valid())

	assert.Equal(t, 1, got[1].CorrectAnswer)
	assert.Equal(t, "Ottawa", got[1].Options[1])
	assert.Equal(t, models.CategoryGeography, got[1].Category)

	assert.Len(t, got[2].Options, 3)
	assert.False(t, got[2].Valid())

	assert.Len(t, got[3].Options, 4)
	assert.Equal(t, models.CategoryRights, got[3].Category)
}

func TestParseText_NoMarker(t *testing.T) {
	t.Parallel()

	got, err := ParseText(strings.NewReader("7. Question?\nA\nB\nC\nD\n"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, -1, got[0].CorrectAnswer)
	assert.False(t, got[0].Valid())
}

func TestImportFile_Text(t *testing.T) {
	t.Parallel()

	cfg := DefaultImportConfig()
	cfg.FilePath = writeFile(t, "bank.txt", bank)

	repo := &fakeReplacer{}
	result, err := ImportFile(context.Background(), cfg, repo)
	require.NoError(t, err)

	assert.Equal(t, 4, result.TotalProcessed)
	assert.Equal(t, 3, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Question 3")

	require.Len(t, repo.got, 3)
	for _, q := range repo.got {
		assert.Equal(t, models.ProvinceAll, q.Province)
	}
}

func TestImportFile_NoQuestions(t *testing.T) {
	t.Parallel()

	cfg := DefaultImportConfig()
	cfg.FilePath = writeFile(t, "empty.txt", "nothing here\n")

	repo := &fakeReplacer{}
	_, err := ImportFile(context.Background(), cfg, repo)
	assert.ErrorIs(t, err, ErrNoQuestions)
	assert.Nil(t, repo.got)
}

func TestImportFile_StoreError(t *testing.T) {
	t.Parallel()

	cfg := DefaultImportConfig()
	cfg.FilePath = writeFile(t, "bank.txt", bank)

	_, err := ImportFile(context.Background(), cfg, &fakeReplacer{err: errors.New("boom")})
	assert.ErrorContains(t, err, "failed to store questions")
}

func TestLoad_CSV(t *testing.T) {
	t.Parallel()

	content := strings.Join([]string{
		"question,a,b,c,d,correct,explanation,category,province",
		`"What is the capital of Canada?",Toronto,Ottawa,Montreal,Vancouver,B,"Ottawa, Ontario",,`,
		`Who signs bills into law?,The Governor General,The Mayor,The Senate,The Premier,1,,government,on`,
		`Missing options,A,B,,,A,,,`,
		`Bad province,A,B,C,D,2,,,zz`,
		`Bad answer,A,B,C,D,7,,,`,
		``,
	}, "\n")

	cfg := DefaultImportConfig()
	cfg.FilePath = writeFile(t, "bank.csv", content)

	questions, result, err := Load(cfg)
	require.NoError(t, err)
	require.Len(t, questions, 2)

	assert.Equal(t, models.CategoryGeography, questions[0].Category)
	assert.Equal(t, 1, questions[0].CorrectAnswer)
	assert.Equal(t, "Ottawa, Ontario", questions[0].ExplanationText())

	assert.Equal(t, models.CategoryGovernment, questions[1].Category)
	assert.Equal(t, 0, questions[1].CorrectAnswer)
	assert.Equal(t, "on", questions[1].Province)

	assert.Equal(t, 5, result.TotalProcessed)
	assert.Equal(t, 3, result.Skipped)
}

func TestLoad_Excel(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bank.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Question", "A", "B", "C", "D", "Correct"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{
		"Which river flows into the Arctic?", "Mackenzie", "St. Lawrence", "Fraser", "Red", "a",
	}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	cfg := DefaultImportConfig()
	cfg.FilePath = path

	questions, result, err := Load(cfg)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, 1, result.TotalProcessed)
	assert.Equal(t, models.CategoryGeography, questions[0].Category)
	assert.Equal(t, 0, questions[0].CorrectAnswer)
	assert.Nil(t, questions[0].Explanation)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	_, _, err := Load(ImportConfig{FilePath: "questions.pdf"})
	assert.ErrorContains(t, err, "unsupported file type")
}

func TestParseCorrect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "A", want: 0},
		{in: "d", want: 3},
		{in: "3", want: 2},
		{in: "E", wantErr: true},
		{in: "0", wantErr: true},
		{in: "", wantErr: true},
		{in: "first", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseCorrect(tt.in, 4)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestExportSQL(t *testing.T) {
	t.Parallel()

	explanation := "It's in Ontario"
	var buf bytes.Buffer
	err := ExportSQL(&buf, []models.Question{
		{
			Category:      models.CategoryGeography,
			Question:      "What's the capital?",
			Options:       models.OptionList{"Ottawa", "Toronto", "Montreal", "Quebec"},
			CorrectAnswer: 0,
			Explanation:   &explanation,
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "-- 1 questions\n")
	assert.Contains(t, out, `VALUES ('geography', 'What''s the capital?', '["Ottawa","Toronto","Montreal","Quebec"]', 0, 'It''s in Ontario', 'all');`)
}
