package importer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/example/citizenprep/pkg/models"
)

// ExportSQL writes one INSERT statement per question, suitable for seeding another store
func ExportSQL(w io.Writer, questions []models.Question) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "-- %d questions\n", len(questions))
	for _, q := range questions {
		options, err := q.Options.Value()
		if err != nil {
			return fmt.Errorf("failed to encode options for question %d: %w", q.ID, err)
		}

		province := q.Province
		if province == "" {
			province = models.ProvinceAll
		}

		fmt.Fprintf(bw,
			"INSERT INTO questions (category, question, options, correct_answer, explanation, province) VALUES (%s, %s, %s, %d, %s, %s);\n",
			quote(q.Category),
			quote(q.Question),
			quote(options.(string)),
			q.CorrectAnswer,
			quote(q.ExplanationText()),
			quote(province),
		)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
