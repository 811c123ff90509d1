package importer

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

const correctMarker = "(correct answer)"

var questionLine = regexp.MustCompile(`^(\d+)\.\s+(.+)$`)

// ParsedQuestion is one question block read from a plain-text bank
type ParsedQuestion struct {
	Number        int
	Text          string
	Options       []string
	CorrectAnswer int // -1 when no option carried the marker
	Category      string
}

// Valid reports whether the question has four options and a marked answer
func (p ParsedQuestion) Valid() bool {
	return len(p.Options) == 4 && p.CorrectAnswer >= 0
}

// ParseText reads a numbered question bank. A line "N. text" starts a question,
// the next four non-blank lines are its options and the option containing
// "(correct answer)" is the correct one. Extra lines before the next question are ignored.
func ParseText(r io.Reader) ([]ParsedQuestion, error) {
	var (
		questions []ParsedQuestion
		current   *ParsedQuestion
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if m := questionLine.FindStringSubmatch(line); m != nil {
			if current != nil {
				questions = append(questions, *current)
			}
			number, _ := strconv.Atoi(m[1])
			current = &ParsedQuestion{
				Number:        number,
				Text:          m[2],
				Options:       make([]string, 0, 4),
				CorrectAnswer: -1,
				Category:      Classify(m[2]),
			}
			continue
		}

		if current == nil || len(current.Options) == 4 {
			continue
		}

		if strings.Contains(line, correctMarker) {
			current.CorrectAnswer = len(current.Options)
			line = strings.TrimSpace(strings.Replace(line, correctMarker, "", 1))
		}
		current.Options = append(current.Options, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read question bank: %w", err)
	}

	if current != nil {
		questions = append(questions, *current)
	}
	return questions, nil
}
