package faqsource

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/hananasr/faqchat/internal/domain/faq"
)

// CSVSource loads FAQ entries from a UTF-8 CSV file with a
// "question,answer" header. Row order is preserved.
type CSVSource struct {
	path string
}

// NewCSVSource constructs the source. The file is read on every Load call
// so a reload picks up edits without restarting.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Load implements faq.Source.
func (s *CSVSource) Load(_ context.Context) ([]faq.Entry, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open faq file %s: %w", s.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse faq file %s: %w", s.path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("faq file %s is empty", s.path)
	}

	questionCol, answerCol, err := resolveColumns(records[0])
	if err != nil {
		return nil, fmt.Errorf("faq file %s: %w", s.path, err)
	}

	entries := make([]faq.Entry, 0, len(records)-1)
	for i, record := range records[1:] {
		if questionCol >= len(record) || answerCol >= len(record) {
			return nil, fmt.Errorf("faq file %s: row %d has %d fields", s.path, i+2, len(record))
		}
		question := strings.TrimSpace(record[questionCol])
		answer := strings.TrimSpace(record[answerCol])
		if question == "" {
			return nil, fmt.Errorf("faq file %s: row %d has an empty question", s.path, i+2)
		}
		entries = append(entries, faq.Entry{Question: question, Answer: answer})
	}
	return entries, nil
}

func resolveColumns(header []string) (question, answer int, err error) {
	question, answer = -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "question":
			question = i
		case "answer":
			answer = i
		}
	}
	if question < 0 || answer < 0 {
		return 0, 0, fmt.Errorf("header must contain question and answer columns, got %v", header)
	}
	return question, answer, nil
}

var _ faq.Source = (*CSVSource)(nil)
