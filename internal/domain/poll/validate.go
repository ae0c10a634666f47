package poll

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	MinQuestionLen = 5
	MaxQuestionLen = 500
	MinOptions     = 2
	MaxOptions     = 10
	MinOptionLen   = 1
	MaxOptionLen   = 200
)

var (
	ErrQuestionLength  = errors.New("question must be between 5 and 500 characters")
	ErrOptionCount     = errors.New("poll must have between 2 and 10 options")
	ErrOptionLength    = errors.New("each option must be between 1 and 200 characters")
	ErrDuplicateOption = errors.New("options must be distinct")
)

// ValidateFields checks the shape of a poll's question and options. It is
// pure and is applied identically on create and update, so an update can
// never smuggle in values creation would have refused. Lengths are counted
// in runes after trimming surrounding whitespace; blank option entries are
// discarded before the count check.
func ValidateFields(question string, options []string) error {
	q := strings.TrimSpace(question)
	if n := utf8.RuneCountInString(q); n < MinQuestionLen || n > MaxQuestionLen {
		return ErrQuestionLength
	}

	filled := 0
	for _, opt := range options {
		if opt != "" {
			filled++
		}
	}
	if filled < MinOptions || filled > MaxOptions {
		return ErrOptionCount
	}

	// Stored votes reference options by text, so two options with the
	// same trimmed text would be indistinguishable in every tally.
	seen := make(map[string]struct{}, len(options))
	for _, opt := range options {
		if opt == "" {
			continue
		}
		trimmed := strings.TrimSpace(opt)
		if n := utf8.RuneCountInString(trimmed); n < MinOptionLen || n > MaxOptionLen {
			return ErrOptionLength
		}
		if _, ok := seen[trimmed]; ok {
			return ErrDuplicateOption
		}
		seen[trimmed] = struct{}{}
	}
	return nil
}

// normalizeFields returns the question and options as they are persisted:
// trimmed, with blank option entries dropped. Call only after ValidateFields.
func normalizeFields(question string, options []string) (string, []string) {
	opts := make([]string, 0, len(options))
	for _, opt := range options {
		if opt == "" {
			continue
		}
		opts = append(opts, strings.TrimSpace(opt))
	}
	return strings.TrimSpace(question), opts
}
