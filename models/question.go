package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// QuestionRequest is the create payload. Absent fields stay nil and are
// stored as NULL.
type QuestionRequest struct {
	Question   *string  `json:"question"`
	Answer     *string  `json:"answer"`
	Category   *FlexInt `json:"category"`
	Difficulty *FlexInt `json:"difficulty"`
}

type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

type QuizCategory struct {
	ID   *FlexInt `json:"id" validate:"required"`
	Type string   `json:"type,omitempty"`
}

type QuizRequest struct {
	PreviousQuestions *[]int        `json:"previous_questions" validate:"required"`
	QuizCategory      *QuizCategory `json:"quiz_category" validate:"required"`
}

// FlexInt accepts 3, 3.0 and "3". The web client sends select values and
// category keys as strings.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	if n, err := strconv.Atoi(s); err == nil {
		*f = FlexInt(n)
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return fmt.Errorf("invalid integer %s", b)
	}
	*f = FlexInt(v)
	return nil
}

// IntPtr converts to the plain pointer the database driver expects,
// keeping nil as NULL.
func (f *FlexInt) IntPtr() *int {
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}
