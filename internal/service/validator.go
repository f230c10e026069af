package service

import (
	"intakeflow/internal/catalog"
	"intakeflow/internal/model"
	"regexp"
	"strings"
	"unicode/utf8"
)

// metricPattern recognizes a percentage, a currency amount, or a count
// followed by a unit word. The count must start the text or follow
// whitespace, so ranges such as "8-10 hours" do not match.
var metricPattern = regexp.MustCompile(`(?i)\d+%|\$\d+|(?:^|\s)\d+\s(?:hours|users|days)`)

// HasMetrics reports whether the answer contains a quantitative metric
func HasMetrics(answer string) bool {
	return metricPattern.MatchString(answer)
}

// ValidateResponse classifies one answer against its question definition
func ValidateResponse(answer string, def model.QuestionDefinition) model.ValidationState {
	if utf8.RuneCountInString(strings.TrimSpace(answer)) < def.MinCharacters {
		return model.ValidationIncomplete
	}
	if def.RequiresMetrics && !HasMetrics(answer) {
		return model.ValidationNeedsMetrics
	}
	return model.ValidationValid
}

// AnswerCheck is the validation state of one catalog question
type AnswerCheck struct {
	QuestionID string                `json:"questionId"`
	State      model.ValidationState `json:"state"`
	HasMetrics bool                  `json:"hasMetrics"`
}

// CheckAnswers validates every catalog question in order. complete is true
// only when every answer is valid.
func CheckAnswers(answers model.AnswerSet) (checks []AnswerCheck, complete bool) {
	complete = true
	for _, def := range catalog.Questions() {
		text := answers.Get(def.ID)
		state := ValidateResponse(text, def)
		if state != model.ValidationValid {
			complete = false
		}
		checks = append(checks, AnswerCheck{
			QuestionID: def.ID,
			State:      state,
			HasMetrics: HasMetrics(text),
		})
	}
	return checks, complete
}
