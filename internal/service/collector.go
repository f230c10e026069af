package service

import "intakeflow/internal/model"

// Collector holds the answers of one session and a cursor over the
// catalog. It performs no validation. Not safe for concurrent use.
type Collector struct {
	answers model.AnswerSet
	cursor  int
	length  int
}

// NewCollector creates an empty collector over a catalog of catalogLen questions
func NewCollector(catalogLen int) *Collector {
	return RestoreCollector(catalogLen, nil, 0)
}

// RestoreCollector rebuilds a collector from stored session state. The
// cursor is clamped into range.
func RestoreCollector(catalogLen int, answers model.AnswerSet, cursor int) *Collector {
	if catalogLen < 1 {
		catalogLen = 1
	}
	c := &Collector{
		answers: answers.Clone(),
		length:  catalogLen,
	}
	c.cursor = clamp(cursor, 0, catalogLen-1)
	return c
}

// SetAnswer stores the answer text for a question
func (c *Collector) SetAnswer(questionID, text string) {
	c.answers[questionID] = text
}

// CurrentAnswer returns the stored answer, or "" if none
func (c *Collector) CurrentAnswer(questionID string) string {
	return c.answers.Get(questionID)
}

// Advance moves the cursor forward unless it is on the last question
func (c *Collector) Advance() bool {
	if c.cursor >= c.length-1 {
		return false
	}
	c.cursor++
	return true
}

// Retreat moves the cursor back unless it is on the first question
func (c *Collector) Retreat() bool {
	if c.cursor <= 0 {
		return false
	}
	c.cursor--
	return true
}

// Cursor is the zero-based index of the current question
func (c *Collector) Cursor() int {
	return c.cursor
}

// Answers returns a copy of the collected answers
func (c *Collector) Answers() model.AnswerSet {
	return c.answers.Clone()
}

// Progress is the percentage of the given questions with a non-blank answer
func (c *Collector) Progress(questionIDs []string) int {
	if len(questionIDs) == 0 {
		return 0
	}
	answered := 0
	for _, id := range questionIDs {
		if c.answers.Answered(id) {
			answered++
		}
	}
	return answered * 100 / len(questionIDs)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
