package model

import "strings"

// AnswerSet maps question ID to answer text for one session
type AnswerSet map[string]string

// Get returns the answer for a question, or "" if absent
func (a AnswerSet) Get(questionID string) string {
	if a == nil {
		return ""
	}
	return a[questionID]
}

// Clone returns an independent copy
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Answered reports whether the question has a non-blank answer
func (a AnswerSet) Answered(questionID string) bool {
	return strings.TrimSpace(a.Get(questionID)) != ""
}
