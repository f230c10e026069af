package model

import "time"

// SessionState is the wizard-level state of one intake session
type SessionState string

const (
	SessionCollecting SessionState = "collecting"
	SessionSubmitting SessionState = "submitting"
	SessionSubmitted  SessionState = "submitted"
	SessionFailed     SessionState = "failed"
)

// SessionError is the presentable part of the last failed submission
type SessionError struct {
	Code        string `json:"code"`
	UserMessage string `json:"userMessage"`
}

// Session is one in-progress run through the question catalog
type Session struct {
	ID          string        `json:"id"`
	ProjectName string        `json:"projectName,omitempty"`
	Answers     AnswerSet     `json:"answers"`
	Cursor      int           `json:"cursor"`
	State       SessionState  `json:"state"`
	IntakeID    string        `json:"intakeId,omitempty"`
	LastError   *SessionError `json:"lastError,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
