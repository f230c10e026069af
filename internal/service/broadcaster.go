package service

// Session event types sent to live listeners
const (
	EventAnswerValidated  = "answer_validated"
	EventCursorMoved      = "cursor_moved"
	EventSessionSubmitted = "session_submitted"
	EventSessionFailed    = "session_failed"
)

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToSession(sessionID string, msgType string, payload interface{})
}
