package service

import (
	"context"
	"intakeflow/internal/model"
	"sync"
	"time"
)

type fakeRepo struct {
	mu      sync.Mutex
	id      string
	err     error
	panics  bool
	calls   int
	records []model.SubmissionRecord
	tokens  []string
}

func (f *fakeRepo) Insert(ctx context.Context, rec *model.SubmissionRecord, accessToken string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.records = append(f.records, *rec)
	f.tokens = append(f.tokens, accessToken)
	if f.panics {
		panic("driver exploded")
	}
	return f.id, f.err
}

type fakeAuth struct {
	identity *model.Identity
	err      error
	calls    int
}

func (f *fakeAuth) Resolve(ctx context.Context, accessToken string) (*model.Identity, error) {
	f.calls++
	return f.identity, f.err
}

type memSessions struct {
	mu       sync.Mutex
	sessions map[string]model.Session
	locks    map[string]bool
	setErr   error
}

func newMemSessions() *memSessions {
	return &memSessions{sessions: make(map[string]model.Session)}
}

func (m *memSessions) Set(ctx context.Context, s *model.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	cp := *s
	cp.Answers = s.Answers.Clone()
	m.sessions[s.ID] = cp
	return nil
}

func (m *memSessions) Get(ctx context.Context, id string) (*model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	s.Answers = s.Answers.Clone()
	return &s, nil
}

func (m *memSessions) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memSessions) AcquireSubmit(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks == nil {
		m.locks = make(map[string]bool)
	}
	if m.locks[id] {
		return false, nil
	}
	m.locks[id] = true
	return true, nil
}

func (m *memSessions) ReleaseSubmit(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, id)
	return nil
}

func (m *memSessions) SubmitInFlight(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.locks[id], nil
}

type event struct {
	sessionID string
	msgType   string
	payload   interface{}
}

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []event
}

func (b *recordingBroadcaster) BroadcastToSession(sessionID string, msgType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event{sessionID, msgType, payload})
}

func (b *recordingBroadcaster) types() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.events))
	for i, e := range b.events {
		out[i] = e.msgType
	}
	return out
}
