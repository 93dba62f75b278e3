// Package install fakes the install action. Nothing is downloaded or
// installed; each request opens a pretend installer session and logs it.
package install

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jask/storefront/internal/catalog"
)

// Result is what the UI reports back for one install request.
type Result struct {
	SessionID      uuid.UUID
	ActiveSessions int
	Status         string
	Toast          string
}

// Simulator counts pretend installer sessions for the life of the process.
type Simulator struct {
	log *zap.Logger

	mu       sync.Mutex
	sessions map[string]uuid.UUID // app id -> session
}

func NewSimulator(log *zap.Logger) *Simulator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Simulator{log: log, sessions: map[string]uuid.UUID{}}
}

// Install opens a session for app, reusing the existing one if there is one.
func (s *Simulator) Install(app catalog.App) Result {
	s.mu.Lock()
	id, ok := s.sessions[app.ID]
	if !ok {
		id = uuid.New()
		s.sessions[app.ID] = id
	}
	active := len(s.sessions)
	s.mu.Unlock()

	s.log.Info("installer prepared",
		zap.String("app", app.ID),
		zap.Stringer("session", id),
		zap.Bool("reused", ok),
		zap.Int("active_sessions", active),
	)
	return Result{
		SessionID:      id,
		ActiveSessions: active,
		Status:         fmt.Sprintf("Installer prepared: %d sessions", active),
		Toast:          fmt.Sprintf("Simulating install of %s", app.Name),
	}
}

// Sessions is the number of open pretend sessions.
func (s *Simulator) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
