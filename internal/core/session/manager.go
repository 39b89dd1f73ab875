// Package session keeps the volatile state of every connected client.
package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"flavoria/internal/core/app"
	"flavoria/internal/core/catalog"
	"flavoria/internal/core/navigation"
	"flavoria/internal/core/profile"
	"flavoria/internal/core/splash"
	"flavoria/internal/infrastructure/config"
	"flavoria/internal/pkg/common"

	"go.uber.org/zap"
)

// ErrNotFound is returned for an unknown or ended session.
var ErrNotFound = errors.New("session not found")

// Session is one running instance of the application.
type Session struct {
	ID        string
	CreatedAt time.Time

	nav     *navigation.Controller
	splash  *splash.Timer
	welcome atomic.Bool

	mu         sync.Mutex
	lastAccess time.Time
}

// Navigation returns the session's navigation controller.
func (s *Session) Navigation() *navigation.Controller {
	return s.nav
}

// App returns the application state owned by the navigation controller.
func (s *Session) App() *app.State {
	return s.nav.App()
}

// Welcome reports whether the splash delay is still running.
func (s *Session) Welcome() bool {
	return s.welcome.Load()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastAccess = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAccess
}

// end 停止 splash 計時器並丟棄所有狀態
func (s *Session) end() {
	s.splash.Stop()
	s.welcome.Store(false)
	s.App().Reset()
}

// Manager 工作階段管理器
type Manager struct {
	config  *config.Config
	fetcher catalog.Fetcher

	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
	done     chan struct{}
	once     sync.Once
}

// NewManager 創建工作階段管理器並啟動閒置清理協程
func NewManager(cfg *config.Config, fetcher catalog.Fetcher) *Manager {
	m := &Manager{
		config:   cfg,
		fetcher:  fetcher,
		sessions: make(map[string]*Session),
		now:      time.Now,
		done:     make(chan struct{}),
	}

	go m.startCleanup()

	common.LogInfo("Session manager initialized",
		zap.Duration("idle_ttl", cfg.Session.IdleTTL),
		zap.Duration("splash_delay", cfg.Session.SplashDelay),
	)
	return m
}

// Create starts a session with default profile, no favorites, the Listing
// screen and the initial catalog load done.
func (m *Manager) Create(ctx context.Context) *Session {
	state := app.NewState(m.fetcher,
		catalog.Featured{
			RecipeID: m.config.MealDB.FeaturedRecipeID,
			Title:    m.config.MealDB.FeaturedTitle,
		},
		profile.Profile{
			DisplayName: m.config.Profile.DisplayName,
			AvatarRef:   m.config.Profile.AvatarRef,
		},
	)

	now := m.now()
	s := &Session{
		ID:         common.GenerateUUID(),
		CreatedAt:  now,
		nav:        navigation.NewController(state),
		lastAccess: now,
	}
	s.welcome.Store(true)
	s.splash = splash.Start(m.config.Session.SplashDelay, func() {
		s.welcome.Store(false)
		common.LogDebug("Splash finished", zap.String("session_id", s.ID))
	})

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	listing := state.Catalog.Init(ctx)

	common.LogInfo("Session created",
		zap.String("session_id", s.ID),
		zap.Int("recipes", len(listing.Recipes)),
		zap.Int("categories", len(listing.Categories)),
	)
	return s
}

// Get returns the session and refreshes its idle timer.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	s.touch(m.now())
	return s, nil
}

// End discards the session. A pending splash callback never fires.
func (m *Manager) End(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return ErrNotFound
	}
	s.end()
	common.LogInfo("Session ended", zap.String("session_id", id))
	return nil
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) startCleanup() {
	ticker := time.NewTicker(m.config.Session.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.cleanup()
		case <-m.done:
			return
		}
	}
}

// cleanup ends sessions idle for longer than the configured TTL.
func (m *Manager) cleanup() int {
	now := m.now()
	var expired []*Session

	m.mu.Lock()
	for id, s := range m.sessions {
		if now.Sub(s.idleSince()) > m.config.Session.IdleTTL {
			delete(m.sessions, id)
			expired = append(expired, s)
		}
	}
	remaining := len(m.sessions)
	m.mu.Unlock()

	for _, s := range expired {
		s.end()
	}

	if len(expired) > 0 {
		common.LogInfo("Expired idle sessions",
			zap.Int("count", len(expired)),
			zap.Int("remaining", remaining),
		)
	}
	return len(expired)
}

// Close stops the cleanup loop and ends every session.
func (m *Manager) Close() error {
	m.once.Do(func() { close(m.done) })

	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.end()
	}
	common.LogInfo("Session manager closed", zap.Int("ended", len(sessions)))
	return nil
}
