package service

import (
	"context"
	"errors"
	"sync"

	"github.com/aliskhannn/video-quiz-bot/internal/domain/entities"
)

var (
	ErrNotConfigurable = errors.New("quiz cannot be configured in the current state")
	ErrQuizNotReady    = errors.New("question set is not loaded")
	ErrStaleSession    = errors.New("session is no longer active")
	ErrNoSession       = errors.New("no active session")
)

// Screen is what the presentation layer should show for a flow.
type Screen int

const (
	ScreenCatalog Screen = iota
	ScreenLoading
	ScreenLoadError
	ScreenConfig
	ScreenQuestion
	ScreenSummary
)

func (s Screen) String() string {
	switch s {
	case ScreenCatalog:
		return "catalog"
	case ScreenLoading:
		return "loading"
	case ScreenLoadError:
		return "load_error"
	case ScreenConfig:
		return "config"
	case ScreenQuestion:
		return "question"
	case ScreenSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// QuizView is an immutable snapshot of a flow for rendering.
type QuizView struct {
	Screen           Screen
	SourceID         string
	LoadError        string
	Config           entities.QuizConfig
	SessionID        string
	Question         entities.Question
	Index            int
	Total            int
	Revealed         bool
	SelectedOptionID string
	Answered         int
	Progress         float64
	Summary          *Summary
}

// QuizFlow drives one user's way through catalog selection, loading,
// configuration, the quiz itself and the summary.
// All methods are safe for concurrent use.
type QuizFlow struct {
	mu        sync.Mutex
	loader    *Loader
	config    entities.QuizConfig
	configGen uint64 // loader generation the config was derived for
	session   *Session
	finalize  func([]entities.Question, entities.QuizConfig) []entities.Question
}

// NewQuizFlow creates a flow that starts at the catalog.
func NewQuizFlow(fetcher QuestionSetFetcher) *QuizFlow {
	return &QuizFlow{
		loader:   NewLoader(fetcher),
		finalize: FinalizeSelection,
	}
}

// SelectSource discards any session and loads the question set for sourceID.
// It blocks for the duration of the fetch and reports whether the result was
// applied; a newer selection made meanwhile wins.
func (f *QuizFlow) SelectSource(ctx context.Context, sourceID string) (QuizView, bool) {
	ticket, _ := f.BeginLoad(sourceID)
	return f.CompleteLoad(ctx, ticket)
}

// BeginLoad discards any session and configuration and issues the ticket for
// sourceID. Tickets are ordered by BeginLoad calls, so callers that fetch in the
// background must call it before handing off. The returned view is the loading
// screen, or the catalog for an empty sourceID.
func (f *QuizFlow) BeginLoad(sourceID string) (LoadTicket, QuizView) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.session = nil
	f.config = entities.QuizConfig{}
	ticket := f.loader.Begin(sourceID)
	return ticket, f.view()
}

// CompleteLoad fetches the set for ticket and applies it unless a newer
// BeginLoad superseded it. It reports whether the result was applied.
func (f *QuizFlow) CompleteLoad(ctx context.Context, ticket LoadTicket) (QuizView, bool) {
	if ticket.SourceID == "" {
		return f.View(), true
	}

	questions, err := f.loader.Fetch(ctx, ticket)

	f.mu.Lock()
	defer f.mu.Unlock()

	applied := f.loader.Complete(ticket, questions, err)
	f.syncConfig()
	return f.view(), applied
}

// Configure mutates the quiz configuration while the configuration screen is shown.
func (f *QuizFlow) Configure(mutate func(*entities.QuizConfig)) (QuizView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.syncConfig()
	if f.loader.Snapshot().State != LoadReady || f.session != nil {
		return f.view(), ErrNotConfigurable
	}

	mutate(&f.config)
	return f.view(), nil
}

// Start finalizes the configured selection and starts a session.
func (f *QuizFlow) Start() (QuizView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.syncConfig()
	snap := f.loader.Snapshot()
	if snap.State != LoadReady {
		return f.view(), ErrQuizNotReady
	}
	if f.session != nil {
		return f.view(), ErrNotConfigurable
	}

	session := NewSession(f.finalize(snap.Questions, f.config))
	if err := session.Start(); err != nil {
		return f.view(), err
	}

	f.session = session
	return f.view(), nil
}

// SelectOption answers the current question of the session identified by sessionID.
func (f *QuizFlow) SelectOption(sessionID, optionID string) (QuizView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, err := f.activeSession(sessionID)
	if err != nil {
		return f.view(), err
	}

	if _, err := s.SelectOption(optionID); err != nil {
		return f.view(), err
	}
	return f.view(), nil
}

// Advance moves to the next question or to the summary.
func (f *QuizFlow) Advance(sessionID string) (QuizView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, err := f.activeSession(sessionID)
	if err != nil {
		return f.view(), err
	}

	if err := s.Advance(); err != nil {
		return f.view(), err
	}
	return f.view(), nil
}

// RestartSameConfiguration re-finalizes the selection from the already loaded
// set, reshuffling where configured, and starts over.
func (f *QuizFlow) RestartSameConfiguration(sessionID string) (QuizView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, err := f.activeSession(sessionID)
	if err != nil {
		return f.view(), err
	}

	snap := f.loader.Snapshot()
	if snap.State != LoadReady {
		return f.view(), ErrQuizNotReady
	}

	if err := s.Restart(f.finalize(snap.Questions, f.config)); err != nil {
		return f.view(), err
	}
	return f.view(), nil
}

// ResetToConfiguration discards the session and keeps the loaded set and configuration.
func (f *QuizFlow) ResetToConfiguration() QuizView {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.session = nil
	return f.view()
}

// ResetToQuizSelection discards the session, the configuration and the loaded set.
func (f *QuizFlow) ResetToQuizSelection() QuizView {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.session = nil
	f.config = entities.QuizConfig{}
	f.loader.Reset()
	f.configGen = f.loader.Snapshot().Generation
	return f.view()
}

// View returns the current snapshot.
func (f *QuizFlow) View() QuizView {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.syncConfig()
	return f.view()
}

func (f *QuizFlow) activeSession(sessionID string) (*Session, error) {
	if f.session == nil {
		return nil, ErrNoSession
	}
	if f.session.ID() != sessionID {
		return nil, ErrStaleSession
	}
	return f.session, nil
}

// syncConfig derives default configuration once per newly ready set.
func (f *QuizFlow) syncConfig() {
	snap := f.loader.Snapshot()
	if snap.State != LoadReady || f.configGen == snap.Generation {
		return
	}
	f.config = entities.DefaultQuizConfig(len(snap.Questions))
	f.configGen = snap.Generation
}

func (f *QuizFlow) view() QuizView {
	snap := f.loader.Snapshot()
	v := QuizView{
		SourceID: snap.SourceID,
		Config:   f.config,
	}

	switch snap.State {
	case LoadIdle:
		v.Screen = ScreenCatalog
		return v
	case LoadLoading:
		v.Screen = ScreenLoading
		return v
	case LoadFailed:
		v.Screen = ScreenLoadError
		v.LoadError = snap.Error
		return v
	}

	if f.session == nil {
		v.Screen = ScreenConfig
		return v
	}

	s := f.session
	v.SessionID = s.ID()
	v.Index = s.Index()
	v.Total = s.Total()
	v.Revealed = s.Revealed()
	v.SelectedOptionID = s.SelectedOptionID()
	v.Answered, v.Progress = s.Progress()

	if s.Status() == SessionFinished {
		v.Screen = ScreenSummary
		if summary, err := s.Summary(); err == nil {
			v.Summary = &summary
		}
		return v
	}

	v.Screen = ScreenQuestion
	v.Question, _ = s.Current()
	return v
}
