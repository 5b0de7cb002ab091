package service

import (
	"context"
	"errors"

	"github.com/aliskhannn/video-quiz-bot/internal/domain/entities"
)

// LoadState is the state of a question-set load.
type LoadState int

const (
	LoadIdle LoadState = iota
	LoadLoading
	LoadReady
	LoadFailed
)

func (s LoadState) String() string {
	switch s {
	case LoadIdle:
		return "idle"
	case LoadLoading:
		return "loading"
	case LoadReady:
		return "ready"
	case LoadFailed:
		return "failed"
	default:
		return "unknown"
	}
}

const fallbackLoadError = "Error"

// QuestionSetFetcher retrieves a question set by its source id.
type QuestionSetFetcher interface {
	Fetch(ctx context.Context, sourceID string) ([]entities.Question, error)
}

// LoadTicket identifies one load request. Only the newest ticket may update state.
type LoadTicket struct {
	SourceID   string
	generation uint64
}

// LoaderSnapshot is a read-only copy of the loader state.
type LoaderSnapshot struct {
	State      LoadState
	SourceID   string
	Questions  []entities.Question
	Error      string
	Generation uint64
}

// Loader tracks loading of one question set at a time.
// It is not safe for concurrent use; the owning QuizFlow serializes access.
type Loader struct {
	fetcher    QuestionSetFetcher
	generation uint64
	state      LoadState
	sourceID   string
	questions  []entities.Question
	errMsg     string
}

// NewLoader creates an idle loader.
func NewLoader(fetcher QuestionSetFetcher) *Loader {
	return &Loader{fetcher: fetcher}
}

// Begin moves the loader to loading for sourceID. Any earlier ticket becomes stale.
// An empty sourceID resets the loader instead.
func (l *Loader) Begin(sourceID string) LoadTicket {
	l.generation++
	if sourceID == "" {
		l.clear()
		return LoadTicket{generation: l.generation}
	}

	l.state = LoadLoading
	l.sourceID = sourceID
	l.questions = nil
	l.errMsg = ""

	return LoadTicket{SourceID: sourceID, generation: l.generation}
}

// Fetch performs the request for t without touching loader state.
func (l *Loader) Fetch(ctx context.Context, t LoadTicket) ([]entities.Question, error) {
	if t.SourceID == "" {
		return nil, errors.New("empty source id")
	}
	return l.fetcher.Fetch(ctx, t.SourceID)
}

// Complete applies the outcome of t. It returns false and changes nothing when
// t is no longer the most recent request.
func (l *Loader) Complete(t LoadTicket, questions []entities.Question, err error) bool {
	if t.generation != l.generation || l.state != LoadLoading {
		return false
	}

	if err != nil {
		l.state = LoadFailed
		l.questions = nil
		l.errMsg = err.Error()
		if l.errMsg == "" {
			l.errMsg = fallbackLoadError
		}
		return true
	}

	l.state = LoadReady
	l.questions = questions
	l.errMsg = ""
	return true
}

// Reset returns the loader to idle and invalidates in-flight requests.
func (l *Loader) Reset() {
	l.generation++
	l.clear()
}

// Snapshot returns the current state.
func (l *Loader) Snapshot() LoaderSnapshot {
	return LoaderSnapshot{
		State:      l.state,
		SourceID:   l.sourceID,
		Questions:  l.questions,
		Error:      l.errMsg,
		Generation: l.generation,
	}
}

func (l *Loader) clear() {
	l.state = LoadIdle
	l.sourceID = ""
	l.questions = nil
	l.errMsg = ""
}
