package service

import (
	"errors"
	"math"

	"github.com/google/uuid"

	"github.com/aliskhannn/video-quiz-bot/internal/domain/entities"
)

var (
	ErrEmptyQuiz       = errors.New("quiz has no questions")
	ErrNotInProgress   = errors.New("quiz session is not in progress")
	ErrAlreadyRevealed = errors.New("answer already revealed")
	ErrNotRevealed     = errors.New("answer not revealed yet")
	ErrUnknownOption   = errors.New("unknown option")
	ErrNotFinished     = errors.New("quiz session is not finished")
)

// SessionStatus is the coarse state of a quiz session.
type SessionStatus int

const (
	SessionNotStarted SessionStatus = iota
	SessionInProgress
	SessionFinished
)

// Session administers a finalized list of questions one at a time.
type Session struct {
	id               uuid.UUID
	questions        []entities.Question
	status           SessionStatus
	index            int
	answers          []entities.AnsweredRecord
	selectedOptionID string
	revealed         bool
}

// NewSession creates a session that has not started yet.
func NewSession(questions []entities.Question) *Session {
	return &Session{
		id:        uuid.New(),
		questions: questions,
	}
}

// Start moves the session to the first unrevealed question.
func (s *Session) Start() error {
	if len(s.questions) == 0 {
		return ErrEmptyQuiz
	}
	if s.status != SessionNotStarted {
		return ErrNotInProgress
	}

	s.status = SessionInProgress
	s.index = 0
	s.answers = make([]entities.AnsweredRecord, 0, len(s.questions))
	s.selectedOptionID = ""
	s.revealed = false
	return nil
}

// Restart replaces the questions and starts over with a fresh id and no answers.
func (s *Session) Restart(questions []entities.Question) error {
	if len(questions) == 0 {
		return ErrEmptyQuiz
	}

	s.id = uuid.New()
	s.questions = questions
	s.status = SessionNotStarted
	return s.Start()
}

// SelectOption records the answer for the current question and reveals it.
// A second call for the same question has no effect.
func (s *Session) SelectOption(optionID string) (entities.AnsweredRecord, error) {
	if s.status != SessionInProgress {
		return entities.AnsweredRecord{}, ErrNotInProgress
	}
	if s.revealed {
		return entities.AnsweredRecord{}, ErrAlreadyRevealed
	}

	q := &s.questions[s.index]
	if _, ok := q.Option(optionID); !ok {
		return entities.AnsweredRecord{}, ErrUnknownOption
	}

	record := entities.NewAnsweredRecord(q, optionID)
	s.selectedOptionID = optionID
	s.revealed = true
	s.answers = append(s.answers, record)

	return record, nil
}

// Advance moves past a revealed question. After the last one the session is finished.
func (s *Session) Advance() error {
	if s.status != SessionInProgress {
		return ErrNotInProgress
	}
	if !s.revealed {
		return ErrNotRevealed
	}

	s.selectedOptionID = ""
	s.revealed = false
	s.index++
	if s.index == len(s.questions) {
		s.status = SessionFinished
	}

	return nil
}

func (s *Session) ID() string            { return s.id.String() }
func (s *Session) Status() SessionStatus { return s.status }
func (s *Session) Index() int            { return s.index }
func (s *Session) Total() int            { return len(s.questions) }
func (s *Session) Revealed() bool        { return s.revealed }
func (s *Session) SelectedOptionID() string {
	return s.selectedOptionID
}

// Current returns the question at the current index.
func (s *Session) Current() (entities.Question, bool) {
	if s.status != SessionInProgress || s.index >= len(s.questions) {
		return entities.Question{}, false
	}
	return s.questions[s.index], true
}

// Answers returns a copy of the answers in the order they were given.
func (s *Session) Answers() []entities.AnsweredRecord {
	out := make([]entities.AnsweredRecord, len(s.answers))
	copy(out, s.answers)
	return out
}

// Done reports whether every question has an answer.
func (s *Session) Done() bool {
	return len(s.questions) > 0 && len(s.answers) == len(s.questions)
}

// Progress returns the number of answered-or-revealed questions and its share of the total.
func (s *Session) Progress() (int, float64) {
	total := len(s.questions)
	if total == 0 {
		return 0, 0
	}

	done := s.index
	if s.revealed {
		done++
	}
	return done, float64(done) / float64(total)
}

// SummaryItem joins a question with the answer given to it.
type SummaryItem struct {
	Question  entities.Question
	Answer    *entities.AnsweredRecord
	Chosen    *entities.Option
	Correct   entities.Option
	IsCorrect bool
}

// Summary is the scored result of a session.
type Summary struct {
	Correct    int
	Total      int
	Percentage int
	Items      []SummaryItem
}

// Summary scores the session. It is available once every question is answered.
func (s *Session) Summary() (Summary, error) {
	if !s.Done() {
		return Summary{}, ErrNotFinished
	}

	byQuestion := make(map[entities.QuestionID]entities.AnsweredRecord, len(s.answers))
	correct := 0
	for _, a := range s.answers {
		byQuestion[a.QuestionID] = a
		if a.IsCorrect {
			correct++
		}
	}

	items := make([]SummaryItem, 0, len(s.questions))
	for _, q := range s.questions {
		item := SummaryItem{
			Question: q,
			Correct:  q.CorrectOption(),
		}
		if a, ok := byQuestion[q.ID]; ok {
			item.Answer = &a
			item.IsCorrect = a.IsCorrect
			if opt, ok := q.Option(a.ChosenOptionID); ok {
				item.Chosen = &opt
			}
		}
		items = append(items, item)
	}

	total := len(s.questions)
	return Summary{
		Correct:    correct,
		Total:      total,
		Percentage: Percentage(correct, total),
		Items:      items,
	}, nil
}

// Percentage returns round(100 * correct / total), or 0 for an empty total.
func Percentage(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}
