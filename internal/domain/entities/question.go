package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrTooFewOptions       = errors.New("question must have at least two options")
	ErrDuplicateOptionID   = errors.New("duplicate option id")
	ErrUnknownCorrectID    = errors.New("correct option id does not match any option")
	ErrAmbiguousReference  = errors.New("reference must be either a video or a document reference")
	ErrInvalidQuestionID   = errors.New("question id must be a number or a string")
	ErrDuplicateQuestionID = errors.New("duplicate question id")
)

// QuestionID identifies a question within its set. Sources use either JSON
// numbers or strings, both are kept in their textual form.
type QuestionID string

func (id *QuestionID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrInvalidQuestionID
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = QuestionID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return ErrInvalidQuestionID
	}
	*id = QuestionID(n.String())
	return nil
}

// Option is a single answer choice.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// VideoReference points at a moment in a source video.
type VideoReference struct {
	VideoName string `json:"videoName"`
	Time      string `json:"time"`
	Quote     string `json:"quote"`
}

// DocumentReference points at a source document.
type DocumentReference struct {
	SourcePDF string `json:"sourcePDF"`
	PageHint  string `json:"pageHint,omitempty"`
	Note      string `json:"note,omitempty"`
}

// Reference holds exactly one of Video or Document.
type Reference struct {
	Video    *VideoReference
	Document *DocumentReference
}

// IsVideo reports whether the reference is the video variant.
func (r Reference) IsVideo() bool {
	return r.Video != nil
}

func (r *Reference) UnmarshalJSON(data []byte) error {
	var raw struct {
		VideoName *string `json:"videoName"`
		Time      string  `json:"time"`
		Quote     string  `json:"quote"`
		SourcePDF *string `json:"sourcePDF"`
		PageHint  string  `json:"pageHint"`
		Note      string  `json:"note"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	hasVideo := raw.VideoName != nil && *raw.VideoName != ""
	hasDoc := raw.SourcePDF != nil && *raw.SourcePDF != ""

	switch {
	case hasVideo && !hasDoc:
		*r = Reference{Video: &VideoReference{
			VideoName: *raw.VideoName,
			Time:      raw.Time,
			Quote:     raw.Quote,
		}}
	case hasDoc && !hasVideo:
		*r = Reference{Document: &DocumentReference{
			SourcePDF: *raw.SourcePDF,
			PageHint:  raw.PageHint,
			Note:      raw.Note,
		}}
	default:
		return ErrAmbiguousReference
	}

	return nil
}

// Question is a multiple-choice question as delivered by a question-set source.
type Question struct {
	ID              QuestionID `json:"id"`
	Question        string     `json:"question"`
	Options         []Option   `json:"options"`
	CorrectOptionID string     `json:"correctOptionId"`
	Reference       Reference  `json:"reference"`
}

// Validate checks the structural constraints of a single question.
func (q *Question) Validate() error {
	if len(q.Options) < 2 {
		return fmt.Errorf("question %s: %w", q.ID, ErrTooFewOptions)
	}

	seen := make(map[string]struct{}, len(q.Options))
	for _, opt := range q.Options {
		if _, ok := seen[opt.ID]; ok {
			return fmt.Errorf("question %s: option %q: %w", q.ID, opt.ID, ErrDuplicateOptionID)
		}
		seen[opt.ID] = struct{}{}
	}

	if _, ok := seen[q.CorrectOptionID]; !ok {
		return fmt.Errorf("question %s: %w", q.ID, ErrUnknownCorrectID)
	}

	if q.Reference.Video == nil && q.Reference.Document == nil {
		return fmt.Errorf("question %s: %w", q.ID, ErrAmbiguousReference)
	}

	return nil
}

// Option returns the option with the given id.
func (q *Question) Option(id string) (Option, bool) {
	for _, opt := range q.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// CorrectOption returns the option marked as correct.
func (q *Question) CorrectOption() Option {
	opt, _ := q.Option(q.CorrectOptionID)
	return opt
}

// ValidateQuestionSet validates every question and checks id uniqueness.
func ValidateQuestionSet(questions []Question) error {
	seen := make(map[QuestionID]struct{}, len(questions))
	for i := range questions {
		if err := questions[i].Validate(); err != nil {
			return err
		}
		if _, ok := seen[questions[i].ID]; ok {
			return fmt.Errorf("question %s: %w", questions[i].ID, ErrDuplicateQuestionID)
		}
		seen[questions[i].ID] = struct{}{}
	}
	return nil
}
