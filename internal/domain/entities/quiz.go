package entities

// QuizConfig describes which part of a question set a quiz runs on.
// Range bounds are 1-based and inclusive.
type QuizConfig struct {
	SetSize          int  // number of questions in the loaded set
	RangeStart       int  // first question position, 1-based
	RangeEnd         int  // last question position, inclusive
	Count            int  // number of questions taken from the range
	ShuffleQuestions bool // shuffle question order; options are always shuffled
}

// DefaultQuizConfig covers the whole set with shuffling enabled.
func DefaultQuizConfig(setSize int) QuizConfig {
	return QuizConfig{
		SetSize:          setSize,
		RangeStart:       1,
		RangeEnd:         setSize,
		Count:            setSize,
		ShuffleQuestions: true,
	}
}

// Span returns the number of questions inside the selected range.
func (c *QuizConfig) Span() int {
	return c.RangeEnd - c.RangeStart + 1
}

// SetRangeStart moves the start of the range, dragging the end along if needed.
func (c *QuizConfig) SetRangeStart(v int) {
	start := max(1, v)
	start = min(start, max(1, c.SetSize))

	c.RangeStart = start
	if c.RangeStart > c.RangeEnd {
		c.RangeEnd = c.RangeStart
	}
	c.clampCountToSpan()
}

// SetRangeEnd moves the end of the range, dragging the start along if needed.
func (c *QuizConfig) SetRangeEnd(v int) {
	end := min(c.SetSize, v)
	end = max(1, end)

	c.RangeEnd = end
	if c.RangeEnd < c.RangeStart {
		c.RangeStart = c.RangeEnd
	}
	c.clampCountToSpan()
}

// SetCount sets the number of questions, clamped to [1, span].
func (c *QuizConfig) SetCount(v int) {
	c.Count = min(max(1, v), c.Span())
}

// SetShuffleQuestions toggles question order shuffling. Range and count are untouched.
func (c *QuizConfig) SetShuffleQuestions(v bool) {
	c.ShuffleQuestions = v
}

func (c *QuizConfig) clampCountToSpan() {
	if c.Count > c.Span() {
		c.Count = c.Span()
	}
}

// AnsweredRecord is the outcome of answering one question.
type AnsweredRecord struct {
	QuestionID     QuestionID
	ChosenOptionID string
	IsCorrect      bool
}

// NewAnsweredRecord compares the chosen option with the question's correct one.
func NewAnsweredRecord(q *Question, chosenOptionID string) AnsweredRecord {
	return AnsweredRecord{
		QuestionID:     q.ID,
		ChosenOptionID: chosenOptionID,
		IsCorrect:      chosenOptionID == q.CorrectOptionID,
	}
}
