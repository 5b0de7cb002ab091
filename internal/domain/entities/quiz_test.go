package entities

import "testing"

func checkInvariant(t *testing.T, c QuizConfig) {
	t.Helper()
	if c.RangeStart < 1 || c.RangeStart > c.RangeEnd || c.RangeEnd > c.SetSize {
		t.Fatalf("range invariant broken: %+v", c)
	}
	if c.Count < 1 || c.Count > c.Span() {
		t.Fatalf("count invariant broken: %+v", c)
	}
}

func TestDefaultQuizConfig(t *testing.T) {
	c := DefaultQuizConfig(10)
	want := QuizConfig{SetSize: 10, RangeStart: 1, RangeEnd: 10, Count: 10, ShuffleQuestions: true}
	if c != want {
		t.Fatalf("got %+v, want %+v", c, want)
	}
}

func TestQuizConfigClamping(t *testing.T) {
	tests := []struct {
		name   string
		apply  func(c *QuizConfig)
		expect QuizConfig
	}{
		{
			name:   "start past end drags end",
			apply:  func(c *QuizConfig) { c.SetRangeEnd(4); c.SetRangeStart(7) },
			expect: QuizConfig{SetSize: 10, RangeStart: 7, RangeEnd: 7, Count: 1, ShuffleQuestions: true},
		},
		{
			name:   "end before start drags start",
			apply:  func(c *QuizConfig) { c.SetRangeStart(6); c.SetRangeEnd(3) },
			expect: QuizConfig{SetSize: 10, RangeStart: 3, RangeEnd: 3, Count: 1, ShuffleQuestions: true},
		},
		{
			name:   "start below one",
			apply:  func(c *QuizConfig) { c.SetRangeStart(-5) },
			expect: QuizConfig{SetSize: 10, RangeStart: 1, RangeEnd: 10, Count: 10, ShuffleQuestions: true},
		},
		{
			name:   "start above set size",
			apply:  func(c *QuizConfig) { c.SetRangeStart(99) },
			expect: QuizConfig{SetSize: 10, RangeStart: 10, RangeEnd: 10, Count: 1, ShuffleQuestions: true},
		},
		{
			name:   "end above set size",
			apply:  func(c *QuizConfig) { c.SetRangeEnd(99) },
			expect: QuizConfig{SetSize: 10, RangeStart: 1, RangeEnd: 10, Count: 10, ShuffleQuestions: true},
		},
		{
			name:   "end below one",
			apply:  func(c *QuizConfig) { c.SetRangeEnd(0) },
			expect: QuizConfig{SetSize: 10, RangeStart: 1, RangeEnd: 1, Count: 1, ShuffleQuestions: true},
		},
		{
			name:   "count clamped to span",
			apply:  func(c *QuizConfig) { c.SetRangeStart(3); c.SetRangeEnd(5); c.SetCount(50) },
			expect: QuizConfig{SetSize: 10, RangeStart: 3, RangeEnd: 5, Count: 3, ShuffleQuestions: true},
		},
		{
			name:   "count at least one",
			apply:  func(c *QuizConfig) { c.SetCount(0) },
			expect: QuizConfig{SetSize: 10, RangeStart: 1, RangeEnd: 10, Count: 1, ShuffleQuestions: true},
		},
		{
			name:   "narrowing the range shrinks count",
			apply:  func(c *QuizConfig) { c.SetRangeEnd(4) },
			expect: QuizConfig{SetSize: 10, RangeStart: 1, RangeEnd: 4, Count: 4, ShuffleQuestions: true},
		},
		{
			name:   "widening the range keeps count",
			apply:  func(c *QuizConfig) { c.SetRangeEnd(4); c.SetRangeEnd(8) },
			expect: QuizConfig{SetSize: 10, RangeStart: 1, RangeEnd: 8, Count: 4, ShuffleQuestions: true},
		},
		{
			name:   "shuffle toggle leaves range",
			apply:  func(c *QuizConfig) { c.SetRangeStart(2); c.SetShuffleQuestions(false) },
			expect: QuizConfig{SetSize: 10, RangeStart: 2, RangeEnd: 10, Count: 9, ShuffleQuestions: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultQuizConfig(10)
			tt.apply(&c)
			if c != tt.expect {
				t.Fatalf("got %+v, want %+v", c, tt.expect)
			}
			checkInvariant(t, c)
		})
	}
}

func TestQuizConfigInvariantUnderArbitraryInput(t *testing.T) {
	inputs := []int{-100, -1, 0, 1, 2, 5, 9, 10, 11, 1000}

	for _, a := range inputs {
		for _, b := range inputs {
			c := DefaultQuizConfig(10)
			c.SetRangeStart(a)
			c.SetRangeEnd(b)
			c.SetCount(a + b)
			checkInvariant(t, c)
		}
	}
}

func TestNewAnsweredRecord(t *testing.T) {
	q := &Question{ID: "1", CorrectOptionID: "b"}

	if r := NewAnsweredRecord(q, "b"); !r.IsCorrect || r.ChosenOptionID != "b" || r.QuestionID != "1" {
		t.Errorf("correct answer: %+v", r)
	}
	if r := NewAnsweredRecord(q, "a"); r.IsCorrect {
		t.Errorf("wrong answer marked correct: %+v", r)
	}
}
