package service

import (
	"math/rand/v2"
	"slices"
	"sort"
	"testing"

	"github.com/aliskhannn/video-quiz-bot/internal/domain/entities"
)

func makeQuestions(n int) []entities.Question {
	qs := make([]entities.Question, n)
	for i := range qs {
		id := entities.QuestionID(string(rune('a' + i)))
		qs[i] = entities.Question{
			ID:       id,
			Question: "Question " + string(id),
			Options: []entities.Option{
				{ID: "1", Text: "one"},
				{ID: "2", Text: "two"},
				{ID: "3", Text: "three"},
				{ID: "4", Text: "four"},
			},
			CorrectOptionID: "2",
			Reference: entities.Reference{
				Video: &entities.VideoReference{VideoName: "v.mp4", Time: "00:01", Quote: "q"},
			},
		}
	}
	return qs
}

func TestShuffleIsPermutation(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	orig := slices.Clone(in)

	for range 50 {
		out := ShuffleWith(r, in)
		if !slices.Equal(in, orig) {
			t.Fatalf("input mutated: %v", in)
		}

		sorted := slices.Clone(out)
		sort.Ints(sorted)
		if !slices.Equal(sorted, orig) {
			t.Fatalf("not a permutation: %v", out)
		}
	}
}

func TestShuffleEdgeCases(t *testing.T) {
	if out := Shuffle([]string{}); len(out) != 0 {
		t.Errorf("empty: got %v", out)
	}
	if out := Shuffle[string](nil); len(out) != 0 {
		t.Errorf("nil: got %v", out)
	}

	in := []string{"only"}
	out := Shuffle(in)
	if !slices.Equal(out, in) {
		t.Errorf("singleton: got %v", out)
	}
	out[0] = "changed"
	if in[0] != "only" {
		t.Errorf("singleton result aliases input")
	}
}

func TestShuffleVisitsEveryOrder(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	seen := make(map[[3]int]bool)

	for range 500 {
		out := ShuffleWith(r, []int{1, 2, 3})
		seen[[3]int{out[0], out[1], out[2]}] = true
	}

	if len(seen) != 6 {
		t.Fatalf("saw %d of 6 orders", len(seen))
	}
}

func TestFisherYatesDrawsFromLastIndexDown(t *testing.T) {
	var bounds []int
	intN := func(n int) int {
		bounds = append(bounds, n)
		return 0
	}

	out := shuffle([]int{1, 2, 3, 4}, intN)

	if !slices.Equal(bounds, []int{4, 3, 2}) {
		t.Errorf("bounds = %v, want [4 3 2]", bounds)
	}
	// Always swapping with index 0: [1 2 3 4] -> [4 2 3 1] -> [3 2 4 1] -> [2 3 4 1]
	if !slices.Equal(out, []int{2, 3, 4, 1}) {
		t.Errorf("out = %v", out)
	}
}

func TestPrepareQuestionsDoesNotMutateInput(t *testing.T) {
	qs := makeQuestions(5)
	before := make([][]entities.Option, len(qs))
	for i, q := range qs {
		before[i] = slices.Clone(q.Options)
	}
	ids := make([]entities.QuestionID, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}

	for _, shuffleQuestions := range []bool{true, false} {
		out := PrepareQuestions(qs, shuffleQuestions)
		if len(out) != len(qs) {
			t.Fatalf("len = %d, want %d", len(out), len(qs))
		}

		for i, q := range qs {
			if q.ID != ids[i] {
				t.Fatalf("question order mutated")
			}
			if !slices.Equal(q.Options, before[i]) {
				t.Fatalf("options of %s mutated", q.ID)
			}
		}

		// Option slices must not be shared with the input.
		out[0].Options[0].Text = "mutated"
		for _, q := range qs {
			for _, o := range q.Options {
				if o.Text == "mutated" {
					t.Fatalf("option slice shared with input")
				}
			}
		}
	}
}

func TestPrepareQuestionsKeepsOrderWithoutShuffle(t *testing.T) {
	qs := makeQuestions(6)
	out := PrepareQuestions(qs, false)

	for i := range qs {
		if out[i].ID != qs[i].ID {
			t.Fatalf("order changed at %d: %s != %s", i, out[i].ID, qs[i].ID)
		}
		got := slices.Clone(out[i].Options)
		sort.Slice(got, func(a, b int) bool { return got[a].ID < got[b].ID })
		if !slices.Equal(got, qs[i].Options) {
			t.Fatalf("options of %s are not a permutation", qs[i].ID)
		}
		if out[i].CorrectOptionID != qs[i].CorrectOptionID {
			t.Fatalf("correct option changed")
		}
	}
}

func TestPrepareQuestionsShufflesOrder(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	qs := makeQuestions(8)

	changed := false
	for range 20 {
		out := prepareQuestions(qs, true, r.IntN)
		for i := range out {
			if out[i].ID != qs[i].ID {
				changed = true
			}
		}
	}
	if !changed {
		t.Fatalf("question order never changed")
	}
}

func TestFinalizeSelection(t *testing.T) {
	set := makeQuestions(10)

	tests := []struct {
		name    string
		cfg     entities.QuizConfig
		wantIDs []entities.QuestionID
	}{
		{
			name:    "whole set",
			cfg:     entities.QuizConfig{SetSize: 10, RangeStart: 1, RangeEnd: 10, Count: 10},
			wantIDs: []entities.QuestionID{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"},
		},
		{
			name:    "range with count",
			cfg:     entities.QuizConfig{SetSize: 10, RangeStart: 3, RangeEnd: 7, Count: 2},
			wantIDs: []entities.QuestionID{"c", "d"},
		},
		{
			name:    "single question",
			cfg:     entities.QuizConfig{SetSize: 10, RangeStart: 10, RangeEnd: 10, Count: 1},
			wantIDs: []entities.QuestionID{"j"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := FinalizeSelection(set, tt.cfg)
			got := make([]entities.QuestionID, len(out))
			for i, q := range out {
				got[i] = q.ID
			}
			if !slices.Equal(got, tt.wantIDs) {
				t.Fatalf("got %v, want %v", got, tt.wantIDs)
			}
		})
	}
}

func TestFinalizeSelectionShuffledStaysInRange(t *testing.T) {
	set := makeQuestions(10)
	cfg := entities.QuizConfig{SetSize: 10, RangeStart: 4, RangeEnd: 8, Count: 3, ShuffleQuestions: true}

	allowed := map[entities.QuestionID]bool{"d": true, "e": true, "f": true}
	for range 20 {
		out := FinalizeSelection(set, cfg)
		if len(out) != 3 {
			t.Fatalf("len = %d, want 3", len(out))
		}
		for _, q := range out {
			if !allowed[q.ID] {
				t.Fatalf("question %s outside the first %d of the range", q.ID, cfg.Count)
			}
		}
	}
}
