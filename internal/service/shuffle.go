package service

import (
	"math/rand/v2"

	"github.com/aliskhannn/video-quiz-bot/internal/domain/entities"
)

// Shuffle returns a randomly permuted copy of s. The input is left untouched.
func Shuffle[T any](s []T) []T {
	return shuffle(s, rand.IntN)
}

// ShuffleWith is like Shuffle but draws from r.
func ShuffleWith[T any](r *rand.Rand, s []T) []T {
	return shuffle(s, r.IntN)
}

// shuffle runs Fisher-Yates from the last index down.
func shuffle[T any](s []T, intN func(int) int) []T {
	shuffled := make([]T, len(s))
	copy(shuffled, s)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := intN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}

// PrepareQuestions optionally shuffles question order and always shuffles the
// options of every question with an independent permutation.
func PrepareQuestions(questions []entities.Question, shuffleQuestions bool) []entities.Question {
	return prepareQuestions(questions, shuffleQuestions, rand.IntN)
}

func prepareQuestions(questions []entities.Question, shuffleQuestions bool, intN func(int) int) []entities.Question {
	ordered := questions
	if shuffleQuestions {
		ordered = shuffle(questions, intN)
	}

	prepared := make([]entities.Question, len(ordered))
	for i, q := range ordered {
		q.Options = shuffle(q.Options, intN)
		prepared[i] = q
	}

	return prepared
}

// FinalizeSelection cuts the configured range out of the set, keeps the first
// Count questions of it and prepares them for a session.
func FinalizeSelection(set []entities.Question, cfg entities.QuizConfig) []entities.Question {
	return finalizeSelection(set, cfg, rand.IntN)
}

func finalizeSelection(set []entities.Question, cfg entities.QuizConfig, intN func(int) int) []entities.Question {
	start := min(max(cfg.RangeStart, 1), len(set)+1) - 1
	end := min(max(cfg.RangeEnd, start), len(set))

	selected := set[start:end]
	if cfg.Count >= 0 && cfg.Count < len(selected) {
		selected = selected[:cfg.Count]
	}

	return prepareQuestions(selected, cfg.ShuffleQuestions, intN)
}
