package services

import (
	"math/rand/v2"
	"sync"

	"triviaapi/models"
)

// QuizPicker draws the next quiz question. The candidate order is shuffled
// once and the first question not already shown wins, which is a uniform
// pick among the unseen questions.
type QuizPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewQuizPicker(rng *rand.Rand) *QuizPicker {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &QuizPicker{rng: rng}
}

// Next reports false when every candidate is in previous.
func (p *QuizPicker) Next(candidates []models.Question, previous []int) (models.Question, bool) {
	shuffled := make([]models.Question, len(candidates))
	copy(shuffled, candidates)

	p.mu.Lock()
	p.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	p.mu.Unlock()

	return FirstUnseen(shuffled, previous)
}

func FirstUnseen(ordered []models.Question, previous []int) (models.Question, bool) {
	seen := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}
	for _, q := range ordered {
		if _, ok := seen[q.ID]; !ok {
			return q, true
		}
	}
	return models.Question{}, false
}
