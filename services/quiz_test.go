package services

import (
	"math/rand/v2"
	"testing"

	"triviaapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questions(ids ...int) []models.Question {
	out := make([]models.Question, len(ids))
	for i, id := range ids {
		out[i] = models.Question{ID: id, Question: "q", Answer: "a", Category: 1, Difficulty: 1}
	}
	return out
}

func TestFirstUnseen(t *testing.T) {
	q, ok := FirstUnseen(questions(7, 3, 9), []int{7})
	require.True(t, ok)
	assert.Equal(t, 3, q.ID)

	_, ok = FirstUnseen(questions(7, 3), []int{3, 7})
	assert.False(t, ok)

	_, ok = FirstUnseen(nil, nil)
	assert.False(t, ok)
}

func TestQuizPicker_NeverRepeats(t *testing.T) {
	picker := NewQuizPicker(rand.New(rand.NewPCG(1, 2)))
	candidates := questions(1, 2, 3, 4, 5, 6)

	var previous []int
	for range candidates {
		q, ok := picker.Next(candidates, previous)
		require.True(t, ok)
		assert.NotContains(t, previous, q.ID)
		previous = append(previous, q.ID)
	}

	_, ok := picker.Next(candidates, previous)
	assert.False(t, ok)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6}, previous)
}

func TestQuizPicker_DoesNotReorderCandidates(t *testing.T) {
	picker := NewQuizPicker(rand.New(rand.NewPCG(3, 4)))
	candidates := questions(1, 2, 3, 4, 5)

	picker.Next(candidates, nil)

	assert.Equal(t, questions(1, 2, 3, 4, 5), candidates)
}

func TestQuizPicker_CoversAllUnseen(t *testing.T) {
	picker := NewQuizPicker(rand.New(rand.NewPCG(5, 6)))
	candidates := questions(10, 11, 12, 13)

	drawn := map[int]int{}
	for range 400 {
		q, ok := picker.Next(candidates, []int{10})
		require.True(t, ok)
		drawn[q.ID]++
	}

	assert.Zero(t, drawn[10])
	for _, id := range []int{11, 12, 13} {
		assert.Greater(t, drawn[id], 50, "question %d drawn too rarely", id)
	}
}
