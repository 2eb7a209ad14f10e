package handlers_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"triviaapi/db"
	"triviaapi/models"
)

// memStore is an in-memory Store seeded like a fresh trivia database.
type memStore struct {
	mu         sync.Mutex
	categories []models.Category
	questions  map[int]models.Question
	nextID     int

	// failures injected per operation name
	fail map[string]error
}

func newMemStore() *memStore {
	s := &memStore{
		categories: []models.Category{
			{ID: 1, Type: "Science"},
			{ID: 2, Type: "Art"},
			{ID: 3, Type: "Geography"},
			{ID: 4, Type: "History"},
			{ID: 5, Type: "Entertainment"},
			{ID: 6, Type: "Sports"},
			{ID: 7, Type: "Mythology"},
		},
		questions: map[int]models.Question{},
		nextID:    1,
		fail:      map[string]error{},
	}
	seed := []models.Question{
		{Question: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", Category: 5, Difficulty: 4},
		{Question: "What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", Answer: "Tom Cruise", Category: 5, Difficulty: 4},
		{Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: 4, Difficulty: 2},
		{Question: "What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", Answer: "Edward Scissorhands", Category: 5, Difficulty: 3},
		{Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: 4, Difficulty: 1},
		{Question: "Which is the only team to play in every soccer World Cup tournament?", Answer: "Brazil", Category: 6, Difficulty: 3},
		{Question: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", Category: 6, Difficulty: 4},
		{Question: "Who invented Peanut Butter?", Answer: "George Washington Carver", Category: 4, Difficulty: 2},
		{Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: 3, Difficulty: 2},
		{Question: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", Category: 3, Difficulty: 3},
		{Question: "The Taj Mahal is located in which Indian city?", Answer: "Agra", Category: 3, Difficulty: 2},
		{Question: "Which Dutch graphic artist, initials M C, was a creator of optical illusions?", Answer: "Escher", Category: 2, Difficulty: 1},
		{Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: 2, Difficulty: 3},
		{Question: "How many paintings did Van Gogh sell in his lifetime?", Answer: "One", Category: 2, Difficulty: 4},
		{Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: 1, Difficulty: 4},
		{Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: 1, Difficulty: 3},
		{Question: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", Category: 1, Difficulty: 4},
		{Question: "Which dung beetle was worshipped by the ancient Egyptians?", Answer: "Scarab", Category: 4, Difficulty: 4},
		{Question: "Which American artist was a pioneer of Abstract Expressionism?", Answer: "Jackson Pollock", Category: 2, Difficulty: 2},
	}
	for _, q := range seed {
		q.ID = s.nextID
		s.questions[q.ID] = q
		s.nextID++
	}
	return s
}

func (s *memStore) err(op string) error {
	if err, ok := s.fail[op]; ok {
		return &db.OpError{Op: op, Err: err}
	}
	return nil
}

func (s *memStore) filter(keep func(models.Question) bool) []models.Question {
	out := []models.Question{}
	for _, q := range s.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *memStore) Ping(ctx context.Context) error {
	return s.err("ping")
}

func (s *memStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.err("list categories"); err != nil {
		return nil, err
	}
	return append([]models.Category(nil), s.categories...), nil
}

func (s *memStore) GetCategory(ctx context.Context, id int) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, db.ErrNotFound
}

func (s *memStore) ListQuestions(ctx context.Context) ([]models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.err("list questions"); err != nil {
		return nil, err
	}
	return s.filter(func(models.Question) bool { return true }), nil
}

func (s *memStore) ListQuestionsByCategory(ctx context.Context, categoryID int) ([]models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(func(q models.Question) bool { return q.Category == categoryID }), nil
}

func (s *memStore) SearchQuestions(ctx context.Context, term string) ([]models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	term = strings.ToLower(term)
	return s.filter(func(q models.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), term)
	}), nil
}

func (s *memStore) QuizCandidates(ctx context.Context, categoryID int) ([]models.Question, error) {
	if categoryID == 0 {
		return s.ListQuestions(ctx)
	}
	return s.ListQuestionsByCategory(ctx, categoryID)
}

func (s *memStore) CountQuestions(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.questions), nil
}

func (s *memStore) GetQuestion(ctx context.Context, id int) (*models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.err("get question"); err != nil {
		return nil, err
	}
	q, ok := s.questions[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &q, nil
}

func (s *memStore) CreateQuestion(ctx context.Context, req models.QuestionRequest) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.err("create question"); err != nil {
		return 0, err
	}
	q := models.Question{ID: s.nextID}
	if req.Question != nil {
		q.Question = *req.Question
	}
	if req.Answer != nil {
		q.Answer = *req.Answer
	}
	if req.Category != nil {
		q.Category = int(*req.Category)
	}
	if req.Difficulty != nil {
		q.Difficulty = int(*req.Difficulty)
	}
	s.questions[q.ID] = q
	s.nextID++
	return q.ID, nil
}

func (s *memStore) DeleteQuestion(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.err("delete question"); err != nil {
		return err
	}
	if _, ok := s.questions[id]; !ok {
		return db.ErrNotFound
	}
	delete(s.questions, id)
	return nil
}
