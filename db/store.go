package db

import (
	"context"
	"errors"
	"strings"

	"triviaapi/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of *pgxpool.Pool the store needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

type Store struct {
	db DBTX
}

func NewStore(db DBTX) *Store {
	return &Store{db: db}
}

const questionColumns = `id, COALESCE(question, ''), COALESCE(answer, ''),
	COALESCE(category, 0), COALESCE(difficulty, 0)`

func (s *Store) Ping(ctx context.Context) error {
	return opErr("ping", s.db.Ping(ctx))
}

func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.Query(ctx, `SELECT id, COALESCE(type, '') FROM categories ORDER BY id`)
	if err != nil {
		return nil, opErr("list categories", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, opErr("scan category", err)
		}
		categories = append(categories, c)
	}
	return categories, opErr("list categories", rows.Err())
}

func (s *Store) GetCategory(ctx context.Context, id int) (*models.Category, error) {
	var c models.Category
	err := s.db.QueryRow(ctx, `SELECT id, COALESCE(type, '') FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Type)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, opErr("get category", err)
	}
	return &c, nil
}

func (s *Store) ListQuestions(ctx context.Context) ([]models.Question, error) {
	return s.queryQuestions(ctx, "list questions",
		`SELECT `+questionColumns+` FROM questions ORDER BY id`)
}

func (s *Store) ListQuestionsByCategory(ctx context.Context, categoryID int) ([]models.Question, error) {
	return s.queryQuestions(ctx, "list questions by category",
		`SELECT `+questionColumns+` FROM questions WHERE category = $1 ORDER BY id`, categoryID)
}

// SearchQuestions matches term as a literal, case-insensitive substring of
// the question text.
func (s *Store) SearchQuestions(ctx context.Context, term string) ([]models.Question, error) {
	return s.queryQuestions(ctx, "search questions",
		`SELECT `+questionColumns+` FROM questions WHERE question ILIKE $1 ORDER BY id`,
		"%"+escapeLike(term)+"%")
}

// QuizCandidates returns every question when categoryID is 0, otherwise the
// questions of that category.
func (s *Store) QuizCandidates(ctx context.Context, categoryID int) ([]models.Question, error) {
	if categoryID == 0 {
		return s.ListQuestions(ctx)
	}
	return s.ListQuestionsByCategory(ctx, categoryID)
}

func (s *Store) CountQuestions(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM questions`).Scan(&n); err != nil {
		return 0, opErr("count questions", err)
	}
	return n, nil
}

func (s *Store) GetQuestion(ctx context.Context, id int) (*models.Question, error) {
	var q models.Question
	err := s.db.QueryRow(ctx, `SELECT `+questionColumns+` FROM questions WHERE id = $1`, id).
		Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, opErr("get question", err)
	}
	return &q, nil
}

func (s *Store) CreateQuestion(ctx context.Context, req models.QuestionRequest) (int, error) {
	var id int
	err := s.db.QueryRow(ctx,
		`INSERT INTO questions (question, answer, category, difficulty)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		req.Question, req.Answer, req.Category.IntPtr(), req.Difficulty.IntPtr()).Scan(&id)
	if err != nil {
		return 0, opErr("create question", err)
	}
	return id, nil
}

func (s *Store) DeleteQuestion(ctx context.Context, id int) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return opErr("delete question", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) queryQuestions(ctx context.Context, op, sql string, args ...any) ([]models.Question, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, opErr(op, err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, opErr(op, err)
		}
		questions = append(questions, q)
	}
	return questions, opErr(op, rows.Err())
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
