package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"triviaapi/models"
	"triviaapi/services"
	"triviaapi/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// Store is the data access the handlers depend on; *db.Store implements it.
type Store interface {
	Ping(ctx context.Context) error
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id int) (*models.Category, error)
	ListQuestions(ctx context.Context) ([]models.Question, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int) ([]models.Question, error)
	SearchQuestions(ctx context.Context, term string) ([]models.Question, error)
	QuizCandidates(ctx context.Context, categoryID int) ([]models.Question, error)
	CountQuestions(ctx context.Context) (int, error)
	GetQuestion(ctx context.Context, id int) (*models.Question, error)
	CreateQuestion(ctx context.Context, req models.QuestionRequest) (int, error)
	DeleteQuestion(ctx context.Context, id int) error
}

type Handler struct {
	store    Store
	picker   *services.QuizPicker
	validate *validator.Validate
	logger   *zap.Logger
}

func NewHandler(store Store, picker *services.QuizPicker, logger *zap.Logger) *Handler {
	if picker == nil {
		picker = services.NewQuizPicker(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		store:    store,
		picker:   picker,
		validate: validator.New(),
		logger:   logger,
	}
}

// Routes registers the trivia endpoints. Path ids only match digits, so
// /questions/abc falls through to the not-found handler.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/healthz", h.Healthz)
	r.Get("/readyz", h.Readyz)

	r.Get("/categories", h.GetCategories)
	r.Get("/categories/{id:[0-9]+}/questions", h.GetCategoryQuestions)

	r.Get("/questions", h.GetQuestions)
	r.Post("/questions", h.CreateQuestion)
	r.Post("/questions/search", h.SearchQuestions)
	r.Delete("/questions/{id:[0-9]+}", h.DeleteQuestion)

	r.Post("/quizzes", h.PlayQuiz)
}

// decodeJSON decodes the request body into a pointer-to-pointer so a
// missing body, invalid JSON, trailing data and a literal null all report
// ok=false.
func decodeJSON[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	var body *T
	if err := dec.Decode(&body); err != nil {
		return nil, false
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, false
	}
	return body, body != nil
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, status int, msg string, err error) {
	h.logger.Warn(msg,
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	)
	utils.SendError(w, status)
}
