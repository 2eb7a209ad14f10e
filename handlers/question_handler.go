package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"triviaapi/db"
	"triviaapi/models"
	"triviaapi/utils"

	"github.com/go-chi/chi/v5"
)

// GET /questions?page=N
func (h *Handler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.store.ListQuestions(r.Context())
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "list questions", err)
		return
	}
	current := utils.Paginate(questions, utils.PageFromRequest(r))

	categories, err := h.store.ListCategories(r.Context())
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "list categories", err)
		return
	}

	if len(current) == 0 {
		utils.SendError(w, http.StatusNotFound)
		return
	}

	utils.SendJSON(w, http.StatusOK, models.QuestionsResponse{
		Success:        true,
		Questions:      current,
		TotalQuestions: len(current),
		Categories:     models.CategoryMap(categories),
	})
}

// DELETE /questions/{id}
//
// A missing question is 404; every storage failure is reported as 422 and
// the cause is only logged.
func (h *Handler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.SendError(w, http.StatusNotFound)
		return
	}

	if _, err := h.store.GetQuestion(r.Context(), questionID); err != nil {
		h.deleteFailed(w, r, err)
		return
	}
	if err := h.store.DeleteQuestion(r.Context(), questionID); err != nil {
		h.deleteFailed(w, r, err)
		return
	}

	remaining, err := h.store.ListQuestions(r.Context())
	if err != nil {
		h.deleteFailed(w, r, err)
		return
	}
	current := utils.Paginate(remaining, utils.PageFromRequest(r))

	utils.SendJSON(w, http.StatusOK, models.DeleteQuestionResponse{
		Success:        true,
		Deleted:        questionID,
		Questions:      current,
		TotalQuestions: len(current),
	})
}

func (h *Handler) deleteFailed(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, db.ErrNotFound) {
		utils.SendError(w, http.StatusNotFound)
		return
	}
	h.fail(w, r, http.StatusUnprocessableEntity, "delete question", err)
}

// POST /questions
//
// Fields are not validated; absent ones are stored as NULL.
func (h *Handler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[models.QuestionRequest](w, r)
	if !ok {
		utils.SendError(w, http.StatusNotFound)
		return
	}

	id, err := h.store.CreateQuestion(r.Context(), *req)
	if err != nil {
		h.fail(w, r, http.StatusUnprocessableEntity, "create question", err)
		return
	}

	questions, err := h.store.ListQuestions(r.Context())
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "list questions", err)
		return
	}

	utils.SendJSON(w, http.StatusOK, models.CreateQuestionResponse{
		Success:        true,
		Created:        id,
		Questions:      utils.Paginate(questions, utils.PageFromRequest(r)),
		TotalQuestions: len(questions),
	})
}

// POST /questions/search
func (h *Handler) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[models.SearchRequest](w, r)
	if !ok {
		utils.SendError(w, http.StatusNotFound)
		return
	}

	matches, err := h.store.SearchQuestions(r.Context(), req.SearchTerm)
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "search questions", err)
		return
	}
	if len(matches) == 0 {
		utils.SendError(w, http.StatusNotFound)
		return
	}

	total, err := h.store.CountQuestions(r.Context())
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "count questions", err)
		return
	}

	utils.SendJSON(w, http.StatusOK, models.SearchResponse{
		Success:        true,
		Questions:      utils.Paginate(matches, utils.PageFromRequest(r)),
		TotalQuestions: total,
	})
}
