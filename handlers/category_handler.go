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

// GET /categories
func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.ListCategories(r.Context())
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "list categories", err)
		return
	}
	if len(categories) == 0 {
		utils.SendError(w, http.StatusNotFound)
		return
	}

	utils.SendJSON(w, http.StatusOK, models.CategoriesResponse{
		Success:    true,
		Categories: models.CategoryMap(categories),
	})
}

// GET /categories/{id}/questions
//
// Unlike the other listings an empty page is a valid response here, and
// total_questions counts every question of the category.
func (h *Handler) GetCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.SendError(w, http.StatusNotFound)
		return
	}

	if _, err := h.store.GetCategory(r.Context(), categoryID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			utils.SendError(w, http.StatusNotFound)
			return
		}
		h.fail(w, r, http.StatusInternalServerError, "get category", err)
		return
	}

	questions, err := h.store.ListQuestionsByCategory(r.Context(), categoryID)
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "list questions by category", err)
		return
	}

	utils.SendJSON(w, http.StatusOK, models.CategoryQuestionsResponse{
		Success:         true,
		Questions:       utils.Paginate(questions, utils.PageFromRequest(r)),
		TotalQuestions:  len(questions),
		CurrentCategory: categoryID,
	})
}
