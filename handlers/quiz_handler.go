package handlers

import (
	"net/http"

	"triviaapi/models"
	"triviaapi/utils"
)

// POST /quizzes
//
// Responds with {success:true} and no question once every candidate has
// been served.
func (h *Handler) PlayQuiz(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[models.QuizRequest](w, r)
	if !ok {
		utils.SendError(w, http.StatusUnprocessableEntity)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.fail(w, r, http.StatusUnprocessableEntity, "invalid quiz request", err)
		return
	}

	categoryID := int(*req.QuizCategory.ID)
	candidates, err := h.store.QuizCandidates(r.Context(), categoryID)
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "quiz candidates", err)
		return
	}
	if len(candidates) == 0 {
		utils.SendError(w, http.StatusNotFound)
		return
	}

	resp := models.QuizResponse{Success: true}
	if q, found := h.picker.Next(candidates, *req.PreviousQuestions); found {
		resp.Question = &q
	}
	utils.SendJSON(w, http.StatusOK, resp)
}
