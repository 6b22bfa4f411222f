package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"comment_monitor/models"
	"comment_monitor/repository"
	"comment_monitor/utils"
)

// ListKeywordsHandler godoc
// @Summary List keyword rules
// @Tags keywords
// @Produce json
// @Security BearerAuth
// @Param search query string false "substring of the term"
// @Param operator query string false "AND, OR or NOT"
// @Success 200 {object} models.APIResponse{data=[]models.KeywordRule}
// @Failure 400 {object} models.APIResponse
// @Router /api/keywords [get]
func (h *Handler) ListKeywordsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rules, err := h.Keywords.List(r.Context(), OwnerFrom(r.Context()), repository.KeywordFilter{
		Operator: models.Operator(q.Get("operator")),
		Search:   q.Get("search"),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccessResponse(w, rules)
}

// CreateKeywordHandler godoc
// @Summary Add a keyword rule
// @Tags keywords
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CreateKeywordRequest true "rule"
// @Success 200 {object} models.APIResponse{data=models.KeywordRule}
// @Failure 400 {object} models.APIResponse
// @Router /api/keywords [post]
func (h *Handler) CreateKeywordHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateKeywordRequest
	if !decodeBody(w, r, &req) {
		return
	}
	rule, err := h.Keywords.Create(r.Context(), OwnerFrom(r.Context()), req.Term, req.Operator)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccessResponse(w, rule)
}

// UpdateKeywordHandler godoc
// @Summary Enable or disable a keyword rule
// @Tags keywords
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "rule id"
// @Param body body models.UpdateKeywordRequest true "new state"
// @Success 200 {object} models.APIResponse{data=models.KeywordRule}
// @Failure 404 {object} models.APIResponse
// @Router /api/keywords/{id} [patch]
func (h *Handler) UpdateKeywordHandler(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateKeywordRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Active == nil {
		utils.WriteCustomErrorResponse(w, models.CodeMissingParams, "active is required", map[string]string{"param": "active"})
		return
	}
	rule, err := h.Keywords.SetActive(r.Context(), OwnerFrom(r.Context()), chi.URLParam(r, "id"), *req.Active)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccessResponse(w, rule)
}

// DeleteKeywordHandler godoc
// @Summary Delete a keyword rule
// @Tags keywords
// @Produce json
// @Security BearerAuth
// @Param id path string true "rule id"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/keywords/{id} [delete]
func (h *Handler) DeleteKeywordHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Keywords.Delete(r.Context(), OwnerFrom(r.Context()), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccessResponse(w, map[string]string{"id": id})
}
