package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"comment_monitor/models"
	"comment_monitor/repository"
	"comment_monitor/utils"
)

func commentFilter(r *http.Request) repository.CommentFilter {
	q := r.URL.Query()
	return repository.CommentFilter{
		Status:    models.CommentStatus(strings.ToLower(q.Get("status"))),
		Platform:  models.Platform(strings.ToLower(q.Get("platform"))),
		ProfileID: q.Get("profile_id"),
		Search:    q.Get("search"),
	}
}

// ListCommentsHandler godoc
// @Summary List comment drafts
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, posted or failed"
// @Param platform query string false "linkedin or twitter"
// @Param profile_id query string false "profile id"
// @Param search query string false "content or profile name substring"
// @Param limit query int false "page size, max 100"
// @Param offset query int false "page offset"
// @Success 200 {object} models.APIResponse{data=[]models.CommentView}
// @Failure 400 {object} models.APIResponse
// @Router /api/comments [get]
func (h *Handler) ListCommentsHandler(w http.ResponseWriter, r *http.Request) {
	f := commentFilter(r)
	var ok bool
	if f.Limit, f.Offset, ok = paging(w, r); !ok {
		return
	}
	comments, err := h.Comments.List(r.Context(), OwnerFrom(r.Context()), f)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccessResponse(w, comments)
}

// ExportCommentsHandler godoc
// @Summary Export comment drafts as CSV
// @Tags comments
// @Produce text/csv
// @Security BearerAuth
// @Param status query string false "pending, posted or failed"
// @Param platform query string false "linkedin or twitter"
// @Success 200 {file} file "CSV file"
// @Failure 400 {object} models.APIResponse
// @Router /api/comments/export [get]
func (h *Handler) ExportCommentsHandler(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.Comments.ExportCSV(r.Context(), OwnerFrom(r.Context()), commentFilter(r), &buf); err != nil {
		writeServiceError(w, r, err)
		return
	}
	name := fmt.Sprintf("comentarios-%s.csv", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// UpdateCommentStatusHandler godoc
// @Summary Record the publishing outcome of a draft
// @Description Only pending drafts move, and only to posted or failed.
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "draft id"
// @Param body body models.UpdateCommentStatusRequest true "new status"
// @Success 200 {object} models.APIResponse{data=models.CommentView}
// @Failure 404 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse "invalid status transition"
// @Router /api/comments/{id}/status [patch]
func (h *Handler) UpdateCommentStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCommentStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	c, err := h.Comments.UpdateStatus(r.Context(), OwnerFrom(r.Context()), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccessResponse(w, c)
}
