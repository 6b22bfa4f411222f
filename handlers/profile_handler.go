package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"comment_monitor/models"
	"comment_monitor/repository"
	"comment_monitor/services"
	"comment_monitor/utils"
)

// ListProfilesHandler godoc
// @Summary List monitored profiles
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param search query string false "name or handle substring"
// @Param platform query string false "linkedin or twitter"
// @Param status query string false "active, paused or inactive"
// @Success 200 {object} models.APIResponse{data=[]models.MonitoredProfile}
// @Failure 400 {object} models.APIResponse
// @Router /api/profiles [get]
func (h *Handler) ListProfilesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	profiles, err := h.Profiles.List(r.Context(), OwnerFrom(r.Context()), repository.ProfileFilter{
		Platform: models.Platform(strings.ToLower(q.Get("platform"))),
		Status:   models.ProfileStatus(strings.ToLower(q.Get("status"))),
		Search:   q.Get("search"),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccessResponse(w, profiles)
}

// CreateProfileHandler godoc
// @Summary Add a monitored profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CreateProfileRequest true "profile"
// @Success 200 {object} models.APIResponse{data=models.MonitoredProfile}
// @Failure 400 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse "profile limit reached"
// @Router /api/profiles [post]
func (h *Handler) CreateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}
	p, err := h.Profiles.Create(r.Context(), OwnerFrom(r.Context()), services.ProfileInput{
		DisplayName: req.DisplayName,
		Handle:      req.Handle,
		Platform:    req.Platform,
		Status:      req.Status,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccessResponse(w, p)
}

// UpdateProfileHandler godoc
// @Summary Change a profile status
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "profile id"
// @Param body body models.UpdateProfileRequest true "new status"
// @Success 200 {object} models.APIResponse{data=models.MonitoredProfile}
// @Failure 404 {object} models.APIResponse
// @Router /api/profiles/{id} [patch]
func (h *Handler) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}
	p, err := h.Profiles.UpdateStatus(r.Context(), OwnerFrom(r.Context()), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccessResponse(w, p)
}

// DeleteProfileHandler godoc
// @Summary Delete a profile and its drafts
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param id path string true "profile id"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/profiles/{id} [delete]
func (h *Handler) DeleteProfileHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Profiles.Delete(r.Context(), OwnerFrom(r.Context()), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccessResponse(w, map[string]string{"id": id})
}
