package handlers

import (
	"net/http"

	"comment_monitor/utils"
)

// GetSettingsHandler godoc
// @Summary Read AI and automation settings
// @Description Owners that never saved settings get the defaults.
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse{data=models.OwnerSettings}
// @Router /api/settings [get]
func (h *Handler) GetSettingsHandler(w http.ResponseWriter, r *http.Request) {
	st, err := h.Settings.Get(r.Context(), OwnerFrom(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccessResponse(w, st)
}

// SaveSettingsHandler godoc
// @Summary Save AI and automation settings
// @Description Fields left out of the body keep their current value.
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.OwnerSettings true "settings"
// @Success 200 {object} models.APIResponse{data=models.OwnerSettings}
// @Failure 400 {object} models.APIResponse
// @Router /api/settings [put]
func (h *Handler) SaveSettingsHandler(w http.ResponseWriter, r *http.Request) {
	owner := OwnerFrom(r.Context())
	current, err := h.Settings.Get(r.Context(), owner)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !decodeBody(w, r, current) {
		return
	}
	saved, err := h.Settings.Save(r.Context(), owner, *current)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccessResponse(w, saved)
}
