package handlers

import (
	"context"
	"net/http"

	"comment_monitor/utils"
)

// RunMonitorHandler godoc
// @Summary Run keyword monitoring for the caller
// @Description Samples every active profile, evaluates the active keyword rules and stores pending drafts.
// @Description Per-profile failures are listed in data.errors; a run that could not start returns an error code.
// @Tags monitor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.MonitorRunResponse "run summary"
// @Failure 401 {object} models.APIResponse "unauthorized"
// @Failure 500 {object} models.APIResponse "run did not start"
// @Router /api/monitor/run [post]
func (h *Handler) RunMonitorHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.RunTimeout)
		defer cancel()
	}

	summary, err := h.Monitor.Run(ctx, OwnerFrom(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccessResponse(w, summary)
}
