package handlers

import (
	"net/http"

	"comment_monitor/models"
	"comment_monitor/repository"
	"comment_monitor/utils"
)

// ReportHandler godoc
// @Summary Draft statistics for a period
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param days query int false "7, 30 or 90" default(7)
// @Success 200 {object} models.APIResponse{data=models.Report}
// @Failure 400 {object} models.APIResponse
// @Router /api/reports [get]
func (h *Handler) ReportHandler(w http.ResponseWriter, r *http.Request) {
	days, err := utils.QueryInt(r, "days", 7)
	if err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeInvalidParams, err.Error(), nil)
		return
	}
	report, err := h.Reports.Build(r.Context(), OwnerFrom(r.Context()), days)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccessResponse(w, report)
}

// HistoryHandler godoc
// @Summary Activity history
// @Tags history
// @Produce json
// @Security BearerAuth
// @Param action query string false "action filter"
// @Param status query string false "success or error"
// @Param search query string false "target or details substring"
// @Param limit query int false "page size, max 100"
// @Param offset query int false "page offset"
// @Success 200 {object} models.APIResponse{data=[]models.ActivityEntry}
// @Failure 400 {object} models.APIResponse
// @Router /api/history [get]
func (h *Handler) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := paging(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	entries, err := h.History.List(r.Context(), OwnerFrom(r.Context()), repository.ActivityFilter{
		Action: models.ActivityAction(q.Get("action")),
		Status: q.Get("status"),
		Search: q.Get("search"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccessResponse(w, entries)
}
