package models

// APIResponse is the envelope of every JSON response.
type APIResponse struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message" example:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// CreateKeywordRequest is the body of POST /api/keywords.
type CreateKeywordRequest struct {
	Term     string `json:"term" example:"marketing digital"`
	Operator string `json:"operator" example:"AND"`
}

// UpdateKeywordRequest is the body of PATCH /api/keywords/{id}.
type UpdateKeywordRequest struct {
	Active *bool `json:"active" example:"false"`
}

// CreateProfileRequest is the body of POST /api/profiles.
type CreateProfileRequest struct {
	DisplayName string `json:"display_name" example:"João Silva"`
	Handle      string `json:"handle" example:"joaosilva"`
	Platform    string `json:"platform" example:"linkedin"`
	Status      string `json:"status,omitempty" example:"active"`
}

// UpdateProfileRequest is the body of PATCH /api/profiles/{id}.
type UpdateProfileRequest struct {
	Status string `json:"status" example:"paused"`
}

// UpdateCommentStatusRequest is the body of PATCH /api/comments/{id}/status.
type UpdateCommentStatusRequest struct {
	Status string `json:"status" example:"posted"`
}

// MonitorRunResponse documents POST /api/monitor/run.
type MonitorRunResponse struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message" example:"success"`
	Data    MonitorSummary `json:"data"`
}
