package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "comment_monitor/docs" // swagger spec
	"comment_monitor/logger"
	"comment_monitor/models"
	"comment_monitor/services"
	"comment_monitor/utils"
)

// Handler carries the services behind the HTTP API.
type Handler struct {
	Monitor  *services.MonitorService
	Keywords *services.KeywordService
	Profiles *services.ProfileService
	Comments *services.CommentService
	Settings *services.SettingsService
	Reports  *services.ReportService
	History  *services.HistoryService
	Auth     services.Authenticator

	CORSOrigin string
	RunTimeout time.Duration
}

type ctxKey struct{}

// NewRouter builds the chi router with the standard middleware stack.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors(h.CORSOrigin))

	RegisterRoutes(r, h)
	return r
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteSuccessResponse(w, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(h.authenticate)

		r.Post("/monitor/run", h.RunMonitorHandler)

		r.Get("/keywords", h.ListKeywordsHandler)
		r.Post("/keywords", h.CreateKeywordHandler)
		r.Patch("/keywords/{id}", h.UpdateKeywordHandler)
		r.Delete("/keywords/{id}", h.DeleteKeywordHandler)

		r.Get("/profiles", h.ListProfilesHandler)
		r.Post("/profiles", h.CreateProfileHandler)
		r.Patch("/profiles/{id}", h.UpdateProfileHandler)
		r.Delete("/profiles/{id}", h.DeleteProfileHandler)

		r.Get("/comments", h.ListCommentsHandler)
		r.Get("/comments/export", h.ExportCommentsHandler)
		r.Patch("/comments/{id}/status", h.UpdateCommentStatusHandler)

		r.Get("/reports", h.ReportHandler)
		r.Get("/history", h.HistoryHandler)

		r.Get("/settings", h.GetSettingsHandler)
		r.Put("/settings", h.SaveSettingsHandler)
	})
}

// cors answers preflight requests and tags every response with the allowed origin.
func cors(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// authenticate resolves the bearer token to an owner id before any handler runs.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			utils.WriteErrorResponse(w, models.CodeUnauthorized, nil)
			return
		}

		ownerID, err := h.Auth.Authenticate(r.Context(), strings.TrimSpace(token))
		if err != nil {
			if !errors.Is(err, services.ErrUnauthorized) {
				logger.Warn("authentication failed", "error", err, "request_id", middleware.GetReqID(r.Context()))
			}
			utils.WriteErrorResponse(w, models.CodeUnauthorized, nil)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, ownerID)))
	})
}

// OwnerFrom returns the authenticated owner id stored by the auth middleware.
func OwnerFrom(ctx context.Context) string {
	owner, _ := ctx.Value(ctxKey{}).(string)
	return owner
}

// writeServiceError maps service errors onto response codes.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr *services.ValidationError
		lerr *services.LoadError
	)
	switch {
	case errors.As(err, &verr):
		utils.WriteCustomErrorResponse(w, models.CodeInvalidParams, verr.Error(), map[string]string{"field": verr.Field})
	case errors.Is(err, services.ErrNotFound):
		utils.WriteErrorResponse(w, models.CodeNotFound, nil)
	case errors.Is(err, services.ErrLimitReached):
		utils.WriteCustomErrorResponse(w, models.CodeLimitReached, "monitored profile limit reached", nil)
	case errors.Is(err, services.ErrDuplicateProfile):
		utils.WriteCustomErrorResponse(w, models.CodeInvalidParams, err.Error(), nil)
	case errors.Is(err, services.ErrInvalidTransition):
		utils.WriteCustomErrorResponse(w, models.CodeInvalidTransition, err.Error(), nil)
	case errors.Is(err, services.ErrUnauthorized):
		utils.WriteErrorResponse(w, models.CodeUnauthorized, nil)
	case errors.As(err, &lerr):
		logError(r, "monitoring run did not start", err)
		utils.WriteCustomErrorResponse(w, models.CodeRunNotStarted, lerr.Error(), nil)
	default:
		logError(r, "request failed", err)
		utils.WriteCustomErrorResponse(w, models.CodeServerError, err.Error(), nil)
	}
}

func logError(r *http.Request, msg string, err error) {
	logger.Error(msg,
		slog.String("path", r.URL.Path),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.Any("error", err))
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := utils.DecodeJSONBody(r, dst); err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeInvalidParams, err.Error(), nil)
		return false
	}
	return true
}

// paging reads limit and offset, capping limit at 100.
func paging(w http.ResponseWriter, r *http.Request) (limit, offset uint64, ok bool) {
	l, err := utils.QueryInt(r, "limit", 50)
	if err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeInvalidParams, err.Error(), nil)
		return 0, 0, false
	}
	o, err := utils.QueryInt(r, "offset", 0)
	if err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeInvalidParams, err.Error(), nil)
		return 0, 0, false
	}
	if l == 0 || l > 100 {
		l = 100
	}
	return uint64(l), uint64(o), true
}
