package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// Router 使用标准库 http.ServeMux（Go 1.22 方法路由）
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterHealthRoute 存活检查
func (r *Router) RegisterHealthRoute() {
	r.Handle("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, Ok(map[string]string{"status": "ok"}))
	})
}

// RegisterScoreRoutes 注册资料、问卷、评分路由
func (r *Router) RegisterScoreRoutes(h *ScoreHandler) {
	r.Handle("POST /api/user-profiles", h.UpsertProfile)
	r.Handle("POST /api/healths", h.UpsertHealth)
	r.Handle("POST /api/health-score", h.Assess)
	r.Handle("GET /api/scores", h.CurrentScores)
	r.Handle("GET /api/scores/export", h.ExportScores)
}
