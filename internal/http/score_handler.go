package httpapi

import (
	"errors"
	"net/http"

	"mavita-score/internal/domain"
	"mavita-score/internal/models"
	"mavita-score/internal/service"

	"go.uber.org/zap"
)

// ScoreHandler 用户资料、健康问卷、评分接口
type ScoreHandler struct {
	profiles     service.ProfileService
	healths      service.HealthService
	scores       service.ScoreService
	maxBodyBytes int64
	logger       *zap.Logger
}

// NewScoreHandler 创建 ScoreHandler
func NewScoreHandler(profiles service.ProfileService, healths service.HealthService, scores service.ScoreService, maxBodyBytes int64, logger *zap.Logger) *ScoreHandler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = 1 << 20
	}
	return &ScoreHandler{
		profiles:     profiles,
		healths:      healths,
		scores:       scores,
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}
}

// UpsertProfile POST /api/user-profiles
func (h *ScoreHandler) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	userUUID, ok := h.subject(w, r)
	if !ok {
		return
	}
	var req service.UpsertProfileRequest
	if !h.decode(w, r, &req) {
		return
	}
	req.UserUUID = userUUID

	profile, err := h.profiles.Upsert(r.Context(), req)
	if err != nil {
		h.writeError(w, "UpsertProfile", userUUID, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(profile))
}

// UpsertHealth POST /api/healths
func (h *ScoreHandler) UpsertHealth(w http.ResponseWriter, r *http.Request) {
	userUUID, ok := h.subject(w, r)
	if !ok {
		return
	}
	var health domain.Health
	if !h.decode(w, r, &health) {
		return
	}
	health.UserUUID = userUUID

	saved, err := h.healths.Upsert(r.Context(), &health)
	if err != nil {
		h.writeError(w, "UpsertHealth", userUUID, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(saved))
}

// Assess POST /api/health-score
func (h *ScoreHandler) Assess(w http.ResponseWriter, r *http.Request) {
	var req models.AssessmentRequest
	if !h.decode(w, r, &req) {
		return
	}
	assessment, err := h.scores.Assess(r.Context(), req)
	if err != nil {
		h.writeError(w, "Assess", "", err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(assessment))
}

// CurrentScores GET /api/scores
func (h *ScoreHandler) CurrentScores(w http.ResponseWriter, r *http.Request) {
	userUUID, ok := h.subject(w, r)
	if !ok {
		return
	}
	results, err := h.scores.CurrentScores(r.Context(), userUUID)
	if err != nil {
		h.writeError(w, "CurrentScores", userUUID, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(results))
}

// ExportScores GET /api/scores/export
func (h *ScoreHandler) ExportScores(w http.ResponseWriter, r *http.Request) {
	userUUID, ok := h.subject(w, r)
	if !ok {
		return
	}
	results, err := h.scores.CurrentScores(r.Context(), userUUID)
	if err != nil {
		h.writeError(w, "ExportScores", userUUID, err)
		return
	}
	data, err := GenerateScoresExport(results)
	if err != nil {
		h.writeError(w, "ExportScores", userUUID, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=health-scores.xlsx")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// subject 无法识别用户时按资源不存在处理
func (h *ScoreHandler) subject(w http.ResponseWriter, r *http.Request) (string, bool) {
	userUUID, err := subjectFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusNotFound, Fail("user not found"))
		return "", false
	}
	return userUUID, true
}

func (h *ScoreHandler) decode(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := readBodyJSON(r, h.maxBodyBytes, out); err != nil {
		if errors.Is(err, errBodyTooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, Fail(err.Error()))
			return false
		}
		writeJSON(w, http.StatusBadRequest, Fail("invalid JSON body"))
		return false
	}
	return true
}

// writeError 400 校验 / 404 不存在 / 503 未配置存储 / 500 其它
func (h *ScoreHandler) writeError(w http.ResponseWriter, op, userUUID string, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, FailValidation(verr.Errors))
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, Fail(err.Error()))
	case errors.Is(err, service.ErrStorageDisabled):
		writeJSON(w, http.StatusServiceUnavailable, Fail(err.Error()))
	default:
		h.logger.Error(op+" failed", zap.String("user_uuid", userUUID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("internal error"))
	}
}
