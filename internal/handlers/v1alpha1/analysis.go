package v1alpha1

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/robotics-advisor/planner/internal/costing"
	"github.com/robotics-advisor/planner/internal/service"
	srvMappers "github.com/robotics-advisor/planner/internal/service/mappers"

	api "github.com/robotics-advisor/planner/api/v1alpha1"
)

// (POST /api/v1/analyses)
func (h *ServiceHandler) CreateAnalysis(w http.ResponseWriter, r *http.Request) {
	logger := zap.S().Named("analysis_handler")
	ctx := r.Context()

	var form api.AnalysisForm
	if err := render.DecodeJSON(r.Body, &form); err != nil {
		replyError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode request body: %v", err))
		return
	}

	if err := h.validator.Struct(form); err != nil {
		logger.Debugw("analysis form validation failed", "error", err)
		replyError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	analysis, err := h.analysisSrv.CreateAnalysis(ctx, srvMappers.AnalysisFormFromApi(form))
	if err != nil {
		logger.Errorw("failed to create analysis", "error", err, "video_url", form.VideoURL)
		switch err.(type) {
		case *costing.ErrInvalidFinancialConfig, *costing.ErrMissingRobotMetadata, *costing.ErrEmptyOptionSet:
			replyError(w, r, http.StatusBadRequest, err.Error())
		default:
			replyError(w, r, http.StatusInternalServerError, err.Error())
		}
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, srvMappers.AnalysisToApi(*analysis))
}

// (GET /api/v1/analyses)
func (h *ServiceHandler) ListAnalyses(w http.ResponseWriter, r *http.Request) {
	analyses, err := h.analysisSrv.ListAnalyses(r.Context())
	if err != nil {
		zap.S().Named("analysis_handler").Errorw("failed to list analyses", "error", err)
		replyError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to list analyses: %v", err))
		return
	}

	render.JSON(w, r, srvMappers.AnalysisListToApi(analyses))
}

// (GET /api/v1/analyses/{id})
func (h *ServiceHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		replyError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid analysis id: %v", err))
		return
	}

	analysis, err := h.analysisSrv.GetAnalysis(r.Context(), id)
	if err != nil {
		switch err.(type) {
		case *service.ErrResourceNotFound:
			replyError(w, r, http.StatusNotFound, err.Error())
		default:
			zap.S().Named("analysis_handler").Errorw("failed to get analysis", "error", err, "analysis_id", id)
			replyError(w, r, http.StatusInternalServerError, err.Error())
		}
		return
	}

	render.JSON(w, r, srvMappers.AnalysisToApi(*analysis))
}

// (DELETE /api/v1/analyses/{id})
func (h *ServiceHandler) DeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		replyError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid analysis id: %v", err))
		return
	}

	if err := h.analysisSrv.DeleteAnalysis(r.Context(), id); err != nil {
		zap.S().Named("analysis_handler").Errorw("failed to delete analysis", "error", err, "analysis_id", id)
		replyError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	render.NoContent(w, r)
}

// (GET /api/v1/analyses/{id}/export)
func (h *ServiceHandler) ExportAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		replyError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid analysis id: %v", err))
		return
	}

	report, err := h.reportSrv.ExportAnalysisXLSX(r.Context(), id)
	if err != nil {
		switch err.(type) {
		case *service.ErrResourceNotFound:
			replyError(w, r, http.StatusNotFound, err.Error())
		case *service.ErrAnalysisNotCompleted:
			replyError(w, r, http.StatusConflict, err.Error())
		default:
			zap.S().Named("analysis_handler").Errorw("failed to export analysis", "error", err, "analysis_id", id)
			replyError(w, r, http.StatusInternalServerError, err.Error())
		}
		return
	}
	defer report.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("analysis-%s.xlsx", id)))
	if err := report.Write(w); err != nil {
		zap.S().Named("analysis_handler").Errorw("failed to write report", "error", err, "analysis_id", id)
	}
}
