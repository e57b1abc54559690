// Package v1alpha1 exposes the analysis pipeline over HTTP. Handlers decode
// and validate requests, delegate to the service layer and translate typed
// service errors to status codes.
package v1alpha1

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	api "github.com/robotics-advisor/planner/api/v1alpha1"
	"github.com/robotics-advisor/planner/internal/catalog"
	"github.com/robotics-advisor/planner/internal/handlers/validator"
	"github.com/robotics-advisor/planner/internal/service"
	"github.com/robotics-advisor/planner/pkg/requestid"
)

type ServiceHandler struct {
	analysisSrv *service.AnalysisService
	reportSrv   *service.ReportService
	catalog     *catalog.Catalog
	validator   *validator.Validator
}

func NewServiceHandler(analysisSrv *service.AnalysisService, reportSrv *service.ReportService, catalog *catalog.Catalog) *ServiceHandler {
	v := validator.NewValidator()
	v.Register(validator.NewAnalysisValidationRules()...)

	return &ServiceHandler{
		analysisSrv: analysisSrv,
		reportSrv:   reportSrv,
		catalog:     catalog,
		validator:   v,
	}
}

// RegisterApi mounts the v1 routes on the router.
func (h *ServiceHandler) RegisterApi(router chi.Router) {
	router.Route("/api/v1/analyses", func(r chi.Router) {
		r.Post("/", h.CreateAnalysis)
		r.Get("/", h.ListAnalyses)
		r.Get("/{id}", h.GetAnalysis)
		r.Delete("/{id}", h.DeleteAnalysis)
		r.Get("/{id}/export", h.ExportAnalysis)
	})
	router.Get("/api/v1/robots", h.ListRobots)
	router.Get("/api/v1/info", h.GetInfo)
}

func replyError(w http.ResponseWriter, r *http.Request, code int, message string) {
	render.Status(r, code)
	render.JSON(w, r, api.Error{Message: message, RequestID: requestid.FromContextPtr(r.Context())})
}
