package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/robotics-advisor/planner/internal/catalog"
	"github.com/robotics-advisor/planner/internal/costing"
	"github.com/robotics-advisor/planner/internal/service/mappers"
	"github.com/robotics-advisor/planner/internal/store"
	"github.com/robotics-advisor/planner/internal/store/model"
	"github.com/robotics-advisor/planner/pkg/metrics"
)

// TaskAnalyzer extracts the observed process steps from a video.
type TaskAnalyzer interface {
	AnalyzeVideoTasks(ctx context.Context, videoURI string) ([]costing.Task, error)
}

// OptionPlanner proposes automation plans for a set of tasks.
type OptionPlanner interface {
	PlanOptions(ctx context.Context, tasks []costing.Task, robots []catalog.Robot) ([]costing.AutomationOption, error)
}

type AnalysisService struct {
	store    store.Store
	catalog  *catalog.Catalog
	analyzer TaskAnalyzer
	planner  OptionPlanner
	engine   *costing.Engine
}

func NewAnalysisService(store store.Store, catalog *catalog.Catalog, analyzer TaskAnalyzer, planner OptionPlanner) *AnalysisService {
	return &AnalysisService{
		store:    store,
		catalog:  catalog,
		analyzer: analyzer,
		planner:  planner,
		engine:   costing.NewEngine(),
	}
}

func (as *AnalysisService) ListAnalyses(ctx context.Context) (model.AnalysisList, error) {
	analyses, err := as.store.Analysis().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	return analyses, nil
}

func (as *AnalysisService) GetAnalysis(ctx context.Context, id uuid.UUID) (*model.Analysis, error) {
	analysis, err := as.store.Analysis().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrAnalysisNotFound(id)
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return analysis, nil
}

func (as *AnalysisService) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	if err := as.store.Analysis().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	return nil
}

// CreateAnalysis runs the full pipeline for one video: extract tasks, plan
// automation options, run the cost engine and persist the result.
func (as *AnalysisService) CreateAnalysis(ctx context.Context, createForm mappers.AnalysisCreateForm) (*model.Analysis, error) {
	logger := zap.S().Named("analysis_service")

	if err := createForm.Config.Validate(); err != nil {
		return nil, err
	}

	tasks, err := as.analyzer.AnalyzeVideoTasks(ctx, createForm.VideoURL)
	if err != nil {
		metrics.IncreaseAnalysesTotalMetric("error")
		return nil, NewErrVideoAnalysisFailed(createForm.VideoURL, err)
	}
	logger.Infow("extracted process tasks", "video_url", createForm.VideoURL, "task_count", len(tasks))

	options, err := as.planner.PlanOptions(ctx, tasks, as.catalog.Robots())
	if err != nil {
		metrics.IncreaseAnalysesTotalMetric("error")
		return nil, NewErrOptionPlanningFailed(err)
	}
	logger.Infow("planned automation options", "option_count", len(options))

	result, err := as.engine.Analyze(createForm.Config, tasks, options, as.catalog.CostTable())
	if err != nil {
		metrics.IncreaseAnalysesTotalMetric("error")
		return nil, err
	}

	analysis := createForm.ToModel()
	analysis.Result = model.MakeJSONField(mappers.AnalysisResultToApi(*result))

	created, err := as.store.Analysis().Create(ctx, analysis)
	if err != nil {
		metrics.IncreaseAnalysesTotalMetric("error")
		return nil, fmt.Errorf("failed to store analysis: %w", err)
	}

	metrics.IncreaseAnalysesTotalMetric("success")
	logger.Infow("analysis completed",
		"analysis_id", created.ID,
		"recommended_option", result.Recommendation.RecommendedOptionID,
	)
	return created, nil
}
