package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/robotics-advisor/planner/internal/store/model"
)

type Analysis interface {
	List(ctx context.Context) (model.AnalysisList, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Analysis, error)
	Create(ctx context.Context, analysis model.Analysis) (*model.Analysis, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AnalysisStore struct {
	db *gorm.DB
}

// Make sure we conform to the Analysis interface
var _ Analysis = (*AnalysisStore)(nil)

func NewAnalysisStore(db *gorm.DB) Analysis {
	return &AnalysisStore{db: db}
}

func (a *AnalysisStore) List(ctx context.Context) (model.AnalysisList, error) {
	var analyses model.AnalysisList
	result := a.db.WithContext(ctx).Model(&analyses).Order("created_at DESC").Find(&analyses)
	if result.Error != nil {
		return nil, result.Error
	}
	return analyses, nil
}

func (a *AnalysisStore) Get(ctx context.Context, id uuid.UUID) (*model.Analysis, error) {
	var analysis model.Analysis
	result := a.db.WithContext(ctx).First(&analysis, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return &analysis, nil
}

func (a *AnalysisStore) Create(ctx context.Context, analysis model.Analysis) (*model.Analysis, error) {
	result := a.db.WithContext(ctx).Clauses(clause.Returning{}).Create(&analysis)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}
	return &analysis, nil
}

func (a *AnalysisStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := a.db.WithContext(ctx).Delete(&model.Analysis{}, "id = ?", id)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}
	return nil
}
