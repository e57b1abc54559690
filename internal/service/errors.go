package service

import (
	"fmt"

	"github.com/google/uuid"
)

type ErrResourceNotFound struct {
	error
}

func NewErrResourceNotFound(id uuid.UUID, resourceType string) *ErrResourceNotFound {
	return &ErrResourceNotFound{fmt.Errorf("%s %s not found", resourceType, id)}
}

func NewErrAnalysisNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "analysis")
}

type ErrVideoAnalysisFailed struct {
	error
}

func NewErrVideoAnalysisFailed(videoURL string, err error) *ErrVideoAnalysisFailed {
	return &ErrVideoAnalysisFailed{fmt.Errorf("failed to analyze video %q: %w", videoURL, err)}
}

type ErrOptionPlanningFailed struct {
	error
}

func NewErrOptionPlanningFailed(err error) *ErrOptionPlanningFailed {
	return &ErrOptionPlanningFailed{fmt.Errorf("failed to plan automation options: %w", err)}
}

type ErrAnalysisNotCompleted struct {
	error
}

func NewErrAnalysisNotCompleted(id uuid.UUID) *ErrAnalysisNotCompleted {
	return &ErrAnalysisNotCompleted{fmt.Errorf("analysis %s has no result yet", id)}
}
