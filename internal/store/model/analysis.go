package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	api "github.com/robotics-advisor/planner/api/v1alpha1"
)

// Analysis is one stored analysis run: the inputs it ran with and the full
// result record as returned to the caller.
type Analysis struct {
	ID        uuid.UUID `gorm:"primaryKey;column:id;type:VARCHAR(255);"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt *time.Time
	VideoURL  string                         `gorm:"not null;type:TEXT"`
	Config    *JSONField[api.AnalysisConfig] `gorm:"type:jsonb;not null"`
	Result    *JSONField[api.AnalysisResult] `gorm:"type:jsonb"`
}

type AnalysisList []Analysis

func (a Analysis) String() string {
	val, _ := json.Marshal(a)
	return string(val)
}
