package model

import (
	"time"

	"gorm.io/datatypes"
)

// RiskLevel is the coarse tier derived from a risk score.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "Low"
	RiskLevelModerate RiskLevel = "Moderate"
	RiskLevelHigh     RiskLevel = "High"
)

// Assessment is one persisted scoring request. Rows are never updated.
type Assessment struct {
	ID              uint                              `json:"id" gorm:"primaryKey"`
	UserID          uint                              `json:"user_id" gorm:"not null;index:idx_assessments_user_created,priority:1"`
	Input           datatypes.JSONType[ClinicalInput] `json:"assessment_data" gorm:"column:assessment_data;not null"`
	RiskScore       float64                           `json:"risk_score" gorm:"not null"`
	RiskLevel       RiskLevel                         `json:"risk_level" gorm:"type:varchar(16);not null"`
	Confidence      float64                           `json:"confidence" gorm:"not null"`
	Recommendations datatypes.JSONSlice[string]       `json:"recommendations" gorm:"not null"`
	CreatedAt       time.Time                         `json:"created_at" gorm:"index:idx_assessments_user_created,priority:2"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
