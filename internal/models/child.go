package models

import (
	"time"

	"gorm.io/gorm"
)

// Child is a learner profile owned by a parent account
type Child struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Age       int    `json:"age" gorm:"not null" validate:"required,min=5,max=8"`
	Grade     string `json:"grade" gorm:"not null;size:10;default:1st" validate:"omitempty,max=10"`
	AvatarURL string `json:"avatar_url" gorm:"size:500"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Results     []AssessmentResult   `json:"results,omitempty" gorm:"foreignKey:ChildID"`
	Completions []ActivityCompletion `json:"completions,omitempty" gorm:"foreignKey:ChildID"`
}

func (Child) TableName() string {
	return "children"
}
