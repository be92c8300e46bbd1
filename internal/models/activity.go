package models

import "time"

// ActivityCompletion marks a learning-path activity as done by a child
type ActivityCompletion struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ChildID     uint      `json:"child_id" gorm:"not null;uniqueIndex:idx_child_activity"`
	ActivityID  string    `json:"activity_id" gorm:"not null;size:32;uniqueIndex:idx_child_activity"`
	CompletedAt time.Time `json:"completed_at" gorm:"not null"`
}

func (ActivityCompletion) TableName() string {
	return "activity_completions"
}
