package models

import (
	"time"

	"gorm.io/gorm"
)

// Answer represents an answer to a question. At most one answer per question
// may be accepted at any time; acceptance is toggled only by the question's
// owner.
type Answer struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	QuestionID uint     `gorm:"not null;index" json:"question_id"`
	Question   Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	UserID     uint     `gorm:"not null;index" json:"user_id"`
	User       User     `gorm:"foreignKey:UserID" json:"user"`
	Content    string   `gorm:"type:text;not null" json:"content"`
	IsAccepted bool     `gorm:"not null;default:false" json:"is_accepted"`
	// Points is not persisted; computed at query time as SUM of vote values
	Points    int            `gorm:"->" json:"points"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// VoteTarget implements Votable.
func (a *Answer) VoteTarget() (VoteTargetKind, uint) {
	return VoteTargetAnswer, a.ID
}
