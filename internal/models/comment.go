package models

import (
	"time"

	"gorm.io/gorm"
)

// CommentableKind discriminates the entity a comment is attached to. An
// explicit enum is stored alongside the foreign key instead of an open-ended
// polymorphic reference.
type CommentableKind string

const (
	CommentableQuestion CommentableKind = "question"
	CommentableAnswer   CommentableKind = "answer"
)

// Valid reports whether the kind names a commentable entity.
func (k CommentableKind) Valid() bool {
	return k == CommentableQuestion || k == CommentableAnswer
}

// Comment is a user comment on a question or an answer.
type Comment struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	UserID     uint            `gorm:"not null;index" json:"user_id"`
	User       User            `gorm:"foreignKey:UserID" json:"user"`
	TargetKind CommentableKind `gorm:"type:varchar(10);not null;index:idx_comment_target" json:"target_kind"`
	TargetID   uint            `gorm:"not null;index:idx_comment_target" json:"target_id"`
	Content    string          `gorm:"size:10000;not null" json:"content"`
	// Points is not persisted; computed at query time as SUM of vote values
	Points    int            `gorm:"->" json:"points"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// VoteTarget implements Votable.
func (c *Comment) VoteTarget() (VoteTargetKind, uint) {
	return VoteTargetComment, c.ID
}
