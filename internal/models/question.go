package models

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Question represents a question asked by a user.
type Question struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UUID        string    `gorm:"size:36;not null;uniqueIndex" json:"uuid"`
	Title       string    `gorm:"size:150;not null" json:"title"`
	Slug        string    `gorm:"size:200;not null;uniqueIndex" json:"slug"`
	Description string    `gorm:"type:text;not null" json:"description"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"user"`
	Tags        []Tag     `gorm:"many2many:question_tags" json:"tags"`
	// Points is not persisted; computed at query time as SUM of vote values
	Points int `gorm:"->" json:"points"`
	// AnswersCount is not persisted; computed at query time
	AnswersCount int            `gorm:"->" json:"answers_count"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeSave recomputes the slug from the title and the question UUID so
// retitled questions keep a unique, derivable slug.
func (q *Question) BeforeSave(_ *gorm.DB) error {
	if q.UUID == "" {
		q.UUID = uuid.NewString()
	}
	q.Slug = Slugify(q.Title) + "-" + q.UUID[:8]
	return nil
}

// VoteTarget implements Votable.
func (q *Question) VoteTarget() (VoteTargetKind, uint) {
	return VoteTargetQuestion, q.ID
}

// Slugify lowercases a title and collapses non-alphanumeric runs to single
// hyphens.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}
