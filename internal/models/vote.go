package models

import "time"

// VoteTargetKind discriminates the entity a vote is attached to.
type VoteTargetKind string

const (
	VoteTargetQuestion VoteTargetKind = "question"
	VoteTargetAnswer   VoteTargetKind = "answer"
	VoteTargetComment  VoteTargetKind = "comment"
)

// Valid reports whether the kind names a votable entity.
func (k VoteTargetKind) Valid() bool {
	switch k {
	case VoteTargetQuestion, VoteTargetAnswer, VoteTargetComment:
		return true
	}
	return false
}

// Vote direction values.
const (
	VoteUp   = 1
	VoteDown = -1
)

// Votable is any entity carrying mutually exclusive up/down vote membership.
type Votable interface {
	VoteTarget() (VoteTargetKind, uint)
}

// Vote is a single user's vote on a target. The unique index guarantees one
// row per (user, target), which makes the up/down sets structurally
// disjoint: switching direction updates Value in place.
type Vote struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"not null;uniqueIndex:idx_vote_user_target" json:"user_id"`
	TargetKind VoteTargetKind `gorm:"type:varchar(10);not null;uniqueIndex:idx_vote_user_target" json:"target_kind"`
	TargetID   uint           `gorm:"not null;uniqueIndex:idx_vote_user_target" json:"target_id"`
	// Value is VoteUp or VoteDown.
	Value     int       `gorm:"not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VoteState describes a target's vote sets from one user's perspective after
// a toggle.
type VoteState struct {
	TargetKind VoteTargetKind `json:"target_kind"`
	TargetID   uint           `json:"target_id"`
	// UserVote is VoteUp, VoteDown, or 0 when the user holds no vote.
	UserVote int `json:"user_vote"`
	Points   int `json:"points"`
}
