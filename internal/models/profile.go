package models

import (
	"time"
)

// Gender is the profile gender choice.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

// Profile holds a user's public attributes and their position in the follow
// graph. It is created in the same transaction as its User and cascades with
// it.
type Profile struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;uniqueIndex" json:"user_id"`
	User        User       `gorm:"foreignKey:UserID" json:"user"`
	Bio         string     `gorm:"size:250" json:"bio"`
	Gender      Gender     `gorm:"type:varchar(2)" json:"gender"`
	Picture     string     `json:"picture"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// FollowingCount is not persisted; computed at query time
	FollowingCount int `gorm:"->" json:"following_count"`
	// FollowersCount is not persisted; computed at query time
	FollowersCount int `gorm:"->" json:"followers_count"`
}

// Follow is a directed edge in the follow graph. "A follows B" does not
// imply "B follows A". The pair is unique.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follow_pair" json:"follower_id"`
	FolloweeID uint      `gorm:"not null;uniqueIndex:idx_follow_pair" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`

	Follower Profile `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Followee Profile `gorm:"foreignKey:FolloweeID" json:"followee,omitempty"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}
