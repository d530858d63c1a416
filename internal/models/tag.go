package models

import "time"

// Tag labels questions. Names are slug-like and unique; tags are created on
// demand when a question first references them.
type Tag struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"size:50;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	Questions []Question `gorm:"many2many:question_tags" json:"-"`
}
