package models

import (
	"time"
)

// Comment represents a comment on a post.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AuthorID  string    `gorm:"not null;index" json:"author_id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Content   *string   `gorm:"type:text" json:"content"`
	User      *User     `gorm:"foreignKey:AuthorID" json:"user,omitempty"`
	Post      *Post     `gorm:"foreignKey:PostID" json:"post,omitempty"`
	CreatedAt time.Time `gorm:"<-:create" json:"created_at"`
}
