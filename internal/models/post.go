package models

// Post represents a blog post authored by a user.
type Post struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Title    string    `gorm:"not null" json:"title"`
	Content  *string   `gorm:"type:text" json:"content"`
	AuthorID string    `gorm:"not null;index" json:"author_id"`
	User     *User     `gorm:"foreignKey:AuthorID" json:"user,omitempty"`
	Comments []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
}
