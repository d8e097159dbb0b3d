// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"quill/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options controls how much data the seeder creates.
type Options struct {
	Users           int
	PostsPerUser    int
	CommentsPerPost int
}

// DefaultOptions is the baseline dataset for a local development database.
var DefaultOptions = Options{
	Users:           20,
	PostsPerUser:    5,
	CommentsPerPost: 3,
}

// Seeder populates the database with generated users, posts, and comments.
type Seeder struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded rows. Comments go first, then posts, then
// users, so that foreign keys stay satisfied throughout.
func (s *Seeder) ClearAll() error {
	for _, model := range []any{&models.Comment{}, &models.Post{}, &models.User{}} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("clearing %T: %w", model, err)
		}
	}
	log.Println("database cleared")
	return nil
}

// BuildUser constructs a sample user without persisting it. All generated
// users share the password "Password123" for easy manual testing.
func (s *Seeder) BuildUser() *models.User {
	nickname := gofakeit.FirstName()
	return &models.User{
		ID:       fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
		Password: "Password123",
		Nickname: &nickname,
		Role:     models.RoleMember,
	}
}

// BuildPost constructs a sample post authored by the given user.
func (s *Seeder) BuildPost(author *models.User) *models.Post {
	content := gofakeit.Paragraph(1, 3, 8, "\n")
	return &models.Post{
		Title:    gofakeit.Sentence(5),
		Content:  &content,
		AuthorID: author.ID,
	}
}

// BuildComment constructs a sample comment on the given post.
func (s *Seeder) BuildComment(post *models.Post, author *models.User) *models.Comment {
	content := gofakeit.Sentence(12)
	return &models.Comment{
		PostID:   post.ID,
		AuthorID: author.ID,
		Content:  &content,
	}
}

// Run seeds the full dataset: users first, then posts, then a spread of
// comments from random users across all posts.
func (s *Seeder) Run() error {
	users := make([]*models.User, 0, s.opts.Users)
	for i := 0; i < s.opts.Users; i++ {
		user := s.BuildUser()
		if err := s.db.Create(user).Error; err != nil {
			return fmt.Errorf("creating user %q: %w", user.ID, err)
		}
		users = append(users, user)
	}
	log.Printf("created %d users", len(users))

	posts := make([]*models.Post, 0, len(users)*s.opts.PostsPerUser)
	for _, user := range users {
		for i := 0; i < s.opts.PostsPerUser; i++ {
			post := s.BuildPost(user)
			if err := s.db.Create(post).Error; err != nil {
				return fmt.Errorf("creating post for %q: %w", user.ID, err)
			}
			posts = append(posts, post)
		}
	}
	log.Printf("created %d posts", len(posts))

	comments := 0
	for _, post := range posts {
		for i := 0; i < s.opts.CommentsPerPost; i++ {
			author := users[s.rng.Intn(len(users))]
			if err := s.db.Create(s.BuildComment(post, author)).Error; err != nil {
				return fmt.Errorf("creating comment on post %d: %w", post.ID, err)
			}
			comments++
		}
	}
	log.Printf("created %d comments", comments)

	return nil
}
