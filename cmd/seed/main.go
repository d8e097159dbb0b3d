// Command main runs the database seeder for Quill.
package main

import (
	"flag"
	"log"

	"quill/internal/config"
	"quill/internal/database"
	"quill/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", seed.DefaultOptions.Users, "Number of users to create")
	postsPerUser := flag.Int("posts", seed.DefaultOptions.PostsPerUser, "Posts per user")
	commentsPerPost := flag.Int("comments", seed.DefaultOptions.CommentsPerPost, "Comments per post")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db, seed.Options{
		Users:           *numUsers,
		PostsPerUser:    *postsPerUser,
		CommentsPerPost: *commentsPerPost,
	})

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := s.Run(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Test users share the password: Password123")
}
