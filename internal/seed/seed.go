package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"devlink/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
	SkipBcrypt  bool
	MaxDays     int
}

var (
	statuses = []string{
		"Developer", "Junior Developer", "Senior Developer", "Manager",
		"Student or Learning", "Instructor or Teacher", "Intern",
	}

	degrees = []string{
		"B.S.", "B.A.", "M.S.", "M.Eng.", "Ph.D.", "Associate's", "Certificate",
	}

	fields = []string{
		"Computer Science", "Software Engineering", "Information Systems",
		"Electrical Engineering", "Mathematics", "Physics", "Web Development",
	}

	skillPool = []string{
		"JavaScript", "TypeScript", "Go", "Python", "Java", "C#", "Ruby",
		"HTML", "CSS", "React", "Vue", "Angular", "Node.js", "Express",
		"PostgreSQL", "MongoDB", "Redis", "Docker", "Kubernetes", "AWS",
		"GraphQL", "REST", "Git", "Linux",
	}
)

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	// Clear existing data to avoid conflicts if requested
	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	f := NewFactory(db, opts)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create users: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("✓ %d test users created", len(users))

	// Roughly two thirds of users get developer profiles
	profiles := 0
	for i, user := range users {
		if i%3 == 2 {
			continue
		}
		if _, err := f.CreateProfile(user); err != nil {
			return fmt.Errorf("failed to create profiles: %w", err)
		}
		profiles++
	}
	log.Printf("✓ %d profiles created", profiles)

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[r.Intn(len(users))]
		post, err := f.CreatePost(author)
		if err != nil {
			return fmt.Errorf("failed to create posts: %w", err)
		}
		posts = append(posts, post)
	}
	log.Printf("✓ %d posts created", len(posts))

	// Sprinkle likes and comments over the feed
	likes, comments := 0, 0
	for _, post := range posts {
		for i := 0; i < r.Intn(5); i++ {
			if err := f.CreateLike(users[r.Intn(len(users))], post); err == nil {
				likes++
			}
		}
		for i := 0; i < r.Intn(3); i++ {
			if _, err := f.CreateComment(users[r.Intn(len(users))], post); err != nil {
				return fmt.Errorf("failed to create comments: %w", err)
			}
			comments++
		}
	}
	log.Printf("✓ %d likes and %d comments created", likes, comments)

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE comments, likes, posts, experiences, educations, profiles, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}
