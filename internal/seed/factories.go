// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"crypto/md5"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"devlink/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, opts: opts}
}

// CreateUser constructs and persists a user with a Gravatar-style avatar.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	email := strings.ToLower(gofakeit.Email())
	user := &models.User{
		Name:   gofakeit.Name(),
		Email:  email,
		Avatar: fmt.Sprintf("//www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", md5.Sum([]byte(email))),
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateProfile constructs and persists a developer profile for the given user,
// complete with experience, education, skills and social links.
func (f *Factory) CreateProfile(user *models.User, overrides ...func(*models.Profile)) (*models.Profile, error) {
	r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(user.ID)))

	profile := &models.Profile{
		UserID:         user.ID,
		Handle:         fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(10, 999)),
		Company:        gofakeit.Company(),
		Website:        gofakeit.URL(),
		Location:       fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
		Bio:            gofakeit.Sentence(12),
		Status:         statuses[r.Intn(len(statuses))],
		GithubUsername: gofakeit.Username(),
		Skills:         pickSkills(r),
		Social: models.SocialLinks{
			Twitter:  "https://twitter.com/" + gofakeit.Username(),
			Linkedin: "https://linkedin.com/in/" + gofakeit.Username(),
		},
	}

	for _, override := range overrides {
		override(profile)
	}

	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}

	for i := 0; i < 1+r.Intn(3); i++ {
		exp := &models.Experience{
			ProfileID:   profile.ID,
			Title:       gofakeit.JobTitle(),
			Company:     gofakeit.Company(),
			Location:    gofakeit.City(),
			From:        randomPastDate(r, 8),
			Description: gofakeit.Sentence(15),
		}
		if i > 0 {
			exp.To = randomPastDate(r, 2)
		} else {
			exp.Current = true
		}
		if err := f.db.Create(exp).Error; err != nil {
			return nil, err
		}
	}

	edu := &models.Education{
		ProfileID:    profile.ID,
		School:       gofakeit.Company() + " University",
		Degree:       degrees[r.Intn(len(degrees))],
		FieldOfStudy: fields[r.Intn(len(fields))],
		From:         randomPastDate(r, 12),
		To:           randomPastDate(r, 6),
		Description:  gofakeit.Sentence(10),
	}
	if err := f.db.Create(edu).Error; err != nil {
		return nil, err
	}

	return profile, nil
}

// CreatePost constructs and persists a post for the given user.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Text:   gofakeit.Paragraph(1, 2, 8, " "),
		Name:   user.Name,
		Avatar: user.Avatar,
		UserID: user.ID,
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a comment from user on the given post.
func (f *Factory) CreateComment(user *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		PostID: post.ID,
		UserID: user.ID,
		Text:   gofakeit.Sentence(12),
		Name:   user.Name,
		Avatar: user.Avatar,
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike records a like from user on the given post. Duplicate likes
// are rejected by the unique index and surfaced as errors.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	like := &models.Like{
		PostID: post.ID,
		UserID: user.ID,
	}
	if err := f.db.Create(like).Error; err != nil {
		log.Printf("like skipped (user %d, post %d): %v", user.ID, post.ID, err)
		return err
	}
	return nil
}

func randomPastDate(r *rand.Rand, maxYears int) string {
	daysBack := r.Intn(maxYears*365) + 30
	return time.Now().Add(-time.Duration(daysBack) * 24 * time.Hour).Format("2006-01-02")
}

func pickSkills(r *rand.Rand) models.Skills {
	n := 3 + r.Intn(4)
	picked := make(models.Skills, 0, n)
	seen := map[int]bool{}
	for len(picked) < n {
		i := r.Intn(len(skillPool))
		if seen[i] {
			continue
		}
		seen[i] = true
		picked = append(picked, skillPool[i])
	}
	return picked
}
