// Package service contains the business rules for the profile and post
// aggregates. Services translate lookups and mutations into repository calls
// and own all authorization and uniqueness checks.
package service

import (
	"context"
	"log/slog"
	"strings"

	"devlink/internal/middleware"
	"devlink/internal/models"
	"devlink/internal/repository"
)

// ProfileService owns the profile aggregate: the one-profile-per-user and
// unique-handle rules, and the nested experience and education lists.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

// NewProfileService returns a ProfileService over the given repositories.
func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, userRepo: userRepo}
}

// UpsertProfileInput carries the create-or-update profile form. Empty fields
// are treated as omitted and never clear stored values; the social link
// bundle is rebuilt from the submitted fields on every call.
type UpsertProfileInput struct {
	UserID         uint
	Handle         string
	Company        string
	Website        string
	Location       string
	Bio            string
	Status         string
	GithubUsername string
	Skills         string
	Youtube        string
	Twitter        string
	Facebook       string
	Linkedin       string
	Instagram      string
}

// ExperienceInput carries a new work history entry.
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        string
	To          string
	Current     bool
	Description string
}

// EducationInput carries a new schooling entry.
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         string
	To           string
	Current      bool
	Description  string
}

func errNoProfile() *models.AppError {
	return models.NewNotFoundError("noprofile", "There is no profile for this user")
}

// GetCurrent returns the caller's profile.
func (s *ProfileService) GetCurrent(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errNoProfile()
	}
	return profile, nil
}

// GetAll returns every profile. An empty result is a not-found error; API
// consumers have always keyed off the 404 for the empty state.
func (s *ProfileService) GetAll(ctx context.Context) ([]models.Profile, error) {
	profiles, err := s.profileRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, models.NewNotFoundError("noprofile", "There are no profiles")
	}
	return profiles, nil
}

// GetByHandle returns the profile owning the given handle.
func (s *ProfileService) GetByHandle(ctx context.Context, handle string) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errNoProfile()
	}
	return profile, nil
}

// GetByUserID returns the profile owned by the given user.
func (s *ProfileService) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errNoProfile()
	}
	return profile, nil
}

// Upsert creates the caller's profile or updates it in place. On update,
// omitted fields keep their stored values. The handle-availability lookup
// runs on both paths; on the update path a conflict is only logged, since
// the update has already been applied and answered for as the response.
func (s *ProfileService) Upsert(ctx context.Context, in UpsertProfileInput) (*models.Profile, error) {
	existing, err := s.profileRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		applyProfileFields(existing, in)
		if err := s.profileRepo.Save(ctx, existing); err != nil {
			return nil, err
		}

		if other, herr := s.profileRepo.GetByHandle(ctx, in.Handle); herr == nil && other != nil && other.UserID != in.UserID {
			middleware.Logger.WarnContext(ctx, "profile handle already in use by another profile",
				slog.String("handle", in.Handle),
				slog.Any("owner", other.UserID),
			)
		}

		return s.profileRepo.GetByUserID(ctx, in.UserID)
	}

	if other, herr := s.profileRepo.GetByHandle(ctx, in.Handle); herr != nil {
		return nil, herr
	} else if other != nil {
		return nil, models.NewConflictError("handle", "This handle already exists")
	}

	profile := &models.Profile{UserID: in.UserID}
	applyProfileFields(profile, in)
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	return s.profileRepo.GetByUserID(ctx, in.UserID)
}

// applyProfileFields copies the submitted fields onto the profile, skipping
// empty ones. The social bundle is replaced wholesale, matching how the API
// has always treated it.
func applyProfileFields(profile *models.Profile, in UpsertProfileInput) {
	if in.Handle != "" {
		profile.Handle = in.Handle
	}
	if in.Company != "" {
		profile.Company = in.Company
	}
	if in.Website != "" {
		profile.Website = in.Website
	}
	if in.Location != "" {
		profile.Location = in.Location
	}
	if in.Bio != "" {
		profile.Bio = in.Bio
	}
	if in.Status != "" {
		profile.Status = in.Status
	}
	if in.GithubUsername != "" {
		profile.GithubUsername = in.GithubUsername
	}
	if in.Skills != "" {
		profile.Skills = models.Skills(strings.Split(in.Skills, ","))
	}
	profile.Social = models.SocialLinks{
		Youtube:   in.Youtube,
		Twitter:   in.Twitter,
		Facebook:  in.Facebook,
		Linkedin:  in.Linkedin,
		Instagram: in.Instagram,
	}
}

// AddExperience prepends a work history entry to the caller's profile.
func (s *ProfileService) AddExperience(ctx context.Context, userID uint, in ExperienceInput) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errNoProfile()
	}

	exp := &models.Experience{
		ProfileID:   profile.ID,
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	if err := s.profileRepo.AddExperience(ctx, exp); err != nil {
		return nil, err
	}

	return s.profileRepo.GetByUserID(ctx, userID)
}

// RemoveExperience removes an entry by identifier. An unknown identifier is
// a no-op and still returns the (unchanged) profile rather than an error.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, expID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errNoProfile()
	}

	for _, exp := range profile.Experience {
		if exp.ID == expID {
			if err := s.profileRepo.DeleteExperience(ctx, exp.ID); err != nil {
				return nil, err
			}
			break
		}
	}

	return s.profileRepo.GetByUserID(ctx, userID)
}

// AddEducation prepends a schooling entry to the caller's profile.
func (s *ProfileService) AddEducation(ctx context.Context, userID uint, in EducationInput) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errNoProfile()
	}

	edu := &models.Education{
		ProfileID:    profile.ID,
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}
	if err := s.profileRepo.AddEducation(ctx, edu); err != nil {
		return nil, err
	}

	return s.profileRepo.GetByUserID(ctx, userID)
}

// RemoveEducation removes an entry by identifier, with the same permissive
// no-op semantics as RemoveExperience.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID, eduID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errNoProfile()
	}

	for _, edu := range profile.Education {
		if edu.ID == eduID {
			if err := s.profileRepo.DeleteEducation(ctx, edu.ID); err != nil {
				return nil, err
			}
			break
		}
	}

	return s.profileRepo.GetByUserID(ctx, userID)
}

// DeleteAccount removes the caller's profile and then the account itself.
// The cascade is best-effort: a missing profile does not block the account
// deletion.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uint) error {
	if err := s.profileRepo.DeleteByUserID(ctx, userID); err != nil {
		middleware.Logger.WarnContext(ctx, "profile cascade delete failed",
			slog.Any("user_id", userID),
			slog.String("error", err.Error()),
		)
	}
	return s.userRepo.Delete(ctx, userID)
}
