package service

import (
	"context"

	"devlink/internal/models"
	"devlink/internal/repository"
)

// PostService owns the post aggregate: ownership checks on deletion, the
// at-most-one-like-per-user rule and the nested comment list.
type PostService struct {
	postRepo repository.PostRepository
}

// NewPostService returns a PostService over the given repository.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePostInput carries a new post. Name and Avatar are the author
// snapshot supplied by the client.
type CreatePostInput struct {
	UserID uint
	Text   string
	Name   string
	Avatar string
}

// CommentInput carries a new comment with the same author snapshot fields.
type CommentInput struct {
	UserID uint
	Text   string
	Name   string
	Avatar string
}

func errPostNotFound() *models.AppError {
	return models.NewNotFoundError("postnotfound", "No post found")
}

// Create persists a new post with empty like and comment lists.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	post := &models.Post{
		Text:   in.Text,
		Name:   in.Name,
		Avatar: in.Avatar,
		UserID: in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// List returns all posts, newest first.
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.List(ctx)
}

// Get returns a post by identifier.
func (s *PostService) Get(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errPostNotFound()
	}
	return post, nil
}

// Delete removes a post. Only the owning user may delete it.
func (s *PostService) Delete(ctx context.Context, id, userID uint) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return errPostNotFound()
	}
	if post.UserID != userID {
		return models.NewOwnershipError()
	}
	return s.postRepo.Delete(ctx, id)
}

// Like prepends a like for the caller. Liking the same post twice fails and
// leaves the list unchanged.
func (s *PostService) Like(ctx context.Context, id, userID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errPostNotFound()
	}

	for _, like := range post.Likes {
		if like.UserID == userID {
			return nil, models.NewConflictError("alreadyliked", "User already liked this post")
		}
	}

	if err := s.postRepo.AddLike(ctx, &models.Like{PostID: id, UserID: userID}); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, id)
}

// Unlike removes the caller's like.
func (s *PostService) Unlike(ctx context.Context, id, userID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errPostNotFound()
	}

	var match *models.Like
	for i := range post.Likes {
		if post.Likes[i].UserID == userID {
			match = &post.Likes[i]
			break
		}
	}
	if match == nil {
		return nil, models.NewConflictError("notliked", "You have not liked this post")
	}

	if err := s.postRepo.DeleteLike(ctx, match.ID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, id)
}

// AddComment prepends a comment to the post.
func (s *PostService) AddComment(ctx context.Context, postID uint, in CommentInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errPostNotFound()
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: in.UserID,
		Text:   in.Text,
		Name:   in.Name,
		Avatar: in.Avatar,
	}
	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID)
}

// RemoveComment removes a comment by identifier. Unlike the nested profile
// lists, a missing comment is a hard not-found error.
func (s *PostService) RemoveComment(ctx context.Context, postID, commentID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errPostNotFound()
	}

	var match *models.Comment
	for i := range post.Comments {
		if post.Comments[i].ID == commentID {
			match = &post.Comments[i]
			break
		}
	}
	if match == nil {
		return nil, models.NewNotFoundError("commentnotexists", "Comment does not exist")
	}

	if err := s.postRepo.DeleteComment(ctx, match.ID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID)
}
