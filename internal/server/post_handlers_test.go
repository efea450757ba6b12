package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"devlink/internal/config"
	"devlink/internal/models"
	"devlink/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPostRepository is a mock of the PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) AddLike(ctx context.Context, like *models.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockPostRepository) DeleteLike(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) AddComment(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockPostRepository) DeleteComment(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newPostTestServer(postRepo *MockPostRepository) *Server {
	return &Server{
		config:      &config.Config{JWTSecret: "test_secret"},
		postService: service.NewPostService(postRepo),
	}
}

func TestGetPostHandler(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockRepo.On("GetByID", mock.Anything, uint(1)).
		Return(&models.Post{ID: 1, Text: "hello from the feed", UserID: 7}, nil)
	mockRepo.On("GetByID", mock.Anything, uint(99)).Return(nil, nil)

	s := newPostTestServer(mockRepo)
	app := fiber.New()
	app.Get("/posts/:id", s.GetPost)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/posts/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "hello from the feed", body["text"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/posts/99", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, "No post found", body["postnotfound"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/posts/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, "Invalid ID", body["error"])
}

func TestCreatePostHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		mockRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Post).ID = 11
		}).Return(nil)
		mockRepo.On("GetByID", mock.Anything, uint(11)).
			Return(&models.Post{ID: 11, Text: "a perfectly fine post", UserID: 7}, nil)

		s := newPostTestServer(mockRepo)
		app := fiber.New()
		app.Post("/posts", asUser(7), s.CreatePost)

		resp := postJSON(t, app, "/posts", map[string]string{
			"text": "a perfectly fine post",
			"name": "Jane Doe",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, float64(11), body["id"])
		mockRepo.AssertExpectations(t)
	})

	t.Run("Short Text", func(t *testing.T) {
		s := newPostTestServer(new(MockPostRepository))
		app := fiber.New()
		app.Post("/posts", asUser(7), s.CreatePost)

		resp := postJSON(t, app, "/posts", map[string]string{"text": "short"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Post must be between 10 and 300 characters", body["text"])
	})

	t.Run("Empty Text", func(t *testing.T) {
		s := newPostTestServer(new(MockPostRepository))
		app := fiber.New()
		app.Post("/posts", asUser(7), s.CreatePost)

		resp := postJSON(t, app, "/posts", map[string]string{"text": ""})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Text field is required", body["text"])
	})
}

func TestDeletePostHandler(t *testing.T) {
	t.Run("Owner", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		mockRepo.On("GetByID", mock.Anything, uint(1)).
			Return(&models.Post{ID: 1, UserID: 7}, nil)
		mockRepo.On("Delete", mock.Anything, uint(1)).Return(nil)

		s := newPostTestServer(mockRepo)
		app := fiber.New()
		app.Delete("/posts/:id", asUser(7), s.DeletePost)

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/posts/1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, true, body["success"])
		mockRepo.AssertExpectations(t)
	})

	t.Run("Non-Owner", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		mockRepo.On("GetByID", mock.Anything, uint(1)).
			Return(&models.Post{ID: 1, UserID: 7}, nil)

		s := newPostTestServer(mockRepo)
		app := fiber.New()
		app.Delete("/posts/:id", asUser(8), s.DeletePost)

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/posts/1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "User not authorized", body["notauthorized"])
	})
}

func TestLikeUnlikeHandlers(t *testing.T) {
	t.Run("Like Then Conflict", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		mockRepo.On("GetByID", mock.Anything, uint(1)).
			Return(&models.Post{ID: 1, Likes: []models.Like{{ID: 3, PostID: 1, UserID: 7}}}, nil)

		s := newPostTestServer(mockRepo)
		app := fiber.New()
		app.Post("/posts/like/:id", asUser(7), s.LikePost)

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/posts/like/1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "User already liked this post", body["alreadyliked"])
	})

	t.Run("Unlike Without Like", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		mockRepo.On("GetByID", mock.Anything, uint(1)).
			Return(&models.Post{ID: 1}, nil)

		s := newPostTestServer(mockRepo)
		app := fiber.New()
		app.Post("/posts/unlike/:id", asUser(7), s.UnlikePost)

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/posts/unlike/1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "You have not liked this post", body["notliked"])
	})
}

func TestCommentHandlers(t *testing.T) {
	t.Run("Create Comment Uses Post Validation", func(t *testing.T) {
		s := newPostTestServer(new(MockPostRepository))
		app := fiber.New()
		app.Post("/posts/comment/:id", asUser(7), s.CreateComment)

		resp := postJSON(t, app, "/posts/comment/1", map[string]string{"text": "short"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Post must be between 10 and 300 characters", body["text"])
	})

	t.Run("Delete Missing Comment", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		mockRepo.On("GetByID", mock.Anything, uint(1)).
			Return(&models.Post{ID: 1}, nil)

		s := newPostTestServer(mockRepo)
		app := fiber.New()
		app.Delete("/posts/comment/:id/:comment_id", asUser(7), s.DeleteComment)

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/posts/comment/1/99", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Comment does not exist", body["commentnotexists"])
	})
}
