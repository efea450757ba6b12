package server

import (
	"crypto/md5"
	"fmt"
	"strconv"
	"strings"
	"time"

	"devlink/internal/models"
	"devlink/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Register handles POST /api/users/register
// @Summary Register a new account
// @Tags users
// @Accept json
// @Produce json
// @Param request body object{name=string,email=string,password=string,password2=string} true "Registration form"
// @Success 200 {object} models.User
// @Failure 400 {object} object
// @Router /users/register [post]
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		Password2 string `json:"password2"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	if errs, ok := validation.Register(req.Name, req.Email, req.Password, req.Password2); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	existing, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if existing != nil {
		return models.RespondWithError(c,
			models.NewConflictError("email", "Email already exists"))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Avatar:   gravatarURL(req.Email),
	}

	if createErr := s.userRepo.Create(c.Context(), user); createErr != nil {
		return models.RespondWithError(c, createErr)
	}

	// The created document is returned verbatim, hash included.
	return c.JSON(user)
}

// Login handles POST /api/users/login
// @Summary Authenticate and receive a bearer token
// @Tags users
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Login credentials"
// @Success 200 {object} object{success=bool,token=string}
// @Failure 400 {object} object
// @Failure 404 {object} object
// @Router /users/login [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	if errs, ok := validation.Login(req.Email, req.Password); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	user, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if user == nil {
		return models.RespondWithError(c,
			models.NewNotFoundError("email", "User not found"))
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); cmpErr != nil {
		return models.RespondWithError(c,
			models.NewFieldError(fiber.StatusBadRequest, "PASSWORD_MISMATCH", "password", "Password incorrect"))
	}

	token, err := s.generateToken(user)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   "Bearer " + token,
	})
}

// CurrentUser handles GET /api/users/current
// @Summary Return the authenticated identity
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{id=int,name=string,email=string,avatar=string}
// @Failure 401 {object} object
// @Router /users/current [get]
func (s *Server) CurrentUser(c *fiber.Ctx) error {
	user := c.Locals("currentUser").(*models.User)

	return c.JSON(fiber.Map{
		"id":     user.ID,
		"name":   user.Name,
		"email":  user.Email,
		"avatar": user.Avatar,
	})
}

// generateToken creates a JWT for the given user with a 1 hour expiry.
func (s *Server) generateToken(user *models.User) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":    strconv.FormatUint(uint64(user.ID), 10), // Subject (user ID as string)
		"name":   user.Name,                               // Display name (cached in token)
		"avatar": user.Avatar,                             // Avatar URL (cached in token)
		"iss":    tokenIssuer,                             // Issuer
		"aud":    tokenAudience,                           // Audience
		"exp":    now.Add(time.Hour).Unix(),               // Expiration (1 hour)
		"iat":    now.Unix(),                              // Issued at
		"nbf":    now.Unix(),                              // Not before
		"jti":    s.generateJTI(),                         // JWT ID (unique identifier)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func (s *Server) generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}

// gravatarURL derives the deterministic avatar reference for an email:
// the md5 of the normalized address, size 200, rating pg, "mm" default image.
func gravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("//www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", hash)
}
