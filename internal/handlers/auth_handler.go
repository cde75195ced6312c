package handlers

import (
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/middleware"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	limiter     fiber.Handler
}

// NewAuthHandler creates a new AuthHandler. limiter throttles the credential
// endpoints and may be nil.
func NewAuthHandler(authService *services.AuthService, limiter fiber.Handler) *AuthHandler {
	if limiter == nil {
		limiter = func(c *fiber.Ctx) error { return c.Next() }
	}
	return &AuthHandler{
		authService: authService,
		limiter:     limiter,
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, g Guards) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.limiter, h.HandleRegister)
	authRoutes.Post("/login", h.limiter, h.HandleLogin)
	authRoutes.Post("/google", h.limiter, h.HandleGoogleLogin)

	authRoutes.Get("/me", g.Auth, h.HandleMe)
	authRoutes.Put("/profile", g.Auth, h.HandleUpdateProfile)
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleLoginRequest carries the ID token obtained from Google Sign-In.
type GoogleLoginRequest struct {
	Credential string `json:"credential"`
}

// ProfileRequest lists the profile fields a user may change.
type ProfileRequest struct {
	Name           *string `json:"name"`
	ProfilePicture *string `json:"profilePicture" validate:"omitempty,url"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err, "User")
	}

	user, token, err := h.authService.Register(services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return respondError(c, err, "User")
	}
	return c.Status(fiber.StatusCreated).JSON(authResponse{Token: token, User: user})
}

// HandleLogin handles user login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err, "User")
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return respondError(c, err, "User")
	}
	return c.JSON(authResponse{Token: token, User: user})
}

// HandleGoogleLogin signs in (or up) with a Google ID token.
func (h *AuthHandler) HandleGoogleLogin(c *fiber.Ctx) error {
	var req GoogleLoginRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err, "User")
	}

	user, token, err := h.authService.LoginWithGoogle(c.UserContext(), req.Credential)
	if err != nil {
		return respondError(c, err, "User")
	}
	return c.JSON(authResponse{Token: token, User: user})
}

// HandleMe returns the signed-in user.
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	user, err := h.authService.GetUser(middleware.UserID(c))
	if err != nil {
		return respondError(c, err, "User")
	}
	return c.JSON(user)
}

// HandleUpdateProfile changes the signed-in user's name or picture.
func (h *AuthHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var req ProfileRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err, "User")
	}

	user, err := h.authService.UpdateProfile(middleware.UserID(c), services.ProfileInput{
		Name:           req.Name,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		return respondError(c, err, "User")
	}
	return c.JSON(user)
}
