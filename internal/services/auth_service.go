package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/identity"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// DefaultTokenTTL is how long an identity token stays valid.
const DefaultTokenTTL = 7 * 24 * time.Hour

// Messages shared with the HTTP layer.
const (
	MsgEmailExists        = "Email already exists"
	MsgInvalidCredentials = "Invalid email or password"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid token")

// AuthService handles registration, login and token handling.
type AuthService struct {
	userRepo  repositories.UserRepository
	verifier  identity.Verifier
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService. verifier may be nil, in which case
// Google login is rejected.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, tokenTTL time.Duration, verifier identity.Verifier) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &AuthService{
		userRepo:  userRepo,
		verifier:  verifier,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// RegisterInput is the data accepted at registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a user with a hashed password and the default role.
func (s *AuthService) Register(in RegisterInput) (*models.User, string, error) {
	email := normalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if name == "" || email == "" || in.Password == "" {
		return nil, "", invalid("Please provide all required fields")
	}

	existing, err := s.userRepo.GetByEmail(email)
	if err != nil && !IsNotFound(err) {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", invalid(MsgEmailExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     models.RoleUser,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", fmt.Errorf("failed to register user: %w", err)
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates by email and password and returns a signed token.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", invalid("Please provide email and password")
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if IsNotFound(err) {
			return nil, "", invalid(MsgInvalidCredentials)
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", invalid(MsgInvalidCredentials)
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// LoginWithGoogle verifies the Google credential, then finds or creates the
// matching local user. An existing account without a Google link is linked.
func (s *AuthService) LoginWithGoogle(ctx context.Context, credential string) (*models.User, string, error) {
	if s.verifier == nil {
		return nil, "", invalid("Google login is not configured")
	}
	if strings.TrimSpace(credential) == "" {
		return nil, "", invalid("Google credential is required")
	}

	profile, err := s.verifier.Verify(ctx, credential)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredential) {
			log.Printf("Google credential rejected: %v", err)
			return nil, "", invalid("Invalid Google credential")
		}
		return nil, "", fmt.Errorf("failed to verify Google credential: %w", err)
	}

	user, err := s.findOrCreateGoogleUser(profile)
	if err != nil {
		return nil, "", err
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) findOrCreateGoogleUser(p identity.Profile) (*models.User, error) {
	user, err := s.userRepo.GetByGoogleID(p.Subject)
	if err == nil {
		return user, nil
	}
	if !IsNotFound(err) {
		return nil, err
	}

	user, err = s.userRepo.GetByEmail(normalizeEmail(p.Email))
	if err != nil && !IsNotFound(err) {
		return nil, err
	}
	if user != nil {
		if user.GoogleID == nil {
			subject := p.Subject
			user.GoogleID = &subject
			if user.ProfilePicture == "" {
				user.ProfilePicture = p.Picture
			}
			if err := s.userRepo.Update(user); err != nil {
				return nil, fmt.Errorf("failed to link Google account: %w", err)
			}
		}
		return user, nil
	}

	// Google-only accounts get an unguessable password so the hash is never empty.
	hashed, err := bcrypt.GenerateFromPassword([]byte(uuid.New().String()), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = strings.Split(p.Email, "@")[0]
	}
	subject := p.Subject
	user = &models.User{
		Name:           name,
		Email:          normalizeEmail(p.Email),
		Password:       string(hashed),
		Role:           models.RoleUser,
		GoogleID:       &subject,
		ProfilePicture: p.Picture,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create Google user: %w", err)
	}
	return user, nil
}

// GenerateToken signs a token carrying the user id.
func (s *AuthService) GenerateToken(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     now.Add(s.tokenTTL).Unix(),
		"iat":     now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a token, returning the user id it carries.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	if _, hasExp := claims["exp"]; !hasExp {
		return "", fmt.Errorf("%w: missing expiry", ErrInvalidToken)
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", fmt.Errorf("%w: missing user id", ErrInvalidToken)
	}
	return userID, nil
}

// ResolveToken validates the token and loads the user it belongs to.
func (s *AuthService) ResolveToken(tokenString string) (*models.User, error) {
	userID, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: user no longer exists", ErrInvalidToken)
		}
		return nil, err
	}
	return user, nil
}

// GetUser returns the user with the given id.
func (s *AuthService) GetUser(id string) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// ProfileInput lists the profile fields a user may change themselves.
type ProfileInput struct {
	Name           *string
	ProfilePicture *string
}

// UpdateProfile applies the allowed profile fields to the user.
func (s *AuthService) UpdateProfile(id string, in ProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, invalid("Name cannot be empty")
		}
		user.Name = name
	}
	if in.ProfilePicture != nil {
		user.ProfilePicture = strings.TrimSpace(*in.ProfilePicture)
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
