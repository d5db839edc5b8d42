package services

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/recipebox-api/dto"
	"github.com/recipebox-api/models"
	"github.com/recipebox-api/repositories"
	"github.com/recipebox-api/utils"
	"gorm.io/gorm"
)

var userRepo = repositories.NewUserRepository()

// Register creates a new user account
func Register(req dto.RegisterRequest) (*models.User, error) {
	email := utils.NormalizeEmail(req.Email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	// Check if email already exists
	exists, err := userRepo.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	// Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	// Create new user
	user := models.User{
		Email:    email,
		Password: hashedPassword,
		Name:     req.Name,
		IsActive: true,
	}

	created, err := userRepo.Create(user)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// CreateSuperuser creates an account with staff and superuser flags set.
// Not reachable over HTTP; used by provisioning and tests.
func CreateSuperuser(email, password string) (*models.User, error) {
	user, err := Register(dto.RegisterRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	user.IsStaff = true
	user.IsSuperuser = true
	if err := userRepo.Update(*user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns a bearer token. Every failure
// path returns the same ErrInvalidCredentials so callers cannot tell
// which factor was wrong.
func Login(req dto.LoginRequest) (*dto.TokenResponse, error) {
	if req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := userRepo.FindByEmail(utils.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// GetUser retrieves a user by ID
func GetUser(id uint) (*models.User, error) {
	user, err := userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies a partial profile update to the authenticated user
func UpdateUser(id uint, req dto.UpdateMeRequest) (*models.User, error) {
	user, err := GetUser(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		hashedPassword, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashedPassword
	}

	if err := userRepo.Update(*user); err != nil {
		return nil, err
	}
	return user, nil
}

// GenerateToken generates a new JWT token for a user
func GenerateToken(userID uint, email string) (string, time.Time, error) {
	// Get secret key from environment
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return "", time.Time{}, errors.New("JWT_SECRET not set in environment")
	}

	// Set expiration time
	expiresAt := time.Now().Add(24 * time.Hour)

	// Create claims with expiry time
	claims := dto.TokenClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	// Sign the token with our secret key
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns claims if valid
func ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// ListUsers retrieves all accounts. Staff-only; exposed through the
// admin routes.
func ListUsers() ([]models.User, error) {
	return userRepo.FindAll()
}
