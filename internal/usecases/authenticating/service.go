package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/yupiter/analytics-api/infrastructure/repository"
	"github.com/yupiter/analytics-api/internal/config"
	"github.com/yupiter/analytics-api/internal/domain"
	"github.com/yupiter/analytics-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 4

type Authenticator interface {
	RegisterUser(user *domain.User) (string, *domain.Session, error)
	LoginUser(email, password string) (string, *domain.Session, error)
	Logout() error
	ListUsers() []*domain.User
	GetUserProfile(userID string) (*domain.User, error)
	CurrentSession() (*domain.Session, bool)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	cfg         *config.Config
}

func NewService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

// RegisterUser creates an account and logs it in right away: the session
// record is persisted and a JWT issued, same as a login. There is no
// activation step. The email must not be taken by another user, compared
// exactly as stored.
func (s *Service) RegisterUser(user *domain.User) (string, *domain.Session, error) {
	if strings.TrimSpace(user.Name) == "" || user.Email == "" || user.PasswordHash == "" {
		return "", nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Name, email and password are required")
	}

	if !strings.Contains(user.Email, "@") {
		return "", nil, NewAuthError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, "Email address is not valid")
	}

	if len(user.PasswordHash) < minPasswordLength {
		return "", nil, NewAuthError(ErrWeakPassword, apiErrors.ErrValidationFailed,
			fmt.Sprintf("Password must have at least %d characters", minPasswordLength))
	}

	if existing := s.userRepo.GetByEmail(user.Email); existing != nil {
		return "", nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email is already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}
	user.PasswordHash = string(hashedPassword)

	if !user.Role.Valid() {
		user.Role = domain.RoleAnalyst
	}

	user, err = s.userRepo.Create(user)
	if err != nil {
		return "", nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Could not create user")
	}

	token, err := generateJWT(user, s.cfg.SecretKey)
	if err != nil {
		return "", nil, NewAuthError(err, apiErrors.ErrInternalServer, "Could not generate authentication token")
	}

	session := domain.NewSession(user)
	if err := s.sessionRepo.Save(session); err != nil {
		return "", nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Could not persist session")
	}

	return token, session, nil
}

// LoginUser checks the credentials, issues a JWT and persists the session
// record. Only one session record exists at a time; a new login overwrites it.
func (s *Service) LoginUser(email, password string) (string, *domain.Session, error) {
	if email == "" || password == "" {
		return "", nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email and password are required")
	}

	user := s.userRepo.GetByEmail(email)
	if user == nil {
		return "", nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Email or password is incorrect")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Email or password is incorrect")
	}

	token, err := generateJWT(user, s.cfg.SecretKey)
	if err != nil {
		return "", nil, NewAuthError(err, apiErrors.ErrInternalServer, "Could not generate authentication token")
	}

	session := domain.NewSession(user)
	if err := s.sessionRepo.Save(session); err != nil {
		return "", nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Could not persist session")
	}

	return token, session, nil
}

// Logout removes the persisted session record. Logging out when no session
// exists is not an error.
func (s *Service) Logout() error {
	return s.sessionRepo.Delete()
}

func (s *Service) ListUsers() []*domain.User {
	users := s.userRepo.List()

	sanitized := make([]*domain.User, 0, len(users))
	for _, user := range users {
		sanitized = append(sanitized, withoutPassword(user))
	}
	return sanitized
}

func (s *Service) GetUserProfile(userID string) (*domain.User, error) {
	user := s.userRepo.GetByID(userID)
	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "User not found")
	}

	return withoutPassword(user), nil
}

// withoutPassword copies the record so the repository's cached user keeps its
// hash.
func withoutPassword(user *domain.User) *domain.User {
	clean := *user
	clean.PasswordHash = ""
	return &clean
}

func (s *Service) CurrentSession() (*domain.Session, bool) {
	return s.sessionRepo.Get()
}

func generateJWT(user *domain.User, secretKey string) (string, error) {
	claims := domain.Claims{
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		UserRole:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
