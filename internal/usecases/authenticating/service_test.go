package authenticating

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yupiter/analytics-api/infrastructure/kvstore"
	"github.com/yupiter/analytics-api/infrastructure/repository"
	"github.com/yupiter/analytics-api/internal/config"
	"github.com/yupiter/analytics-api/internal/domain"
)

func newTestService(t *testing.T) Authenticator {
	t.Helper()

	store, err := kvstore.NewFile(afero.NewMemMapFs(), "/data", "yup_")
	require.NoError(t, err)

	cfg := &config.Config{SecretKey: "test-secret"}

	return NewService(
		repository.NewUserRepository(store),
		repository.NewSessionRepository(store),
		cfg,
	)
}

func registerTestUser(t *testing.T, service Authenticator) *domain.Session {
	t.Helper()

	_, session, err := service.RegisterUser(&domain.User{
		Name:         "Aysel Məmmədova",
		Email:        "aysel@yupiter.az",
		PasswordHash: "gizli123",
		Role:         domain.RoleAnalyst,
	})
	require.NoError(t, err)

	return session
}

func TestRegisterUser(t *testing.T) {
	service := newTestService(t)

	token, session, err := service.RegisterUser(&domain.User{
		Name:         "Aysel Məmmədova",
		Email:        "aysel@yupiter.az",
		PasswordHash: "gizli123",
		Role:         domain.RoleAnalyst,
	})
	require.NoError(t, err)

	require.NotNil(t, session)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, domain.RoleAnalyst, session.Role)

	// Registering logs the account in: the token is valid and the session
	// record is persisted, same as after a login.
	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, session.ID, claims.UserID)

	current, ok := service.CurrentSession()
	require.True(t, ok)
	assert.Equal(t, session.ID, current.ID)
}

func TestRegisterUser_Validation(t *testing.T) {
	service := newTestService(t)

	tests := []struct {
		name string
		user *domain.User
	}{
		{
			name: "missing name",
			user: &domain.User{Email: "a@b.az", PasswordHash: "1234"},
		},
		{
			name: "email without at sign",
			user: &domain.User{Name: "A", Email: "not-an-email", PasswordHash: "1234"},
		},
		{
			name: "password too short",
			user: &domain.User{Name: "A", Email: "a@b.az", PasswordHash: "123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := service.RegisterUser(tt.user)

			require.Error(t, err)
			var authErr *AuthError
			assert.True(t, errors.As(err, &authErr))

			// A rejected registration must not leave a session behind
			_, ok := service.CurrentSession()
			assert.False(t, ok)
		})
	}
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	service := newTestService(t)
	registerTestUser(t, service)

	_, _, err := service.RegisterUser(&domain.User{
		Name:         "Another",
		Email:        "aysel@yupiter.az",
		PasswordHash: "other123",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUserAlreadyExists))
}

func TestRegisterUser_UnknownRoleFallsBackToAnalyst(t *testing.T) {
	service := newTestService(t)

	_, session, err := service.RegisterUser(&domain.User{
		Name:         "Rauf",
		Email:        "rauf@yupiter.az",
		PasswordHash: "parol1",
		Role:         domain.Role("Qonaq"),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RoleAnalyst, session.Role)
}

func TestLoginUser(t *testing.T) {
	service := newTestService(t)
	registered := registerTestUser(t, service)

	token, session, err := service.LoginUser("aysel@yupiter.az", "gizli123")
	require.NoError(t, err)

	assert.NotEmpty(t, token)
	require.NotNil(t, session)
	assert.Equal(t, registered.ID, session.ID)

	// The token round-trips through validation
	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
	assert.Equal(t, domain.RoleAnalyst, claims.UserRole)

	// And the session record is persisted
	current, ok := service.CurrentSession()
	require.True(t, ok)
	assert.Equal(t, registered.ID, current.ID)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	service := newTestService(t)
	registerTestUser(t, service)

	_, _, err := service.LoginUser("aysel@yupiter.az", "wrong")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestLoginUser_UnknownEmail(t *testing.T) {
	service := newTestService(t)

	_, _, err := service.LoginUser("nobody@yupiter.az", "gizli123")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestLogout(t *testing.T) {
	service := newTestService(t)
	registerTestUser(t, service)

	_, _, err := service.LoginUser("aysel@yupiter.az", "gizli123")
	require.NoError(t, err)

	require.NoError(t, service.Logout())

	_, ok := service.CurrentSession()
	assert.False(t, ok)

	// Logging out twice is fine
	assert.NoError(t, service.Logout())
}

func TestListUsers_HidesPasswordHashes(t *testing.T) {
	service := newTestService(t)
	registerTestUser(t, service)

	users := service.ListUsers()

	require.Len(t, users, 1)
	assert.Empty(t, users[0].PasswordHash)
}

func TestValidateToken_Garbage(t *testing.T) {
	service := newTestService(t)

	_, err := service.ValidateToken("not.a.token")
	assert.Error(t, err)
}
