package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wakuli/retail-analytics-api/infrastructure/repository/mocks"
	"github.com/wakuli/retail-analytics-api/internal/config"
	"github.com/wakuli/retail-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func authTestConfig() *config.Config {
	return &config.Config{SecretKey: "test-secret"}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, authTestConfig())

	activeUser := &domain.User{
		ID:           1,
		Name:         "Sanne",
		Lastname:     "de Boer",
		Email:        "sanne@wakuli.com",
		PasswordHash: hashPassword(t, "Correct#Horse1"),
		Active:       true,
		RoleID:       RoleFinance,
	}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func()
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:     "successful login returns a valid token",
			email:    "Sanne@Wakuli.com",
			password: "Correct#Horse1",
			setup: func() {
				userRepo.EXPECT().GetUserByEmail("sanne@wakuli.com").Return(activeUser, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				require.NoError(t, err)
				require.NotEmpty(t, token)

				claims, err := service.ValidateToken(token)
				require.NoError(t, err)
				assert.Equal(t, 1, claims.UserID)
				assert.Equal(t, RoleFinance, claims.UserRoleID)
			},
		},
		{
			name:     "wrong password",
			email:    "sanne@wakuli.com",
			password: "nope",
			setup: func() {
				userRepo.EXPECT().GetUserByEmail("sanne@wakuli.com").Return(activeUser, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidCredentials)
			},
		},
		{
			name:     "disabled account",
			email:    "sanne@wakuli.com",
			password: "Correct#Horse1",
			setup: func() {
				disabled := *activeUser
				disabled.Active = false
				userRepo.EXPECT().GetUserByEmail("sanne@wakuli.com").Return(&disabled, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUserDisabled)
			},
		},
		{
			name:     "unknown user",
			email:    "nobody@wakuli.com",
			password: "whatever",
			setup: func() {
				userRepo.EXPECT().GetUserByEmail("nobody@wakuli.com").Return(nil, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUserNotFound)
			},
		},
		{
			name:  "missing credentials",
			email: "",
			setup: func() {},
			validate: func(t *testing.T, token string, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.setup()
			token, err := service.LoginUser(test.email, test.password)
			test.validate(t, token, err)
		})
	}
}

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, authTestConfig())

	userRepo.EXPECT().GetUserByEmail("nieuw@wakuli.com").Return(nil, nil)
	userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(user *domain.User) (*domain.User, error) {
		user.ID = 42
		return user, nil
	})

	created, err := service.CreateUser(&domain.User{
		Name:         "Nieuw",
		Lastname:     "Gebruiker",
		Email:        " Nieuw@Wakuli.com ",
		PasswordHash: "Plain#Password1",
	})
	require.NoError(t, err)

	assert.Equal(t, 42, created.ID)
	assert.Equal(t, "nieuw@wakuli.com", created.Email)
	assert.Equal(t, RoleViewer, created.RoleID)
	assert.False(t, created.Active)
	// stored hash must verify against the original password
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("Plain#Password1")))
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, authTestConfig())

	userRepo.EXPECT().GetUserByEmail("sanne@wakuli.com").Return(&domain.User{ID: 1}, nil)

	_, err := service.CreateUser(&domain.User{
		Name:         "Sanne",
		Lastname:     "de Boer",
		Email:        "sanne@wakuli.com",
		PasswordHash: "Plain#Password1",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestGenerateStrongPassword_RequiresAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, authTestConfig())

	userRepo.EXPECT().GetUserByID(2).Return(&domain.User{ID: 2, RoleID: RoleViewer}, nil)

	_, err := service.GenerateStrongPassword(2, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientPrivilege)
}

func TestValidatePasswordStrength(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), authTestConfig())

	assert.NoError(t, service.ValidatePasswordStrength("Str0ng!Pass"))
	assert.Error(t, service.ValidatePasswordStrength("short1!"))
	assert.Error(t, service.ValidatePasswordStrength("alllowercase1!"))
	assert.Error(t, service.ValidatePasswordStrength("NoDigitsHere!"))
	assert.Error(t, service.ValidatePasswordStrength("NoSpecials123"))
}

func TestChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, authTestConfig())

	user := &domain.User{
		ID:           5,
		PasswordHash: hashPassword(t, "Old#Password1"),
		Active:       true,
	}

	userRepo.EXPECT().GetUserByID(5).Return(user, nil)
	userRepo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(updated *domain.User) error {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("New#Password2")))
		return nil
	})

	err := service.ChangePassword(5, "Old#Password1", "New#Password2")
	require.NoError(t, err)
}
