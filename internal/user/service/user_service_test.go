package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopfleet/shopfleet/internal/auth"
	"github.com/shopfleet/shopfleet/internal/user/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint64) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(username string) (*domain.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UsernameExists(username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) EmailExists(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Update(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) CreateName(name *domain.Name) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockUserRepository) GetOrCreateRole(name string) (*domain.Role, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}

func (m *MockUserRepository) CreateAddress(address *domain.Address) error {
	args := m.Called(address)
	return args.Error(0)
}

func testIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer("test-secret", time.Hour)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestUserService_Login(t *testing.T) {
	t.Run("valid credentials return a token for the user", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByUsername", "alice").Return(&domain.User{
			ID:           7,
			Username:     "alice",
			PasswordHash: hashOf(t, "s3cret"),
		}, nil)

		issuer := testIssuer()
		svc := NewUserService(repo, issuer)
		token, err := svc.Login("alice", "s3cret")

		assert.NoError(t, err)
		id, err := issuer.UserID(token)
		assert.NoError(t, err)
		assert.Equal(t, uint64(7), id)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByUsername", "alice").Return(&domain.User{
			ID:           7,
			PasswordHash: hashOf(t, "s3cret"),
		}, nil)

		svc := NewUserService(repo, testIssuer())
		_, err := svc.Login("alice", "nope")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username gets the same error", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByUsername", "ghost").Return(nil, nil)

		svc := NewUserService(repo, testIssuer())
		_, err := svc.Login("ghost", "s3cret")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserService_Register(t *testing.T) {
	t.Run("creates a customer and returns a token", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("UsernameExists", "bob").Return(false, nil)
		repo.On("EmailExists", "bob@example.com").Return(false, nil)
		repo.On("CreateName", mock.MatchedBy(func(n *domain.Name) bool {
			return n.LastName == "bob"
		})).Return(nil).Run(func(args mock.Arguments) {
			args.Get(0).(*domain.Name).ID = 1
		})
		repo.On("GetOrCreateRole", domain.RoleCustomer).Return(&domain.Role{ID: 2, Name: domain.RoleCustomer}, nil)
		repo.On("Create", mock.MatchedBy(func(u *domain.User) bool {
			return u.Username == "bob" && u.RoleID == 2 && u.PasswordHash != "pw"
		})).Return(nil).Run(func(args mock.Arguments) {
			args.Get(0).(*domain.User).ID = 9
		})

		svc := NewUserService(repo, testIssuer())
		token, err := svc.Register("bob", "pw", "bob@example.com", "0901234567")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate username", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("UsernameExists", "bob").Return(true, nil)

		svc := NewUserService(repo, testIssuer())
		_, err := svc.Register("bob", "pw", "bob@example.com", "0901234567")

		assert.ErrorIs(t, err, ErrUsernameTaken)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("UsernameExists", "bob").Return(false, nil)
		repo.On("EmailExists", "bob@example.com").Return(true, nil)

		svc := NewUserService(repo, testIssuer())
		_, err := svc.Register("bob", "pw", "bob@example.com", "0901234567")

		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	t.Run("verifies the old password first", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", uint64(7)).Return(&domain.User{
			ID:           7,
			PasswordHash: hashOf(t, "old"),
		}, nil)

		svc := NewUserService(repo, testIssuer())
		err := svc.ChangePassword(7, "wrong", "new")

		assert.ErrorIs(t, err, ErrWrongOldPassword)
		repo.AssertNotCalled(t, "Update", mock.Anything)
	})

	t.Run("stores a new hash", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", uint64(7)).Return(&domain.User{
			ID:           7,
			PasswordHash: hashOf(t, "old"),
		}, nil)
		repo.On("Update", mock.MatchedBy(func(u *domain.User) bool {
			return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("new")) == nil
		})).Return(nil)

		svc := NewUserService(repo, testIssuer())
		err := svc.ChangePassword(7, "old", "new")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	t.Run("ward and detail together replace the address", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", uint64(7)).Return(&domain.User{ID: 7}, nil)
		repo.On("CreateAddress", mock.MatchedBy(func(a *domain.Address) bool {
			return a.WardID == 3 && a.Detail == "12 Main St"
		})).Return(nil).Run(func(args mock.Arguments) {
			args.Get(0).(*domain.Address).ID = 5
		})
		repo.On("Update", mock.Anything).Return(nil)

		wardID := uint64(3)
		detail := "12 Main St"
		svc := NewUserService(repo, testIssuer())
		user, err := svc.UpdateUser(7, UpdateInfo{WardID: &wardID, Detail: &detail})

		assert.NoError(t, err)
		assert.NotNil(t, user.AddressID)
		assert.Equal(t, uint64(5), *user.AddressID)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", uint64(404)).Return(nil, nil)

		svc := NewUserService(repo, testIssuer())
		_, err := svc.UpdateUser(404, UpdateInfo{})

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestIdentityFor(t *testing.T) {
	adminUser := &domain.User{
		ID:       1,
		Username: "root",
		Role:     domain.Role{ID: 1, Name: domain.RoleAdmin},
	}
	identity := IdentityFor(adminUser)
	assert.True(t, identity.Can(auth.CapManageOrders))
	assert.True(t, identity.Can(auth.CapManageProducts))

	customerUser := &domain.User{
		ID:       2,
		Username: "alice",
		Role:     domain.Role{ID: 2, Name: domain.RoleCustomer},
	}
	identity = IdentityFor(customerUser)
	assert.False(t, identity.Can(auth.CapManageOrders))
}
