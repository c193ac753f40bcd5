package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/shopfleet/shopfleet/internal/auth"
	"github.com/shopfleet/shopfleet/internal/user/domain"
	"github.com/shopfleet/shopfleet/internal/user/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongOldPassword   = errors.New("old password is incorrect")
)

type UserService struct {
	repo   repository.UserRepository
	issuer *auth.TokenIssuer
}

func NewUserService(repo repository.UserRepository, issuer *auth.TokenIssuer) *UserService {
	return &UserService{repo: repo, issuer: issuer}
}

// Login verifies credentials and returns a signed access token.
func (s *UserService) Login(username, password string) (string, error) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return s.issuer.Issue(user.ID)
}

// Register creates a user with the CUSTOMER role and a Name seeded from the
// username, then returns a token for the fresh account.
func (s *UserService) Register(username, password, email, phoneNumber string) (string, error) {
	taken, err := s.repo.UsernameExists(username)
	if err != nil {
		return "", err
	}
	if taken {
		return "", ErrUsernameTaken
	}
	taken, err = s.repo.EmailExists(email)
	if err != nil {
		return "", err
	}
	if taken {
		return "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	name := &domain.Name{LastName: username}
	if err := s.repo.CreateName(name); err != nil {
		return "", err
	}
	role, err := s.repo.GetOrCreateRole(domain.RoleCustomer)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		PhoneNumber:  phoneNumber,
		NameID:       name.ID,
		Name:         *name,
		RoleID:       role.ID,
		Role:         *role,
	}
	if err := s.repo.Create(user); err != nil {
		return "", err
	}
	return s.issuer.Issue(user.ID)
}

func (s *UserService) GetByID(id uint64) (*domain.User, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

type UpdateInfo struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	WardID      *uint64
	Detail      *string
}

// UpdateUser applies a partial profile update. A ward+detail pair replaces
// the user's address.
func (s *UserService) UpdateUser(id uint64, update UpdateInfo) (*domain.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if update.FirstName != nil {
		user.Name.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.Name.LastName = *update.LastName
	}
	if update.PhoneNumber != nil {
		user.PhoneNumber = *update.PhoneNumber
	}
	if update.WardID != nil && update.Detail != nil {
		address := &domain.Address{Detail: *update.Detail, WardID: *update.WardID}
		if err := s.repo.CreateAddress(address); err != nil {
			return nil, err
		}
		user.AddressID = &address.ID
		user.Address = address
	}
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ChangePassword(id uint64, oldPassword, newPassword string) error {
	user, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return ErrWrongOldPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	return s.repo.Update(user)
}

// IdentityFor builds the cross-service identity payload, including the
// capability set derived from the user's role.
func IdentityFor(user *domain.User) auth.Identity {
	return auth.Identity{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		PhoneNumber:  user.PhoneNumber,
		Role:         auth.Role{ID: user.Role.ID, Name: user.Role.Name},
		Capabilities: auth.CapabilitiesForRole(user.Role.Name),
	}
}
