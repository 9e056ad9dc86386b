package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockRepository struct {
	users map[string]*User
}

func newMockRepository() *mockRepository {
	return &mockRepository{users: map[string]*User{}}
}

func (m *mockRepository) createUser(user *User) error {
	user.ID = "user-" + user.Email
	m.users[user.ID] = user
	return nil
}

func (m *mockRepository) getUserByEmail(email string) (*User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) getUserByID(id string) (*User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) updateUserProfile(userID, name, email string) error {
	u, ok := m.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	u.Name = name
	u.Email = email
	return nil
}

func (m *mockRepository) updateUserPasswordAndHashToken(userID, newPasswordHash, newHashToken string) error {
	u, ok := m.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	u.PasswordHash = newPasswordHash
	u.HashToken = newHashToken
	return nil
}

func TestRegister_Success(t *testing.T) {
	repo := newMockRepository()
	service := NewUserService(repo)

	user, err := service.Register("Ana Silva", "ana@example.com", "strong-password")
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Ana Silva", user.Name)
	assert.NotEmpty(t, user.HashToken)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("strong-password")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMockRepository()
	service := NewUserService(repo)

	_, err := service.Register("Ana Silva", "ana@example.com", "strong-password")
	require.NoError(t, err)

	_, err = service.Register("Outra Ana", "ana@example.com", "other-password")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestRegister_InvalidInput(t *testing.T) {
	service := NewUserService(newMockRepository())

	_, err := service.Register("Ana", "not-an-email", "strong-password")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = service.Register("A", "ana@example.com", "strong-password")
	assert.ErrorIs(t, err, ErrNameLength)

	_, err = service.Register("Ana Silva", "ana@example.com", "short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestChangePassword_RotatesHashToken(t *testing.T) {
	repo := newMockRepository()
	service := NewUserService(repo)

	user, err := service.Register("Ana Silva", "ana@example.com", "strong-password")
	require.NoError(t, err)
	oldToken := user.HashToken

	require.NoError(t, service.ChangePasswordWithOldPassword(user.ID, "strong-password", "new-password-42"))

	updated, err := service.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, oldToken, updated.HashToken)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("new-password-42")))
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	repo := newMockRepository()
	service := NewUserService(repo)

	user, err := service.Register("Ana Silva", "ana@example.com", "strong-password")
	require.NoError(t, err)

	err = service.ChangePasswordWithOldPassword(user.ID, "wrong-password", "new-password-42")
	assert.ErrorIs(t, err, ErrInvalidOldPassword)
}

func TestUpdateProfile_EmailConflict(t *testing.T) {
	repo := newMockRepository()
	service := NewUserService(repo)

	first, err := service.Register("Ana Silva", "ana@example.com", "strong-password")
	require.NoError(t, err)
	_, err = service.Register("Bruno Costa", "bruno@example.com", "strong-password")
	require.NoError(t, err)

	_, err = service.UpdateProfile(first.ID, "", "bruno@example.com")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	updated, err := service.UpdateProfile(first.ID, "Ana Souza", "")
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", updated.Name)
	assert.Equal(t, "ana@example.com", updated.Email)
}
