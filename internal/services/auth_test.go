package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"nexocarreira/career-coach/internal/models"
	"nexocarreira/career-coach/internal/repositories"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*models.User, error) {
	for _, user := range r.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func staticSigner(userID, email string, ttl time.Duration) (string, error) {
	return "token-for-" + email, nil
}

func TestRegister_CreatesUserWithHashedPassword(t *testing.T) {
	repo := newFakeUserRepo()
	auth := NewAuthService(repo, staticSigner, time.Hour)

	resp, err := auth.Register("Maria", "  Maria@Example.COM ", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "token-for-maria@example.com", resp.Token)
	assert.Equal(t, "Maria", resp.User.Name)
	assert.Equal(t, "maria@example.com", resp.User.Email)

	stored := repo.byEmail["maria@example.com"]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword(stored.PasswordHash, []byte("secret123")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	auth := NewAuthService(repo, staticSigner, time.Hour)

	_, err := auth.Register("Maria", "maria@example.com", "secret123")
	require.NoError(t, err)

	_, err = auth.Register("Other Maria", "maria@example.com", "different456")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_ShortPasswordRejected(t *testing.T) {
	auth := NewAuthService(newFakeUserRepo(), staticSigner, time.Hour)

	_, err := auth.Register("Maria", "maria@example.com", "12345")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_RoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	auth := NewAuthService(repo, staticSigner, time.Hour)

	_, err := auth.Register("Maria", "maria@example.com", "secret123")
	require.NoError(t, err)

	resp, err := auth.Login("MARIA@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	auth := NewAuthService(repo, staticSigner, time.Hour)

	_, err := auth.Register("Maria", "maria@example.com", "secret123")
	require.NoError(t, err)

	_, err = auth.Login("maria@example.com", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	auth := NewAuthService(newFakeUserRepo(), staticSigner, time.Hour)

	_, err := auth.Login("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
