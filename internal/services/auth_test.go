package services

import (
	"context"
	"testing"
	"time"

	"github.com/lsweb-studio/apiserver/internal/store"
	"github.com/lsweb-studio/apiserver/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	users map[string]types.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]types.User)}
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (types.User, error) {
	user, ok := f.users[email]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserStore) Create(ctx context.Context, user types.User) (types.User, error) {
	f.users[user.Email] = user
	return user, nil
}

func (f *fakeUserStore) addUser(t *testing.T, email, password, role string) types.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := types.User{
		ID:           "user-1",
		Email:        email,
		Role:         role,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now(),
	}
	f.users[email] = user
	return user
}

func TestLogin_Success(t *testing.T) {
	users := newFakeUserStore()
	user := users.addUser(t, "admin@lsweb.com", "admin123", "admin")
	svc := NewAuthService(users, "test-secret")

	result, err := svc.Login(context.Background(), "admin@lsweb.com", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, user.ID, result.User.ID)

	claims, err := svc.VerifyToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Role, claims.Role)
	assert.Equal(t, user.ID, claims.UserID)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 23*time.Hour)
	assert.LessOrEqual(t, remaining, 24*time.Hour)
}

func TestLogin_UnknownEmailAndWrongPassword(t *testing.T) {
	users := newFakeUserStore()
	users.addUser(t, "admin@lsweb.com", "admin123", "admin")
	svc := NewAuthService(users, "test-secret")

	_, unknownErr := svc.Login(context.Background(), "nobody@lsweb.com", "admin123")
	_, wrongErr := svc.Login(context.Background(), "admin@lsweb.com", "not-the-password")

	// Both failure modes collapse into one error so callers cannot
	// distinguish unknown accounts from wrong passwords.
	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	users := newFakeUserStore()
	users.addUser(t, "admin@lsweb.com", "admin123", "admin")
	svc := NewAuthService(users, "test-secret")

	result, err := svc.Login(context.Background(), "admin@lsweb.com", "admin123")
	require.NoError(t, err)

	other := NewAuthService(users, "another-secret")
	_, err = other.VerifyToken(result.Token)
	assert.Error(t, err)
}

func TestVerifyToken_Expired(t *testing.T) {
	users := newFakeUserStore()
	users.addUser(t, "admin@lsweb.com", "admin123", "admin")
	svc := NewAuthService(users, "test-secret")
	svc.tokenTTL = -time.Minute

	result, err := svc.Login(context.Background(), "admin@lsweb.com", "admin123")
	require.NoError(t, err)

	_, err = svc.VerifyToken(result.Token)
	assert.Error(t, err)
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users, "test-secret")

	created, err := svc.EnsureAdmin(context.Background(), "admin@lsweb.com", "admin123")
	require.NoError(t, err)
	assert.True(t, created)

	first := users.users["admin@lsweb.com"]
	assert.Equal(t, "admin", first.Role)
	assert.NotEqual(t, "admin123", first.PasswordHash, "password must be stored hashed")

	created, err = svc.EnsureAdmin(context.Background(), "admin@lsweb.com", "admin123")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first, users.users["admin@lsweb.com"], "second call must not alter the account")
	assert.Len(t, users.users, 1)

	result, err := svc.Login(context.Background(), "admin@lsweb.com", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
}
