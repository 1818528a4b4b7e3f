package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/golang-jwt/jwt/v5"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func signTestToken(t *testing.T, userID any, expiresAt time.Time) string {
	t.Helper()

	claims := service.SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(testNow.Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("shop-secret"))
	require.NoError(t, err)

	return token
}

func createTestTokenStore(t *testing.T) (*jwtTokenStore, *mockRepo.MockDurableStore) {
	t.Helper()

	store := mockRepo.NewMockDurableStore(t)
	tokens := NewJWTTokenStore(store, slog.New(slog.NewTextHandler(io.Discard, nil))).(*jwtTokenStore)
	tokens.now = func() time.Time { return testNow }

	return tokens, store
}

func TestTokenStore_SaveAndRead(t *testing.T) {
	ctx := context.Background()
	tokens, store := createTestTokenStore(t)
	token := signTestToken(t, float64(12), testNow.Add(time.Hour))

	store.EXPECT().Set(mock.Anything, repository.SlotAccessToken, mock.Anything).Return(nil).Once()

	claims, err := tokens.Save(ctx, "  "+token+" ")
	require.NoError(t, err)
	assert.Equal(t, float64(12), claims.UserID)

	got, err := tokens.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, got)
}

func TestTokenStore_SaveRejectsGarbage(t *testing.T) {
	tokens, _ := createTestTokenStore(t)

	_, err := tokens.Save(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, errors.ErrSessionTokenInvalid)

	_, err = tokens.Save(context.Background(), "")
	assert.ErrorIs(t, err, errors.ErrSessionTokenInvalid)
}

func TestTokenStore_SaveRejectsExpired(t *testing.T) {
	tokens, _ := createTestTokenStore(t)
	token := signTestToken(t, 1, testNow.Add(-time.Minute))

	_, err := tokens.Save(context.Background(), token)
	assert.ErrorIs(t, err, errors.ErrSessionExpired)
}

func TestTokenStore_HydratesFromStore(t *testing.T) {
	ctx := context.Background()
	tokens, store := createTestTokenStore(t)
	token := signTestToken(t, "u-1", testNow.Add(time.Hour))

	store.EXPECT().Get(mock.Anything, repository.SlotAccessToken).Return([]byte(`"`+token+`"`), nil).Once()

	claims, err := tokens.Claims(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)

	// Cached after the first read.
	_, err = tokens.AccessToken(ctx)
	require.NoError(t, err)
}

func TestTokenStore_NoSession(t *testing.T) {
	tokens, store := createTestTokenStore(t)

	store.EXPECT().Get(mock.Anything, repository.SlotAccessToken).Return(nil, repository.ErrKeyNotFound).Once()

	_, err := tokens.AccessToken(context.Background())
	assert.ErrorIs(t, err, errors.ErrSessionRequired)
}

func TestTokenStore_ExpiresWhileStored(t *testing.T) {
	ctx := context.Background()
	tokens, store := createTestTokenStore(t)
	token := signTestToken(t, 3, testNow.Add(10*time.Minute))

	store.EXPECT().Get(mock.Anything, repository.SlotAccessToken).Return([]byte(`"`+token+`"`), nil).Once()

	_, err := tokens.AccessToken(ctx)
	require.NoError(t, err)

	tokens.now = func() time.Time { return testNow.Add(time.Hour) }
	_, err = tokens.AccessToken(ctx)
	assert.ErrorIs(t, err, errors.ErrSessionExpired)
}

func TestTokenStore_Clear(t *testing.T) {
	ctx := context.Background()
	tokens, store := createTestTokenStore(t)

	store.EXPECT().Delete(mock.Anything, repository.SlotAccessToken).Return(nil).Once()

	require.NoError(t, tokens.Clear(ctx))

	_, err := tokens.AccessToken(ctx)
	assert.ErrorIs(t, err, errors.ErrSessionRequired)
}

func TestTokenStore_StoreFailure(t *testing.T) {
	tokens, store := createTestTokenStore(t)
	token := signTestToken(t, 1, testNow.Add(time.Hour))

	store.EXPECT().Set(mock.Anything, repository.SlotAccessToken, mock.Anything).Return(pkgerrors.New("disk full")).Once()

	_, err := tokens.Save(context.Background(), token)
	require.Error(t, err)

	_, ok := err.(*errors.StoreError)
	assert.True(t, ok)
}
