// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// expiryLeeway treats tokens this close to expiry as already expired.
const expiryLeeway = 30 * time.Second

// jwtTokenStore keeps the shop-issued access token in the durable store.
// Signatures are never checked here; the shop API does that on every call.
type jwtTokenStore struct {
	store  repository.DurableStore
	parser *jwt.Parser
	now    func() time.Time
	logger *slog.Logger

	mu     sync.RWMutex
	token  string
	claims *service.SessionClaims
	loaded bool
}

// NewJWTTokenStore is the constructor for jwtTokenStore.
func NewJWTTokenStore(store repository.DurableStore, logger *slog.Logger) service.TokenStore {
	return &jwtTokenStore{
		store:  store,
		parser: jwt.NewParser(),
		now:    time.Now,
		logger: logger,
	}
}

// Save parses token and persists it.
func (s *jwtTokenStore) Save(ctx context.Context, token string) (*service.SessionClaims, error) {
	token = strings.TrimSpace(token)

	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}
	if s.expired(claims) {
		return nil, domainerrors.ErrSessionExpired
	}

	if err := repository.SaveJSON(ctx, s.store, repository.SlotAccessToken, token); err != nil {
		return nil, domainerrors.NewStoreError(err, repository.SlotAccessToken)
	}

	s.mu.Lock()
	s.token, s.claims, s.loaded = token, claims, true
	s.mu.Unlock()

	s.logger.Info("Session token stored", slog.Any("user_id", claims.UserID))

	return cloneClaims(claims), nil
}

// AccessToken returns the stored token while it is still valid.
func (s *jwtTokenStore) AccessToken(ctx context.Context) (string, error) {
	token, _, err := s.current(ctx)

	return token, err
}

// Claims returns the claims of the stored token while it is still valid.
func (s *jwtTokenStore) Claims(ctx context.Context) (*service.SessionClaims, error) {
	_, claims, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	return cloneClaims(claims), nil
}

// Clear removes the stored token.
func (s *jwtTokenStore) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, repository.SlotAccessToken); err != nil {
		return domainerrors.NewStoreError(err, repository.SlotAccessToken)
	}

	s.mu.Lock()
	s.token, s.claims, s.loaded = "", nil, true
	s.mu.Unlock()

	return nil
}

func (s *jwtTokenStore) current(ctx context.Context) (string, *service.SessionClaims, error) {
	if err := s.load(ctx); err != nil {
		return "", nil, err
	}

	s.mu.RLock()
	token, claims := s.token, s.claims
	s.mu.RUnlock()

	if token == "" {
		return "", nil, domainerrors.ErrSessionRequired
	}
	if s.expired(claims) {
		return "", nil, domainerrors.ErrSessionExpired
	}

	return token, claims, nil
}

// load hydrates the cache from the durable store once.
func (s *jwtTokenStore) load(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}

	token, found, err := repository.LoadJSON[string](ctx, s.store, repository.SlotAccessToken)
	if err != nil {
		return domainerrors.NewStoreError(err, repository.SlotAccessToken)
	}

	var claims *service.SessionClaims
	if found && token != "" {
		claims, err = s.parse(token)
		if err != nil {
			s.logger.Warn("Discarding unreadable stored token", slog.Any("error", err))
			token = ""
		}
	}

	s.mu.Lock()
	if !s.loaded {
		s.token, s.claims, s.loaded = token, claims, true
	}
	s.mu.Unlock()

	return nil
}

func (s *jwtTokenStore) parse(token string) (*service.SessionClaims, error) {
	if token == "" {
		return nil, domainerrors.ErrSessionTokenInvalid.WithDetails("token is empty")
	}

	claims := &service.SessionClaims{}
	if _, _, err := s.parser.ParseUnverified(token, claims); err != nil {
		return nil, domainerrors.ErrSessionTokenInvalid.WithDetails(errors.Wrap(err, "parse token").Error())
	}

	return claims, nil
}

func (s *jwtTokenStore) expired(claims *service.SessionClaims) bool {
	if claims == nil || claims.ExpiresAt == nil {
		return false
	}

	return !s.now().Add(expiryLeeway).Before(claims.ExpiresAt.Time)
}

func cloneClaims(claims *service.SessionClaims) *service.SessionClaims {
	out := *claims

	return &out
}
