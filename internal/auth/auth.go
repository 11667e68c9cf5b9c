package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"marketplace-auction/internal/auctionerrors"
	model "marketplace-auction/internal/models"
)

// Authorizer proves that the current call is made by the given address.
// Every state-changing service operation checks the acting principal
// through this capability before touching storage.
type Authorizer interface {
	RequireAuth(ctx context.Context, addr model.Address) error
}

type contextKey struct{}

// WithCaller returns a context carrying the authenticated caller address.
func WithCaller(ctx context.Context, addr model.Address) context.Context {
	return context.WithValue(ctx, contextKey{}, addr)
}

// CallerFromContext extracts the authenticated caller address, if any.
func CallerFromContext(ctx context.Context) (model.Address, bool) {
	addr, ok := ctx.Value(contextKey{}).(model.Address)
	return addr, ok
}

// ContextAuthorizer authorizes the address the transport middleware
// established on the call context. It is the production implementation.
type ContextAuthorizer struct{}

// RequireAuth succeeds only when the context caller equals addr.
func (ContextAuthorizer) RequireAuth(ctx context.Context, addr model.Address) error {
	caller, ok := CallerFromContext(ctx)
	if !ok {
		return fmt.Errorf("no authenticated caller: %w", auctionerrors.ErrUnauthorized)
	}
	if caller != addr {
		return fmt.Errorf("caller %s cannot act as %s: %w", caller, addr, auctionerrors.ErrUnauthorized)
	}
	return nil
}

// StaticAuthorizer authorizes a fixed set of addresses regardless of the
// context. Test double.
type StaticAuthorizer struct {
	allowed map[model.Address]bool
}

// NewStaticAuthorizer creates an authorizer that accepts exactly addrs.
func NewStaticAuthorizer(addrs ...model.Address) *StaticAuthorizer {
	allowed := make(map[model.Address]bool, len(addrs))
	for _, addr := range addrs {
		allowed[addr] = true
	}
	return &StaticAuthorizer{allowed: allowed}
}

// RequireAuth succeeds when addr is in the allowed set.
func (a *StaticAuthorizer) RequireAuth(_ context.Context, addr model.Address) error {
	if !a.allowed[addr] {
		return fmt.Errorf("address %s not allowed: %w", addr, auctionerrors.ErrUnauthorized)
	}
	return nil
}

// AllowAll authorizes every address. Test double for flows where caller
// identity is established per-request.
type AllowAll struct{}

// RequireAuth always succeeds.
func (AllowAll) RequireAuth(context.Context, model.Address) error { return nil }

// TokenManager issues and verifies the HS256 bearer tokens callers use to
// prove control of an address. The token subject is the address.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a token manager with the given signing secret
// and token lifetime.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token proving control of addr.
func (m *TokenManager) Issue(addr model.Address) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   string(addr),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token for %s: %w", addr, err)
	}
	return signed, nil
}

// Verify validates a bearer token and returns the address it proves.
func (m *TokenManager) Verify(tokenStr string) (model.Address, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("verify token: %w: %v", auctionerrors.ErrUnauthorized, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token without subject: %w", auctionerrors.ErrUnauthorized)
	}
	return model.Address(claims.Subject), nil
}
