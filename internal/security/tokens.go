package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"log-platform/usersvc/internal/user/domain"
)

var (
	// ErrInvalidToken is returned when a token is malformed, has a wrong
	// signature, wrong issuer/audience, or is missing a required claim.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when a structurally valid token is past expiry.
	ErrExpiredToken = errors.New("expired token")
)

// RoleUser is the role claim minted on access tokens issued by this service.
const RoleUser = "user"

// AccessClaims holds JWT claims for the access token. SessionID binds the
// token to the session it was minted under.
type AccessClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
	Role      string `json:"role,omitempty"`
}

// RefreshClaims holds JWT claims for the refresh token. The session binding
// (not a user binding) is what enables single-session revocation.
type RefreshClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}

// IdentityClaims holds JWT claims for the identity token: the access-token
// temporal claims plus a profile denormalization for front-end display.
// Identity tokens are never used for authorization.
type IdentityClaims struct {
	jwt.RegisteredClaims
	UserName string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// LoginTokens is the triple returned on a successful login.
type LoginTokens struct {
	Identity string
	Access   string
	Refresh  string
}

// TokenProvider mints and verifies HS256 tokens with the single process-wide
// signing key. Verification of this service's own tokens uses the same
// symmetric key; foreign issuers go through the interceptor's key cache.
type TokenProvider struct {
	key        []byte
	issuer     string
	audience   string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewTokenProvider returns a TokenProvider signing with key (HS256).
// issuer and audience are minted on every token and validated on verify.
func NewTokenProvider(key []byte, issuer, audience string, accessTTL, refreshTTL time.Duration) *TokenProvider {
	return &TokenProvider{
		key:        key,
		issuer:     issuer,
		audience:   audience,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// WithClock returns a copy of the provider that reads time from now.
// Injected time source for tests; production code uses the default.
func (p *TokenProvider) WithClock(now func() time.Time) *TokenProvider {
	cp := *p
	cp.now = now
	return &cp
}

func (p *TokenProvider) registered(subject string, expiresAt time.Time, now time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    p.issuer,
		Audience:  jwt.ClaimStrings{p.audience},
		NotBefore: jwt.NewNumericDate(now),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
}

func (p *TokenProvider) sign(claims jwt.Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.key)
}

// MintLoginTokens mints the identity, access, and refresh tokens returned on
// login. All three share nbf = iat = now; identity and access expire together,
// the refresh token later. Pure construction, no side effects.
func (p *TokenProvider) MintLoginTokens(u *domain.User, sessionID string) (*LoginTokens, error) {
	now := p.now().UTC()
	accessExp := now.Add(p.accessTTL)

	identity, err := p.sign(IdentityClaims{
		RegisteredClaims: p.registered(u.ID, accessExp, now),
		UserName:         u.UserName,
		FullName:         u.FullName,
		Email:            u.Email,
	})
	if err != nil {
		return nil, err
	}
	access, refresh, err := p.mintPair(u.ID, sessionID, now)
	if err != nil {
		return nil, err
	}
	return &LoginTokens{Identity: identity, Access: access, Refresh: refresh}, nil
}

// MintRotatedTokens mints a fresh access/refresh pair bound to the same
// session, for refresh rotation.
func (p *TokenProvider) MintRotatedTokens(subject, sessionID string) (access, refresh string, err error) {
	return p.mintPair(subject, sessionID, p.now().UTC())
}

func (p *TokenProvider) mintPair(subject, sessionID string, now time.Time) (access, refresh string, err error) {
	access, err = p.sign(AccessClaims{
		RegisteredClaims: p.registered(subject, now.Add(p.accessTTL), now),
		SessionID:        sessionID,
		Role:             RoleUser,
	})
	if err != nil {
		return "", "", err
	}
	refresh, err = p.sign(RefreshClaims{
		RegisteredClaims: p.registered(subject, now.Add(p.refreshTTL), now),
		SessionID:        sessionID,
	})
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// VerifyRefresh parses and validates a refresh token (signature, issuer,
// audience, required exp). Returns ErrExpiredToken for a structurally valid
// but expired token and ErrInvalidToken for every other failure.
func (p *TokenProvider) VerifyRefresh(raw string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := p.verify(raw, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// VerifyAccess parses and validates an access token the same way.
func (p *TokenProvider) VerifyAccess(raw string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := p.verify(raw, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (p *TokenProvider) verify(raw string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (interface{}, error) { return p.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(p.issuer),
		jwt.WithAudience(p.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrExpiredToken
		}
		return ErrInvalidToken
	}
	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}

// VerifyAccessWithKey validates an access token against an explicit
// verification key, issuer, and audience. The interceptor uses it with keys
// resolved from its issuer cache, so tokens from peer issuers verify the same
// way as this service's own.
func VerifyAccessWithKey(raw string, key []byte, issuer, audience string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (interface{}, error) { return key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ParseUnverifiedClaims reads a token's claim set without verifying the
// signature. Only for the cheap routing phase (issuer lookup, nbf gate);
// callers must follow up with full verification before trusting anything.
func ParseUnverifiedClaims(raw string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
