package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"log-platform/usersvc/internal/directory"
	"log-platform/usersvc/internal/security"
	sessiondomain "log-platform/usersvc/internal/session/domain"
	userdomain "log-platform/usersvc/internal/user/domain"
	userrepo "log-platform/usersvc/internal/user/repository"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*userdomain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*userdomain.User{}}
}

func (r *fakeUserRepo) matches(u *userdomain.User, f directory.Filters) bool {
	for col, val := range f {
		switch col {
		case "user_id":
			if u.ID != val {
				return false
			}
		case "user_name":
			if u.UserName != val {
				return false
			}
		case "email":
			if u.Email != val {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func (r *fakeUserRepo) GetUser(ctx context.Context, f directory.Filters) (*userdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out *userdomain.User
	for _, u := range r.users {
		if r.matches(u, f) {
			if out != nil {
				return nil, directory.ErrAmbiguous
			}
			cp := *u
			out = &cp
		}
	}
	if out == nil {
		return nil, directory.ErrNotFound
	}
	return out, nil
}

func (r *fakeUserRepo) Upsert(ctx context.Context, u *userdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, existing := range r.users {
		if existing.Email == u.Email && id != u.ID {
			return userrepo.ErrDuplicateEmail
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, userID)
	return nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*sessiondomain.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*sessiondomain.Session{}}
}

func (r *fakeSessionRepo) GetSession(ctx context.Context, f directory.Filters) (*sessiondomain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out *sessiondomain.Session
	for _, s := range r.sessions {
		if id, ok := f["session_id"]; ok && s.ID != id {
			continue
		}
		if uid, ok := f["user_id"]; ok && s.UserID != uid {
			continue
		}
		if out != nil {
			return nil, directory.ErrAmbiguous
		}
		cp := *s
		out = &cp
	}
	if out == nil {
		return nil, directory.ErrNotFound
	}
	return out, nil
}

func (r *fakeSessionRepo) Upsert(ctx context.Context, s *sessiondomain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.sessions[s.ID] = &cp
	return nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}

func (r *fakeSessionRepo) DeleteByUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.sessions {
		if s.UserID == userID {
			delete(r.sessions, id)
		}
	}
	return nil
}

func (r *fakeSessionRepo) ConsumeRefresh(ctx context.Context, sessionID string, exp int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[sessionID]
	if !ok || s.LatestRefreshExp >= exp {
		return false, nil
	}
	s.LatestRefreshExp = exp
	return true, nil
}

type fakeLimiter struct {
	allow bool
	keys  []string
}

func (l *fakeLimiter) Allow(ctx context.Context, key string) (bool, error) {
	l.keys = append(l.keys, key)
	return l.allow, nil
}

// testClock is a mutable time source so tokens minted across a test carry
// distinct expiries.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestService(t *testing.T) (*AuthService, *fakeUserRepo, *fakeSessionRepo, *testClock) {
	t.Helper()
	clock := &testClock{now: time.Now()}
	provider := security.NewTestTokenProvider().WithClock(clock.Now)
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	svc := NewAuthService(users, sessions, provider, nil, nil)
	return svc, users, sessions, clock
}

func signUpAlice(t *testing.T, svc *AuthService) {
	t.Helper()
	err := svc.SignUp(context.Background(), SignUpParams{
		UserName:       "alice",
		FullName:       "Alice Example",
		Email:          "alice@example.com",
		HashedPassword: "client-hash",
	})
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
}

func TestSignUp_StoresSecondHash(t *testing.T) {
	svc, users, _, _ := newTestService(t)
	signUpAlice(t, svc)

	u, err := users.GetUser(context.Background(), directory.Filters{"email": "alice@example.com"})
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if u.Disabled {
		t.Error("new account is disabled")
	}
	if u.DoubleHashedPassword == "client-hash" {
		t.Error("stored hash equals supplied hash; second hash not applied")
	}
	if u.DoubleHashedPassword != security.DoubleHash("client-hash") {
		t.Error("stored hash is not the second hash of the supplied value")
	}
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	signUpAlice(t, svc)

	err := svc.SignUp(context.Background(), SignUpParams{
		UserName:       "alice2",
		Email:          "alice@example.com",
		HashedPassword: "other-hash",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLogin_Success(t *testing.T) {
	svc, _, sessions, _ := newTestService(t)
	signUpAlice(t, svc)

	tokens, err := svc.Login(context.Background(), "alice@example.com", "client-hash", "10.0.0.1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tokens.Identity == "" || tokens.Access == "" || tokens.Refresh == "" {
		t.Fatal("incomplete token triple")
	}

	sess, err := sessions.GetSession(context.Background(), directory.Filters{"user_id": firstUserID(t, svc)})
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if sess.LatestRefreshExp != 0 {
		t.Errorf("fresh session watermark = %d, want 0", sess.LatestRefreshExp)
	}
	if sess.DeviceContext != "10.0.0.1" {
		t.Errorf("device context = %q", sess.DeviceContext)
	}
}

func firstUserID(t *testing.T, svc *AuthService) string {
	t.Helper()
	u, err := svc.users.GetUser(context.Background(), directory.Filters{"email": "alice@example.com"})
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	return u.ID
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "nobody@example.com", "client-hash", "")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	signUpAlice(t, svc)

	_, err := svc.Login(context.Background(), "alice@example.com", "wrong-hash", "")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_DisabledAccount(t *testing.T) {
	svc, users, _, _ := newTestService(t)
	signUpAlice(t, svc)

	u, _ := users.GetUser(context.Background(), directory.Filters{"email": "alice@example.com"})
	u.Disabled = true
	if err := users.Upsert(context.Background(), u); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	_, err := svc.Login(context.Background(), "alice@example.com", "client-hash", "")
	if !errors.Is(err, ErrAccountDisabled) {
		t.Errorf("err = %v, want ErrAccountDisabled", err)
	}
}

func TestLogin_RateLimited(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	svc.limiter = &fakeLimiter{allow: false}

	_, err := svc.Login(context.Background(), "alice@example.com", "client-hash", "")
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("err = %v, want ErrRateLimited", err)
	}
}

func TestLogin_ThrottlesEmailAndClientIP(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	signUpAlice(t, svc)
	limiter := &fakeLimiter{allow: true}
	svc.limiter = limiter

	if _, err := svc.Login(context.Background(), "alice@example.com", "client-hash", "10.0.0.1"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	var sawEmail, sawIP bool
	for _, k := range limiter.keys {
		switch k {
		case "login:alice@example.com":
			sawEmail = true
		case "login-ip:10.0.0.1":
			sawIP = true
		}
	}
	if !sawEmail || !sawIP {
		t.Errorf("limiter keys = %v, want both email and client-ip keys", limiter.keys)
	}
}

func TestRefresh_RotatesAndAdvancesWatermark(t *testing.T) {
	svc, _, sessions, clock := newTestService(t)
	signUpAlice(t, svc)
	tokens, err := svc.Login(context.Background(), "alice@example.com", "client-hash", "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	clock.Advance(time.Minute)
	access, refresh, err := svc.Refresh(context.Background(), tokens.Refresh)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("empty rotated pair")
	}
	if refresh == tokens.Refresh {
		t.Error("refresh token not rotated")
	}

	sess, err := sessions.GetSession(context.Background(), directory.Filters{"user_id": firstUserID(t, svc)})
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if sess.LatestRefreshExp == 0 {
		t.Error("watermark did not advance")
	}
}

func TestRefresh_ChainOfRotations(t *testing.T) {
	svc, _, _, clock := newTestService(t)
	signUpAlice(t, svc)
	tokens, err := svc.Login(context.Background(), "alice@example.com", "client-hash", "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	refresh := tokens.Refresh
	for i := 0; i < 3; i++ {
		clock.Advance(time.Minute)
		_, next, err := svc.Refresh(context.Background(), refresh)
		if err != nil {
			t.Fatalf("rotation %d: %v", i+1, err)
		}
		refresh = next
	}
}

func TestRefresh_ReuseRevokesSession(t *testing.T) {
	svc, _, sessions, clock := newTestService(t)
	signUpAlice(t, svc)
	tokens, err := svc.Login(context.Background(), "alice@example.com", "client-hash", "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	clock.Advance(time.Minute)
	if _, _, err := svc.Refresh(context.Background(), tokens.Refresh); err != nil {
		t.Fatalf("first refresh: %v", err)
	}

	_, _, err = svc.Refresh(context.Background(), tokens.Refresh)
	if !errors.Is(err, ErrTokenReused) {
		t.Fatalf("err = %v, want ErrTokenReused", err)
	}

	if _, err := sessions.GetSession(context.Background(), directory.Filters{"user_id": firstUserID(t, svc)}); !errors.Is(err, directory.ErrNotFound) {
		t.Error("session survived reuse detection")
	}
}

func TestRefresh_OldTokenAfterNewerRotation(t *testing.T) {
	svc, _, _, clock := newTestService(t)
	signUpAlice(t, svc)
	tokens, err := svc.Login(context.Background(), "alice@example.com", "client-hash", "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	clock.Advance(time.Minute)
	_, newer, err := svc.Refresh(context.Background(), tokens.Refresh)
	if err != nil {
		t.Fatalf("first refresh: %v", err)
	}
	clock.Advance(time.Minute)
	if _, _, err := svc.Refresh(context.Background(), newer); err != nil {
		t.Fatalf("second refresh: %v", err)
	}

	// The original login refresh is now two generations behind.
	_, _, err = svc.Refresh(context.Background(), tokens.Refresh)
	if !errors.Is(err, ErrTokenReused) && !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want reuse detection", err)
	}
}

func TestRefresh_AfterLogout(t *testing.T) {
	svc, _, sessions, clock := newTestService(t)
	signUpAlice(t, svc)
	tokens, err := svc.Login(context.Background(), "alice@example.com", "client-hash", "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	sess, err := sessions.GetSession(context.Background(), directory.Filters{"user_id": firstUserID(t, svc)})
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if err := svc.Logout(context.Background(), sess.ID); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	clock.Advance(time.Minute)
	_, _, err = svc.Refresh(context.Background(), tokens.Refresh)
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestLogin_StoredCredentialIsNotALoginCredential(t *testing.T) {
	svc, users, _, _ := newTestService(t)
	signUpAlice(t, svc)

	// A leaked users table must not be replayable: presenting the stored
	// double hash as the wire hash fails, the original wire hash succeeds.
	u, err := users.GetUser(context.Background(), directory.Filters{"email": "alice@example.com"})
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if _, err := svc.Login(context.Background(), "alice@example.com", u.DoubleHashedPassword, ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("stored hash accepted as credential: err = %v", err)
	}
	if _, err := svc.Login(context.Background(), "alice@example.com", "client-hash", ""); err != nil {
		t.Errorf("wire hash rejected: %v", err)
	}
}

func TestRefresh_TokenWithoutSessionBinding(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	now := time.Now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"iss": security.TestIssuer,
		"aud": security.TestAudience,
		"nbf": now.Unix(),
		"iat": now.Unix(),
		"exp": now.Add(24 * time.Hour).Unix(),
	}).SignedString([]byte(security.TestSigningKey))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	// Signature-valid but carries no sid: nothing to rotate against.
	_, _, err = svc.Refresh(context.Background(), token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestRefresh_MalformedToken(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, _, err := svc.Refresh(context.Background(), "not-a-token")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestRefresh_ExpiredToken(t *testing.T) {
	svc, _, _, clock := newTestService(t)
	signUpAlice(t, svc)
	tokens, err := svc.Login(context.Background(), "alice@example.com", "client-hash", "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	clock.Advance(48 * time.Hour)
	_, _, err = svc.Refresh(context.Background(), tokens.Refresh)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("err = %v, want ErrTokenExpired", err)
	}
}

func TestRefresh_ConcurrentSameToken_OneWinner(t *testing.T) {
	svc, _, _, clock := newTestService(t)
	signUpAlice(t, svc)
	tokens, err := svc.Login(context.Background(), "alice@example.com", "client-hash", "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	clock.Advance(time.Minute)

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = svc.Refresh(context.Background(), tokens.Refresh)
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else if !errors.Is(err, ErrTokenReused) && !errors.Is(err, ErrSessionNotFound) {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if winners > 1 {
		t.Errorf("winners = %d, want at most 1", winners)
	}
}

func TestLogout_Idempotent(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	if err := svc.Logout(context.Background(), "no-such-session"); err != nil {
		t.Errorf("Logout of absent session: %v", err)
	}
}

func TestUnregister_RemovesUserAndSessions(t *testing.T) {
	svc, users, sessions, _ := newTestService(t)
	signUpAlice(t, svc)
	if _, err := svc.Login(context.Background(), "alice@example.com", "client-hash", ""); err != nil {
		t.Fatalf("Login: %v", err)
	}
	userID := firstUserID(t, svc)

	if err := svc.Unregister(context.Background(), userID); err != nil {
		t.Fatalf("Unregister: %v", err)
	}
	if _, err := users.GetUser(context.Background(), directory.Filters{"user_id": userID}); !errors.Is(err, directory.ErrNotFound) {
		t.Error("user row survived unregister")
	}
	if _, err := sessions.GetSession(context.Background(), directory.Filters{"user_id": userID}); !errors.Is(err, directory.ErrNotFound) {
		t.Error("session rows survived unregister")
	}
}

func TestGetUserInfo_UnknownUser(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.GetUserInfo(context.Background(), "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestUpdateUserInfo_PartialUpdate(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	signUpAlice(t, svc)
	userID := firstUserID(t, svc)

	u, err := svc.UpdateUserInfo(context.Background(), userID, UpdateParams{FullName: "Alice B. Example"})
	if err != nil {
		t.Fatalf("UpdateUserInfo: %v", err)
	}
	if u.FullName != "Alice B. Example" {
		t.Errorf("full name = %q", u.FullName)
	}
	if u.UserName != "alice" || u.Email != "alice@example.com" {
		t.Errorf("untouched fields changed: user_name=%q email=%q", u.UserName, u.Email)
	}
}

func TestUpdateUserInfo_EmailConflict(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	signUpAlice(t, svc)
	if err := svc.SignUp(context.Background(), SignUpParams{
		UserName:       "bob",
		Email:          "bob@example.com",
		HashedPassword: "bob-hash",
	}); err != nil {
		t.Fatalf("SignUp bob: %v", err)
	}
	userID := firstUserID(t, svc)

	_, err := svc.UpdateUserInfo(context.Background(), userID, UpdateParams{Email: "bob@example.com"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}
