package stores

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicwatch/civicwatch/internal/cipherx"
	"github.com/civicwatch/civicwatch/internal/cookiejar"
	"github.com/civicwatch/civicwatch/internal/models"
	"github.com/civicwatch/civicwatch/internal/storage"
)

func newAuth(t *testing.T, store *storage.Store) *Auth {
	t.Helper()
	jar := cookiejar.NewJar(store, nil, nil)
	return NewAuth(jar, cipherx.NewCodec(""), testRoster, "", 0, nil)
}

func TestAuth_LoginWrongPasswordStaysAnonymous(t *testing.T) {
	a := newAuth(t, setupStore(t))
	ctx := context.Background()

	res := a.Login(ctx, "alice", "wrong")

	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Message)
	assert.False(t, a.Authenticated())
	_, ok := a.CurrentUser()
	assert.False(t, ok)
}

func TestAuth_LoginSuccessStripsPassword(t *testing.T) {
	a := newAuth(t, setupStore(t))
	ctx := context.Background()

	res := a.Login(ctx, "alice", "pw123")
	require.True(t, res.Success)

	require.True(t, a.Authenticated())
	u, ok := a.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "alice", u.Username)
	assert.Empty(t, u.Password)
}

func TestAuth_LoginIsCaseSensitive(t *testing.T) {
	a := newAuth(t, setupStore(t))

	res := a.Login(context.Background(), "Alice", "pw123")
	assert.False(t, res.Success)
}

func TestAuth_FreshProcessRestoresSessionFromCookie(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	first := newAuth(t, store)
	require.True(t, first.Login(ctx, "alice", "pw123").Success)

	// a second store over the same substrate stands in for a process restart
	second := newAuth(t, store)
	second.Init(ctx)

	require.True(t, second.Authenticated())
	u, ok := second.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "alice", u.Username)
	assert.Empty(t, u.Password)
}

func TestAuth_InitIsIdempotent(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	seeded := newAuth(t, store)
	require.True(t, seeded.Login(ctx, "alice", "pw123").Success)

	a := newAuth(t, store)
	a.Init(ctx)
	userAfterOnce, _ := a.CurrentUser()

	a.Init(ctx)
	userAfterTwice, ok := a.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, userAfterOnce, userAfterTwice)
	assert.True(t, a.Authenticated())
}

func TestAuth_InitWithoutCookieStaysAnonymous(t *testing.T) {
	a := newAuth(t, setupStore(t))
	a.Init(context.Background())
	assert.False(t, a.Authenticated())
}

func TestAuth_InitMalformedCookieCleansUp(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	jar := cookiejar.NewJar(store, nil, nil)
	require.True(t, jar.Set(ctx, DefaultCookieName, "garbage that never decodes", 30))

	a := newAuth(t, store)
	a.Init(ctx)

	assert.False(t, a.Authenticated())
	assert.Empty(t, jar.Get(ctx, DefaultCookieName), "stale cookie should be deleted")
}

func TestAuth_InitCookieWithWrongShapeCleansUp(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	codec := cipherx.NewCodec("")

	jar := cookiejar.NewJar(store, nil, nil)
	require.True(t, jar.Set(ctx, DefaultCookieName, codec.Encode(`{"unexpected":true}`), 30))

	a := newAuth(t, store)
	a.Init(ctx)

	assert.False(t, a.Authenticated())
	assert.Empty(t, jar.Get(ctx, DefaultCookieName))
}

func TestAuth_RegisterDuplicateUsernameFails(t *testing.T) {
	a := newAuth(t, setupStore(t))
	ctx := context.Background()

	require.True(t, a.Login(ctx, "alice", "pw123").Success)
	before := a.RosterSize()

	res := a.Register(ctx, RegisterInput{Username: "alice", Password: "x"})

	assert.False(t, res.Success)
	assert.Equal(t, before, a.RosterSize())
}

func TestAuth_RegisterLogsInNewUser(t *testing.T) {
	a := newAuth(t, setupStore(t))
	ctx := context.Background()

	res := a.Register(ctx, RegisterInput{Username: "carol", Password: "pw"})
	require.True(t, res.Success)

	require.True(t, a.Authenticated())
	u, ok := a.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "carol", u.Username)
	assert.Equal(t, models.RoleUser, u.Role)
	assert.Equal(t, "carol", u.Name, "name defaults to username")
	assert.Equal(t, "3", u.ID, "id is roster length + 1")
	assert.Empty(t, u.Password)
}

func TestAuth_RegistrationsAreVolatile(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	first := newAuth(t, store)
	require.True(t, first.Register(ctx, RegisterInput{Username: "carol", Password: "pw"}).Success)
	first.Logout(ctx)

	// fresh process: the roster reloads from seed, carol is gone
	second := newAuth(t, store)
	res := second.Login(ctx, "carol", "pw")
	assert.False(t, res.Success)
}

func TestAuth_LogoutClearsSessionAndCookie(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	a := newAuth(t, store)
	require.True(t, a.Login(ctx, "alice", "pw123").Success)

	a.Logout(ctx)

	assert.False(t, a.Authenticated())
	_, ok := a.CurrentUser()
	assert.False(t, ok)

	restarted := newAuth(t, store)
	restarted.Init(ctx)
	assert.False(t, restarted.Authenticated())
}

func TestAuth_IsAdmin(t *testing.T) {
	a := newAuth(t, setupStore(t))
	ctx := context.Background()

	assert.False(t, a.IsAdmin(), "anonymous is never admin")

	require.True(t, a.Login(ctx, "alice", "pw123").Success)
	assert.False(t, a.IsAdmin())

	require.True(t, a.Login(ctx, "root", "toor").Success)
	assert.True(t, a.IsAdmin())
}

func TestAuth_RosterLoadFailureReportsFailure(t *testing.T) {
	store := setupStore(t)
	jar := cookiejar.NewJar(store, nil, nil)
	broken := func() ([]models.User, error) { return nil, errors.New("seed corrupted") }

	a := NewAuth(jar, cipherx.NewCodec(""), broken, "", 0, nil)

	res := a.Login(context.Background(), "alice", "pw123")
	assert.False(t, res.Success)
	assert.False(t, a.Authenticated())
}

func TestAuth_SessionSurvivesUnavailableSubstrateInMemory(t *testing.T) {
	store := storage.NewStore(storage.Unavailable{}, nil)
	jar := cookiejar.NewJar(store, nil, nil)
	a := NewAuth(jar, cipherx.NewCodec(""), testRoster, "", 0, nil)
	ctx := context.Background()

	res := a.Login(ctx, "alice", "pw123")

	assert.True(t, res.Success, "login succeeds even when the cookie cannot persist")
	assert.True(t, a.Authenticated())
}
