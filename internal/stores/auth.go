package stores

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/civicwatch/civicwatch/internal/cipherx"
	"github.com/civicwatch/civicwatch/internal/cookiejar"
	"github.com/civicwatch/civicwatch/internal/logging"
	"github.com/civicwatch/civicwatch/internal/models"
	"github.com/civicwatch/civicwatch/internal/seed"
)

// DefaultCookieName is the one session cookie this core manages.
const DefaultCookieName = "civicwatch_user"

// DefaultCookieTTLDays is the session cookie expiry horizon.
const DefaultCookieTTLDays = 30

// RosterFunc supplies the user roster. The default is the bundled seed
// dataset.
type RosterFunc func() ([]models.User, error)

// RegisterInput carries the fields a new user supplies at registration.
type RegisterInput struct {
	Username string
	Password string
	Name     string
	Phone    string
}

// Auth is the session store: a two-state machine (anonymous or
// authenticated) whose durable representation is a single obfuscated
// cookie. The roster is loaded lazily, once per process. Registrations
// live only in that in-memory copy and are lost on restart.
type Auth struct {
	jar        *cookiejar.Jar
	codec      *cipherx.Codec
	loadRoster RosterFunc
	cookieName string
	ttlDays    int
	log        logging.Logger

	user          *models.User
	authenticated bool
	roster        []models.User
	rosterLoaded  bool
}

// NewAuth wires a session store. Nil roster defaults to the seed dataset;
// empty cookieName and non-positive ttlDays fall back to the defaults.
func NewAuth(jar *cookiejar.Jar, codec *cipherx.Codec, roster RosterFunc, cookieName string, ttlDays int, log logging.Logger) *Auth {
	if roster == nil {
		roster = seed.Users
	}
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	if ttlDays <= 0 {
		ttlDays = DefaultCookieTTLDays
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Auth{jar: jar, codec: codec, loadRoster: roster, cookieName: cookieName, ttlDays: ttlDays, log: log}
}

// Init restores the session from the cookie if one decodes to a well-formed
// user record. Malformed content deletes the stale cookie and leaves the
// session anonymous. Safe to call repeatedly.
func (a *Auth) Init(ctx context.Context) {
	if a.authenticated {
		return
	}

	raw := a.jar.Get(ctx, a.cookieName)
	if raw == "" {
		return
	}

	plain := a.codec.Decode(raw)
	if plain == "" {
		a.log.Warn(ctx, "session cookie failed to decode, removing it")
		a.jar.Delete(ctx, a.cookieName)
		return
	}

	var u models.User
	if err := json.Unmarshal([]byte(plain), &u); err != nil || u.Username == "" {
		a.log.Warn(ctx, "session cookie holds no valid user, removing it", "error", err)
		a.jar.Delete(ctx, a.cookieName)
		return
	}

	u.Password = ""
	a.user = &u
	a.authenticated = true
}

// Login authenticates against the roster with exact, case-sensitive
// matching. On success the session holds a password-stripped copy of the
// user and the cookie is refreshed.
func (a *Auth) Login(ctx context.Context, username, password string) models.Result {
	if err := a.ensureRoster(ctx); err != nil {
		return models.Fail("login failed")
	}

	for _, u := range a.roster {
		if u.Username == username && u.Password == password {
			stripped := u.WithoutPassword()
			a.user = &stripped
			a.authenticated = true
			a.persistSession(ctx)
			return models.OK()
		}
	}

	return models.Fail("invalid username or password")
}

// Register adds a user to the in-memory roster and logs them in. The
// roster itself is never persisted, so registered users vanish on restart.
func (a *Auth) Register(ctx context.Context, input RegisterInput) models.Result {
	if err := a.ensureRoster(ctx); err != nil {
		return models.Fail("registration failed")
	}

	for _, u := range a.roster {
		if u.Username == input.Username {
			return models.Fail("user already exists")
		}
	}

	name := input.Name
	if name == "" {
		name = input.Username
	}

	u := models.User{
		// not collision-safe against roster deletions; the roster only grows
		ID:       strconv.Itoa(len(a.roster) + 1),
		Username: input.Username,
		Password: input.Password,
		Role:     models.RoleUser,
		Name:     name,
		Phone:    input.Phone,
	}
	a.roster = append(a.roster, u)

	stripped := u.WithoutPassword()
	a.user = &stripped
	a.authenticated = true
	a.persistSession(ctx)
	return models.OK()
}

// Logout clears the session and deletes the cookie. It has no failure mode.
func (a *Auth) Logout(ctx context.Context) {
	a.user = nil
	a.authenticated = false
	a.jar.Delete(ctx, a.cookieName)
}

// IsAdmin reports whether the session belongs to an administrator.
func (a *Auth) IsAdmin() bool {
	return a.authenticated && a.user != nil && a.user.Role == models.RoleAdmin
}

// Authenticated is the flag the route guards consult.
func (a *Auth) Authenticated() bool { return a.authenticated }

// CurrentUser returns a copy of the session identity, if any. The copy
// never carries a password.
func (a *Auth) CurrentUser() (models.User, bool) {
	if a.user == nil {
		return models.User{}, false
	}
	return *a.user, true
}

// RosterSize reports how many users the in-memory roster holds. Zero means
// the roster has not been loaded yet.
func (a *Auth) RosterSize() int { return len(a.roster) }

func (a *Auth) ensureRoster(ctx context.Context) error {
	if a.rosterLoaded {
		return nil
	}
	users, err := a.loadRoster()
	if err != nil {
		a.log.Error(ctx, "failed to load user roster", "error", err)
		return err
	}
	a.roster = users
	a.rosterLoaded = true
	return nil
}

func (a *Auth) persistSession(ctx context.Context) {
	data, err := json.Marshal(a.user)
	if err != nil {
		a.log.Warn(ctx, "failed to serialize session user", "error", err)
		return
	}
	if !a.jar.Set(ctx, a.cookieName, a.codec.Encode(string(data)), a.ttlDays) {
		a.log.Warn(ctx, "session cookie not persisted, session is in-memory only")
	}
}
