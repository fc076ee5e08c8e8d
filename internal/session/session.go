package session

import (
	"crypto/subtle"
	"encoding/gob"
	"net/http"

	"github.com/Padmajasharma/Bookshow/internal/models"
	"github.com/Padmajasharma/Bookshow/pkg/random"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

const (
	cookieName = "bookshow_session"

	keyBuyerID = "buyer_id"
	keyAdminID = "admin_id"

	confirmTokenPrefix = "confirm_token:"
)

// Flash is a one-time user-facing notification consumed by the next
// rendered page.
type Flash struct {
	Category string
	Message  string
}

func init() {
	gob.Register(Flash{})
}

// Manager wraps the cookie store. A session carries at most one identity:
// setting one realm's id clears the other.
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

func (m *Manager) get(c echo.Context) *sessions.Session {
	// Get never fails for cookie stores beyond returning a fresh session.
	s, _ := m.store.Get(c.Request(), cookieName)
	return s
}

func (m *Manager) save(c echo.Context, s *sessions.Session) error {
	return s.Save(c.Request(), c.Response())
}

// SetIdentity binds the session to the given identity's realm and id.
func (m *Manager) SetIdentity(c echo.Context, ident models.Identity) error {
	s := m.get(c)
	delete(s.Values, keyBuyerID)
	delete(s.Values, keyAdminID)
	switch ident.Role {
	case models.RoleBuyer:
		s.Values[keyBuyerID] = ident.ID
	case models.RoleAdmin:
		s.Values[keyAdminID] = ident.ID
	}
	return m.save(c, s)
}

// IdentityRef returns the unresolved identity stored in the session, or nil.
// The middleware layer is responsible for checking the row still exists.
func (m *Manager) IdentityRef(c echo.Context) *models.Identity {
	s := m.get(c)
	if id, ok := s.Values[keyBuyerID].(uint); ok {
		return &models.Identity{Role: models.RoleBuyer, ID: id}
	}
	if id, ok := s.Values[keyAdminID].(uint); ok {
		return &models.Identity{Role: models.RoleAdmin, ID: id}
	}
	return nil
}

// ClearIdentity logs out whichever realm is active.
func (m *Manager) ClearIdentity(c echo.Context) error {
	s := m.get(c)
	delete(s.Values, keyBuyerID)
	delete(s.Values, keyAdminID)
	return m.save(c, s)
}

func (m *Manager) AddFlash(c echo.Context, category, message string) error {
	s := m.get(c)
	s.AddFlash(Flash{Category: category, Message: message})
	return m.save(c, s)
}

// Flashes drains and returns pending flash messages.
func (m *Manager) Flashes(c echo.Context) []Flash {
	s := m.get(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = m.save(c, s)
	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}

// NewConfirmToken stores and returns a fresh token for a destructive
// operation's confirmation round-trip. Tokens are keyed by scope (e.g.
// "venue:4"), so confirmation pages open in separate tabs do not invalidate
// each other.
func (m *Manager) NewConfirmToken(c echo.Context, scope string) (string, error) {
	token, err := random.Hex(16)
	if err != nil {
		return "", err
	}
	s := m.get(c)
	s.Values[confirmTokenPrefix+scope] = token
	if err := m.save(c, s); err != nil {
		return "", err
	}
	return token, nil
}

// CheckConfirmToken verifies and consumes the confirmation token stored for
// the scope.
func (m *Manager) CheckConfirmToken(c echo.Context, scope, token string) bool {
	s := m.get(c)
	stored, ok := s.Values[confirmTokenPrefix+scope].(string)
	if !ok || token == "" ||
		subtle.ConstantTimeCompare([]byte(stored), []byte(token)) != 1 {
		return false
	}
	delete(s.Values, confirmTokenPrefix+scope)
	_ = m.save(c, s)
	return true
}
