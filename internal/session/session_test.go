package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Padmajasharma/Bookshow/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func testContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestSetIdentity_ReplacesOtherRealm(t *testing.T) {
	m := NewManager("test-secret")
	c := testContext()

	assert.NoError(t, m.SetIdentity(c, models.Identity{Role: models.RoleBuyer, ID: 7}))
	ref := m.IdentityRef(c)
	if assert.NotNil(t, ref) {
		assert.Equal(t, models.RoleBuyer, ref.Role)
		assert.Equal(t, uint(7), ref.ID)
	}

	// Logging in as an admin in the same session evicts the buyer identity.
	assert.NoError(t, m.SetIdentity(c, models.Identity{Role: models.RoleAdmin, ID: 3}))
	ref = m.IdentityRef(c)
	if assert.NotNil(t, ref) {
		assert.Equal(t, models.RoleAdmin, ref.Role)
		assert.Equal(t, uint(3), ref.ID)
	}
}

func TestClearIdentity(t *testing.T) {
	m := NewManager("test-secret")
	c := testContext()

	assert.NoError(t, m.SetIdentity(c, models.Identity{Role: models.RoleBuyer, ID: 7}))
	assert.NoError(t, m.ClearIdentity(c))
	assert.Nil(t, m.IdentityRef(c))
}

func TestFlashes_DrainOnRead(t *testing.T) {
	m := NewManager("test-secret")
	c := testContext()

	assert.NoError(t, m.AddFlash(c, "success", "Venue created successfully!"))
	assert.NoError(t, m.AddFlash(c, "danger", "Something went wrong."))

	flashes := m.Flashes(c)
	if assert.Len(t, flashes, 2) {
		assert.Equal(t, Flash{Category: "success", Message: "Venue created successfully!"}, flashes[0])
		assert.Equal(t, Flash{Category: "danger", Message: "Something went wrong."}, flashes[1])
	}

	assert.Empty(t, m.Flashes(c))
}

func TestConfirmToken_ConsumedOnCheck(t *testing.T) {
	m := NewManager("test-secret")
	c := testContext()

	token, err := m.NewConfirmToken(c, "venue:4")
	assert.NoError(t, err)
	assert.Len(t, token, 32)

	assert.False(t, m.CheckConfirmToken(c, "venue:4", "wrong-token"))
	assert.True(t, m.CheckConfirmToken(c, "venue:4", token))
	// Consumed: the same token cannot authorize a second delete.
	assert.False(t, m.CheckConfirmToken(c, "venue:4", token))
}

// Confirmation pages opened in separate tabs hold independent tokens; issuing
// one never invalidates another, and a token only works for its own scope.
func TestConfirmToken_ScopesAreIndependent(t *testing.T) {
	m := NewManager("test-secret")
	c := testContext()

	venueToken, err := m.NewConfirmToken(c, "venue:4")
	assert.NoError(t, err)
	showToken, err := m.NewConfirmToken(c, "show:9")
	assert.NoError(t, err)

	assert.False(t, m.CheckConfirmToken(c, "show:9", venueToken))
	assert.True(t, m.CheckConfirmToken(c, "venue:4", venueToken))
	assert.True(t, m.CheckConfirmToken(c, "show:9", showToken))
}

func TestConfirmToken_EmptyNeverMatches(t *testing.T) {
	m := NewManager("test-secret")
	c := testContext()

	assert.False(t, m.CheckConfirmToken(c, "venue:4", ""))
}
