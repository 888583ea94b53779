package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"Admin", "Manager", "Merchant"} {
		r, err := ParseRole(s)
		require.NoError(t, err)
		assert.Equal(t, Role(s), r)
	}

	_, err := ParseRole("SuperUser")
	require.Error(t, err)
}

func TestCapabilitiesFor(t *testing.T) {
	admin := CapabilitiesFor(RoleAdmin)
	assert.True(t, admin.ModerateMerchants)
	assert.True(t, admin.ManageManagers)
	assert.True(t, admin.ConfigurePlatform)

	manager := CapabilitiesFor(RoleManager)
	assert.True(t, manager.ModerateMerchants)
	assert.False(t, manager.ManageManagers)
	assert.False(t, manager.ConfigurePlatform)

	merchant := CapabilitiesFor(RoleMerchant)
	assert.Equal(t, Capabilities{}, merchant)
	assert.False(t, merchant.FilterByMerchant)
}

func TestStoreLifecycle(t *testing.T) {
	st := NewStore()

	_, ok := st.Current()
	assert.False(t, ok)
	assert.Empty(t, st.Token())

	st.SignIn(Session{
		UserID: "u1",
		Name:   "Ada",
		Role:   RoleAdmin,
		Token:  "tok-1",
	})

	s, ok := st.Current()
	require.True(t, ok)
	assert.Equal(t, "u1", s.UserID)
	assert.Equal(t, RoleAdmin, s.Role)
	assert.Equal(t, "tok-1", st.Token())

	// Current returns a copy; mutating it must not touch the store
	s.Token = "changed"
	assert.Equal(t, "tok-1", st.Token())

	st.SignOut()
	_, ok = st.Current()
	assert.False(t, ok)
	assert.Empty(t, st.Token())
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()

	expired := signedToken(t, jwt.MapClaims{
		"sub": "u1",
		"exp": now.Add(-time.Hour).Unix(),
	})
	assert.True(t, TokenExpired(expired, now))

	live := signedToken(t, jwt.MapClaims{
		"sub": "u1",
		"exp": now.Add(time.Hour).Unix(),
	})
	assert.False(t, TokenExpired(live, now))

	noExp := signedToken(t, jwt.MapClaims{
		"sub": "u1",
	})
	assert.False(t, TokenExpired(noExp, now))

	assert.True(t, TokenExpired("not-a-jwt", now))
	assert.True(t, TokenExpired("", now))
}
