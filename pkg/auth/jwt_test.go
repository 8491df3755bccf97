package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasir9967/skillbazaar/pkg/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	mgr := auth.NewManager("secret-key", time.Hour)

	tok, err := mgr.CreateAccessToken("user-1", "business", "b@x.in")
	require.NoError(t, err)

	claims, err := mgr.ParseValidate(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Sub)
	assert.Equal(t, "business", claims.Role)
	assert.Equal(t, "b@x.in", claims.Email)
}

func TestTokenWrongSecret(t *testing.T) {
	mgr := auth.NewManager("secret-key", time.Hour)
	other := auth.NewManager("different-key", time.Hour)

	tok, err := mgr.CreateAccessToken("user-1", "customer", "c@x.in")
	require.NoError(t, err)

	_, err = other.ParseValidate(tok)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	mgr := auth.NewManager("secret-key", -time.Minute)

	tok, err := mgr.CreateAccessToken("user-1", "customer", "c@x.in")
	require.NoError(t, err)

	_, err = mgr.ParseValidate(tok)
	assert.Error(t, err)
}
