package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasir9967/skillbazaar/internal/domain"
)

func TestTagsValueScan(t *testing.T) {
	v, err := domain.Tags{"home", "deep-clean"}.Value()
	require.NoError(t, err)
	assert.Equal(t, "home,deep-clean", v)

	var got domain.Tags
	require.NoError(t, got.Scan("home,deep-clean"))
	assert.Equal(t, domain.Tags{"home", "deep-clean"}, got)

	require.NoError(t, got.Scan(""))
	assert.Nil(t, got)

	require.NoError(t, got.Scan([]byte("a,b")))
	assert.Equal(t, domain.Tags{"a", "b"}, got)

	require.NoError(t, got.Scan(nil))
	assert.Nil(t, got)

	assert.Error(t, got.Scan(42))
}

func TestBookingTerminal(t *testing.T) {
	b := domain.Booking{Status: domain.BookingPending}
	assert.False(t, b.Terminal())
	b.Status = domain.BookingCompleted
	assert.True(t, b.Terminal())
	b.Status = domain.BookingCancelled
	assert.True(t, b.Terminal())
}
