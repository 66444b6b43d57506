package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("valid time", func(t *testing.T) {
		ts, err := NewTimeStringFromString("09:30")
		require.NoError(t, err)
		assert.Equal(t, "09:30", ts.String())
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := NewTimeStringFromString("9:30am")
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := NewTimeStringFromString("25:00")
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})
}

func TestTimeString_On(t *testing.T) {
	ts, err := NewTimeStringFromString("14:45")
	require.NoError(t, err)

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	instant, err := ts.On(date)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 10, 14, 45, 0, 0, time.UTC), instant)
}

func TestTimeString_Comparisons(t *testing.T) {
	early := TimeString("09:00")
	late := TimeString("17:30")

	assert.True(t, early.IsBefore(late))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsAfter(late))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("23:50")

	result, err := ts.AddMinutes(20)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:10"), result)
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("from string", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("10:00"))
		assert.Equal(t, TimeString("10:00"), ts)
	})

	t.Run("from nil", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})

	t.Run("from time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2025, 3, 10, 8, 15, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("08:15"), ts)
	})
}
