package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/pkg/types"
)

func makePeriod(t *testing.T, deliveryDate, deliveryTime, returnDate, returnTime string) RentalPeriod {
	t.Helper()

	var p RentalPeriod
	var err error

	if deliveryDate != "" {
		p.DeliveryDate, err = time.Parse(DateFormat, deliveryDate)
		require.NoError(t, err)
	}
	if returnDate != "" {
		p.ReturnDate, err = time.Parse(DateFormat, returnDate)
		require.NoError(t, err)
	}
	if deliveryTime != "" {
		p.DeliveryTime, err = types.NewTimeStringFromString(deliveryTime)
		require.NoError(t, err)
	}
	if returnTime != "" {
		p.ReturnTime, err = types.NewTimeStringFromString(returnTime)
		require.NoError(t, err)
	}

	p.RentType = RentTypeDaily
	return p
}

func TestCalculateDuration(t *testing.T) {
	tests := []struct {
		name     string
		period   RentalPeriod
		expected Duration
	}{
		{
			name:     "two full days",
			period:   makePeriod(t, "2025-03-10", "10:00", "2025-03-12", "10:00"),
			expected: Duration{Hours: 48, Days: 2, Weeks: 1, Months: 1},
		},
		{
			name:     "one hour is billed as one day",
			period:   makePeriod(t, "2025-03-10", "10:00", "2025-03-10", "11:00"),
			expected: Duration{Hours: 1, Days: 1, Weeks: 1, Months: 1},
		},
		{
			name:     "partial hour rounds up",
			period:   makePeriod(t, "2025-03-10", "10:00", "2025-03-10", "11:30"),
			expected: Duration{Hours: 2, Days: 1, Weeks: 1, Months: 1},
		},
		{
			name:     "eight days span two weeks",
			period:   makePeriod(t, "2025-03-10", "10:00", "2025-03-18", "10:00"),
			expected: Duration{Hours: 192, Days: 8, Weeks: 2, Months: 1},
		},
		{
			name:     "thirty one days span two months",
			period:   makePeriod(t, "2025-03-01", "10:00", "2025-04-01", "10:00"),
			expected: Duration{Hours: 744, Days: 31, Weeks: 5, Months: 2},
		},
		{
			name:     "day boundary plus one hour rounds the day up",
			period:   makePeriod(t, "2025-03-10", "10:00", "2025-03-11", "11:00"),
			expected: Duration{Hours: 25, Days: 2, Weeks: 1, Months: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateDuration(tt.period))
		})
	}
}

func TestCalculateDuration_Undefined(t *testing.T) {
	t.Run("incomplete period", func(t *testing.T) {
		p := makePeriod(t, "2025-03-10", "10:00", "", "")
		assert.True(t, CalculateDuration(p).IsZero())
	})

	t.Run("return equals delivery", func(t *testing.T) {
		p := makePeriod(t, "2025-03-10", "10:00", "2025-03-10", "10:00")
		assert.True(t, CalculateDuration(p).IsZero())
	})

	t.Run("return before delivery", func(t *testing.T) {
		p := makePeriod(t, "2025-03-12", "10:00", "2025-03-10", "10:00")
		assert.True(t, CalculateDuration(p).IsZero())
	})
}
