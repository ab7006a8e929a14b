package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestParseTimestamp(t *testing.T) {
	parsed, err := ParseTimestamp("dateDisposed", "2024-06-01T16:30:00+08:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.June, 1, 8, 30, 0, 0, time.UTC), parsed)

	_, err = ParseTimestamp("dateDisposed", "2024-06-01 16:30")
	require.Error(t, err)
	assert.Equal(t, ErrorCodeInvalidArgument, CodeOf(err))
	assert.Equal(t, "dateDisposed must be an RFC3339 datetime", err.(*Error).Message())
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("startDate", "2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, datatypes.Date(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)), parsed)

	for _, value := range []string{"2023-02-29", "2024-6-1", "", "2024-06-01T00:00:00Z"} {
		_, err := ParseDate("startDate", value)
		assert.Equal(t, ErrorCodeInvalidArgument, CodeOf(err), value)
	}
}

func TestParseClock(t *testing.T) {
	parsed, err := ParseClock("collectionTime", "07:45:30")
	require.NoError(t, err)
	assert.Equal(t, datatypes.NewTime(7, 45, 30, 0), parsed)

	_, err = ParseClock("collectionTime", "25:00:00")
	assert.Equal(t, ErrorCodeInvalidArgument, CodeOf(err))
}
