package reward

import (
	"testing"
	"time"

	"github.com/npesaras/clens/internal"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func date(year int, month time.Month, day int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func TestCheckPeriod(t *testing.T) {
	assert.NoError(t, CheckPeriod(date(2024, time.June, 1), date(2024, time.June, 30)))
	assert.NoError(t, CheckPeriod(date(2024, time.June, 1), date(2024, time.June, 1)))

	err := CheckPeriod(date(2024, time.June, 30), date(2024, time.June, 1))
	assert.Equal(t, internal.ErrorCodeInvalidArgument, internal.CodeOf(err))
	assert.EqualError(t, err, ErrInvalidPeriod.Error())
}
