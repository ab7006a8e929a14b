package validate

import (
	"testing"

	"github.com/npesaras/clens/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Level    int     `json:"level" validate:"gte=1"`
	Kind     string  `json:"kind" validate:"required,oneof=organic recyclable"`
	Date     *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

func strPtr(s string) *string { return &s }

func TestCheck(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		require.NoError(t, Check(payload{Username: "juan", Level: 1, Kind: "organic"}))
		require.NoError(t, Check(payload{Username: "juan", Level: 2, Kind: "recyclable", Date: strPtr("2024-06-01")}))
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, test := range []struct {
			name    string
			actual  payload
			message string
		}{
			{
				name:    "Short username",
				actual:  payload{Username: "ab", Level: 1, Kind: "organic"},
				message: "username must be at least 3 characters long",
			},
			{
				name:    "Level below minimum",
				actual:  payload{Username: "juan", Level: 0, Kind: "organic"},
				message: "level must be greater than or equal to 1",
			},
			{
				name:    "Unknown enum",
				actual:  payload{Username: "juan", Level: 1, Kind: "plastic"},
				message: "kind must be one of: organic, recyclable",
			},
			{
				name:    "Bad date",
				actual:  payload{Username: "juan", Level: 1, Kind: "organic", Date: strPtr("06/01/2024")},
				message: "date must be a date formatted as YYYY-MM-DD",
			},
			{
				name:    "Empty provided pointer",
				actual:  payload{Username: "juan", Level: 1, Kind: "organic", Email: strPtr("")},
				message: "email must be a valid Email address",
			},
		} {
			t.Run(test.name, func(t *testing.T) {
				err := Check(test.actual)
				require.Error(t, err)
				assert.Equal(t, internal.ErrorCodeInvalidArgument, internal.CodeOf(err))

				issues := Issues(err)
				require.Len(t, issues, 1)
				assert.Equal(t, test.message, issues[0].Message())
			})
		}
	})

	t.Run("Collects every field", func(t *testing.T) {
		err := Check(payload{})
		issues := Issues(err)
		require.Len(t, issues, 3)
		assert.Equal(t, "username", issues[0].Field)
	})
}
