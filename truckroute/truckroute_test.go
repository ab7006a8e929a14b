package truckroute

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoute(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		for _, test := range []struct {
			name   string
			raw    string
			expect orb.Geometry
		}{
			{
				name:   "WKT line",
				raw:    "LINESTRING(124.24 8.23, 124.25 8.24)",
				expect: orb.LineString{{124.24, 8.23}, {124.25, 8.24}},
			},
			{
				name:   "WKT with surrounding whitespace",
				raw:    "  LINESTRING(124.24 8.23, 124.25 8.24, 124.26 8.25)\n",
				expect: orb.LineString{{124.24, 8.23}, {124.25, 8.24}, {124.26, 8.25}},
			},
			{
				name: "WKT multi line",
				raw:  "MULTILINESTRING((124.24 8.23, 124.25 8.24), (124.30 8.30, 124.31 8.31))",
				expect: orb.MultiLineString{
					{{124.24, 8.23}, {124.25, 8.24}},
					{{124.30, 8.30}, {124.31, 8.31}},
				},
			},
			{
				name:   "GeoJSON line",
				raw:    `{"type":"LineString","coordinates":[[124.24,8.23],[124.25,8.24]]}`,
				expect: orb.LineString{{124.24, 8.23}, {124.25, 8.24}},
			},
		} {
			t.Run(test.name, func(t *testing.T) {
				actual, err := ParseRoute(test.raw)
				require.NoError(t, err)
				assert.Equal(t, test.expect, actual)
			})
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, test := range []struct {
			name string
			raw  string
		}{
			{name: "Empty", raw: ""},
			{name: "Garbage", raw: "not a route"},
			{name: "Point", raw: "POINT(124.24 8.23)"},
			{name: "Polygon", raw: "POLYGON((0 0, 1 0, 1 1, 0 0))"},
			{name: "Single vertex", raw: `{"type":"LineString","coordinates":[[124.24,8.23]]}`},
			{name: "Broken GeoJSON", raw: `{"type":"LineString","coordinates":`},
			{name: "GeoJSON point", raw: `{"type":"Point","coordinates":[124.24,8.23]}`},
		} {
			t.Run(test.name, func(t *testing.T) {
				_, err := ParseRoute(test.raw)
				assert.ErrorIs(t, err, ErrInvalidRoute)
			})
		}
	})
}
