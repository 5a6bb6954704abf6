package countrycode_test

import (
	"testing"

	"github.com/numplan/go-phonemeta/countrycode"
	"github.com/stretchr/testify/require"
)

func TestRegions(t *testing.T) {
	regions := countrycode.Regions(44)
	require.Contains(t, regions, "GB")
	require.Equal(t, "GB", regions[0])

	// NANPA: the main country is listed first.
	require.Equal(t, "US", countrycode.Regions(1)[0])

	require.Equal(t, []string{countrycode.NonGeoRegion}, countrycode.Regions(800))

	// Unknown codes have no regions at all.
	require.Nil(t, countrycode.Regions(99999))
}

func TestIsNonGeo(t *testing.T) {
	require.True(t, countrycode.IsNonGeo(800))
	require.True(t, countrycode.IsNonGeo(979))
	require.False(t, countrycode.IsNonGeo(44))
	require.False(t, countrycode.IsNonGeo(99999))
}
