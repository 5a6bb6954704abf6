// Package countrycode maps country calling codes to the region codes that
// share them. The first region listed for a code is the main region for that
// code. Calling codes assigned to services rather than countries, such as
// international toll-free numbers, map to the single sentinel region
// NonGeoRegion.
package countrycode

// NonGeoRegion is the region code given to numbering plans that are not tied
// to any single country.
const NonGeoRegion = "001"

var codeRegions = map[int][]string{
	1:   {"US", "AG", "AI", "AS", "BB", "BM", "BS", "CA", "DM", "DO", "GD", "GU", "JM", "KN", "KY", "LC", "MP", "MS", "PR", "SX", "TC", "TT", "VC", "VG", "VI"},
	7:   {"RU", "KZ"},
	20:  {"EG"},
	27:  {"ZA"},
	30:  {"GR"},
	31:  {"NL"},
	32:  {"BE"},
	33:  {"FR"},
	34:  {"ES"},
	36:  {"HU"},
	39:  {"IT", "VA"},
	40:  {"RO"},
	41:  {"CH"},
	43:  {"AT"},
	44:  {"GB", "GG", "IM", "JE"},
	45:  {"DK"},
	46:  {"SE"},
	47:  {"NO", "SJ"},
	48:  {"PL"},
	49:  {"DE"},
	52:  {"MX"},
	54:  {"AR"},
	55:  {"BR"},
	61:  {"AU", "CC", "CX"},
	62:  {"ID"},
	64:  {"NZ"},
	65:  {"SG"},
	81:  {"JP"},
	82:  {"KR"},
	84:  {"VN"},
	86:  {"CN"},
	90:  {"TR"},
	91:  {"IN"},
	212: {"MA", "EH"},
	262: {"RE", "YT"},
	290: {"SH", "TA"},
	358: {"FI", "AX"},
	380: {"UA"},
	800: {NonGeoRegion},
	808: {NonGeoRegion},
	852: {"HK"},
	870: {NonGeoRegion},
	878: {NonGeoRegion},
	881: {NonGeoRegion},
	882: {NonGeoRegion},
	883: {NonGeoRegion},
	888: {NonGeoRegion},
	971: {"AE"},
	972: {"IL"},
	979: {NonGeoRegion},
}

// Regions returns the region codes associated with a country calling code,
// or nil if the code is unknown. The returned slice must not be modified.
func Regions(callingCode int) []string {
	return codeRegions[callingCode]
}

// IsNonGeo reports whether a country calling code maps only to the
// non-geographic marker region. Unknown codes are not non-geographic.
func IsNonGeo(callingCode int) bool {
	regions := codeRegions[callingCode]
	return len(regions) == 1 && regions[0] == NonGeoRegion
}
