package record

// PhoneNumberDesc holds the validation rules for one type of phone number,
// such as fixed-line or mobile, within a numbering plan.
type PhoneNumberDesc struct {
	// NationalNumberPattern is a regular expression matching the national
	// significant number for this number type.
	NationalNumberPattern string `json:",omitempty"`
	// PossibleLengths lists the lengths, in digits, that a national number
	// of this type may have.
	PossibleLengths []int `json:",omitempty"`
	// ExampleNumber is a valid example national number for this type.
	ExampleNumber string `json:",omitempty"`
}

// NumberFormat describes one rule for formatting a national number.
type NumberFormat struct {
	// Pattern is a regular expression matching the numbers this format
	// applies to, with capturing groups referenced by Format.
	Pattern string `json:",omitempty"`
	// Format is the template the matched groups are substituted into, using
	// $1, $2, ... references.
	Format string `json:",omitempty"`
	// LeadingDigits restricts this format to numbers whose leading digits
	// match one of these patterns. Empty means no restriction.
	LeadingDigits []string `json:",omitempty"`
	// NationalPrefixFormattingRule specifies how the national prefix is
	// attached when formatting with this rule.
	NationalPrefixFormattingRule string `json:",omitempty"`
	// NationalPrefixOptionalWhenFormatting indicates that the national
	// prefix may be omitted when formatting.
	NationalPrefixOptionalWhenFormatting bool `json:",omitempty"`
}

// PhoneMetadata is the parsed numbering plan for a single region, or for a
// single non-geographic country calling code. A PhoneMetadata is immutable
// once decoded. Instances are shared between the metadata cache and all of
// its callers, so callers must never modify one.
type PhoneMetadata struct {
	// ID is the region code this numbering plan belongs to, or "001" for a
	// non-geographic numbering plan.
	ID string
	// CountryCode is the country calling code for this plan.
	CountryCode int
	// MainCountryForCode indicates that this region is the main region for
	// its country calling code, when the code is shared by several regions.
	MainCountryForCode bool `json:",omitempty"`
	// LeadingDigits is a pattern of digits that follow the country code for
	// regions sharing a calling code.
	LeadingDigits string `json:",omitempty"`
	// InternationalPrefix is the prefix dialed before an international
	// number, e.g. "00" in most of Europe.
	InternationalPrefix string `json:",omitempty"`
	// PreferredInternationalPrefix is the preferred prefix when multiple
	// international prefixes are in use.
	PreferredInternationalPrefix string `json:",omitempty"`
	// NationalPrefix is the prefix dialed before a national number.
	NationalPrefix string `json:",omitempty"`
	// NationalPrefixForParsing is the pattern stripped from the start of a
	// number when parsing, defaulting to NationalPrefix when empty.
	NationalPrefixForParsing string `json:",omitempty"`
	// NationalPrefixTransformRule transforms the digits captured by
	// NationalPrefixForParsing when parsing.
	NationalPrefixTransformRule string `json:",omitempty"`

	// GeneralDesc matches any valid number in this plan.
	GeneralDesc *PhoneNumberDesc `json:",omitempty"`
	// FixedLine matches fixed-line numbers.
	FixedLine *PhoneNumberDesc `json:",omitempty"`
	// Mobile matches mobile numbers.
	Mobile *PhoneNumberDesc `json:",omitempty"`
	// TollFree matches toll-free numbers.
	TollFree *PhoneNumberDesc `json:",omitempty"`
	// PremiumRate matches premium-rate numbers.
	PremiumRate *PhoneNumberDesc `json:",omitempty"`
	// SharedCost matches shared-cost numbers.
	SharedCost *PhoneNumberDesc `json:",omitempty"`
	// Voip matches voice-over-IP numbers.
	Voip *PhoneNumberDesc `json:",omitempty"`

	// NumberFormats are the formatting rules for national numbers, applied
	// in order with the first matching rule winning.
	NumberFormats []NumberFormat `json:",omitempty"`
	// IntlNumberFormats are the formatting rules for international numbers.
	// Empty means NumberFormats are used for both.
	IntlNumberFormats []NumberFormat `json:",omitempty"`

	// MobileNumberPortableRegion indicates that the region supports mobile
	// number portability.
	MobileNumberPortableRegion bool `json:",omitempty"`
}
