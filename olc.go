package olc

import (
	"errors"
	"math"
)

/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -  */
/* Open Location Code (plus+code) functions                                                       */
/*                                                                                                */
/* github.com/google/open-location-code                                      Apache 2.0 Licence   */
/* plus.codes                                                                                     */
/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -  */

/**
 * Open Location Codes are short, alphanumeric codes that identify rectangular
 * areas anywhere on Earth. A full code such as "8FVC9G8F+6X" consists of up
 * to ten digits encoding latitude and longitude as base-20 pairs, a '+'
 * separator after the eighth digit, and optionally further digits that each
 * subdivide the cell into a 4x5 grid. Codes shorter than eight digits are
 * padded with '0' up to the separator ("8FVC0000+").
 *
 * Codes can be shortened relative to a nearby location by removing leading
 * digits, and recovered again from any reference point close enough to the
 * original area.
 */

const (
	// The character set used to encode coordinate values. Digits were chosen
	// to avoid vowels (no accidental words) and easily confused characters.
	alphabet = "23456789CFGHJMPQRVWX"

	// The number base used for encoding; len(alphabet).
	encodingBase = 20

	// The character used to pad codes out to eight digits.
	padding = '0'

	// The character separating the first eight digits from the remainder.
	separator = '+'

	// Position, in digits, of the separator in a full code.
	separatorPosition = 8

	// Number of digits encoded as base-20 latitude/longitude pairs; digits
	// beyond this use the grid refinement.
	pairCodeLength = 10

	// Minimum number of digits a code must have before Shorten will
	// consider removing any.
	minTrimmableCodeLen = 6

	latitudeMax  = 90
	longitudeMax = 180

	// Side length, in degrees, of the cell remaining after the tenth digit.
	gridSizeDegrees = 0.000125

	// A grid digit subdivides its cell into gridRows x gridColumns.
	gridRows    = 5
	gridColumns = 4
)

// DefaultCodeLength is the usual full-code precision of ten digits,
// describing an area of roughly 14x14 metres. Encode uses it when called
// with a code length of zero.
const DefaultCodeLength = pairCodeLength

// pairResolutions gives the number of degrees spanned by a digit at each
// pair position. The latitude and longitude digits of a pair share a
// resolution.
var pairResolutions = [...]float64{20.0, 1.0, 0.05, 0.0025, 0.000125}

// Errors reported by the codec. Returned errors carry detail about the
// offending input and are matched with errors.Is.
var (
	ErrInvalidCode          = errors.New("invalid open location code")
	ErrInvalidLength        = errors.New("invalid code length")
	ErrCodeTooShort         = errors.New("code too short to shorten")
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// CodeArea is the rectangular region denoted by a decoded code: a
// latitude/longitude bounding box plus the number of digits the code had.
// CodeLength counts digits only, never the separator or padding.
type CodeArea struct {
	LatLo, LngLo float64
	LatHi, LngHi float64
	CodeLength   int
}

// Center returns the centre of the area. Cells touching the north pole or
// the antimeridian are clamped so the centre stays within bounds.
func (a CodeArea) Center() (lat, lng float64) {
	lat = math.Min(a.LatLo+(a.LatHi-a.LatLo)/2, latitudeMax)
	lng = math.Min(a.LngLo+(a.LngHi-a.LngLo)/2, longitudeMax)
	return lat, lng
}

// Contains reports whether the point lies within the area. The southern and
// western edges are part of the area, the northern and eastern edges belong
// to the neighbouring cells.
func (a CodeArea) Contains(lat, lng float64) bool {
	return a.LatLo <= lat && lat < a.LatHi &&
		a.LngLo <= lng && lng < a.LngHi
}
