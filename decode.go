package olc

import (
	"fmt"
	"strings"
)

/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -  */
/* Decoding                                                                                       */
/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -  */

/**
 * Decode a full Open Location Code into the area it represents.
 *
 * @param   {string} code a full code, e.g. "8FVC9G8F+6X".
 * @returns the CodeArea for the code, ErrInvalidCode if the string is not
 *          a full code (short codes need RecoverNearest first).
 */
func Decode(code string) (CodeArea, error) {
	if !IsFull(code) {
		return CodeArea{}, fmt.Errorf("%w: %q is not a full code", ErrInvalidCode, code)
	}

	digits := stripCode(code)
	if len(digits) <= pairCodeLength {
		return decodePairs(digits), nil
	}

	// Grid digits are decoded as offsets within the final pair cell.
	pairArea := decodePairs(digits[:pairCodeLength])
	gridArea := decodeGrid(digits[pairCodeLength:])
	return CodeArea{
		LatLo:      pairArea.LatLo + gridArea.LatLo,
		LngLo:      pairArea.LngLo + gridArea.LngLo,
		LatHi:      pairArea.LatLo + gridArea.LatHi,
		LngHi:      pairArea.LngLo + gridArea.LngHi,
		CodeLength: pairArea.CodeLength + gridArea.CodeLength,
	}, nil
}

// stripCode reduces a valid code to its bare digits: upper-case, separator
// removed, padding dropped.
func stripCode(code string) string {
	code = strings.ToUpper(code)
	code = strings.ReplaceAll(code, string(separator), "")
	if pad := strings.IndexByte(code, padding); pad >= 0 {
		code = code[:pad]
	}
	return code
}

// decodePairs decodes up to the first ten digits into an area. The digits
// alternate between latitude and longitude.
func decodePairs(digits string) CodeArea {
	latLo, latHi := decodePairsSequence(digits, 0)
	lngLo, lngHi := decodePairsSequence(digits, 1)
	return CodeArea{
		LatLo:      latLo - latitudeMax,
		LngLo:      lngLo - longitudeMax,
		LatHi:      latHi - latitudeMax,
		LngHi:      lngHi - longitudeMax,
		CodeLength: len(digits),
	}
}

// decodePairsSequence decodes either the latitude (offset 0) or longitude
// (offset 1) digits of a pair sequence into a range in the positive
// domain. With an odd number of digits the two ranges differ by one level
// of resolution.
func decodePairsSequence(digits string, offset int) (lo, hi float64) {
	i := 0
	for i*2+offset < len(digits) {
		lo += float64(strings.IndexByte(alphabet, digits[i*2+offset])) * pairResolutions[i]
		i++
	}
	return lo, lo + pairResolutions[i-1]
}

// decodeGrid decodes digits beyond the first ten into an area relative to
// the south-west corner of the enclosing pair cell.
func decodeGrid(digits string) CodeArea {
	var latLo, lngLo float64
	latPlaceValue := float64(gridSizeDegrees)
	lngPlaceValue := float64(gridSizeDegrees)

	for i := 0; i < len(digits); i++ {
		codeIndex := strings.IndexByte(alphabet, digits[i])
		row := codeIndex / gridColumns
		col := codeIndex % gridColumns
		latPlaceValue /= gridRows
		lngPlaceValue /= gridColumns
		latLo += float64(row) * latPlaceValue
		lngLo += float64(col) * lngPlaceValue
	}
	return CodeArea{
		LatLo:      latLo,
		LngLo:      lngLo,
		LatHi:      latLo + latPlaceValue,
		LngHi:      lngLo + lngPlaceValue,
		CodeLength: len(digits),
	}
}
