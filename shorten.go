package olc

import (
	"fmt"
	"math"
	"strings"
)

/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -  */
/* Shortening and recovery                                                                        */
/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -  */

/**
 * Remove as many digits as possible from the front of a full code, such
 * that the result can still be recovered with RecoverNearest from any
 * point near the reference location. Depending on how close the reference
 * is to the code's centre, four, six or eight leading characters are
 * removed; a code whose area is nowhere near the reference is returned
 * unchanged.
 *
 * @param   {string} code a full code without padding.
 * @param   {number} lat  reference latitude in degrees.
 * @param   {number} lng  reference longitude in degrees.
 * @returns the shortened (upper-cased) code. ErrInvalidCode if the code is
 *          not full, ErrUnsupportedOperation if it is padded, or
 *          ErrCodeTooShort if it has too few digits to trim.
 */
func Shorten(code string, lat, lng float64) (string, error) {
	area, err := Decode(code)
	if err != nil {
		return "", err
	}
	if strings.IndexByte(code, padding) >= 0 {
		return "", fmt.Errorf("%w: cannot shorten padded code %q", ErrUnsupportedOperation, code)
	}
	if area.CodeLength < minTrimmableCodeLen {
		return "", fmt.Errorf("%w: %q has fewer than %d digits", ErrCodeTooShort, code, minTrimmableCodeLen)
	}
	code = strings.ToUpper(code)

	// How close is the reference to the centre of the code's area?
	centerLat, centerLng := area.Center()
	r := math.Max(
		math.Abs(centerLat-clipLatitude(lat)),
		math.Abs(centerLng-normalizeLongitude(lng)))

	for i := len(pairResolutions) - 2; i >= 1; i-- {
		// Trim only when the reference is within 0.3 of the trimmed
		// resolution from the centre; 0.5 would be the limit at which
		// recovery still works, but references near a cell edge would
		// then flip into the neighbouring cell.
		if r < pairResolutions[i]*0.3 {
			return code[(i+1)*2:], nil
		}
	}
	return code, nil
}

/**
 * Recover the full code nearest to a reference location from a shortened
 * code. A full code is returned unchanged (upper-cased).
 *
 * @param   {string} code a short code, e.g. "9G8F+6X".
 * @param   {number} lat  reference latitude in degrees.
 * @param   {number} lng  reference longitude in degrees.
 * @returns the nearest matching full code, or ErrInvalidCode.
 */
func RecoverNearest(code string, lat, lng float64) (string, error) {
	if !IsShort(code) {
		if IsFull(code) {
			return strings.ToUpper(code), nil
		}
		return "", fmt.Errorf("%w: %q is not a short code", ErrInvalidCode, code)
	}
	lat = clipLatitude(lat)
	lng = normalizeLongitude(lng)
	code = strings.ToUpper(code)

	// The number of digits missing from the front of the code, and the
	// angular size of the cell those digits span.
	paddingLength := separatorPosition - strings.IndexByte(code, separator)
	resolution := math.Pow(encodingBase, 2-float64(paddingLength)/2)
	// Distance from the centre of a cell to its edge.
	halfResolution := resolution / 2

	// Pad the code with the leading digits of the reference location,
	// rounded down onto the cell grid.
	roundedLat := math.Floor(lat/resolution) * resolution
	roundedLng := math.Floor(lng/resolution) * resolution
	reference, err := Encode(roundedLat, roundedLng, DefaultCodeLength)
	if err != nil {
		return "", err
	}
	area, err := Decode(reference[:paddingLength] + code)
	if err != nil {
		return "", err
	}

	// The padded candidate can be up to a full cell away from the
	// reference; if it is more than half a cell away, the nearest match
	// is the neighbouring cell on the side of the reference.
	centerLat, centerLng := area.Center()
	if diff := centerLat - lat; diff > halfResolution {
		centerLat -= resolution
	} else if diff < -halfResolution {
		centerLat += resolution
	}
	if diff := centerLng - lng; diff > halfResolution {
		centerLng -= resolution
	} else if diff < -halfResolution {
		centerLng += resolution
	}

	return Encode(centerLat, centerLng, area.CodeLength)
}
