package olc

import (
	"fmt"
	"math"
)

/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -  */
/* Encoding                                                                                       */
/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -  */

/**
 * Encode a location into an Open Location Code of the requested length.
 *
 * Latitudes outside -90..90 are clipped, longitudes are wrapped into
 * -180..180. Lengths of 2, 4 and 6 produce padded codes ("7FG40000+"),
 * 8 produces a code ending at the separator ("7FG49QCJ+"), 10 is the
 * standard precision, and lengths of 11 or more append grid
 * refinement digits. A codeLength of zero selects DefaultCodeLength.
 *
 * @param   {number} lat        latitude in degrees.
 * @param   {number} lng        longitude in degrees.
 * @param   {number} codeLength number of digits in the code.
 * @returns the code for the location, ErrInvalidLength if codeLength is
 *          below 2 or an odd number below 10.
 */
func Encode(lat, lng float64, codeLength int) (string, error) {
	if codeLength == 0 {
		codeLength = DefaultCodeLength
	}
	if codeLength < 2 || (codeLength < pairCodeLength && codeLength%2 == 1) {
		return "", fmt.Errorf("%w: %d", ErrInvalidLength, codeLength)
	}

	lat = clipLatitude(lat)
	lng = normalizeLongitude(lng)

	// Latitude 90 sits on the boundary of a cell that does not exist;
	// nudge it south into the northernmost cell of this code length.
	if lat == latitudeMax {
		lat -= latitudePrecision(codeLength)
	}

	pairLength := codeLength
	if pairLength > pairCodeLength {
		pairLength = pairCodeLength
	}
	code := encodePairs(lat, lng, pairLength)
	if codeLength > pairCodeLength {
		code += encodeGrid(lat, lng, codeLength-pairCodeLength)
	}
	return code, nil
}

// encodePairs encodes the location into up to ten digits, alternating
// latitude and longitude digits of successively finer resolution, padding
// with zeros and placing the separator to give at least nine characters.
func encodePairs(lat, lng float64, codeLength int) string {
	code := make([]byte, 0, separatorPosition+3)

	// Shift into the positive domain, then strip off one digit value per
	// digit. The subtraction order must not be changed: independent
	// implementations rely on identical rounding at cell boundaries.
	adjustedLatitude := lat + latitudeMax
	adjustedLongitude := lng + longitudeMax

	digitCount := 0
	for digitCount < codeLength {
		placeValue := pairResolutions[digitCount/2]

		digitValue := int(math.Floor(adjustedLatitude / placeValue))
		adjustedLatitude -= float64(digitValue) * placeValue
		code = append(code, alphabet[digitValue])
		digitCount++

		digitValue = int(math.Floor(adjustedLongitude / placeValue))
		adjustedLongitude -= float64(digitValue) * placeValue
		code = append(code, alphabet[digitValue])
		digitCount++

		if digitCount == separatorPosition && digitCount < codeLength {
			code = append(code, separator)
		}
	}
	for len(code) < separatorPosition {
		code = append(code, padding)
	}
	if len(code) == separatorPosition {
		code = append(code, separator)
	}
	return string(code)
}

// encodeGrid encodes the location into codeLength digits of grid
// refinement within the cell left after ten pair digits. Each digit picks
// one cell from a grid of gridRows x gridColumns.
func encodeGrid(lat, lng float64, codeLength int) string {
	code := make([]byte, 0, codeLength)

	latPlaceValue := float64(gridSizeDegrees)
	lngPlaceValue := float64(gridSizeDegrees)
	adjustedLatitude := math.Mod(lat+latitudeMax, latPlaceValue)
	adjustedLongitude := math.Mod(lng+longitudeMax, lngPlaceValue)

	for i := 0; i < codeLength; i++ {
		row := int(math.Floor(adjustedLatitude / (latPlaceValue / gridRows)))
		col := int(math.Floor(adjustedLongitude / (lngPlaceValue / gridColumns)))
		latPlaceValue /= gridRows
		lngPlaceValue /= gridColumns
		adjustedLatitude -= float64(row) * latPlaceValue
		adjustedLongitude -= float64(col) * lngPlaceValue
		code = append(code, alphabet[row*gridColumns+col])
	}
	return string(code)
}
