package olc

import "math"

/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -  */
/* Degree range helpers                                                                           */
/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -  */

/**
 * Constrain latitude to range -90..+90; values beyond the poles are clipped,
 * not wrapped, so e.g. 91 => 90.
 *
 * @param {number} degrees
 * @returns degrees within range -90..+90.
 */
func clipLatitude(degrees float64) float64 {
	return math.Max(-latitudeMax, math.Min(latitudeMax, degrees))
}

/**
 * Constrain longitude to range -180 (inclusive) to +180 (exclusive);
 * e.g. 181 => -179, -181 => 179, 180 => -180.
 *
 * @param {number} degrees
 * @returns degrees within range -180..+180, never exactly +180.
 */
func normalizeLongitude(degrees float64) float64 {
	for degrees < -longitudeMax {
		degrees += 360
	}
	for degrees >= longitudeMax {
		degrees -= 360
	}
	return degrees
}

// latitudePrecision returns the latitude extent, in degrees, of a cell at
// the given code length. Pair digits narrow latitude by a factor of 20 per
// pair, grid digits by a factor of gridRows each.
//
// Encode uses this to nudge latitude 90 down into the northernmost cell so
// that the resulting code decodes to an area containing the pole.
func latitudePrecision(codeLength int) float64 {
	if codeLength <= pairCodeLength {
		return math.Pow(encodingBase, math.Floor(float64(codeLength)/-2+2))
	}
	return math.Pow(encodingBase, -3) / math.Pow(gridRows, float64(codeLength-pairCodeLength))
}
