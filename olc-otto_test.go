package olc

import (
	"net/http"
	"testing"

	"github.com/robertkrimen/otto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	vm = otto.New()
)

// Run the reference Javascript in an Otto VM, so we have a reference copy we
// can test against. As you'd expect, the Otto version runs much more slowly
// than the native one; see the benchmarks below.

func init() {
	modules := []string{
		"https://cdn.jsdelivr.net/gh/google/open-location-code@master/js/src/openlocationcode.js",
	}

	for _, mod := range modules {
		resp, err := http.Get(mod)
		must(err)
		_, err = vm.Run(resp.Body)
		resp.Body.Close()
		must(err)
	}
}

func ottoEncode(lat, lng float64, codeLength int) (string, error) {
	vm.Set("lat", lat)
	vm.Set("lng", lng)
	vm.Set("len", codeLength)
	ret, err := vm.Run(`OpenLocationCode.encode(lat, lng, len);`)
	if err != nil {
		return "", err
	}
	return ret.ToString()
}

func ottoDecode(code string) (CodeArea, error) {
	vm.Set("code", code)
	if _, err := vm.Run(`area = OpenLocationCode.decode(code);`); err != nil {
		return CodeArea{}, err
	}

	var area CodeArea
	for _, f := range []struct {
		field string
		dst   *float64
	}{
		{"latitudeLo", &area.LatLo},
		{"longitudeLo", &area.LngLo},
		{"latitudeHi", &area.LatHi},
		{"longitudeHi", &area.LngHi},
	} {
		ret, err := vm.Run("area." + f.field)
		if err != nil {
			return CodeArea{}, err
		}
		*f.dst, err = ret.ToFloat()
		if err != nil {
			return CodeArea{}, err
		}
	}
	ret, err := vm.Run(`area.codeLength`)
	if err != nil {
		return CodeArea{}, err
	}
	n, err := ret.ToInteger()
	if err != nil {
		return CodeArea{}, err
	}
	area.CodeLength = int(n)
	return area, nil
}

func ottoShorten(code string, lat, lng float64) (string, error) {
	vm.Set("code", code)
	vm.Set("lat", lat)
	vm.Set("lng", lng)
	ret, err := vm.Run(`OpenLocationCode.shorten(code, lat, lng);`)
	if err != nil {
		return "", err
	}
	return ret.ToString()
}

func ottoRecoverNearest(code string, lat, lng float64) (string, error) {
	vm.Set("code", code)
	vm.Set("lat", lat)
	vm.Set("lng", lng)
	ret, err := vm.Run(`OpenLocationCode.recoverNearest(code, lat, lng);`)
	if err != nil {
		return "", err
	}
	return ret.ToString()
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func TestEncodeAgainstReference(t *testing.T) {
	// None of these sit exactly on a cell boundary at any tested length;
	// a point bit-exactly on a boundary may legitimately land in either
	// of the adjoining cells depending on rounding.
	points := []struct {
		lat, lng float64
	}{
		{20.3750005, 2.7750005},
		{47.0000315, 8.0000005},
		{51.3701125, -1.2177653},
		{-41.27306285, 174.7859373},
		{37.5396691, -122.3750691},
		{-89.9999995, -179.9999995},
		{0.0000005, 0.0000005},
	}
	for _, p := range points {
		for _, length := range []int{2, 4, 6, 8, 10, 11, 12, 13, 14, 15} {
			code, err := Encode(p.lat, p.lng, length)
			require.NoError(t, err)
			jsCode, err := ottoEncode(p.lat, p.lng, length)
			require.NoError(t, err)
			assert.Equal(t, jsCode, code, "Encode(%v, %v, %d)", p.lat, p.lng, length)

			area, err := Decode(code)
			require.NoError(t, err)
			jsArea, err := ottoDecode(code)
			require.NoError(t, err)
			assert.InDelta(t, jsArea.LatLo, area.LatLo, 1e-10, "Decode(%q)", code)
			assert.InDelta(t, jsArea.LngLo, area.LngLo, 1e-10, "Decode(%q)", code)
			assert.InDelta(t, jsArea.LatHi, area.LatHi, 1e-10, "Decode(%q)", code)
			assert.InDelta(t, jsArea.LngHi, area.LngHi, 1e-10, "Decode(%q)", code)
			assert.Equal(t, jsArea.CodeLength, area.CodeLength, "Decode(%q)", code)
		}
	}
}

func TestShortenAgainstReference(t *testing.T) {
	refs := []struct {
		code     string
		lat, lng float64
	}{
		{"9C3W9QCJ+2VX", 51.3701125, -1.217765625},
		{"9C3W9QCJ+2VX", 51.3708675, -1.217765625},
		{"9C3W9QCJ+2VX", 51.379, -1.18},
		{"9C3W9QCJ+2VX", 20.0, 2.0},
		{"8FVC2222+22G", 47.0, 8.0},
	}
	for _, r := range refs {
		short, err := Shorten(r.code, r.lat, r.lng)
		require.NoError(t, err)
		jsShort, err := ottoShorten(r.code, r.lat, r.lng)
		require.NoError(t, err)
		assert.Equal(t, jsShort, short, "Shorten(%q, %v, %v)", r.code, r.lat, r.lng)

		full, err := RecoverNearest(short, r.lat, r.lng)
		require.NoError(t, err)
		jsFull, err := ottoRecoverNearest(short, r.lat, r.lng)
		require.NoError(t, err)
		assert.Equal(t, jsFull, full, "RecoverNearest(%q, %v, %v)", short, r.lat, r.lng)
	}
}

func BenchmarkOttoImpl(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := ottoEncode(51.3701125, -1.217765625, 11)
		assert.NoError(b, err)
	}
}

func BenchmarkGoImpl(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := Encode(51.3701125, -1.217765625, 11)
		assert.NoError(b, err)
	}
}
