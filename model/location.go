package model

// Location identifies a point the travel matrix can evaluate. A Location is
// either a user-assigned matrix index (Index >= 0, HasCoord == false) or a
// coordinate pair; every Location resolves, at Problem construction time, to
// a unique dense index used verbatim as the (from, to) argument of the
// travel matrix (spec §3, §6). Locations are deduplicated on insertion: two
// coordinate Locations with identical Lat/Lon collapse to the same dense
// index, and two equal user-assigned indices collapse trivially.
//
// A single Problem must use one addressing mode consistently: either every
// Location is index-based (the caller already knows the matrix's row/column
// numbering) or every Location is coordinate-based (the dense index is
// assigned in first-seen order, and the external matrix provider is built
// over that same order). Mixing the two within one Problem is a
// configuration error — there is no single numbering space that satisfies
// both a caller-supplied index and a dedup counter at once.
type Location struct {
	// Index is the user-assigned matrix index. Meaningful only when
	// HasCoord is false.
	Index int

	// HasCoord selects coordinate-based resolution over a raw index.
	HasCoord bool
	Lat, Lon float64
}

// FromIndex builds a Location that refers directly to matrix index idx.
func FromIndex(idx int) Location { return Location{Index: idx} }

// FromCoord builds a Location identified by a coordinate pair; it is
// deduplicated against other coordinate Locations by exact equality, and
// assigned a dense index in first-seen order.
func FromCoord(lat, lon float64) Location { return Location{HasCoord: true, Lat: lat, Lon: lon} }

type coordKey struct {
	lat, lon float64
}

// locationRegistry deduplicates Locations into dense indices during Problem
// construction.
type locationRegistry struct {
	seenIndex    map[int]bool
	seenCoord    map[coordKey]int
	coordCounter int
	sawIndexMode bool
	sawCoordMode bool
}

func newLocationRegistry() *locationRegistry {
	return &locationRegistry{seenIndex: make(map[int]bool), seenCoord: make(map[coordKey]int)}
}

// resolve returns the dense (and travel-matrix-facing) index for loc,
// allocating a new coordinate slot on first sight of a given (lat, lon).
func (r *locationRegistry) resolve(loc Location) int {
	if loc.HasCoord {
		r.sawCoordMode = true
		k := coordKey{lat: loc.Lat, lon: loc.Lon}
		if idx, ok := r.seenCoord[k]; ok {
			return idx
		}
		idx := r.coordCounter
		r.coordCounter++
		r.seenCoord[k] = idx
		return idx
	}
	r.sawIndexMode = true
	r.seenIndex[loc.Index] = true
	return loc.Index
}

// mixedModes reports whether both index-based and coordinate-based
// Locations were registered, which is a configuration error.
func (r *locationRegistry) mixedModes() bool { return r.sawIndexMode && r.sawCoordMode }

// count returns the size of the dense index space allocated so far: the
// number of distinct coordinates in coordinate mode, or the largest
// registered index plus one in index mode (unused indices below it count).
func (r *locationRegistry) count() int {
	if r.sawCoordMode {
		return r.coordCounter
	}
	max := -1
	for idx := range r.seenIndex {
		if idx > max {
			max = idx
		}
	}
	return max + 1
}
