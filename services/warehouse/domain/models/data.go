package models

// DataMap holds an item's or instance's string-keyed metadata.
//
// Updates replace the whole map, never merge keys. Callers mutating a record
// must go through Replace (or assign a fresh map) so partial key-merges cannot
// creep in.
type DataMap map[string]string

// Clone returns an independent copy. A nil map clones to an empty map so
// stored records never alias caller-owned memory.
func (d DataMap) Clone() DataMap {
	out := make(DataMap, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Equal reports whether both maps hold exactly the same key/value pairs.
func (d DataMap) Equal(other DataMap) bool {
	if len(d) != len(other) {
		return false
	}
	for k, v := range d {
		if ov, ok := other[k]; !ok || ov != v {
			return false
		}
	}
	return true
}
