package model

import "encoding/json"

// canonical returns the canonical serialized form of a document. It is the
// single comparison mechanism shared by the form-sync loop guard and the
// persistence round-trip; both must agree byte for byte.
func canonical(d Document) []byte {
	b, err := json.Marshal(d)
	if err != nil {
		// Document contains only marshalable types; this cannot happen.
		panic(err)
	}
	return b
}

// Equal reports whether two documents are structurally identical.
func (d Document) Equal(other Document) bool {
	return string(canonical(d)) == string(canonical(other))
}

// Clone returns a deep copy sharing no slices with the original.
func (d Document) Clone() Document {
	var out Document
	if err := json.Unmarshal(canonical(d), &out); err != nil {
		panic(err)
	}
	return out
}
