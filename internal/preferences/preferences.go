// Package preferences decodes the opaque catalog-preferences string carried
// on inbound requests. The string is either an lz-string compressed JSON
// document (URI-component encoding) or plain JSON; anything undecodable
// yields the zero value.
package preferences

import (
	"encoding/json"

	lzstring "github.com/daku10/go-lz-string"
)

// CastCount values callers may request. Anything else clamps to the default.
const (
	DefaultCastCount = 5
	// CastCountUnlimited disables cast slicing.
	CastCountUnlimited = "unlimited"
)

// Preferences are the caller-held options that shape a metadata response.
type Preferences struct {
	// RPDBKey is the caller's Rating Poster DB key. Presence switches poster
	// output to the premium proxy URL.
	RPDBKey string `json:"rpdbkey"`

	// CastCount limits the cast list: 5, 10, 15 or "unlimited".
	CastCount json.RawMessage `json:"castCount"`

	// HideEpisodeThumbnails routes episode thumbnails through the blur proxy.
	HideEpisodeThumbnails bool `json:"hideEpisodeThumbnails"`
}

// Decode parses a raw preferences string. It never fails: compressed JSON is
// tried first, then plain JSON, then the zero value.
func Decode(raw string) Preferences {
	if raw == "" {
		return Preferences{}
	}

	if decompressed, err := lzstring.DecompressFromEncodedURIComponent(raw); err == nil {
		var p Preferences
		if json.Unmarshal([]byte(decompressed), &p) == nil {
			return p
		}
	}

	var p Preferences
	if json.Unmarshal([]byte(raw), &p) == nil {
		return p
	}
	return Preferences{}
}

// ResolvedCastCount returns how many cast members to keep, and whether a
// limit applies at all. Only 5, 10 and 15 are honored; "unlimited" lifts the
// cap; everything else falls back to the default.
func (p Preferences) ResolvedCastCount() (int, bool) {
	if len(p.CastCount) == 0 {
		return DefaultCastCount, true
	}

	var s string
	if json.Unmarshal(p.CastCount, &s) == nil && s == CastCountUnlimited {
		return 0, false
	}

	var n int
	if json.Unmarshal(p.CastCount, &n) == nil {
		switch n {
		case 5, 10, 15:
			return n, true
		}
	}
	return DefaultCastCount, true
}
