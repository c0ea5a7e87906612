package auth

import (
	"encoding/json"
	"strings"
)

// Identity is the closed set of account capability levels.
type Identity int

const (
	IdentityGuest Identity = iota
	IdentityMember
	IdentityVip
	IdentityAdmin
)

// String returns the canonical lowercase form used on the wire and in storage.
func (i Identity) String() string {
	switch i {
	case IdentityMember:
		return "member"
	case IdentityVip:
		return "vip"
	case IdentityAdmin:
		return "admin"
	default:
		return "guest"
	}
}

// ParseIdentity decodes a stored or token-borne identity string.
//
// Unrecognised values deliberately fall back to IdentityGuest instead of
// failing: tokens and rows written under an older or newer schema still
// decode, they just carry the lowest privilege. Callers must not treat a
// Guest result as proof the input was well-formed.
func ParseIdentity(s string) Identity {
	switch strings.ToLower(s) {
	case "member":
		return IdentityMember
	case "vip":
		return IdentityVip
	case "admin":
		return IdentityAdmin
	default:
		return IdentityGuest
	}
}

// MarshalJSON encodes the identity as its canonical string.
func (i Identity) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

// UnmarshalJSON decodes with the same Guest fallback as ParseIdentity.
func (i *Identity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*i = ParseIdentity(s)
	return nil
}
