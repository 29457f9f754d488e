/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jwk

import (
	"encoding/json"
	"fmt"
)

// Set is a JWK Set document (RFC 7517 §5): an object with a "keys" array.
type Set struct {
	Keys []*JWK `json:"keys"`
}

// ParseSet deserializes a JWK Set from JSON. Every key in the set must
// parse; one malformed key fails the whole document.
func ParseSet(data []byte) (*Set, error) {
	set := &Set{}
	if err := json.Unmarshal(data, set); err != nil {
		return nil, fmt.Errorf("parse JWK set: %w", err)
	}

	return set, nil
}

// LookupKeyID returns the first key carrying the given key ID.
func (s *Set) LookupKeyID(kid string) (*JWK, bool) {
	for _, key := range s.Keys {
		if key.KeyID == kid {
			return key, true
		}
	}

	return nil, false
}

// Zeroize wipes the key material of every key in the set.
func (s *Set) Zeroize() {
	for _, key := range s.Keys {
		key.Zeroize()
	}
}
