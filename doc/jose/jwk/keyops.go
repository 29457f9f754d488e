/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jwk

import (
	"encoding/json"
	"fmt"
)

// Key operation tokens registered by RFC 7517 §4.3. KeyOperations also
// carries unregistered tokens unchanged, so producers using private-use
// operations still round-trip.
const (
	OpSign       = "sign"
	OpVerify     = "verify"
	OpEncrypt    = "encrypt"
	OpDecrypt    = "decrypt"
	OpWrapKey    = "wrapKey"
	OpUnwrapKey  = "unwrapKey"
	OpDeriveKey  = "deriveKey"
	OpDeriveBits = "deriveBits"
)

// KeyOperations is a set of permitted key operations. Duplicates collapse
// and comparison ignores order, but the set remembers insertion order so
// that serialization is deterministic.
type KeyOperations struct {
	ops []string
}

// NewKeyOperations builds a set from the given tokens.
func NewKeyOperations(ops ...string) KeyOperations {
	var set KeyOperations
	for _, op := range ops {
		set.Add(op)
	}

	return set
}

// IsEmpty reports whether the set holds no operations.
func (o *KeyOperations) IsEmpty() bool {
	return len(o.ops) == 0
}

// Contains reports whether op is in the set.
func (o *KeyOperations) Contains(op string) bool {
	for _, existing := range o.ops {
		if existing == op {
			return true
		}
	}

	return false
}

// Add inserts op into the set. Inserting an operation twice has no effect.
func (o *KeyOperations) Add(op string) {
	if !o.Contains(op) {
		o.ops = append(o.ops, op)
	}
}

// Values returns the operations in insertion order.
func (o *KeyOperations) Values() []string {
	out := make([]string, len(o.ops))
	copy(out, o.ops)

	return out
}

// Equal reports set equality, ignoring order.
func (o *KeyOperations) Equal(other *KeyOperations) bool {
	if len(o.ops) != len(other.ops) {
		return false
	}

	for _, op := range o.ops {
		if !other.Contains(op) {
			return false
		}
	}

	return true
}

// MarshalJSON emits the set as a JSON array. Empty sets are suppressed at
// the envelope level rather than emitted as [].
func (o KeyOperations) MarshalJSON() ([]byte, error) {
	if o.ops == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(o.ops)
}

// UnmarshalJSON reads a JSON array of tokens. A missing key_ops member and
// an explicit [] both produce the empty set.
func (o *KeyOperations) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshal key_ops: %w", err)
	}

	o.ops = nil
	for _, op := range raw {
		o.Add(op)
	}

	return nil
}
