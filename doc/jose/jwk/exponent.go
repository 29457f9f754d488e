/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jwk

import (
	"encoding/json"
	"fmt"
)

// publicExponentValue is the standard RSA public exponent. It is the only
// exponent this package can represent.
const publicExponentValue = 65537

const (
	publicExponentB64 = "AQAB"
	// as above, with trailing zero bytes. Produced by some JWK emitters;
	// accepted on read, never written.
	publicExponentB64Padded = "AQABAA=="
)

// PublicExponent is the standard RSA public exponent, 65537. It carries no
// data: any value of this type represents exactly that integer.
type PublicExponent struct{}

// MarshalJSON always emits the canonical form "AQAB".
func (PublicExponent) MarshalJSON() ([]byte, error) {
	return json.Marshal(publicExponentB64)
}

// UnmarshalJSON accepts only the two known encodings of 65537.
func (*PublicExponent) UnmarshalJSON(data []byte) error {
	var e string
	if err := json.Unmarshal(data, &e); err != nil {
		return fmt.Errorf("unmarshal public exponent: %w", err)
	}

	return checkPublicExponent(e)
}

func checkPublicExponent(e string) error {
	if e != publicExponentB64 && e != publicExponentB64Padded {
		return fmt.Errorf("%w: public exponent must be %d", ErrInvalidExponent, publicExponentValue)
	}

	return nil
}
