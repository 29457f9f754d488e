/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jwk

import "fmt"

// Algorithm identifies the JWS algorithm a key is intended for. It is
// purely descriptive and carries no key material.
type Algorithm string

// Supported JWS algorithms.
const (
	AlgHS256 Algorithm = "HS256"
	AlgRS256 Algorithm = "RS256"
	AlgES256 Algorithm = "ES256"
)

// ParseAlgorithm validates s against the supported algorithm set.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch alg := Algorithm(s); alg {
	case AlgHS256, AlgRS256, AlgES256:
		return alg, nil
	default:
		return "", fmt.Errorf("unknown algorithm %q", s)
	}
}

// CompatibleWith reports whether the algorithm may be used with the given
// key: HS256 requires a symmetric key, RS256 an RSA key and ES256 an
// elliptic curve key on P-256. All other pairings are rejected. Note this
// check is curve-aware but not bit-length-aware: any RSA key accepts
// RS256 regardless of modulus size.
func (a Algorithm) CompatibleWith(key Key) bool {
	switch a {
	case AlgHS256:
		_, ok := key.(*SymmetricKey)

		return ok
	case AlgRS256:
		_, ok := key.(*RSAKey)

		return ok
	case AlgES256:
		ec, ok := key.(*ECKey)
		if !ok {
			return false
		}

		_, ok = ec.Curve.(*P256)

		return ok
	}

	return false
}

// KeyUse describes the intended use of a key (RFC 7517 §4.2).
type KeyUse string

// Registered key use values.
const (
	UseSigning    KeyUse = "sig"
	UseEncryption KeyUse = "enc"
)

// ParseKeyUse validates s against the registered key use values.
func ParseKeyUse(s string) (KeyUse, error) {
	switch use := KeyUse(s); use {
	case UseSigning, UseEncryption:
		return use, nil
	default:
		return "", fmt.Errorf("unknown key use %q", s)
	}
}
