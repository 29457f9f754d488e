/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jwk

import (
	"github.com/securekey/jsonwebkey/util/bytebuf"
)

// Key type discriminators (the JWK "kty" parameter), as registered by
// RFC 7518 §6.1.
const (
	KtyEC        = "EC"
	KtyRSA       = "RSA"
	KtySymmetric = "oct"
)

// P256Size is the byte length of a P-256 coordinate or private scalar.
const P256Size = 32

// Key is a cryptographic key held by a JWK. It is a closed union: the only
// implementations are *ECKey, *RSAKey and *SymmetricKey.
type Key interface {
	// Kty returns the JWK key type discriminator.
	Kty() string

	// IsPrivate reports whether the key contains private components. A
	// symmetric key is always private.
	IsPrivate() bool

	// Public returns the public counterpart of the key with all private
	// components stripped. Symmetric keys have no public counterpart and
	// return (nil, false). A key that is already public returns itself.
	Public() (Key, bool)

	// PKCS8DER encodes an asymmetric key as a PKCS#8 (private) or
	// SubjectPublicKeyInfo (public) DER structure.
	PKCS8DER() ([]byte, error)

	// PKCS8PEM is PKCS8DER with PEM armoring.
	PKCS8PEM() (string, error)

	// Zeroize overwrites all sensitive byte buffers owned by the key.
	Zeroize()

	isKey()
}

// Curve holds the parameters of an elliptic curve key. It is a closed
// union: the only implementation is *P256.
type Curve interface {
	// Crv returns the JWK curve discriminator.
	Crv() string

	isCurve()
}

// P256Crv is the JWK name of the prime256v1 curve.
const P256Crv = "P-256"

// P256 holds prime256v1 curve parameters: the affine public coordinates
// and, for private keys, the private scalar.
type P256 struct {
	// D is the private scalar, nil for public keys.
	D *bytebuf.Array

	// X is the curve point x coordinate.
	X *bytebuf.Array

	// Y is the curve point y coordinate.
	Y *bytebuf.Array
}

// Crv returns "P-256".
func (c *P256) Crv() string {
	return P256Crv
}

func (c *P256) isCurve() {}

// ECKey is an elliptic curve key, as per RFC 7518 §6.2.
type ECKey struct {
	Curve Curve
}

// Kty returns "EC".
func (k *ECKey) Kty() string {
	return KtyEC
}

// IsPrivate reports whether the private scalar is present.
func (k *ECKey) IsPrivate() bool {
	c, ok := k.Curve.(*P256)

	return ok && c.D != nil
}

// Public returns the key with the private scalar stripped.
func (k *ECKey) Public() (Key, bool) {
	if !k.IsPrivate() {
		return k, true
	}

	c := k.Curve.(*P256)

	return &ECKey{Curve: &P256{X: c.X.Clone(), Y: c.Y.Clone()}}, true
}

// Zeroize wipes the private scalar and the public coordinates.
func (k *ECKey) Zeroize() {
	if c, ok := k.Curve.(*P256); ok {
		c.D.Zeroize()
		c.X.Zeroize()
		c.Y.Zeroize()
	}
}

func (k *ECKey) isKey() {}

// RSAPublicData holds the public half of an RSA key.
type RSAPublicData struct {
	// E is the public exponent, fixed to 65537.
	E PublicExponent

	// N is the modulus.
	N *bytebuf.Vec
}

// RSAPrivateData holds the private half of an RSA key: the private
// exponent plus the optional CRT acceleration parameters. Only D is
// required to parse; a full PKCS#8 export additionally needs all of
// P, Q, Dp, Dq and Qi.
type RSAPrivateData struct {
	D  *bytebuf.Vec
	P  *bytebuf.Vec
	Q  *bytebuf.Vec
	Dp *bytebuf.Vec
	Dq *bytebuf.Vec
	Qi *bytebuf.Vec
}

// HasCRTParams reports whether all five CRT parameters are present.
func (p *RSAPrivateData) HasCRTParams() bool {
	return p.P != nil && p.Q != nil && p.Dp != nil && p.Dq != nil && p.Qi != nil
}

// RSAKey is an RSA key, as per RFC 7518 §6.3.
type RSAKey struct {
	PublicData RSAPublicData

	// PrivateData is nil for public keys.
	PrivateData *RSAPrivateData
}

// Kty returns "RSA".
func (k *RSAKey) Kty() string {
	return KtyRSA
}

// IsPrivate reports whether the private data is present.
func (k *RSAKey) IsPrivate() bool {
	return k.PrivateData != nil
}

// Public returns the key with the private data stripped.
func (k *RSAKey) Public() (Key, bool) {
	if !k.IsPrivate() {
		return k, true
	}

	return &RSAKey{PublicData: RSAPublicData{N: k.PublicData.N.Clone()}}, true
}

// Zeroize wipes the modulus and all private components.
func (k *RSAKey) Zeroize() {
	k.PublicData.N.Zeroize()

	if k.PrivateData != nil {
		k.PrivateData.D.Zeroize()
		k.PrivateData.P.Zeroize()
		k.PrivateData.Q.Zeroize()
		k.PrivateData.Dp.Zeroize()
		k.PrivateData.Dq.Zeroize()
		k.PrivateData.Qi.Zeroize()
	}
}

func (k *RSAKey) isKey() {}

// SymmetricKey is a symmetric key, as per RFC 7518 §6.4.
type SymmetricKey struct {
	Key *bytebuf.Vec
}

// Kty returns "oct".
func (k *SymmetricKey) Kty() string {
	return KtySymmetric
}

// IsPrivate always reports true: symmetric key material is never public.
func (k *SymmetricKey) IsPrivate() bool {
	return true
}

// Public returns (nil, false): a symmetric key has no public counterpart.
func (k *SymmetricKey) Public() (Key, bool) {
	return nil, false
}

// Zeroize wipes the key bytes.
func (k *SymmetricKey) Zeroize() {
	k.Key.Zeroize()
}

func (k *SymmetricKey) isKey() {}

// KeyEqual reports logical equality of two keys: same variant, same
// components, byte-wise buffer comparison.
func KeyEqual(a, b Key) bool { //nolint:gocyclo
	switch ak := a.(type) {
	case *ECKey:
		bk, ok := b.(*ECKey)
		if !ok {
			return false
		}

		ac, aOK := ak.Curve.(*P256)
		bc, bOK := bk.Curve.(*P256)

		return aOK && bOK && ac.D.Equal(bc.D) && ac.X.Equal(bc.X) && ac.Y.Equal(bc.Y)
	case *RSAKey:
		bk, ok := b.(*RSAKey)
		if !ok {
			return false
		}

		if !ak.PublicData.N.Equal(bk.PublicData.N) {
			return false
		}

		ap, bp := ak.PrivateData, bk.PrivateData
		if (ap == nil) != (bp == nil) {
			return false
		}

		if ap == nil {
			return true
		}

		return ap.D.Equal(bp.D) && ap.P.Equal(bp.P) && ap.Q.Equal(bp.Q) &&
			ap.Dp.Equal(bp.Dp) && ap.Dq.Equal(bp.Dq) && ap.Qi.Equal(bp.Qi)
	case *SymmetricKey:
		bk, ok := b.(*SymmetricKey)

		return ok && ak.Key.Equal(bk.Key)
	}

	return a == nil && b == nil
}
