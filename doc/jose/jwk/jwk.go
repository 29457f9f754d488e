/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package jwk implements the JSON Web Key data model of RFC 7517 for
// symmetric, P-256 elliptic curve and RSA keys, with JSON round-tripping,
// PKCS#8 DER/PEM export and key generation.
package jwk

import (
	"encoding/json"
	"fmt"
)

// JWK is a JSON Web Key: a Key plus its optional envelope parameters. The
// zero values of Use, KeyID and Algorithm mean "absent" and are omitted
// from serialized output.
type JWK struct {
	Key       Key
	Use       KeyUse
	KeyOps    KeyOperations
	KeyID     string
	Algorithm Algorithm
}

// New wraps key in a JWK with all envelope parameters empty.
func New(key Key) *JWK {
	return &JWK{Key: key}
}

// Parse deserializes a JWK from JSON. If the document carries an "alg"
// member, it is validated against the key type and a mismatch fails the
// whole parse. Decode errors already carry their context, so none is
// added here.
func Parse(data []byte) (*JWK, error) {
	j := &JWK{}
	if err := json.Unmarshal(data, j); err != nil {
		return nil, err
	}

	return j, nil
}

// SetAlgorithm records the intended algorithm after validating it against
// the key. On failure the JWK is left unchanged.
func (j *JWK) SetAlgorithm(alg Algorithm) error {
	if !alg.CompatibleWith(j.Key) {
		return ErrMismatchedAlgorithm
	}

	j.Algorithm = alg

	return nil
}

// Equal reports logical equality: same key material and same envelope
// parameters, with key_ops compared as a set.
func (j *JWK) Equal(other *JWK) bool {
	return KeyEqual(j.Key, other.Key) &&
		j.Use == other.Use &&
		j.KeyOps.Equal(&other.KeyOps) &&
		j.KeyID == other.KeyID &&
		j.Algorithm == other.Algorithm
}

// Zeroize wipes the key material owned by the JWK.
func (j *JWK) Zeroize() {
	if j.Key != nil {
		j.Key.Zeroize()
	}
}

// String returns the compact JSON form, or an error placeholder if the
// JWK is malformed.
func (j *JWK) String() string {
	data, err := json.Marshal(j)
	if err != nil {
		return fmt.Sprintf("<invalid JWK: %v>", err)
	}

	return string(data)
}

// MarshalJSONIndent returns the indented JSON form.
func (j *JWK) MarshalJSONIndent() ([]byte, error) {
	return json.MarshalIndent(j, "", "    ")
}

// rawJWK is the wire shape. Emission order follows declaration order: the
// key members first, then the envelope members. Absent members are
// omitted, never emitted as null.
type rawJWK struct {
	Kty    string          `json:"kty"`
	Crv    string          `json:"crv,omitempty"`
	D      string          `json:"d,omitempty"`
	X      string          `json:"x,omitempty"`
	Y      string          `json:"y,omitempty"`
	E      string          `json:"e,omitempty"`
	N      string          `json:"n,omitempty"`
	P      string          `json:"p,omitempty"`
	Q      string          `json:"q,omitempty"`
	Dp     string          `json:"dp,omitempty"`
	Dq     string          `json:"dq,omitempty"`
	Qi     string          `json:"qi,omitempty"`
	K      string          `json:"k,omitempty"`
	Use    string          `json:"use,omitempty"`
	KeyOps *KeyOperations  `json:"key_ops,omitempty"`
	Kid    string          `json:"kid,omitempty"`
	Alg    string          `json:"alg,omitempty"`
}

// MarshalJSON serializes the JWK per RFC 7517, with the key members
// flattened into the envelope object.
func (j *JWK) MarshalJSON() ([]byte, error) {
	raw := rawJWK{
		Use: string(j.Use),
		Kid: j.KeyID,
		Alg: string(j.Algorithm),
	}

	if !j.KeyOps.IsEmpty() {
		raw.KeyOps = &j.KeyOps
	}

	switch key := j.Key.(type) {
	case *ECKey:
		raw.Kty = KtyEC

		c, ok := key.Curve.(*P256)
		if !ok {
			return nil, fmt.Errorf("marshal JWK: unsupported curve")
		}

		raw.Crv = P256Crv
		raw.X = c.X.Base64()
		raw.Y = c.Y.Base64()

		if c.D != nil {
			raw.D = c.D.Base64()
		}
	case *RSAKey:
		raw.Kty = KtyRSA
		raw.E = publicExponentB64
		raw.N = key.PublicData.N.Base64()

		if priv := key.PrivateData; priv != nil {
			raw.D = priv.D.Base64()
			raw.P = vecBase64(priv.P)
			raw.Q = vecBase64(priv.Q)
			raw.Dp = vecBase64(priv.Dp)
			raw.Dq = vecBase64(priv.Dq)
			raw.Qi = vecBase64(priv.Qi)
		}
	case *SymmetricKey:
		raw.Kty = KtySymmetric
		raw.K = key.Key.Base64()
	default:
		return nil, fmt.Errorf("marshal JWK: no key set")
	}

	return json.Marshal(raw)
}

// UnmarshalJSON deserializes a JWK, dispatching on the "kty" member and
// validating the "use" and "alg" members against the key.
func (j *JWK) UnmarshalJSON(data []byte) error {
	var raw rawJWK
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshal JWK: %w", err)
	}

	key, err := keyFromRaw(&raw)
	if err != nil {
		return err
	}

	var use KeyUse
	if raw.Use != "" {
		if use, err = ParseKeyUse(raw.Use); err != nil {
			key.Zeroize()

			return fmt.Errorf("unmarshal JWK: %w", err)
		}
	}

	var alg Algorithm
	if raw.Alg != "" {
		if alg, err = ParseAlgorithm(raw.Alg); err != nil {
			key.Zeroize()

			return fmt.Errorf("unmarshal JWK: %w", err)
		}

		if !alg.CompatibleWith(key) {
			// the fully decoded key is dropped on this path, wipe it
			key.Zeroize()

			return fmt.Errorf("unmarshal JWK: %w", ErrMismatchedAlgorithm)
		}
	}

	j.Key = key
	j.Use = use
	j.KeyID = raw.Kid
	j.Algorithm = alg

	if raw.KeyOps != nil {
		j.KeyOps = *raw.KeyOps
	} else {
		j.KeyOps = KeyOperations{}
	}

	return nil
}
