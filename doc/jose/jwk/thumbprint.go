/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jwk

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// Thumbprint computes the RFC 7638 SHA-256 thumbprint of the key. The
// canonical input uses only the required public members of each key type,
// in lexicographic order, base64url-encoded without padding as the RFC
// demands regardless of how the key serializes elsewhere.
func (j *JWK) Thumbprint() ([]byte, error) {
	canonical, err := thumbprintInput(j.Key)
	if err != nil {
		return nil, fmt.Errorf("thumbprint: %w", err)
	}

	sum := sha256.Sum256(canonical)

	return sum[:], nil
}

// ThumbprintString returns the RFC 7638 SHA-256 thumbprint in its usual
// textual form, base64url without padding.
func (j *JWK) ThumbprintString() (string, error) {
	sum, err := j.Thumbprint()
	if err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(sum), nil
}

func thumbprintInput(key Key) ([]byte, error) {
	b64 := func(data []byte) string {
		return base64.RawURLEncoding.EncodeToString(data)
	}

	switch k := key.(type) {
	case *ECKey:
		c, ok := k.Curve.(*P256)
		if !ok {
			return nil, fmt.Errorf("unsupported curve")
		}

		return []byte(fmt.Sprintf(`{"crv":%q,"kty":"EC","x":%q,"y":%q}`,
			P256Crv, b64(c.X.Bytes()), b64(c.Y.Bytes()))), nil
	case *RSAKey:
		return []byte(fmt.Sprintf(`{"e":"AQAB","kty":"RSA","n":%q}`,
			b64(k.PublicData.N.Bytes()))), nil
	case *SymmetricKey:
		return []byte(fmt.Sprintf(`{"k":%q,"kty":"oct"}`, b64(k.Key.Bytes()))), nil
	default:
		return nil, fmt.Errorf("unsupported key type %T", key)
	}
}
