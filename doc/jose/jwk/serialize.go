/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jwk

import (
	"fmt"

	"github.com/securekey/jsonwebkey/util/bytebuf"
)

// keyFromRaw builds the typed key union from the flattened wire members.
func keyFromRaw(raw *rawJWK) (Key, error) {
	switch raw.Kty {
	case KtyEC:
		return ecKeyFromRaw(raw)
	case KtyRSA:
		return rsaKeyFromRaw(raw)
	case KtySymmetric:
		return symmetricKeyFromRaw(raw)
	case "":
		return nil, fmt.Errorf("unmarshal JWK: missing kty")
	default:
		return nil, fmt.Errorf("unmarshal JWK: unknown kty %q", raw.Kty)
	}
}

func ecKeyFromRaw(raw *rawJWK) (_ Key, err error) {
	if raw.Crv != P256Crv {
		return nil, fmt.Errorf("unmarshal EC key: unknown crv %q", raw.Crv)
	}

	key := &ECKey{Curve: &P256{}}

	// a failed decode never surfaces the key, so wipe whatever was
	// already decoded before dropping it
	defer func() {
		if err != nil {
			key.Zeroize()
		}
	}()

	curve := key.Curve.(*P256)

	if curve.X, err = requiredArray(P256Size, raw.X, "x"); err != nil {
		return nil, err
	}

	if curve.Y, err = requiredArray(P256Size, raw.Y, "y"); err != nil {
		return nil, err
	}

	if raw.D != "" {
		if curve.D, err = bytebuf.ArrayFromBase64(P256Size, raw.D); err != nil {
			return nil, fmt.Errorf("unmarshal EC key: d: %w", err)
		}
	}

	return key, nil
}

func requiredArray(size int, value, name string) (*bytebuf.Array, error) {
	if value == "" {
		return nil, fmt.Errorf("unmarshal EC key: missing %s", name)
	}

	arr, err := bytebuf.ArrayFromBase64(size, value)
	if err != nil {
		return nil, fmt.Errorf("unmarshal EC key: %s: %w", name, err)
	}

	return arr, nil
}

func rsaKeyFromRaw(raw *rawJWK) (_ Key, err error) {
	if raw.E == "" {
		return nil, fmt.Errorf("unmarshal RSA key: missing e")
	}

	if err := checkPublicExponent(raw.E); err != nil {
		return nil, fmt.Errorf("unmarshal RSA key: %w", err)
	}

	if raw.N == "" {
		return nil, fmt.Errorf("unmarshal RSA key: missing n")
	}

	n, err := bytebuf.VecFromBase64(raw.N)
	if err != nil {
		return nil, fmt.Errorf("unmarshal RSA key: n: %w", err)
	}

	key := &RSAKey{PublicData: RSAPublicData{N: n}}

	// a failed decode never surfaces the key, so wipe whatever was
	// already decoded before dropping it
	defer func() {
		if err != nil {
			key.Zeroize()
		}
	}()

	if raw.D == "" {
		// CRT parameters make no sense without the private exponent.
		for _, param := range []struct{ name, value string }{
			{"p", raw.P}, {"q", raw.Q}, {"dp", raw.Dp}, {"dq", raw.Dq}, {"qi", raw.Qi},
		} {
			if param.value != "" {
				return nil, fmt.Errorf("unmarshal RSA key: %s present without d", param.name)
			}
		}

		return key, nil
	}

	priv := &RSAPrivateData{}
	key.PrivateData = priv

	if priv.D, err = bytebuf.VecFromBase64(raw.D); err != nil {
		return nil, fmt.Errorf("unmarshal RSA key: d: %w", err)
	}

	for _, param := range []struct {
		name  string
		value string
		dest  **bytebuf.Vec
	}{
		{"p", raw.P, &priv.P},
		{"q", raw.Q, &priv.Q},
		{"dp", raw.Dp, &priv.Dp},
		{"dq", raw.Dq, &priv.Dq},
		{"qi", raw.Qi, &priv.Qi},
	} {
		if param.value == "" {
			continue
		}

		if *param.dest, err = bytebuf.VecFromBase64(param.value); err != nil {
			return nil, fmt.Errorf("unmarshal RSA key: %s: %w", param.name, err)
		}
	}

	return key, nil
}

func symmetricKeyFromRaw(raw *rawJWK) (Key, error) {
	if raw.K == "" {
		return nil, fmt.Errorf("unmarshal symmetric key: missing k")
	}

	k, err := bytebuf.VecFromBase64(raw.K)
	if err != nil {
		return nil, fmt.Errorf("unmarshal symmetric key: k: %w", err)
	}

	return &SymmetricKey{Key: k}, nil
}

func vecBase64(v *bytebuf.Vec) string {
	if v == nil {
		return ""
	}

	return v.Base64()
}
