/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jwksupport

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"testing"

	jose "github.com/go-jose/go-jose/v3"
	"github.com/stretchr/testify/require"

	"github.com/securekey/jsonwebkey/doc/jose/jwk"
)

func TestFromKeyEC(t *testing.T) {
	ec, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	t.Run("private key round trip", func(t *testing.T) {
		key, err := FromKey(ec)
		require.NoError(t, err)
		require.True(t, key.IsPrivate())

		back, err := ToCryptoKey(key)
		require.NoError(t, err)

		backEC, ok := back.(*ecdsa.PrivateKey)
		require.True(t, ok)
		require.Zero(t, backEC.D.Cmp(ec.D))
		require.Zero(t, backEC.X.Cmp(ec.X))
		require.Zero(t, backEC.Y.Cmp(ec.Y))
	})

	t.Run("public key round trip", func(t *testing.T) {
		key, err := FromKey(&ec.PublicKey)
		require.NoError(t, err)
		require.False(t, key.IsPrivate())

		back, err := ToCryptoKey(key)
		require.NoError(t, err)

		backEC, ok := back.(*ecdsa.PublicKey)
		require.True(t, ok)
		require.Zero(t, backEC.X.Cmp(ec.X))
	})

	t.Run("unsupported curve rejected", func(t *testing.T) {
		p384, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
		require.NoError(t, err)

		_, err = FromKey(p384)
		require.Error(t, err)
		require.Contains(t, err.Error(), "unsupported curve")

		_, err = FromKey(&p384.PublicKey)
		require.Error(t, err)
	})
}

func TestFromKeyRSA(t *testing.T) {
	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	t.Run("private key carries the full CRT set", func(t *testing.T) {
		key, err := FromKey(rsaKey)
		require.NoError(t, err)

		rk, ok := key.(*jwk.RSAKey)
		require.True(t, ok)
		require.True(t, rk.PrivateData.HasCRTParams())

		back, err := ToCryptoKey(key)
		require.NoError(t, err)

		backRSA, ok := back.(*rsa.PrivateKey)
		require.True(t, ok)
		require.Zero(t, backRSA.N.Cmp(rsaKey.N))
		require.Zero(t, backRSA.D.Cmp(rsaKey.D))
		require.NoError(t, backRSA.Validate())
	})

	t.Run("public key round trip", func(t *testing.T) {
		key, err := FromKey(&rsaKey.PublicKey)
		require.NoError(t, err)
		require.False(t, key.IsPrivate())

		back, err := ToCryptoKey(key)
		require.NoError(t, err)

		backRSA, ok := back.(*rsa.PublicKey)
		require.True(t, ok)
		require.Zero(t, backRSA.N.Cmp(rsaKey.N))
		require.Equal(t, 65537, backRSA.E)
	})

	t.Run("nonstandard exponent rejected", func(t *testing.T) {
		_, err := FromKey(&rsa.PublicKey{N: rsaKey.N, E: 3})
		require.True(t, errors.Is(err, jwk.ErrInvalidExponent))
	})

	t.Run("private key without CRT params is not convertible", func(t *testing.T) {
		key, err := FromKey(rsaKey)
		require.NoError(t, err)

		rk := key.(*jwk.RSAKey)
		rk.PrivateData.Qi = nil

		_, err = ToCryptoKey(rk)
		require.True(t, errors.Is(err, jwk.ErrMissingRSAParams))
	})
}

func TestFromKeySymmetric(t *testing.T) {
	secret := []byte{1, 2, 3, 4}

	key, err := FromKey(secret)
	require.NoError(t, err)
	require.True(t, key.IsPrivate())

	back, err := ToCryptoKey(key)
	require.NoError(t, err)
	require.Equal(t, secret, back)

	t.Run("input is copied", func(t *testing.T) {
		secret[0] = 9

		sym := key.(*jwk.SymmetricKey)
		require.Equal(t, []byte{1, 2, 3, 4}, sym.Key.Bytes())
	})
}

func TestFromKeyUnsupported(t *testing.T) {
	_, err := FromKey("not a key")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported key type")
}

func TestGoJoseInterop(t *testing.T) {
	ec, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	key, err := FromKey(ec)
	require.NoError(t, err)

	j := jwk.New(key)
	j.KeyID = "interop-key"
	j.Use = jwk.UseSigning
	require.NoError(t, j.SetAlgorithm(jwk.AlgES256))

	joseKey, err := ToGoJose(j)
	require.NoError(t, err)
	require.Equal(t, "interop-key", joseKey.KeyID)
	require.True(t, joseKey.Valid())

	t.Run("survives a go-jose wire round trip", func(t *testing.T) {
		data, err := json.Marshal(joseKey)
		require.NoError(t, err)

		var decoded jose.JSONWebKey
		require.NoError(t, json.Unmarshal(data, &decoded))

		back, err := FromGoJose(&decoded)
		require.NoError(t, err)
		require.True(t, j.Equal(back))
	})

	t.Run("mismatched algorithm rejected", func(t *testing.T) {
		_, err := FromGoJose(&jose.JSONWebKey{Key: []byte{1, 2, 3}, Algorithm: "ES256"})
		require.True(t, errors.Is(err, jwk.ErrMismatchedAlgorithm))
	})
}
