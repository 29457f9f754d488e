/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package jwksupport converts between the jwk data model and the key types
// of the Go standard library and go-jose.
package jwksupport

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rsa"
	"fmt"
	"math/big"

	jose "github.com/go-jose/go-jose/v3"
	"github.com/hyperledger/aries-framework-go/component/log"

	"github.com/securekey/jsonwebkey/doc/jose/jwk"
	"github.com/securekey/jsonwebkey/util/bytebuf"
)

var logger = log.New("jsonwebkey/jwksupport")

const rsaPublicExponent = 65537

// FromKey builds a jwk.Key from an opaque key struct: *ecdsa.PrivateKey or
// *ecdsa.PublicKey on P-256, *rsa.PrivateKey or *rsa.PublicKey with public
// exponent 65537, or a []byte symmetric secret.
func FromKey(opaqueKey interface{}) (jwk.Key, error) {
	switch key := opaqueKey.(type) {
	case *ecdsa.PrivateKey:
		if key.Curve != elliptic.P256() {
			return nil, fmt.Errorf("fromKey: unsupported curve %q", key.Params().Name)
		}

		curve, err := p256FromCoordinates(key.X, key.Y, key.D)
		if err != nil {
			return nil, fmt.Errorf("fromKey: %w", err)
		}

		return &jwk.ECKey{Curve: curve}, nil
	case *ecdsa.PublicKey:
		if key.Curve != elliptic.P256() {
			return nil, fmt.Errorf("fromKey: unsupported curve %q", key.Params().Name)
		}

		curve, err := p256FromCoordinates(key.X, key.Y, nil)
		if err != nil {
			return nil, fmt.Errorf("fromKey: %w", err)
		}

		return &jwk.ECKey{Curve: curve}, nil
	case *rsa.PrivateKey:
		return rsaFromPrivateKey(key)
	case *rsa.PublicKey:
		if key.E != rsaPublicExponent {
			return nil, fmt.Errorf("fromKey: %w", jwk.ErrInvalidExponent)
		}

		return &jwk.RSAKey{
			PublicData: jwk.RSAPublicData{N: bytebuf.NewVec(key.N.Bytes())},
		}, nil
	case []byte:
		secret := make([]byte, len(key))
		copy(secret, key)

		return &jwk.SymmetricKey{Key: bytebuf.NewVec(secret)}, nil
	default:
		return nil, fmt.Errorf("fromKey: unsupported key type %T", opaqueKey)
	}
}

func p256FromCoordinates(x, y, d *big.Int) (*jwk.P256, error) {
	xArr, err := bytebuf.NewArray(jwk.P256Size, x.FillBytes(make([]byte, jwk.P256Size)))
	if err != nil {
		return nil, err
	}

	yArr, err := bytebuf.NewArray(jwk.P256Size, y.FillBytes(make([]byte, jwk.P256Size)))
	if err != nil {
		return nil, err
	}

	curve := &jwk.P256{X: xArr, Y: yArr}

	if d != nil {
		if curve.D, err = bytebuf.NewArray(jwk.P256Size, d.FillBytes(make([]byte, jwk.P256Size))); err != nil {
			return nil, err
		}
	}

	return curve, nil
}

func rsaFromPrivateKey(key *rsa.PrivateKey) (jwk.Key, error) {
	if key.E != rsaPublicExponent {
		return nil, fmt.Errorf("fromKey: %w", jwk.ErrInvalidExponent)
	}

	if len(key.Primes) != 2 {
		return nil, fmt.Errorf("fromKey: expected a two-prime RSA key, got %d primes", len(key.Primes))
	}

	// work on a copy so Precompute does not mutate the caller's key
	precomputed := *key
	precomputed.Precompute()

	return &jwk.RSAKey{
		PublicData: jwk.RSAPublicData{N: bytebuf.NewVec(key.N.Bytes())},
		PrivateData: &jwk.RSAPrivateData{
			D:  bytebuf.NewVec(key.D.Bytes()),
			P:  bytebuf.NewVec(key.Primes[0].Bytes()),
			Q:  bytebuf.NewVec(key.Primes[1].Bytes()),
			Dp: bytebuf.NewVec(precomputed.Precomputed.Dp.Bytes()),
			Dq: bytebuf.NewVec(precomputed.Precomputed.Dq.Bytes()),
			Qi: bytebuf.NewVec(precomputed.Precomputed.Qinv.Bytes()),
		},
	}, nil
}

// ToCryptoKey converts a jwk.Key to the corresponding standard library
// key: *ecdsa.PrivateKey/*ecdsa.PublicKey, *rsa.PrivateKey/*rsa.PublicKey
// or a []byte symmetric secret. Converting a private RSA key requires the
// full CRT parameter set.
func ToCryptoKey(key jwk.Key) (interface{}, error) {
	switch k := key.(type) {
	case *jwk.ECKey:
		return ecToCryptoKey(k)
	case *jwk.RSAKey:
		return rsaToCryptoKey(k)
	case *jwk.SymmetricKey:
		return k.Key.Bytes(), nil
	default:
		return nil, fmt.Errorf("toCryptoKey: unsupported key type %T", key)
	}
}

func ecToCryptoKey(k *jwk.ECKey) (interface{}, error) {
	c, ok := k.Curve.(*jwk.P256)
	if !ok {
		return nil, fmt.Errorf("toCryptoKey: unsupported curve")
	}

	pub := ecdsa.PublicKey{
		Curve: elliptic.P256(),
		X:     new(big.Int).SetBytes(c.X.Bytes()),
		Y:     new(big.Int).SetBytes(c.Y.Bytes()),
	}

	if c.D == nil {
		return &pub, nil
	}

	return &ecdsa.PrivateKey{
		PublicKey: pub,
		D:         new(big.Int).SetBytes(c.D.Bytes()),
	}, nil
}

func rsaToCryptoKey(k *jwk.RSAKey) (interface{}, error) {
	pub := rsa.PublicKey{
		N: new(big.Int).SetBytes(k.PublicData.N.Bytes()),
		E: rsaPublicExponent,
	}

	priv := k.PrivateData
	if priv == nil {
		return &pub, nil
	}

	if !priv.HasCRTParams() {
		return nil, fmt.Errorf("toCryptoKey: %w", jwk.ErrMissingRSAParams)
	}

	cryptoKey := &rsa.PrivateKey{
		PublicKey: pub,
		D:         new(big.Int).SetBytes(priv.D.Bytes()),
		Primes: []*big.Int{
			new(big.Int).SetBytes(priv.P.Bytes()),
			new(big.Int).SetBytes(priv.Q.Bytes()),
		},
		Precomputed: rsa.PrecomputedValues{
			Dp:        new(big.Int).SetBytes(priv.Dp.Bytes()),
			Dq:        new(big.Int).SetBytes(priv.Dq.Bytes()),
			Qinv:      new(big.Int).SetBytes(priv.Qi.Bytes()),
			CRTValues: []rsa.CRTValue{},
		},
	}

	return cryptoKey, nil
}

// ToGoJose converts a JWK to a go-jose JSONWebKey, carrying over the kid,
// use and alg envelope parameters. go-jose has no key_ops field, so key
// operations do not survive the conversion.
func ToGoJose(j *jwk.JWK) (*jose.JSONWebKey, error) {
	cryptoKey, err := ToCryptoKey(j.Key)
	if err != nil {
		return nil, fmt.Errorf("toGoJose: %w", err)
	}

	return &jose.JSONWebKey{
		Key:       cryptoKey,
		KeyID:     j.KeyID,
		Use:       string(j.Use),
		Algorithm: string(j.Algorithm),
	}, nil
}

// FromGoJose converts a go-jose JSONWebKey to a JWK. An algorithm carried
// by the go-jose key is validated against the key type.
func FromGoJose(joseKey *jose.JSONWebKey) (*jwk.JWK, error) {
	key, err := FromKey(joseKey.Key)
	if err != nil {
		return nil, fmt.Errorf("fromGoJose: %w", err)
	}

	if len(joseKey.Certificates) > 0 {
		logger.Debugf("fromGoJose: dropping %d certificates bound to key %q", len(joseKey.Certificates), joseKey.KeyID)
	}

	j := jwk.New(key)
	j.KeyID = joseKey.KeyID

	if joseKey.Use != "" {
		if j.Use, err = jwk.ParseKeyUse(joseKey.Use); err != nil {
			return nil, fmt.Errorf("fromGoJose: %w", err)
		}
	}

	if joseKey.Algorithm != "" {
		if err := j.SetAlgorithm(jwk.Algorithm(joseKey.Algorithm)); err != nil {
			return nil, fmt.Errorf("fromGoJose: %w", err)
		}
	}

	return j, nil
}
