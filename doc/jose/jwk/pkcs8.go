/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jwk

import (
	encasn1 "encoding/asn1"
	"encoding/pem"
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

var (
	oidECPublicKey   = encasn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	oidPrime256v1    = encasn1.ObjectIdentifier{1, 2, 840, 10045, 3, 1, 7}
	oidRSAEncryption = encasn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}
)

const (
	pemPrivateKeyType = "PRIVATE KEY"
	pemPublicKeyType  = "PUBLIC KEY"
)

// PKCS8DER encodes the key as PKCS#8 PrivateKeyInfo when the private
// scalar is present, otherwise as a SubjectPublicKeyInfo. The named curve
// appears only in the outer algorithm identifier: the optional curve
// parameter inside the EC private key structure is left out because
// several widely used JWT consumers reject it.
func (k *ECKey) PKCS8DER() ([]byte, error) {
	c, ok := k.Curve.(*P256)
	if !ok {
		return nil, fmt.Errorf("PKCS#8: unsupported curve")
	}

	point := make([]byte, 1+2*P256Size)
	point[0] = 0x04 // uncompressed
	copy(point[1:], c.X.Bytes())
	copy(point[1+P256Size:], c.Y.Bytes())

	algID := func(b *cryptobyte.Builder) {
		b.AddASN1ObjectIdentifier(oidECPublicKey)
		b.AddASN1ObjectIdentifier(oidPrime256v1)
	}

	if c.D == nil {
		return buildPublicKeyInfo(algID, point)
	}

	var inner cryptobyte.Builder

	inner.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(1) // ecPrivkeyVer1
		b.AddASN1OctetString(c.D.Bytes())
		b.AddASN1(asn1.Tag(1).ContextSpecific().Constructed(), func(b *cryptobyte.Builder) {
			b.AddASN1BitString(point)
		})
	})

	innerDER, err := inner.Bytes()
	if err != nil {
		return nil, fmt.Errorf("PKCS#8: build EC private key: %w", err)
	}

	return buildPrivateKeyInfo(algID, innerDER)
}

// PKCS8PEM is PKCS8DER with PEM armoring.
func (k *ECKey) PKCS8PEM() (string, error) {
	return pkcs8PEM(k)
}

// PKCS8DER encodes the key as PKCS#8 PrivateKeyInfo when the private data
// is present, otherwise as a SubjectPublicKeyInfo. A private encoding
// requires the full CRT parameter set; without it the two-prime
// RSAPrivateKey structure cannot be written and ErrMissingRSAParams is
// returned.
func (k *RSAKey) PKCS8DER() ([]byte, error) {
	algID := func(b *cryptobyte.Builder) {
		b.AddASN1ObjectIdentifier(oidRSAEncryption)
		b.AddASN1NULL()
	}

	writePublic := func(b *cryptobyte.Builder) {
		b.AddASN1BigInt(new(big.Int).SetBytes(k.PublicData.N.Bytes()))
		b.AddASN1Int64(publicExponentValue)
	}

	priv := k.PrivateData
	if priv == nil {
		var inner cryptobyte.Builder

		inner.AddASN1(asn1.SEQUENCE, writePublic)

		innerDER, err := inner.Bytes()
		if err != nil {
			return nil, fmt.Errorf("PKCS#8: build RSA public key: %w", err)
		}

		return buildPublicKeyInfo(algID, innerDER)
	}

	if !priv.HasCRTParams() {
		return nil, ErrMissingRSAParams
	}

	var inner cryptobyte.Builder

	inner.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(0) // two-prime
		writePublic(b)

		for _, param := range [][]byte{
			priv.D.Bytes(), priv.P.Bytes(), priv.Q.Bytes(),
			priv.Dp.Bytes(), priv.Dq.Bytes(), priv.Qi.Bytes(),
		} {
			b.AddASN1BigInt(new(big.Int).SetBytes(param))
		}
	})

	innerDER, err := inner.Bytes()
	if err != nil {
		return nil, fmt.Errorf("PKCS#8: build RSA private key: %w", err)
	}

	return buildPrivateKeyInfo(algID, innerDER)
}

// PKCS8PEM is PKCS8DER with PEM armoring.
func (k *RSAKey) PKCS8PEM() (string, error) {
	return pkcs8PEM(k)
}

// PKCS8DER fails: PKCS#8 represents asymmetric keys only.
func (k *SymmetricKey) PKCS8DER() ([]byte, error) {
	return nil, ErrNotAsymmetric
}

// PKCS8PEM fails: PKCS#8 represents asymmetric keys only.
func (k *SymmetricKey) PKCS8PEM() (string, error) {
	return "", ErrNotAsymmetric
}

// MustPKCS8DER is the unwrapping form of Key.PKCS8DER. It panics where
// the fallible form reports an error.
func MustPKCS8DER(k Key) []byte {
	der, err := k.PKCS8DER()
	if err != nil {
		panic(err)
	}

	return der
}

// MustPKCS8PEM is the unwrapping form of Key.PKCS8PEM. It panics where
// the fallible form reports an error.
func MustPKCS8PEM(k Key) string {
	armored, err := k.PKCS8PEM()
	if err != nil {
		panic(err)
	}

	return armored
}

// buildPrivateKeyInfo writes PrivateKeyInfo (RFC 5208): version 0, the
// algorithm identifier and the inner key structure as an octet string.
func buildPrivateKeyInfo(algID cryptobyte.BuilderContinuation, inner []byte) ([]byte, error) {
	var b cryptobyte.Builder

	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(0)
		b.AddASN1(asn1.SEQUENCE, algID)
		b.AddASN1OctetString(inner)
	})

	der, err := b.Bytes()
	if err != nil {
		return nil, fmt.Errorf("PKCS#8: build PrivateKeyInfo: %w", err)
	}

	return der, nil
}

// buildPublicKeyInfo writes SubjectPublicKeyInfo (RFC 5280): the
// algorithm identifier and the key payload as a bit string.
func buildPublicKeyInfo(algID cryptobyte.BuilderContinuation, payload []byte) ([]byte, error) {
	var b cryptobyte.Builder

	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1(asn1.SEQUENCE, algID)
		b.AddASN1BitString(payload)
	})

	der, err := b.Bytes()
	if err != nil {
		return nil, fmt.Errorf("PKCS#8: build PublicKeyInfo: %w", err)
	}

	return der, nil
}

func pkcs8PEM(k Key) (string, error) {
	der, err := k.PKCS8DER()
	if err != nil {
		return "", err
	}

	blockType := pemPublicKeyType
	if k.IsPrivate() {
		blockType = pemPrivateKeyType
	}

	return string(pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})), nil
}
