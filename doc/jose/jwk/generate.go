/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jwk

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/securekey/jsonwebkey/util/bytebuf"
)

// GenerateSymmetric draws a fresh symmetric key of the given bit length
// from the system CSPRNG. Best used with the HS algorithms.
func GenerateSymmetric(numBits int) (*SymmetricKey, error) {
	return GenerateSymmetricFromReader(numBits, rand.Reader)
}

// GenerateSymmetricFromReader is GenerateSymmetric drawing entropy from
// the given reader. The bit length must be a positive multiple of 8.
func GenerateSymmetricFromReader(numBits int, entropy io.Reader) (*SymmetricKey, error) {
	if numBits <= 0 || numBits%8 != 0 {
		return nil, fmt.Errorf("generate symmetric key: bit length %d is not a positive multiple of 8", numBits)
	}

	bytes := make([]byte, numBits/8)
	if _, err := io.ReadFull(entropy, bytes); err != nil {
		return nil, fmt.Errorf("generate symmetric key: %w", err)
	}

	return &SymmetricKey{Key: bytebuf.NewVec(bytes)}, nil
}

// GenerateP256 draws a fresh P-256 keypair from the system CSPRNG. Best
// used with the ES256 algorithm.
func GenerateP256() (*ECKey, error) {
	return GenerateP256FromReader(rand.Reader)
}

// GenerateP256FromReader is GenerateP256 drawing entropy from the given
// reader. The curve arithmetic is delegated to crypto/ecdsa.
func GenerateP256FromReader(entropy io.Reader) (*ECKey, error) {
	ec, err := ecdsa.GenerateKey(elliptic.P256(), entropy)
	if err != nil {
		return nil, fmt.Errorf("generate P-256 key: %w", err)
	}

	// fixed-width big-endian encodings, left-padded with zeroes
	d, err := bytebuf.NewArray(P256Size, ec.D.FillBytes(make([]byte, P256Size)))
	if err != nil {
		return nil, fmt.Errorf("generate P-256 key: %w", err)
	}

	x, err := bytebuf.NewArray(P256Size, ec.X.FillBytes(make([]byte, P256Size)))
	if err != nil {
		return nil, fmt.Errorf("generate P-256 key: %w", err)
	}

	y, err := bytebuf.NewArray(P256Size, ec.Y.FillBytes(make([]byte, P256Size)))
	if err != nil {
		return nil, fmt.Errorf("generate P-256 key: %w", err)
	}

	return &ECKey{Curve: &P256{D: d, X: x, Y: y}}, nil
}
