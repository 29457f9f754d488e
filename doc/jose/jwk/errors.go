/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jwk

import "errors"

var (
	// ErrInvalidExponent is returned when an RSA public exponent is not an
	// encoding of 65537.
	ErrInvalidExponent = errors.New("invalid public exponent")

	// ErrMismatchedAlgorithm is returned when a JWK algorithm does not
	// match the key type or curve it is paired with.
	ErrMismatchedAlgorithm = errors.New("mismatched algorithm for key type")

	// ErrNotAsymmetric is returned when a symmetric key is encoded as
	// PKCS#8, which can only represent asymmetric keys.
	ErrNotAsymmetric = errors.New("a symmetric key cannot be encoded using PKCS#8")

	// ErrMissingRSAParams is returned when a private RSA key is encoded as
	// PKCS#8 without the full CRT parameter set.
	ErrMissingRSAParams = errors.New("encoding an RSA key as PKCS#8 requires all of p, q, dp, dq, qi")
)
