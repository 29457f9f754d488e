/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package jwtsupport bridges the jwk data model to the golang-jwt library:
// it converts keys into the signing and verification key values the
// library's signing methods consume. It does not sign or verify tokens
// itself.
package jwtsupport

import (
	"errors"
	"fmt"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/securekey/jsonwebkey/doc/jose/jwk"
	"github.com/securekey/jsonwebkey/doc/jose/jwk/jwksupport"
)

// ErrNotPrivate is returned when a signing key is requested from a key
// holding only public components.
var ErrNotPrivate = errors.New("a public key cannot be used as a signing key")

// SigningKeyFromJWK converts key into a value accepted by golang-jwt's
// SignedString: a []byte secret for symmetric keys, *ecdsa.PrivateKey for
// EC keys or *rsa.PrivateKey for RSA keys. It fails with ErrNotPrivate if
// the key holds no private components.
func SigningKeyFromJWK(key jwk.Key) (interface{}, error) {
	if !key.IsPrivate() {
		return nil, ErrNotPrivate
	}

	signingKey, err := jwksupport.ToCryptoKey(key)
	if err != nil {
		return nil, fmt.Errorf("signing key: %w", err)
	}

	return signingKey, nil
}

// VerificationKeyFromJWK converts key into a value accepted by golang-jwt
// as a verification key. Verification keys are always derivable: asymmetric
// keys are reduced to their public half, symmetric keys verify with the
// secret itself.
func VerificationKeyFromJWK(key jwk.Key) (interface{}, error) {
	public, ok := key.Public()
	if !ok {
		// symmetric: HMAC verification uses the secret
		public = key
	}

	verificationKey, err := jwksupport.ToCryptoKey(public)
	if err != nil {
		return nil, fmt.Errorf("verification key: %w", err)
	}

	return verificationKey, nil
}

// SigningMethod maps a jwk algorithm to the corresponding golang-jwt
// signing method.
func SigningMethod(alg jwk.Algorithm) (jwtlib.SigningMethod, error) {
	switch alg {
	case jwk.AlgHS256:
		return jwtlib.SigningMethodHS256, nil
	case jwk.AlgRS256:
		return jwtlib.SigningMethodRS256, nil
	case jwk.AlgES256:
		return jwtlib.SigningMethodES256, nil
	default:
		return nil, fmt.Errorf("no signing method for algorithm %q", alg)
	}
}
