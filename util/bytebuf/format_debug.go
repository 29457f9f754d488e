/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:build jwkdebug

package bytebuf

// String shows the base64 contents. Only available under the jwkdebug
// build tag so that release builds never leak key bytes through logs.
func (a *Array) String() string {
	return Encode(a.data)
}

// String shows the base64 contents. Only available under the jwkdebug
// build tag so that release builds never leak key bytes through logs.
func (v *Vec) String() string {
	return Encode(v.data)
}
