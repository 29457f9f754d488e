/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package bytebuf provides owned byte containers for sensitive key material.
//
// Both container types transport as base64 strings (standard alphabet with
// padding on encode, lenient on decode) and overwrite their backing memory
// with zeroes when Zeroize is called. Callers holding key material are
// expected to call Zeroize once the value is no longer needed.
package bytebuf

import (
	"crypto/subtle"
	"fmt"
)

// Array is a fixed-length byte container. Its length is established at
// construction time and never changes afterwards.
type Array struct {
	data []byte
	size int
}

// LengthError reports a mismatch between the length an Array requires and
// the length of the bytes it was offered.
type LengthError struct {
	Expected int
	Actual   int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("expected %d bytes but got %d", e.Expected, e.Actual)
}

// NewArray copies data into a new Array of the given size. It fails with a
// *LengthError iff len(data) != size.
func NewArray(size int, data []byte) (*Array, error) {
	if len(data) != size {
		return nil, &LengthError{Expected: size, Actual: len(data)}
	}

	buf := make([]byte, size)
	copy(buf, data)

	return &Array{data: buf, size: size}, nil
}

// ArrayFromBase64 base64-decodes s and wraps the result in an Array of the
// given size. A decode failure is reported as-is; a length mismatch is
// reported as a *LengthError, and the decoded scratch bytes are zeroed
// before returning on that path.
func ArrayFromBase64(size int, s string) (*Array, error) {
	decoded, err := Decode(s)
	if err != nil {
		return nil, err
	}

	if len(decoded) != size {
		wipe(decoded)

		return nil, &LengthError{Expected: size, Actual: len(decoded)}
	}

	return &Array{data: decoded, size: size}, nil
}

// Size returns the fixed length of the array.
func (a *Array) Size() int {
	return a.size
}

// Bytes returns the backing bytes. The returned slice shares memory with
// the array, so it is invalidated by Zeroize.
func (a *Array) Bytes() []byte {
	return a.data
}

// Base64 returns the standard padded base64 encoding of the contents.
func (a *Array) Base64() string {
	return Encode(a.data)
}

// Equal reports byte-wise equality in constant time.
func (a *Array) Equal(other *Array) bool {
	if a == nil || other == nil {
		return a == other
	}

	return a.size == other.size && subtle.ConstantTimeCompare(a.data, other.data) == 1
}

// Clone returns an independent copy of the array.
func (a *Array) Clone() *Array {
	if a == nil {
		return nil
	}

	buf := make([]byte, a.size)
	copy(buf, a.data)

	return &Array{data: buf, size: a.size}
}

// Zeroize overwrites the backing memory with zeroes.
func (a *Array) Zeroize() {
	if a != nil {
		wipe(a.data)
	}
}

// Vec is a variable-length byte container holding a big-endian unsigned
// integer shaped value, such as an RSA modulus.
type Vec struct {
	data []byte
}

// NewVec wraps data in a Vec. Ownership of data transfers to the Vec; the
// caller must not reuse the slice.
func NewVec(data []byte) *Vec {
	return &Vec{data: data}
}

// VecFromBase64 base64-decodes s into a new Vec. Any byte length is valid.
func VecFromBase64(s string) (*Vec, error) {
	decoded, err := Decode(s)
	if err != nil {
		return nil, err
	}

	return &Vec{data: decoded}, nil
}

// Len returns the current byte length.
func (v *Vec) Len() int {
	return len(v.data)
}

// Bytes returns the backing bytes. The returned slice shares memory with
// the vec, so it is invalidated by Zeroize.
func (v *Vec) Bytes() []byte {
	return v.data
}

// Base64 returns the standard padded base64 encoding of the contents.
func (v *Vec) Base64() string {
	return Encode(v.data)
}

// Equal reports byte-wise equality in constant time.
func (v *Vec) Equal(other *Vec) bool {
	if v == nil || other == nil {
		return v == other
	}

	return subtle.ConstantTimeCompare(v.data, other.data) == 1
}

// Clone returns an independent copy of the vec.
func (v *Vec) Clone() *Vec {
	if v == nil {
		return nil
	}

	buf := make([]byte, len(v.data))
	copy(buf, v.data)

	return &Vec{data: buf}
}

// Zeroize overwrites the backing memory with zeroes.
func (v *Vec) Zeroize() {
	if v != nil {
		wipe(v.data)
	}
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
