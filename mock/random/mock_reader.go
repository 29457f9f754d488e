/*
 Copyright SecureKey Technologies Inc. All Rights Reserved.

 SPDX-License-Identifier: Apache-2.0
*/

// Package random provides a mock entropy source for tests exercising key
// generation.
package random

import "io"

// Reader mocks a CSPRNG. It serves the configured bytes in order and
// reports ReadErr, if set, instead of reading.
type Reader struct {
	ReadValue []byte
	ReadErr   error

	offset int
}

// Read fills p from ReadValue, returning io.ErrUnexpectedEOF once the
// configured bytes are exhausted.
func (r *Reader) Read(p []byte) (int, error) {
	if r.ReadErr != nil {
		return 0, r.ReadErr
	}

	if r.offset >= len(r.ReadValue) {
		return 0, io.ErrUnexpectedEOF
	}

	n := copy(p, r.ReadValue[r.offset:])
	r.offset += n

	return n, nil
}
