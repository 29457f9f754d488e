/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bytebuf

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Encode returns the canonical transport encoding: standard alphabet with
// padding.
func Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Decode accepts any of the four common base64 variants (standard or URL
// alphabet, padded or raw). JWK producers in the wild disagree on which to
// use, so reads are lenient even though writes are canonical.
func Decode(s string) ([]byte, error) {
	var enc *base64.Encoding

	isRaw := !strings.HasSuffix(s, "=")
	isURL := !strings.ContainsAny(s, "+/")

	switch {
	case isRaw && isURL:
		enc = base64.RawURLEncoding
	case isURL:
		enc = base64.URLEncoding
	case isRaw:
		enc = base64.RawStdEncoding
	default:
		enc = base64.StdEncoding
	}

	decoded, err := enc.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}

	return decoded, nil
}
