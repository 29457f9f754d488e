/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bytebuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testBytes = []byte{1, 2, 3, 4, 5, 6, 7}

const testBase64 = "AQIDBAUGBw=="

func TestNewArray(t *testing.T) {
	t.Run("exact length succeeds", func(t *testing.T) {
		arr, err := NewArray(7, testBytes)
		require.NoError(t, err)
		require.Equal(t, 7, arr.Size())
		require.Equal(t, testBytes, arr.Bytes())
	})

	t.Run("short input fails", func(t *testing.T) {
		_, err := NewArray(8, testBytes)
		require.Error(t, err)

		lenErr, ok := err.(*LengthError)
		require.True(t, ok)
		require.Equal(t, 8, lenErr.Expected)
		require.Equal(t, 7, lenErr.Actual)
		require.EqualError(t, err, "expected 8 bytes but got 7")
	})

	t.Run("long input fails", func(t *testing.T) {
		_, err := NewArray(6, testBytes)
		require.Error(t, err)

		lenErr, ok := err.(*LengthError)
		require.True(t, ok)
		require.Equal(t, 6, lenErr.Expected)
		require.Equal(t, 7, lenErr.Actual)
	})

	t.Run("constructor copies its input", func(t *testing.T) {
		input := []byte{9, 9, 9}

		arr, err := NewArray(3, input)
		require.NoError(t, err)

		input[0] = 0
		require.Equal(t, []byte{9, 9, 9}, arr.Bytes())
	})
}

func TestArrayBase64(t *testing.T) {
	t.Run("encode is standard padded", func(t *testing.T) {
		arr, err := NewArray(7, testBytes)
		require.NoError(t, err)
		require.Equal(t, testBase64, arr.Base64())
	})

	t.Run("decode round trip", func(t *testing.T) {
		arr, err := ArrayFromBase64(7, testBase64)
		require.NoError(t, err)
		require.Equal(t, testBytes, arr.Bytes())
	})

	t.Run("decode accepts url-safe unpadded input", func(t *testing.T) {
		arr, err := ArrayFromBase64(7, "AQIDBAUGBw")
		require.NoError(t, err)
		require.Equal(t, testBytes, arr.Bytes())
	})

	t.Run("decode rejects invalid base64", func(t *testing.T) {
		_, err := ArrayFromBase64(0, "Z")
		require.Error(t, err)
	})

	t.Run("decode rejects wrong length", func(t *testing.T) {
		_, err := ArrayFromBase64(6, testBase64)
		require.Error(t, err)
		require.IsType(t, &LengthError{}, err)

		_, err = ArrayFromBase64(8, testBase64)
		require.Error(t, err)
		require.IsType(t, &LengthError{}, err)
	})
}

func TestArrayEqual(t *testing.T) {
	a1, err := NewArray(7, testBytes)
	require.NoError(t, err)

	a2, err := NewArray(7, testBytes)
	require.NoError(t, err)

	a3, err := NewArray(7, []byte{7, 6, 5, 4, 3, 2, 1})
	require.NoError(t, err)

	require.True(t, a1.Equal(a2))
	require.False(t, a1.Equal(a3))
	require.False(t, a1.Equal(nil))

	var nilArr *Array
	require.True(t, nilArr.Equal(nil))
}

func TestArrayZeroize(t *testing.T) {
	arr, err := NewArray(7, testBytes)
	require.NoError(t, err)

	backing := arr.Bytes()
	arr.Zeroize()

	require.Equal(t, make([]byte, 7), backing)
}

func TestVec(t *testing.T) {
	t.Run("wraps without copying", func(t *testing.T) {
		input := []byte{9, 9, 9}
		vec := NewVec(input)

		input[0] = 1
		require.Equal(t, []byte{1, 9, 9}, vec.Bytes())
	})

	t.Run("any length is valid", func(t *testing.T) {
		require.Equal(t, 0, NewVec(nil).Len())
		require.Equal(t, 7, NewVec(testBytes).Len())
	})

	t.Run("base64 round trip", func(t *testing.T) {
		vec := NewVec(testBytes)
		require.Equal(t, testBase64, vec.Base64())

		decoded, err := VecFromBase64(testBase64)
		require.NoError(t, err)
		require.True(t, vec.Equal(decoded))
	})

	t.Run("decode failure", func(t *testing.T) {
		_, err := VecFromBase64("!!!!")
		require.Error(t, err)
	})

	t.Run("zeroize wipes backing memory", func(t *testing.T) {
		vec := NewVec([]byte{1, 2, 3})
		backing := vec.Bytes()

		vec.Zeroize()
		require.Equal(t, []byte{0, 0, 0}, backing)
	})

	t.Run("clone is independent", func(t *testing.T) {
		vec := NewVec([]byte{1, 2, 3})
		clone := vec.Clone()

		vec.Zeroize()
		require.Equal(t, []byte{1, 2, 3}, clone.Bytes())
	})
}

func TestDecodeVariants(t *testing.T) {
	// the same 16 bytes in all four common encodings
	variants := []string{
		"Wpj30SfkzM/m0Sa/B2NqNw==",
		"Wpj30SfkzM/m0Sa/B2NqNw",
		"Wpj30SfkzM_m0Sa_B2NqNw==",
		"Wpj30SfkzM_m0Sa_B2NqNw",
	}

	first, err := Decode(variants[0])
	require.NoError(t, err)
	require.Len(t, first, 16)

	for _, v := range variants[1:] {
		decoded, err := Decode(v)
		require.NoError(t, err)
		require.Equal(t, first, decoded)
	}
}
