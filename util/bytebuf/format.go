/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:build !jwkdebug

package bytebuf

import "fmt"

// String shows only the type and size, never the contents. Build with the
// jwkdebug tag to see contents during debugging.
func (a *Array) String() string {
	return fmt.Sprintf("bytebuf.Array(%d bytes)", a.size)
}

// String shows only the type and size, never the contents. Build with the
// jwkdebug tag to see contents during debugging.
func (v *Vec) String() string {
	return fmt.Sprintf("bytebuf.Vec(%d bytes)", len(v.data))
}
