// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-mockhsm.
//
// go-mockhsm is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package objects

import "github.com/jeremyhahn/go-mockhsm/pkg/types"

// WrappedDataMACSize is the byte length of the authentication tag
// appended to a wrapped object's ciphertext.
const WrappedDataMACSize = 16

// WrappedObject is the plaintext envelope sealed during wrap and opened
// during unwrap: the exported object's metadata (origin already promoted)
// together with its raw payload bytes. It exists only transiently between
// serialization and sealing; it is never persisted.
type WrappedObject struct {
	ObjectInfo types.ObjectInfo `cbor:"1,keyasint"`
	Data       []byte           `cbor:"2,keyasint"`
}
