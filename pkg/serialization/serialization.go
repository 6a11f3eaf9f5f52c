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

// Package serialization provides the structured-record codec used for the
// wrapped-object envelope. Records are encoded as deterministic CBOR so
// that identical records always produce identical bytes, which keeps
// wrap ciphertexts reproducible for a fixed key and nonce.
package serialization

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var (
	// ErrEncode indicates a record could not be serialized.
	ErrEncode = errors.New("serialization: encode failed")

	// ErrDecode indicates bytes that do not decode as the expected record.
	ErrDecode = errors.New("serialization: decode failed")
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	decMode, err = cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}.DecMode()
	if err != nil {
		panic(err)
	}
}

// Serialize encodes a record as deterministic CBOR.
func Serialize(v any) ([]byte, error) {
	data, err := encMode.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return data, nil
}

// Deserialize decodes CBOR bytes into the record pointed to by v.
// Duplicate map keys and indefinite-length items are rejected.
func Deserialize(data []byte, v any) error {
	if err := decMode.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}
