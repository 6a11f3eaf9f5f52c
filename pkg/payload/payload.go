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

// Package payload models the key/data material of one stored object as a
// container tagged with its algorithm. The algorithm set is closed, so
// construction dispatches by exhaustive switch: Generate produces
// algorithm-appropriate random material, New validates and adopts
// externally supplied bytes (import and unwrap paths).
package payload

import (
	"crypto/rand"
	"fmt"

	"github.com/jeremyhahn/go-mockhsm/pkg/types"
)

// Payload holds the raw key or data material of one object, tagged with
// the algorithm that interprets it. A payload is owned exclusively by its
// object; Bytes returns a read-only view for the object's lifetime.
type Payload struct {
	algorithm types.Algorithm
	material  []byte
}

// Generate creates a payload with fresh random material of the length the
// algorithm requires. Opaque algorithms cannot be generated; their content
// is caller-defined and must be imported with New.
func Generate(algorithm types.Algorithm) (*Payload, error) {
	length, err := generatedLen(algorithm)
	if err != nil {
		return nil, err
	}

	material := make([]byte, length)
	if _, err := rand.Read(material); err != nil {
		return nil, fmt.Errorf("payload: reading random material: %w", err)
	}

	return &Payload{algorithm: algorithm, material: material}, nil
}

// generatedLen returns the material length Generate produces for the
// algorithm. Fixed-length algorithms use their key length; HMAC keys are
// generated at the hash output size.
func generatedLen(algorithm types.Algorithm) (int, error) {
	switch algorithm {
	case types.AlgorithmAES128, types.AlgorithmAES192, types.AlgorithmAES256,
		types.AlgorithmAES128CCMWrap, types.AlgorithmAES192CCMWrap, types.AlgorithmAES256CCMWrap,
		types.AlgorithmECP256, types.AlgorithmEd25519,
		types.AlgorithmYubicoAESAuthentication:
		return algorithm.KeyLen(), nil
	case types.AlgorithmHMACSHA256:
		return 32, nil
	case types.AlgorithmOpaqueData, types.AlgorithmOpaqueX509Certificate:
		return 0, fmt.Errorf("%w: %s", ErrCannotGenerate, algorithm)
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, algorithm)
	}
}

// New creates a payload from externally supplied bytes, validating the
// length against what the algorithm expects. Variable-length algorithms
// (opaque blobs, HMAC keys) accept any non-empty data. The data is
// defensively copied.
func New(algorithm types.Algorithm, data []byte) (*Payload, error) {
	if !algorithm.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, algorithm)
	}

	if expected := algorithm.KeyLen(); expected != 0 {
		if len(data) != expected {
			return nil, fmt.Errorf("%w: %s expects %d bytes, got %d",
				ErrInvalidKeyLength, algorithm, expected, len(data))
		}
	} else if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s payload must not be empty",
			ErrInvalidKeyLength, algorithm)
	}

	material := make([]byte, len(data))
	copy(material, data)

	return &Payload{algorithm: algorithm, material: material}, nil
}

// Algorithm returns the algorithm that interprets the material.
func (p *Payload) Algorithm() types.Algorithm {
	return p.algorithm
}

// Len returns the material length in bytes.
func (p *Payload) Len() uint16 {
	return uint16(len(p.material))
}

// Bytes returns the raw material. The returned slice is a read-only
// borrow; callers must not modify it.
func (p *Payload) Bytes() []byte {
	return p.material
}
