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

package payload

import "errors"

var (
	// ErrUnsupportedAlgorithm indicates an algorithm outside the closed set.
	ErrUnsupportedAlgorithm = errors.New("payload: unsupported algorithm")

	// ErrCannotGenerate indicates an algorithm whose material cannot be
	// generated on the device and must be imported.
	ErrCannotGenerate = errors.New("payload: algorithm cannot be generated")

	// ErrInvalidKeyLength indicates supplied material with the wrong length
	// for the declared algorithm.
	ErrInvalidKeyLength = errors.New("payload: invalid key length")
)
