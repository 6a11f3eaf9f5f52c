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

import "errors"

// Store errors. Every failure mode is a distinct sentinel so the command
// dispatch layer can map it to the matching protocol status code with
// errors.Is.
var (
	// ErrObjectNotFound indicates the referenced object does not exist.
	ErrObjectNotFound = errors.New("objects: object not found")

	// ErrWrapKeyNotFound indicates the referenced wrap key does not exist.
	ErrWrapKeyNotFound = errors.New("objects: wrap key not found")

	// ErrObjectExists indicates an insert targeting an already-occupied
	// handle.
	ErrObjectExists = errors.New("objects: object already exists")

	// ErrUnsupportedWrapAlgorithm indicates a wrap key whose declared
	// algorithm cannot be used for sealing.
	ErrUnsupportedWrapAlgorithm = errors.New("objects: unsupported wrap key algorithm")

	// ErrNotExportable indicates a wrap target without the
	// exportable-under-wrap capability.
	ErrNotExportable = errors.New("objects: object does not have exportable-under-wrap capability")

	// ErrDecryptionFailed indicates ciphertext that failed authenticated
	// decryption. The message is deliberately uniform: it does not reveal
	// whether the key was wrong or the ciphertext was corrupted.
	ErrDecryptionFailed = errors.New("objects: decryption failed")

	// ErrInvalidWrapData indicates a decrypted envelope that does not
	// decode as a wrapped object.
	ErrInvalidWrapData = errors.New("objects: invalid wrapped object data")
)
