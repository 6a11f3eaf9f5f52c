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

package types

import "fmt"

// Algorithm identifies an object's key or data algorithm using the
// device's 8-bit protocol identifiers. The set is closed: every algorithm
// the simulator supports is enumerated here and dispatched exhaustively.
type Algorithm uint8

const (
	// AlgorithmECP256 is ECDSA over NIST P-256.
	AlgorithmECP256 Algorithm = 12

	// AlgorithmHMACSHA256 is HMAC-SHA-256.
	AlgorithmHMACSHA256 Algorithm = 20

	// AlgorithmAES128CCMWrap is the AES-128 CCM wrap algorithm. The
	// simulator seals with AES-128-GCM in its place; ciphertext is not
	// bit-compatible with real hardware.
	AlgorithmAES128CCMWrap Algorithm = 29

	// AlgorithmOpaqueData is an uninterpreted data blob.
	AlgorithmOpaqueData Algorithm = 30

	// AlgorithmOpaqueX509Certificate is a stored X.509 certificate.
	AlgorithmOpaqueX509Certificate Algorithm = 31

	// AlgorithmYubicoAESAuthentication is the AES authentication key
	// scheme used for session establishment.
	AlgorithmYubicoAESAuthentication Algorithm = 38

	// AlgorithmAES192CCMWrap is the AES-192 CCM wrap algorithm. The
	// identifier is defined for completeness; the simulator's sealing
	// ciphers cover only the 128-bit and 256-bit wrap keys, so wrap and
	// unwrap reject keys declaring it.
	AlgorithmAES192CCMWrap Algorithm = 41

	// AlgorithmAES256CCMWrap is the AES-256 CCM wrap algorithm
	// (sealed with AES-256-GCM by the simulator).
	AlgorithmAES256CCMWrap Algorithm = 42

	// AlgorithmEd25519 is Ed25519 signing.
	AlgorithmEd25519 Algorithm = 46

	// AlgorithmAES128 is a raw AES-128 symmetric key.
	AlgorithmAES128 Algorithm = 50

	// AlgorithmAES192 is a raw AES-192 symmetric key.
	AlgorithmAES192 Algorithm = 51

	// AlgorithmAES256 is a raw AES-256 symmetric key.
	AlgorithmAES256 Algorithm = 52
)

var algorithmNames = map[Algorithm]string{
	AlgorithmECP256:                  "ecp256",
	AlgorithmHMACSHA256:              "hmac-sha256",
	AlgorithmAES128CCMWrap:           "aes128-ccm-wrap",
	AlgorithmOpaqueData:              "opaque-data",
	AlgorithmOpaqueX509Certificate:   "opaque-x509-certificate",
	AlgorithmYubicoAESAuthentication: "aes128-yubico-authentication",
	AlgorithmAES192CCMWrap:           "aes192-ccm-wrap",
	AlgorithmAES256CCMWrap:           "aes256-ccm-wrap",
	AlgorithmEd25519:                 "ed25519",
	AlgorithmAES128:                  "aes128",
	AlgorithmAES192:                  "aes192",
	AlgorithmAES256:                  "aes256",
}

// String returns the protocol name of the algorithm.
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("unknown(0x%02x)", uint8(a))
}

// IsValid reports whether a is a defined algorithm identifier.
func (a Algorithm) IsValid() bool {
	_, ok := algorithmNames[a]
	return ok
}

// KeyLen returns the expected payload byte length for the algorithm, or
// 0 for variable-length algorithms (opaque blobs and HMAC keys, whose
// length is fixed only at import/generation time).
func (a Algorithm) KeyLen() int {
	switch a {
	case AlgorithmAES128, AlgorithmAES128CCMWrap:
		return 16
	case AlgorithmAES192, AlgorithmAES192CCMWrap:
		return 24
	case AlgorithmAES256, AlgorithmAES256CCMWrap:
		return 32
	case AlgorithmECP256, AlgorithmEd25519:
		return 32
	case AlgorithmYubicoAESAuthentication:
		return 32
	case AlgorithmHMACSHA256, AlgorithmOpaqueData, AlgorithmOpaqueX509Certificate:
		return 0
	default:
		return 0
	}
}

// IsWrap reports whether a is a wrap key algorithm.
func (a Algorithm) IsWrap() bool {
	switch a {
	case AlgorithmAES128CCMWrap, AlgorithmAES192CCMWrap, AlgorithmAES256CCMWrap:
		return true
	default:
		return false
	}
}

// IsSymmetric reports whether a is a raw symmetric key algorithm.
func (a Algorithm) IsSymmetric() bool {
	switch a {
	case AlgorithmAES128, AlgorithmAES192, AlgorithmAES256:
		return true
	default:
		return false
	}
}

// IsAsymmetric reports whether a is an asymmetric key algorithm.
func (a Algorithm) IsAsymmetric() bool {
	switch a {
	case AlgorithmECP256, AlgorithmEd25519:
		return true
	default:
		return false
	}
}

// IsOpaque reports whether a is an opaque data algorithm.
func (a Algorithm) IsOpaque() bool {
	switch a {
	case AlgorithmOpaqueData, AlgorithmOpaqueX509Certificate:
		return true
	default:
		return false
	}
}
