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

// Package types defines the value types shared by the mock HSM object store:
// object identifiers and handles, provenance origins, capability and domain
// bit-sets, algorithm identifiers, labels, and wrap nonces.
//
// These types mirror the semantics of the simulated device: a 16-bit object
// id space partitioned by object type, flat permission masks rather than
// hierarchical roles, and a closed set of algorithm identifiers.
package types

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ObjectID is the 16-bit identifier of an object within the device.
// IDs are unique per object type, not globally: a wrap key and an
// asymmetric key may share the same id.
type ObjectID uint16

// ObjectType identifies the kind of object stored in the device.
type ObjectType uint8

const (
	// TypeOpaque is an opaque data blob or stored X.509 certificate.
	TypeOpaque ObjectType = 0x01

	// TypeAuthenticationKey is a key used to establish authenticated sessions.
	TypeAuthenticationKey ObjectType = 0x02

	// TypeAsymmetricKey is an asymmetric signing or decryption key.
	TypeAsymmetricKey ObjectType = 0x03

	// TypeWrapKey is a key used to export/import other objects under wrap.
	TypeWrapKey ObjectType = 0x04

	// TypeHMACKey is an HMAC authentication key.
	TypeHMACKey ObjectType = 0x05

	// TypeSymmetricKey is a raw AES symmetric key.
	TypeSymmetricKey ObjectType = 0x08
)

// String returns the protocol name of the object type.
func (t ObjectType) String() string {
	switch t {
	case TypeOpaque:
		return "opaque"
	case TypeAuthenticationKey:
		return "authentication-key"
	case TypeAsymmetricKey:
		return "asymmetric-key"
	case TypeWrapKey:
		return "wrap-key"
	case TypeHMACKey:
		return "hmac-key"
	case TypeSymmetricKey:
		return "symmetric-key"
	default:
		return fmt.Sprintf("unknown(0x%02x)", uint8(t))
	}
}

// IsValid reports whether t is a defined object type.
func (t ObjectType) IsValid() bool {
	switch t {
	case TypeOpaque, TypeAuthenticationKey, TypeAsymmetricKey,
		TypeWrapKey, TypeHMACKey, TypeSymmetricKey:
		return true
	default:
		return false
	}
}

// ObjectHandle uniquely identifies a stored object. It is the store's
// primary key: two objects with the same id but different types are
// distinct entries.
type ObjectHandle struct {
	ObjectID   ObjectID   `cbor:"1,keyasint"`
	ObjectType ObjectType `cbor:"2,keyasint"`
}

// NewObjectHandle creates a handle for the given id and type.
func NewObjectHandle(id ObjectID, typ ObjectType) ObjectHandle {
	return ObjectHandle{ObjectID: id, ObjectType: typ}
}

// Compare orders handles by ascending object id, then object type.
// It is suitable for use with slices.SortFunc and defines the store's
// iteration order.
func (h ObjectHandle) Compare(other ObjectHandle) int {
	switch {
	case h.ObjectID < other.ObjectID:
		return -1
	case h.ObjectID > other.ObjectID:
		return 1
	case h.ObjectType < other.ObjectType:
		return -1
	case h.ObjectType > other.ObjectType:
		return 1
	default:
		return 0
	}
}

// String returns a human-readable form used in error messages.
func (h ObjectHandle) String() string {
	return fmt.Sprintf("%s:0x%04x", h.ObjectType, uint16(h.ObjectID))
}

// ObjectOrigin tracks the provenance of an object's key material.
type ObjectOrigin uint8

const (
	// OriginGenerated marks material generated on the device.
	OriginGenerated ObjectOrigin = 0x01

	// OriginImported marks material imported from outside the device.
	OriginImported ObjectOrigin = 0x02

	// OriginWrappedGenerated marks generated material that has crossed a
	// wrap/unwrap export boundary.
	OriginWrappedGenerated ObjectOrigin = 0x11

	// OriginWrappedImported marks imported material that has crossed a
	// wrap/unwrap export boundary.
	OriginWrappedImported ObjectOrigin = 0x12
)

// Wrapped returns the origin after export under wrap. Promotion is
// monotone: Generated and Imported are promoted once, already-wrapped
// origins are returned unchanged.
func (o ObjectOrigin) Wrapped() ObjectOrigin {
	switch o {
	case OriginGenerated:
		return OriginWrappedGenerated
	case OriginImported:
		return OriginWrappedImported
	default:
		return o
	}
}

// String returns the protocol name of the origin.
func (o ObjectOrigin) String() string {
	switch o {
	case OriginGenerated:
		return "generated"
	case OriginImported:
		return "imported"
	case OriginWrappedGenerated:
		return "wrapped-generated"
	case OriginWrappedImported:
		return "wrapped-imported"
	default:
		return fmt.Sprintf("unknown(0x%02x)", uint8(o))
	}
}

// LabelSize is the fixed capacity of an object label in bytes.
const LabelSize = 40

// ObjectLabel is the human-readable label attached to an object.
// Labels longer than LabelSize bytes are truncated at construction.
type ObjectLabel string

// NewObjectLabel creates a label, truncating s to at most LabelSize
// bytes. The cut backs off to a rune boundary so a multi-byte character
// is dropped whole rather than split.
func NewObjectLabel(s string) ObjectLabel {
	if len(s) > LabelSize {
		s = s[:LabelSize]
		for len(s) > 0 {
			r, size := utf8.DecodeLastRuneInString(s)
			if r == utf8.RuneError && size == 1 {
				s = s[:len(s)-1]
				continue
			}
			break
		}
	}
	return ObjectLabel(s)
}

// String returns the label with trailing whitespace trimmed.
func (l ObjectLabel) String() string {
	return strings.TrimRight(string(l), " \x00")
}

// GCMNonceSize is the nonce length consumed by the sealing cipher.
const GCMNonceSize = 12

// WrapNonce is the caller-supplied nonce for a wrap or unwrap operation.
// The device protocol carries a 13-byte nonce; only the first GCMNonceSize
// bytes feed the sealing cipher.
type WrapNonce []byte

// GCMNonce derives the cipher nonce from the first GCMNonceSize bytes.
// It returns ErrNonceTooShort if the wrap nonce carries fewer bytes.
func (n WrapNonce) GCMNonce() ([]byte, error) {
	if len(n) < GCMNonceSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrNonceTooShort, len(n))
	}
	nonce := make([]byte, GCMNonceSize)
	copy(nonce, n[:GCMNonceSize])
	return nonce, nil
}

// ObjectInfo is the metadata record attached to every stored object.
// It travels with the object's payload, including across the wrap/unwrap
// export boundary, where it is serialized into the wrapped envelope.
type ObjectInfo struct {
	// ObjectID is the 16-bit object identifier.
	ObjectID ObjectID `cbor:"1,keyasint"`

	// ObjectType is the kind of object.
	ObjectType ObjectType `cbor:"2,keyasint"`

	// Algorithm identifies the object's key/data algorithm.
	Algorithm Algorithm `cbor:"3,keyasint"`

	// Capabilities gates which operations may target this object.
	Capabilities Capability `cbor:"4,keyasint"`

	// DelegatedCapabilities gates which capabilities this object may
	// grant to objects it creates or imports.
	DelegatedCapabilities Capability `cbor:"5,keyasint"`

	// Domains partitions the object into logical compartments.
	Domains Domain `cbor:"6,keyasint"`

	// Length is the payload byte length. Derived from the payload at
	// construction, never set independently.
	Length uint16 `cbor:"7,keyasint"`

	// Sequence is the generation counter for this object id. Starts at 1.
	// Reserved for key-rotation support; no current operation increments it.
	Sequence uint8 `cbor:"8,keyasint"`

	// Origin is the provenance of the key material.
	Origin ObjectOrigin `cbor:"9,keyasint"`

	// Label is the human-readable object label.
	Label ObjectLabel `cbor:"10,keyasint"`
}

// Handle returns the store key for this metadata record.
func (i *ObjectInfo) Handle() ObjectHandle {
	return NewObjectHandle(i.ObjectID, i.ObjectType)
}
