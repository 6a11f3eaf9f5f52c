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

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	"github.com/jeremyhahn/go-mockhsm/pkg/types"
)

const (
	// AuthenticationKeySize is the byte length of an authentication key:
	// a 16-byte encryption key concatenated with a 16-byte MAC key.
	AuthenticationKeySize = 32

	// DefaultAuthenticationPassword is the factory-default password the
	// default authentication key is derived from.
	DefaultAuthenticationPassword = "password"

	// authenticationKeySalt and authenticationKeyIterations are the
	// device-standard PBKDF2 parameters for password-derived
	// authentication keys.
	authenticationKeySalt       = "Yubico"
	authenticationKeyIterations = 10000
)

// DeriveAuthenticationKey derives an authentication key payload from a
// password using PBKDF2-HMAC-SHA256 with the device-standard salt and
// iteration count.
func DeriveAuthenticationKey(password string) *Payload {
	material := pbkdf2.Key(
		[]byte(password),
		[]byte(authenticationKeySalt),
		authenticationKeyIterations,
		AuthenticationKeySize,
		sha256.New,
	)
	return &Payload{
		algorithm: types.AlgorithmYubicoAESAuthentication,
		material:  material,
	}
}

// DefaultAuthenticationKey returns the factory-default authentication key
// payload, derived from DefaultAuthenticationPassword.
func DefaultAuthenticationKey() *Payload {
	return DeriveAuthenticationKey(DefaultAuthenticationPassword)
}
