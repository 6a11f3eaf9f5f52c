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

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/jeremyhahn/go-mockhsm/pkg/types"
)

// wrapCipher constructs the AEAD used to seal and open wrapped objects
// under the given wrap key. Only the 128-bit and 256-bit CCM wrap
// identifiers are accepted, served by the GCM cipher of matching key
// size; every other declared algorithm, including aes192-ccm-wrap, is
// unsupported. GCM is substituted for CCM by the simulator; ciphertext
// is not bit-compatible with real hardware.
func wrapCipher(wrapKey *Object) (cipher.AEAD, error) {
	alg := wrapKey.Info.Algorithm

	switch alg {
	case types.AlgorithmAES128CCMWrap, types.AlgorithmAES256CCMWrap:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedWrapAlgorithm, alg)
	}

	block, err := aes.NewCipher(wrapKey.Payload.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedWrapAlgorithm, alg, err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedWrapAlgorithm, alg, err)
	}

	return aead, nil
}
