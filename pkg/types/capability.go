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

import "strings"

// Capability is a 64-bit permission mask gating which operations may be
// performed with or on an object. Capabilities are a flat bit-set with an
// explicit contains predicate, matching the device's permission model;
// there is no permission hierarchy.
type Capability uint64

const (
	// CapabilityGetOpaque permits reading opaque objects.
	CapabilityGetOpaque Capability = 1 << iota
	// CapabilityPutOpaque permits importing opaque objects.
	CapabilityPutOpaque
	// CapabilityPutAuthenticationKey permits importing authentication keys.
	CapabilityPutAuthenticationKey
	// CapabilityPutAsymmetricKey permits importing asymmetric keys.
	CapabilityPutAsymmetricKey
	// CapabilityGenerateAsymmetricKey permits generating asymmetric keys.
	CapabilityGenerateAsymmetricKey
	// CapabilitySignPKCS permits RSASSA-PKCS#1v1.5 signatures.
	CapabilitySignPKCS
	// CapabilitySignPSS permits RSASSA-PSS signatures.
	CapabilitySignPSS
	// CapabilitySignECDSA permits ECDSA signatures.
	CapabilitySignECDSA
	// CapabilitySignEdDSA permits EdDSA signatures.
	CapabilitySignEdDSA
	// CapabilityDecryptPKCS permits RSAES-PKCS#1v1.5 decryption.
	CapabilityDecryptPKCS
	// CapabilityDecryptOAEP permits RSAES-OAEP decryption.
	CapabilityDecryptOAEP
	// CapabilityDeriveECDH permits ECDH key agreement.
	CapabilityDeriveECDH
	// CapabilityExportWrapped permits using this key to export other
	// objects under wrap.
	CapabilityExportWrapped
	// CapabilityImportWrapped permits using this key to import wrapped
	// objects.
	CapabilityImportWrapped
	// CapabilityPutWrapKey permits importing wrap keys.
	CapabilityPutWrapKey
	// CapabilityGenerateWrapKey permits generating wrap keys.
	CapabilityGenerateWrapKey
	// CapabilityExportableUnderWrap marks an object as exportable under
	// wrap. Wrapping an object without this bit fails.
	CapabilityExportableUnderWrap
	// CapabilityGetPseudoRandom permits drawing from the device RNG.
	CapabilityGetPseudoRandom
	// CapabilityPutHMACKey permits importing HMAC keys.
	CapabilityPutHMACKey
	// CapabilityGenerateHMACKey permits generating HMAC keys.
	CapabilityGenerateHMACKey
	// CapabilitySignHMAC permits computing HMAC tags.
	CapabilitySignHMAC
	// CapabilityVerifyHMAC permits verifying HMAC tags.
	CapabilityVerifyHMAC
	// CapabilityWrapData permits wrapping arbitrary data.
	CapabilityWrapData
	// CapabilityUnwrapData permits unwrapping arbitrary data.
	CapabilityUnwrapData
	// CapabilityDeleteOpaque permits deleting opaque objects.
	CapabilityDeleteOpaque
	// CapabilityDeleteAuthenticationKey permits deleting authentication keys.
	CapabilityDeleteAuthenticationKey
	// CapabilityDeleteAsymmetricKey permits deleting asymmetric keys.
	CapabilityDeleteAsymmetricKey
	// CapabilityDeleteWrapKey permits deleting wrap keys.
	CapabilityDeleteWrapKey
	// CapabilityDeleteHMACKey permits deleting HMAC keys.
	CapabilityDeleteHMACKey
	// CapabilityChangeAuthenticationKey permits replacing authentication keys.
	CapabilityChangeAuthenticationKey

	capabilityCount = iota
)

// CapabilityNone is the empty capability set.
const CapabilityNone Capability = 0

// CapabilityAll is the set of every defined capability bit, as carried by
// the factory-default authentication key.
const CapabilityAll Capability = 1<<capabilityCount - 1

var capabilityNames = map[Capability]string{
	CapabilityGetOpaque:               "get-opaque",
	CapabilityPutOpaque:               "put-opaque",
	CapabilityPutAuthenticationKey:    "put-authentication-key",
	CapabilityPutAsymmetricKey:        "put-asymmetric-key",
	CapabilityGenerateAsymmetricKey:   "generate-asymmetric-key",
	CapabilitySignPKCS:                "sign-pkcs",
	CapabilitySignPSS:                 "sign-pss",
	CapabilitySignECDSA:               "sign-ecdsa",
	CapabilitySignEdDSA:               "sign-eddsa",
	CapabilityDecryptPKCS:             "decrypt-pkcs",
	CapabilityDecryptOAEP:             "decrypt-oaep",
	CapabilityDeriveECDH:              "derive-ecdh",
	CapabilityExportWrapped:           "export-wrapped",
	CapabilityImportWrapped:           "import-wrapped",
	CapabilityPutWrapKey:              "put-wrap-key",
	CapabilityGenerateWrapKey:         "generate-wrap-key",
	CapabilityExportableUnderWrap:     "exportable-under-wrap",
	CapabilityGetPseudoRandom:         "get-pseudo-random",
	CapabilityPutHMACKey:              "put-hmac-key",
	CapabilityGenerateHMACKey:         "generate-hmac-key",
	CapabilitySignHMAC:                "sign-hmac",
	CapabilityVerifyHMAC:              "verify-hmac",
	CapabilityWrapData:                "wrap-data",
	CapabilityUnwrapData:              "unwrap-data",
	CapabilityDeleteOpaque:            "delete-opaque",
	CapabilityDeleteAuthenticationKey: "delete-authentication-key",
	CapabilityDeleteAsymmetricKey:     "delete-asymmetric-key",
	CapabilityDeleteWrapKey:           "delete-wrap-key",
	CapabilityDeleteHMACKey:           "delete-hmac-key",
	CapabilityChangeAuthenticationKey: "change-authentication-key",
}

// Contains reports whether every bit in other is present in c.
func (c Capability) Contains(other Capability) bool {
	return c&other == other
}

// Union returns the capability set containing every bit of c and other.
func (c Capability) Union(other Capability) Capability {
	return c | other
}

// String returns the comma-separated names of the set bits.
func (c Capability) String() string {
	if c == CapabilityNone {
		return "none"
	}
	var names []string
	for bit := Capability(1); bit != 0 && bit <= c; bit <<= 1 {
		if c&bit == 0 {
			continue
		}
		if name, ok := capabilityNames[bit]; ok {
			names = append(names, name)
		}
	}
	return strings.Join(names, ",")
}
