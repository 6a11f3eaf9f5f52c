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

import (
	"fmt"
	"strings"
)

// Domain is a 16-bit partition mask isolating objects into up to 16
// logical compartments. Domain membership is advisory from the store's
// perspective: the session/dispatch layer enforces it on most commands.
type Domain uint16

const (
	Domain1 Domain = 1 << iota
	Domain2
	Domain3
	Domain4
	Domain5
	Domain6
	Domain7
	Domain8
	Domain9
	Domain10
	Domain11
	Domain12
	Domain13
	Domain14
	Domain15
	Domain16
)

// DomainNone is the empty domain set.
const DomainNone Domain = 0

// DomainAll is membership in all 16 domains, as carried by the
// factory-default authentication key.
const DomainAll Domain = 0xffff

// Contains reports whether every domain bit in other is present in d.
func (d Domain) Contains(other Domain) bool {
	return d&other == other
}

// Union returns the domain set containing every bit of d and other.
func (d Domain) Union(other Domain) Domain {
	return d | other
}

// String returns the comma-separated one-based domain numbers of the set bits.
func (d Domain) String() string {
	if d == DomainNone {
		return "none"
	}
	var names []string
	for i := 0; i < 16; i++ {
		if d&(1<<i) != 0 {
			names = append(names, fmt.Sprintf("%d", i+1))
		}
	}
	return strings.Join(names, ",")
}
