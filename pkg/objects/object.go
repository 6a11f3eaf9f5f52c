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
	"github.com/jeremyhahn/go-mockhsm/pkg/payload"
	"github.com/jeremyhahn/go-mockhsm/pkg/types"
)

// Object is the unit of storage: one metadata record paired with the
// payload it describes. Info.Length always equals Payload.Len(); the two
// are only ever separated inside the transient wrapped-object envelope.
type Object struct {
	Info    types.ObjectInfo
	Payload *payload.Payload
}

// Handle returns the store key identifying this object.
func (o *Object) Handle() types.ObjectHandle {
	return o.Info.Handle()
}
