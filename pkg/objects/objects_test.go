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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-mockhsm/pkg/logging"
	"github.com/jeremyhahn/go-mockhsm/pkg/payload"
	"github.com/jeremyhahn/go-mockhsm/pkg/types"
)

func TestNewBootstrap(t *testing.T) {
	store := New()

	// Exactly one object: the factory-default authentication key.
	require.Equal(t, 1, store.Len())

	obj, ok := store.Get(DefaultAuthenticationKeyID, types.TypeAuthenticationKey)
	require.True(t, ok)

	assert.Equal(t, DefaultAuthenticationKeyID, obj.Info.ObjectID)
	assert.Equal(t, types.TypeAuthenticationKey, obj.Info.ObjectType)
	assert.Equal(t, types.AlgorithmYubicoAESAuthentication, obj.Info.Algorithm)
	assert.Equal(t, types.CapabilityAll, obj.Info.Capabilities)
	assert.Equal(t, types.CapabilityAll, obj.Info.DelegatedCapabilities)
	assert.Equal(t, types.DomainAll, obj.Info.Domains)
	assert.Equal(t, uint16(payload.AuthenticationKeySize), obj.Info.Length)
	assert.Equal(t, uint8(1), obj.Info.Sequence)
	assert.Equal(t, types.OriginImported, obj.Info.Origin)
	assert.Equal(t, DefaultAuthenticationKeyLabel, obj.Info.Label.String())
	assert.Equal(t, payload.DefaultAuthenticationKey().Bytes(), obj.Payload.Bytes())
}

func TestIndependentInstances(t *testing.T) {
	a := New()
	b := New()

	_, err := a.Generate(100, types.TypeHMACKey, types.AlgorithmHMACSHA256,
		types.NewObjectLabel("only in a"), types.CapabilitySignHMAC, types.CapabilityNone, types.Domain1)
	require.NoError(t, err)

	_, ok := b.Get(100, types.TypeHMACKey)
	assert.False(t, ok)
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 1, b.Len())
}

func TestGenerate(t *testing.T) {
	store := New(WithLogger(logging.NewNopLogger()))

	obj, err := store.Generate(10, types.TypeWrapKey, types.AlgorithmAES256CCMWrap,
		types.NewObjectLabel("wrap key"),
		types.CapabilityExportWrapped.Union(types.CapabilityImportWrapped),
		types.CapabilityNone, types.DomainAll)
	require.NoError(t, err)

	assert.Equal(t, types.NewObjectHandle(10, types.TypeWrapKey), obj.Handle())
	assert.Equal(t, types.OriginGenerated, obj.Info.Origin)
	assert.Equal(t, uint8(1), obj.Info.Sequence)
	assert.Equal(t, uint16(32), obj.Info.Length)
	assert.Equal(t, obj.Payload.Len(), obj.Info.Length)

	stored, ok := store.Get(10, types.TypeWrapKey)
	require.True(t, ok)
	assert.Same(t, obj, stored)
}

func TestGenerateDuplicateHandle(t *testing.T) {
	store := New()

	first, err := store.Generate(5, types.TypeAsymmetricKey, types.AlgorithmEd25519,
		types.NewObjectLabel("first"), types.CapabilitySignEdDSA, types.CapabilityNone, types.Domain1)
	require.NoError(t, err)

	_, err = store.Generate(5, types.TypeAsymmetricKey, types.AlgorithmECP256,
		types.NewObjectLabel("second"), types.CapabilitySignECDSA, types.CapabilityNone, types.Domain1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrObjectExists))

	// The store is unchanged: same count, original object intact.
	assert.Equal(t, 2, store.Len())
	stored, ok := store.Get(5, types.TypeAsymmetricKey)
	require.True(t, ok)
	assert.Same(t, first, stored)
	assert.Equal(t, "first", stored.Info.Label.String())
}

func TestGenerateOpaqueFails(t *testing.T) {
	store := New()

	_, err := store.Generate(6, types.TypeOpaque, types.AlgorithmOpaqueData,
		types.NewObjectLabel("blob"), types.CapabilityNone, types.CapabilityNone, types.Domain1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, payload.ErrCannotGenerate))
	assert.Equal(t, 1, store.Len())
}

func TestPut(t *testing.T) {
	store := New()
	data := []byte("opaque certificate contents")

	obj, err := store.Put(30, types.TypeOpaque, types.AlgorithmOpaqueX509Certificate,
		types.NewObjectLabel("cert"), types.CapabilityGetOpaque, types.CapabilityNone, types.Domain2, data)
	require.NoError(t, err)

	assert.Equal(t, types.OriginImported, obj.Info.Origin)
	assert.Equal(t, uint16(len(data)), obj.Info.Length)
	assert.Equal(t, data, obj.Payload.Bytes())

	t.Run("payload validation failure leaves store unchanged", func(t *testing.T) {
		before := store.Len()
		_, err := store.Put(31, types.TypeWrapKey, types.AlgorithmAES128CCMWrap,
			types.NewObjectLabel("short"), types.CapabilityNone, types.CapabilityNone, types.Domain1,
			[]byte{1, 2, 3})
		require.Error(t, err)
		assert.True(t, errors.Is(err, payload.ErrInvalidKeyLength))
		assert.Equal(t, before, store.Len())
	})

	t.Run("duplicate handle", func(t *testing.T) {
		_, err := store.Put(30, types.TypeOpaque, types.AlgorithmOpaqueData,
			types.NewObjectLabel("again"), types.CapabilityNone, types.CapabilityNone, types.Domain1,
			[]byte("other"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrObjectExists))
	})

	t.Run("same id different type is distinct", func(t *testing.T) {
		_, err := store.Put(30, types.TypeHMACKey, types.AlgorithmHMACSHA256,
			types.NewObjectLabel("hmac"), types.CapabilitySignHMAC, types.CapabilityNone, types.Domain1,
			[]byte("hmac key material"))
		require.NoError(t, err)
	})
}

func TestGetAbsent(t *testing.T) {
	store := New()
	obj, ok := store.Get(0x1234, types.TypeWrapKey)
	assert.False(t, ok)
	assert.Nil(t, obj)
}

func TestRemove(t *testing.T) {
	store := New()

	_, err := store.Generate(7, types.TypeHMACKey, types.AlgorithmHMACSHA256,
		types.NewObjectLabel("ephemeral"), types.CapabilitySignHMAC, types.CapabilityNone, types.Domain1)
	require.NoError(t, err)

	removed, ok := store.Remove(7, types.TypeHMACKey)
	require.True(t, ok)
	assert.Equal(t, types.NewObjectHandle(7, types.TypeHMACKey), removed.Handle())
	assert.Equal(t, 1, store.Len())

	_, ok = store.Get(7, types.TypeHMACKey)
	assert.False(t, ok)

	// Removing an absent object is not an error.
	obj, ok := store.Remove(7, types.TypeHMACKey)
	assert.False(t, ok)
	assert.Nil(t, obj)
}

func TestListAndIterOrder(t *testing.T) {
	store := New()

	// Insert out of order; bootstrap key occupies (1, authentication-key).
	for _, id := range []types.ObjectID{40, 3, 300} {
		_, err := store.Generate(id, types.TypeHMACKey, types.AlgorithmHMACSHA256,
			types.NewObjectLabel("k"), types.CapabilitySignHMAC, types.CapabilityNone, types.Domain1)
		require.NoError(t, err)
	}
	_, err := store.Generate(3, types.TypeWrapKey, types.AlgorithmAES128CCMWrap,
		types.NewObjectLabel("w"), types.CapabilityExportWrapped, types.CapabilityNone, types.Domain1)
	require.NoError(t, err)

	want := []types.ObjectHandle{
		types.NewObjectHandle(1, types.TypeAuthenticationKey),
		types.NewObjectHandle(3, types.TypeWrapKey),
		types.NewObjectHandle(3, types.TypeHMACKey),
		types.NewObjectHandle(40, types.TypeHMACKey),
		types.NewObjectHandle(300, types.TypeHMACKey),
	}
	assert.Equal(t, want, store.List())

	var got []types.ObjectHandle
	for handle, obj := range store.Iter() {
		require.NotNil(t, obj)
		assert.Equal(t, handle, obj.Handle())
		got = append(got, handle)
	}
	assert.Equal(t, want, got)

	t.Run("early break", func(t *testing.T) {
		var count int
		for range store.Iter() {
			count++
			if count == 2 {
				break
			}
		}
		assert.Equal(t, 2, count)
	})

	t.Run("restart observes current state", func(t *testing.T) {
		seq := store.Iter()

		var first []types.ObjectHandle
		for handle := range seq {
			first = append(first, handle)
		}

		_, ok := store.Remove(300, types.TypeHMACKey)
		require.True(t, ok)

		var second []types.ObjectHandle
		for handle := range seq {
			second = append(second, handle)
		}
		assert.Len(t, second, len(first)-1)
		assert.NotContains(t, second, types.NewObjectHandle(300, types.TypeHMACKey))
	})
}
