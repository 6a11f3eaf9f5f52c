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

// Package objects implements the object inventory of one simulated HSM:
// an ordered mapping from object handle to object, with the device's
// lifecycle operations (generate, put, get, remove, iterate) and its
// wrap/unwrap secure-transfer protocol.
//
// A Store represents a single simulated device and owns every object in
// it. It is not internally synchronized: the surrounding session/dispatch
// layer runs one command at a time per device, and concurrent callers
// must serialize access to a shared instance. Independent instances share
// no state.
package objects

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/jeremyhahn/go-mockhsm/pkg/logging"
	"github.com/jeremyhahn/go-mockhsm/pkg/metrics"
	"github.com/jeremyhahn/go-mockhsm/pkg/payload"
	"github.com/jeremyhahn/go-mockhsm/pkg/serialization"
	"github.com/jeremyhahn/go-mockhsm/pkg/types"
)

const (
	// DefaultAuthenticationKeyID is the well-known id of the
	// factory-default authentication key.
	DefaultAuthenticationKeyID types.ObjectID = 1

	// DefaultAuthenticationKeyLabel is the label on the factory-default
	// authentication key.
	DefaultAuthenticationKeyLabel = "DEFAULT AUTHKEY CHANGE THIS ASAP"
)

// Store holds the objects of one simulated device, keyed by handle.
type Store struct {
	objects map[types.ObjectHandle]*Object
	logger  *logging.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for operation tracing. The default
// logger discards all output.
func WithLogger(logger *logging.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a store pre-populated with the factory-default
// authentication key: full capabilities and domains, imported origin,
// payload derived from the default password. Every other object enters
// through Generate, Put or Unwrap.
func New(opts ...Option) *Store {
	s := &Store{
		objects: make(map[types.ObjectHandle]*Object),
		logger:  logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	authKey := payload.DefaultAuthenticationKey()
	defaultAuthKey := &Object{
		Info: types.ObjectInfo{
			ObjectID:              DefaultAuthenticationKeyID,
			ObjectType:            types.TypeAuthenticationKey,
			Algorithm:             types.AlgorithmYubicoAESAuthentication,
			Capabilities:          types.CapabilityAll,
			DelegatedCapabilities: types.CapabilityAll,
			Domains:               types.DomainAll,
			Length:                authKey.Len(),
			Sequence:              1,
			Origin:                types.OriginImported,
			Label:                 types.NewObjectLabel(DefaultAuthenticationKeyLabel),
		},
		Payload: authKey,
	}

	// The bootstrap handle cannot collide in an empty map.
	if err := s.insert(defaultAuthKey.Handle(), defaultAuthKey); err != nil {
		panic(err)
	}

	return s
}

// insert adds an object under the given handle, failing with
// ErrObjectExists when the handle is already occupied. All insertion
// paths (Generate, Put, Unwrap, bootstrap) route through here.
func (s *Store) insert(handle types.ObjectHandle, object *Object) error {
	if _, exists := s.objects[handle]; exists {
		return fmt.Errorf("%w: %s", ErrObjectExists, handle)
	}
	s.objects[handle] = object
	metrics.RecordObjectAdded()
	return nil
}

// Generate creates an object with freshly generated key material and
// inserts it under the handle derived from id and typ. The object's
// origin is generated and its sequence starts at 1. Fails with
// ErrObjectExists when the handle is occupied; the store is unchanged on
// any failure.
func (s *Store) Generate(
	id types.ObjectID,
	typ types.ObjectType,
	algorithm types.Algorithm,
	label types.ObjectLabel,
	capabilities types.Capability,
	delegatedCapabilities types.Capability,
	domains types.Domain,
) (obj *Object, err error) {
	start := time.Now()
	defer func() { metrics.RecordOperation(metrics.OpGenerate, start, err) }()

	p, err := payload.Generate(algorithm)
	if err != nil {
		return nil, err
	}

	obj, err = s.newObject(id, typ, label, capabilities, delegatedCapabilities, domains, types.OriginGenerated, p)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("generated object",
		"handle", obj.Handle().String(),
		"algorithm", algorithm.String())
	return obj, nil
}

// Put creates an object from caller-supplied key material and inserts it
// under the handle derived from id and typ. The object's origin is
// imported. Same duplicate-handle contract as Generate.
func (s *Store) Put(
	id types.ObjectID,
	typ types.ObjectType,
	algorithm types.Algorithm,
	label types.ObjectLabel,
	capabilities types.Capability,
	delegatedCapabilities types.Capability,
	domains types.Domain,
	data []byte,
) (obj *Object, err error) {
	start := time.Now()
	defer func() { metrics.RecordOperation(metrics.OpPut, start, err) }()

	p, err := payload.New(algorithm, data)
	if err != nil {
		return nil, err
	}

	obj, err = s.newObject(id, typ, label, capabilities, delegatedCapabilities, domains, types.OriginImported, p)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("imported object",
		"handle", obj.Handle().String(),
		"algorithm", algorithm.String())
	return obj, nil
}

// newObject assembles metadata around a payload and inserts the result.
func (s *Store) newObject(
	id types.ObjectID,
	typ types.ObjectType,
	label types.ObjectLabel,
	capabilities types.Capability,
	delegatedCapabilities types.Capability,
	domains types.Domain,
	origin types.ObjectOrigin,
	p *payload.Payload,
) (*Object, error) {
	obj := &Object{
		Info: types.ObjectInfo{
			ObjectID:              id,
			ObjectType:            typ,
			Algorithm:             p.Algorithm(),
			Capabilities:          capabilities,
			DelegatedCapabilities: delegatedCapabilities,
			Domains:               domains,
			Length:                p.Len(),
			Sequence:              1,
			Origin:                origin,
			Label:                 label,
		},
		Payload: p,
	}

	if err := s.insert(obj.Handle(), obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// Get looks up an object by id and type. The returned reference is a
// read-only borrow owned by the store; its validity ends at the next
// mutating call.
func (s *Store) Get(id types.ObjectID, typ types.ObjectType) (*Object, bool) {
	metrics.RecordCount(metrics.OpGet)
	obj, ok := s.objects[types.NewObjectHandle(id, typ)]
	return obj, ok
}

// Remove deletes an object by id and type, returning the removed object.
// Removing an absent object is not an error; the second return value
// reports whether anything was removed.
func (s *Store) Remove(id types.ObjectID, typ types.ObjectType) (*Object, bool) {
	metrics.RecordCount(metrics.OpRemove)
	handle := types.NewObjectHandle(id, typ)
	obj, ok := s.objects[handle]
	if !ok {
		return nil, false
	}
	delete(s.objects, handle)
	metrics.RecordObjectRemoved()
	s.logger.Debug("removed object", "handle", handle.String())
	return obj, true
}

// Len returns the number of stored objects.
func (s *Store) Len() int {
	return len(s.objects)
}

// List returns the handles of all stored objects in ascending handle
// order (object id, then type).
func (s *Store) List() []types.ObjectHandle {
	handles := make([]types.ObjectHandle, 0, len(s.objects))
	for handle := range s.objects {
		handles = append(handles, handle)
	}
	slices.SortFunc(handles, types.ObjectHandle.Compare)
	return handles
}

// Iter returns an iterator over (handle, object) pairs in ascending
// handle order. Each traversal snapshots the handle set when it starts,
// so ranging the same sequence again observes the store's current state.
func (s *Store) Iter() iter.Seq2[types.ObjectHandle, *Object] {
	return func(yield func(types.ObjectHandle, *Object) bool) {
		for _, handle := range s.List() {
			obj, ok := s.objects[handle]
			if !ok {
				continue
			}
			if !yield(handle, obj) {
				return
			}
		}
	}
}

// Wrap exports an object under a wrap key: the target's metadata (origin
// promoted) and raw payload bytes are serialized into an envelope and
// sealed with the wrap key's cipher under the first 12 bytes of nonce,
// with empty associated data. The ciphertext carries a trailing
// WrappedDataMACSize-byte authentication tag. Wrapping is non-destructive;
// the stored original is not modified or removed.
func (s *Store) Wrap(
	wrapKeyID types.ObjectID,
	objectID types.ObjectID,
	objectType types.ObjectType,
	nonce types.WrapNonce,
) (wrapped []byte, err error) {
	start := time.Now()
	defer func() { metrics.RecordOperation(metrics.OpWrap, start, err) }()

	wrapKey, ok := s.objects[types.NewObjectHandle(wrapKeyID, types.TypeWrapKey)]
	if !ok {
		return nil, fmt.Errorf("%w: 0x%04x", ErrWrapKeyNotFound, uint16(wrapKeyID))
	}

	aead, err := wrapCipher(wrapKey)
	if err != nil {
		return nil, err
	}

	target, ok := s.objects[types.NewObjectHandle(objectID, objectType)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound,
			types.NewObjectHandle(objectID, objectType))
	}

	if !target.Info.Capabilities.Contains(types.CapabilityExportableUnderWrap) {
		return nil, fmt.Errorf("%w: %s", ErrNotExportable, target.Handle())
	}

	// Promote origin on a copy of the metadata; the stored record keeps
	// its current origin.
	info := target.Info
	info.Origin = info.Origin.Wrapped()

	plaintext, err := serialization.Serialize(&WrappedObject{
		ObjectInfo: info,
		Data:       target.Payload.Bytes(),
	})
	if err != nil {
		return nil, err
	}

	gcmNonce, err := nonce.GCMNonce()
	if err != nil {
		return nil, err
	}

	// Seal in place: the tag is appended to the plaintext buffer.
	wrapped = aead.Seal(plaintext[:0], gcmNonce, plaintext, nil)

	metrics.RecordWrapBytes(len(wrapped))
	s.logger.Debug("wrapped object",
		"handle", target.Handle().String(),
		"wrapKey", wrapKey.Handle().String(),
		"bytes", len(wrapped))
	return wrapped, nil
}

// Unwrap imports a previously wrapped object: the ciphertext is opened
// with the wrap key's cipher, the recovered envelope is decoded, and the
// reconstructed object is inserted under the handle the envelope
// declares. A failed unwrap leaves the store exactly as before the call.
//
// Any authentication or framing failure surfaces as ErrDecryptionFailed
// without distinguishing the cause.
func (s *Store) Unwrap(
	wrapKeyID types.ObjectID,
	nonce types.WrapNonce,
	ciphertext []byte,
) (handle types.ObjectHandle, err error) {
	start := time.Now()
	defer func() { metrics.RecordOperation(metrics.OpUnwrap, start, err) }()

	wrapKey, ok := s.objects[types.NewObjectHandle(wrapKeyID, types.TypeWrapKey)]
	if !ok {
		return types.ObjectHandle{}, fmt.Errorf("%w: 0x%04x",
			ErrWrapKeyNotFound, uint16(wrapKeyID))
	}

	aead, err := wrapCipher(wrapKey)
	if err != nil {
		return types.ObjectHandle{}, err
	}

	gcmNonce, err := nonce.GCMNonce()
	if err != nil {
		return types.ObjectHandle{}, err
	}

	if len(ciphertext) < WrappedDataMACSize {
		return types.ObjectHandle{}, ErrDecryptionFailed
	}

	// Open on a copy so the caller's buffer is never mutated.
	buf := make([]byte, len(ciphertext))
	copy(buf, ciphertext)

	plaintext, err := aead.Open(buf[:0], gcmNonce, buf, nil)
	if err != nil {
		return types.ObjectHandle{}, ErrDecryptionFailed
	}

	var envelope WrappedObject
	if err := serialization.Deserialize(plaintext, &envelope); err != nil {
		return types.ObjectHandle{}, fmt.Errorf("%w: %v", ErrInvalidWrapData, err)
	}

	p, err := payload.New(envelope.ObjectInfo.Algorithm, envelope.Data)
	if err != nil {
		return types.ObjectHandle{}, fmt.Errorf("%w: %v", ErrInvalidWrapData, err)
	}

	if envelope.ObjectInfo.Length != p.Len() {
		return types.ObjectHandle{}, fmt.Errorf(
			"%w: declared length %d does not match %d payload bytes",
			ErrInvalidWrapData, envelope.ObjectInfo.Length, p.Len())
	}

	obj := &Object{Info: envelope.ObjectInfo, Payload: p}
	handle = obj.Handle()

	if err := s.insert(handle, obj); err != nil {
		return types.ObjectHandle{}, err
	}

	s.logger.Debug("unwrapped object",
		"handle", handle.String(),
		"wrapKey", wrapKey.Handle().String())
	return handle, nil
}
