// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSON codec for State values.
//
// The wire form is a tagged envelope {"tag": <variant>, "value": <payload>}.
// Empty omits "value" entirely; Pending without a previous value encodes
// "value": null. Payloads are encoded and decoded by caller-supplied leaf
// codecs, so E and A stay opaque to the envelope.

// An Encoder serializes a payload value.
type Encoder[T any] func(T) ([]byte, error)

// A Decoder parses a payload value.
type Decoder[T any] func([]byte) (T, error)

// JSONCodec derives an Encoder/Decoder pair from encoding/json for types
// that marshal without help.
func JSONCodec[T any]() (Encoder[T], Decoder[T]) {
	enc := func(v T) ([]byte, error) {
		return json.Marshal(v)
	}
	dec := func(data []byte) (T, error) {
		var v T
		err := json.Unmarshal(data, &v)
		return v, err
	}
	return enc, dec
}

var jsonNull = json.RawMessage("null")

type stateEnvelope struct {
	Tag   string           `json:"tag"`
	Value *json.RawMessage `json:"value,omitempty"`
}

// EncodeState serializes a State as a tagged envelope using the given leaf
// codecs for the error and value payloads.
func EncodeState[E, A any](encErr Encoder[E], encVal Encoder[A], s State[E, A]) ([]byte, error) {
	env := stateEnvelope{}
	switch s.tag {
	case tagEmpty:
		env.Tag = "Empty"
	case tagPending:
		env.Tag = "Pending"
		if prev, ok := s.val.Get(); ok {
			raw, err := encVal(prev)
			if err != nil {
				return nil, err
			}
			msg := json.RawMessage(raw)
			env.Value = &msg
		} else {
			env.Value = &jsonNull
		}
	case tagStale, tagDone:
		if s.tag == tagStale {
			env.Tag = "Stale"
		} else {
			env.Tag = "Done"
		}
		a, _ := s.val.Get()
		raw, err := encVal(a)
		if err != nil {
			return nil, err
		}
		msg := json.RawMessage(raw)
		env.Value = &msg
	case tagError:
		env.Tag = "Error"
		raw, err := encErr(s.err)
		if err != nil {
			return nil, err
		}
		msg := json.RawMessage(raw)
		env.Value = &msg
	}
	return json.Marshal(env)
}

// DecodeState parses a tagged envelope back into a State using the given
// leaf codecs. Decoding fails on an unknown tag.
func DecodeState[E, A any](decErr Decoder[E], decVal Decoder[A], data []byte) (State[E, A], error) {
	var env struct {
		Tag   string          `json:"tag"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return State[E, A]{}, err
	}
	switch env.Tag {
	case "Empty":
		return Empty[E, A](), nil
	case "Pending":
		if len(env.Value) == 0 || bytes.Equal(env.Value, jsonNull) {
			return Pending[E, A](None[A]()), nil
		}
		prev, err := decVal(env.Value)
		if err != nil {
			return State[E, A]{}, err
		}
		return Pending[E](Some(prev)), nil
	case "Stale":
		a, err := decVal(env.Value)
		if err != nil {
			return State[E, A]{}, err
		}
		return Stale[E](a), nil
	case "Done":
		a, err := decVal(env.Value)
		if err != nil {
			return State[E, A]{}, err
		}
		return Done[E](a), nil
	case "Error":
		e, err := decErr(env.Value)
		if err != nil {
			return State[E, A]{}, err
		}
		return Error[E, A](e), nil
	default:
		return State[E, A]{}, fmt.Errorf("Unknown tag: %s", env.Tag)
	}
}
