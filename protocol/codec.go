package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Codec selects the frame format of one connection. Inbound frames are always
// JSON; outbound frames follow the codec.
type Codec uint8

const (
	CodecJSON Codec = iota
	CodecMsgpack
)

func ParseCodec(s string) Codec {
	if s == "msgpack" {
		return CodecMsgpack
	}
	return CodecJSON
}

func (c Codec) String() string {
	if c == CodecMsgpack {
		return "msgpack"
	}
	return "json"
}

// Binary reports whether frames must go out as websocket binary messages.
func (c Codec) Binary() bool { return c == CodecMsgpack }

func (c Codec) Encode(t string, payload any) ([]byte, error) {
	if c == CodecMsgpack {
		return EncodeBinary(t, payload)
	}
	return Encode(t, payload)
}

func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, fmt.Errorf("trying to encode envelope type nil")
	}
	if payload == nil {
		return nil, fmt.Errorf("trying to encode nil payload")
	}
	pb, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	var e = Envelope{t, pb}

	return json.Marshal(e)
}

func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, fmt.Errorf("decode envelope: empty frame")
	}
	var e Envelope
	err := json.Unmarshal(b, &e)
	if err != nil {
		return Envelope{}, err
	}
	return e, nil
}

func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.P) == 0 {
		return out, fmt.Errorf("empty payload for type %q", env.T)
	}
	err := json.Unmarshal(env.P, &out)
	return out, err
}

// msgpack frames reuse the json struct tags so both codecs share field names.

type binaryEnvelope struct {
	T string `json:"t"`
	P any    `json:"p"`
}

type BinaryEnvelope struct {
	T string             `json:"t"`
	P msgpack.RawMessage `json:"p"`
}

func EncodeBinary(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, fmt.Errorf("trying to encode envelope type nil")
	}
	if payload == nil {
		return nil, fmt.Errorf("trying to encode nil payload")
	}
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(binaryEnvelope{T: t, P: payload}); err != nil {
		return nil, fmt.Errorf("encode %s: %w", t, err)
	}
	return buf.Bytes(), nil
}

func DecodeBinaryEnvelope(b []byte) (BinaryEnvelope, error) {
	if len(b) == 0 {
		return BinaryEnvelope{}, fmt.Errorf("decode envelope: empty frame")
	}
	var e BinaryEnvelope
	if err := newBinaryDecoder(b).Decode(&e); err != nil {
		return BinaryEnvelope{}, err
	}
	return e, nil
}

func DecodeBinaryPayload[T any](env BinaryEnvelope) (T, error) {
	var out T
	if len(env.P) == 0 {
		return out, fmt.Errorf("empty payload for type %q", env.T)
	}
	err := newBinaryDecoder(env.P).Decode(&out)
	return out, err
}

func newBinaryDecoder(b []byte) *msgpack.Decoder {
	dec := msgpack.NewDecoder(bytes.NewReader(b))
	dec.SetCustomStructTag("json")
	return dec
}
