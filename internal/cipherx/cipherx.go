// Package cipherx implements the reversible obfuscation applied to the
// session cookie: a repeating-key XOR over the plaintext bytes, wrapped in
// percent-escaping and base64 so the result is cookie-safe text.
//
// This is deliberately NOT cryptography. The key ships inside the client,
// there is no integrity tag, and anyone holding a ciphertext can decode or
// forge one. The purpose is to deter casual inspection of the cookie value,
// nothing more; do not reuse this package for anything that needs real
// confidentiality.
package cipherx

import (
	"encoding/base64"
	"net/url"
)

// DefaultKey is the embedded obfuscation key used when no key is
// configured. It is not a secret.
const DefaultKey = "civicwatch_secret_key"

// Codec obfuscates and recovers cookie payloads with a fixed key.
type Codec struct {
	key []byte
}

// NewCodec returns a Codec for the given key. An empty key falls back to
// DefaultKey.
func NewCodec(key string) *Codec {
	if key == "" {
		key = DefaultKey
	}
	return &Codec{key: []byte(key)}
}

func (c *Codec) xor(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ c.key[i%len(c.key)]
	}
	return out
}

// Encode obfuscates plaintext: XOR with the cycled key, percent-escape the
// raw byte sequence, then base64. Returns "" for empty input. Encoding has
// no failure mode; Decode(Encode(x)) == x for every string x.
func (c *Codec) Encode(plaintext string) string {
	if plaintext == "" {
		return ""
	}
	escaped := url.QueryEscape(string(c.xor([]byte(plaintext))))
	return base64.StdEncoding.EncodeToString([]byte(escaped))
}

// Decode inverts Encode. Malformed input of any kind (bad base64, bad
// percent-escape) yields "" rather than an error; callers treat that as an
// absent value.
func (c *Codec) Decode(ciphertext string) string {
	if ciphertext == "" {
		return ""
	}
	escaped, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return ""
	}
	raw, err := url.QueryUnescape(string(escaped))
	if err != nil {
		return ""
	}
	return string(c.xor([]byte(raw)))
}
