// Copyright 2021 Jake Scott. All rights reserved.
// Use of this source code is governed by the Apache License
// version 2.0 that can be found in the LICENSE file.
package scram

import (
	"crypto/hmac"
	"hash"
)

func computeHash(newHash func() hash.Hash, data []byte) []byte {
	h := newHash()
	h.Write(data)
	return h.Sum(nil)
}

func computeHMAC(newHash func() hash.Hash, key, data []byte) []byte {
	mac := hmac.New(newHash, key)
	mac.Write(data)
	return mac.Sum(nil)
}

// hi is the Hi() key derivation from RFC 5802 § 2.2: U1 is the HMAC of
// the salt concatenated with a big-endian block index of one, each
// further U is the HMAC of its predecessor, and the result is the XOR of
// all of them. Intermediates are folded into the result as they are
// produced rather than retained.
func hi(newHash func() hash.Hash, secret, salt []byte, iterations int) []byte {
	mac := hmac.New(newHash, secret)
	mac.Write(salt)
	mac.Write([]byte{0, 0, 0, 1})
	u := mac.Sum(nil)

	result := make([]byte, len(u))
	copy(result, u)

	for i := 1; i < iterations; i++ {
		mac.Reset()
		mac.Write(u)
		u = mac.Sum(nil)

		for j := range result {
			result[j] ^= u[j]
		}
	}

	return result
}

// xorBytes combines two equal-length digests byte-wise.
func xorBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}

	return out
}
