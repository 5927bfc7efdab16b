// Copyright 2021 Jake Scott. All rights reserved.
// Use of this source code is governed by the Apache License
// version 2.0 that can be found in the LICENSE file.
package scram

import (
	"crypto/rand"
)

// The nonce alphabet is printable ASCII 0x21..0x7e with the comma
// excluded, since commas delimit message attributes.
const (
	nonceLength = 24
	nonceLow    = 33
	nonceHigh   = 126
	nonceComma  = 44
)

// defaultNonceGenerator draws nonceLength characters from the printable
// range by rejection-sampling crypto/rand output. crypto/rand is safe
// for concurrent use, so independent sessions need no coordination.
func defaultNonceGenerator() string {
	out := make([]byte, 0, nonceLength)
	buf := make([]byte, nonceLength)

	for len(out) < nonceLength {
		if _, err := rand.Read(buf); err != nil {
			panic("scram: secure random source unavailable: " + err.Error())
		}

		for _, b := range buf {
			if b < nonceLow || b > nonceHigh || b == nonceComma {
				continue
			}
			out = append(out, b)
			if len(out) == nonceLength {
				break
			}
		}
	}

	return string(out)
}
