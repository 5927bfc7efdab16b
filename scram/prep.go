// Copyright 2021 Jake Scott. All rights reserved.
// Use of this source code is governed by the Apache License
// version 2.0 that can be found in the LICENSE file.
package scram

import (
	"crypto/md5"
	"encoding/hex"

	"github.com/xdg-go/stringprep"
)

// noPrep is the SCRAM-SHA-1 normalization: none. The legacy credential
// digest must be computed over the credential exactly as supplied.
func noPrep(s string) (string, error) {
	return s, nil
}

// saslPrepStored runs the SASLprep stored-string profile (RFC 4013):
// case-preserving NFKC with prohibited and unassigned code points
// rejected.
func saslPrepStored(s string) (string, error) {
	return stringprep.SASLprep.Prepare(s)
}

// legacySecret derives the SCRAM-SHA-1 authentication secret: the
// lowercase hex MD5 digest of "<username>:mongo:<password>", matching
// servers that store the pre-SCRAM credential format.
func legacySecret(username, password string) (string, error) {
	h := md5.New()
	h.Write([]byte(username))
	h.Write([]byte(":mongo:"))
	h.Write([]byte(password))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// preppedSecret derives the SCRAM-SHA-256 secret: the password itself,
// normalized. Byte-distinct but normalization-equivalent passwords
// yield the same secret.
func preppedSecret(_, password string) (string, error) {
	return saslPrepStored(password)
}
