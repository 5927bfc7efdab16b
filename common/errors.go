// Copyright 2021 Jake Scott. All rights reserved.
// Use of this source code is governed by the Apache License
// version 2.0 that can be found in the LICENSE file.
package common

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownMech = errors.New("mechanism is not registered")
	ErrNotStarted  = errors.New("must use Start() before Step()")

	// ErrInvalidNonce indicates that the server-returned nonce does not
	// begin with the nonce this client generated: a relayed or replayed
	// exchange, or a badly broken server.
	ErrInvalidNonce = errors.New("server sent an invalid nonce")

	// ErrInvalidServerSignature is the failure of the final, mutual
	// verification step: the server did not prove possession of the
	// derived server key.
	ErrInvalidServerSignature = errors.New("server signature was invalid")

	// ErrProtocolViolation covers malformed messages and steps taken
	// outside the mechanism's expected sequence.
	ErrProtocolViolation = errors.New("protocol violation")

	// ErrCryptoUnavailable indicates a missing hash or HMAC algorithm.
	// This is an environment problem, not an authentication failure.
	ErrCryptoUnavailable = errors.New("required algorithm is not available")
)

// ErrInvalidIterationCount is returned when a server advertises a key
// derivation iteration count below the accepted floor, which would
// weaken the derived keys (a downgrade attempt or a misconfigured
// server).
type ErrInvalidIterationCount struct {
	Count int
	Floor int
}

func (e ErrInvalidIterationCount) Error() string {
	return fmt.Sprintf("iteration count (%d) is less than the minimum (%d)", e.Count, e.Floor)
}
