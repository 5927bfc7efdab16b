// Copyright 2021 Jake Scott. All rights reserved.
// Use of this source code is governed by the Apache License
// version 2.0 that can be found in the LICENSE file.
package common

import (
	"github.com/golang-auth/go-sasl-scram/pkg/loggable"
)

// MechProps describes the security characteristics that a mechanism
// advertises through the registry.
type MechProps struct {
	MaxSSF             uint
	SecurityProperties SecurityFlag
	Features           Feature
}

// NonceGenerator returns a fresh client nonce for one authentication
// attempt: printable ASCII with the comma excluded. Implementations must
// draw from a cryptographically secure source and must be safe for
// concurrent use by independent sessions.
type NonceGenerator func() string

// SecretGenerator derives the authentication secret that is fed into the
// salted key derivation. Mechanisms install a variant-specific default;
// callers may override it, for example to supply a pre-hashed value.
type SecretGenerator func(username, password string) (string, error)

type MechConfig struct {
	Logger   loggable.Loggable
	Username string
	Password string

	// Optional strategy overrides; nil selects the mechanism default.
	NonceGenerator  NonceGenerator
	SecretGenerator SecretGenerator
}

// Mech is one client-side authentication conversation. An instance is
// single-use: once established (or failed) it cannot be restarted. A
// Mech must not be shared between goroutines, but distinct instances
// are fully independent.
type Mech interface {
	Name() string
	MechProperties() MechProps
	IsEstablished() bool
	Step(inToken []byte) (outToken []byte, err error)
}
