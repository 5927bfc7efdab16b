// Copyright 2021 Jake Scott. All rights reserved.
// Use of this source code is governed by the Apache License
// version 2.0 that can be found in the LICENSE file.
package sasl

import (
	"log"
	"strings"

	"github.com/golang-auth/go-sasl-scram/common"
	"github.com/golang-auth/go-sasl-scram/pkg/loggable"
	"github.com/golang-auth/go-sasl-scram/registry"

	_ "github.com/golang-auth/go-sasl-scram/scram"
)

type ClientOption func(*Client) error

// Client drives one authentication exchange for the mechanism named at
// construction. The transport is the caller's business: the caller
// sends the bytes returned by Start before reading anything from the
// server, then feeds each server message to Step and sends the result.
//
// A Client must not be used from more than one goroutine. Independent
// Clients are fully isolated and may run concurrently.
type Client struct {
	loggable.Loggable

	mech common.Mech

	mechName string
	username string
	password string

	nonceGen  common.NonceGenerator
	secretGen common.SecretGenerator
}

func NewClient(mechName, username, password string, opts ...ClientOption) (client Client, err error) {
	client = Client{
		mechName: mechName,
		username: username,
		password: password,
	}

	for _, o := range opts {
		if err = o(&client); err != nil {
			return
		}
	}

	if !registry.IsRegistered(mechName) {
		err = common.ErrUnknownMech
	}

	return client, err
}

// WithNonceGenerator overrides the mechanism's client nonce source.
// The default draws from crypto/rand; overriding it is intended for
// reproducing fixed exchanges in tests.
func WithNonceGenerator(g common.NonceGenerator) ClientOption {
	return func(c *Client) error {
		c.nonceGen = g
		return nil
	}
}

// WithSecretGenerator overrides how the authentication secret is
// derived from the credential before key derivation, replacing the
// mechanism's default.
func WithSecretGenerator(g common.SecretGenerator) ClientOption {
	return func(c *Client) error {
		c.secretGen = g
		return nil
	}
}

func WithDebugLogger(l *log.Logger) ClientOption {
	return func(c *Client) error {
		return loggable.WithDebugLogger(l)(&c.Loggable)
	}
}
func WithInfoLogger(l *log.Logger) ClientOption {
	return func(c *Client) error {
		return loggable.WithInfoLogger(l)(&c.Loggable)
	}
}
func WithWarnLogger(l *log.Logger) ClientOption {
	return func(c *Client) error {
		return loggable.WithWarnLogger(l)(&c.Loggable)
	}
}
func WithErrorLogger(l *log.Logger) ClientOption {
	return func(c *Client) error {
		return loggable.WithErrorLogger(l)(&c.Loggable)
	}
}

func (c Client) MechName() string {
	return c.mechName
}

func (c Client) IsEstablished() bool {
	if c.mech != nil {
		return c.mech.IsEstablished()
	} else {
		return false
	}
}

// Start begins a fresh authentication attempt and returns the initial
// response, which must be sent before anything is read from the server.
// Any conversation from a previous Start is abandoned; the new one
// generates its own nonce.
func (c *Client) Start() (outToken []byte, err error) {
	c.mech = nil

	props := registry.Properties(c.mechName)
	c.Debugf("mech %s: [%s]", c.mechName, describeProps(props))

	cfg := common.MechConfig{
		Logger:          c.Loggable,
		Username:        c.username,
		Password:        c.password,
		NonceGenerator:  c.nonceGen,
		SecretGenerator: c.secretGen,
	}

	mech, err := registry.NewMech(c.mechName, cfg)
	if err != nil {
		return nil, err
	}
	c.mech = mech

	return c.mech.Step(nil)
}

func (c *Client) Step(inToken []byte) (outToken []byte, err error) {
	if c.mech == nil {
		return nil, common.ErrNotStarted
	}

	return c.mech.Step(inToken)
}

func describeProps(props common.MechProps) string {
	var names []string

	for _, f := range common.FlagList(props.SecurityProperties) {
		names = append(names, common.FlagName(f))
	}
	for _, f := range common.FeatureList(props.Features) {
		names = append(names, common.FeatureName(f))
	}

	return strings.Join(names, "; ")
}
