// Copyright 2021 Jake Scott. All rights reserved.
// Use of this source code is governed by the Apache License
// version 2.0 that can be found in the LICENSE file.

// Package scram implements the client side of the SCRAM-SHA-1 and
// SCRAM-SHA-256 SASL mechanisms (RFC 5802, RFC 7677) without channel
// binding. Both variants register themselves with the registry package.
package scram

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"hash"
	"strconv"
	"strings"

	"github.com/golang-auth/go-sasl-scram/common"
	"github.com/golang-auth/go-sasl-scram/pkg/loggable"
	"github.com/golang-auth/go-sasl-scram/registry"
)

const (
	MechSHA1   = "SCRAM-SHA-1"
	MechSHA256 = "SCRAM-SHA-256"

	// no channel binding, no authorization identity
	gs2Header = "n,,"

	// servers advertising fewer rounds are refused, whatever they
	// claim is strong enough
	minimumIterationCount = 4096
)

func init() {
	// see: https://www.iana.org/assignments/sasl-mechanisms/sasl-mechanisms.xhtml

	props := common.MechProps{
		MaxSSF:             0,
		SecurityProperties: common.SecNoPlainText | common.SecNoActive | common.SecNoAnonymous | common.SecMutualAuth,
		Features:           common.FeatWantClientFirst | common.FeatSupportsHTTP,
	}

	registry.Register(MechSHA1, NewSHA1Mech, props)
	registry.Register(MechSHA256, NewSHA256Mech, props)
}

type state uint8

const (
	stateAwaitingStart state = iota
	stateAwaitingServerFirst
	stateAwaitingServerFinal
	stateDone
)

type ScramMech struct {
	loggable.Loggable
	name     string
	newHash  func() hash.Hash
	username string
	password string

	nonceGen  common.NonceGenerator
	secretGen common.SecretGenerator
	prep      func(string) (string, error)

	state                  state
	clientNonce            string
	clientFirstMessageBare string
	serverSignature        []byte
}

func NewSHA1Mech(cfg common.MechConfig) (common.Mech, error) {
	return newMech(MechSHA1, sha1.New, noPrep, legacySecret, cfg)
}

func NewSHA256Mech(cfg common.MechConfig) (common.Mech, error) {
	return newMech(MechSHA256, sha256.New, saslPrepStored, preppedSecret, cfg)
}

func newMech(name string, newHash func() hash.Hash, prep func(string) (string, error),
	secretGen common.SecretGenerator, cfg common.MechConfig) (common.Mech, error) {
	if newHash == nil {
		return nil, fmt.Errorf("%w: no hash function for %s", common.ErrCryptoUnavailable, name)
	}

	cfg.Logger.Debugf("scram: new %s conversation", name)

	m := &ScramMech{
		Loggable:  cfg.Logger,
		name:      name,
		newHash:   newHash,
		username:  cfg.Username,
		password:  cfg.Password,
		nonceGen:  cfg.NonceGenerator,
		secretGen: secretGen,
		prep:      prep,
		state:     stateAwaitingStart,
	}

	if m.nonceGen == nil {
		m.nonceGen = defaultNonceGenerator
	}
	if cfg.SecretGenerator != nil {
		m.secretGen = cfg.SecretGenerator
	}

	return m, nil
}

func (m ScramMech) Name() string {
	return m.name
}

func (m ScramMech) MechProperties() common.MechProps {
	return registry.Properties(m.name)
}

func (m ScramMech) IsEstablished() bool {
	return m.state == stateDone
}

func (m *ScramMech) Step(inToken []byte) (outToken []byte, err error) {
	switch m.state {
	case stateAwaitingStart:
		return m.clientFirst()
	case stateAwaitingServerFirst:
		return m.clientFinal(inToken)
	case stateAwaitingServerFinal:
		return m.verifyServerFinal(inToken)
	}

	return nil, fmt.Errorf("%w: too many steps in the %s negotiation", common.ErrProtocolViolation, m.name)
}

// clientFirst produces the client-first message. The GS2 header is
// prepended to the wire form only; the bare message is what is later
// bound into the AuthMessage.
func (m *ScramMech) clientFirst() (outToken []byte, err error) {
	username, err := m.prep(escapeUsername(m.username))
	if err != nil {
		return nil, fmt.Errorf("scram: username: %w", err)
	}

	m.clientNonce = m.nonceGen()
	m.clientFirstMessageBare = "n=" + username + ",r=" + m.clientNonce
	m.state = stateAwaitingServerFirst

	m.Debugf("scram: %s step, sending client-first message", m.name)
	return []byte(gs2Header + m.clientFirstMessageBare), nil
}

// clientFinal consumes the server-first message and produces the
// client-final message carrying the proof. The server signature for the
// next step is computed here, over the same AuthMessage.
func (m *ScramMech) clientFinal(inToken []byte) (outToken []byte, err error) {
	serverFirstMessage := string(inToken)
	attrs, err := parseMessage(serverFirstMessage)
	if err != nil {
		return nil, err
	}

	serverNonce, err := attrs.get("r")
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(serverNonce, m.clientNonce) {
		return nil, common.ErrInvalidNonce
	}

	saltAttr, err := attrs.get("s")
	if err != nil {
		return nil, err
	}
	salt, err := base64.StdEncoding.DecodeString(saltAttr)
	if err != nil {
		return nil, fmt.Errorf("%w: bad salt encoding: %v", common.ErrProtocolViolation, err)
	}

	iterAttr, err := attrs.get("i")
	if err != nil {
		return nil, err
	}
	iterationCount, err := strconv.Atoi(iterAttr)
	if err != nil {
		return nil, fmt.Errorf("%w: bad iteration count %q", common.ErrProtocolViolation, iterAttr)
	}
	if iterationCount < minimumIterationCount {
		return nil, common.ErrInvalidIterationCount{Count: iterationCount, Floor: minimumIterationCount}
	}

	clientFinalMessageWithoutProof := "c=" + base64.StdEncoding.EncodeToString([]byte(gs2Header)) +
		",r=" + serverNonce
	authMessage := m.clientFirstMessageBare + "," + serverFirstMessage + "," + clientFinalMessageWithoutProof

	secret, err := m.secretGen(m.username, m.password)
	if err != nil {
		return nil, fmt.Errorf("scram: secret: %w", err)
	}

	saltedPassword := hi(m.newHash, []byte(secret), salt, iterationCount)
	clientKey := computeHMAC(m.newHash, saltedPassword, []byte("Client Key"))
	serverKey := computeHMAC(m.newHash, saltedPassword, []byte("Server Key"))
	storedKey := computeHash(m.newHash, clientKey)
	clientSignature := computeHMAC(m.newHash, storedKey, []byte(authMessage))
	clientProof := xorBytes(clientKey, clientSignature)
	m.serverSignature = computeHMAC(m.newHash, serverKey, []byte(authMessage))

	m.state = stateAwaitingServerFinal

	m.Debugf("scram: %s step, sending client-final message (i=%d)", m.name, iterationCount)
	outToken = []byte(clientFinalMessageWithoutProof + ",p=" + base64.StdEncoding.EncodeToString(clientProof))
	return outToken, nil
}

// verifyServerFinal checks the server's signature against the one
// computed in the previous step. This is the final trust decision, so
// the comparison is constant-time; there is no further payload to send.
func (m *ScramMech) verifyServerFinal(inToken []byte) (outToken []byte, err error) {
	attrs, err := parseMessage(string(inToken))
	if err != nil {
		return nil, err
	}

	sigAttr, err := attrs.get("v")
	if err != nil {
		return nil, err
	}
	serverSignature, err := base64.StdEncoding.DecodeString(sigAttr)
	if err != nil {
		return nil, fmt.Errorf("%w: bad server signature encoding: %v", common.ErrProtocolViolation, err)
	}

	if !hmac.Equal(serverSignature, m.serverSignature) {
		return nil, common.ErrInvalidServerSignature
	}

	m.state = stateDone

	m.Debugf("scram: %s conversation established", m.name)
	return inToken, nil
}
