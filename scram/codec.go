// Copyright 2021 Jake Scott. All rights reserved.
// Use of this source code is governed by the Apache License
// version 2.0 that can be found in the LICENSE file.
package scram

import (
	"fmt"
	"strings"

	"github.com/golang-auth/go-sasl-scram/common"
)

// attributes is the parsed form of one server message: single-character
// keys mapped to their raw string values.
type attributes map[string]string

// parseMessage splits a server message into attribute/value pairs.
// Values may themselves contain '='; only the first one separates the
// key. The protocol does not produce duplicate keys, but if one appears
// the last occurrence wins. Unrecognized keys are left for callers to
// ignore.
func parseMessage(msg string) (attributes, error) {
	attrs := make(attributes)

	for _, pair := range strings.Split(msg, ",") {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: malformed attribute %q", common.ErrProtocolViolation, pair)
		}

		attrs[parts[0]] = parts[1]
	}

	return attrs, nil
}

func (a attributes) get(key string) (string, error) {
	v, ok := a[key]
	if !ok {
		return "", fmt.Errorf("%w: missing required attribute %q", common.ErrProtocolViolation, key)
	}

	return v, nil
}

// escapeUsername applies the RFC 5802 saslname escaping. '=' is escaped
// first so the sequences introduced for ',' are not escaped again.
func escapeUsername(name string) string {
	return strings.ReplaceAll(strings.ReplaceAll(name, "=", "=3D"), ",", "=2C")
}
