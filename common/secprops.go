// Copyright 2021 Jake Scott. All rights reserved.
// Use of this source code is governed by the Apache License
// version 2.0 that can be found in the LICENSE file.
package common

type SecurityFlag uint32

const (
	SecNoPlainText     SecurityFlag = 1 << iota // credentials are not exchanged in the clear
	SecNoActive                                 // protection from active (non-dictionary) attacks
	SecNoDictionary                             // not susceptible to passive dictionary attack
	SecForwardSecrecy                           // forward secrecy between sessions
	SecNoAnonymous                              // does not allow anonymous login
	SecPassCredentials                          // passes client credentials to the server
	SecMutualAuth                               // provides mutual authentication
)

// FlagList returns a slice of individual flags derived from the
// composite value f
func FlagList(f SecurityFlag) (fl []SecurityFlag) {
	t := SecurityFlag(1)
	for i := 0; i < 32; i++ {
		if f&t != 0 {
			fl = append(fl, t)
		}

		t <<= 1
	}

	return
}

// FlagName returns a human-readable description of a security flag value
func FlagName(f SecurityFlag) string {
	switch f {
	case SecNoPlainText:
		return "No plain text credentials"
	case SecNoActive:
		return "Active attack protection"
	case SecNoDictionary:
		return "No susceptibility to dictionary attacks"
	case SecForwardSecrecy:
		return "Forward secrecy"
	case SecNoAnonymous:
		return "No anonymous login"
	case SecPassCredentials:
		return "Passes client credentials"
	case SecMutualAuth:
		return "Mutual authentication"
	}

	return "Unknown"
}
