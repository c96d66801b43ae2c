// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is a username/password pair presented with a single request
// through HTTP Basic authentication. It is never persisted.
type Credentials struct {
	Username string
	Password string
}

// IsEmpty reports whether neither the username nor the password is set.
func (c Credentials) IsEmpty() bool {
	return c.Username == "" && c.Password == ""
}
