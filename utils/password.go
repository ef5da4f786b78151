package utils

import "crypto/subtle"

// ComparePassword checks a login attempt against the stored credential.
//
// Passwords are stored and compared as plaintext. This is a known weakness
// kept on purpose: the deployed rosters were provisioned with plaintext
// credentials, and hashing would break compatibility with that stored data.
// Every credential check in the codebase goes through this one function so
// a hashed scheme can replace it without touching call sites.
func ComparePassword(stored, attempt string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(attempt)) == 1
}
