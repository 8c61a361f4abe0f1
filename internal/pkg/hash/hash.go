package hash

import "golang.org/x/crypto/bcrypt"

// Cost matches the original deployment's bcrypt work factor.
const Cost = 10

// Make hashes a plaintext password with a fresh random salt.
func Make(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plain matches hashed. A malformed stored hash
// counts as a mismatch rather than an error.
func Verify(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
