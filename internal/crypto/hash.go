package crypto

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt work factor. Fixed; raising it invalidates nothing
// (bcrypt embeds the cost in the hash) but slows new registrations.
const hashCost = 10

// HashPassword hashes a password with bcrypt. The salt is random per call,
// so hashing the same password twice yields different encoded hashes.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks whether a password matches the given bcrypt hash
// using bcrypt's constant-time comparison. A malformed hash is an error;
// a well-formed hash that does not match is (false, nil).
func VerifyPassword(password, encodedHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
