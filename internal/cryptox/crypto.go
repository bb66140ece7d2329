// Package cryptox implements the password verifier: a slow, salted,
// one-way bcrypt hash and its constant-time verification.
package cryptox

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is a seam for tests; production always uses bcrypt.DefaultCost.
var hashCost = bcrypt.DefaultCost

// dummyHash is compared against when no stored hash exists, so that a login
// for an unknown account costs the same as a wrong password.
var dummyHash = mustHash("diary-dummy-password")

func mustHash(password string) []byte {
	h, err := bcrypt.GenerateFromPassword(prepare(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return h
}

// prepare maps a password of any length to bcrypt's input: the base64 of its
// SHA-256 digest, 44 bytes, well under bcrypt's 72-byte limit.
func prepare(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

// HashPassword returns the bcrypt hash of password. A random salt is
// generated for every call and embedded in the result, so hashing the same
// password twice yields different strings. Passwords of any length are
// accepted.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword(prepare(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// Malformed hashes never verify.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), prepare(password)) == nil
}

// BurnVerification performs a comparison against a fixed hash and discards
// the result.
func BurnVerification(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, prepare(password))
}
