package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a bcrypt hash; the per-account salt is embedded in
// the hash itself.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func ComparePasswords(hashedPassword string, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}
