package utils

import (
	"math/rand"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func ComparePasswords(hashedPassword string, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}

// GenerateResetCode returns a 6-digit numeric password-reset code in
// the range 100000-999999.
func GenerateResetCode() string {
	digits := []byte("0123456789")
	code := make([]byte, 6)
	code[0] = digits[1+rand.Intn(9)]
	for i := 1; i < len(code); i++ {
		code[i] = digits[rand.Intn(10)]
	}
	return string(code)
}
