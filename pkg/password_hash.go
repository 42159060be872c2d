package pkg

import "golang.org/x/crypto/bcrypt"

const tokenHashCost = 12

// HashPassword returns the bcrypt hash stored in the environment for a write token.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), tokenHashCost)
	return BytesToString(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
