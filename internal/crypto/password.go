package crypto

import "golang.org/x/crypto/bcrypt"

// Cost matches the work factor the existing password hashes were created with.
const Cost = 10

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword returns bcrypt.ErrMismatchedHashAndPassword on a wrong password
// and a different error when the stored hash is unusable.
func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
