package ios

import (
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

// Cisco type 9 parameters.
const (
	type9SaltLen = 14
	type9N       = 16384
	type9R       = 1
	type9P       = 1
	type9KeyLen  = 32
)

const ciscoAlphabet = "./0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

var ciscoEncoding = base64.NewEncoding(ciscoAlphabet).WithPadding(base64.NoPadding)

// HashType9 returns password as a Cisco type 9 secret, "$9$<salt>$<hash>".
// The salt is drawn from rand.
func HashType9(password string, rand io.Reader) (string, error) {
	raw := make([]byte, type9SaltLen)
	if _, err := io.ReadFull(rand, raw); err != nil {
		return "", fmt.Errorf("reading salt: %w", err)
	}
	salt := make([]byte, type9SaltLen)
	for i, b := range raw {
		salt[i] = ciscoAlphabet[int(b)%len(ciscoAlphabet)]
	}
	return hashType9WithSalt(password, string(salt))
}

func hashType9WithSalt(password, salt string) (string, error) {
	key, err := scrypt.Key([]byte(password), []byte(salt), type9N, type9R, type9P, type9KeyLen)
	if err != nil {
		return "", fmt.Errorf("scrypt: %w", err)
	}
	return "$9$" + salt + "$" + ciscoEncoding.EncodeToString(key), nil
}
