package service

import (
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

// Stored hashes use the "method$salt$hex" layout, e.g.
// "pbkdf2:sha256:600000$Xy7...$9f86d0...". Hashes written by other tools in the
// same layout (scrypt:N:r:p) verify as well.
const (
	DefaultHashIterations = 600000

	saltLength   = 16
	saltAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	scryptKeyLen = 64
)

var errEmptyPassword = errors.New("password is empty")

func genSalt(n int) (string, error) {
	alphabetLen := big.NewInt(int64(len(saltAlphabet)))
	b := make([]byte, n)
	for i := range b {
		v, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("generate salt: %w", err)
		}
		b[i] = saltAlphabet[v.Int64()]
	}
	return string(b), nil
}

// hashPassword derives a pbkdf2-sha256 hash with a fresh salt.
func hashPassword(password string, iterations int) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errEmptyPassword
	}
	if iterations <= 0 {
		iterations = DefaultHashIterations
	}
	salt, err := genSalt(saltLength)
	if err != nil {
		return "", err
	}
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, sha256.Size, sha256.New)
	return fmt.Sprintf("pbkdf2:sha256:%d$%s$%s", iterations, salt, hex.EncodeToString(key)), nil
}

// verifyPassword reports whether password matches the stored hash.
// Empty or malformed hashes never match.
func verifyPassword(stored, password string) bool {
	method, salt, want, ok := splitStoredHash(stored)
	if !ok {
		return false
	}
	got, err := deriveHex(method, salt, password)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

func splitStoredHash(stored string) (method, salt, sum string, ok bool) {
	parts := strings.Split(stored, "$")
	if len(parts) != 3 || parts[0] == "" || parts[2] == "" {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}

func deriveHex(method, salt, password string) (string, error) {
	fields := strings.Split(method, ":")
	switch fields[0] {
	case "pbkdf2":
		return derivePBKDF2(fields[1:], salt, password)
	case "scrypt":
		return deriveScrypt(fields[1:], salt, password)
	default:
		return "", fmt.Errorf("unsupported hash method %q", fields[0])
	}
}

func derivePBKDF2(args []string, salt, password string) (string, error) {
	if len(args) == 0 || len(args) > 2 {
		return "", errors.New("pbkdf2: expected hash name and optional iterations")
	}
	var (
		newHash func() hash.Hash
		size    int
	)
	switch args[0] {
	case "sha1":
		newHash, size = sha1.New, sha1.Size
	case "sha256":
		newHash, size = sha256.New, sha256.Size
	case "sha512":
		newHash, size = sha512.New, sha512.Size
	default:
		return "", fmt.Errorf("pbkdf2: unsupported hash %q", args[0])
	}
	iterations := DefaultHashIterations
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 {
			return "", fmt.Errorf("pbkdf2: bad iterations %q", args[1])
		}
		iterations = n
	}
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, size, newHash)
	return hex.EncodeToString(key), nil
}

func deriveScrypt(args []string, salt, password string) (string, error) {
	n, r, p := 1<<15, 8, 1
	if len(args) == 3 {
		vals := make([]int, 3)
		for i, a := range args {
			v, err := strconv.Atoi(a)
			if err != nil || v <= 0 {
				return "", fmt.Errorf("scrypt: bad parameter %q", a)
			}
			vals[i] = v
		}
		n, r, p = vals[0], vals[1], vals[2]
	} else if len(args) != 0 {
		return "", errors.New("scrypt: expected N:r:p")
	}
	key, err := scrypt.Key([]byte(password), []byte(salt), n, r, p, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("scrypt: %w", err)
	}
	return hex.EncodeToString(key), nil
}
