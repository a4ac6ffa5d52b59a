package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"hrdesk/internal/domain/service"
	"hrdesk/internal/errors"
)

// OWASP-recommended argon2id parameters.
const (
	argon2Time    = 1         // iterations
	argon2Memory  = 64 * 1024 // 64 MB
	argon2Threads = 4         // parallelism
	argon2SaltLen = 16        // salt length in bytes
	argon2KeyLen  = 32        // output length in bytes

	argon2Prefix = "$argon2id$"

	// Upper bounds accepted from stored hashes.
	argon2MaxMemory     = 1 << 20 // 1 GiB in KiB
	argon2MaxIterations = 64
	argon2MaxKeyLen     = 1024
)

// ErrEmptyPassword is returned when attempting to hash an empty password.
var ErrEmptyPassword = errors.New("password cannot be empty")

// argon2idHasher implements PasswordHasher using argon2id PHC strings.
type argon2idHasher struct{}

// NewArgon2idHasher creates a new argon2id hasher.
func NewArgon2idHasher() service.PasswordHasher {
	return &argon2idHasher{}
}

// Hash produces an argon2id hash of the password.
func (h *argon2idHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "generate salt")
	}

	hash := argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argon2Memory,
		argon2Time,
		argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// Supports reports whether secret is an argon2id PHC string.
func (h *argon2idHasher) Supports(secret string) bool {
	return strings.HasPrefix(secret, argon2Prefix)
}

// Verify checks if the password matches the encoded hash.
func (h *argon2idHasher) Verify(password, encodedHash string) (bool, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, errors.Wrap(ErrMalformedSecret, "invalid argon2id format")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, errors.Wrap(ErrMalformedSecret, err.Error())
	}
	if version != argon2.Version {
		return false, errors.Wrapf(ErrMalformedSecret, "unsupported argon2 version %d", version)
	}

	var memory, iterations, threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, errors.Wrap(ErrMalformedSecret, err.Error())
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, errors.Wrap(ErrMalformedSecret, err.Error())
	}

	expectedHash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, errors.Wrap(ErrMalformedSecret, err.Error())
	}

	// threads must fit in uint8
	if threads == 0 || threads > 255 {
		return false, errors.Wrapf(ErrMalformedSecret, "threads value %d out of range", threads)
	}
	if iterations == 0 || iterations > argon2MaxIterations {
		return false, errors.Wrapf(ErrMalformedSecret, "iterations value %d out of range", iterations)
	}
	if memory == 0 || memory > argon2MaxMemory {
		return false, errors.Wrapf(ErrMalformedSecret, "memory value %d out of range", memory)
	}

	keyLen := len(expectedHash)
	if keyLen == 0 || keyLen > argon2MaxKeyLen {
		return false, errors.Wrapf(ErrMalformedSecret, "invalid hash key length: %d", keyLen)
	}

	computedHash := argon2.IDKey([]byte(password), salt, iterations, memory, uint8(threads), uint32(keyLen))

	return subtle.ConstantTimeCompare(computedHash, expectedHash) == 1, nil
}
