package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tamisweitzer/Our-Wonderful-App/internal/services"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := services.NewBcryptHasher()

	for _, password := range []string{"password1", "hunter22", strings.Repeat("a", 72), strings.Repeat("b", 100)} {
		hash, err := h.Hash(password)
		assert.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, password, hash)

		assert.True(t, h.Verify(password, hash))
		assert.False(t, h.Verify(password+"x", hash))
		assert.False(t, h.Verify("", hash))
	}
}

func TestBcryptHasher_LongPasswords(t *testing.T) {
	h := services.NewBcryptHasher()

	long := strings.Repeat("a", 100)
	hash, err := h.Hash(long)
	assert.NoError(t, err)
	assert.True(t, h.Verify(long, hash))

	// Two passwords sharing the first 72 characters must not verify
	// against each other's hash.
	prefix := strings.Repeat("x", 72)
	first, err := h.Hash(prefix + "tail-one")
	assert.NoError(t, err)
	assert.True(t, h.Verify(prefix+"tail-one", first))
	assert.False(t, h.Verify(prefix+"tail-two", first))
}

func TestBcryptHasher_SaltedOutput(t *testing.T) {
	h := services.NewBcryptHasher()

	first, err := h.Hash("password1")
	assert.NoError(t, err)
	second, err := h.Hash("password1")
	assert.NoError(t, err)

	// Per-call random salt: equal inputs produce distinct hashes.
	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("password1", first))
	assert.True(t, h.Verify("password1", second))
}

func TestBcryptHasher_GarbageHash(t *testing.T) {
	h := services.NewBcryptHasher()

	assert.False(t, h.Verify("password1", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("password1", ""))
}
