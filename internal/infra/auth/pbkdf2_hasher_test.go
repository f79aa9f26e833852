package auth

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPBKDF2Hasher_HashAndCheck(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	password := "Secret1"
	encoded, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, encoded)
	assert.NotContains(t, encoded, password)

	// The credential round-trips.
	assert.True(t, hasher.Check(password, encoded))

	// A different password does not.
	assert.False(t, hasher.Check("Secret2", encoded))
	assert.False(t, hasher.Check("", encoded))
}

func TestPBKDF2Hasher_EncodedFormat(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	encoded, err := hasher.Hash("Secret1")
	require.NoError(t, err)

	parts := strings.Split(encoded, ":")
	require.Len(t, parts, 3)

	iterations, err := strconv.Atoi(parts[0])
	require.NoError(t, err)
	assert.Equal(t, defaultIterations, iterations)

	// Hex-encoded 8-byte salt and 24-byte derived key.
	assert.Len(t, parts[1], saltLength*2)
	assert.Len(t, parts[2], keyLength*2)
}

func TestPBKDF2Hasher_DistinctSalts(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	first, err := hasher.Hash("SamePassword")
	require.NoError(t, err)
	second, err := hasher.Hash("SamePassword")
	require.NoError(t, err)

	// Fresh salt per call means identical passwords never share an encoding.
	assert.NotEqual(t, first, second)

	assert.True(t, hasher.Check("SamePassword", first))
	assert.True(t, hasher.Check("SamePassword", second))
}

func TestPBKDF2Hasher_CheckUsesEmbeddedParameters(t *testing.T) {
	// A credential hashed with a non-default iteration count must still
	// verify with a default hasher: the count is read from the encoding.
	strong := NewPBKDF2HasherWithIterations(2000)
	encoded, err := strong.Hash("Secret1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "2000:"))

	assert.True(t, NewPBKDF2Hasher().Check("Secret1", encoded))
}

func TestPBKDF2Hasher_MalformedCredential(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	malformed := []string{
		"",
		"not-a-credential",
		"1000:deadbeef",                  // missing key part
		"1000:deadbeef:zzzz",             // key not hex
		"zzz:deadbeefdeadbeef:deadbeef",  // iterations not numeric
		"-5:deadbeefdeadbeef:deadbeef",   // negative iterations
		"1000::deadbeef",                 // empty salt
		"1000:deadbeefdeadbeef:",         // empty key
		"1000:deadbeef:deadbeef:deadbe",  // too many parts
	}

	for _, encoded := range malformed {
		assert.False(t, hasher.Check("Secret1", encoded), "expected false for %q", encoded)
	}
}

func TestDecodeCredential(t *testing.T) {
	iterations, salt, key, ok := decodeCredential("1000:00112233445566aa:ffee")
	require.True(t, ok)
	assert.Equal(t, 1000, iterations)
	assert.Equal(t, []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0xaa}, salt)
	assert.Equal(t, []byte{0xff, 0xee}, key)

	_, _, _, ok = decodeCredential("1000:0011:")
	assert.False(t, ok)
}
