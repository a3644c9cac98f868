package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPBKDF2Hasher_HashAndCheck(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	credential, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	saltHex, keyHex, found := strings.Cut(credential, ":")
	require.True(t, found, "credential must be salt:key")
	assert.Len(t, saltHex, saltLength*2)
	assert.Len(t, keyHex, keyLength*2)

	assert.True(t, hasher.Check("Password123!", credential))
	assert.False(t, hasher.Check("password123!", credential))
	assert.False(t, hasher.Check("", credential))
}

func TestPBKDF2Hasher_FreshSaltPerHash(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	first, err := hasher.Hash("same password")
	require.NoError(t, err)
	second, err := hasher.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "each hash must use a fresh salt")
	assert.True(t, hasher.Check("same password", first))
	assert.True(t, hasher.Check("same password", second))
}

func TestPBKDF2Hasher_MalformedCredentialFailsClosed(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	cases := []struct {
		name       string
		credential string
	}{
		{name: "empty", credential: ""},
		{name: "no delimiter", credential: "deadbeef"},
		{name: "non-hex salt", credential: "zzzz:deadbeef"},
		{name: "non-hex key", credential: "deadbeef:zzzz"},
		{name: "truncated key", credential: "deadbeef:deadbeef"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, hasher.Check("anything", tc.credential))
		})
	}
}
