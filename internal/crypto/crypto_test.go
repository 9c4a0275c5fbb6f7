package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	k1, err := DeriveKey("passphrase")
	require.NoError(t, err)
	k2, err := DeriveKey("passphrase")
	require.NoError(t, err)
	assert.Equal(t, k1, k2)

	other, err := DeriveKey("different")
	require.NoError(t, err)
	assert.NotEqual(t, k1, other)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key, err := DeriveKey("passphrase")
	require.NoError(t, err)

	plain := []byte(`{"history":["secret entry"]}`)
	sealed, err := Seal(plain, key)
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "secret entry")

	got, err := Open(sealed, key)
	require.NoError(t, err)
	assert.Equal(t, plain, got)
}

func TestSeal_NoncesDiffer(t *testing.T) {
	key, err := DeriveKey("passphrase")
	require.NoError(t, err)

	a, err := Seal([]byte("x"), key)
	require.NoError(t, err)
	b, err := Seal([]byte("x"), key)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestOpen_WrongKeyFails(t *testing.T) {
	key, err := DeriveKey("right")
	require.NoError(t, err)
	sealed, err := Seal([]byte("payload"), key)
	require.NoError(t, err)

	wrong, err := DeriveKey("wrong")
	require.NoError(t, err)
	_, err = Open(sealed, wrong)
	require.Error(t, err)
}

func TestOpen_TruncatedInputFails(t *testing.T) {
	key, err := DeriveKey("k")
	require.NoError(t, err)
	_, err = Open([]byte("short"), key)
	require.Error(t, err)
}
