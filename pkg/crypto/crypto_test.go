package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	c, err := New("test-secret")
	require.NoError(t, err)

	token := "110201543:AAHdqTcvCH1vGWJxfSeofSAs0K5PALDsaw"
	encrypted, err := c.EncryptToken(token)
	require.NoError(t, err)
	assert.NotEqual(t, token, encrypted)

	decrypted, err := c.DecryptToken(encrypted)
	require.NoError(t, err)
	assert.Equal(t, token, decrypted)
}

func TestEncryptIsNonDeterministic(t *testing.T) {
	c, err := New("test-secret")
	require.NoError(t, err)

	a, err := c.EncryptToken("token")
	require.NoError(t, err)
	b, err := c.EncryptToken("token")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestDecryptWithWrongSecretFails(t *testing.T) {
	c1, err := New("secret-1")
	require.NoError(t, err)
	c2, err := New("secret-2")
	require.NoError(t, err)

	encrypted, err := c1.EncryptToken("token")
	require.NoError(t, err)

	_, err = c2.DecryptToken(encrypted)
	assert.Error(t, err)
}

func TestDecryptRejectsGarbage(t *testing.T) {
	c, err := New("secret")
	require.NoError(t, err)

	_, err = c.DecryptToken("not base64!!!")
	assert.Error(t, err)

	_, err = c.DecryptToken("c2hvcnQ=")
	assert.Error(t, err)
}

func TestEmptySecretRejected(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}
