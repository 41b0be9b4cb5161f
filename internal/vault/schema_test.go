package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitchat/splitchat/internal/common"
)

func TestDecodeMessageDocument(t *testing.T) {
	doc, err := DecodeMessageDocument([]byte(`{"message":"hi there"}`))
	require.NoError(t, err)
	assert.Equal(t, "hi there", doc.Message)
}

func TestDecodeMessageDocument_MissingField(t *testing.T) {
	_, err := DecodeMessageDocument([]byte(`{"text":"wrong shape"}`))
	assert.ErrorIs(t, err, common.ErrMalformedDocument)
}

func TestDecodeMessageDocument_WrongType(t *testing.T) {
	_, err := DecodeMessageDocument([]byte(`{"message":42}`))
	assert.ErrorIs(t, err, common.ErrMalformedDocument)
}

func TestDecodeProfile(t *testing.T) {
	p, err := DecodeProfile([]byte(`{"name":"Alice","phoneNumber":"+15550001111"}`))
	require.NoError(t, err)
	assert.Equal(t, "Alice", p.Name)
}

func TestDecodeProfile_EmptyObjectIsValid(t *testing.T) {
	p, err := DecodeProfile([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, p.Name)
	assert.Empty(t, p.PhoneNumber)
}
