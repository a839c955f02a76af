package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestNewVerifierRejectsEmptySecret(t *testing.T) {
	_, err := NewVerifier("")
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestVerify(t *testing.T) {
	const secret = "test-secret"
	body := []byte(`{"transactions":[{"id":"t1"}]}`)

	v, err := NewVerifier(secret)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		body   []byte
		want   bool
	}{
		{
			name:   "valid signature",
			header: Algorithm + " " + sign(secret, body),
			body:   body,
			want:   true,
		},
		{
			name:   "missing header",
			header: "",
			body:   body,
			want:   false,
		},
		{
			name:   "wrong algorithm",
			header: "HMAC_SHA512 " + sign(secret, body),
			body:   body,
			want:   false,
		},
		{
			name:   "algorithm only",
			header: Algorithm,
			body:   body,
			want:   false,
		},
		{
			name:   "empty digest",
			header: Algorithm + " ",
			body:   body,
			want:   false,
		},
		{
			name:   "wrong digest",
			header: Algorithm + " deadbeef",
			body:   body,
			want:   false,
		},
		{
			name:   "signed with different secret",
			header: Algorithm + " " + sign("other-secret", body),
			body:   body,
			want:   false,
		},
		{
			name:   "body tampered after signing",
			header: Algorithm + " " + sign(secret, body),
			body:   []byte(`{"transactions":[{"id":"t2"}]}`),
			want:   false,
		},
		{
			name:   "uppercase digest rejected",
			header: Algorithm + " DEADBEEF",
			body:   body,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Verify(tt.header, tt.body))
		})
	}
}
