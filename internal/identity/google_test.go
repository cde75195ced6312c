package identity_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/identity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenInfoServer(t *testing.T, tokens map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := tokens[r.URL.Query().Get("id_token")]
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":"invalid_token"}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
}

func TestGoogleVerifier_Verify(t *testing.T) {
	srv := newTokenInfoServer(t, map[string]string{
		"good":        `{"aud":"client-1","sub":"g-123","email":"Jane@Example.com","email_verified":"true","name":"Jane","picture":"https://img/jane.png"}`,
		"other-aud":   `{"aud":"client-2","sub":"g-1","email":"a@b.c","email_verified":"true"}`,
		"unverified":  `{"aud":"client-1","sub":"g-2","email":"a@b.c","email_verified":"false"}`,
		"missing-sub": `{"aud":"client-1","email":"a@b.c","email_verified":true}`,
	})
	defer srv.Close()

	v := identity.NewGoogleVerifier("client-1")
	v.TokenInfoURL = srv.URL
	ctx := context.Background()

	p, err := v.Verify(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, identity.Profile{Subject: "g-123", Email: "jane@example.com", Name: "Jane", Picture: "https://img/jane.png"}, p)

	for _, token := range []string{"other-aud", "unverified", "missing-sub", "unknown", ""} {
		_, err := v.Verify(ctx, token)
		assert.ErrorIs(t, err, identity.ErrInvalidCredential, token)
	}
}
