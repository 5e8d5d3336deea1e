package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTokenService_RoundTrip(t *testing.T) {
	ts := NewTokenService(VariantUser, "user-secret", time.Hour)
	id := uuid.New()

	token, err := ts.Generate(id, "u@x.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ts.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, id.String(), claims.PrincipalID)
	assert.Equal(t, "u@x.com", claims.Email)
	assert.Equal(t, VariantUser, claims.Variant)
}

func TestTokenService_CrossVariantRejected(t *testing.T) {
	adminTS := NewTokenService(VariantAdmin, "admin-secret", time.Hour)
	userTS := NewTokenService(VariantUser, "user-secret", time.Hour)
	id := uuid.New()

	adminToken, err := adminTS.Generate(id, "a@x.com")
	assert.NoError(t, err)
	userToken, err := userTS.Generate(id, "u@x.com")
	assert.NoError(t, err)

	// Each guard only knows its own secret: the other variant's token must
	// fail even though the payload is well-formed.
	_, err = userTS.Verify(adminToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = adminTS.Verify(userToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_VariantTagCheckedWithSharedSecret(t *testing.T) {
	// Same secret on both sides; the variant tag alone must still reject.
	adminTS := NewTokenService(VariantAdmin, "shared-secret", time.Hour)
	userTS := NewTokenService(VariantUser, "shared-secret", time.Hour)

	adminToken, err := adminTS.Generate(uuid.New(), "a@x.com")
	assert.NoError(t, err)

	_, err = userTS.Verify(adminToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_ExpiredRejected(t *testing.T) {
	ts := NewTokenService(VariantUser, "user-secret", -time.Minute)

	token, err := ts.Generate(uuid.New(), "u@x.com")
	assert.NoError(t, err)

	_, err = ts.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_MalformedRejected(t *testing.T) {
	ts := NewTokenService(VariantUser, "user-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := ts.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
