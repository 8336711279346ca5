package auth

import (
	"testing"

	"benki/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	hash, err := HashAdminSecret("ops-secret")
	assert.NoError(t, err)

	svc := NewService("signing-key", hash)

	token, err := svc.IssueToken(&models.UserClaims{
		UserID:      42,
		TenantID:    "acme",
		Role:        "customer",
		Permissions: []string{models.PermissionPaymentWrite},
	})
	assert.NoError(t, err)

	claims, err := svc.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "acme", claims.TenantID)
	assert.True(t, claims.HasPermission(models.PermissionPaymentWrite))
	assert.False(t, claims.HasPermission(models.PermissionAdminWrite))
}

func TestParseToken_RejectsWrongKey(t *testing.T) {
	issuer := NewService("key-a", "")
	verifier := NewService("key-b", "")

	token, err := issuer.IssueToken(&models.UserClaims{TenantID: "acme"})
	assert.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_RejectsMissingTenant(t *testing.T) {
	svc := NewService("signing-key", "")

	token, err := svc.IssueToken(&models.UserClaims{UserID: 1})
	assert.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.ErrorContains(t, err, "missing tenant")
}

func TestVerifyAdminSecret(t *testing.T) {
	hash, err := HashAdminSecret("ops-secret")
	assert.NoError(t, err)

	svc := NewService("signing-key", hash)
	assert.NoError(t, svc.VerifyAdminSecret("ops-secret"))
	assert.Error(t, svc.VerifyAdminSecret("wrong"))
}
