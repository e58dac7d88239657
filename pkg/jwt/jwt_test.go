package jwt

import (
	"testing"
	"time"

	"hospital-management-api/config"

	"github.com/google/uuid"
)

func newTestService(secret string, accessExpiry time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  accessExpiry,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	service := newTestService("test-secret", time.Hour)
	userID := uuid.New()

	token, tokenID, err := service.GenerateAccessToken(userID, "Jane Roe", "practitioner")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if tokenID == "" {
		t.Fatal("expected a non-empty token id")
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Name != "Jane Roe" {
		t.Errorf("expected name Jane Roe, got %q", claims.Name)
	}
	if claims.Role != "practitioner" {
		t.Errorf("expected role practitioner, got %q", claims.Role)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("expected access token type, got %s", claims.TokenType)
	}
	if claims.TokenID != tokenID {
		t.Errorf("token id mismatch: %s vs %s", claims.TokenID, tokenID)
	}
}

func TestRefreshTokenCarriesType(t *testing.T) {
	service := newTestService("test-secret", time.Hour)

	token, _, err := service.GenerateRefreshToken(uuid.New(), "Jane Roe", "patient")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("expected refresh token type, got %s", claims.TokenType)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	service := newTestService("test-secret", time.Hour)
	other := newTestService("other-secret", time.Hour)

	token, _, err := service.GenerateAccessToken(uuid.New(), "Jane Roe", "patient")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("a token signed with a different secret must not validate")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	service := newTestService("test-secret", -time.Minute)

	token, _, err := service.GenerateAccessToken(uuid.New(), "Jane Roe", "patient")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := service.ValidateToken(token); err == nil {
		t.Error("an expired token must not validate")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	service := newTestService("test-secret", time.Hour)

	if _, err := service.ValidateToken("not.a.jwt"); err == nil {
		t.Error("garbage input must not validate")
	}
}

func TestTokenIDsAreUnique(t *testing.T) {
	service := newTestService("test-secret", time.Hour)
	userID := uuid.New()

	_, first, err := service.GenerateAccessToken(userID, "Jane Roe", "patient")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	_, second, err := service.GenerateAccessToken(userID, "Jane Roe", "patient")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if first == second {
		t.Error("each issued token must carry its own id")
	}
}
