package jwt_test

import (
	"errors"
	"stay/config"
	"stay/infras/jwt"
	"stay/shared/constant"
	"testing"
)

func newTestService() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "stay-test"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg)
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := newTestService()

	pair, err := svc.GenerateTokenPair("user-1", constant.RoleHotelOwner)
	if err != nil {
		t.Fatalf("GenerateTokenPair() failed: %v", err)
	}

	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected non-empty token pair")
	}

	claims, err := svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken() failed: %v", err)
	}

	if claims.UserID != "user-1" {
		t.Errorf("expected user id 'user-1', got %s", claims.UserID)
	}

	if claims.RoleID != constant.RoleHotelOwner {
		t.Errorf("expected role id %d, got %d", constant.RoleHotelOwner, claims.RoleID)
	}
}

func TestValidateToken_WrongType(t *testing.T) {
	svc := newTestService()

	pair, err := svc.GenerateTokenPair("user-1", constant.RoleUser)
	if err != nil {
		t.Fatalf("GenerateTokenPair() failed: %v", err)
	}

	if _, err := svc.ValidateToken(pair.AccessToken, jwt.RefreshToken); !errors.Is(err, jwt.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for access token validated as refresh, got %v", err)
	}
}

func TestRefreshTokens(t *testing.T) {
	svc := newTestService()

	pair, err := svc.GenerateTokenPair("user-1", constant.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateTokenPair() failed: %v", err)
	}

	refreshed, err := svc.RefreshTokens(pair.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshTokens() failed: %v", err)
	}

	claims, err := svc.ValidateToken(refreshed.AccessToken, jwt.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken() failed: %v", err)
	}

	if claims.RoleID != constant.RoleAdmin {
		t.Errorf("expected role id %d, got %d", constant.RoleAdmin, claims.RoleID)
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("ExtractTokenFromHeader() failed: %v", err)
	}

	if token != "abc.def.ghi" {
		t.Errorf("unexpected token: %s", token)
	}

	if _, err := jwt.ExtractTokenFromHeader(""); err == nil {
		t.Error("expected error for empty header")
	}

	if _, err := jwt.ExtractTokenFromHeader("Basic abc"); err == nil {
		t.Error("expected error for non-bearer header")
	}
}
