package jwt

import (
	"context"
	"net/http"
	"testing"
)

func TestGenerateAndParseUserID(t *testing.T) {
	ctx := context.Background()
	token, err := Generate(ctx, "user-123", "secret")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	userID, err := ParseUserID(ctx, token, "secret")
	if err != nil {
		t.Fatalf("ParseUserID returned error: %v", err)
	}
	if userID != "user-123" {
		t.Fatalf("expected user-123, got %q", userID)
	}
}

func TestParseUserIDWrongSecret(t *testing.T) {
	ctx := context.Background()
	token, err := Generate(ctx, "user-123", "secret")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if _, err := ParseUserID(ctx, token, "other-secret"); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestParseTokenFromHeader(t *testing.T) {
	r, _ := http.NewRequest(http.MethodPost, "/", nil)
	r.Header.Set("Authorization", "Bearer abc.def.ghi")

	token, err := ParseTokenFromHeader(r)
	if err != nil {
		t.Fatalf("ParseTokenFromHeader returned error: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestParseTokenFromHeaderMissing(t *testing.T) {
	r, _ := http.NewRequest(http.MethodPost, "/", nil)
	if _, err := ParseTokenFromHeader(r); err == nil {
		t.Fatal("expected error for missing header")
	}
}

func TestParseTokenFromHeaderNotBearer(t *testing.T) {
	r, _ := http.NewRequest(http.MethodPost, "/", nil)
	r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	if _, err := ParseTokenFromHeader(r); err == nil {
		t.Fatal("expected error for non-bearer header")
	}
}
