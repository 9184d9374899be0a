package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/GarimaBhatia-ProdManager/Personal-Diet-Tracker-sub000/models"
)

var testJWTSecret = []byte("test-secret")

func TestRegisterAndAuthenticate(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewAuthService(db, nil, testJWTSecret)

	if err := svc.Register("Garima@Example.com", "s3cret-pw", "Garima", "Bhatia"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	var user models.User
	if err := db.First(&user, "email = ?", "garima@example.com").Error; err != nil {
		t.Fatalf("user not persisted with lowercased email: %v", err)
	}
	if user.Password == "s3cret-pw" {
		t.Fatal("password must be stored hashed")
	}
	if user.UserID == "" {
		t.Fatal("expected a generated user id")
	}

	token, err := svc.Authenticate("garima@example.com", "s3cret-pw")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return testJWTSecret, nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["email"] != "garima@example.com" {
		t.Fatalf("unexpected email claim: %v", claims["email"])
	}
}

func TestAuthenticateRejections(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewAuthService(db, nil, testJWTSecret)
	if err := svc.Register("a@b.com", "right-pw", "A", "B"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if _, err := svc.Authenticate("a@b.com", "wrong-pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password must fail with ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate("nobody@b.com", "right-pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email must fail with ErrInvalidCredentials, got %v", err)
	}

	db.Model(&models.User{}).Where("email = ?", "a@b.com").Update("disabled", true)
	if _, err := svc.Authenticate("a@b.com", "right-pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("disabled account must fail with ErrInvalidCredentials, got %v", err)
	}
}

func TestPasswordResetFlow(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewAuthService(db, nil, testJWTSecret)
	if err := svc.Register("reset@b.com", "old-pw", "R", "S"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	// Unknown emails are ignored without error so the endpoint does not leak
	// which accounts exist.
	if err := svc.StartPasswordReset(context.Background(), "ghost@b.com"); err != nil {
		t.Fatalf("unknown email must be silent, got %v", err)
	}

	if err := svc.StartPasswordReset(context.Background(), "reset@b.com"); err != nil {
		t.Fatalf("StartPasswordReset returned error: %v", err)
	}

	var user models.User
	db.First(&user, "email = ?", "reset@b.com")
	if user.ResetToken == "" {
		t.Fatal("expected a stored reset token")
	}

	if err := svc.ResetPassword("not-the-token", "new-pw"); err == nil {
		t.Fatal("wrong token must be rejected")
	}
	if err := svc.ResetPassword(user.ResetToken, "new-pw"); err != nil {
		t.Fatalf("ResetPassword returned error: %v", err)
	}

	if _, err := svc.Authenticate("reset@b.com", "old-pw"); err == nil {
		t.Fatal("old password must stop working")
	}
	if _, err := svc.Authenticate("reset@b.com", "new-pw"); err != nil {
		t.Fatalf("new password must work: %v", err)
	}

	// Token is single-use.
	if err := svc.ResetPassword(user.ResetToken, "another-pw"); err == nil {
		t.Fatal("used token must be rejected")
	}
}

func TestPasswordResetExpiry(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewAuthService(db, nil, testJWTSecret)
	if err := svc.Register("exp@b.com", "old-pw", "E", "X"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if err := svc.StartPasswordReset(context.Background(), "exp@b.com"); err != nil {
		t.Fatalf("StartPasswordReset returned error: %v", err)
	}

	var user models.User
	db.First(&user, "email = ?", "exp@b.com")
	db.Model(&user).Update("reset_token_exp", time.Now().Add(-time.Minute))

	if err := svc.ResetPassword(user.ResetToken, "new-pw"); err == nil {
		t.Fatal("expired token must be rejected")
	}
}
