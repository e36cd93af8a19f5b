package services

import (
	"net/http"
	"testing"
	"time"

	"taprobane/constants"
	"taprobane/errors"
	"taprobane/models"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}
	return db, mock
}

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hashed == "secret123" {
		t.Fatal("password stored in plaintext")
	}

	if !CheckPassword(hashed, "secret123") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hashed, "secret124") {
		t.Error("wrong password accepted")
	}
	if CheckPassword("", "secret123") {
		t.Error("empty hash accepted")
	}
}

func TestHashPasswordSaltsEachCall(t *testing.T) {
	a, _ := HashPassword("secret123")
	b, _ := HashPassword("secret123")
	if a == b {
		t.Error("expected distinct salted hashes")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(42, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	id, err := ParseToken(token, secret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if id != 42 {
		t.Errorf("expected id 42, got %d", id)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, _ := GenerateToken(42, []byte("test-secret"), time.Hour)

	if _, err := ParseToken(token, []byte("other-secret")); err == nil {
		t.Error("token accepted with wrong secret")
	}
}

func TestParseTokenExpired(t *testing.T) {
	secret := []byte("test-secret")
	token, _ := GenerateToken(42, secret, -time.Minute)

	if _, err := ParseToken(token, secret); err == nil {
		t.Error("expired token accepted")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken("not.a.token", []byte("test-secret")); err == nil {
		t.Error("garbage token accepted")
	}
}

// A deactivated account still holds its email: registration against it must
// fail the duplicate check, not create a second user.
func TestRegisterUserDuplicateOnDeactivatedAccount(t *testing.T) {
	db, mock := mockDB(t)

	rows := sqlmock.NewRows([]string{"id", "email", "is_active"}).
		AddRow(7, "ghost@mail.lk", false)
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).WillReturnRows(rows)

	user := models.User{Name: "Ghost", Email: "Ghost@Mail.lk", Role: constants.RoleTourist}
	err := RegisterUser(db, &user, "secret123")
	if err == nil {
		t.Fatal("expected duplicate-email error")
	}

	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeDuplicateEmail {
		t.Fatalf("expected duplicate-email code, got %v", err)
	}
	if appErr.Status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", appErr.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAuthenticateDeactivatedAccount(t *testing.T) {
	db, mock := mockDB(t)

	hashed, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	rows := sqlmock.NewRows([]string{"id", "email", "password", "is_active"}).
		AddRow(7, "gone@mail.lk", hashed, false)
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).WillReturnRows(rows)

	_, err = Authenticate(db, "gone@mail.lk", "secret123")
	if err == nil {
		t.Fatal("expected deactivated-account error")
	}

	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Status != http.StatusForbidden {
		t.Errorf("expected 403 for deactivated account, got %v", err)
	}
}

// Unknown email and wrong password must yield the same generic failure.
func TestAuthenticateGenericFailures(t *testing.T) {
	db, mock := mockDB(t)
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, unknownErr := Authenticate(db, "nobody@mail.lk", "secret123")
	if unknownErr == nil {
		t.Fatal("expected error for unknown email")
	}

	db2, mock2 := mockDB(t)
	hashed, _ := HashPassword("secret123")
	mock2.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "is_active"}).
			AddRow(7, "real@mail.lk", hashed, true))

	_, wrongErr := Authenticate(db2, "real@mail.lk", "wrong-password")
	if wrongErr == nil {
		t.Fatal("expected error for wrong password")
	}

	a, b := errors.GetAppError(unknownErr), errors.GetAppError(wrongErr)
	if a == nil || b == nil {
		t.Fatal("expected AppError on both paths")
	}
	if a.Status != b.Status || a.Message != b.Message || a.Code != b.Code {
		t.Error("unknown-email and wrong-password responses differ")
	}
}

func TestNormalizeEmail(t *testing.T) {
	cases := map[string]string{
		"Visitor@Example.COM": "visitor@example.com",
		"  padded@mail.lk  ":  "padded@mail.lk",
		"plain@mail.lk":       "plain@mail.lk",
	}
	for in, want := range cases {
		if got := NormalizeEmail(in); got != want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", in, got, want)
		}
	}
}
