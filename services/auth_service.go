package services

import (
	"context"
	"net/http"
	"strings"
	"time"

	"taprobane/config"
	"taprobane/constants"
	"taprobane/errors"
	"taprobane/models"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

// Claims carries the user id, nothing else. Role and active status are
// re-read from the store on every protected request.
type Claims struct {
	ID uint `json:"id"`
	jwt.StandardClaims
}

// GenerateToken signs a bearer token for the given user id.
func GenerateToken(userID uint, secret []byte, expiry time.Duration) (string, error) {
	claims := &Claims{
		ID: userID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(expiry).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken verifies the signature and expiry and returns the user id.
func ParseToken(tokenString string, secret []byte) (uint, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, http.StatusUnauthorized, "Invalid token", nil)
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, errors.NewAppError(errors.ErrCodeInvalidToken, http.StatusUnauthorized, "Invalid token", err)
	}
	return claims.ID, nil
}

// IssueToken signs a token with the process configuration.
func IssueToken(userID uint) (string, error) {
	return GenerateToken(userID, []byte(config.App.JWTSecret), config.App.JWTExpiry)
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

// NormalizeEmail lowercases the address so lookups and the unique index are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GetUserByEmail matches active and soft-deleted users alike: a deactivated
// account still holds its email.
func GetUserByEmail(db *gorm.DB, email string) (models.User, error) {
	var user models.User
	err := db.Where("email = ?", NormalizeEmail(email)).First(&user).Error
	return user, err
}

// RegisterUser persists a new user after the duplicate-email check, hashing
// the password exactly once. Guide registrations always start unverified.
func RegisterUser(db *gorm.DB, user *models.User, password string) error {
	user.Email = NormalizeEmail(user.Email)

	if _, err := GetUserByEmail(db, user.Email); err == nil {
		return errors.BadRequest(errors.ErrCodeDuplicateEmail, "User already exists")
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.IsActive = true
	if user.Role == constants.RoleGuide {
		user.Verified = false
	}

	if err := db.Create(user).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, http.StatusInternalServerError, "Could not create user", err)
	}
	return nil
}

// Authenticate resolves a login. Unknown email and wrong password return the
// same generic error so the response never reveals which check failed.
func Authenticate(db *gorm.DB, email, password string) (*models.User, error) {
	user, err := GetUserByEmail(db, email)
	if err != nil {
		return nil, errors.InvalidCredentials()
	}

	if !CheckPassword(user.Password, password) {
		return nil, errors.InvalidCredentials()
	}

	if !user.IsActive {
		return nil, errors.NewAppError(errors.ErrCodeAccountDeactivated, http.StatusForbidden, "Account has been deactivated", nil)
	}

	return &user, nil
}

// ChangePassword verifies the current password and re-hashes the new one.
// Only the password column is written.
func ChangePassword(db *gorm.DB, user *models.User, current, next string) error {
	if !CheckPassword(user.Password, current) {
		return errors.NewAppError(errors.ErrCodeInvalidCredentials, http.StatusUnauthorized, "Current password is incorrect", nil)
	}

	hashed, err := HashPassword(next)
	if err != nil {
		return err
	}

	if err := db.Model(user).Update("password", hashed).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, http.StatusInternalServerError, "Could not update password", err)
	}
	return nil
}

// AuthenticateGoogle validates a Google ID token and returns the matching
// user, creating a tourist account on first sign-in.
func AuthenticateGoogle(ctx context.Context, db *gorm.DB, rawToken, audience string) (*models.User, error) {
	payload, err := idtoken.Validate(ctx, rawToken, audience)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, http.StatusUnauthorized, "Invalid Google token", err)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	if email == "" {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, http.StatusUnauthorized, "Google token has no email", nil)
	}

	user, err := GetUserByEmail(db, email)
	if err == nil {
		if !user.IsActive {
			return nil, errors.NewAppError(errors.ErrCodeAccountDeactivated, http.StatusForbidden, "Account has been deactivated", nil)
		}
		return &user, nil
	}

	user = models.User{
		Name:     name,
		Email:    NormalizeEmail(email),
		Avatar:   picture,
		Role:     constants.RoleTourist,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, http.StatusInternalServerError, "Could not create user", err)
	}
	return &user, nil
}
