package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Config struct {
	JWTKey   string        `yaml:"jwtKey" envconfig:"JWT_KEY" required:"true"`
	TokenTTL time.Duration `yaml:"tokenTTL" envconfig:"TOKEN_TTL" default:"24h"`
}

type Claims struct {
	Profile struct {
		UserUid string `json:"userUid"`
		Email   string `json:"email"`
		Role    string `json:"role"`
	} `json:"profile"`
	jwt.RegisteredClaims
}

// NewToken issues an HS256 token carrying the profile claims.
func NewToken(cfg Config, userUid, email, role string) (string, time.Time, error) {
	expiresAt := time.Now().Add(cfg.TokenTTL)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	claims.Profile.UserUid = userUid
	claims.Profile.Email = email
	claims.Profile.Role = role

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

func ParseToken(key []byte, tokenStr string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

type ctxKey int

const (
	userUidKey ctxKey = iota
	emailKey
	roleKey
)

func SetAuthContext(ctx context.Context, userUid, email, role string) context.Context {
	ctx = context.WithValue(ctx, userUidKey, userUid)
	ctx = context.WithValue(ctx, emailKey, email)
	return context.WithValue(ctx, roleKey, role)
}

func UserUid(ctx context.Context) (string, error) {
	uid, ok := ctx.Value(userUidKey).(string)
	if !ok || uid == "" {
		return "", errors.New("no user in context")
	}
	return uid, nil
}

func Email(ctx context.Context) string {
	email, _ := ctx.Value(emailKey).(string)
	return email
}

func IsAdmin(ctx context.Context) bool {
	role, _ := ctx.Value(roleKey).(string)
	return role == RoleAdmin
}
