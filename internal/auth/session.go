package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ownerKey = "owner_id"
	issuer   = "internhunt"
)

var ErrNoSession = errors.New("no session")

// SessionVerifier checks HS256 bearer tokens minted by the identity
// provider. The token subject is the owner id.
type SessionVerifier struct {
	key     []byte
	nowFunc func() time.Time
}

func NewSessionVerifier(secret string) *SessionVerifier {
	return &SessionVerifier{key: []byte(secret), nowFunc: time.Now}
}

func (v *SessionVerifier) Verify(token string) (string, error) {
	if len(v.key) == 0 {
		return "", fmt.Errorf("session secret not configured: %w", ErrNoSession)
	}

	t, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(token *jwt.Token) (any, error) {
			return v.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.nowFunc),
	)
	if err != nil {
		return "", fmt.Errorf("cannot parse token: %w", err)
	}

	claims, ok := t.Claims.(*jwt.RegisteredClaims)
	if !ok || !t.Valid {
		return "", errors.New("token not valid")
	}
	if claims.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return claims.Subject, nil
}

// IssueToken mints a session token. Used by tests and local tooling.
func (v *SessionVerifier) IssueToken(owner string, ttl time.Duration) (string, error) {
	now := v.nowFunc()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   owner,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})
	return token.SignedString(v.key)
}

// Middleware rejects requests without a valid bearer token and stores the
// owner id on the context.
func (v *SessionVerifier) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		owner, err := v.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		SetOwnerID(c, owner)
		c.Next()
	}
}

// OwnerID returns the authenticated owner, or "" outside the middleware.
func OwnerID(c *gin.Context) string {
	return c.GetString(ownerKey)
}

// SetOwnerID records the authenticated owner on the request.
func SetOwnerID(c *gin.Context, owner string) {
	c.Set(ownerKey, owner)
}
