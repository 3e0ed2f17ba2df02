package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"
)

// Token verification errors.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

const minSecretLen = 32

// Claims is the identity carried by a verified bearer token.
type Claims struct {
	UserID    string
	Role      string
	ExpiresAt time.Time
}

// CreateToken signs a bearer token carrying the user id, role and
// expiry. Format: base64url(userID|role|expiresUnix) "." hex(hmac).
func CreateToken(userID, role string, ttl time.Duration, secret []byte) string {
	payload := userID + "|" + role + "|" + strconv.FormatInt(time.Now().Add(ttl).Unix(), 10)
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	sig := hex.EncodeToString(mac.Sum(nil))
	return base64.RawURLEncoding.EncodeToString([]byte(payload)) + "." + sig
}

// VerifyToken checks the signature and expiry of a token and returns
// its claims. The signature is checked before the expiry so a forged
// expiry cannot be distinguished from a forged identity.
func VerifyToken(token string, secret []byte) (*Claims, error) {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return nil, ErrInvalidToken
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, ErrInvalidToken
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return nil, ErrInvalidToken
	}

	fields := strings.Split(string(payload), "|")
	if len(fields) != 3 {
		return nil, ErrInvalidToken
	}
	exp, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}
	expiresAt := time.Unix(exp, 0)
	if time.Now().After(expiresAt) {
		return nil, ErrTokenExpired
	}

	return &Claims{UserID: fields[0], Role: fields[1], ExpiresAt: expiresAt}, nil
}

// SecretBytes derives the token signing key from a config string,
// padding it to a minimum of 32 bytes.
func SecretBytes(s string) []byte {
	b := []byte(s)
	if len(b) < minSecretLen {
		out := make([]byte, minSecretLen)
		copy(out, b)
		return out
	}
	return b
}
