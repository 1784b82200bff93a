package jwt

import (
	"errors"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	TokenTypeAccess = "access"
	TokenTypeSSE    = "sse"

	sseTokenLifetime = 5 * time.Minute
)

var ErrSessionRevoked = errors.New("session has been revoked")

type Service interface {
	GenerateAccessToken(username string) (token string, tokenID string, expiresAt int64, err error)
	GenerateSSEToken(username string, sessionID string) (token string, expiresIn int, err error)
	ValidateSSEToken(tokenString string) (username string, sessionID string, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(tokenID string, expiresAt int64)
	IsTokenRevoked(tokenID string) bool
}

type JWTService struct {
	accessTokenExpirationTime time.Duration
	tokenAuth                 *jwtauth.JWTAuth
	revokedTokens             map[string]int64
	mu                        sync.RWMutex
	now                       func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime time.Duration) *JWTService {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:             make(map[string]int64),
		now:                       time.Now,
	}
}

// GenerateAccessToken issues a dashboard session token. The jti claim
// identifies the token for revocation on logout.
func (j *JWTService) GenerateAccessToken(username string) (token string, tokenID string, expiresAt int64, err error) {
	expiresAt = j.now().Add(j.accessTokenExpirationTime).Unix()
	tokenID = uuid.NewString()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"sub":  username,
		"jti":  tokenID,
		"type": TokenTypeAccess,
		"iat":  j.now().Unix(),
		"exp":  expiresAt,
	})
	return tokenString, tokenID, expiresAt, err
}

// RevokeToken remembers tokenID until its expiry. Expired entries are
// pruned on each call.
func (j *JWTService) RevokeToken(tokenID string, expiresAt int64) {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now().Unix()
	for id, exp := range j.revokedTokens {
		if exp < now {
			delete(j.revokedTokens, id)
		}
	}
	j.revokedTokens[tokenID] = expiresAt
}

func (j *JWTService) IsTokenRevoked(tokenID string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[tokenID]
	return revoked
}

// GenerateSSEToken generates a short-lived token for SSE connections. The
// sid claim carries the jti of the access token it was issued under, so a
// logout also invalidates the stream token.
func (j *JWTService) GenerateSSEToken(username string, sessionID string) (token string, expiresIn int, err error) {
	if sessionID == "" {
		return "", 0, jwt.ErrInvalidJWT()
	}
	expiresAt := j.now().Add(sseTokenLifetime).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"sub":  username,
		"sid":  sessionID,
		"type": TokenTypeSSE,
		"exp":  expiresAt,
	})
	if err != nil {
		return "", 0, err
	}

	return tokenString, int(sseTokenLifetime.Seconds()), nil
}

// ValidateSSEToken validates an SSE token and returns the username and the
// session it belongs to
func (j *JWTService) ValidateSSEToken(tokenString string) (username string, sessionID string, err error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return "", "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != TokenTypeSSE {
		return "", "", jwt.ErrInvalidJWT()
	}

	sid, _ := token.Get("sid")
	sessionID, _ = sid.(string)
	if token.Subject() == "" || sessionID == "" {
		return "", "", jwt.ErrInvalidJWT()
	}
	if j.IsTokenRevoked(sessionID) {
		return "", "", ErrSessionRevoked
	}
	return token.Subject(), sessionID, nil
}
