package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketbook-app/backend/internal/session"
)

const (
	sessionKey = "pb-session"
	tokenKey   = "pb-token"
)

type errorResponse struct {
	Error string `json:"error" example:"you need to be signed in for this request"`
}

// Middleware authenticates requests with a bearer token.
//
// Every request gets its own Session that follows the authentication
// events of the principal until the request has been handled.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.New()
		sess.Start(s.broker)
		defer sess.Close()

		token, ok := bearer(c.GetHeader("Authorization"))
		if !ok {
			sess.Resolve(uuid.Nil)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: ErrNoPrincipal.Error()})
			return
		}

		principal, err := s.Verify(token)
		if err != nil {
			sess.Resolve(uuid.Nil)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: Message(err)})
			return
		}

		sess.Resolve(principal)
		c.Set(sessionKey, sess)
		c.Set(tokenKey, token)

		c.Next()
	}
}

func bearer(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

// SessionFrom returns the session of the request.
func SessionFrom(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}

	sess, ok := v.(*session.Session)
	return sess, ok
}

// TokenFrom returns the bearer token of the request.
func TokenFrom(c *gin.Context) string {
	return c.GetString(tokenKey)
}

// PrincipalFrom returns the principal of the request. ErrNoPrincipal is
// returned if the request is not authenticated or the principal has
// signed out in the meantime.
func PrincipalFrom(c *gin.Context) (uuid.UUID, error) {
	sess, ok := SessionFrom(c)
	if !ok {
		return uuid.Nil, ErrNoPrincipal
	}

	id, ok := sess.UserID()
	if !ok {
		return uuid.Nil, ErrNoPrincipal
	}

	return id, nil
}
