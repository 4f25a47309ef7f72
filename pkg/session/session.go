package session

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"noteflow/pkg/config"
	"noteflow/pkg/models"
)

var instance *Session

// Session exposes the authenticated owner behind the note store. Login and
// token refresh are the identity provider's concern; this only reads the
// ID token it handed out.
type Session struct {
	idToken string
}

func Get() *Session {
	if instance == nil {
		panic("session is not initialized")
	}

	return instance
}

func Initialize(cfg *config.Config) (*Session, error) {
	if instance != nil {
		return instance, nil
	}

	token := ""
	if cfg.Session.IDTokenFilename != "" {
		data, err := os.ReadFile(cfg.Session.IDTokenFilename)
		if err != nil {
			return nil, fmt.Errorf("error reading session token, %s", err)
		}
		token = strings.TrimSpace(string(data))
	}

	instance = &Session{idToken: token}
	return instance, nil
}

// NewSession builds a session around an already-held ID token.
func NewSession(idToken string) *Session {
	return &Session{idToken: idToken}
}

// CurrentOwnerID returns the subject of the session's ID token, or
// models.ErrUnauthenticated when no usable session exists.
func (s *Session) CurrentOwnerID() (string, error) {
	if s == nil || len(s.idToken) == 0 {
		return "", models.ErrUnauthenticated
	}

	token, _, err := jwt.NewParser().ParseUnverified(s.idToken, jwt.MapClaims{})
	if err != nil || token == nil {
		return "", models.ErrUnauthenticated
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil || time.Now().Unix() > exp.Unix() {
		return "", models.ErrUnauthenticated
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || len(sub) == 0 {
		return "", models.ErrUnauthenticated
	}

	return sub, nil
}

// Authenticated reports whether a non-expired owner session is active.
func (s *Session) Authenticated() bool {
	_, err := s.CurrentOwnerID()
	return err == nil
}
