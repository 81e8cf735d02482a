package middleware

import (
	"crypto/rand"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	pbCore "github.com/pocketbase/pocketbase/core"

	"github.com/raihanetx/submonth-z/internal/core"
)

const sessionCookie = "admin_session"

// Sessions issues and verifies the signed admin session cookie. There is a
// single shared admin credential; the token only attests that the holder
// passed the password check.
type Sessions struct {
	secret []byte
}

// NewSessions reads the signing secret from SESSION_SECRET. Without one a
// random secret is generated, which invalidates sessions on restart.
func NewSessions() *Sessions {
	secret := []byte(os.Getenv("SESSION_SECRET"))
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			log.Fatalf("auth: could not generate session secret: %v", err)
		}
		log.Println("auth: SESSION_SECRET not set, admin sessions will not survive a restart")
	}
	return &Sessions{secret: secret}
}

// Issue creates a 24h session token.
func (s *Sessions) Issue() (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks the token signature, expiry and subject.
func (s *Sessions) Verify(token string) bool {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return false
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	return ok && claims.Subject == "admin"
}

// SetCookie attaches a fresh session cookie to the response.
func (s *Sessions) SetCookie(e *pbCore.RequestEvent, token string) {
	http.SetCookie(e.Response, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int((24 * time.Hour).Seconds()),
	})
}

// ClearCookie expires the session cookie.
func (s *Sessions) ClearCookie(e *pbCore.RequestEvent) {
	http.SetCookie(e.Response, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// RequireAdmin middleware ensures the request carries a valid admin session.
// Page loads are redirected to the login form; form actions get a plain 403.
func RequireAdmin(sessions *Sessions) func(e *pbCore.RequestEvent) error {
	return func(e *pbCore.RequestEvent) error {
		cookie, err := e.Request.Cookie(sessionCookie)
		if err != nil || cookie.Value == "" || !sessions.Verify(cookie.Value) {
			if e.Request.Method == http.MethodGet {
				return e.Redirect(http.StatusSeeOther, "/admin/login")
			}
			return e.String(http.StatusForbidden, "admin session required")
		}
		e.Set("Admin", core.AdminPrincipal{Name: "admin"})
		return e.Next()
	}
}

// AdminFrom returns the authenticated principal set by RequireAdmin.
func AdminFrom(e *pbCore.RequestEvent) (core.AdminPrincipal, bool) {
	principal, ok := e.Get("Admin").(core.AdminPrincipal)
	return principal, ok
}
