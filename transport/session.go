// Session identity: a cookie-bound UUID-v4. Grounded on the cookie
// pattern used in the pack's partybox example (a random id minted
// once, handed back as an HttpOnly cookie, reused thereafter), swapped
// to the registry's UUID-v4 generator in place of raw random bytes.
package transport

import (
	"net/http"

	"go-tafl/registry"
)

const sessionCookieName = "tafl_session"

// sessionFromRequest returns the session id carried by the request's
// cookie, or "" if none is present.
func sessionFromRequest(r *http.Request) string {
	c, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// setSessionCookie writes session as an HttpOnly, path-wide cookie.
func setSessionCookie(w http.ResponseWriter, session string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// loginOrReuse reuses an existing, known session as-is; otherwise a
// fresh session is minted and set as the session cookie. It does not
// record username; the caller registers the player.
func loginOrReuse(reg *registry.Registry, w http.ResponseWriter, r *http.Request, username string) string {
	if session := sessionFromRequest(r); session != "" {
		if _, ok := reg.Player(session); ok {
			return session
		}
	}

	session := registry.NewSession()
	setSessionCookie(w, session)
	return session
}

// clearSessionCookie expires the session cookie, for Logout.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
