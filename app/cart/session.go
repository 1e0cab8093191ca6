package cart

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName = "storefront_cart"
	sessionKey  = "cart"
)

// SessionStore keeps the cart in an encrypted client-side cookie. The
// server holds no cart state; the shopper's browser carries it, like a
// localStorage cart would.
type SessionStore struct {
	store *sessions.CookieStore
}

func NewSessionStore(authKey, encKey []byte) *SessionStore {
	store := sessions.NewCookieStore(authKey, encKey)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionStore{store: store}
}

// Load returns the shopper's cart, or a fresh empty one when the
// cookie is absent or unreadable.
func (s *SessionStore) Load(r *http.Request) *Cart {
	session, err := s.store.Get(r, sessionName)
	if err != nil {
		log.Printf("SessionStore.Load: error reading cart session: %v", err)
		return New()
	}

	raw, ok := session.Values[sessionKey].(string)
	if !ok || raw == "" {
		return New()
	}

	c := New()
	if err := json.Unmarshal([]byte(raw), c); err != nil {
		log.Printf("SessionStore.Load: corrupt cart payload, starting fresh: %v", err)
		return New()
	}
	if c.Items == nil {
		c.Items = []Item{}
	}
	return c
}

func (s *SessionStore) Save(w http.ResponseWriter, r *http.Request, c *Cart) error {
	session, err := s.store.Get(r, sessionName)
	if err != nil {
		// A stale or tampered cookie still yields a usable session.
		log.Printf("SessionStore.Save: error reading cart session: %v", err)
	}

	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}

	session.Values[sessionKey] = string(raw)
	return session.Save(r, w)
}
