package session

import (
	"net/http"

	"github.com/gin-contrib/sessions/memstore"
	gsessions "github.com/gorilla/sessions"
)

// rotateKey marks a session whose id must change on its next save
const rotateKey = "_rotate"

// rotatingStore is a memstore that issues a new session id for sessions
// marked with rotateKey and forgets the old one, so an id handed out before
// login is worthless after it.
type rotatingStore struct {
	memstore.Store
}

func newMemoryStore(secret []byte) *rotatingStore {
	return &rotatingStore{Store: memstore.NewStore(secret)}
}

// Get goes through the request registry with the wrapper as the store, so
// session.Save comes back to rotatingStore.Save.
func (s *rotatingStore) Get(r *http.Request, name string) (*gsessions.Session, error) {
	return gsessions.GetRegistry(r).Get(s, name)
}

func (s *rotatingStore) New(r *http.Request, name string) (*gsessions.Session, error) {
	loaded, err := s.Store.New(r, name)
	session := gsessions.NewSession(s, name)
	if loaded != nil {
		session.ID = loaded.ID
		session.Values = loaded.Values
		session.Options = loaded.Options
		session.IsNew = loaded.IsNew
	}
	return session, err
}

func (s *rotatingStore) Save(r *http.Request, w http.ResponseWriter, session *gsessions.Session) error {
	if _, rotate := session.Values[rotateKey]; rotate {
		delete(session.Values, rotateKey)
		if session.ID != "" {
			stale := gsessions.NewSession(s.Store, session.Name())
			stale.ID = session.ID
			opts := *session.Options
			opts.MaxAge = -1
			stale.Options = &opts
			// only the cache entry goes; the client gets the new cookie below
			if err := s.Store.Save(r, discardWriter{}, stale); err != nil {
				return err
			}
			session.ID = ""
		}
	}
	return s.Store.Save(r, w, session)
}

type discardWriter struct{}

func (discardWriter) Header() http.Header         { return http.Header{} }
func (discardWriter) Write(b []byte) (int, error) { return len(b), nil }
func (discardWriter) WriteHeader(int)             {}
