package api

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"pinghq/uptime-api/db"
	"pinghq/uptime-api/security"

	"github.com/gin-gonic/gin"
)

// memStore is an in-memory db.Store used by the handler tests so they
// don't need a database file.
type memStore struct {
	mu      sync.Mutex
	records map[string]map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{records: make(map[string]map[string][]byte)}
}

func (s *memStore) Create(category, key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[category][key]; ok {
		return db.ErrExists
	}

	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	if s.records[category] == nil {
		s.records[category] = make(map[string][]byte)
	}
	s.records[category][key] = b

	return nil
}

func (s *memStore) Read(category, key string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.records[category][key]
	if !ok {
		return db.ErrNotFound
	}

	return json.Unmarshal(b, out)
}

func (s *memStore) Update(category, key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[category][key]; !ok {
		return db.ErrNotFound
	}

	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.records[category][key] = b

	return nil
}

func (s *memStore) Delete(category, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[category][key]; !ok {
		return db.ErrNotFound
	}
	delete(s.records[category], key)

	return nil
}

func (s *memStore) List(category string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.records[category]))
	for k := range s.records[category] {
		keys = append(keys, k)
	}

	return keys, nil
}

func (s *memStore) count(category string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records[category])
}

// failingStore wraps another store and fails selected operations, for
// exercising the partial-failure paths.
type failingStore struct {
	db.Store

	failDelete map[string]bool // "category/key"
	failUpdate map[string]bool
}

func (s *failingStore) Delete(category, key string) error {
	if s.failDelete[category+"/"+key] {
		return fmt.Errorf("injected delete failure for %s/%s", category, key)
	}

	return s.Store.Delete(category, key)
}

func (s *failingStore) Update(category, key string, v any) error {
	if s.failUpdate[category+"/"+key] {
		return fmt.Errorf("injected update failure for %s/%s", category, key)
	}

	return s.Store.Update(category, key, v)
}

func newTestAPI(t *testing.T, store db.Store) *API {
	t.Helper()
	gin.SetMode(gin.TestMode)

	return newAPI(store, security.NewHasher("test-secret"), 5, t.TempDir())
}

// perform runs one request through the full gin + dispatch pipeline.
func perform(t *testing.T, a *API, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("response body is not a JSON object: %v (%q)", err, w.Body.String())
	}

	return out
}

// createUser registers a user and returns nothing; it fails the test on
// any non-200 result.
func createUser(t *testing.T, a *API, phone string) {
	t.Helper()

	body := fmt.Sprintf(`{"firstName":"Jo","lastName":"Bloggs","phone":%q,"password":"hunter22","tosAgreement":true}`, phone)
	w := perform(t, a, "POST", "/users", body, nil)
	if w.Code != 200 {
		t.Fatalf("createUser(%s): got %d (%s)", phone, w.Code, w.Body.String())
	}
}

// createToken logs the user in and returns the token id.
func createToken(t *testing.T, a *API, phone string) string {
	t.Helper()

	body := fmt.Sprintf(`{"phone":%q,"password":"hunter22"}`, phone)
	w := perform(t, a, "POST", "/tokens", body, nil)
	if w.Code != 200 {
		t.Fatalf("createToken(%s): got %d (%s)", phone, w.Code, w.Body.String())
	}

	id, _ := decode(t, w)["id"].(string)
	if len(id) != 20 {
		t.Fatalf("createToken(%s): bad token id %q", phone, id)
	}

	return id
}

// createCheck creates a check owned by the token's user and returns its id.
func createCheck(t *testing.T, a *API, token string) string {
	t.Helper()

	body := `{"protocol":"http","url":"example.com","method":"get","successCodes":[200],"timeoutSeconds":3}`
	w := perform(t, a, "POST", "/checks", body, map[string]string{"token": token})
	if w.Code != 200 {
		t.Fatalf("createCheck: got %d (%s)", w.Code, w.Body.String())
	}

	id, _ := decode(t, w)["id"].(string)
	if len(id) != 20 {
		t.Fatalf("createCheck: bad check id %q", id)
	}

	return id
}
