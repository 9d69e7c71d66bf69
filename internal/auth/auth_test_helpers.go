package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"datadrop-backend/internal/model"
)

// MockOAuth2Server stands in for Google's token and userinfo endpoints in
// tests. Issue codes with GetAuthCode and hand Config/MockInfoEndpoint to the
// handler under test.
type MockOAuth2Server struct {
	Config           *oauth2.Config
	MockInfoEndpoint string

	// FailToken makes the token endpoint answer 500 for every exchange.
	FailToken bool

	server    *httptest.Server
	mu        sync.Mutex
	users     map[string]model.GoogleUserInfo // by subject id
	codes     map[string]string               // auth code -> subject id
	tokens    map[string]string               // access token -> subject id
	exchanged map[string]bool                 // subject id -> code was exchanged
}

// NewMockOAuth2Server starts a stub provider knowing the given users.
func NewMockOAuth2Server(users []model.GoogleUserInfo) *MockOAuth2Server {
	m := &MockOAuth2Server{
		users:     make(map[string]model.GoogleUserInfo),
		codes:     make(map[string]string),
		tokens:    make(map[string]string),
		exchanged: make(map[string]bool),
	}
	for _, u := range users {
		m.users[u.GID] = u
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/token", m.handleToken)
	mux.HandleFunc("/userinfo", m.handleUserInfo)
	m.server = httptest.NewServer(mux)

	m.Config = &oauth2.Config{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		RedirectURL:  m.server.URL + "/callback",
		Scopes:       []string{"email", "profile"},
		Endpoint: oauth2.Endpoint{
			AuthURL:   m.server.URL + "/auth",
			TokenURL:  m.server.URL + "/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	m.MockInfoEndpoint = m.server.URL + "/userinfo"

	return m
}

// GetAuthCode issues a single-use authorization code for the given subject id.
func (m *MockOAuth2Server) GetAuthCode(gid string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[gid]; !ok {
		return "", fmt.Errorf("unknown user %q", gid)
	}
	code := uuid.NewString()
	m.codes[code] = gid
	return code, nil
}

// IsUserTokenExchanged reports whether a code for the subject id was exchanged.
func (m *MockOAuth2Server) IsUserTokenExchanged(gid string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.exchanged[gid]
}

// AccessTokenFor returns the token the server issues for the subject id.
func (m *MockOAuth2Server) AccessTokenFor(gid string) string {
	return "access-" + gid
}

// Close shuts the stub provider down.
func (m *MockOAuth2Server) Close() {
	m.server.Close()
}

func (m *MockOAuth2Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if m.FailToken {
		http.Error(w, "token endpoint unavailable", http.StatusInternalServerError)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m.mu.Lock()
	gid, ok := m.codes[r.FormValue("code")]
	if ok {
		delete(m.codes, r.FormValue("code"))
		m.exchanged[gid] = true
		m.tokens[m.AccessTokenFor(gid)] = gid
	}
	m.mu.Unlock()

	if !ok {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"access_token":  m.AccessTokenFor(gid),
		"refresh_token": "refresh-" + gid,
		"token_type":    "Bearer",
		"expires_in":    3600,
	})
}

func (m *MockOAuth2Server) handleUserInfo(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	m.mu.Lock()
	gid, ok := m.tokens[token]
	user := m.users[gid]
	m.mu.Unlock()

	if !ok {
		http.Error(w, `{"error":"invalid_token"}`, http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(user)
}
