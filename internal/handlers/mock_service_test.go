package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"watchlist/internal/models"
	"watchlist/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	users    map[int]*models.User
	loginErr error
	loadErr  error

	lastUsername string
	lastPassword string
	loginCalls   int
}

func (m *mockAuth) Login(_ context.Context, username, password string) (*models.User, error) {
	m.loginCalls++
	m.lastUsername, m.lastPassword = username, password
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, service.ErrInvalidCredentials
}

func (m *mockAuth) LoadUser(_ context.Context, id int) (*models.User, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.users[id], nil
}

type mockWatchlist struct {
	movies    []models.Movie
	listErr   error
	createErr error
	updateErr error
	deleteErr error

	created []service.MovieInput
	updated []service.MovieInput
	deleted []int
}

func (m *mockWatchlist) ListMovies(context.Context) ([]models.Movie, error) {
	return m.movies, m.listErr
}

func (m *mockWatchlist) GetMovie(_ context.Context, id int) (models.Movie, error) {
	for _, mv := range m.movies {
		if mv.ID == id {
			return mv, nil
		}
	}
	return models.Movie{}, service.ErrNotFound
}

func (m *mockWatchlist) CreateMovie(_ context.Context, in service.MovieInput) (models.Movie, error) {
	if m.createErr != nil {
		return models.Movie{}, m.createErr
	}
	m.created = append(m.created, in)
	return models.Movie{ID: len(m.created), Title: in.Title, Year: in.Year}, nil
}

func (m *mockWatchlist) UpdateMovie(ctx context.Context, id int, in service.MovieInput) (models.Movie, error) {
	mv, err := m.GetMovie(ctx, id)
	if err != nil {
		return models.Movie{}, err
	}
	if m.updateErr != nil {
		return mv, m.updateErr
	}
	m.updated = append(m.updated, in)
	return models.Movie{ID: id, Title: in.Title, Year: in.Year}, nil
}

func (m *mockWatchlist) DeleteMovie(ctx context.Context, id int) error {
	if _, err := m.GetMovie(ctx, id); err != nil {
		return err
	}
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type mockSettings struct {
	owner     *models.User
	ownerErr  error
	updateErr error

	names   []string
	userIDs []int
}

func (m *mockSettings) Owner(context.Context) (*models.User, error) {
	return m.owner, m.ownerErr
}

func (m *mockSettings) UpdateName(_ context.Context, userID int, name string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.names = append(m.names, name)
	m.userIDs = append(m.userIDs, userID)
	return nil
}

// ---- Shared Test Helpers ----

const testSecret = "test-secret"

var testAdmin = &models.User{ID: 1, Name: "Grey", Username: "grey"}

func newTestServices(auth *mockAuth, movies *mockWatchlist, settings *mockSettings) *service.Service {
	if auth == nil {
		auth = &mockAuth{users: map[int]*models.User{testAdmin.ID: testAdmin}}
	}
	if movies == nil {
		movies = &mockWatchlist{}
	}
	if settings == nil {
		settings = &mockSettings{owner: testAdmin}
	}
	return &service.Service{
		Authorization: auth,
		Sessions:      service.NewSessionService(testSecret, time.Hour),
		Watchlist:     movies,
		Settings:      settings,
	}
}

func newTestRouter(t *testing.T, s *service.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r, err := NewHandler(s, nil, Options{SessionTTL: time.Hour}).InitRoutes()
	if err != nil {
		t.Fatalf("InitRoutes: %v", err)
	}
	return r
}

// sessionCookie encodes sess the way the server does.
func sessionCookie(t *testing.T, s *service.Service, sess models.Session) *http.Cookie {
	t.Helper()
	raw, err := s.EncodeSession(sess)
	if err != nil {
		t.Fatalf("encode session: %v", err)
	}
	return &http.Cookie{Name: sessionCookieName, Value: raw}
}

func loggedIn(t *testing.T, s *service.Service) *http.Cookie {
	return sessionCookie(t, s, models.Session{UserID: testAdmin.ID})
}

func do(r http.Handler, method, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// responseSession decodes the session cookie set by the response. ok is
// false when the response did not touch the cookie.
func responseSession(t *testing.T, s *service.Service, w *httptest.ResponseRecorder) (models.Session, bool) {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name != sessionCookieName {
			continue
		}
		if ck.MaxAge < 0 || ck.Value == "" {
			return models.Session{}, true
		}
		sess, err := s.DecodeSession(ck.Value)
		if err != nil {
			t.Fatalf("decode response session: %v", err)
		}
		return sess, true
	}
	return models.Session{}, false
}

func assertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusFound {
		t.Fatalf("status=%d, want 302 (body=%s)", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Fatalf("Location=%q, want %q", got, location)
	}
}

func assertFlash(t *testing.T, s *service.Service, w *httptest.ResponseRecorder, want string) {
	t.Helper()
	sess, ok := responseSession(t, s, w)
	if !ok {
		t.Fatalf("response did not set a session cookie, want flash %q", want)
	}
	for _, f := range sess.Flashes {
		if f == want {
			return
		}
	}
	t.Fatalf("flashes=%v, want %q", sess.Flashes, want)
}
