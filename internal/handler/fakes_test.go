package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/geoshapes/shape-api/internal/model"
	"github.com/geoshapes/shape-api/internal/queue"
	"github.com/geoshapes/shape-api/internal/repository"
	"github.com/geoshapes/shape-api/internal/utils"
)

// In-memory store fakes backing the handler tests.  They mirror the
// repository contract: scoped lookups miss with ErrNotFound whether the row
// is absent or owned by someone else.

type fakeRectStore struct {
	nextID uint64
	rects  map[uint64]model.Rectangle
}

func newFakeRectStore() *fakeRectStore {
	return &fakeRectStore{rects: map[uint64]model.Rectangle{}}
}

func (s *fakeRectStore) Create(_ context.Context, rect *model.Rectangle) error {
	s.nextID++
	rect.RectangleID = s.nextID
	s.rects[rect.RectangleID] = *rect
	return nil
}

func (s *fakeRectStore) GetByIDAndOwner(_ context.Context, id, ownerID uint64) (*model.Rectangle, error) {
	r, ok := s.rects[id]
	if !ok || r.UserID != ownerID {
		return nil, repository.ErrNotFound
	}
	cp := r
	return &cp, nil
}

func (s *fakeRectStore) Update(_ context.Context, rect *model.Rectangle) error {
	s.rects[rect.RectangleID] = *rect
	return nil
}

func (s *fakeRectStore) DeleteByIDAndOwner(_ context.Context, id, ownerID uint64) error {
	r, ok := s.rects[id]
	if !ok || r.UserID != ownerID {
		return repository.ErrNotFound
	}
	delete(s.rects, id)
	return nil
}

type fakeTriangleStore struct {
	nextID uint64
	tris   map[uint64]model.Triangle
}

func newFakeTriangleStore() *fakeTriangleStore {
	return &fakeTriangleStore{tris: map[uint64]model.Triangle{}}
}

func (s *fakeTriangleStore) Create(_ context.Context, t *model.Triangle) error {
	s.nextID++
	t.TriangleID = s.nextID
	s.tris[t.TriangleID] = *t
	return nil
}

func (s *fakeTriangleStore) GetByIDAndOwner(_ context.Context, id, ownerID uint64) (*model.Triangle, error) {
	tr, ok := s.tris[id]
	if !ok || tr.UserID != ownerID {
		return nil, repository.ErrNotFound
	}
	cp := tr
	return &cp, nil
}

func (s *fakeTriangleStore) Update(_ context.Context, t *model.Triangle) error {
	s.tris[t.TriangleID] = *t
	return nil
}

func (s *fakeTriangleStore) DeleteByIDAndOwner(_ context.Context, id, ownerID uint64) error {
	tr, ok := s.tris[id]
	if !ok || tr.UserID != ownerID {
		return repository.ErrNotFound
	}
	delete(s.tris, id)
	return nil
}

type fakeDiamondStore struct {
	nextID   uint64
	diamonds map[uint64]model.Diamond
}

func newFakeDiamondStore() *fakeDiamondStore {
	return &fakeDiamondStore{diamonds: map[uint64]model.Diamond{}}
}

func (s *fakeDiamondStore) Create(_ context.Context, d *model.Diamond) error {
	s.nextID++
	d.DiamondID = s.nextID
	s.diamonds[d.DiamondID] = *d
	return nil
}

func (s *fakeDiamondStore) GetByIDAndOwner(_ context.Context, id, ownerID uint64) (*model.Diamond, error) {
	d, ok := s.diamonds[id]
	if !ok || d.UserID != ownerID {
		return nil, repository.ErrNotFound
	}
	cp := d
	return &cp, nil
}

func (s *fakeDiamondStore) Update(_ context.Context, d *model.Diamond) error {
	s.diamonds[d.DiamondID] = *d
	return nil
}

func (s *fakeDiamondStore) DeleteByIDAndOwner(_ context.Context, id, ownerID uint64) error {
	d, ok := s.diamonds[id]
	if !ok || d.UserID != ownerID {
		return repository.ErrNotFound
	}
	delete(s.diamonds, id)
	return nil
}

type fakeUserStore struct {
	nextID uint64
	users  map[uint64]model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uint64]model.User{}}
}

func (s *fakeUserStore) Create(_ context.Context, u *model.User, password string, cost int) error {
	if taken, _ := s.UserNameInUse(nil, u.UserName); taken {
		return repository.ErrUserNameExists
	}
	if u.Email != nil {
		if taken, _ := s.EmailInUse(nil, *u.Email); taken {
			return repository.ErrEmailExists
		}
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	s.nextID++
	u.UserID = s.nextID
	s.users[u.UserID] = *u
	return nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id uint64) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := u
	return &cp, nil
}

func (s *fakeUserStore) GetByUserName(_ context.Context, name string) (*model.User, error) {
	for _, u := range s.users {
		if u.UserName == name {
			cp := u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUserStore) UserNameInUse(_ context.Context, name string) (bool, error) {
	for _, u := range s.users {
		if u.UserName == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUserStore) EmailInUse(_ context.Context, email string) (bool, error) {
	for _, u := range s.users {
		if u.Email != nil && *u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUserStore) Update(_ context.Context, u *model.User) error {
	s.users[u.UserID] = *u
	return nil
}

func (s *fakeUserStore) IssueToken(_ context.Context, u *model.User, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	if u.TokenValidFor(now, time.Minute) {
		return *u.Token, nil
	}
	token, err := utils.NewToken()
	if err != nil {
		return "", err
	}
	exp := now.Add(ttl)
	u.Token = &token
	u.TokenExpiration = &exp
	s.users[u.UserID] = *u
	return token, nil
}

func (s *fakeUserStore) RevokeToken(_ context.Context, userID uint64) error {
	u, ok := s.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	exp := time.Now().UTC().Add(-time.Second)
	u.TokenExpiration = &exp
	s.users[userID] = u
	return nil
}

// fakePublisher records lifecycle events instead of touching a broker.
type fakePublisher struct {
	events []queue.ShapeChangedEvent
}

func (p *fakePublisher) ShapeChanged(_ context.Context, event queue.ShapeChangedEvent) error {
	p.events = append(p.events, event)
	return nil
}

// request builds an echo context for a handler call, optionally
// authenticated as the given user id (0 leaves the context anonymous).
func request(t *testing.T, method, target string, body string, userID uint64) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	if userID != 0 {
		c.Set("user_id", userID)
	}
	return c, rec
}

// withParam sets the :id route parameter on the context.
func withParam(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

// decodeBody unmarshals the recorded JSON response.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	return out
}
