package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/freshify/internal/common"
	"github.com/dmitrijs2005/freshify/internal/dbx"
	"github.com/dmitrijs2005/freshify/internal/inventory"
	"github.com/dmitrijs2005/freshify/internal/server/models"
	"github.com/dmitrijs2005/freshify/internal/server/repositories/counters"
	"github.com/dmitrijs2005/freshify/internal/server/repositories/items"
	"github.com/dmitrijs2005/freshify/internal/server/repositories/referenceimages"
	"github.com/dmitrijs2005/freshify/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/freshify/internal/server/repositories/users"
	"github.com/dmitrijs2005/freshify/internal/server/storage"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// fakeRepoManager hands out the same fake regardless of the DBTX, so state
// written inside a transaction is visible outside it.
type fakeRepoManager struct {
	users    *fakeUsersRepo
	refresh  *fakeRefreshRepo
	items    *fakeItemsRepo
	counters *fakeCountersRepo
	refimg   *fakeRefImagesRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:    &fakeUsersRepo{byName: map[string]*models.User{}},
		refresh:  &fakeRefreshRepo{tokens: map[string]*models.RefreshToken{}},
		items:    newFakeItemsRepo(),
		counters: &fakeCountersRepo{rows: map[string]*inventory.ImpactCounters{}},
		refimg:   &fakeRefImagesRepo{files: map[string]string{}},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository { return m.users }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.refresh }
func (m *fakeRepoManager) Items(dbx.DBTX) items.Repository { return m.items }
func (m *fakeRepoManager) Counters(dbx.DBTX) counters.Repository { return m.counters }
func (m *fakeRepoManager) ReferenceImages(dbx.DBTX) referenceimages.Repository { return m.refimg }

type fakeUsersRepo struct {
	byName    map[string]*models.User
	createErr error
	getErr    error
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byName[u.UserName]; ok {
		return nil, common.ErrAlreadyExists
	}
	cp := *u
	cp.ID = "user-" + u.UserName
	f.byName[u.UserName] = &cp
	return &cp, nil
}

func (f *fakeUsersRepo) GetUserByLogin(_ context.Context, login string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byName[login]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

type fakeRefreshRepo struct {
	tokens    map[string]*models.RefreshToken
	createErr error
	findErr   error
	deleteErr error
	purged    time.Time
}

func (f *fakeRefreshRepo) Create(_ context.Context, userID, token string, expiresAt time.Time) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.tokens[token] = &models.RefreshToken{UserID: userID, Token: token, Expires: expiresAt}
	return nil
}

func (f *fakeRefreshRepo) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	t, ok := f.tokens[token]
	if !ok {
		return nil, common.ErrNotFound
	}
	return t, nil
}

func (f *fakeRefreshRepo) Delete(_ context.Context, token string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.tokens, token)
	return nil
}

func (f *fakeRefreshRepo) PurgeExpired(_ context.Context, now time.Time) (int64, error) {
	f.purged = now
	var n int64
	for k, t := range f.tokens {
		if t.Expires.Before(now) {
			delete(f.tokens, k)
			n++
		}
	}
	return n, nil
}

type fakeItemsRepo struct {
	mu        sync.Mutex
	nextID    int64
	rows      map[int64]*inventory.Item
	completed map[int64]bool
	createErr error
	listErr   error
}

func newFakeItemsRepo() *fakeItemsRepo {
	return &fakeItemsRepo{rows: map[int64]*inventory.Item{}, completed: map[int64]bool{}}
}

func (f *fakeItemsRepo) put(it inventory.Item) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	it.ID = f.nextID
	f.rows[it.ID] = &it
	return it.ID
}

func (f *fakeItemsRepo) Create(_ context.Context, it *inventory.Item) error {
	if f.createErr != nil {
		return f.createErr
	}
	it.ID = f.put(*it)
	it.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return nil
}

func (f *fakeItemsRepo) ListByOwner(_ context.Context, owner string) ([]*inventory.Item, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*inventory.Item
	for id, it := range f.rows {
		if it.OwnerID == owner && !f.completed[id] {
			cp := *it
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Expiry != out[j].Expiry {
			return out[i].Expiry < out[j].Expiry
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeItemsRepo) Get(_ context.Context, id int64) (*inventory.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *it
	if f.completed[id] {
		done := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
		cp.CompletedAt = &done
	}
	return &cp, nil
}

func (f *fakeItemsRepo) owned(id int64, owner string) (*inventory.Item, bool) {
	it, ok := f.rows[id]
	if !ok || f.completed[id] || it.OwnerID != owner {
		return nil, false
	}
	return it, true
}

func (f *fakeItemsRepo) UpdateQuantity(_ context.Context, id int64, owner string, q int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.owned(id, owner)
	if !ok {
		return common.ErrNotFoundOrForbidden
	}
	it.Quantity = q
	return nil
}

func (f *fakeItemsRepo) UpdateExpiry(_ context.Context, id int64, owner string, days int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.owned(id, owner)
	if !ok {
		return common.ErrNotFoundOrForbidden
	}
	it.Expiry = days
	return nil
}

func (f *fakeItemsRepo) DeleteOwned(_ context.Context, id int64, owner string) (*inventory.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.owned(id, owner)
	if !ok {
		return nil, common.ErrNotFoundOrForbidden
	}
	delete(f.rows, id)
	return it, nil
}

func (f *fakeItemsRepo) MarkCompleted(_ context.Context, id int64, owner string) (*inventory.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.owned(id, owner)
	if !ok {
		return nil, common.ErrNotFoundOrForbidden
	}
	f.completed[id] = true
	cp := *it
	return &cp, nil
}

type fakeCountersRepo struct {
	rows       map[string]*inventory.ImpactCounters
	increments int
}

func (f *fakeCountersRepo) Create(_ context.Context, owner string) error {
	if _, ok := f.rows[owner]; !ok {
		f.rows[owner] = &inventory.ImpactCounters{OwnerID: owner}
	}
	return nil
}

func (f *fakeCountersRepo) Increment(_ context.Context, owner string, d inventory.Deltas) (*inventory.ImpactCounters, error) {
	c, ok := f.rows[owner]
	if !ok {
		return nil, common.ErrNotFound
	}
	f.increments++
	c.MoneySaved = c.MoneySaved.Add(d.Money)
	c.MealsSaved += d.Meals
	c.WasteIncidents += d.Waste
	cp := *c
	return &cp, nil
}

func (f *fakeCountersRepo) Get(_ context.Context, owner string) (*inventory.ImpactCounters, error) {
	c, ok := f.rows[owner]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

type fakeRefImagesRepo struct {
	files map[string]string
	err   error
	calls int
}

func (f *fakeRefImagesRepo) FileNameFor(_ context.Context, name string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	fn, ok := f.files[name]
	if !ok {
		return "", common.ErrNotFound
	}
	return fn, nil
}

type fakeStore struct {
	put        map[string]*storage.Image
	putErr     error
	presignErr error
	presigned  []string
}

func newFakeStore() *fakeStore { return &fakeStore{put: map[string]*storage.Image{}} }

func (f *fakeStore) PutImage(_ context.Context, key string, img *storage.Image) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.put[key] = img
	return nil
}

func (f *fakeStore) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	if f.presignErr != nil {
		return "", f.presignErr
	}
	f.presigned = append(f.presigned, key)
	return "https://s3.test/" + key + "?sig=1", nil
}
