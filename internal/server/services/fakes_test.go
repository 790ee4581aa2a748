package services

import (
	"context"
	"database/sql"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/fruitie/internal/common"
	"github.com/dmitrijs2005/fruitie/internal/dbx"
	"github.com/dmitrijs2005/fruitie/internal/server/config"
	"github.com/dmitrijs2005/fruitie/internal/server/models"
	"github.com/dmitrijs2005/fruitie/internal/server/repositories/repomanager"
	usersrepo "github.com/dmitrijs2005/fruitie/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

// --- helpers ---

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

// fakeUsersRepo keeps users in memory keyed by id.
type fakeUsersRepo struct {
	mu      sync.Mutex
	byID    map[string]*models.User
	nextID  int
	updates int

	getErr error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byID: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return nil, common.ErrDuplicateEmail
		}
	}
	f.nextID++
	u.ID = "u-" + strconv.Itoa(f.nextID)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	f.byID[u.ID] = &cp
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsersRepo) Update(ctx context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[u.ID]; !ok {
		return nil, common.ErrorNotFound
	}
	f.updates++
	u.UpdatedAt = time.Now()
	cp := *u
	f.byID[u.ID] = &cp
	return u, nil
}

func (f *fakeUsersRepo) stored(id string) *models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byID[id]
}

type fakeRepoManager struct {
	u usersrepo.Repository
}

func (m *fakeRepoManager) Dialect() repomanager.Dialect                 { return repomanager.DialectSQLite }
func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }

func newStore(t *testing.T, db *sql.DB, repo usersrepo.Repository) *CredentialStore {
	t.Helper()
	s, err := NewCredentialStore(db, &fakeRepoManager{u: repo}, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewCredentialStore error: %v", err)
	}
	return s
}

func newUserService(t *testing.T, db *sql.DB, repo usersrepo.Repository) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:             "k",
		TokenValidityDuration: time.Hour,
	}
	return NewUserService(db, &fakeRepoManager{u: repo}, newStore(t, db, repo), cfg)
}

