package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/sellhub/internal/client/models"
	"github.com/dmitrijs2005/sellhub/internal/client/repositories/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()
	db, err := OpenDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db), db
}

func TestOpenDatabase_AppliesMigrations(t *testing.T) {
	_, db := setupStore(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='metadata'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "metadata", name)

	// Re-running is a no-op.
	require.NoError(t, RunMigrations(context.Background(), db))
}

func TestOpenDatabase_CreatesFileInNewDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "sellhub.db")

	db, err := OpenDatabase(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, New(db).SetToken(context.Background(), "T"))
	require.NoError(t, db.Close())

	db, err = OpenDatabase(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	token, err := New(db).Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "T", token)
}

func TestToken_RoundTrip(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, s.SetToken(ctx, "T"))
	tok, err = s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T", tok)

	require.NoError(t, s.ClearSession(ctx))
	tok, err = s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestUser_RoundTrip(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	u, err := s.User(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)

	want := &models.User{ID: "1", Username: "a", Name: "A"}
	require.NoError(t, s.SetUser(ctx, want))

	u, err = s.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, u)

	require.NoError(t, s.ClearSession(ctx))
	u, err = s.User(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUser_StoredAsJSON(t *testing.T) {
	s, db := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetUser(ctx, &models.User{ID: "1", Username: "a", Name: "A"}))

	raw, err := metadata.NewSQLiteRepository(db).Get(ctx, KeyUser)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","username":"a","name":"A"}`, string(raw))
}

func TestUser_CorruptValueIsAbsent(t *testing.T) {
	s, db := setupStore(t)
	ctx := context.Background()

	require.NoError(t, metadata.NewSQLiteRepository(db).Set(ctx, KeyUser, []byte("{not json")))

	u, err := s.User(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestSetUser_Nil(t *testing.T) {
	s, _ := setupStore(t)
	require.Error(t, s.SetUser(context.Background(), nil))
}

func TestSaveSession_WritesBothKeys(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	user := &models.User{ID: "1", Username: "a", Name: "A"}
	require.NoError(t, s.SaveSession(ctx, "T", user))

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T", tok)

	u, err := s.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, u)
}

func TestSaveSession_NilUserRollsBackToken(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.Error(t, s.SaveSession(ctx, "T", nil))

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok, "token must not survive a failed session save")
}

func TestClearSession_KeepsTheme(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, "T", &models.User{ID: "1"}))
	require.NoError(t, s.SetTheme(ctx, models.ThemeLight))

	require.NoError(t, s.ClearSession(ctx))
	require.NoError(t, s.ClearSession(ctx))

	tok, _ := s.Token(ctx)
	u, _ := s.User(ctx)
	assert.Empty(t, tok)
	assert.Nil(t, u)

	th, err := s.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, th)
}

func TestTheme_DefaultsToDark(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	th, err := s.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, th)

	require.NoError(t, s.SetTheme(ctx, th.Toggle()))
	th, err = s.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, th)
}

func TestStore_ClosedDatabase(t *testing.T) {
	s, db := setupStore(t)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := s.Token(ctx)
	require.Error(t, err)
	_, err = s.User(ctx)
	require.Error(t, err)
	require.Error(t, s.SaveSession(ctx, "T", &models.User{}))
	require.Error(t, s.ClearSession(ctx))

	th, err := s.Theme(ctx)
	require.Error(t, err)
	assert.Equal(t, models.DefaultTheme, th)
}
