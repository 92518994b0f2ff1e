package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func migrationFS(files map[string]string) fstest.MapFS {
	m := fstest.MapFS{}
	for name, content := range files {
		m[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return m
}

func TestCurrentVersionFreshDatabase(t *testing.T) {
	runner := NewRunner(setupTestDB(t), migrationFS(nil))

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("failed to get version: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0 for fresh database, got %d", version)
	}
}

func TestApplyMigrationsInOrder(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"002_add_column.sql": "ALTER TABLE test ADD COLUMN name TEXT;",
		"001_create.sql":     "CREATE TABLE test (id INTEGER PRIMARY KEY);",
	}))

	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}
	if applied != 2 {
		t.Errorf("expected 2 migrations applied, got %d", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("failed to get version: %v", err)
	}
	if version != 2 {
		t.Errorf("expected version 2, got %d", version)
	}

	if _, err := db.Exec("INSERT INTO test (id, name) VALUES (1, 'x')"); err != nil {
		t.Errorf("expected both migrations applied, insert failed: %v", err)
	}
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	runner := NewRunner(setupTestDB(t), migrationFS(map[string]string{
		"001_create.sql": "CREATE TABLE test (id INTEGER PRIMARY KEY);",
	}))

	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("second apply failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("expected 0 migrations on second apply, got %d", applied)
	}
}

func TestApplyMigrationsRejectsBadFilenames(t *testing.T) {
	runner := NewRunner(setupTestDB(t), migrationFS(map[string]string{
		"badname.sql": "CREATE TABLE test (id INTEGER);",
	}))

	if _, err := runner.ApplyMigrations(nil); err == nil {
		t.Errorf("expected malformed filename to fail")
	}
}

func TestApplyMigrationsRollsBackFailure(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_create.sql": "CREATE TABLE test (id INTEGER PRIMARY KEY);",
		"002_broken.sql": "THIS IS NOT SQL;",
	}))

	if _, err := runner.ApplyMigrations(nil); err == nil {
		t.Fatalf("expected broken migration to fail")
	}

	// The failed migration must not bump the version.
	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("failed to get version: %v", err)
	}
	if version != 1 {
		t.Errorf("expected version 1 after failed migration, got %d", version)
	}
}

func TestValidateVersionRejectsNewerSchema(t *testing.T) {
	db := setupTestDB(t)
	fs := migrationFS(map[string]string{
		"001_create.sql": "CREATE TABLE test (id INTEGER PRIMARY KEY);",
	})
	runner := NewRunner(db, fs)

	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("failed to apply: %v", err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("failed to fake newer schema: %v", err)
	}

	if err := runner.ValidateVersion(); err == nil {
		t.Errorf("expected newer schema to be rejected")
	}
}
