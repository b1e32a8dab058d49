// Package sqlite provides a SQLite implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jwulff/vaint-go/internal/storage"

	_ "modernc.org/sqlite"
)

// Store is a SQLite implementation of storage.Store.
type Store struct {
	db *sql.DB
}

// NewMemoryStore creates an in-memory SQLite store.
func NewMemoryStore() (*Store, error) {
	return newStore(":memory:", 1)
}

// NewFileStore creates a file-based SQLite store.
func NewFileStore(path string) (*Store, error) {
	return newStore(path, 0)
}

// newStore opens dsn. maxConns of 1 keeps every query on the same
// connection, which an in-memory database needs.
func newStore(dsn string, maxConns int) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Scene methods

// SaveScene inserts or replaces a scene. An existing scene keeps its
// creation time.
func (s *Store) SaveScene(ctx context.Context, scene *storage.Scene) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scenes (name, config, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET config = excluded.config, updated_at = excluded.updated_at
	`, scene.Name, string(scene.Config), scene.CreatedAt, scene.UpdatedAt)
	return err
}

func (s *Store) GetScene(ctx context.Context, name string) (*storage.Scene, error) {
	var scene storage.Scene
	var config string
	err := s.db.QueryRowContext(ctx, `
		SELECT name, config, created_at, updated_at FROM scenes WHERE name = ?
	`, name).Scan(&scene.Name, &config, &scene.CreatedAt, &scene.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound{Resource: "scene", ID: name}
	}
	if err != nil {
		return nil, err
	}
	scene.Config = []byte(config)
	return &scene, nil
}

func (s *Store) GetScenes(ctx context.Context) ([]*storage.Scene, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, config, created_at, updated_at FROM scenes ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scenes []*storage.Scene
	for rows.Next() {
		var scene storage.Scene
		var config string
		if err := rows.Scan(&scene.Name, &config, &scene.CreatedAt, &scene.UpdatedAt); err != nil {
			return nil, err
		}
		scene.Config = []byte(config)
		scenes = append(scenes, &scene)
	}
	return scenes, rows.Err()
}

// DeleteScene removes a scene and its cached frame.
func (s *Store) DeleteScene(ctx context.Context, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM frame_cache WHERE scene = ?", name); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM scenes WHERE name = ?", name); err != nil {
		return err
	}
	return tx.Commit()
}

// Frame cache methods

func (s *Store) CacheFrame(ctx context.Context, frame *storage.CachedFrame) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO frame_cache (scene, width, height, pixels, generated_at)
		VALUES (?, ?, ?, ?, ?)
	`, frame.Scene, frame.Width, frame.Height, frame.Pixels, frame.GeneratedAt)
	return err
}

func (s *Store) GetCachedFrame(ctx context.Context, scene string) (*storage.CachedFrame, error) {
	var frame storage.CachedFrame
	err := s.db.QueryRowContext(ctx, `
		SELECT scene, width, height, pixels, generated_at FROM frame_cache WHERE scene = ?
	`, scene).Scan(&frame.Scene, &frame.Width, &frame.Height, &frame.Pixels, &frame.GeneratedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound{Resource: "frame_cache", ID: scene}
	}
	if err != nil {
		return nil, err
	}
	return &frame, nil
}

// Render log methods

func (s *Store) RecordRenders(ctx context.Context, entries []storage.RenderEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO renders (scene, target, timestamp, duration_ms)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.Scene, e.Target, e.Timestamp.UnixMilli(), e.Duration.Milliseconds()); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) QueryRenders(ctx context.Context, since, until time.Time) ([]storage.RenderEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT scene, target, timestamp, duration_ms FROM renders
		WHERE timestamp >= ? AND timestamp <= ?
		ORDER BY timestamp ASC, id ASC
	`, since.UnixMilli(), until.UnixMilli())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []storage.RenderEntry
	for rows.Next() {
		var e storage.RenderEntry
		var ts, ms int64
		if err := rows.Scan(&e.Scene, &e.Target, &ts, &ms); err != nil {
			return nil, err
		}
		e.Timestamp = time.UnixMilli(ts)
		e.Duration = time.Duration(ms) * time.Millisecond
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) DeleteRendersBefore(ctx context.Context, before time.Time) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM renders WHERE timestamp < ?", before.UnixMilli())
	return err
}

// Settings methods

func (s *Store) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", storage.ErrNotFound{Resource: "setting", ID: key}
	}
	return value, err
}

func (s *Store) SetSetting(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO settings (key, value, updated_at)
		VALUES (?, ?, ?)
	`, key, value, time.Now())
	return err
}

func (s *Store) DeleteSetting(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key)
	return err
}

// Device methods

func (s *Store) SaveDevice(ctx context.Context, device *storage.Device) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO devices (id, ip, name, type, created_at, last_seen)
		VALUES (?, ?, ?, ?, ?, ?)
	`, device.ID, device.IP, device.Name, device.Type, device.CreatedAt, device.LastSeen)
	return err
}

func (s *Store) GetDevice(ctx context.Context, id string) (*storage.Device, error) {
	var device storage.Device
	err := s.db.QueryRowContext(ctx, `
		SELECT id, ip, name, type, created_at, last_seen FROM devices WHERE id = ?
	`, id).Scan(&device.ID, &device.IP, &device.Name, &device.Type, &device.CreatedAt, &device.LastSeen)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound{Resource: "device", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (s *Store) GetDevices(ctx context.Context) ([]*storage.Device, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, ip, name, type, created_at, last_seen FROM devices ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var devices []*storage.Device
	for rows.Next() {
		var device storage.Device
		if err := rows.Scan(&device.ID, &device.IP, &device.Name, &device.Type, &device.CreatedAt, &device.LastSeen); err != nil {
			return nil, err
		}
		devices = append(devices, &device)
	}
	return devices, rows.Err()
}

func (s *Store) DeleteDevice(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM devices WHERE id = ?", id)
	return err
}

// Verify interface compliance
var _ storage.Store = (*Store)(nil)
