// Package storage provides persistence for scenes, rendered frames, known
// displays and a render log.
package storage

import (
	"context"
	"errors"
	"time"
)

// Store is the interface for persistent storage.
type Store interface {
	// Scene library
	SaveScene(ctx context.Context, scene *Scene) error
	GetScene(ctx context.Context, name string) (*Scene, error)
	GetScenes(ctx context.Context) ([]*Scene, error)
	DeleteScene(ctx context.Context, name string) error

	// Frame cache
	CacheFrame(ctx context.Context, frame *CachedFrame) error
	GetCachedFrame(ctx context.Context, scene string) (*CachedFrame, error)

	// Render log
	RecordRenders(ctx context.Context, entries []RenderEntry) error
	QueryRenders(ctx context.Context, since, until time.Time) ([]RenderEntry, error)
	DeleteRendersBefore(ctx context.Context, before time.Time) error

	// Settings
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error

	// Displays
	SaveDevice(ctx context.Context, device *Device) error
	GetDevice(ctx context.Context, id string) (*Device, error)
	GetDevices(ctx context.Context) ([]*Device, error)
	DeleteDevice(ctx context.Context, id string) error

	// Lifecycle
	Close() error
}

// Scene is a named scene file kept in the library. Config holds the JSON
// scene document.
type Scene struct {
	Name      string
	Config    []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewScene creates a new scene record.
func NewScene(name string, config []byte) *Scene {
	now := time.Now()
	return &Scene{Name: name, Config: config, CreatedAt: now, UpdatedAt: now}
}

// CachedFrame is a rendered frame of a scene.
type CachedFrame struct {
	Scene       string
	Width       int
	Height      int
	Pixels      []byte
	GeneratedAt time.Time
}

// Fresh reports whether the frame was generated after the scene last changed.
func (f *CachedFrame) Fresh(scene *Scene) bool {
	return !f.GeneratedAt.Before(scene.UpdatedAt)
}

// RenderEntry records one render of a scene to a target (a file path or a
// display address).
type RenderEntry struct {
	Scene     string
	Target    string
	Timestamp time.Time
	Duration  time.Duration
}

// Device is a stored display.
type Device struct {
	ID        string
	IP        string
	Name      string
	Type      string
	CreatedAt time.Time
	LastSeen  time.Time
}

// NewDevice creates a new device record.
func NewDevice(id, ip, name, deviceType string) *Device {
	now := time.Now()
	return &Device{
		ID:        id,
		IP:        ip,
		Name:      name,
		Type:      deviceType,
		CreatedAt: now,
		LastSeen:  now,
	}
}

// ErrNotFound is returned when a record is not found.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e ErrNotFound) Error() string {
	return e.Resource + " not found: " + e.ID
}

// IsNotFound checks if err is, or wraps, a not found error.
func IsNotFound(err error) bool {
	var nf ErrNotFound
	return errors.As(err, &nf)
}
