package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jwulff/vaint-go/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	store, err := NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestNewMemoryStore(t *testing.T) {
	store, err := NewMemoryStore()
	require.NoError(t, err)
	defer store.Close()

	assert.NotNil(t, store)
}

func TestNewFileStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveScene(ctx, storage.NewScene("demo", []byte(`{}`))))
	require.NoError(t, store.Close())

	store, err = NewFileStore(path)
	require.NoError(t, err)
	defer store.Close()

	scene, err := store.GetScene(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), scene.Config)
}

// Scene tests

func TestSaveAndGetScene(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	scene := storage.NewScene("circles", []byte(`{"shapes":[]}`))
	require.NoError(t, store.SaveScene(ctx, scene))

	retrieved, err := store.GetScene(ctx, "circles")
	require.NoError(t, err)

	assert.Equal(t, scene.Name, retrieved.Name)
	assert.Equal(t, scene.Config, retrieved.Config)
	assert.True(t, scene.UpdatedAt.Equal(retrieved.UpdatedAt))
}

func TestSaveSceneKeepsCreatedAt(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := storage.NewScene("demo", []byte(`{"a":1}`))
	require.NoError(t, store.SaveScene(ctx, first))

	second := storage.NewScene("demo", []byte(`{"a":2}`))
	second.CreatedAt = first.CreatedAt.Add(time.Hour)
	second.UpdatedAt = second.CreatedAt
	require.NoError(t, store.SaveScene(ctx, second))

	retrieved, err := store.GetScene(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":2}`), retrieved.Config)
	assert.True(t, first.CreatedAt.Equal(retrieved.CreatedAt))
	assert.True(t, second.UpdatedAt.Equal(retrieved.UpdatedAt))
}

func TestGetSceneNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetScene(context.Background(), "nonexistent")
	assert.True(t, storage.IsNotFound(err))
}

func TestGetScenesSortedByName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_ = store.SaveScene(ctx, storage.NewScene("b", []byte(`{}`)))
	_ = store.SaveScene(ctx, storage.NewScene("a", []byte(`{}`)))

	scenes, err := store.GetScenes(ctx)
	require.NoError(t, err)
	require.Len(t, scenes, 2)
	assert.Equal(t, "a", scenes[0].Name)
	assert.Equal(t, "b", scenes[1].Name)
}

func TestDeleteSceneDropsCachedFrame(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_ = store.SaveScene(ctx, storage.NewScene("demo", []byte(`{}`)))
	_ = store.CacheFrame(ctx, &storage.CachedFrame{Scene: "demo", Width: 1, Height: 1, Pixels: []byte{1, 2, 3}, GeneratedAt: time.Now()})

	require.NoError(t, store.DeleteScene(ctx, "demo"))

	_, err := store.GetScene(ctx, "demo")
	assert.True(t, storage.IsNotFound(err))
	_, err = store.GetCachedFrame(ctx, "demo")
	assert.True(t, storage.IsNotFound(err))
}

// Frame cache tests

func TestCacheAndGetFrame(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	frame := &storage.CachedFrame{
		Scene:       "demo",
		Width:       2,
		Height:      1,
		Pixels:      []byte{1, 2, 3, 4, 5, 6},
		GeneratedAt: time.Now(),
	}
	require.NoError(t, store.CacheFrame(ctx, frame))

	retrieved, err := store.GetCachedFrame(ctx, "demo")
	require.NoError(t, err)

	assert.Equal(t, frame.Width, retrieved.Width)
	assert.Equal(t, frame.Height, retrieved.Height)
	assert.Equal(t, frame.Pixels, retrieved.Pixels)
	assert.True(t, frame.GeneratedAt.Equal(retrieved.GeneratedAt))
}

func TestCacheFrameReplaces(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_ = store.CacheFrame(ctx, &storage.CachedFrame{Scene: "demo", Width: 1, Height: 1, Pixels: []byte{1, 1, 1}, GeneratedAt: time.Now()})
	_ = store.CacheFrame(ctx, &storage.CachedFrame{Scene: "demo", Width: 1, Height: 1, Pixels: []byte{2, 2, 2}, GeneratedAt: time.Now()})

	retrieved, err := store.GetCachedFrame(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 2, 2}, retrieved.Pixels)
}

func TestGetCachedFrameNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetCachedFrame(context.Background(), "demo")
	assert.True(t, storage.IsNotFound(err))
}

// Render log tests

func TestRecordAndQueryRenders(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	entries := []storage.RenderEntry{
		{Scene: "a", Target: "out.png", Timestamp: base, Duration: 15 * time.Millisecond},
		{Scene: "b", Target: "192.168.1.5", Timestamp: base.Add(time.Minute), Duration: 120 * time.Millisecond},
		{Scene: "a", Target: "out.png", Timestamp: base.Add(time.Hour), Duration: 9 * time.Millisecond},
	}
	require.NoError(t, store.RecordRenders(ctx, entries))

	got, err := store.QueryRenders(ctx, base, base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "b", got[1].Scene)
	assert.Equal(t, "192.168.1.5", got[1].Target)
	assert.Equal(t, 120*time.Millisecond, got[1].Duration)
	assert.True(t, got[1].Timestamp.Equal(base.Add(time.Minute)))

	got, err = store.QueryRenders(ctx, base.Add(time.Second), base.Add(2*time.Minute))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Scene)
}

func TestDeleteRendersBefore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	_ = store.RecordRenders(ctx, []storage.RenderEntry{
		{Scene: "old", Target: "x", Timestamp: base},
		{Scene: "new", Target: "x", Timestamp: base.Add(24 * time.Hour)},
	})

	require.NoError(t, store.DeleteRendersBefore(ctx, base.Add(time.Hour)))

	got, err := store.QueryRenders(ctx, base.Add(-time.Hour), base.Add(48*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].Scene)
}

// Settings tests

func TestSetAndGetSetting(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetSetting(ctx, "display.ip", "192.168.1.5"))

	value, err := store.GetSetting(ctx, "display.ip")
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.5", value)
}

func TestUpdateSetting(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_ = store.SetSetting(ctx, "key", "value1")
	_ = store.SetSetting(ctx, "key", "value2")

	value, err := store.GetSetting(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "value2", value)
}

func TestDeleteSetting(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_ = store.SetSetting(ctx, "key", "value")
	require.NoError(t, store.DeleteSetting(ctx, "key"))

	_, err := store.GetSetting(ctx, "key")
	assert.True(t, storage.IsNotFound(err))
}

// Device tests

func TestSaveAndGetDevice(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	device := storage.NewDevice("dev-1", "192.168.1.100", "Desk", "pixoo64")
	require.NoError(t, store.SaveDevice(ctx, device))

	retrieved, err := store.GetDevice(ctx, "dev-1")
	require.NoError(t, err)

	assert.Equal(t, device.ID, retrieved.ID)
	assert.Equal(t, device.IP, retrieved.IP)
	assert.Equal(t, device.Name, retrieved.Name)
	assert.Equal(t, device.Type, retrieved.Type)
}

func TestGetDeviceNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetDevice(context.Background(), "nonexistent")
	assert.True(t, storage.IsNotFound(err))
}

func TestGetAndDeleteDevices(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_ = store.SaveDevice(ctx, storage.NewDevice("dev-1", "192.168.1.100", "Device 1", "pixoo64"))
	_ = store.SaveDevice(ctx, storage.NewDevice("dev-2", "192.168.1.101", "Device 2", "pixoo64"))

	devices, err := store.GetDevices(ctx)
	require.NoError(t, err)
	assert.Len(t, devices, 2)

	require.NoError(t, store.DeleteDevice(ctx, "dev-1"))
	devices, err = store.GetDevices(ctx)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "dev-2", devices[0].ID)
}
