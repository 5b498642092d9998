package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirhop/internal/eventbus"
)

type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() { return func() {} }
func (b *recordingBus) Close()                                                      {}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	bus := &recordingBus{}
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewService(path, bus)

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	require.Len(t, bus.events, 1)
	assert.Equal(t, eventbus.ConfigLoadedEvent{Path: path}, bus.events[0])
}

func TestLoadFromPathMissing(t *testing.T) {
	svc := NewService("", nil)
	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadPartialFile(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		check func(t *testing.T, cfg *Config)
	}{
		{
			name: "top-level keys",
			body: "start_dir = \"/srv\"\nshow_hidden = true\nmax_history = 7\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/srv", cfg.StartDir)
				assert.True(t, cfg.ShowHidden)
				assert.Equal(t, 7, cfg.MaxHistory)
				assert.True(t, cfg.UI.ConfirmDelete, "untouched keys keep defaults")
			},
		},
		{
			name: "delete table",
			body: "[delete]\nelevate = false\nstage_timeout = \"45s\"\n",
			check: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.Delete.Elevate)
				assert.Equal(t, 45*time.Second, cfg.Delete.StageTimeout.Duration)
			},
		},
		{
			name: "out of range values fall back",
			body: "max_history = -3\n[delete]\nstage_timeout = \"0s\"\n[ui]\ndate_format = \"\"\n",
			check: func(t *testing.T, cfg *Config) {
				def := DefaultConfig()
				assert.Equal(t, def.MaxHistory, cfg.MaxHistory)
				assert.Equal(t, def.Delete.StageTimeout, cfg.Delete.StageTimeout)
				assert.Equal(t, def.UI.DateFormat, cfg.UI.DateFormat)
			},
		},
		{
			name: "log table",
			body: "[log]\nfile = \"/tmp/dirhop.log\"\nlevel = \"debug\"\nformat = \"json\"\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/tmp/dirhop.log", cfg.Log.File)
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, "json", cfg.Log.Format)
				assert.Equal(t, 10, cfg.Log.MaxSizeMB)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))

			cfg, err := NewService(path, nil).Load()
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "syntax", body: "show_hidden = = true"},
		{name: "bad duration", body: "[delete]\nstage_timeout = \"soon\""},
		{name: "wrong type", body: "max_history = \"many\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))

			_, err := NewService(path, nil).Load()
			assert.ErrorContains(t, err, "failed to parse config")
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	bus := &recordingBus{}
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewService(path, bus)

	cfg := DefaultConfig()
	cfg.StartDir = "/home/me"
	cfg.ShowHidden = true
	cfg.Delete.StageTimeout = Duration{90 * time.Second}
	require.NoError(t, svc.Save(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1m30s")
	assert.NoFileExists(t, path+".tmp")

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	require.Len(t, bus.events, 2)
	assert.Equal(t, eventbus.ConfigSavedEvent{Path: path}, bus.events[0])
	assert.Equal(t, eventbus.ConfigLoadedEvent{Path: path, ShowHidden: true}, bus.events[1])
}

func TestDefaultPath(t *testing.T) {
	p := DefaultPath()
	assert.Equal(t, "config.toml", filepath.Base(p))
	assert.Equal(t, "dirhop", filepath.Base(filepath.Dir(p)))
	assert.Equal(t, p, NewService("", nil).Path())
}
