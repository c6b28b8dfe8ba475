package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	settings, err := LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), settings)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var written Settings
	require.NoError(t, json.Unmarshal(data, &written))
	assert.Equal(t, *Default(), written)
}

func TestDefaultSettings(t *testing.T) {
	def := Default()
	assert.InDelta(t, 0.015, def.OverlayAlpha, 1e-7)
	assert.Equal(t, 8334, def.Particles)
	assert.InDelta(t, 0.5, def.Zoom, 1e-7)
	assert.Equal(t, []string{"drift", "surface"}, def.Shapes)
}

func TestLoadKeepsUnsetFieldsAtDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"zoom": 0.8, "shapes": [], "mystery": 1}`), 0644))

	settings, err := LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, settings.Zoom, 1e-6)
	assert.Empty(t, settings.Shapes)
	assert.Equal(t, Default().Particles, settings.Particles)
	assert.Equal(t, Default().Palette, settings.Palette)
}

func TestLoadResetsOutOfRangeValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	raw := `{"overlay_alpha": 3, "fov": 4, "near": 10, "far": 1, "zoom": -1, "particles": 0, "palette": []}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	settings, err := LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), settings)
}

func TestLoadFallsBackOnGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	settings, err := LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), settings)
}

func TestLens(t *testing.T) {
	lens := Default().Lens()
	assert.InDelta(t, 0.9, lens.Near, 1e-6)
	assert.InDelta(t, 20000, lens.Far, 1e-6)
	assert.InDelta(t, 0.5, lens.Zoom, 1e-6)
}

func TestKnownKeys(t *testing.T) {
	keys := getKnownKeys(&Settings{})
	assert.True(t, keys["overlay_alpha"])
	assert.True(t, keys["dots_vertex_shader"])
	assert.False(t, keys["DotsVertexShader"])
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"zoom": 0.5}`), 0644))

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte(`{"zoom": 2}`), 0644))

	// a truncating write may surface as more than one event
	deadline := time.After(5 * time.Second)
	for {
		select {
		case settings := <-w.Changes:
			if settings.Zoom == 2 {
				return
			}
		case <-deadline:
			t.Fatal("settings change was not delivered")
		}
	}
}
