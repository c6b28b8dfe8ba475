package config

import (
	"encoding/json"
	"log"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/ThatOtherAndrew/Dotfield/internal/camera"
	"github.com/ThatOtherAndrew/Dotfield/internal/palette"
)

type Settings struct {
	OverlayAlpha       float32  `json:"overlay_alpha"`
	FOV                float32  `json:"fov"`
	Near               float32  `json:"near"`
	Far                float32  `json:"far"`
	Zoom               float32  `json:"zoom"`
	Particles          int      `json:"particles"`
	Shapes             []string `json:"shapes"`
	Palette            []string `json:"palette"`
	DotsVertexShader   string   `json:"dots_vertex_shader,omitempty"`
	DotsFragmentShader string   `json:"dots_fragment_shader,omitempty"`
}

func Default() *Settings {
	return &Settings{
		OverlayAlpha: 0.015,
		FOV:          math.Pi / 2,
		Near:         0.9,
		Far:          20000,
		Zoom:         0.5,
		Particles:    8334,
		Shapes:       []string{"drift", "surface"},
		Palette:      append([]string(nil), palette.Default...),
	}
}

func (s *Settings) Lens() camera.Lens {
	return camera.Lens{FOV: s.FOV, Near: s.Near, Far: s.Far, Zoom: s.Zoom}
}

func GetDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(homeDir, ".config", "dotfield")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return configDir, nil
}

func GetSettingsPath() (string, error) {
	configDir, err := GetDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "settings.json"), nil
}

func LoadSettings() (*Settings, error) {
	settingsPath, err := GetSettingsPath()
	if err != nil {
		return nil, err
	}
	return LoadSettingsFrom(settingsPath)
}

// LoadSettingsFrom reads settings from path, writing a default file when
// none exists. Invalid files fall back to defaults and out-of-range values
// are reset individually.
func LoadSettingsFrom(settingsPath string) (*Settings, error) {
	defaultSettings := Default()

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Creating default settings file at %s", settingsPath)
			if err := createDefaultSettings(settingsPath, defaultSettings); err != nil {
				log.Printf("Failed to create default settings file: %v", err)
			}
			return defaultSettings, nil
		}
		return nil, err
	}

	// Check for unrecognised keys
	var rawSettings map[string]interface{}
	if err := json.Unmarshal(data, &rawSettings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaultSettings, nil
	}

	knownKeys := getKnownKeys(Settings{})
	for key := range rawSettings {
		if !knownKeys[key] {
			log.Printf("Warning: unrecognised setting key '%s' in settings file", key)
		}
	}

	settings := Default()
	if err := json.Unmarshal(data, settings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaultSettings, nil
	}

	settings.validate(defaultSettings)
	return settings, nil
}

func (s *Settings) validate(def *Settings) {
	if s.OverlayAlpha < 0.0 || s.OverlayAlpha > 1.0 {
		log.Printf("Invalid overlay_alpha value %.3f, must be between 0.0 and 1.0, using default %.3f",
			s.OverlayAlpha, def.OverlayAlpha)
		s.OverlayAlpha = def.OverlayAlpha
	}
	if s.FOV <= 0 || s.FOV >= math.Pi {
		log.Printf("Invalid fov value %.2f, must be between 0 and pi, using default %.2f", s.FOV, def.FOV)
		s.FOV = def.FOV
	}
	if s.Near <= 0 || s.Far <= s.Near {
		log.Printf("Invalid near/far values %.2f/%.2f, using defaults %.2f/%.2f",
			s.Near, s.Far, def.Near, def.Far)
		s.Near, s.Far = def.Near, def.Far
	}
	if s.Zoom <= 0 {
		log.Printf("Invalid zoom value %.2f, must be positive, using default %.2f", s.Zoom, def.Zoom)
		s.Zoom = def.Zoom
	}
	if s.Particles <= 0 {
		log.Printf("Invalid particles value %d, must be positive, using default %d", s.Particles, def.Particles)
		s.Particles = def.Particles
	}
	if len(s.Palette) == 0 {
		s.Palette = def.Palette
	}
}

func createDefaultSettings(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func getKnownKeys(v interface{}) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if jsonTag := field.Tag.Get("json"); jsonTag != "" {
			// Handle json tags like "field,omitempty"
			tagName := strings.Split(jsonTag, ",")[0]
			if tagName != "-" {
				keys[tagName] = true
			}
		}
	}
	return keys
}
