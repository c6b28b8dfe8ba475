package spawn

import (
	"fmt"
	"log"

	"github.com/ThatOtherAndrew/Dotfield/internal/models"
	"github.com/ThatOtherAndrew/Dotfield/internal/shape"
)

// Entry is a named shape behaviour that can be registered at startup.
type Entry struct {
	Name        string
	Description string
	New         func(opts Options) shape.Behavior
}

type Options struct {
	Particles int
}

var Catalog = []Entry{
	{
		Name:        "drift",
		Description: "drifting particle field that swells while the pointer is held",
		New: func(o Options) shape.Behavior {
			return &shape.DriftingField{Count: o.Particles}
		},
	},
	{
		Name:        "surface",
		Description: "spinning implicit-surface point cloud that shrinks while the pointer is held",
		New: func(Options) shape.Behavior {
			return &shape.ImplicitSurface{}
		},
	},
	{
		Name:        "cube",
		Description: "static lattice cube",
		New: func(Options) shape.Behavior {
			return nil
		},
	},
}

func Lookup(name string) (Entry, bool) {
	for _, e := range Catalog {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

type App struct {
	app *models.App
}

func New(app *models.App) *App {
	return &App{app: app}
}

// SpawnNamed registers one shape per name, in order.
func (a *App) SpawnNamed(names []string) error {
	opts := Options{Particles: a.app.Settings.Particles}
	for _, name := range names {
		entry, ok := Lookup(name)
		if !ok {
			return fmt.Errorf("unknown shape %q", name)
		}
		s, err := a.app.Registry.Spawn(entry.New(opts), a.app.Context)
		if err != nil {
			return fmt.Errorf("spawn %s: %w", name, err)
		}
		log.Printf("Spawned %s with %d point(s)", name, s.Count())
	}
	return nil
}

// SpawnDefaults registers the shapes named in settings.
func (a *App) SpawnDefaults() error {
	return a.SpawnNamed(a.app.Settings.Shapes)
}
