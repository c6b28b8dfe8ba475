package draw

import (
	"fmt"
	"log"

	"github.com/ThatOtherAndrew/Dotfield/internal/camera"
	"github.com/ThatOtherAndrew/Dotfield/internal/config"
	"github.com/ThatOtherAndrew/Dotfield/internal/input"
	"github.com/ThatOtherAndrew/Dotfield/internal/models"
	"github.com/ThatOtherAndrew/Dotfield/internal/update"
)

type App struct {
	app *models.App
}

func New(app *models.App) *App {
	return &App{app: app}
}

// Tick runs one frame: fold pending input into the state, reset shapes if
// asked to, smooth the pointer and draw.
func (a *App) Tick(events []input.Event) error {
	if a.app.Input.Apply(events) {
		log.Printf("Resetting %d shape(s)", a.app.Registry.Len())
		if err := a.app.Registry.Reset(a.app.Context); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
	}
	update.Pointer(a.app.Input)
	a.Draw()
	return nil
}

func (a *App) Draw() {
	width, height := a.app.Input.Width, a.app.Input.Height

	a.app.Surface.Begin(width, height)

	a.app.Plane.Run()
	a.app.Plane.Draw()

	shared := camera.Shared(a.app.Settings.Lens(), a.app.Camera, width, height, a.app.Input.Smooth)

	a.app.Context.Frame = a.app.Frames
	a.app.Dots.Bind()
	a.app.Registry.Run(a.app.Dots, shared, a.app.Context)

	a.app.Frames++
}

// Reconfigure swaps in reloaded settings. Lens changes apply from the next
// frame; shape counts and palettes only on the next reset.
func (a *App) Reconfigure(settings *config.Settings) {
	a.app.Settings = settings
	a.app.Plane.SetAlpha(settings.OverlayAlpha)
	log.Printf("Settings reloaded")
}
