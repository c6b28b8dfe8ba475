package cmd

import (
	"log"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/ThatOtherAndrew/Dotfield/internal/camera"
	"github.com/ThatOtherAndrew/Dotfield/internal/config"
	"github.com/ThatOtherAndrew/Dotfield/internal/draw"
	"github.com/ThatOtherAndrew/Dotfield/internal/input"
	"github.com/ThatOtherAndrew/Dotfield/internal/models"
	"github.com/ThatOtherAndrew/Dotfield/internal/opengl"
	"github.com/ThatOtherAndrew/Dotfield/internal/palette"
	"github.com/ThatOtherAndrew/Dotfield/internal/shape"
	"github.com/ThatOtherAndrew/Dotfield/internal/spawn"
	"github.com/ThatOtherAndrew/Dotfield/pkg/window"
	"github.com/spf13/cobra"
)

var (
	particles int
	shapes    []string
	seed      uint64
	noWatch   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "run the sketch",
	Run:   Run,
}

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd)
	runtime.LockOSThread()
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&particles, "particles", "p", 0, "number of points in the drifting field (default from settings)")
	cmd.Flags().StringSliceVarP(&shapes, "shapes", "s", nil, "shapes to spawn, in draw order (see 'dotfield shapes')")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload settings when the file changes")
}

func Run(cmd *cobra.Command, args []string) {
	settingsPath, err := config.GetSettingsPath()
	if err != nil {
		log.Fatal("Failed to get settings path:", err)
	}
	settings, err := config.LoadSettingsFrom(settingsPath)
	if err != nil {
		log.Fatal("Failed to load settings:", err)
	}
	if cmd.Flags().Changed("particles") {
		settings.Particles = particles
	}
	if cmd.Flags().Changed("shapes") {
		settings.Shapes = shapes
	}

	pal, err := palette.New(settings.Palette)
	if err != nil {
		log.Printf("Invalid palette, using default: %v", err)
		pal, _ = palette.New(palette.Default)
	}

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("Seed %d", seed)

	window, err := window.NewWindow(1280, 800, "dotfield")
	if err != nil {
		log.Fatal("Failed to create window:", err)
	}
	defer window.Destroy()

	width, height := window.GetSize()
	state := input.NewState(width, height)
	app := &models.App{
		Settings: settings,
		Camera:   camera.Default(),
		Input:    state,
		Events:   &input.Queue{},
		Registry: &shape.Registry{},
		Context: &shape.Context{
			Input:   state,
			Rand:    rand.New(rand.NewPCG(seed, seed>>1|1)),
			Palette: pal,
		},
		StartTime: time.Now(),
	}

	window.OnCursorMove(func(x, y float64) {
		app.Events.Push(input.Move{X: x, Y: y})
	})
	window.OnMouseButton(func(pressed, modifier bool) {
		if pressed {
			app.Events.Push(input.Down{Modifier: modifier})
		} else {
			app.Events.Push(input.Up{})
		}
	})
	window.OnResize(func(width, height int) {
		app.Events.Push(input.Resize{Width: width, Height: height})
	})

	x, y := window.GetCursorPos()
	app.Events.Push(input.Move{X: x, Y: y})

	if err := opengl.New(app).InitGL(); err != nil {
		log.Fatal("Failed to initialize OpenGL:", err)
	}

	if err := spawn.New(app).SpawnDefaults(); err != nil {
		log.Fatal("Failed to spawn shapes:", err)
	}
	log.Printf("Registered %d shape(s)", app.Registry.Len())

	var changes <-chan *config.Settings
	if !noWatch {
		watcher, err := config.Watch(settingsPath)
		if err != nil {
			log.Printf("Settings will not be reloaded: %v", err)
		} else {
			defer watcher.Close()
			changes = watcher.Changes
		}
	}

	drawer := draw.New(app)
	for !window.ShouldClose() {
		window.PollEvents()

		select {
		case s := <-changes:
			drawer.Reconfigure(s)
		default:
		}

		if err := drawer.Tick(app.Events.Drain()); err != nil {
			log.Fatal("Frame failed:", err)
		}
		window.SwapBuffers()
	}

	log.Printf("Drew %d frame(s) in %s", app.Frames, time.Since(app.StartTime).Round(time.Millisecond))
}
