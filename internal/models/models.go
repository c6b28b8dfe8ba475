package models

import (
	"time"

	"github.com/ThatOtherAndrew/Dotfield/internal/camera"
	"github.com/ThatOtherAndrew/Dotfield/internal/config"
	"github.com/ThatOtherAndrew/Dotfield/internal/input"
	"github.com/ThatOtherAndrew/Dotfield/internal/shape"
)

// Surface prepares the default framebuffer for a frame.
type Surface interface {
	Begin(width, height int)
}

// Backdrop is the translucent overlay drawn under every shape.
type Backdrop interface {
	Run()
	Draw()
	SetAlpha(alpha float32)
}

// Dots is the shared point renderer.
type Dots interface {
	Bind()
	shape.Drawer
}

type App struct {
	Settings *config.Settings
	Camera   camera.Camera
	Input    *input.State
	Events   *input.Queue
	Registry *shape.Registry
	Context  *shape.Context

	Surface Surface
	Plane   Backdrop
	Dots    Dots

	StartTime time.Time
	Frames    uint64
}
