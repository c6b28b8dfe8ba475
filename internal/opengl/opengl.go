package opengl

import (
	"fmt"
	"log"

	"github.com/ThatOtherAndrew/Dotfield/internal/models"
	"github.com/ThatOtherAndrew/Dotfield/internal/render"
	"github.com/ThatOtherAndrew/Dotfield/internal/shaders"
	"github.com/ThatOtherAndrew/Dotfield/internal/shape"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type App struct {
	app *models.App
}

func New(app *models.App) *App {
	return &App{app: app}
}

// InitGL loads GL, builds both renderers and sets the fixed pipeline state.
// Any failure here is fatal to the caller; nothing can draw without it.
func (a *App) InitGL() error {
	if err := gl.Init(); err != nil {
		return err
	}
	log.Printf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	dotsConfig := render.RendererConfig{Verts: shape.Cube()}
	if path := a.app.Settings.DotsVertexShader; path != "" {
		src, err := shaders.LoadSource(path)
		if err != nil {
			return err
		}
		dotsConfig.Vert = src
	}
	if path := a.app.Settings.DotsFragmentShader; path != "" {
		src, err := shaders.LoadSource(path)
		if err != nil {
			return err
		}
		dotsConfig.Frag = src
	}

	dots, err := render.NewDots(dotsConfig)
	if err != nil {
		return err
	}

	plane, err := render.NewPlane(render.RendererConfig{})
	if err != nil {
		dots.Delete()
		return err
	}
	plane.SetAlpha(a.app.Settings.OverlayAlpha)

	gl.Enable(gl.DEPTH_TEST)
	// Not-equal rather than less: overlapping points at the exact same
	// depth hide each other, everything else is drawn in order.
	gl.DepthFunc(gl.NOTEQUAL)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if glErr := gl.GetError(); glErr != gl.NO_ERROR {
		plane.Delete()
		dots.Delete()
		return fmt.Errorf("GL error 0x%x during setup", glErr)
	}

	a.app.Dots = dots
	a.app.Plane = plane
	a.app.Surface = Surface{}
	return nil
}

// Surface is the default framebuffer.
type Surface struct{}

// Begin sets the viewport and blend state and clears depth only; colour is
// kept so the backdrop can fade it.
func (Surface) Begin(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Enable(gl.BLEND)
	gl.BlendFuncSeparate(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA, gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	gl.Clear(gl.DEPTH_BUFFER_BIT)
}
