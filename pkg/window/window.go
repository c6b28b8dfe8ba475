package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type Window struct {
	window *glfw.Window

	onCursorMove  func(x, y float64)
	onMouseButton func(pressed, modifier bool)
	onResize      func(width, height int)
}

// NewWindow opens a window with a current OpenGL 4.1 core context and vsync
// enabled, so SwapBuffers waits for the next display refresh. It must be
// called from the main goroutine.
func NewWindow(width, height int, title string) (*Window, error) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	w := &Window{window: win}

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			win.SetShouldClose(true)
		}
	})

	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		if w.onCursorMove == nil {
			return
		}
		// cursor positions are in screen coordinates, scale them to pixels
		sw, sh := win.GetSize()
		fw, fh := win.GetFramebufferSize()
		if sw > 0 && sh > 0 {
			xpos *= float64(fw) / float64(sw)
			ypos *= float64(fh) / float64(sh)
		}
		w.onCursorMove(xpos, ypos)
	})

	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft || w.onMouseButton == nil {
			return
		}
		modifier := mods&(glfw.ModShift|glfw.ModControl|glfw.ModAlt|glfw.ModSuper) != 0
		switch action {
		case glfw.Press:
			w.onMouseButton(true, modifier)
		case glfw.Release:
			w.onMouseButton(false, modifier)
		}
	})

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if w.onResize != nil {
			w.onResize(width, height)
		}
	})

	return w, nil
}

func (w *Window) OnCursorMove(fn func(x, y float64))            { w.onCursorMove = fn }
func (w *Window) OnMouseButton(fn func(pressed, modifier bool)) { w.onMouseButton = fn }
func (w *Window) OnResize(fn func(width, height int))           { w.onResize = fn }

// GetSize returns the framebuffer size in pixels.
func (w *Window) GetSize() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *Window) GetCursorPos() (float64, float64) {
	return w.window.GetCursorPos()
}

func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) Destroy() {
	w.window.Destroy()
	glfw.Terminate()
}
