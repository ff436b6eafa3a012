// Example draws a scene of shapes into a GLFW window and saves a
// screenshot when P is pressed.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"image/png"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/colornames"

	"github.com/go-theft-auto/shapes"
	"github.com/go-theft-auto/shapes/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "shapes example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// Create the rendering context and canvas.
	ctx, err := opengl.New(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("shapes context: %w", err)
	}
	defer ctx.Delete()

	canvas, err := shapes.New(ctx.Families())
	if err != nil {
		return fmt.Errorf("shapes canvas: %w", err)
	}

	saveShot := false
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyP && action == glfw.Press {
			saveShot = true
		}
	})

	star := shapes.PointList{
		{X: 600, Y: 180}, {X: 618, Y: 120}, {X: 636, Y: 180},
		{X: 690, Y: 186}, {X: 648, Y: 222}, {X: 663, Y: 282},
		{X: 618, Y: 246}, {X: 573, Y: 282}, {X: 588, Y: 222},
		{X: 546, Y: 186},
	}

	for !window.ShouldClose() {
		glfw.PollEvents()

		fbw, fbh := window.GetFramebufferSize()
		ww, wh := window.GetSize()
		gl.Viewport(0, 0, int32(fbw), int32(fbh))
		ctx.Resize(ww, wh)
		if ww > 0 {
			ctx.SetPixelRatio(float32(fbw) / float32(ww))
		}

		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := drawScene(canvas, star); err != nil {
			return fmt.Errorf("draw: %w", err)
		}

		if saveShot {
			saveShot = false
			if err := saveScreenshot(ctx, "screenshot.png"); err != nil {
				return fmt.Errorf("screenshot: %w", err)
			}
		}

		window.SwapBuffers()
	}

	return nil
}

func drawScene(c *shapes.Canvas, star shapes.PointList) error {
	// Ground and sky accents.
	if err := c.RectFilledLBWH(0, 0, windowWidth, 120, shapes.FromColor(colornames.Darkolivegreen)); err != nil {
		return err
	}
	if err := c.CircleFilled(120, 480, 50, shapes.FromColor(colornames.Gold)); err != nil {
		return err
	}
	if err := c.CircleOutline(120, 480, 62, shapes.FromColor(colornames.Orange), shapes.Border(4)); err != nil {
		return err
	}

	// A pie slice and a rainbow.
	if err := c.ArcFilled(320, 460, 120, 120, shapes.FromColor(colornames.Crimson), 30, 330); err != nil {
		return err
	}
	if err := c.ArcOutline(420, 120, 360, 240, shapes.FromColor(colornames.Skyblue), 0, 180, shapes.Border(10)); err != nil {
		return err
	}
	if err := c.ParabolaOutline(500, 120, 700, 150, shapes.FromColor(colornames.Mediumpurple), shapes.Border(6)); err != nil {
		return err
	}

	// A tilted house.
	if err := c.RectFilledWith(shapes.FromColor(colornames.Saddlebrown),
		shapes.CenterX(180), shapes.Bottom(120), shapes.Width(120), shapes.Height(90)); err != nil {
		return err
	}
	if err := c.TriangleFilled(110, 210, 250, 210, 180, 280, shapes.FromColor(colornames.Firebrick)); err != nil {
		return err
	}
	if err := c.RectOutlineLBWH(150, 140, 34, 50, shapes.White, shapes.Border(3)); err != nil {
		return err
	}

	// A star polygon, filled and outlined.
	if err := c.PolygonFilled(star, shapes.FromColor(colornames.Lightyellow)); err != nil {
		return err
	}
	if err := c.PolygonOutline(star, shapes.FromColor(colornames.Goldenrod), shapes.LineWidth(3)); err != nil {
		return err
	}

	// Lines and points.
	if err := c.Line(40, 560, 760, 560, shapes.LightGray, shapes.LineWidth(2)); err != nil {
		return err
	}
	if err := c.LineStrip(shapes.PointList{
		{X: 40, Y: 330}, {X: 120, Y: 390}, {X: 200, Y: 330}, {X: 280, Y: 390},
	}, shapes.FromColor(colornames.Tomato), shapes.LineWidth(5)); err != nil {
		return err
	}
	if err := c.Points(shapes.PointList{
		{X: 700, Y: 500}, {X: 720, Y: 530}, {X: 745, Y: 510}, {X: 760, Y: 545},
	}, shapes.White, 4); err != nil {
		return err
	}

	// An ellipse with a tilt.
	return c.EllipseOutline(560, 420, 180, 90, shapes.FromColor(colornames.Turquoise),
		shapes.Border(5), shapes.Tilt(20))
}

func saveScreenshot(fb shapes.Framebuffer, path string) error {
	img, err := shapes.Image(fb, 0, 0, 0, 0)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
