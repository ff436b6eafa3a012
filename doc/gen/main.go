// Command gen renders every draw operation with sample geometry, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image/jpeg"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/colornames"

	"github.com/go-theft-auto/shapes"
	"github.com/go-theft-auto/shapes/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single draw-operation screenshot to capture.
type screenshot struct {
	name   string
	width  int
	height int
	draw   func(c *shapes.Canvas) error
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	ctx, err := opengl.New(800, 600)
	if err != nil {
		return fmt.Errorf("rendering context: %w", err)
	}
	defer ctx.Delete()

	fbWidth, _ := window.GetFramebufferSize()
	ctx.SetPixelRatio(float32(fbWidth) / 800)

	canvas, err := shapes.New(ctx.Families())
	if err != nil {
		return fmt.Errorf("canvas: %w", err)
	}

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(ctx, canvas, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(ctx *opengl.Context, canvas *shapes.Canvas, s screenshot, outDir string) error {
	// Only update the projection. Do NOT call window.SetSize, GLFW
	// processes resizes asynchronously. The hidden window stays at
	// 800x600, larger than every screenshot, and the viewport crops a
	// corner of it.
	ctx.Resize(s.width, s.height)

	ratio := ctx.PixelRatio()
	gl.Viewport(0, 0, int32(float32(s.width)*ratio), int32(float32(s.height)*ratio))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if err := s.draw(canvas); err != nil {
		return err
	}

	img, err := shapes.Image(ctx, 0, 0, s.width, s.height)
	if err != nil {
		return err
	}

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of all draw-operation screenshots to
// generate.
func buildScreenshots() []screenshot {
	return []screenshot{
		{
			name: "line", width: 400, height: 200,
			draw: func(c *shapes.Canvas) error {
				if err := c.Line(20, 30, 380, 170, shapes.FromColor(colornames.Orange), shapes.LineWidth(3)); err != nil {
					return err
				}
				return c.Line(20, 170, 380, 30, shapes.FromColor(colornames.Skyblue))
			},
		},
		{
			name: "lines", width: 400, height: 200,
			draw: func(c *shapes.Canvas) error {
				pts := shapes.PointList{
					{X: 40, Y: 40}, {X: 120, Y: 160},
					{X: 160, Y: 40}, {X: 240, Y: 160},
					{X: 280, Y: 40}, {X: 360, Y: 160},
				}
				return c.Lines(pts, shapes.FromColor(colornames.Lightgreen), shapes.LineWidth(2))
			},
		},
		{
			name: "line_strip", width: 400, height: 200,
			draw: func(c *shapes.Canvas) error {
				pts := make(shapes.PointList, 24)
				for i := range pts {
					x := float32(i) / float32(len(pts)-1)
					pts[i] = shapes.Pt(20+x*360, 100+70*float32(math.Sin(float64(x)*4*math.Pi)))
				}
				return c.LineStrip(pts, shapes.FromColor(colornames.Gold), shapes.LineWidth(4))
			},
		},
		{
			name: "points", width: 400, height: 200,
			draw: func(c *shapes.Canvas) error {
				pts := make(shapes.PointList, 0, 11*5)
				for row := 0; row < 5; row++ {
					for col := 0; col < 11; col++ {
						pts = append(pts, shapes.Pt(40+float32(col)*32, 40+float32(row)*30))
					}
				}
				return c.Points(pts, shapes.FromColor(colornames.Violet), 5)
			},
		},
		{
			name: "circle_filled", width: 300, height: 200,
			draw: func(c *shapes.Canvas) error {
				if err := c.CircleFilled(110, 100, 70, shapes.FromColor(colornames.Tomato)); err != nil {
					return err
				}
				return c.CircleFilled(210, 100, 45, shapes.FromColor(colornames.Steelblue).WithAlpha(200))
			},
		},
		{
			name: "circle_outline", width: 300, height: 200,
			draw: func(c *shapes.Canvas) error {
				if err := c.CircleOutline(150, 100, 70, shapes.FromColor(colornames.Aquamarine), shapes.Border(6)); err != nil {
					return err
				}
				return c.CircleOutline(150, 100, 40, shapes.FromColor(colornames.Khaki))
			},
		},
		{
			name: "ellipse", width: 400, height: 200,
			draw: func(c *shapes.Canvas) error {
				if err := c.EllipseFilled(130, 100, 180, 90, shapes.FromColor(colornames.Mediumpurple), shapes.Tilt(20)); err != nil {
					return err
				}
				return c.EllipseOutline(290, 100, 160, 80, shapes.FromColor(colornames.Palegreen),
					shapes.Border(4), shapes.Tilt(-20))
			},
		},
		{
			name: "arc", width: 400, height: 200,
			draw: func(c *shapes.Canvas) error {
				if err := c.ArcFilled(120, 60, 160, 160, shapes.FromColor(colornames.Coral), 30, 150); err != nil {
					return err
				}
				return c.ArcOutline(300, 60, 160, 160, shapes.FromColor(colornames.Lightseagreen), 0, 180,
					shapes.Border(6))
			},
		},
		{
			name: "parabola", width: 400, height: 200,
			draw: func(c *shapes.Canvas) error {
				if err := c.ParabolaFilled(40, 30, 200, 120, shapes.FromColor(colornames.Goldenrod)); err != nil {
					return err
				}
				return c.ParabolaOutline(220, 30, 380, 120, shapes.FromColor(colornames.Plum), shapes.Border(4))
			},
		},
		{
			name: "rect_filled", width: 400, height: 200,
			draw: func(c *shapes.Canvas) error {
				if err := c.RectFilledLBWH(30, 40, 150, 120, shapes.FromColor(colornames.Seagreen)); err != nil {
					return err
				}
				return c.RectFilledWith(shapes.FromColor(colornames.Slateblue),
					shapes.CenterX(290), shapes.CenterY(100), shapes.Width(140), shapes.Height(90))
			},
		},
		{
			name: "rect_outline", width: 400, height: 200,
			draw: func(c *shapes.Canvas) error {
				if err := c.RectOutlineLBWH(30, 40, 150, 120, shapes.FromColor(colornames.Orangered), shapes.Border(5)); err != nil {
					return err
				}
				return c.RectOutlineLBWH(220, 40, 150, 120, shapes.FromColor(colornames.Powderblue),
					shapes.Border(3), shapes.Tilt(10))
			},
		},
		{
			name: "triangle", width: 300, height: 200,
			draw: func(c *shapes.Canvas) error {
				if err := c.TriangleFilled(40, 40, 140, 40, 90, 160, shapes.FromColor(colornames.Firebrick)); err != nil {
					return err
				}
				return c.TriangleOutline(160, 40, 260, 40, 210, 160, shapes.FromColor(colornames.Lightsalmon),
					shapes.LineWidth(3))
			},
		},
		{
			name: "polygon", width: 400, height: 200,
			draw: func(c *shapes.Canvas) error {
				star := make(shapes.PointList, 10)
				for i := range star {
					angle := 2*math.Pi*float64(i)/float64(len(star)) + math.Pi/2
					radius := 85.0
					if i%2 == 1 {
						radius = 35
					}
					star[i] = shapes.Pt(
						110+float32(radius*math.Cos(angle)),
						100+float32(radius*math.Sin(angle)),
					)
				}
				if err := c.PolygonFilled(star, shapes.FromColor(colornames.Gold)); err != nil {
					return err
				}
				hex := make(shapes.PointList, 6)
				for i := range hex {
					angle := 2 * math.Pi * float64(i) / 6
					hex[i] = shapes.Pt(
						290+80*float32(math.Cos(angle)),
						100+80*float32(math.Sin(angle)),
					)
				}
				return c.PolygonOutline(hex, shapes.FromColor(colornames.Turquoise), shapes.LineWidth(4))
			},
		},
	}
}
