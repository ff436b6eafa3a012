package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/shapes"
)

// familyKind selects how a program packs the parameter record into its
// uniforms.
type familyKind int

const (
	familyLine familyKind = iota
	familyEllipseFilled
	familyEllipseOutline
	familyRectFilled
	familyGeneric
)

// program implements shapes.Program for one family.
type program struct {
	id   uint32
	kind familyKind

	// proj points at the owning context's projection matrix so resizes
	// reach every family.
	proj *[16]float32

	projLoc      int32
	colorLoc     int32
	shapeLoc     int32
	segmentsLoc  int32
	lineWidthLoc int32
}

func newProgram(kind familyKind, vertexSrc, geometrySrc, fragmentSrc string) (*program, error) {
	id, err := createShaderProgram(vertexSrc, geometrySrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &program{
		id:           id,
		kind:         kind,
		projLoc:      gl.GetUniformLocation(id, gl.Str("projection\x00")),
		colorLoc:     gl.GetUniformLocation(id, gl.Str("color\x00")),
		shapeLoc:     gl.GetUniformLocation(id, gl.Str("shape\x00")),
		segmentsLoc:  gl.GetUniformLocation(id, gl.Str("segments\x00")),
		lineWidthLoc: gl.GetUniformLocation(id, gl.Str("lineWidth\x00")),
	}, nil
}

// SetParams uploads the fields this family's shaders declare. Ellipse
// shaders take half extents, the rectangle shader full extents.
func (p *program) SetParams(dp shapes.DrawParams) {
	gl.UseProgram(p.id)
	if p.colorLoc >= 0 {
		gl.Uniform4f(p.colorLoc, dp.Color[0], dp.Color[1], dp.Color[2], dp.Color[3])
	}
	switch p.kind {
	case familyLine:
		gl.Uniform1f(p.lineWidthLoc, dp.LineWidth)
	case familyEllipseFilled:
		gl.Uniform3f(p.shapeLoc, dp.Width/2, dp.Height/2, dp.Tilt)
		gl.Uniform1i(p.segmentsLoc, dp.Segments)
	case familyEllipseOutline:
		gl.Uniform4f(p.shapeLoc, dp.Width/2, dp.Height/2, dp.Tilt, dp.Border)
		gl.Uniform1i(p.segmentsLoc, dp.Segments)
	case familyRectFilled:
		gl.Uniform3f(p.shapeLoc, dp.Width, dp.Height, dp.Tilt)
	}
}

// uploadProjection refreshes the projection uniform. Draws call it every
// time, so host GL code touching program state between draws cannot
// leave a stale matrix behind.
func (p *program) uploadProjection() {
	if p.projLoc >= 0 && p.proj != nil {
		gl.UniformMatrix4fv(p.projLoc, 1, false, &p.proj[0])
	}
}

// createShaderProgram compiles and links a shader program. An empty
// geometry source links a two-stage program.
func createShaderProgram(vertexSrc, geometrySrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return 0, fmt.Errorf("vertex shader compilation failed: %s", err)
	}
	defer gl.DeleteShader(vertexShader)

	var geometryShader uint32
	if geometrySrc != "" {
		geometryShader, err = compileShader(gl.GEOMETRY_SHADER, geometrySrc)
		if err != nil {
			return 0, fmt.Errorf("geometry shader compilation failed: %s", err)
		}
		defer gl.DeleteShader(geometryShader)
	}

	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		return 0, fmt.Errorf("fragment shader compilation failed: %s", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	if geometryShader != 0 {
		gl.AttachShader(program, geometryShader)
	}
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}
	return program, nil
}

// compileShader compiles one shader stage, returning the info log as the
// error on failure.
func compileShader(stage uint32, source string) (uint32, error) {
	shader := gl.CreateShader(stage)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s", string(log))
	}
	return shader, nil
}
