// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"strings"
	"unsafe"

	"go.uber.org/zap"

	"github.com/Faultbox/strider/internal/logger"
	"github.com/Faultbox/strider/pkg/math"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	// Shader program for solid-color geometry
	shaderProgram uint32
	viewProjLoc   int32
	modelLoc      int32
	colorLoc      int32

	// Unit cube VAO/VBO, scaled per draw call
	cubeVAO uint32
	cubeVBO uint32

	viewProj math.Mat4
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		viewProj: math.Identity(),
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Log OpenGL info
	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	// Setup default OpenGL state
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0) // Dark blue-gray background
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	// Create shader program
	var err error
	r.shaderProgram, err = r.createShaderProgram()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.viewProjLoc = gl.GetUniformLocation(r.shaderProgram, gl.Str("uViewProj\x00"))
	r.modelLoc = gl.GetUniformLocation(r.shaderProgram, gl.Str("uModel\x00"))
	r.colorLoc = gl.GetUniformLocation(r.shaderProgram, gl.Str("uColor\x00"))

	if err := r.createCube(); err != nil {
		return nil, fmt.Errorf("failed to create cube geometry: %w", err)
	}

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.cubeVAO != 0 {
		gl.DeleteVertexArrays(1, &r.cubeVAO)
	}
	if r.cubeVBO != 0 {
		gl.DeleteBuffers(1, &r.cubeVBO)
	}
	if r.shaderProgram != 0 {
		gl.DeleteProgram(r.shaderProgram)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// SetCamera sets the view and projection matrices for the frame.
func (r *Renderer) SetCamera(view, projection math.Mat4) {
	r.viewProj = projection.Mul(view)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	// Nothing to do for now - batched draws would be flushed here
}

// DrawBox draws an axis-aligned box between min and max in the given color.
func (r *Renderer) DrawBox(min, max math.Vec3, color [3]float32) {
	center := min.Add(max).Scale(0.5)
	size := max.Sub(min)
	model := math.Translate(center.X, center.Y, center.Z).
		Mul(math.Scale(size.X, size.Y, size.Z))

	gl.UseProgram(r.shaderProgram)
	gl.UniformMatrix4fv(r.viewProjLoc, 1, false, r.viewProj.Ptr())
	gl.UniformMatrix4fv(r.modelLoc, 1, false, model.Ptr())
	gl.Uniform3f(r.colorLoc, color[0], color[1], color[2])

	gl.BindVertexArray(r.cubeVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
	gl.BindVertexArray(0)
}

// createShaderProgram creates the solid-color shader program.
func (r *Renderer) createShaderProgram() (uint32, error) {
	// Vertex shader - transforms vertices
	vertexShaderSource := `
		#version 410 core

		layout (location = 0) in vec3 aPos;
		layout (location = 1) in vec3 aNormal;

		uniform mat4 uViewProj;
		uniform mat4 uModel;

		out vec3 vNormal;

		void main() {
			gl_Position = uViewProj * uModel * vec4(aPos, 1.0);
			vNormal = aNormal;
		}
	` + "\x00"

	// Fragment shader - flat color with a fixed directional light
	fragmentShaderSource := `
		#version 410 core

		in vec3 vNormal;
		out vec4 FragColor;

		uniform vec3 uColor;

		void main() {
			vec3 lightDir = normalize(vec3(0.4, 1.0, 0.3));
			float diffuse = max(dot(normalize(vNormal), lightDir), 0.0);
			FragColor = vec4(uColor * (0.35 + 0.65 * diffuse), 1.0);
		}
	` + "\x00"

	// Compile vertex shader
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	// Compile fragment shader
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	// Link program
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	// Check link status
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %s", log)
	}

	logger.Debug("shader program created", zap.Uint32("program", program))
	return program, nil
}

// compileShader compiles a shader from source.
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	// Check compile status
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %s", log)
	}

	return shader, nil
}

// createCube creates a unit cube centered at the origin.
func (r *Renderer) createCube() error {
	// Position (x, y, z) + normal (x, y, z), 6 faces, 2 triangles each
	vertices := []float32{
		// -Z face
		-0.5, -0.5, -0.5, 0, 0, -1,
		0.5, 0.5, -0.5, 0, 0, -1,
		0.5, -0.5, -0.5, 0, 0, -1,
		-0.5, -0.5, -0.5, 0, 0, -1,
		-0.5, 0.5, -0.5, 0, 0, -1,
		0.5, 0.5, -0.5, 0, 0, -1,
		// +Z face
		-0.5, -0.5, 0.5, 0, 0, 1,
		0.5, -0.5, 0.5, 0, 0, 1,
		0.5, 0.5, 0.5, 0, 0, 1,
		-0.5, -0.5, 0.5, 0, 0, 1,
		0.5, 0.5, 0.5, 0, 0, 1,
		-0.5, 0.5, 0.5, 0, 0, 1,
		// -X face
		-0.5, -0.5, -0.5, -1, 0, 0,
		-0.5, -0.5, 0.5, -1, 0, 0,
		-0.5, 0.5, 0.5, -1, 0, 0,
		-0.5, -0.5, -0.5, -1, 0, 0,
		-0.5, 0.5, 0.5, -1, 0, 0,
		-0.5, 0.5, -0.5, -1, 0, 0,
		// +X face
		0.5, -0.5, -0.5, 1, 0, 0,
		0.5, 0.5, 0.5, 1, 0, 0,
		0.5, -0.5, 0.5, 1, 0, 0,
		0.5, -0.5, -0.5, 1, 0, 0,
		0.5, 0.5, -0.5, 1, 0, 0,
		0.5, 0.5, 0.5, 1, 0, 0,
		// -Y face
		-0.5, -0.5, -0.5, 0, -1, 0,
		0.5, -0.5, -0.5, 0, -1, 0,
		0.5, -0.5, 0.5, 0, -1, 0,
		-0.5, -0.5, -0.5, 0, -1, 0,
		0.5, -0.5, 0.5, 0, -1, 0,
		-0.5, -0.5, 0.5, 0, -1, 0,
		// +Y face
		-0.5, 0.5, -0.5, 0, 1, 0,
		0.5, 0.5, 0.5, 0, 1, 0,
		0.5, 0.5, -0.5, 0, 1, 0,
		-0.5, 0.5, -0.5, 0, 1, 0,
		-0.5, 0.5, 0.5, 0, 1, 0,
		0.5, 0.5, 0.5, 0, 1, 0,
	}

	// Create VAO (Vertex Array Object)
	gl.GenVertexArrays(1, &r.cubeVAO)
	gl.BindVertexArray(r.cubeVAO)

	// Create VBO (Vertex Buffer Object)
	gl.GenBuffers(1, &r.cubeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, nil)
	gl.EnableVertexAttribArray(0)

	// Normal attribute (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	// Unbind
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("cube geometry created",
		zap.Uint32("vao", r.cubeVAO),
		zap.Uint32("vbo", r.cubeVBO),
	)
	return nil
}
