// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command gl2ddemo draws a textured, vertex-coloured quad.
//
// With --headless it runs against the in-memory platform for a fixed number
// of frames, which needs no display.
package main

import (
	"embed"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/gl2d"
	"github.com/gogpu/gl2d/driver"
	"github.com/gogpu/gl2d/headless"
	_ "github.com/gogpu/gl2d/platform/glfwplatform"
	"github.com/gogpu/gl2d/shader"
	"github.com/gogpu/gl2d/vertex"
)

//go:embed shaders
var shaderFS embed.FS

// rectVertex is the vertex record of the quad.
type rectVertex struct {
	Position  f32.Vec2
	TexCoords f32.Vec2
	Color     f32.Vec4
}

// rectLayout fails at startup if rectVertex stops being a valid record.
var rectLayout = vertex.MustLayoutOf[rectVertex]()

var quadVertices = []rectVertex{
	{Position: f32.Vec2{-0.5, 0.5}, TexCoords: f32.Vec2{0, 1}, Color: f32.Vec4{0, 1, 1, 1}},
	{Position: f32.Vec2{0.5, 0.5}, TexCoords: f32.Vec2{1, 1}, Color: f32.Vec4{0.5, 1, 0.7, 1}},
	{Position: f32.Vec2{0.5, -0.5}, TexCoords: f32.Vec2{1, 0}, Color: f32.Vec4{1, 1, 0, 1}},
	{Position: f32.Vec2{-0.5, -0.5}, TexCoords: f32.Vec2{0, 0}, Color: f32.Vec4{1, 0, 1, 1}},
}

var quadIndices = []uint16{
	0, 1, 2,
	0, 2, 3,
}

var rootCmd = &cobra.Command{
	Use:   "gl2ddemo",
	Short: "Draw a textured, vertex-coloured quad",
	Long: `gl2ddemo opens a window and draws a textured quad with gl2d.

Configuration is read from a TOML or YAML file (--config); flags override it.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDemo,
}

func init() {
	rootCmd.Version = gl2d.Version
	rootCmd.Flags().String("config", "", "config file (.toml, .yaml or .yml)")
	rootCmd.Flags().Bool("headless", false, "run on the in-memory platform")
	rootCmd.Flags().Int("frames", 0, "stop after this many frames (0: until the window closes; headless default 3)")
	rootCmd.Flags().String("texture", "", "texture image (PNG, JPEG, BMP or WebP); overrides the config")
	rootCmd.Flags().BoolP("verbose", "v", false, "log debug messages")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gl2ddemo:", err)
		os.Exit(1)
	}
}

func runDemo(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	headlessMode, _ := flags.GetBool("headless")
	frames, _ := flags.GetInt("frames")
	texture, _ := flags.GetString("texture")
	verbose, _ := flags.GetBool("verbose")

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	gl2d.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if texture != "" {
		cfg.Texture.Path = texture
	}

	var platform gl2d.Platform
	if headlessMode {
		platform = headless.NewPlatform()
		if frames == 0 {
			frames = 3
		}
	} else {
		platform = gl2d.DefaultPlatform()
	}
	if platform == nil {
		return errors.New("no windowing platform available")
	}

	n, err := run(gl2d.NewContext(platform), cfg, frames)
	if err != nil {
		return err
	}
	gl2d.Logger().Info("gl2ddemo: done", "frames", n, "platform", platform.Name())
	return nil
}

// run opens the window and renders until it should close or maxFrames
// frames have been drawn (0 means no limit). It returns the frame count.
func run(ctx *gl2d.Context, cfg config, maxFrames int) (int, error) {
	win, err := ctx.NewWindow(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height,
		gl2d.WithHints(cfg.Window.hints()),
		gl2d.WithVSync(cfg.Window.VSync))
	if err != nil {
		return 0, err
	}
	defer win.Close()

	d := win.Driver()
	gl2d.Logger().Info("gl2ddemo: context ready", "version", d.Version(), "platform", ctx.Platform().Name())

	va := gl2d.NewVertexArray(d)
	defer va.Close()
	vb := gl2d.NewVertexBuffer(d, quadVertices, driver.StaticDraw)
	defer vb.Close()
	ib := gl2d.NewIndexBuffer(d, quadIndices, driver.StaticDraw)
	defer ib.Close()
	rectLayout.Bind(d)

	vs, fs, err := shaderSources(cfg.Shaders, ctx.Platform().Name() == headless.Name)
	if err != nil {
		return 0, err
	}
	prog, err := shader.Build(d, vs, fs)
	if err != nil {
		return 0, err
	}
	defer prog.Close()

	tex, err := loadTexture(d, cfg.Texture.Path)
	if err != nil {
		return 0, err
	}
	defer tex.Close()

	d.ClearColor(cfg.Clear[0], cfg.Clear[1], cfg.Clear[2], cfg.Clear[3])

	frames := 0
	for !win.ShouldClose() && (maxFrames == 0 || frames < maxFrames) {
		d.Clear(driver.ColorBufferBit)

		prog.Use()
		prog.SetFloat("time", float32(ctx.Time()))
		prog.SetInt("sampler", 0)
		tex.Bind(0)
		va.Bind()
		ib.Draw(driver.Triangles)

		win.SwapBuffers()
		win.PollEvents()
		frames++
	}
	return frames, nil
}

// shaderSources returns the configured shader files, or the built-in GLSL
// sources (WGSL on the headless platform). Built-in WGSL is checked against
// rectLayout.
func shaderSources(cfg shaderConfig, wgsl bool) (vertexSrc, fragmentSrc shader.Source, err error) {
	if cfg.Vertex != "" {
		return shader.File(cfg.Vertex), shader.File(cfg.Fragment), nil
	}
	vsName, fsName := "shaders/basic.vert", "shaders/basic.frag"
	if wgsl {
		vsName, fsName = "shaders/basic_vert.wgsl", "shaders/basic_frag.wgsl"
	}
	vsText, err := shaderFS.ReadFile(vsName)
	if err != nil {
		return shader.Source{}, shader.Source{}, fmt.Errorf("built-in shader: %w", err)
	}
	fsText, err := shaderFS.ReadFile(fsName)
	if err != nil {
		return shader.Source{}, shader.Source{}, fmt.Errorf("built-in shader: %w", err)
	}
	if wgsl {
		if err := rectLayout.CheckWGSL(string(vsText)); err != nil {
			return shader.Source{}, shader.Source{}, fmt.Errorf("%s: %w", vsName, err)
		}
	}
	return shader.Inline(string(vsText)), shader.Inline(string(fsText)), nil
}

// loadTexture loads path, or generates a checkerboard when path is empty.
func loadTexture(d driver.Driver, path string) (*gl2d.Texture2D, error) {
	if path != "" {
		return gl2d.LoadTexture2D(d, path)
	}
	return gl2d.NewTexture2D(d, checkerboard(64, 8), gl2d.WithFilter(driver.Nearest, driver.Nearest)), nil
}

func checkerboard(size, cell int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	light := color.RGBA{R: 240, G: 240, B: 240, A: 255}
	dark := color.RGBA{R: 60, G: 60, B: 60, A: 255}
	for y := range size {
		for x := range size {
			c := dark
			if (x/cell+y/cell)%2 == 0 {
				c = light
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
