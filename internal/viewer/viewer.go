// Package viewer runs the interactive ocean window: it animates the surface,
// draws it as tiled triangle strips and applies key and mouse input.
package viewer

import (
	"fmt"
	"os"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/smarkuck/Tessendorf-Waves/internal/config"
	"github.com/smarkuck/Tessendorf-Waves/internal/engine/audio"
	"github.com/smarkuck/Tessendorf-Waves/internal/engine/camera"
	"github.com/smarkuck/Tessendorf-Waves/internal/engine/debug"
	"github.com/smarkuck/Tessendorf-Waves/internal/engine/input"
	"github.com/smarkuck/Tessendorf-Waves/internal/engine/lighting"
	"github.com/smarkuck/Tessendorf-Waves/internal/engine/scene"
	"github.com/smarkuck/Tessendorf-Waves/internal/engine/window"
	"github.com/smarkuck/Tessendorf-Waves/internal/viewer/controls"
	"github.com/smarkuck/Tessendorf-Waves/pkg/ocean"
)

const (
	title     = "Tessendorf waves"
	fpsWindow = 10 // Frames per FPS measurement
)

// backgroundOff is the clear color when the sky is switched off.
var backgroundOff = mgl32.Vec3{1, 1, 1}

// Viewer owns the window, the ocean instance and everything drawn each frame.
type Viewer struct {
	cfg *config.Config
	log *zap.Logger

	win      *window.Window
	input    *input.Input
	renderer *scene.OceanRenderer
	audio    *audio.Manager
	shots    *debug.ScreenshotCapture

	cam   *camera.FlyCamera
	state controls.State

	ocean *ocean.Ocean
	mesh  []float32

	width, height int // Drawable size in pixels
	start         time.Time
	fps           *controls.FPSCounter
	wantShot      bool
}

// New opens the window, compiles the renderer and builds the first ocean.
func New(cfg *config.Config, log *zap.Logger) (*Viewer, error) {
	v := &Viewer{
		cfg:   cfg,
		log:   log,
		input: input.New(),
		shots: debug.NewScreenshotCapture("screenshots", "ocean"),
		state: controls.State{
			Params:   cfg.Ocean.Params(),
			Sky:      true,
			LineMode: cfg.Viewer.LineMode,
			Sound:    cfg.Audio.Enabled,
		},
	}

	vc := cfg.Viewer
	v.cam = camera.NewFlyCamera(mgl32.Vec3(vc.Start), vc.PlayerSpeed, vc.MouseSensitivity, vc.CameraFar)
	v.cam.FOV = vc.FOV

	win, err := window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	}, log.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	v.win = win

	if err := gl.Init(); err != nil {
		win.Close()
		return nil, fmt.Errorf("OpenGL init: %w", err)
	}
	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	v.renderer, err = scene.NewOceanRenderer(lighting.SunDirection(vc.SunAzimuth, vc.SunElevation))
	if err != nil {
		win.Close()
		return nil, err
	}

	if err := v.rebuild(); err != nil {
		v.renderer.Destroy()
		win.Close()
		return nil, err
	}

	gl.Enable(gl.DEPTH_TEST)
	v.resize()
	win.CaptureMouse(true)

	v.initAudio()
	return v, nil
}

// initAudio starts the ambient loop. Failures only cost the sound.
func (v *Viewer) initAudio() {
	ac := v.cfg.Audio
	if ac.AmbientPath == "" {
		return
	}

	data, err := os.ReadFile(ac.AmbientPath)
	if err != nil {
		v.log.Warn("ambient sound unavailable", zap.String("path", ac.AmbientPath), zap.Error(err))
		return
	}

	m := audio.New(ac.Volume)
	if err := m.Init(); err != nil {
		v.log.Warn("audio init failed", zap.Error(err))
		return
	}
	m.SetPaused(!v.state.Sound)
	if err := m.PlayLoop(data, ac.AmbientPath); err != nil {
		v.log.Warn("ambient sound failed", zap.String("path", ac.AmbientPath), zap.Error(err))
		m.Close()
		return
	}
	v.audio = m
}

// rebuild replaces the ocean with one built from the current parameters.
// On failure the previous ocean stays in place.
func (v *Viewer) rebuild() error {
	next, err := ocean.New(v.state.Params, v.cfg.Ocean.Options()...)
	if err != nil {
		return fmt.Errorf("build ocean: %w", err)
	}

	if v.ocean != nil {
		v.ocean.Close()
	}
	v.ocean = next
	v.mesh, _ = next.GenerateMesh()
	v.renderer.SetLayout(next.Strips(), next.StripLength())

	p := next.Params()
	fields := []zap.Field{
		zap.Int("samples_x", p.SamplesX),
		zap.Int("samples_y", p.SamplesY),
		zap.Float64("wind_speed", p.WindSpeed),
		zap.Float64("amplitude", p.Amplitude),
		zap.Int("vertices", next.VertexCount()),
	}
	if seed, ok := next.Seed(); ok {
		fields = append(fields, zap.Uint64("seed", seed))
	}
	v.log.Info("ocean built", fields...)
	return nil
}

func (v *Viewer) resize() {
	v.width, v.height = v.win.DrawableSize()
	gl.Viewport(0, 0, int32(v.width), int32(v.height))
}

// Run drives frames until the window closes or Esc is pressed.
func (v *Viewer) Run() error {
	v.start = time.Now()
	v.fps = controls.NewFPSCounter(fpsWindow, v.start)
	budget := controls.FrameBudget(v.cfg.Viewer.FPSLimit)

	for {
		frameStart := time.Now()

		if quit := v.handleInput(); quit {
			return nil
		}
		if err := v.frame(); err != nil {
			return err
		}
		if v.wantShot {
			v.screenshot()
			v.wantShot = false
		}
		v.win.SwapBuffers()

		if fps, ok := v.fps.Tick(time.Now()); ok {
			v.win.SetTitle(fmt.Sprintf("%s - %.0f fps", title, fps))
			v.log.Debug("frame rate", zap.Float64("fps", fps))
		}

		if spent := time.Since(frameStart); spent < budget {
			sdl.Delay(uint32((budget - spent) / time.Millisecond))
		}
	}
}

// handleInput applies this frame's events. It returns true on quit.
func (v *Viewer) handleInput() bool {
	quit := v.input.Update()

	for _, e := range v.input.Events() {
		switch e.Type {
		case input.EventWindowResize:
			v.resize()

		case input.EventMouseMove:
			v.cam.Rotate(float32(e.RelX), float32(e.RelY))

		case input.EventKeyDown:
			action, ok := keymap[e.Key]
			if !ok || (e.Repeat && !action.Repeatable()) {
				continue
			}
			if v.apply(action) {
				quit = true
			}
		}
	}
	return quit
}

// apply runs one action and its side effects. It returns true on quit.
func (v *Viewer) apply(action controls.Action) bool {
	prev := v.state.Params
	effect := v.state.Apply(action, v.cam)

	if effect.Has(controls.EffectRebuild) {
		if err := v.rebuild(); err != nil {
			v.log.Error("rebuild rejected", zap.Stringer("action", action), zap.Error(err))
			v.state.Params = prev
		}
	}
	if effect.Has(controls.EffectProjection) {
		v.log.Debug("view range changed", zap.Float32("far", v.cam.Far))
	}
	if effect.Has(controls.EffectSound) && v.audio != nil {
		v.audio.SetPaused(!v.state.Sound)
	}
	if effect.Has(controls.EffectScreenshot) {
		v.wantShot = true
	}
	return effect.Has(controls.EffectQuit)
}

// frame animates the surface and draws every tile.
func (v *Viewer) frame() error {
	t := v.cfg.Viewer.TimeScale * time.Since(v.start).Seconds()
	if err := v.ocean.SetHeightsAtTime(v.mesh, t); err != nil {
		return fmt.Errorf("animate: %w", err)
	}
	normals, err := v.ocean.GenerateNormals(v.mesh)
	if err != nil {
		return fmt.Errorf("normals: %w", err)
	}
	v.renderer.Upload(v.mesh, normals)

	bg := backgroundOff
	if v.state.Sky {
		bg = v.renderer.SkyColor
	}
	gl.ClearColor(bg[0], bg[1], bg[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	aspect := float32(1)
	if v.height > 0 {
		aspect = float32(v.width) / float32(v.height)
	}

	p := v.ocean.Params()
	models := camera.TileModels(v.cfg.Viewer.Tiles, float32(p.DomainWidth), float32(p.DomainLength))

	v.renderer.LineMode = v.state.LineMode
	v.renderer.Render(v.cam.ViewMatrix(), v.cam.ProjectionMatrix(aspect), v.cam.Position(), models)
	return nil
}

func (v *Viewer) screenshot() {
	w, h := v.width, v.height
	if w <= 0 || h <= 0 {
		return
	}

	pixels := make([]byte, w*h*4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	path, err := v.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases the ocean, GL resources, audio and the window.
func (v *Viewer) Close() {
	if v.audio != nil {
		v.audio.Close()
	}
	if v.ocean != nil {
		v.ocean.Close()
	}
	v.renderer.Destroy()
	v.win.Close()
}
