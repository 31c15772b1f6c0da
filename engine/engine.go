package engine

import (
	"fmt"

	"github.com/spaghettifunk/orbitview/engine/components"
	"github.com/spaghettifunk/orbitview/engine/config"
	"github.com/spaghettifunk/orbitview/engine/core"
	"github.com/spaghettifunk/orbitview/engine/math"
	"github.com/spaghettifunk/orbitview/engine/systems"
	"golang.org/x/image/math/f32"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

type ApplicationConfig struct {
	// Path of the TOML config. Empty means defaults and no hot reload.
	ConfigPath string
	// Name of the camera driven by input.
	CameraName string
	// Maximum number of named cameras.
	MaxCameraCount uint16
}

// FrameMatrices are the per frame outputs, owned by the engine and reused.
type FrameMatrices struct {
	Projection f32.Mat4
	View       f32.Mat4
}

type Engine struct {
	currentStage Stage
	appConfig    *ApplicationConfig
	config       *config.Config

	Events     *core.EventSystem
	Input      *core.InputState
	Cameras    *systems.CameraSystem
	Controller *systems.OrbitController

	camera  *components.OrbitCamera
	watcher *config.Watcher
	frame   FrameMatrices
}

func New(appConfig *ApplicationConfig) (*Engine, error) {
	cfg := config.Default()
	if appConfig.ConfigPath != "" {
		loaded, err := config.Load(appConfig.ConfigPath)
		if err != nil {
			core.LogError(err.Error())
			return nil, err
		}
		cfg = loaded
	}
	core.SetLogLevel(cfg.Level())

	if appConfig.CameraName == "" {
		appConfig.CameraName = components.DEFAULT_CAMERA_NAME
	}
	if appConfig.MaxCameraCount == 0 {
		appConfig.MaxCameraCount = 8
	}

	return &Engine{
		currentStage: EngineStageUninitialized,
		appConfig:    appConfig,
		config:       cfg,
	}, nil
}

func (e *Engine) Initialize() error {
	if e.currentStage != EngineStageUninitialized {
		return fmt.Errorf("engine already initialized")
	}

	cameras, err := systems.NewCameraSystem(&systems.CameraSystemConfig{
		MaxCameraCount: e.appConfig.MaxCameraCount,
		Camera:         e.config.Camera,
	})
	if err != nil {
		return err
	}
	camera, err := cameras.Acquire(e.appConfig.CameraName)
	if err != nil {
		return err
	}

	e.Events = core.NewEventSystem()
	e.Input = core.NewInputState(e.Events)
	e.Cameras = cameras
	e.camera = camera
	e.Controller = systems.NewOrbitController(camera, e.Events, e.Input)

	if e.appConfig.ConfigPath != "" {
		w, err := config.NewWatcher(e.appConfig.ConfigPath)
		if err != nil {
			core.LogWarn("config hot reload disabled: %s", err)
		} else {
			e.watcher = w
		}
	}

	e.currentStage = EngineStageInitialized
	core.LogInfo("Engine initialized with camera '%s'.", e.appConfig.CameraName)
	return nil
}

// Camera returns the camera driven by input.
func (e *Engine) Camera() *components.OrbitCamera {
	return e.camera
}

// Reloads exposes hot reloaded configs; nil when not watching.
func (e *Engine) Reloads() <-chan *config.Config {
	if e.watcher == nil {
		return nil
	}
	return e.watcher.Updates()
}

// ApplyConfig switches log level and camera tuning at runtime. Call it from the
// goroutine that drives Frame.
func (e *Engine) ApplyConfig(cfg *config.Config) error {
	if err := e.Cameras.ApplyConfig(cfg.Camera); err != nil {
		return err
	}
	core.SetLogLevel(cfg.Level())
	e.config = cfg
	core.LogInfo("config applied: fov %.1f deg, dolly %.2f/%.2f", cfg.Camera.FovYDegrees, cfg.Camera.DollyIn, cfg.Camera.DollyOut)
	return nil
}

// Frame computes this frame's matrices and rolls input state over.
func (e *Engine) Frame() (*FrameMatrices, error) {
	if e.currentStage != EngineStageInitialized {
		return nil, fmt.Errorf("engine not initialized")
	}
	if err := e.camera.ComputeMatrices(math.NewMat4(&e.frame.Projection), math.NewMat4(&e.frame.View)); err != nil {
		core.LogError("compute matrices: %s", err)
		return nil, err
	}
	e.Input.Update()
	return &e.frame, nil
}

func (e *Engine) Shutdown() error {
	if e.currentStage != EngineStageInitialized {
		return nil
	}
	e.currentStage = EngineStageShuttingDown
	core.LogInfo("Shutting down engine...")

	e.Controller.Shutdown()
	if err := e.Cameras.Release(e.appConfig.CameraName); err != nil {
		core.LogWarn(err.Error())
	}
	if e.watcher != nil {
		if err := e.watcher.Close(); err != nil {
			return err
		}
	}
	if err := e.Cameras.Shutdown(); err != nil {
		return err
	}
	return e.Events.Shutdown()
}
