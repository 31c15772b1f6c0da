package systems

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spaghettifunk/orbitview/engine/components"
	"github.com/spaghettifunk/orbitview/engine/core"
)

type cameraLookup struct {
	referenceCount uint16
	camera         *components.OrbitCamera
}

type CameraSystem struct {
	Config *CameraSystemConfig
	lookup map[string]*cameraLookup
	// A default, non-registered camera that always exists as a fallback.
	DefaultCamera *components.OrbitCamera
}

/** @brief The camera system configuration. */
type CameraSystemConfig struct {
	/**
	 * @brief NOTE: The maximum number of cameras that can be managed by
	 * the system.
	 */
	MaxCameraCount uint16
	/** @brief Configuration used for every camera the system creates. */
	Camera components.OrbitCameraConfig
}

/**
 * @brief Initializes the camera system.
 *
 * @param config The configuration for this system.
 * @return The system, or an error if the configuration is invalid.
 */
func NewCameraSystem(config *CameraSystemConfig) (*CameraSystem, error) {
	if config.MaxCameraCount == 0 {
		err := fmt.Errorf("func NewCameraSystem - config.MaxCameraCount must be > 0: %w", core.ErrInvalidConfig)
		core.LogError(err.Error())
		return nil, err
	}
	def, err := components.NewOrbitCamera(&config.Camera)
	if err != nil {
		core.LogError("func NewCameraSystem - %s", err)
		return nil, err
	}
	return &CameraSystem{
		Config:        config,
		lookup:        make(map[string]*cameraLookup, config.MaxCameraCount),
		DefaultCamera: def,
	}, nil
}

/**
 * @brief Shuts down the camera system.
 */
func (cs *CameraSystem) Shutdown() error {
	cs.lookup = make(map[string]*cameraLookup)
	cs.DefaultCamera.Reset()
	return nil
}

/**
 * @brief Acquires a camera by name.
 * If one is not found, a new one is created and returned.
 * Internal reference counter is incremented.
 *
 * @param name The name of the camera to acquire.
 * @return The camera, or an error if no slot is free.
 */
func (cs *CameraSystem) Acquire(name string) (*components.OrbitCamera, error) {
	if name == components.DEFAULT_CAMERA_NAME {
		return cs.DefaultCamera, nil
	}
	entry, ok := cs.lookup[name]
	if !ok {
		if len(cs.lookup) >= int(cs.Config.MaxCameraCount) {
			err := fmt.Errorf("func CameraSystemAcquire failed to acquire new slot. Adjust camera system config to allow more")
			core.LogError(err.Error())
			return nil, err
		}

		// Create/register the new camera.
		core.LogDebug("Creating new camera named '%s'...", name)
		camera, err := components.NewOrbitCamera(&cs.Config.Camera)
		if err != nil {
			return nil, err
		}
		entry = &cameraLookup{camera: camera}
		cs.lookup[name] = entry
	}
	entry.referenceCount++
	return entry.camera, nil
}

// AcquireAnonymous creates a camera under a generated name and returns both.
func (cs *CameraSystem) AcquireAnonymous() (string, *components.OrbitCamera, error) {
	name := uuid.New().String()
	camera, err := cs.Acquire(name)
	if err != nil {
		return "", nil, err
	}
	return name, camera, nil
}

/**
 * @brief Releases a camera with the given name. Internal reference
 * counter is decremented. If this reaches 0, the camera is dropped
 * and its slot is usable by a new camera.
 *
 * @param name The name of the camera to release.
 */
func (cs *CameraSystem) Release(name string) error {
	if name == components.DEFAULT_CAMERA_NAME {
		core.LogDebug("Cannot release default camera. Nothing was done.")
		return nil
	}
	entry, ok := cs.lookup[name]
	if !ok {
		core.LogWarn("CameraSystemRelease failed lookup for '%s'. Nothing was done.", name)
		return fmt.Errorf("%w: %s", core.ErrCameraNotFound, name)
	}
	// Decrement the reference count, and drop the camera if the counter reaches 0.
	entry.referenceCount--
	if entry.referenceCount < 1 {
		delete(cs.lookup, name)
	}
	return nil
}

func (cs *CameraSystem) Get(name string) (*components.OrbitCamera, error) {
	if name == components.DEFAULT_CAMERA_NAME {
		return cs.DefaultCamera, nil
	}
	entry, ok := cs.lookup[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrCameraNotFound, name)
	}
	return entry.camera, nil
}

func (cs *CameraSystem) Count() int {
	return len(cs.lookup)
}

/**
 * @brief Applies a new camera configuration to every live camera, keeping
 * their orientation and shift. Cameras created later use it too.
 */
func (cs *CameraSystem) ApplyConfig(config components.OrbitCameraConfig) error {
	if err := config.Validate(); err != nil {
		core.LogError("camera config rejected: %s", err)
		return err
	}
	cs.Config.Camera = config
	if err := cs.DefaultCamera.SetConfig(config); err != nil {
		return err
	}
	for _, entry := range cs.lookup {
		if err := entry.camera.SetConfig(config); err != nil {
			return err
		}
	}
	return nil
}

/**
 * @brief Gets the default camera.
 */
func (cs *CameraSystem) GetDefault() *components.OrbitCamera {
	return cs.DefaultCamera
}
