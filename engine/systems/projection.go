package systems

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/spaghettifunk/vrmath/engine/assets"
	"github.com/spaghettifunk/vrmath/engine/components"
	"github.com/spaghettifunk/vrmath/engine/core"
	"github.com/spaghettifunk/vrmath/engine/math"
)

type EyeLookup struct {
	ReferenceCount uint16
	Eye            *components.EyeCamera
}

// ProjectionSystem owns the per-eye projections and the tracking origin.
// All methods are safe for concurrent use.
type ProjectionSystem struct {
	mutex      sync.RWMutex
	config     *core.Config
	lookup     map[string]*EyeLookup
	origin     *math.Pose
	generation uuid.UUID
}

/**
 * @brief Creates the projection system and applies the initial configuration.
 *
 * @param config The configuration for this system. nil uses core.DefaultConfig().
 * @return The system, or an error if the configuration is invalid.
 */
func NewProjectionSystem(config *core.Config) (*ProjectionSystem, error) {
	if config == nil {
		config = core.DefaultConfig()
	}
	ps := &ProjectionSystem{
		lookup: map[string]*EyeLookup{
			components.EyeLeft:  {Eye: components.NewEyeCamera(components.EyeLeft)},
			components.EyeRight: {Eye: components.NewEyeCamera(components.EyeRight)},
		},
		origin: math.NewPose(),
	}
	if err := ps.Apply(config); err != nil {
		core.LogError("%s", err)
		return nil, err
	}
	return ps, nil
}

/**
 * @brief Rebuilds both eyes and the tracking origin from config and stamps a
 * new generation. The previous state is kept if config is invalid.
 * Fires core.EVENT_CODE_PROJECTION_CHANGED once the new state is visible.
 */
func (ps *ProjectionSystem) Apply(config *core.Config) error {
	return ps.apply(config, "")
}

func (ps *ProjectionSystem) apply(config *core.Config, path string) error {
	if config == nil {
		return fmt.Errorf("func Apply: %w: nil config", core.ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return err
	}

	ps.mutex.Lock()
	eyes := map[string]core.EyeConfig{
		components.EyeLeft:  config.Eyes.Left,
		components.EyeRight: config.Eyes.Right,
	}
	projections := make(map[string]math.Mat44, len(eyes))
	for name, eyeConfig := range eyes {
		eye := ps.lookup[name].Eye
		eye.SetRect(rectFromConfig(eyeConfig))
		eye.SetClip(config.Projection.Near, config.Projection.Far)
		projections[name] = eye.GetProjection()
	}

	t := config.Tracking
	ps.origin.SetPositionRotation(
		math.NewVec3dFromArray(t.Offset),
		math.QuaternionFromYawPitchRoll(t.Yaw, t.Pitch, t.Roll),
	)

	ps.config = config
	ps.generation = uuid.New()
	generation := ps.generation
	ps.mutex.Unlock()

	core.LogDebug("projection system applied generation %s", generation)
	core.LogDump(projections)

	// listeners may call back into the system, so fire without holding the lock
	var data core.EventContext
	data.Data.C[0] = generation.String()
	data.Data.C[1] = path
	data.Data.F32[0] = config.Projection.Near
	data.Data.F32[1] = config.Projection.Far
	core.EventFire(core.EVENT_CODE_PROJECTION_CHANGED, ps, data)
	return nil
}

func rectFromConfig(e core.EyeConfig) math.Rect2 {
	return math.Rect2{
		TopLeft:     math.NewVec2(e.TopLeft[0], e.TopLeft[1]),
		BottomRight: math.NewVec2(e.BottomRight[0], e.BottomRight[1]),
	}
}

// Generation identifies the configuration currently applied.
func (ps *ProjectionSystem) Generation() uuid.UUID {
	ps.mutex.RLock()
	defer ps.mutex.RUnlock()
	return ps.generation
}

func (ps *ProjectionSystem) Config() *core.Config {
	ps.mutex.RLock()
	defer ps.mutex.RUnlock()
	return ps.config
}

/**
 * @brief Acquires a snapshot of the named eye and increments its reference counter.
 * The snapshot does not follow later reloads; acquire again after Generation changes.
 *
 * @param name components.EyeLeft or components.EyeRight.
 * @return A copy of the eye camera.
 */
func (ps *ProjectionSystem) Acquire(name string) (components.EyeCamera, error) {
	ps.mutex.Lock()
	defer ps.mutex.Unlock()

	l, ok := ps.lookup[name]
	if !ok {
		err := fmt.Errorf("func Acquire: %w: %q", core.ErrUnknownEye, name)
		core.LogError("%s", err)
		return components.EyeCamera{}, err
	}
	l.Eye.GetProjection()
	l.ReferenceCount++
	return *l.Eye, nil
}

/**
 * @brief Releases the named eye. The internal reference counter is decremented.
 */
func (ps *ProjectionSystem) Release(name string) {
	ps.mutex.Lock()
	defer ps.mutex.Unlock()

	l, ok := ps.lookup[name]
	if !ok {
		core.LogWarn("Release failed lookup for eye '%s'. Nothing was done.", name)
		return
	}
	if l.ReferenceCount == 0 {
		core.LogWarn("Release called on eye '%s' with no references. Nothing was done.", name)
		return
	}
	l.ReferenceCount--
}

func (ps *ProjectionSystem) ReferenceCount(name string) uint16 {
	ps.mutex.RLock()
	defer ps.mutex.RUnlock()

	if l, ok := ps.lookup[name]; ok {
		return l.ReferenceCount
	}
	return 0
}

// Projection returns the current projection matrix of the named eye.
func (ps *ProjectionSystem) Projection(name string) (math.Mat44, error) {
	ps.mutex.Lock()
	defer ps.mutex.Unlock()

	l, ok := ps.lookup[name]
	if !ok {
		return math.Mat44{}, fmt.Errorf("func Projection: %w: %q", core.ErrUnknownEye, name)
	}
	return l.Eye.GetProjection(), nil
}

// Origin returns a copy of the tracking origin pose.
func (ps *ProjectionSystem) Origin() math.Pose {
	ps.mutex.RLock()
	defer ps.mutex.RUnlock()
	return *ps.origin
}

/**
 * @brief Maps a tracking-space point into the eye frame through the inverse of
 * the tracking origin and projects it to normalized device coordinates.
 */
func (ps *ProjectionSystem) ProjectToEye(name string, point math.Vec3d) (math.Vec3, error) {
	ps.mutex.Lock()
	defer ps.mutex.Unlock()

	l, ok := ps.lookup[name]
	if !ok {
		return math.Vec3{}, fmt.Errorf("func ProjectToEye: %w: %q", core.ErrUnknownEye, name)
	}
	local := ps.origin.InverseTransformPoint(point)
	return l.Eye.ProjectPoint(local.ToVec3()), nil
}

// Reload loads the TOML file at path and applies it. Failures fire
// core.EVENT_CODE_RELOAD_FAILED.
func (ps *ProjectionSystem) Reload(path string) error {
	clock := core.NewClock()
	clock.Start()

	if err := ps.reload(path); err != nil {
		var data core.EventContext
		data.Data.C[0] = path
		data.Data.C[1] = err.Error()
		core.EventFire(core.EVENT_CODE_RELOAD_FAILED, ps, data)
		return err
	}

	clock.Update()
	core.LogInfo("reloaded %s in %s (generation %s)", path, clock.Elapsed(), ps.Generation())
	return nil
}

func (ps *ProjectionSystem) reload(path string) error {
	config, err := core.LoadConfig(path)
	if err != nil {
		return err
	}
	if err := ps.apply(config, path); err != nil {
		return err
	}
	if config.LogLevel != "" {
		return core.SetLogLevel(config.LogLevel)
	}
	return nil
}

/**
 * @brief Reloads the configuration at path every time it changes until ctx is
 * done. Failed reloads are logged and the previous state is kept.
 */
func (ps *ProjectionSystem) Watch(ctx context.Context, path string) error {
	watcher, err := assets.NewConfigWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Watch(path); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case changed, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			if err := ps.Reload(changed); err != nil {
				core.LogError("reload of %s failed, keeping generation %s: %s", changed, ps.Generation(), err)
			}
		case err, ok := <-watcher.Errors():
			if !ok {
				return nil
			}
			core.LogWarn("config watcher: %s", err)
		}
	}
}
