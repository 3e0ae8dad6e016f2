package sandbox

import (
	"fmt"

	"capybara-sandbox/internal/camera"
	"capybara-sandbox/internal/character"
	"capybara-sandbox/internal/course"
	"capybara-sandbox/internal/engineconfig"
	"capybara-sandbox/internal/input"
	"capybara-sandbox/internal/logger"
	"capybara-sandbox/internal/orientation"
	"capybara-sandbox/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// Options configures a Sandbox. Device may be nil when input only arrives through
// Sampler().Feed. Log may be nil.
type Options struct {
	Config   engineconfig.Config
	Course   course.Course
	Device   input.Device
	Bindings input.Bindings
	Log      *logger.Logger
	// Debug logs grounded transitions.
	Debug bool
}

// FrameResult is what one frame produced, for rendering and the overlay.
type FrameResult struct {
	Intent    input.Intent
	Camera    camera.Pose
	Target    mgl32.Vec3
	Position  mgl32.Vec3
	Velocity  mgl32.Vec3
	Yaw       float32
	Pitch     float32
	Facing    float32
	Grounded  bool
	Jumped    bool
	Respawned bool
	SubSteps  int
}

// Sandbox is the frame context. It owns every piece of mutable simulation state and is
// driven by one goroutine calling Frame.
type Sandbox struct {
	cfg       engineconfig.Config
	course    course.Course
	obstacles []course.Obstacle
	log       *logger.Logger
	debug     bool

	sampler  *input.Sampler
	orient   *orientation.State
	follow   *camera.Follow
	resolver *character.Resolver
	world    *physics.World
	rb       *physics.Body
	body     *character.Body

	frames uint64
}

// New builds the world, installs the course and spawns the character.
func New(opts Options) (*Sandbox, error) {
	comps, err := split(opts.Config)
	if err != nil {
		return nil, err
	}
	follow, err := camera.NewFollow(comps.camera)
	if err != nil {
		return nil, err
	}
	resolver, err := character.NewResolver(comps.movement)
	if err != nil {
		return nil, err
	}

	world := physics.NewWorld(comps.world)
	obstacles, err := opts.Course.Install(world)
	if err != nil {
		return nil, fmt.Errorf("install course: %w", err)
	}
	rb := physics.NewBody(opts.Course.SpawnPoint(), comps.body)
	world.AddBody(rb)

	bindings := opts.Bindings
	if len(bindings.Forward) == 0 {
		bindings = input.DefaultBindings()
	}

	s := &Sandbox{
		cfg:       opts.Config,
		course:    opts.Course,
		obstacles: obstacles,
		log:       opts.Log,
		debug:     opts.Debug,
		sampler:   input.NewSampler(opts.Device, bindings),
		orient:    orientation.New(comps.orient, opts.Config.Camera.VerticalAngle),
		follow:    follow,
		resolver:  resolver,
		world:     world,
		rb:        rb,
		body:      character.NewBody(rb, rb.Extent(), 0),
	}
	s.logf("sandbox ready: course %q, %d obstacles, camera %s", opts.Course.Name, len(obstacles), comps.camera.Mode)
	return s, nil
}

// Frame runs one frame of dt seconds: sample input, turn the view, resolve movement,
// update the camera and step physics.
func (s *Sandbox) Frame(dt float32) FrameResult {
	s.frames++
	in := s.sampler.Sample()

	s.orient.ApplyMouseDelta(in.MouseDX, in.MouseDY)
	s.orient.Advance(s.follow.Config().Alpha(dt))
	yaw, pitch := s.orient.Yaw(), s.orient.Pitch()

	was := s.body.Grounded()
	grounded := s.body.UpdateGrounded(s.world, s.resolver.Config().GroundEpsilon)
	if s.debug && grounded != was {
		s.logf("frame %d: grounded=%v", s.frames, grounded)
	}

	target := s.body.Position()
	pose := s.follow.Update(target, yaw, pitch, dt)
	res := s.resolver.Resolve(s.body, in, s.follow.Heading(yaw))
	steps := s.world.Step(dt)

	out := FrameResult{
		Intent:   in,
		Camera:   pose,
		Target:   target,
		Yaw:      yaw,
		Pitch:    pitch,
		Grounded: grounded,
		Jumped:   res.Jumped,
		SubSteps: steps,
	}
	if s.rb.Translation().Y() < s.course.KillY {
		s.logf("fell off the course at %v, respawning", s.rb.Translation())
		s.Reset()
		out.Respawned = true
	}
	out.Position = s.rb.Translation()
	out.Velocity = s.rb.LinearVelocity()
	out.Facing = s.body.Facing()
	return out
}

// Apply swaps in a new configuration. Nothing changes when any section is rejected.
func (s *Sandbox) Apply(cfg engineconfig.Config) error {
	comps, err := split(cfg)
	if err != nil {
		return err
	}
	if err := s.follow.SetConfig(comps.camera); err != nil {
		return err
	}
	if err := s.resolver.SetConfig(comps.movement); err != nil {
		return err
	}
	s.orient.SetSettings(comps.orient)
	if cfg.Camera.VerticalAngle != s.cfg.Camera.VerticalAngle {
		s.orient.SetPitch(cfg.Camera.VerticalAngle)
	}
	s.rb.SetConfig(comps.body)
	s.body.SetExtent(s.rb.Extent())
	s.world.SetGravity(comps.world.Gravity)
	s.cfg = cfg
	return nil
}

// Reset puts the character back on the spawn point at rest and recenters the view.
func (s *Sandbox) Reset() {
	s.rb.SetTranslation(s.course.SpawnPoint())
	s.rb.SetLinearVelocity(mgl32.Vec3{})
	s.body.SetFacing(0)
	s.orient.Reset(0)
	s.follow.Detach()
}

// Config returns the configuration in effect.
func (s *Sandbox) Config() engineconfig.Config { return s.cfg }

// Course returns the installed course.
func (s *Sandbox) Course() course.Course { return s.course }

// Obstacles returns the placed obstacles, scattered ones included, in collider order.
func (s *Sandbox) Obstacles() []course.Obstacle { return s.obstacles }

// Sampler returns the input sampler, e.g. to suppress input while the console is open.
func (s *Sandbox) Sampler() *input.Sampler { return s.sampler }

// World returns the physics world.
func (s *Sandbox) World() *physics.World { return s.world }

// Character returns the character body.
func (s *Sandbox) Character() *character.Body { return s.body }

// Camera returns the follow camera.
func (s *Sandbox) Camera() *camera.Follow { return s.follow }

func (s *Sandbox) logf(format string, args ...any) {
	if s.log != nil {
		s.log.Logf(format, args...)
	}
}
