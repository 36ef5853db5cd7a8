package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/strider/internal/config"
	"github.com/Faultbox/strider/internal/control"
	"github.com/Faultbox/strider/internal/engine/physics"
	"github.com/Faultbox/strider/internal/logger"
	"github.com/Faultbox/strider/pkg/math"
)

// spawnPosition is where the subject's capsule center starts, well above
// the ground so the drop-in is visible.
var spawnPosition = math.Vec3{X: 0, Y: 7, Z: 7}

const subjectMass = 1.0

// Session owns the per-level objects: the level geometry and the single
// controllable subject.
type Session struct {
	world    *physics.World
	registry *control.Registry
	body     *physics.Body
}

func newSession(world *physics.World, registry *control.Registry) *Session {
	return &Session{
		world:    world,
		registry: registry,
	}
}

// Start builds the level and spawns the subject. Fails if a subject is
// already registered.
func (s *Session) Start(player config.PlayerConfig) error {
	// Ground slab, top face at y=0
	s.world.AddCollider(physics.NewBoxCollider(
		math.Vec3{X: 0, Y: -0.5, Z: 0},
		math.Vec3{X: 200, Y: 1, Z: 200},
	))

	body := physics.NewBody(spawnPosition, player.CapsuleHeight, player.CapsuleRadius, subjectMass)
	s.world.AddBody(body)

	if _, err := s.registry.Spawn(body); err != nil {
		s.world.RemoveBody(body)
		return fmt.Errorf("spawning subject: %w", err)
	}
	s.body = body

	logger.Info("session started",
		zap.Float32("spawnX", spawnPosition.X),
		zap.Float32("spawnY", spawnPosition.Y),
		zap.Float32("spawnZ", spawnPosition.Z),
	)
	return nil
}

// Teardown removes the subject and clears the level.
func (s *Session) Teardown() error {
	if err := s.registry.Teardown(); err != nil {
		return fmt.Errorf("tearing down subject: %w", err)
	}
	s.world.Clear()
	s.body = nil
	logger.Info("session torn down")
	return nil
}
