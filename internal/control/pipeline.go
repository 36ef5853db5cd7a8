package control

import (
	"fmt"

	"github.com/Faultbox/strider/internal/config"
	"github.com/Faultbox/strider/internal/settings"
	"github.com/Faultbox/strider/pkg/math"
)

const (
	// The ground probe starts this far below the capsule bottom and may
	// travel at most this far before missing.
	groundProbeOffset   = 0.01
	groundProbeDistance = 0.02

	// Yaw appends are linearized, so the body quaternion is renormalized
	// on this tick interval to undo unit-length drift.
	renormInterval = 64
)

// Pipeline runs the four control stages in their required order each
// tick: sampling, orientation integration, force computation, ground/jump
// gating. Later stages read state earlier stages wrote within the same
// tick, so the order is fixed.
//
// Any error returned by Tick is a contract violation (wrong subject
// cardinality, impossible intent tag) and is not recoverable; callers are
// expected to abort.
type Pipeline struct {
	registry *Registry
	caster   RayCaster
	player   config.PlayerConfig
	settings *settings.Settings

	ticks uint64
}

// NewPipeline wires the pipeline to its collaborators. settings is shared
// and may be edited between ticks.
func NewPipeline(registry *Registry, caster RayCaster, player config.PlayerConfig, s *settings.Settings) *Pipeline {
	return &Pipeline{
		registry: registry,
		caster:   caster,
		player:   player,
		settings: s,
	}
}

// Tick runs one full control tick against the current device state.
func (p *Pipeline) Tick(src Source) error {
	subject, err := p.registry.Subject()
	if err != nil {
		return fmt.Errorf("control tick: %w", err)
	}

	// 1. Sample: overwrite intents from device state.
	subject.movement = SampleMovement(src)
	subject.lookaround = SampleLookaround(src)

	// 2. Orientation: camera pitch, then body yaw.
	pitch, err := IntegratePitch(subject.pitch, subject.lookaround, p.settings.VerticalSensitivity())
	if err != nil {
		return fmt.Errorf("integrating pitch: %w", err)
	}
	subject.pitch = pitch

	rotation, err := IntegrateYaw(subject.body.Rotation(), subject.lookaround, p.settings.HorizontalSensitivity())
	if err != nil {
		return fmt.Errorf("integrating yaw: %w", err)
	}
	p.ticks++
	if p.ticks%renormInterval == 0 {
		rotation = rotation.Normalize()
	}
	subject.body.SetRotation(rotation)

	// 3. Locomotion: replace the horizontal force for this tick.
	horizontalSpeed := subject.body.LinearVelocity().Horizontal().Length()
	force, write, err := ComputeForce(subject.movement, rotation, horizontalSpeed, p.player)
	if err != nil {
		return fmt.Errorf("computing movement force: %w", err)
	}
	if write {
		subject.body.SetForce(force)
	}

	// 4. Ground probe and jump gate: add the impulse on top.
	if p.grounded(subject) && jumpPressed(src) {
		subject.body.AddForce(math.Vec3{Y: p.player.JumpForce})
	}

	return nil
}

// grounded probes straight down from just below the capsule for support.
// Contact is recomputed every tick and never persisted.
func (p *Pipeline) grounded(subject *Subject) bool {
	origin := subject.body.Position()
	origin.Y -= p.player.CapsuleHeight/2 + groundProbeOffset
	return p.caster.RayHits(origin, math.Vec3{Y: -1}, groundProbeDistance)
}

// jumpPressed reports a jump press edge on any device this tick.
func jumpPressed(src Source) bool {
	if src.JustPressed(KeySpace) {
		return true
	}
	for _, pad := range src.Gamepads() {
		if pad.JustPressed(ButtonSouth) {
			return true
		}
	}
	return false
}
