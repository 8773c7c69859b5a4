package runner

import (
	"math/rand"

	"github.com/vovakirdan/float-runner/internal/config"
	"github.com/vovakirdan/float-runner/internal/core"
)

// burst appends a particle burst centred on (x, y). Each particle gets an
// independent velocity sampled uniformly over [-spread/2, spread/2) per axis.
func burst(particles []Particle, rng *rand.Rand, x, y float64, color core.Color, eff config.EffectsConfig) []Particle {
	for i := 0; i < eff.ParticleCount; i++ {
		particles = append(particles, Particle{
			X:       x,
			Y:       y,
			VelX:    (rng.Float64() - 0.5) * eff.ParticleSpread,
			VelY:    (rng.Float64() - 0.5) * eff.ParticleSpread,
			Color:   color,
			Life:    eff.ParticleLife,
			MaxLife: eff.ParticleLife,
		})
	}
	return particles
}

// updateParticles integrates particles and drops expired ones.
func updateParticles(particles []Particle, gravity float64) []Particle {
	kept := particles[:0]
	for _, p := range particles {
		p.X += p.VelX
		p.Y += p.VelY
		p.VelY += gravity
		p.Life--
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	return kept
}
