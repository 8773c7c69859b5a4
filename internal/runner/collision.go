package runner

import "github.com/vovakirdan/float-runner/internal/core"

// hitsObstacle reports whether the player overlaps any obstacle.
func (s *Session) hitsObstacle() bool {
	pr := s.player.Rect()
	for _, o := range s.obstacles {
		if pr.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}

// collectCoins awards every uncollected coin the player overlaps, bursts
// particles at its centre and removes it in the same pass.
func (s *Session) collectCoins() {
	pr := s.player.Rect()
	kept := s.coins[:0]
	for _, c := range s.coins {
		if !c.Collected && pr.Intersects(c.Rect()) {
			c.Collected = true
			s.score += s.cfg.Effects.CoinBonus
			cx, cy := c.Rect().Center()
			s.particles = burst(s.particles, s.rng, cx, cy, core.ColorGold, s.cfg.Effects)
			continue
		}
		kept = append(kept, c)
	}
	s.coins = kept
}
