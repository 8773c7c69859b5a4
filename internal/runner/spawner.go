package runner

import (
	"math/rand"

	"github.com/vovakirdan/float-runner/internal/config"
	"github.com/vovakirdan/float-runner/internal/core"
)

// Cloud placement bands, in canvas pixels.
const (
	cloudMinY     = 50
	cloudRangeY   = 100
	cloudMinW     = 60
	cloudRangeW   = 40
	cloudMinH     = 30
	cloudRangeH   = 20
	obstacleColor = core.ColorBrown
)

// Spawner creates obstacles and coins on independent tick counters.
type Spawner struct {
	rng           *rand.Rand
	world         config.WorldConfig
	spawns        config.SpawnConfig
	obstacleTimer int
	coinTimer     int
}

// NewSpawner creates a spawner drawing from the given RNG.
func NewSpawner(rng *rand.Rand, world config.WorldConfig, spawns config.SpawnConfig) *Spawner {
	return &Spawner{
		rng:    rng,
		world:  world,
		spawns: spawns,
	}
}

// Reset zeroes both spawn counters.
func (sp *Spawner) Reset() {
	sp.obstacleTimer = 0
	sp.coinTimer = 0
}

// Update advances both counters by one tick and appends any new entities.
// The obstacle interval tightens as speed rises.
func (sp *Spawner) Update(prof config.Profile, speed float64, obstacles []Obstacle, coins []Coin) ([]Obstacle, []Coin) {
	sp.obstacleTimer++
	if float64(sp.obstacleTimer) > config.ObstacleInterval(prof, speed, sp.spawns.FrequencySpeedFactor) {
		obstacles = sp.spawnObstacles(prof, obstacles)
		sp.obstacleTimer = 0
	}

	sp.coinTimer++
	if float64(sp.coinTimer) > prof.CoinFrequency {
		coins = sp.spawnCoin(coins)
		sp.coinTimer = 0
	}

	return obstacles, coins
}

// spawnObstacles places one obstacle at the right edge and, when the profile
// allows it, sometimes a shorter second one further right.
func (sp *Spawner) spawnObstacles(prof config.Profile, obstacles []Obstacle) []Obstacle {
	groundY := sp.world.GroundY()

	obstacles = append(obstacles, Obstacle{
		X:     sp.world.CanvasWidth,
		Y:     groundY - prof.ObstacleHeight,
		W:     sp.spawns.ObstacleWidth,
		H:     prof.ObstacleHeight,
		Color: obstacleColor,
	})

	if prof.AllowMultipleObstacles && sp.rng.Float64() < sp.spawns.PairChance {
		h := prof.ObstacleHeight - sp.spawns.PairHeightDelta
		obstacles = append(obstacles, Obstacle{
			X:     sp.world.CanvasWidth + sp.spawns.PairOffset,
			Y:     groundY - h,
			W:     sp.spawns.ObstacleWidth,
			H:     h,
			Color: obstacleColor,
		})
	}

	return obstacles
}

// spawnCoin places a coin at the right edge within the height band above the ground.
func (sp *Spawner) spawnCoin(coins []Coin) []Coin {
	lift := sp.spawns.CoinMinLift + sp.rng.Float64()*sp.spawns.CoinLiftRange
	return append(coins, Coin{
		X: sp.world.CanvasWidth,
		Y: sp.world.GroundY() - lift,
		W: sp.spawns.CoinSize,
		H: sp.spawns.CoinSize,
	})
}

// generateClouds scatters n clouds across the sky.
func generateClouds(rng *rand.Rand, world config.WorldConfig, n int) []Cloud {
	clouds := make([]Cloud, 0, n)
	for i := 0; i < n; i++ {
		clouds = append(clouds, Cloud{
			X: rng.Float64() * world.CanvasWidth,
			Y: cloudMinY + rng.Float64()*cloudRangeY,
			W: cloudMinW + rng.Float64()*cloudRangeW,
			H: cloudMinH + rng.Float64()*cloudRangeH,
		})
	}
	return clouds
}
