package runner

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/float-runner/internal/config"
)

func newTestSpawner(seed int64) *Spawner {
	cfg := config.Default()
	return NewSpawner(rand.New(rand.NewSource(seed)), cfg.World, cfg.Spawns)
}

func TestSpawnerObstacleInterval(t *testing.T) {
	sp := newTestSpawner(1)
	easy := mustProfile(t, "easy")

	var obstacles []Obstacle
	var coins []Coin

	// easy at speed 2: interval is 120 - 2*5 = 110, spawn once the counter exceeds it.
	for i := 1; i <= 110; i++ {
		obstacles, coins = sp.Update(easy, 2, obstacles, coins)
		if len(obstacles) != 0 {
			t.Fatalf("obstacle spawned early at tick %d", i)
		}
	}

	obstacles, coins = sp.Update(easy, 2, obstacles, coins)
	if len(obstacles) != 1 {
		t.Fatalf("expected 1 obstacle at tick 111, got %d", len(obstacles))
	}
	o := obstacles[0]
	if o.X != 800 || o.Y != 280 || o.W != 25 || o.H != 40 {
		t.Errorf("obstacle = %+v, want X=800 Y=280 W=25 H=40", o)
	}
	if len(coins) != 0 {
		t.Errorf("coin spawned early: %d", len(coins))
	}
}

func TestSpawnerCoinInterval(t *testing.T) {
	sp := newTestSpawner(2)
	easy := mustProfile(t, "easy")

	var obstacles []Obstacle
	var coins []Coin
	for i := 1; i <= 180; i++ {
		obstacles, coins = sp.Update(easy, 2, obstacles, coins)
	}
	if len(coins) != 0 {
		t.Fatalf("coin spawned before counter exceeded 180")
	}

	_, coins = sp.Update(easy, 2, obstacles, coins)
	if len(coins) != 1 {
		t.Fatalf("expected 1 coin at tick 181, got %d", len(coins))
	}
	c := coins[0]
	if c.X != 800 || c.W != 25 || c.H != 25 {
		t.Errorf("coin = %+v", c)
	}
	// groundY - 100 - [0,100)
	if c.Y > 220 || c.Y <= 120 {
		t.Errorf("coin Y = %v outside (120, 220]", c.Y)
	}
}

func TestSpawnerPairs(t *testing.T) {
	tests := []struct {
		difficulty string
		wantPairs  bool
	}{
		{"easy", false},
		{"medium", true},
		{"hard", true},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty, func(t *testing.T) {
			sp := newTestSpawner(3)
			prof := mustProfile(t, tt.difficulty)

			pairs := 0
			for i := 0; i < 100; i++ {
				obstacles := sp.spawnObstacles(prof, nil)
				switch len(obstacles) {
				case 1:
				case 2:
					pairs++
					second := obstacles[1]
					if second.X != 900 {
						t.Errorf("second obstacle X = %v, want 900", second.X)
					}
					if second.H != prof.ObstacleHeight-10 {
						t.Errorf("second obstacle H = %v, want %v", second.H, prof.ObstacleHeight-10)
					}
					if second.Y+second.H != 320 {
						t.Errorf("second obstacle not on ground: %+v", second)
					}
				default:
					t.Fatalf("unexpected obstacle count %d", len(obstacles))
				}
			}

			if tt.wantPairs && pairs == 0 {
				t.Error("expected some paired obstacles")
			}
			if !tt.wantPairs && pairs != 0 {
				t.Errorf("expected no pairs, got %d", pairs)
			}
		})
	}
}

func TestSpawnerReset(t *testing.T) {
	sp := newTestSpawner(4)
	easy := mustProfile(t, "easy")

	for i := 0; i < 50; i++ {
		sp.Update(easy, 2, nil, nil)
	}
	sp.Reset()

	if sp.obstacleTimer != 0 || sp.coinTimer != 0 {
		t.Errorf("timers = %d/%d after reset, want 0/0", sp.obstacleTimer, sp.coinTimer)
	}
}

func TestGenerateClouds(t *testing.T) {
	world := config.Default().World
	clouds := generateClouds(rand.New(rand.NewSource(5)), world, 5)

	if len(clouds) != 5 {
		t.Fatalf("expected 5 clouds, got %d", len(clouds))
	}
	for i, c := range clouds {
		if c.X < 0 || c.X >= world.CanvasWidth {
			t.Errorf("cloud %d X = %v", i, c.X)
		}
		if c.Y < 50 || c.Y >= 150 {
			t.Errorf("cloud %d Y = %v", i, c.Y)
		}
		if c.W < 60 || c.W >= 100 || c.H < 30 || c.H >= 50 {
			t.Errorf("cloud %d size = %vx%v", i, c.W, c.H)
		}
	}
}
