package runner

import "testing"

type recordingRenderer struct {
	scenes []Scene
}

func (r *recordingRenderer) Draw(sc Scene) {
	r.scenes = append(r.scenes, sc)
}

func TestView(t *testing.T) {
	s := newTestSession(t, "easy")

	tests := []struct {
		name    string
		prepare func()
		want    ViewState
	}{
		{
			name:    "menu",
			prepare: func() {},
			want:    ViewState{State: StateMenu, ShowMenu: true, CanSelectDifficulty: true, Difficulty: "easy"},
		},
		{
			name:    "playing",
			prepare: s.Start,
			want:    ViewState{State: StatePlaying, CanPause: true, CanRestart: true, Difficulty: "easy"},
		},
		{
			name:    "paused",
			prepare: s.TogglePause,
			want:    ViewState{State: StatePaused, ShowPauseOverlay: true, CanPause: true, CanRestart: true, Difficulty: "easy"},
		},
		{
			name: "game over",
			prepare: func() {
				s.TogglePause()
				s.obstacles = append(s.obstacles, Obstacle{X: 110, Y: 280, W: 25, H: 40})
				s.Tick(InputState{})
			},
			want: ViewState{State: StateGameOver, ShowGameOver: true, CanSelectDifficulty: true, CanRestart: true, Difficulty: "easy"},
		},
	}

	for _, tt := range tests {
		tt.prepare()
		if got := s.View(); got != tt.want {
			t.Errorf("%s: View() = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestSceneIsSnapshot(t *testing.T) {
	s := newTestSession(t, "easy")
	s.Start()
	s.coins = append(s.coins, Coin{X: 500, Y: 150, W: 25, H: 25})

	sc := s.Scene()
	sc.Coins[0].X = -1000
	sc.Clouds[0].X = -1000

	if s.coins[0].X == -1000 || s.clouds[0].X == -1000 {
		t.Error("mutating the scene leaked into the session")
	}
	if sc.CanvasW != 800 || sc.CanvasH != 400 || sc.GroundY != 320 {
		t.Errorf("canvas = %vx%v ground %v", sc.CanvasW, sc.CanvasH, sc.GroundY)
	}
}

func TestPlayerTilt(t *testing.T) {
	sc := Scene{Tick: 10}
	if sc.PlayerTilt() != 0 {
		t.Error("grounded player should not tilt")
	}

	sc.Player.Jumping = true
	if tilt := sc.PlayerTilt(); tilt == 0 || tilt > 0.3 || tilt < -0.3 {
		t.Errorf("tilt = %v, want non-zero within ±0.3", tilt)
	}
}

func TestFrameDrawsEveryState(t *testing.T) {
	s := newTestSession(t, "easy")
	r := &recordingRenderer{}

	Frame(s, InputState{}, r)
	s.Start()
	Frame(s, InputState{}, r)
	s.TogglePause()
	Frame(s, InputState{}, r)

	if len(r.scenes) != 3 {
		t.Fatalf("expected 3 draws, got %d", len(r.scenes))
	}
	if !r.scenes[0].View.ShowMenu {
		t.Error("first frame should show the menu")
	}
	if r.scenes[1].View.Score != 1 {
		t.Errorf("playing frame score = %d, want 1", r.scenes[1].View.Score)
	}
	if !r.scenes[2].View.ShowPauseOverlay || r.scenes[2].View.Score != 1 {
		t.Errorf("paused frame = %+v", r.scenes[2].View)
	}
}
