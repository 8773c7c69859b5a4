package window

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/float-runner/internal/runner"
)

// Debug font metrics used to lay out text.
const (
	glyphW = 6
	lineH  = 16
)

// Scenery sizes in canvas pixels.
const (
	skyBands   = 16
	grassEvery = 20
	grassW     = 15
	grassH     = 10
	spikeEvery = 10
	particleSz = 4
)

// Renderer keeps the latest scene and paints it onto the window.
// Draw runs from Game.Update through runner.Frame; Paint runs from Game.Draw.
type Renderer struct {
	scene runner.Scene
	pixel *ebiten.Image
}

// NewRenderer creates an empty renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw records the scene for the next Paint.
func (r *Renderer) Draw(sc runner.Scene) {
	r.scene = sc
}

// Scene returns the last recorded scene.
func (r *Renderer) Scene() runner.Scene {
	return r.scene
}

// Paint draws the recorded scene onto dst.
func (r *Renderer) Paint(dst *ebiten.Image) {
	sc := r.scene
	if sc.CanvasW <= 0 || sc.CanvasH <= 0 {
		return
	}
	if r.pixel == nil {
		r.pixel = ebiten.NewImage(1, 1)
		r.pixel.Fill(color.White)
	}

	r.paintSky(dst, sc)
	r.paintClouds(dst, sc)
	r.paintGround(dst, sc)
	r.paintPlayer(dst, sc)
	r.paintObstacles(dst, sc)
	r.paintCoins(dst, sc)
	r.paintParticles(dst, sc)
	r.paintHUD(dst, sc)
	r.paintOverlay(dst, sc)
}

func (r *Renderer) paintSky(dst *ebiten.Image, sc runner.Scene) {
	band := float32(sc.CanvasH) / skyBands
	for i := 0; i < skyBands; i++ {
		c := lerp(skyTopColor, skyBottomColor, float64(i)/(skyBands-1))
		vector.DrawFilledRect(dst, 0, float32(i)*band, float32(sc.CanvasW), band+1, c, false)
	}
}

func (r *Renderer) paintClouds(dst *ebiten.Image, sc runner.Scene) {
	for _, c := range sc.Clouds {
		x, y, w := float32(c.X), float32(c.Y), float32(c.W)
		vector.DrawFilledCircle(dst, x, y, w/3, cloudColor, true)
		vector.DrawFilledCircle(dst, x+w/3, y, w/2.5, cloudColor, true)
		vector.DrawFilledCircle(dst, x+w/1.5, y, w/3, cloudColor, true)
	}
}

func (r *Renderer) paintGround(dst *ebiten.Image, sc runner.Scene) {
	gy := float32(sc.GroundY)
	vector.DrawFilledRect(dst, 0, gy, float32(sc.CanvasW), float32(sc.CanvasH)-gy, groundColor, false)
	for x := float32(0); x < float32(sc.CanvasW); x += grassEvery {
		vector.DrawFilledRect(dst, x, gy, grassW, grassH, grassColor, false)
	}
}

func (r *Renderer) paintPlayer(dst *ebiten.Image, sc runner.Scene) {
	p := sc.Player
	tilt := sc.PlayerTilt()

	// Body and face share one transform so the whole sprite wobbles.
	r.rotatedRect(dst, p, 0, 0, p.W, p.H, tilt, paletteColor(playerColorTag))
	r.rotatedRect(dst, p, p.W*0.18, p.H*0.22, p.W*0.25, p.H*0.25, tilt, eyeColor)
	r.rotatedRect(dst, p, p.W*0.57, p.H*0.22, p.W*0.25, p.H*0.25, tilt, eyeColor)
	r.rotatedRect(dst, p, p.W*0.25, p.H*0.30, p.W*0.1, p.H*0.1, tilt, pupilColor)
	r.rotatedRect(dst, p, p.W*0.64, p.H*0.30, p.W*0.1, p.H*0.1, tilt, pupilColor)
	r.rotatedRect(dst, p, p.W*0.3, p.H*0.7, p.W*0.4, p.H*0.1, tilt, smileColor)
}

// rotatedRect draws a rectangle given in player-local coordinates, rotated
// about the player's centre.
func (r *Renderer) rotatedRect(dst *ebiten.Image, p runner.Player, x, y, w, h, tilt float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x-p.W/2, y-p.H/2)
	op.GeoM.Rotate(tilt)
	op.GeoM.Translate(p.X+p.W/2, p.Y+p.H/2)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(r.pixel, op)
}

func (r *Renderer) paintObstacles(dst *ebiten.Image, sc runner.Scene) {
	for _, o := range sc.Obstacles {
		x, y, w, h := float32(o.X), float32(o.Y), float32(o.W), float32(o.H)
		vector.DrawFilledRect(dst, x, y, w, h, paletteColor(o.Color), false)
		for i := float32(0); i < h; i += spikeEvery {
			vector.DrawFilledRect(dst, x-5, y+i, 5, 3, spikeColor, false)
			vector.DrawFilledRect(dst, x+w, y+i, 5, 3, spikeColor, false)
		}
	}
}

func (r *Renderer) paintCoins(dst *ebiten.Image, sc runner.Scene) {
	for _, c := range sc.Coins {
		cx, cy := c.Rect().Center()
		radius := float32(c.W / 2)
		vector.DrawFilledCircle(dst, float32(cx), float32(cy), radius, paletteColor(coinColorTag), true)

		// The shine orbits the centre as the coin spins.
		sx := cx + math.Cos(c.Rotation+math.Pi*1.25)*c.W/4
		sy := cy + math.Sin(c.Rotation+math.Pi*1.25)*c.H/4
		vector.DrawFilledCircle(dst, float32(sx), float32(sy), radius/3, coinShineColor, true)
	}
}

func (r *Renderer) paintParticles(dst *ebiten.Image, sc runner.Scene) {
	for _, p := range sc.Particles {
		c := fade(paletteColor(p.Color), p.Alpha())
		vector.DrawFilledRect(dst, float32(p.X), float32(p.Y), particleSz, particleSz, c, false)
	}
}

func (r *Renderer) paintHUD(dst *ebiten.Image, sc runner.Scene) {
	v := sc.View
	if v.ShowMenu {
		return
	}
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("SCORE %d", v.Score), 8, 4)
	best := fmt.Sprintf("BEST %d  %s", v.Best, strings.ToUpper(v.Difficulty))
	ebitenutil.DebugPrintAt(dst, best, int(sc.CanvasW)-len(best)*glyphW-8, 4)
}

func (r *Renderer) paintOverlay(dst *ebiten.Image, sc runner.Scene) {
	lines := overlayLines(sc.View)
	if len(lines) == 0 {
		return
	}

	vector.DrawFilledRect(dst, 0, 0, float32(sc.CanvasW), float32(sc.CanvasH), overlayColor, false)
	top := (int(sc.CanvasH) - len(lines)*lineH) / 2
	for i, l := range lines {
		x := (int(sc.CanvasW) - len(l)*glyphW) / 2
		ebitenutil.DebugPrintAt(dst, l, x, top+i*lineH)
	}
}

// overlayLines returns the text block for the current overlay, if any.
func overlayLines(v runner.ViewState) []string {
	switch {
	case v.ShowMenu:
		return []string{
			"FLOAT RUNNER",
			"",
			fmt.Sprintf("DIFFICULTY: %s   BEST: %d", strings.ToUpper(v.Difficulty), v.Best),
			"",
			"1/2/3  SELECT DIFFICULTY",
			"ENTER OR CLICK  START",
			"SPACE, UP OR HOLD MOUSE  FLOAT",
		}
	case v.ShowPauseOverlay:
		return []string{
			"PAUSED",
			"",
			"P  RESUME    R  RESTART",
		}
	case v.ShowGameOver:
		lines := []string{
			"GAME OVER",
			"",
			fmt.Sprintf("SCORE: %d", v.Score),
			fmt.Sprintf("BEST:  %d", v.Best),
		}
		if v.NewBest {
			lines = append(lines, "NEW BEST!")
		}
		return append(lines, "", "ENTER OR CLICK  PLAY AGAIN")
	}
	return nil
}
