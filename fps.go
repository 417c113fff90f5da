package backdrop

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often, in seconds, the overlay text is rebuilt.
const fpsRefresh = 0.5

// fpsOverlay prints FPS, TPS and the live effect count in the top-left
// corner when Config.ShowFPS is set.
type fpsOverlay struct {
	sinceRefresh float64
	text         string
}

func (o *fpsOverlay) update(dt float64) {
	o.sinceRefresh += dt
	if o.text != "" && o.sinceRefresh < fpsRefresh {
		return
	}
	o.sinceRefresh = 0
	o.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (o *fpsOverlay) draw(screen *ebiten.Image, effects int) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s\nFX: %d", o.text, effects), 4, 4)
}
