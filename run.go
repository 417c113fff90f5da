package backdrop

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ ebiten.Game = (*Scene)(nil)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Resizable lets the user resize the window; the scene follows through
	// Layout.
	Resizable bool
}

// Run opens a window and drives scene until the window is closed.
// A disabled or unmounted scene returns immediately.
func Run(scene *Scene, cfg RunConfig) error {
	if scene == nil || !scene.Mounted() {
		return nil
	}
	defer scene.Unmount()

	ebiten.SetWindowTitle(cfg.Title)
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if err := ebiten.RunGame(scene); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
