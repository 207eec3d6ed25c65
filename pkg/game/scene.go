package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the desktop frontend (loading, menu, in-game).
// Scenes only present the simulation; all game rules live in the session.
type Scene interface {
	// Update updates the scene based on the elapsed time in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}
