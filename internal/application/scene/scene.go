// Package scene defines the Scene interface for game screens.
//
// The playing screen runs a level; the results screen shows the score once
// a level is complete and leads on to the next one.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by dt seconds.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current.
	OnEnter()

	// OnExit is called when leaving this scene; recordings are flushed here.
	OnExit()
}

// Factory builds a scene on demand, typically the next level
type Factory func() (Scene, error)
