package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/johannesstruweg/struwegstudio/internal/config"
	"github.com/johannesstruweg/struwegstudio/internal/scene"
)

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Struweg Studio - scroll to explore, 1-4: kernel, M: music, Esc/Q: quit")

	s := scene.New(config.Presets)
	if err := s.Start(config.WindowWidth, config.WindowHeight); err != nil {
		// No drawable surface means the background simply does not
		// render; nothing to recover.
		log.Println("background disabled:", err)
		return
	}
	defer s.Stop()

	if err := ebiten.RunGame(s); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
