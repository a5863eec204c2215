package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// State tracks mouse and keyboard state per frame and interprets it
// as game commands. The simulation never touches ebiten directly.
type State struct {
	MouseX, MouseY int

	LeftJustPressed  bool
	RightJustPressed bool
	ScrollY          float64

	Sprint bool

	PauseJustPressed bool
	ResetJustPressed bool
	SwapJustPressed  bool
}

func NewState() *State {
	return &State{}
}

// Update should be called once per frame, before the command readers.
func (s *State) Update() {
	s.MouseX, s.MouseY = ebiten.CursorPosition()

	s.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.RightJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	_, s.ScrollY = ebiten.Wheel()

	s.Sprint = ebiten.IsKeyPressed(ebiten.KeyShift)
	s.PauseJustPressed = inpututil.IsKeyJustPressed(ebiten.KeyP)
	s.ResetJustPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
	s.SwapJustPressed = inpututil.IsKeyJustPressed(ebiten.KeyT)
}

// MoveOrder reports a click-to-move command and its screen position.
func (s *State) MoveOrder() (x, y int, ok bool) {
	if !s.LeftJustPressed {
		return 0, 0, false
	}
	return s.MouseX, s.MouseY, true
}
