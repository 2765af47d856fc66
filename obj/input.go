package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const stickDeadzone = 0.3

// Input holds the input state polled for the current frame.
type Input struct {
	// MoveX/MoveY are in [-1, 1]; the vector is at most unit length.
	MoveX float64
	MoveY float64
	// PausePressed is true on the frame Escape (or gamepad start) was pressed.
	PausePressed bool
	// CopyPressed is true on the frame C was pressed.
	CopyPressed bool
	// QuitPressed is true on the frame F12 was pressed.
	QuitPressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls keyboard and the first gamepad.
func (i *Input) Update() {
	i.QuitPressed = inpututil.IsKeyJustPressed(ebiten.KeyF12)
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.CopyPressed = inpututil.IsKeyJustPressed(ebiten.KeyC)

	var mx, my float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		mx -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		mx += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		my -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		my += 1
	}

	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		gid := ids[0]
		lx := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(lx) > stickDeadzone {
			mx = lx
		}
		if math.Abs(ly) > stickDeadzone {
			my = ly
		}
		if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight) {
			i.PausePressed = true
		}
	}

	i.SetMove(mx, my)
}

// SetMove stores a movement vector, shrinking it to unit length if needed.
func (i *Input) SetMove(x, y float64) {
	if l := math.Hypot(x, y); l > 1 {
		x /= l
		y /= l
	}
	i.MoveX = x
	i.MoveY = y
}
