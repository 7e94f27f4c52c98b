package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TitleMenu holds the ebitenui interface for the title screen
type TitleMenu struct {
	UI *ebitenui.UI

	// Callbacks
	OnPlay func()
	OnQuit func()

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face

	// Play is one-shot per title visit; the fade carries the rest
	played bool
}

// NewTitleMenu creates the title menu with ebitenui
func NewTitleMenu(onPlay, onQuit func()) *TitleMenu {
	tm := &TitleMenu{
		OnPlay: onPlay,
		OnQuit: onQuit,
	}

	tm.loadFonts()
	tm.buildUI()

	return tm
}

func (tm *TitleMenu) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	tm.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   32,
	}
	tm.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
}

func (tm *TitleMenu) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("PADDLEBALL", &tm.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	playButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 28)),
		widget.ButtonOpts.Image(tm.buttonImage()),
		widget.ButtonOpts.Text("PLAY", &tm.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			tm.Play()
		}),
	)
	contentContainer.AddChild(playButton)

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 28)),
		widget.ButtonOpts.Image(tm.buttonImage()),
		widget.ButtonOpts.Text("QUIT", &tm.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if tm.OnQuit != nil {
				tm.OnQuit()
			}
		}),
	)
	contentContainer.AddChild(quitButton)

	rootContainer.AddChild(contentContainer)

	tm.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (tm *TitleMenu) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

// Play fires the play callback once. The keyboard shortcut and the
// button both land here, so mashing both cannot double-trigger the
// transition.
func (tm *TitleMenu) Play() {
	if tm.played || tm.OnPlay == nil {
		return
	}
	tm.played = true
	tm.OnPlay()
}

// Update calls the UI's Update method
func (tm *TitleMenu) Update() {
	tm.UI.Update()
}

// Draw renders the menu onto the screen
func (tm *TitleMenu) Draw(screen *ebiten.Image) {
	tm.UI.Draw(screen)
}
