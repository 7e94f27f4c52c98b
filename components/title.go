package components

import (
	"github.com/automoto/paddleball/ui"
	"github.com/yohamta/donburi"
)

type TitleData struct {
	Menu *ui.TitleMenu
}

var Title = donburi.NewComponentType[TitleData]()
