package config

// ScreenID identifies one value of the top-level screen state set.
// Exactly one screen is current at any time.
type ScreenID int

const (
	ScreenSplash ScreenID = iota
	ScreenTitle
	ScreenGameplay
)

func (s ScreenID) String() string {
	switch s {
	case ScreenSplash:
		return "Splash"
	case ScreenTitle:
		return "Title"
	case ScreenGameplay:
		return "Gameplay"
	}
	return "Unknown"
}
