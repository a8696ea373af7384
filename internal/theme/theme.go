package theme

import (
	"image/color"
)

// Theme defines the colours of the control panel.
type Theme struct {
	Name string

	// Panel frame
	PanelBackground color.RGBA
	TitleBackground color.RGBA
	TitleText       color.RGBA
	Border          color.RGBA
	Shadow          color.RGBA // alpha sets the shadow strength

	// Widgets
	Text             color.RGBA
	WidgetBackground color.RGBA
	WidgetHover      color.RGBA
	WidgetActive     color.RGBA
	SliderGrab       color.RGBA
}

// Default returns the built-in dark panel theme.
func Default() *Theme {
	return &Theme{
		Name:             "Default",
		PanelBackground:  color.RGBA{36, 36, 36, 240},
		TitleBackground:  color.RGBA{41, 74, 122, 255},
		TitleText:        color.RGBA{255, 255, 255, 255},
		Border:           color.RGBA{110, 110, 128, 255},
		Shadow:           color.RGBA{0, 0, 0, 140},
		Text:             color.RGBA{255, 255, 255, 255},
		WidgetBackground: color.RGBA{41, 74, 122, 138},
		WidgetHover:      color.RGBA{66, 150, 250, 102},
		WidgetActive:     color.RGBA{66, 150, 250, 171},
		SliderGrab:       color.RGBA{61, 133, 224, 255},
	}
}
