package main

// X's core protocol doesn't say which visuals carry a real alpha channel, but the
// RENDER extension does: its picture formats spell out channel masks and bit
// positions. We look for the canonical ARGB32 layout and then map that format back to
// a visual of our screen. Without RENDER (or without a match) we stay on the root
// visual, which just means no transparency.

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/render"
	"github.com/BurntSushi/xgb/xproto"
)

// depth + visual id pair a renderer should create its window with
type visualChoice struct {
	Depth  byte
	Visual xproto.Visualid
}

// chooseVisual tries to find a depth=32 visual with alpha support and falls back to
// the screen's default visual. the fallback is not an error; callers can tell alpha
// support is missing from Depth being the root depth instead of 32.
func chooseVisual(X *xgb.Conn, screenNum int) (visualChoice, error) {
	screen := &xproto.Setup(X).Roots[screenNum]

	// Init fails when the server doesn't speak RENDER. that's the "extension absent"
	// answer, not a failure of ours.
	if err := render.Init(X); err != nil {
		return selectVisual(screen, screenNum, false, nil), nil
	}

	formats, err := render.QueryPictFormats(X).Reply()
	if err != nil {
		return visualChoice{}, err
	}

	return selectVisual(screen, screenNum, true, formats), nil
}

// selectVisual is the decision itself: plain function of its inputs, no round-trips.
func selectVisual(
	screen *xproto.ScreenInfo,
	screenNum int,
	renderPresent bool,
	formats *render.QueryPictFormatsReply,
) visualChoice {
	fallback := visualChoice{Depth: screen.RootDepth, Visual: screen.RootVisual}

	if !renderPresent || formats == nil {
		return fallback
	}

	format, found := findArgb32Format(formats.Formats)
	if !found {
		return fallback
	}

	// the extension's screen catalog is indexed like setup's root list, but trust it
	// only as far as it goes
	if screenNum < 0 || screenNum >= len(formats.Screens) {
		return fallback
	}

	visual, found := findVisualForFormat(formats.Screens[screenNum], format.Id)
	if !found {
		return fallback
	}

	return visualChoice{Depth: format.Depth, Visual: visual}
}

// findArgb32Format picks the ARGB32 picture format servers with RENDER are expected to
// support: direct color, depth 32, 8 bits per channel with no padding, laid out
// A-R-G-B from the high byte down. first match in server order wins.
func findArgb32Format(formats []render.Pictforminfo) (render.Pictforminfo, bool) {
	for _, f := range formats {
		if f.Type != render.PictTypeDirect || f.Depth != 32 {
			continue
		}

		d := f.Direct
		if d.RedMask != 0xff || d.GreenMask != 0xff || d.BlueMask != 0xff || d.AlphaMask != 0xff {
			continue
		}

		if d.RedShift == 16 && d.GreenShift == 8 && d.BlueShift == 0 && d.AlphaShift == 24 {
			return f, true
		}
	}

	return render.Pictforminfo{}, false
}

// findVisualForFormat maps a picture format back to a concrete visual of the screen.
// many visuals may reference the same format; the first in catalog order wins.
func findVisualForFormat(screen render.Pictscreen, format render.Pictformat) (xproto.Visualid, bool) {
	for _, depth := range screen.Depths {
		for _, visual := range depth.Visuals {
			if visual.Format == format {
				return visual.Visual, true
			}
		}
	}

	return 0, false
}
