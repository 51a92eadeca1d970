package main

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xrect"
)

// monitor is one connected RANDR output with its current placement. with multi-monitor
// setups X's root window spans all monitors, so anything drawing per-monitor needs
// these rectangles to know which slice of the root it owns.
type monitor struct {
	Name string
	Geom xrect.Rect
}

func getConnectedMonitors(X *xgb.Conn, root xproto.Window) ([]monitor, error) {
	if err := randr.Init(X); err != nil {
		return nil, err
	}

	// screen resources contain a list of names, crtcs, outputs and modes, among other
	// things
	resources, err := randr.GetScreenResources(X, root).Reply()
	if err != nil {
		return nil, err
	}

	monitors := []monitor{}

	for _, output := range resources.Outputs {
		outputInfo, err := randr.GetOutputInfo(X, output, 0).Reply()
		if err != nil {
			return nil, err
		}

		if outputInfo.Connection != randr.ConnectionConnected { // skip disconnected
			continue
		}

		if outputInfo.Crtc == 0 { // connected but not driving anything right now
			continue
		}

		// CRTC ("CRT Controller") is jargon for display controller. the one currently
		// assigned to the output knows where the output sits inside the root window.
		crtc, err := randr.GetCrtcInfo(X, outputInfo.Crtc, 0).Reply()
		if err != nil {
			return nil, err
		}

		monitors = append(monitors, monitor{
			Name: string(outputInfo.Name),
			Geom: xrect.New(int(crtc.X), int(crtc.Y), int(crtc.Width), int(crtc.Height)),
		})
	}

	return monitors, nil
}
