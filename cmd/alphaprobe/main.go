package main

import (
	"log"
	"os"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/function61/gokit/app/dynversion"
	"github.com/function61/gokit/log/logex"
	"github.com/function61/gokit/os/osutil"
	"github.com/spf13/cobra"
)

func main() {
	app := &cobra.Command{
		Use:     os.Args[0] + " [image-dir]",
		Short:   "Probe X11 for translucent rendering readiness: ARGB visual, compositor, wallpaper frames",
		Version: dynversion.Version,
		Args:    cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			imageDir := ""
			if len(args) == 1 {
				imageDir = args[0]
			}

			osutil.ExitIfError(logic(logex.StandardLogger(), imageDir))
		},
	}

	osutil.ExitIfError(app.Execute())
}

func logic(logger *log.Logger, imageDir string) error {
	logl := logex.Levels(logger)

	if imageDir != "" {
		logl.Info.Println("loading images")

		frames := inspectBitmaps(readBitmapFiles(imageDir, logl), logl)
		for _, frame := range frames {
			logl.Debug.Printf("%s: %dx%d", frame.Path, frame.Width, frame.Height)
		}

		logl.Info.Printf("%d frame(s) in %s", len(frames), imageDir)
	}

	xutil, err := xgbutil.NewConn()
	if err != nil {
		return err
	}
	X := xutil.Conn()
	defer X.Close()

	screenNum := X.DefaultScreen
	setup := xproto.Setup(X)

	for i, screen := range setup.Roots {
		logl.Info.Printf(
			"screen %d: root %#x, %dx%d px, root depth %d, root visual %#x",
			i,
			screen.Root,
			screen.WidthInPixels, screen.HeightInPixels,
			screen.RootDepth,
			screen.RootVisual)
	}

	logl.Info.Println("loading monitors")

	monitors, err := getConnectedMonitors(X, setup.Roots[screenNum].Root)
	if err != nil {
		return err
	}
	for _, mon := range monitors {
		logl.Info.Printf("%s: %dx%d+%d+%d",
			mon.Name,
			mon.Geom.Width(), mon.Geom.Height(),
			mon.Geom.X(), mon.Geom.Y())
	}

	atoms, err := internAtoms(X)
	if err != nil {
		return err
	}
	logl.Debug.Printf(
		"atoms: WM_PROTOCOLS=%d WM_DELETE_WINDOW=%d _NET_WM_NAME=%d UTF8_STRING=%d",
		atoms.WMProtocols,
		atoms.WMDeleteWindow,
		atoms.NetWMName,
		atoms.UTF8String)

	choice, err := chooseVisual(X, screenNum)
	if err != nil {
		return err
	}
	logl.Info.Printf("using visual %#x with depth %d", choice.Visual, choice.Depth)

	// a real application should also react to a composite manager starting/stopping at
	// runtime; we answer for this moment only
	transparency, err := compositeManagerRunning(X, screenNum)
	if err != nil {
		return err
	}
	logl.Info.Printf("composite manager running / working transparency: %v", transparency)

	return nil
}
