package main

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// compositeManagerSelection is the name of the manager selection a compositing manager
// holds for the given screen ("_NET_WM_CM_Sn" per EWMH).
func compositeManagerSelection(screenNum int) string {
	return fmt.Sprintf("_NET_WM_CM_S%d", screenNum)
}

// compositeManagerRunning reports whether some client currently owns the screen's
// compositing manager selection. ownership can change at any time (compositor started
// or stopped), so we ask the server fresh on every call instead of caching.
func compositeManagerRunning(X *xgb.Conn, screenNum int) (bool, error) {
	name := compositeManagerSelection(screenNum)

	atom, err := xproto.InternAtom(X, false, uint16(len(name)), name).Reply()
	if err != nil {
		return false, err
	}

	owner, err := xproto.GetSelectionOwner(X, atom.Atom).Reply()
	if err != nil {
		return false, err
	}

	return owner.Owner != xproto.WindowNone, nil
}
