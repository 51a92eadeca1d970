package main

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// the atoms a window-creating renderer needs right after this probe. interning them
// here validates the connection early and warms the server's atom table.
type atomCollection struct {
	WMProtocols    xproto.Atom
	WMDeleteWindow xproto.Atom
	NetWMName      xproto.Atom
	UTF8String     xproto.Atom
}

// internAtoms resolves the whole collection in one batch: all requests are pipelined
// first, replies collected after, so the server sees a single burst instead of n
// round-trips.
func internAtoms(X *xgb.Conn) (*atomCollection, error) {
	names := []string{"WM_PROTOCOLS", "WM_DELETE_WINDOW", "_NET_WM_NAME", "UTF8_STRING"}

	cookies := make([]xproto.InternAtomCookie, len(names))
	for i, name := range names {
		cookies[i] = xproto.InternAtom(X, false, uint16(len(name)), name)
	}

	atoms := make([]xproto.Atom, len(names))
	for i, cookie := range cookies {
		reply, err := cookie.Reply()
		if err != nil {
			return nil, err
		}
		atoms[i] = reply.Atom
	}

	return &atomCollection{
		WMProtocols:    atoms[0],
		WMDeleteWindow: atoms[1],
		NetWMName:      atoms[2],
		UTF8String:     atoms[3],
	}, nil
}
