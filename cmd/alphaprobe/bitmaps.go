package main

import (
	"os"
	"path/filepath"

	"github.com/function61/gokit/log/logex"
	"golang.org/x/image/bmp"
)

// one catalogued frame file
type bitmapInfo struct {
	Path   string
	Width  int
	Height int
}

// readBitmapFiles lists the *.bmp files of a directory, sorted by name (frame
// sequences are numbered, so name order is playback order). an unreadable directory is
// worth a log line but not an abort - the probe's verdict doesn't depend on frames
// existing.
func readBitmapFiles(dir string, logl *logex.Leveled) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logl.Error.Printf("reading directory: %v", err)
		return []string{}
	}

	bitmapFiles := []string{}
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) != ".bmp" {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		// stat the target, not the entry: a symlinked frame counts if it points at a
		// regular file, a dangling link doesn't
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		bitmapFiles = append(bitmapFiles, path)
	}

	return bitmapFiles
}

// inspectBitmaps reads just the headers to report what the frames look like, without
// decoding pixel data. broken files are skipped with a note, same soft path as above.
func inspectBitmaps(paths []string, logl *logex.Leveled) []bitmapInfo {
	infos := []bitmapInfo{}

	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			logl.Error.Printf("%s: %v", path, err)
			continue
		}

		config, err := bmp.DecodeConfig(file)
		file.Close()
		if err != nil {
			logl.Error.Printf("%s: not a usable bitmap: %v", path, err)
			continue
		}

		infos = append(infos, bitmapInfo{
			Path:   path,
			Width:  config.Width,
			Height: config.Height,
		})
	}

	return infos
}
