package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/mordeng/hex-map-editor/hexmap"
)

// SaveCurrent writes the document to the current filename, prompting for a
// path (prefilled with a timestamped default under maps/) when none is set.
func (e *Editor) SaveCurrent() {
	if e.filename == "" {
		suggested := filepath.Join("maps", fmt.Sprintf("map_%d.json", time.Now().Unix()))
		e.prompt.Open("Save map as:", suggested, func(path string) {
			if path == "" {
				return
			}
			e.saveAndRemember(path)
		})
		return
	}
	e.saveAndRemember(e.filename)
}

func (e *Editor) saveAndRemember(path string) {
	if err := e.SaveTo(path); err != nil {
		log.Printf("save error: %v", err)
		e.notice.Show("Save failed: " + err.Error())
		return
	}
	e.filename = path
	e.restartWatcher(path)
	log.Printf("saved to %s", path)
}

// SaveTo serializes the document to path.
func (e *Editor) SaveTo(path string) error {
	data, err := hexmap.Encode(e.doc)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	// the watcher would see our own write as an external change
	e.suspendWatch()
	defer e.resumeWatch()
	return os.WriteFile(path, data, 0644)
}

// LoadFrom imports a document from path. All-or-nothing: on any error the
// current document stays untouched.
func (e *Editor) LoadFrom(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	doc, err := hexmap.Decode(data)
	if err != nil {
		return err
	}
	e.replaceDocument(doc)
	e.filename = path
	e.restartWatcher(path)
	log.Printf("loaded %s (%d tiles)", path, doc.Len())
	return nil
}
