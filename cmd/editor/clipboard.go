package main

import (
	"log"

	"golang.design/x/clipboard"

	"github.com/mordeng/hex-map-editor/hexmap"
)

// initClipboard makes copy/paste available when the platform supports it.
// Failure just disables the feature; the editor runs fine without it.
func (e *Editor) initClipboard() {
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
		return
	}
	e.clipboardReady = true
}

// CopyToClipboard puts the current document JSON on the system clipboard.
func (e *Editor) CopyToClipboard() {
	if !e.clipboardReady {
		return
	}
	data, err := hexmap.Encode(e.doc)
	if err != nil {
		log.Printf("copy error: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	log.Printf("copied %d tiles to clipboard", e.doc.Len())
}

// PasteFromClipboard imports a document from clipboard text. A malformed
// payload behaves exactly like a malformed file import: blocking notice, no
// document replacement.
func (e *Editor) PasteFromClipboard() {
	if !e.clipboardReady {
		return
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return
	}
	doc, err := hexmap.Decode(data)
	if err != nil {
		log.Printf("paste error: %v", err)
		e.notice.Show("Paste failed: " + err.Error())
		return
	}
	e.replaceDocument(doc)
	e.filename = ""
	e.stopWatcher()
	log.Printf("pasted document with %d tiles", doc.Len())
}
