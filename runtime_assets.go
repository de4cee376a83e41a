package goform

import (
	"embed"
	"io/fs"
)

//go:embed assets/form.js
var embeddedClientAssets embed.FS

// ClientScriptFS exposes the progressive-enhancement client script
// (assets/form.js) so applications can serve it without a copy step.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(goform.ClientScriptFS()),
//	  ),
//	)
func ClientScriptFS() fs.FS {
	sub, err := fs.Sub(embeddedClientAssets, "assets")
	if err != nil {
		return embeddedClientAssets
	}
	return sub
}
