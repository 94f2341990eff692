// Package web embeds the dashboard page template and its static assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html static/*
var assetsFS embed.FS

// MainTemplate is the name of the landing page template.
const MainTemplate = "main.html"

// Templates parses every embedded page template.
func Templates() (*template.Template, error) {
	t, err := template.ParseFS(assetsFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	return t, nil
}

// Static returns the embedded static directory for /static.
func Static() (http.FileSystem, error) {
	sub, err := fs.Sub(assetsFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static fs: %w", err)
	}
	return http.FS(sub), nil
}
