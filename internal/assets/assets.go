// Package assets holds the embedded app descriptions and turns them into
// terminal output.
package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/charmbracelet/glamour"
)

//go:embed descriptions
var embeddedFS embed.FS

// ErrAssetNotFound is returned for references with no embedded file.
var ErrAssetNotFound = errors.New("asset not found")

const (
	StyleDark  = "dark"
	StylePlain = "notty"
)

// Renderer resolves description references to terminal text.
type Renderer struct {
	files fs.FS
	style string
}

// NewRenderer renders embedded descriptions with the named glamour style.
// An empty style means dark.
func NewRenderer(style string) *Renderer {
	sub, err := fs.Sub(embeddedFS, "descriptions")
	if err != nil {
		panic(err) // the directory is embedded at build time
	}
	return NewRendererFS(sub, style)
}

// NewRendererFS renders descriptions found at the root of files.
func NewRendererFS(files fs.FS, style string) *Renderer {
	if style == "" {
		style = StyleDark
	}
	return &Renderer{files: files, style: style}
}

// Markdown returns the referenced description converted to Markdown.
func (r *Renderer) Markdown(ref string) (string, error) {
	if ref == "" || path.Base(ref) != ref || !fs.ValidPath(ref) {
		return "", fmt.Errorf("%q: %w", ref, ErrAssetNotFound)
	}
	data, err := fs.ReadFile(r.files, ref)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%q: %w", ref, ErrAssetNotFound)
		}
		return "", fmt.Errorf("read %s: %w", ref, err)
	}
	md, err := HTMLToMarkdown(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("convert %s: %w", ref, err)
	}
	return md, nil
}

// Render returns the referenced description wrapped to width columns.
func (r *Renderer) Render(ref string, width int) (string, error) {
	md, err := r.Markdown(ref)
	if err != nil {
		return "", err
	}
	if width <= 0 {
		width = 80
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("renderer: %w", err)
	}
	out, err := tr.Render(md)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", ref, err)
	}
	return strings.TrimRight(out, "\n"), nil
}

// Refs lists every embedded description reference.
func (r *Renderer) Refs() ([]string, error) {
	entries, err := fs.ReadDir(r.files, ".")
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".html") {
			out = append(out, e.Name())
		}
	}
	return out, nil
}
