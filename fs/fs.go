// Package fs writes wallpapers to the local filesystem.
package fs

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	// Decoders for formats the remix model may return.
	_ "image/gif"
	_ "image/png"

	"github.com/fwojciec/vibewall"
	"github.com/rivo/uniseg"
	_ "golang.org/x/image/webp"
)

const (
	// maxNameGraphemes bounds the prompt-derived part of a filename.
	maxNameGraphemes = 64
	idPrefixLen      = 6
	jpegQuality      = 95
	fallbackName     = "wallpaper"
)

// illegalChars are stripped from filenames on every platform.
const illegalChars = `/\:*?"<>|`

// Filename returns the download name for w: the prompt with whitespace runs
// replaced by underscores, followed by the first characters of the
// wallpaper's identifier.
func Filename(prompt string, w vibewall.Wallpaper) string {
	name := sanitize(prompt)
	if name == "" {
		name = fallbackName
	}
	id := w.ID
	if len(id) > idPrefixLen {
		id = id[:idPrefixLen]
	}
	return name + "_" + id + ".jpeg"
}

func sanitize(prompt string) string {
	joined := strings.Join(strings.Fields(prompt), "_")
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || strings.ContainsRune(illegalChars, r) {
			return -1
		}
		return r
	}, joined)
	// No hidden files.
	cleaned = strings.TrimLeft(cleaned, ".")
	return truncateGraphemes(cleaned, maxNameGraphemes)
}

// truncateGraphemes keeps at most n user-perceived characters of s so that
// combining sequences and emoji are never split.
func truncateGraphemes(s string, n int) string {
	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for i := 0; i < n && g.Next(); i++ {
		b.WriteString(g.Str())
	}
	return b.String()
}

// EnsureJPEG returns data unchanged when it is already JPEG, and re-encodes
// any other decodable image format as JPEG.
func EnsureJPEG(data []byte) ([]byte, error) {
	if isJPEG(data) {
		return data, nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func isJPEG(data []byte) bool {
	return len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF
}

// SaveWallpaper writes w as a JPEG file into dir, creating dir as needed,
// and returns the written path. The file is written atomically.
func SaveWallpaper(dir, prompt string, w vibewall.Wallpaper) (string, error) {
	data, err := EnsureJPEG(w.Image)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}
	path := filepath.Join(dir, Filename(prompt, w))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("rename temp file: %w", err)
	}
	return path, nil
}
