package bubbletea_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"strconv"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/vibewall"
	bt "github.com/fwojciec/vibewall/bubbletea"
	"github.com/stretchr/testify/require"
)

// initModel creates a model and sends a WindowSizeMsg to initialize layout.
func initModel(t *testing.T, run bt.JobFunc) bt.Model {
	t.Helper()
	return initModelWithSize(t, run, 80, 40)
}

// initModelWithSize creates a model with a custom terminal size.
func initModelWithSize(t *testing.T, run bt.JobFunc, width, height int) bt.Model {
	t.Helper()
	m := bt.New(run, nopSave, vibewall.DefaultTheme(), bt.Config{})
	return updateModel(t, m, tea.WindowSizeMsg{Width: width, Height: height})
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// readyModel returns a model that has completed one generation of four
// wallpapers.
func readyModel(t *testing.T) bt.Model {
	t.Helper()
	m := initModel(t, nopJob)
	m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.Session().Loading())
	m = updateModel(t, m, bt.JobDoneMsg{Seq: m.Session().Seq(), Wallpapers: testWallpapers(t, "w")})
	require.Len(t, m.Session().Wallpapers(), 4)
	return m
}

// viewerModel returns a ready model with wallpaper #2 open full-screen.
func viewerModel(t *testing.T) bt.Model {
	t.Helper()
	m := readyModel(t)
	r := bt.TileRects(m)[1]
	m = updateModel(t, m, click(r.X+1, r.Y+1))
	require.True(t, m.ViewerOpen())
	return m
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// testWallpapers returns four small 9:16 JPEG wallpapers with ids prefix1..4.
func testWallpapers(t *testing.T, prefix string) []vibewall.Wallpaper {
	t.Helper()
	ws := make([]vibewall.Wallpaper, 4)
	for i := range ws {
		ws[i] = vibewall.Wallpaper{
			ID:    prefix + strconv.Itoa(i+1),
			Image: jpegBytes(t, color.RGBA{R: uint8(60 * i), G: 80, B: 200, A: 255}),
		}
	}
	return ws
}

func jpegBytes(t *testing.T, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 18, 32))
	for y := range 32 {
		for x := range 18 {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

// nopJob is a job function that returns no wallpapers.
func nopJob(_ context.Context, _ vibewall.Job) ([]vibewall.Wallpaper, error) {
	return nil, nil
}

func nopSave(_ string, _ vibewall.Wallpaper) (string, error) {
	return "", nil
}
