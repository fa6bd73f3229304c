package atlaspng

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texpack/rectpack"
	"github.com/texpack/rectpack/dedup"
)

func TestWriteProducesPagesAndSidecar(t *testing.T) {
	dir := t.TempDir()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})

	pages := []rectpack.PageSize{{Width: 4, Height: 4}}
	placements := []rectpack.Placement{
		{ID: 0, Page: 0, Rect: rectpack.NewRect(0, 0, 2, 2), Rotated: false},
	}
	groups := []dedup.Group{
		{Width: 2, Height: 2, Members: []string{"a", "b"}},
	}

	err := Write(dir, "atlas", []*image.RGBA{img}, pages, placements, groups)
	require.NoError(t, err)

	pngPath := filepath.Join(dir, "atlas.png")
	_, err = os.Stat(pngPath)
	require.NoError(t, err, "expected atlas.png to exist")

	pngFile, err := os.Open(pngPath)
	require.NoError(t, err)
	defer pngFile.Close()
	decoded, err := png.Decode(pngFile)
	require.NoError(t, err)
	// A page with transparent pixels round-trips as non-premultiplied
	// RGBA, so convert before comparing.
	assert.Equal(t, color.RGBA{R: 255, A: 255}, color.RGBAModel.Convert(decoded.At(0, 0)))

	jsonFile, err := os.Open(filepath.Join(dir, "atlas.json"))
	require.NoError(t, err)
	defer jsonFile.Close()

	var sidecar Sidecar
	require.NoError(t, json.NewDecoder(jsonFile).Decode(&sidecar))

	require.Len(t, sidecar.Pages, 1)
	assert.Equal(t, "atlas.png", sidecar.Pages[0].File)

	// S2/dedup correctness: both names appear, sharing the same rectangle.
	require.Len(t, sidecar.Textures, 2)
	assert.Equal(t, sidecar.Textures[0].X, sidecar.Textures[1].X)
	assert.Equal(t, sidecar.Textures[0].Y, sidecar.Textures[1].Y)
	assert.Equal(t, sidecar.Textures[0].W, sidecar.Textures[1].W)
	assert.Equal(t, sidecar.Textures[0].H, sidecar.Textures[1].H)
	assert.ElementsMatch(t, []string{"a", "b"}, []string{sidecar.Textures[0].Name, sidecar.Textures[1].Name})
}

func TestWriteMultiPageFileNames(t *testing.T) {
	dir := t.TempDir()
	imgs := []*image.RGBA{
		image.NewRGBA(image.Rect(0, 0, 2, 2)),
		image.NewRGBA(image.Rect(0, 0, 2, 2)),
	}
	pages := []rectpack.PageSize{{Width: 2, Height: 2}, {Width: 2, Height: 2}}
	groups := []dedup.Group{{Width: 2, Height: 2, Members: []string{"only"}}}
	placements := []rectpack.Placement{{ID: 0, Page: 1, Rect: rectpack.NewRect(0, 0, 2, 2)}}

	err := Write(dir, "sheet", imgs, pages, placements, groups)
	require.NoError(t, err)

	for _, name := range []string{"sheet.png", "sheet.1.png", "sheet.json"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "expected %s to exist", name)
	}
}

func TestWriteMismatchedPagesAndImages(t *testing.T) {
	dir := t.TempDir()
	err := Write(dir, "bad", []*image.RGBA{image.NewRGBA(image.Rect(0, 0, 1, 1))},
		[]rectpack.PageSize{{Width: 1, Height: 1}, {Width: 1, Height: 1}}, nil, nil)
	require.Error(t, err)
}

// vim: ts=4
