package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jwulff/vaint-go/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checker() *domain.Frame {
	f := domain.NewFrame(4, 2)
	f.SetPixel(0, 0, domain.White)
	f.SetPixel(3, 1, domain.NewRGB(255, 0, 0))
	return f
}

func TestScale(t *testing.T) {
	img := Scale(checker(), 3)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())

	up := domain.FrameFromImage(img)
	assert.Equal(t, domain.White, *up.GetPixel(2, 2))
	assert.Equal(t, domain.Black, *up.GetPixel(3, 0))
	assert.Equal(t, domain.NewRGB(255, 0, 0), *up.GetPixel(11, 5))
}

func TestScaleBelowTwoIsIdentity(t *testing.T) {
	for _, s := range []int{-1, 0, 1} {
		img := Scale(checker(), s)
		assert.Equal(t, 4, img.Bounds().Dx())
	}
}

func TestWritePNGRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, checker(), 1))

	back, err := ReadPNG(&buf)
	require.NoError(t, err)
	assert.Equal(t, checker(), back)
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, SavePNG(path, checker(), 2))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	back, err := ReadPNG(f)
	require.NoError(t, err)
	assert.Equal(t, 8, back.Width)
	assert.Equal(t, 4, back.Height)
}

func TestSavePNGBadPath(t *testing.T) {
	err := SavePNG(filepath.Join(t.TempDir(), "missing", "out.png"), checker(), 1)
	assert.Error(t, err)
}

func TestReadPNGGarbage(t *testing.T) {
	_, err := ReadPNG(strings.NewReader("not a png"))
	assert.Error(t, err)
}
