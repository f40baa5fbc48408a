package loaders

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"math"
	"path/filepath"
	"testing"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255}) // white
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})     // red
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})     // green
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})     // blue
	return img
}

// TestSaveAndLoadImage writes the test image in each lossless format and loads it back
func TestSaveAndLoadImage(t *testing.T) {
	tmpDir := t.TempDir()

	expected := []struct {
		name  string
		color core.Vec3
	}{
		{"Top-left (white)", core.NewVec3(1, 1, 1)},
		{"Top-right (red)", core.NewVec3(1, 0, 0)},
		{"Bottom-left (green)", core.NewVec3(0, 1, 0)},
		{"Bottom-right (blue)", core.NewVec3(0, 0, 1)},
	}

	for _, ext := range []string{".png", ".bmp", ".tiff"} {
		t.Run(ext, func(t *testing.T) {
			// Nested path exercises directory creation
			testFile := filepath.Join(tmpDir, "nested", "test"+ext)
			if err := SaveImage(testFile, testImage()); err != nil {
				t.Fatalf("SaveImage failed: %v", err)
			}

			imageData, err := LoadImage(testFile)
			if err != nil {
				t.Fatalf("LoadImage failed: %v", err)
			}

			if imageData.Width != 2 || imageData.Height != 2 {
				t.Fatalf("Expected 2x2 image, got %dx%d", imageData.Width, imageData.Height)
			}
			if len(imageData.Pixels) != 4 {
				t.Fatalf("Expected 4 pixels, got %d", len(imageData.Pixels))
			}

			const tolerance = 0.01
			for i, e := range expected {
				got := imageData.Pixels[i]
				if math.Abs(got.X-e.color.X) > tolerance ||
					math.Abs(got.Y-e.color.Y) > tolerance ||
					math.Abs(got.Z-e.color.Z) > tolerance {
					t.Errorf("%s: expected %v, got %v", e.name, e.color, got)
				}
			}
		})
	}
}

func TestSaveImageJPEG(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "test.jpg")
	if err := SaveImage(testFile, testImage()); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}
	imageData, err := LoadImage(testFile)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if imageData.Width != 2 || imageData.Height != 2 {
		t.Errorf("Expected 2x2 image, got %dx%d", imageData.Width, imageData.Height)
	}
}

func TestSaveImageUnsupportedFormat(t *testing.T) {
	err := SaveImage(filepath.Join(t.TempDir(), "test.xyz"), testImage())
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadImageMissingFile(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestDecodeImageInvalidData(t *testing.T) {
	if _, err := DecodeImage(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("Expected error for invalid image data")
	}
}
