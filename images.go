package primarium

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
)

const (
	maxPhotoWidth = 400
	jpegQuality   = 80
	maxUploadSize = 10 << 20 // 10MB
)

// processPhoto decodes an uploaded image, scales it down to maxPhotoWidth
// when wider, and re-encodes it as JPEG.
func processPhoto(src io.Reader) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxPhotoWidth {
		newH := h * maxPhotoWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxPhotoWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// saveMemberPhoto stores the optional "photo" form file and returns its
// path relative to the uploads directory. No file present is not an error;
// it returns an empty path.
func (a *App) saveMemberPhoto(c echo.Context, nameHint string) (string, error) {
	// FormFile fails for non-multipart requests and missing files alike;
	// both mean "no photo uploaded" here.
	file, err := c.FormFile("photo")
	if err != nil {
		return "", nil
	}
	if file.Size > maxUploadSize {
		return "", echo.NewHTTPError(http.StatusBadRequest, "photo too large (max 10MB)")
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	data, err := processPhoto(src)
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid photo: "+err.Error())
	}

	filename := Slugify(nameHint) + "-" + uuid.NewString()[:8] + ".jpg"
	if err := os.MkdirAll(a.Config.UploadsDir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(a.Config.UploadsDir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("write photo: %w", err)
	}
	return filename, nil
}

// removeMemberPhoto deletes a stored photo. A missing file is ignored.
func (a *App) removeMemberPhoto(path string) {
	if path == "" {
		return
	}
	_ = os.Remove(filepath.Join(a.Config.UploadsDir, filepath.Base(path)))
}
