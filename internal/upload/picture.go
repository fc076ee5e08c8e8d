package upload

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/Padmajasharma/Bookshow/pkg/random"
	"github.com/disintegration/imaging"
)

const thumbnailSize = 500

// SavePicture stores the uploaded image under dir as a 500x500-bounded
// thumbnail with a random hex filename, and returns that filename. The
// caller has already validated the extension against the allow-list.
func SavePicture(fh *multipart.FileHeader, dir string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	hexName, err := random.Hex(8)
	if err != nil {
		return "", fmt.Errorf("generate filename: %w", err)
	}
	filename := hexName + strings.ToLower(filepath.Ext(fh.Filename))

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	thumb := imaging.Fit(img, thumbnailSize, thumbnailSize, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(dir, filename)); err != nil {
		return "", fmt.Errorf("save thumbnail: %w", err)
	}
	return filename, nil
}
