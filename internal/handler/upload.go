package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"legajos/internal/domain"
	"legajos/internal/port"
)

// readUpload converts one multipart file into an ExtractInput, resolving
// the content type from the declared header or the file extension and
// enforcing the size limit.
func readUpload(header *multipart.FileHeader, maxFileSizeMB int64) (port.ExtractInput, error) {
	var input port.ExtractInput

	if maxFileSizeMB > 0 && header.Size > maxFileSizeMB*1024*1024 {
		return input, domain.ErrFileTooLarge
	}

	contentType := header.Header.Get("Content-Type")
	if _, ok := domain.AllowedContentTypes[contentType]; !ok {
		// Browsers are unreliable about MIME types for office formats;
		// fall back to the extension.
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")
		byExt, ok := domain.AllowedExtensions[ext]
		if !ok {
			return input, fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, header.Filename)
		}
		contentType = byExt
	}

	f, err := header.Open()
	if err != nil {
		return input, fmt.Errorf("opening upload %s: %w", header.Filename, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return input, fmt.Errorf("reading upload %s: %w", header.Filename, err)
	}

	input.FileBytes = data
	input.ContentType = contentType
	input.FileName = header.Filename
	return input, nil
}
