package controller

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"jewelry_backend/internals/constants"
	helper "jewelry_backend/internals/helpers"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sniffBytes = 3072

const MsgNotImage = "File must be an image (jpeg, png, gif, webp, svg or avif)"

type UploadController struct {
	Dir      string
	BaseURL  string
	MaxBytes int64
	Log      *zap.Logger
}

func fileError(msg string) error {
	return helper.ValidationFailed(msg, []helper.FieldError{{Field: "file", Message: msg}})
}

// sniff detects the MIME type from the file's leading bytes, ignoring the
// client supplied Content-Type.
func sniff(r io.Reader) (string, error) {
	head := make([]byte, sniffBytes)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	mt := mimetype.Detect(head[:n])
	return strings.TrimSpace(strings.SplitN(mt.String(), ";", 2)[0]), nil
}

// POST /api/uploads (multipart "file")
func (u *UploadController) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return fileError("File is required")
	}
	if fh.Size == 0 {
		return fileError("File is empty")
	}
	if fh.Size > u.MaxBytes {
		return fileError(fmt.Sprintf("File must be smaller than %d bytes", u.MaxBytes))
	}

	f, err := fh.Open()
	if err != nil {
		return helper.ServerError("Failed to read upload", err)
	}
	mime, err := sniff(f)
	_ = f.Close()
	if err != nil {
		return helper.ServerError("Failed to read upload", err)
	}
	ext, ok := constants.UploadExtension(mime)
	if !ok {
		return fileError(MsgNotImage)
	}

	name := uuid.NewString() + ext
	if err := c.SaveFile(fh, filepath.Join(u.Dir, name)); err != nil {
		return helper.ServerError("Failed to store upload", err)
	}
	u.Log.Info("📦 file uploaded", zap.String("name", name), zap.String("mime", mime), zap.Int64("size", fh.Size))

	return helper.JsonCreated(c, "File uploaded successfully", fiber.Map{
		"url":      u.BaseURL + "/uploads/" + name,
		"name":     name,
		"mimeType": mime,
		"size":     fh.Size,
	})
}
