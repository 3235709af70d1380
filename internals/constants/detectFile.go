package constants

// Image types accepted by the upload endpoint, keyed by sniffed MIME type.
var uploadImageExt = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
	"image/avif":    ".avif",
}

// UploadExtension returns the stored file extension for a sniffed MIME type.
func UploadExtension(mime string) (string, bool) {
	ext, ok := uploadImageExt[mime]
	return ext, ok
}
