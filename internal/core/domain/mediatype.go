package domain

import "strings"

// mediaTypes maps lowercase file extensions to the MIME types accepted
// by the OCR service. The table is fixed; a lookup miss is a validation
// failure, not a crash.
var mediaTypes = map[string]string{
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".avif": "image/avif",
}

// MediaTypeForExt returns the MIME type for a file extension.
// The extension is matched case-insensitively and must include the
// leading dot. The second return value reports whether the extension
// is supported.
func MediaTypeForExt(ext string) (string, bool) {
	mt, ok := mediaTypes[strings.ToLower(ext)]
	return mt, ok
}

// SupportedExtensions returns the set of supported file extensions.
// The result is a copy; callers may not mutate the table.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(mediaTypes))
	for ext := range mediaTypes {
		exts = append(exts, ext)
	}
	return exts
}
