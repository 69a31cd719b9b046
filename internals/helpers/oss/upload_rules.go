// file: internals/helpers/oss/upload_rules.go
package helper

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// UploadRule constrains one upload field: allowed extensions + byte cap.
type UploadRule struct {
	AllowedExts []string // lowercase, with dot: ".jpg"
	MaxBytes    int64
}

var (
	// reference photo: image formats, <= 2MB
	RulePhoto = UploadRule{
		AllowedExts: []string{".jpg", ".jpeg", ".png"},
		MaxBytes:    2 * 1024 * 1024,
	}
	// passport copy: pdf or image, <= 5MB
	RuleDocument = UploadRule{
		AllowedExts: []string{".pdf", ".jpg", ".jpeg", ".png"},
		MaxBytes:    5 * 1024 * 1024,
	}
	// editor/blog images: web image formats, <= 2MB
	RuleEditorImage = UploadRule{
		AllowedExts: []string{".jpg", ".jpeg", ".png", ".gif", ".webp"},
		MaxBytes:    2 * 1024 * 1024,
	}
)

// CheckUploadMeta validates filename/size against a rule. Pure so the step
// validators can use it without a live request; returns a user-facing
// message, empty when the file passes.
func CheckUploadMeta(filename string, size int64, rule UploadRule) string {
	ext := strings.ToLower(filepath.Ext(filename))
	ok := false
	for _, allowed := range rule.AllowedExts {
		if ext == allowed {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Sprintf("unsupported file type %q (allowed: %s)", ext, strings.Join(rule.AllowedExts, ", "))
	}
	if size <= 0 {
		return "empty file"
	}
	if size > rule.MaxBytes {
		return fmt.Sprintf("file too large (%d KB, max %d KB)", size/1024, rule.MaxBytes/1024)
	}
	return ""
}

// CheckUpload is the FileHeader convenience wrapper around CheckUploadMeta.
func CheckUpload(fh *multipart.FileHeader, rule UploadRule) string {
	if fh == nil {
		return "file is required"
	}
	return CheckUploadMeta(fh.Filename, fh.Size, rule)
}
