package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckUploadMeta(t *testing.T) {
	t.Run("photo rule", func(t *testing.T) {
		assert.Empty(t, CheckUploadMeta("me.jpg", 500*1024, RulePhoto))
		assert.Empty(t, CheckUploadMeta("ME.PNG", 1024, RulePhoto))

		assert.NotEmpty(t, CheckUploadMeta("me.pdf", 1024, RulePhoto))
		assert.NotEmpty(t, CheckUploadMeta("me.jpg", 3*1024*1024, RulePhoto))
		assert.NotEmpty(t, CheckUploadMeta("me.jpg", 0, RulePhoto))
		assert.NotEmpty(t, CheckUploadMeta("noext", 1024, RulePhoto))
	})

	t.Run("document rule accepts pdf", func(t *testing.T) {
		assert.Empty(t, CheckUploadMeta("passport.pdf", 4*1024*1024, RuleDocument))
		assert.NotEmpty(t, CheckUploadMeta("passport.pdf", 6*1024*1024, RuleDocument))
		assert.NotEmpty(t, CheckUploadMeta("passport.docx", 1024, RuleDocument))
	})

	t.Run("editor rule accepts webp and gif", func(t *testing.T) {
		assert.Empty(t, CheckUploadMeta("fig.webp", 1024, RuleEditorImage))
		assert.Empty(t, CheckUploadMeta("anim.gif", 1024, RuleEditorImage))
		assert.NotEmpty(t, CheckUploadMeta("clip.mp4", 1024, RuleEditorImage))
	})

	t.Run("exactly at the cap passes", func(t *testing.T) {
		assert.Empty(t, CheckUploadMeta("me.jpg", RulePhoto.MaxBytes, RulePhoto))
	})
}

func TestExtractKeyFromPublicURL(t *testing.T) {
	key, err := ExtractKeyFromPublicURL("https://bucket.oss-ap-southeast-1.aliyuncs.com/uploads/visa/a.pdf")
	assert.NoError(t, err)
	assert.Equal(t, "uploads/visa/a.pdf", key)

	_, err = ExtractKeyFromPublicURL("not a url")
	assert.Error(t, err)
}
