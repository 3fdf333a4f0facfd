package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	assert.Equal(t, "peduli-anak-yatim", GenerateSlug("Peduli Anak Yatim"))
	assert.Equal(t, "wakaf-mushaf-al-quran", GenerateSlug("  Wakaf Mushaf Al-Quran! "))
	assert.Equal(t, "bantuan-palestina-2024", GenerateSlug("Bantuan Palestina (2024)"))
	assert.Equal(t, "", GenerateSlug("***"))
}

func TestGenerateSlugCollapsesDashes(t *testing.T) {
	assert.Equal(t, "jumat-berkah", GenerateSlug("Jumat --- Berkah"))
}
