package evidence

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caseprep/internal/fault"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestReadAll_ReadsSupportedFilesInStableOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b_police_report.txt", "Report of incident on 3/7/2021.")
	writeFile(t, dir, "a_passport.txt", "Passport of Maria Lopez.")

	r := NewReader(PlainText{})
	files, err := r.ReadAll(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a_passport.txt", files[0].FileName)
	assert.Equal(t, "b_police_report.txt", files[1].FileName)
	assert.Contains(t, files[0].Text, "Passport")
}

func TestReadAll_RejectsUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "photo.jpg", "not really a photo")

	r := NewReader(PlainText{})
	_, err := r.ReadAll(context.Background(), dir)
	require.Error(t, err)
	assert.Equal(t, fault.CodeUnsupportedInputFormat, fault.CodeOf(err))
}

func TestReadAll_EmptyTextIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "scanned.txt", "   \n\t ")

	r := NewReader(PlainText{})
	_, err := r.ReadAll(context.Background(), dir)
	require.Error(t, err)
	assert.Equal(t, fault.CodeEmptyExtractableText, fault.CodeOf(err))
}

func TestReadAll_SkipsHiddenFilesAndDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".DS_Store", "junk")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0755))
	writeFile(t, dir, "statement.txt", "Client statement.")

	r := NewReader(PlainText{})
	files, err := r.ReadAll(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "statement.txt", files[0].FileName)
}
