package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProjectRoot(t *testing.T) {
	root, err := GetProjectRoot()
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(root, "go.mod"))
	assert.NoError(t, err)
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// second call is a no-op
	assert.NoError(t, EnsureDir(dir))
}

func TestReadOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("  hello world \n"), 0644))

	text, err := ReadOutputFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)

	_, err = ReadOutputFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestCopyFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "src.mp3")
	require.NoError(t, os.WriteFile(src, []byte("audio-bytes"), 0644))

	dst := filepath.Join(t.TempDir(), "nested", "dst.mp3")
	require.NoError(t, CopyFile(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "audio-bytes", string(data))
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain.mp3", "plain.mp3"},
		{`a/b\c:d.mp3`, "a_b_c_d.mp3"},
		{`what? "quotes" <here>`, "what_ _quotes_ _here_"},
		{"  padded  ", "padded"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFileName(tt.in))
	}
}
