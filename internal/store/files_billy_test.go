package store

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFiles_WriteReadRemove(t *testing.T) {
	fs := memfs.New()
	files := NewLocalFilesOn(fs)

	ok, err := files.Exists("fr_FR.lang")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, files.WriteFile("fr_FR.lang", []byte("hello=bonjour\n")))
	require.NoError(t, files.WriteFile("fr_FR.lang", []byte("hello=salut\n")))

	ok, err = files.Exists("fr_FR.lang")
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := files.ReadFile("fr_FR.lang")
	require.NoError(t, err)
	assert.Equal(t, "hello=salut\n", string(data))

	// no temp files left behind
	infos, err := fs.ReadDir(".")
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "fr_FR.lang", infos[0].Name())

	require.NoError(t, files.Remove("fr_FR.lang"))
	require.NoError(t, files.Remove("fr_FR.lang"))

	_, err = files.ReadFile("fr_FR.lang")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLocalFiles_CreatesParentDirs(t *testing.T) {
	files := NewLocalFilesOn(memfs.New())

	require.NoError(t, files.WriteFile("extra/de_DE.lang", []byte("x")))
	data, err := files.ReadFile("./extra//de_DE.lang")
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestLocalFiles_UnsafePaths(t *testing.T) {
	files := NewLocalFilesOn(memfs.New())

	for _, name := range []string{"", ".", "..", "../escape.lang", "a/../../b", "/etc/passwd"} {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, files.WriteFile(name, []byte("x")), ErrUnsafePath)
			_, err := files.ReadFile(name)
			assert.ErrorIs(t, err, ErrUnsafePath)
			_, err = files.Exists(name)
			assert.ErrorIs(t, err, ErrUnsafePath)
			assert.ErrorIs(t, files.Remove(name), ErrUnsafePath)
		})
	}
}

func TestCleanPath(t *testing.T) {
	p, err := CleanPath(" sub/./fr_FR.lang ")
	require.NoError(t, err)
	assert.Equal(t, "sub/fr_FR.lang", p)
}

func TestNewLocalFiles_OS(t *testing.T) {
	dir := t.TempDir() + "/lang"

	files, err := NewLocalFiles(dir)
	require.NoError(t, err)
	require.NoError(t, files.WriteFile("it_IT.lang", []byte("ciao")))

	data, err := files.ReadFile("it_IT.lang")
	require.NoError(t, err)
	assert.Equal(t, "ciao", string(data))

	_, err = NewLocalFiles("  ")
	assert.Error(t, err)
}
