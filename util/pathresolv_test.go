/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package util

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFileFindsAbsolutePath(t *testing.T) {
	dir, err := ioutil.TempDir("", "reversigo-util")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "book.json")
	require.NoError(t, ioutil.WriteFile(file, []byte("{}"), 0644))

	resolved, err := ResolveFile(file)
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(file), resolved)
}

func TestResolveFileReportsMissingAbsolutePath(t *testing.T) {
	_, err := ResolveFile("/no/such/path/book.json")
	assert.Error(t, err)
}

func TestResolveFileFindsPathRelativeToWorkingDirectory(t *testing.T) {
	dir, err := ioutil.TempDir("", "reversigo-util-cwd")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "book.json"), []byte("{}"), 0644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(cwd)

	resolved, err := ResolveFile("book.json")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(resolved))
}

func TestResolveFolderFindsAbsolutePath(t *testing.T) {
	dir, err := ioutil.TempDir("", "reversigo-util-folder")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	resolved, err := ResolveFolder(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(dir), resolved)
}

func TestResolveCreateFolderCreatesMissingFolder(t *testing.T) {
	base, err := ioutil.TempDir("", "reversigo-util-create")
	require.NoError(t, err)
	defer os.RemoveAll(base)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(base))
	defer os.Chdir(cwd)

	resolved, err := ResolveCreateFolder("newbookdir")
	require.NoError(t, err)
	info, statErr := os.Stat(resolved)
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())
}
