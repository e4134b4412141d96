// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func setupProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "nativegen.yaml"), `
version: 1
docs: ./docs
enums: ./defs/enums
structs: ./defs/structs
output: ./gen
`)
	writeFile(t, filepath.Join(dir, "docs", "cam", "get_cam_fov.md"), `---
ns: CAM
---
## GET_CAM_FOV
`+"```c\n// 0x1\nfloat GET_CAM_FOV(Cam cam)\n```"+`
* **cam**: The camera.
## Return value
The field of view.
`)
	writeFile(t, filepath.Join(dir, "defs", "enums", "cam_mode.yaml"), `
name: eCamMode
members:
  - name: CAM_MODE_FIXED
`)
	writeFile(t, filepath.Join(dir, "defs", "structs", "camera_info.yaml"), `
name: CameraInfo
fields:
  - name: fov
    type: float
`)

	return dir
}

func TestLoad(t *testing.T) {
	dir := setupProject(t)
	t.Chdir(dir)

	ctx, err := Load(context.Background())
	require.NoError(t, err)

	genCtx := From(ctx)
	require.NotNil(t, genCtx)

	assert.Equal(t, "./docs", genCtx.Config.Docs)
	assert.True(t, genCtx.Enums.Contains("eCamMode"))
	assert.True(t, genCtx.Structs.Contains("CameraInfo"))
	assert.Empty(t, genCtx.RegistryDiags)

	require.Len(t, genCtx.Sources, 1)
	assert.Contains(t, genCtx.Sources[0].Path, "get_cam_fov.md")
	assert.NotEmpty(t, genCtx.Sources[0].Content)
}

func TestLoad_NotInitialized(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load(context.Background())
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestLoad_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "nativegen.yaml"), "version: 99\ndocs: ./docs\n")
	t.Chdir(dir)

	_, err := Load(context.Background())
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_NoDocs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "nativegen.yaml"), "version: 1\ndocs: ./docs\n")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0o750))
	t.Chdir(dir)

	_, err := Load(context.Background())
	assert.ErrorIs(t, err, ErrNoDocs)
}

func TestFrom_Empty(t *testing.T) {
	assert.Nil(t, From(context.Background()))
}
