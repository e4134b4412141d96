// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

package markdown

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nativewrappers/nativegen/internal/database"
	"github.com/nativewrappers/nativegen/internal/natives"
	"github.com/nativewrappers/nativegen/internal/registry"
)

func testDatabase() *database.NativeDatabase {
	return &database.NativeDatabase{
		Namespaces: map[string][]*natives.NativeDefinition{
			"CAM": {
				{
					Namespace:  "CAM",
					Name:       "GET_CAM_COORD",
					Hash:       "0x1AB2C8D4",
					Aliases:    []string{"GET_CAM_POSITION"},
					ReturnType: natives.ParseType("Vector3"),
					APISet:     "client",
					Parameters: []natives.NativeParameter{
						{Name: "cam", Type: natives.ParseType("Cam"), Description: "The camera handle."},
						{Name: "relative", Type: natives.ParseType("BOOL"), DefaultValue: "false"},
					},
				},
				{
					Namespace:  "CAM",
					Name:       "SET_CAM_ACTIVE",
					Hash:       "0x2",
					ReturnType: natives.ParseType("void"),
					APISet:     "client",
					Deprecated: true,
				},
			},
		},
		Enums:   registry.NewEnumRegistry(),
		Structs: registry.NewStructRegistry(),
	}
}

func TestEmit(t *testing.T) {
	dir := t.TempDir()

	e := &Emitter{}
	assert.Equal(t, "markdown", e.Name())
	require.NoError(t, e.Emit(testDatabase(), dir))

	page := readFile(t, filepath.Join(dir, "cam.md"))
	assert.Contains(t, page, "# CAM")
	assert.Contains(t, page, "## GET_CAM_COORD")
	assert.Contains(t, page, "// 0x1AB2C8D4")
	assert.Contains(t, page, "Vector3 GET_CAM_COORD(Cam cam, BOOL relative = false)")
	assert.Contains(t, page, "* **cam**: The camera handle.")
	assert.Contains(t, page, "Aliases: GET_CAM_POSITION")
	assert.Contains(t, page, "**Deprecated.**")

	index := readFile(t, filepath.Join(dir, "index.md"))
	assert.Contains(t, index, "[CAM](cam.md)")
	assert.Contains(t, index, "| 2 |")
}

func TestSignature_PointerAndVoid(t *testing.T) {
	def := &natives.NativeDefinition{
		Name:       "GET_ENTITY_NAME",
		ReturnType: natives.ParseType("char*"),
		Parameters: []natives.NativeParameter{
			{Name: "coords", Type: natives.ParseType("Vector3*")},
		},
	}
	assert.Equal(t, "char* GET_ENTITY_NAME(Vector3* coords)", signature(def))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // test temp dir
	require.NoError(t, err)
	return string(data)
}
