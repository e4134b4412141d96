// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

package golang

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
	enums := registry.NewEnumRegistry()
	enums.Add(&natives.EnumDefinition{
		Name:     "eCamMode",
		BaseType: "int",
		Members: []natives.EnumMember{
			{Name: "CAM_MODE_FIXED", Value: "0", Comment: "No interpolation."},
			{Name: "CAM_MODE_SMOOTH"},
			{Name: "CAM_MODE_DEBUG", Value: "0x10"},
		},
	})

	structs := registry.NewStructRegistry()
	structs.Add(&natives.StructDefinition{
		Name:             "CameraInfo",
		DefaultAlignment: 4,
		Fields: []natives.StructField{
			{Name: "fov", Type: natives.ParseType("float"), IsInput: true, IsOutput: true},
			{Name: "pad0", Type: natives.ParseType("byte"), ArraySize: 3, IsPadding: true},
			{Name: "active", Type: natives.ParseType("bool"), IsInput: true, IsOutput: true},
		},
	})

	return &database.NativeDatabase{
		Namespaces: map[string][]*natives.NativeDefinition{
			"CAM": {
				{
					Namespace:  "CAM",
					Name:       "GET_CAM_FOV",
					Hash:       "0x1AB2C8D4",
					ReturnType: natives.ParseType("float"),
					APISet:     "client",
					Parameters: []natives.NativeParameter{
						{Name: "cam", Type: natives.ParseType("Cam")},
					},
				},
			},
		},
		Enums:   enums,
		Structs: structs,
	}
}

func TestEmit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cam")

	e := &Emitter{}
	assert.Equal(t, "golang", e.Name())
	require.NoError(t, e.Emit(testDatabase(), dir))

	types := readFile(t, filepath.Join(dir, "types.gen.go"))
	assert.Contains(t, types, "package cam")
	assert.Contains(t, types, "Code generated by nativegen. DO NOT EDIT.")
	assert.Contains(t, types, "type NativeHash uint64")
	assert.Contains(t, types, "type Ped int32")
	assert.Contains(t, types, "type Vector3 struct")

	ns := readFile(t, filepath.Join(dir, "cam.gen.go"))
	assert.Contains(t, ns, "GetCamFOV NativeHash = 0x1AB2C8D4")
	assert.Contains(t, ns, "float GET_CAM_FOV(Cam cam)")

	enums := readFile(t, filepath.Join(dir, "enums.gen.go"))
	assert.Contains(t, enums, "type eCamMode int32")
	// Implicit values continue from the previous explicit one. The longest
	// member name sets the column, so only it keeps a single space.
	assert.Contains(t, enums, "CAM_MODE_SMOOTH eCamMode = 1")
	assert.Contains(t, enums, "eCamMode = 0x10")
	assert.Contains(t, enums, "// No interpolation.")

	structs := readFile(t, filepath.Join(dir, "structs.gen.go"))
	assert.Contains(t, structs, "type CameraInfo struct")
	assert.Contains(t, structs, "CameraInfoSize = 8")
	assert.Contains(t, structs, "func NewCameraInfo(buf []byte) CameraInfo")
	assert.Contains(t, structs, "func (v CameraInfo) FOV() float32")
	assert.Contains(t, structs, "func (v CameraInfo) SetFOV(")
	// Padding gets no accessors.
	assert.NotContains(t, structs, "Pad0")
}

func TestSignatureComment(t *testing.T) {
	def := &natives.NativeDefinition{
		Name:       "GET_ENTITY_COORDS",
		ReturnType: natives.ParseType("Vector3"),
		Parameters: []natives.NativeParameter{
			{Name: "entity", Type: natives.ParseType("Entity")},
			{Name: "alive", Type: natives.ParseType("BOOL")},
		},
	}
	assert.Equal(t, "Vector3 GET_ENTITY_COORDS(Entity entity, BOOL alive)", signatureComment(def))
}

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"GET_CAM_FOV", "GetCamFOV"},
		{"SET_ENTITY_COORDS", "SetEntityCoords"},
		{"GET_PLAYER_ID", "GetPlayerID"},
		{"DRAW_RGBA_BOX", "DrawRGBABox"},
		{"fov", "FOV"},
		{"some-flag_name", "SomeFlagName"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToPascalCase(tt.in), tt.in)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // test temp dir
	require.NoError(t, err)
	return string(data)
}
