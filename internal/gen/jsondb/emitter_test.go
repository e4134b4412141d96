// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

package jsondb

import (
	"encoding/json"
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
		Name:     "eWeaponType",
		BaseType: "Hash",
		Members:  []natives.EnumMember{{Name: "WEAPON_UNARMED", Value: "0"}},
		UsedBy:   []string{"GIVE_WEAPON"},
	})

	structs := registry.NewStructRegistry()
	structs.Add(&natives.StructDefinition{
		Name:             "CameraInfo",
		DefaultAlignment: 4,
		Fields: []natives.StructField{
			{Name: "fov", Type: natives.ParseType("float"), IsInput: true, IsOutput: true},
		},
	})

	weapon := natives.ParseType("eWeaponType")
	weapon.ResolveEnumType(enums.GetBaseType)

	return &database.NativeDatabase{
		Namespaces: map[string][]*natives.NativeDefinition{
			"WEAPON": {
				{
					Namespace:  "WEAPON",
					Name:       "GIVE_WEAPON",
					Hash:       "0xC4D88A85",
					ReturnType: natives.ParseType("void"),
					APISet:     "client",
					Parameters: []natives.NativeParameter{
						{Name: "ped", Type: natives.ParseType("Ped"), Description: "The ped."},
						{Name: "weapon", Type: weapon, DefaultValue: "WEAPON_UNARMED"},
						{Name: "success", Type: natives.ParseType("BOOL*"), Flags: natives.FlagOutput},
						{Name: "ammo", Type: natives.ParseType("int*"), Flags: natives.FlagOutput | natives.FlagIn},
					},
					Deprecated:        true,
					DeprecatedMessage: "use GIVE_WEAPON_TO_PED",
				},
			},
		},
		Enums:   enums,
		Structs: structs,
	}
}

func TestEmit(t *testing.T) {
	dir := t.TempDir()

	e := &Emitter{}
	assert.Equal(t, "jsondb", e.Name())
	assert.Equal(t, ".json", e.FileExtension())
	require.NoError(t, e.Emit(testDatabase(), dir))

	var nss map[string][]jsonNative
	decodeFile(t, filepath.Join(dir, "natives.json"), &nss)
	require.Len(t, nss["WEAPON"], 1)

	n := nss["WEAPON"][0]
	assert.Equal(t, "GIVE_WEAPON", n.Name)
	assert.Equal(t, "0xC4D88A85", n.Hash)
	assert.Equal(t, "void", n.ReturnType)
	assert.Equal(t, "use GIVE_WEAPON_TO_PED", n.Deprecated)
	require.Len(t, n.Parameters, 4)
	assert.Equal(t, "The ped.", n.Parameters[0].Description)
	assert.Equal(t, "WEAPON_UNARMED", n.Parameters[1].Default)
	assert.Equal(t, "BOOL*", n.Parameters[2].Type)
	assert.True(t, n.Parameters[2].Output)
	assert.False(t, n.Parameters[2].InOut)
	assert.True(t, n.Parameters[3].InOut)
	assert.False(t, n.Parameters[3].Output)

	var enums map[string]jsonEnum
	decodeFile(t, filepath.Join(dir, "enums.json"), &enums)
	require.Contains(t, enums, "eWeaponType")
	assert.Equal(t, "Hash", enums["eWeaponType"].BaseType)
	assert.Equal(t, []string{"GIVE_WEAPON"}, enums["eWeaponType"].UsedBy)

	var structs map[string]jsonStruct
	decodeFile(t, filepath.Join(dir, "structs.json"), &structs)
	require.Contains(t, structs, "CameraInfo")
	assert.Equal(t, uint32(4), structs["CameraInfo"].Alignment)
	require.Len(t, structs["CameraInfo"].Fields, 1)
	assert.Equal(t, "float", structs["CameraInfo"].Fields[0].Type)
}

func decodeFile(t *testing.T, path string, v any) {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // test temp dir
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}
