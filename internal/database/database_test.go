// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nativewrappers/nativegen/internal/natives"
	"github.com/nativewrappers/nativegen/internal/registry"
)

func source(path, ns, name, hash, decl string, docs ...string) Source {
	lines := []string{
		"---",
		"ns: " + ns,
		"---",
		"## " + name,
		"```c",
		"// " + hash,
		decl,
		"```",
	}
	lines = append(lines, docs...)
	return Source{Path: path, Content: []byte(strings.Join(lines, "\n") + "\n")}
}

func emptyRegistries() (*registry.EnumRegistry, *registry.StructRegistry) {
	return registry.NewEnumRegistry(), registry.NewStructRegistry()
}

func TestBuild(t *testing.T) {
	sources := []Source{
		source("cam/a.md", "CAM", "GET_CAM_FOV", "0x1", "float GET_CAM_FOV(Cam cam)",
			"* **cam**: The camera.", "## Return value", "The field of view."),
		source("cam/b.md", "CAM", "DESTROY_CAM", "0x2", "void DESTROY_CAM(Cam cam)",
			"* **cam**: The camera."),
		source("ped/a.md", "PED", "DELETE_PED", "0x3", "void DELETE_PED(Ped* ped)",
			"* **ped**: Pointer to the ped handle."),
	}

	enums, structs := emptyRegistries()
	db, diags := Build(context.Background(), sources, enums, structs, Options{})
	require.NotNil(t, db)
	assert.Empty(t, diags)

	assert.Equal(t, 3, db.NativeCount())
	assert.Equal(t, []string{"CAM", "PED"}, db.NamespaceNames())

	// Natives within a namespace are sorted by name, not input order.
	cam := db.Namespaces["CAM"]
	require.Len(t, cam, 2)
	assert.Equal(t, "DESTROY_CAM", cam[0].Name)
	assert.Equal(t, "GET_CAM_FOV", cam[1].Name)
}

func TestBuild_DuplicateName(t *testing.T) {
	sources := []Source{
		source("a.md", "CAM", "GET_CAM_FOV", "0x1", "float GET_CAM_FOV(Cam cam)",
			"* **cam**: The camera.", "## Return value", "The fov."),
		source("b.md", "CAM", "get_cam_fov", "0x2", "float get_cam_fov(Cam cam)",
			"* **cam**: The camera.", "## Return value", "The fov."),
	}

	enums, structs := emptyRegistries()
	_, diags := Build(context.Background(), sources, enums, structs, Options{})

	// Name comparison is case insensitive and the error lands on every file
	// involved.
	dupes := diags.Errors()
	require.Len(t, dupes, 2)
	files := []string{dupes[0].File, dupes[1].File}
	assert.Contains(t, files, "a.md")
	assert.Contains(t, files, "b.md")
	assert.Contains(t, dupes[0].Message, "duplicate native name")
}

func TestBuild_DuplicateHash(t *testing.T) {
	sources := []Source{
		source("a.md", "CAM", "NATIVE_A", "0xAB", "void NATIVE_A(void)"),
		source("b.md", "CAM", "NATIVE_B", "0xab", "void NATIVE_B(void)"),
	}

	enums, structs := emptyRegistries()
	_, diags := Build(context.Background(), sources, enums, structs, Options{})

	dupes := diags.Errors()
	require.Len(t, dupes, 2)
	assert.Contains(t, dupes[0].Message, `duplicate native hash "0xAB"`)
}

func TestBuild_BadFileDoesNotAbortBatch(t *testing.T) {
	sources := []Source{
		{Path: "broken.md", Content: []byte("no frontmatter here\n")},
		source("ok.md", "CAM", "DESTROY_CAM", "0x2", "void DESTROY_CAM(Cam cam)",
			"* **cam**: The camera."),
	}

	enums, structs := emptyRegistries()
	db, diags := Build(context.Background(), sources, enums, structs, Options{})
	require.NotNil(t, db)

	assert.True(t, diags.HasErrors())
	assert.Equal(t, 1, db.NativeCount())
}

func TestBuild_StrictPromotesWarnings(t *testing.T) {
	// Non-void return without a return section is a warning normally.
	src := source("a.md", "CAM", "GET_CAM_FOV", "0x1", "float GET_CAM_FOV(Cam cam)",
		"* **cam**: The camera.")

	enums, structs := emptyRegistries()

	_, diags := Build(context.Background(), []Source{src}, enums, structs, Options{})
	assert.False(t, diags.HasErrors())
	assert.NotEmpty(t, diags.Warnings())

	enums, structs = emptyRegistries()
	_, diags = Build(context.Background(), []Source{src}, enums, structs, Options{Strict: true})
	assert.True(t, diags.HasErrors())
	assert.Empty(t, diags.Warnings())
}

func TestBuild_TracksUsage(t *testing.T) {
	enums, structs := emptyRegistries()
	enums.Add(&natives.EnumDefinition{Name: "eWeaponType", BaseType: "int"})
	structs.Add(&natives.StructDefinition{Name: "CameraInfo"})

	sources := []Source{
		source("a.md", "WEAPON", "GIVE_WEAPON", "0x1",
			"void GIVE_WEAPON(Ped ped, eWeaponType weapon)",
			"* **ped**: The ped.", "* **weapon**: The weapon."),
		source("b.md", "CAM", "GET_CAM_INFO", "0x2",
			"void GET_CAM_INFO(Cam cam, CameraInfo* info)",
			"* **cam**: The camera.", "* **info**: Receives the camera state."),
	}

	_, diags := Build(context.Background(), sources, enums, structs, Options{})
	require.False(t, diags.HasErrors())

	assert.Equal(t, []string{"GIVE_WEAPON"}, enums.Get("eWeaponType").UsedBy)
	assert.Equal(t, []string{"GET_CAM_INFO"}, structs.Get("CameraInfo").UsedBy)
}

func TestBuild_Progress(t *testing.T) {
	var sources []Source
	for i := 0; i < 20; i++ {
		name := fmt.Sprintf("NATIVE_%02d", i)
		sources = append(sources, source(name+".md", "TEST", name, fmt.Sprintf("0x%X", i+1),
			"void "+name+"(void)"))
	}

	var calls int
	enums, structs := emptyRegistries()
	db, diags := Build(context.Background(), sources, enums, structs, Options{
		Workers: 4,
		Progress: func(done, total int) {
			calls++
			assert.Equal(t, 20, total)
		},
	})
	require.NotNil(t, db)
	assert.Empty(t, diags)
	assert.Equal(t, 20, calls)
	assert.Equal(t, 20, db.NativeCount())
}

func TestBuild_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	enums, structs := emptyRegistries()
	db, diags := Build(ctx, []Source{source("docs/cam/a.md", "CAM", "X", "0x1", "void X(void)")}, enums, structs, Options{})
	assert.Nil(t, db)
	require.True(t, diags.HasErrors())
	assert.Contains(t, diags[0].Message, "canceled")
	// The diagnostic is not attributable to one file, so it names the batch root.
	assert.Equal(t, "docs/cam", diags[0].File)
}

func TestLoadRegistries_ValidatesStructs(t *testing.T) {
	enumsDir := t.TempDir()
	structsDir := t.TempDir()

	writeFile(t, structsDir, "holder.yaml", `
name: Holder
fields:
  - name: bad
    type: Vestor3
`)

	_, _, diags := LoadRegistries(enumsDir, structsDir)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "did you mean Vector3?")
	assert.Contains(t, diags[0].File, "holder.yaml")
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}
