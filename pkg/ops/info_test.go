package ops

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xenia-tools/xexkit/internal/format"
	"github.com/xenia-tools/xexkit/xex"
)

func TestInfo(t *testing.T) {
	img := buildImage(t,
		[2]uint32{format.KeyEntryPoint, 0x82010000},
		[2]uint32{format.PrivilegesKey, format.PAL50IncompatibleMask},
		[2]uint32{format.KeyOriginalPEName, 0}, // block offset patched below
	)
	binary.BigEndian.PutUint32(img[format.ModuleFlagsOffset:], format.ModuleFlagTitle)
	nameOff := format.DirectoryBase + 2*format.DirEntrySize + format.DirEntryValueOffset
	binary.BigEndian.PutUint32(img[nameOff:], uint32(len(img)))
	block := make([]byte, 4+len("default.exe")+1)
	binary.BigEndian.PutUint32(block, uint32(len(block)))
	copy(block[4:], "default.exe")
	img = append(img, block...)

	path := writeTempImage(t, img)
	info, err := Info(path)
	require.NoError(t, err)
	require.Equal(t, path, info.Path)
	require.Equal(t, len(img), info.Size)
	require.Equal(t, []string{"Title Module"}, info.ModuleFlagNames)
	require.Equal(t, uint32(3), info.DirectoryEntryCount)
	require.Equal(t, "default.exe", info.OriginalPEName)
	require.NotNil(t, info.Privileges)
	require.Equal(t, uint32(format.PAL50IncompatibleMask), info.Privileges.Value)
	require.Contains(t, info.Privileges.Set, "PAL-50 Incompatible")
}

func TestInfoToleratesMissingOptionalEntries(t *testing.T) {
	path := writeTempImage(t, buildImage(t,
		[2]uint32{format.KeyEntryPoint, 0x82010000},
	))
	info, err := Info(path)
	require.NoError(t, err)
	require.Empty(t, info.OriginalPEName)
	require.Nil(t, info.Privileges)
}

func TestEntries(t *testing.T) {
	path := writeTempImage(t, buildImage(t,
		[2]uint32{format.KeyImportLibraries, 0x1234},
		[2]uint32{format.PrivilegesKey, 0},
		[2]uint32{0xDEADBEEF, 7},
	))
	entries, err := Entries(path)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	require.Equal(t, 0, entries[0].Index)
	require.Equal(t, uint32(format.DirectoryBase), entries[0].Offset)
	require.Equal(t, "Import Libraries", entries[0].Name)
	require.Equal(t, "offset+size", entries[0].Kind)

	require.Equal(t, "Title Privileges", entries[1].Name)
	require.Equal(t, "immediate", entries[1].Kind)

	require.Equal(t, "Unknown (0xDEADBEEF)", entries[2].Name)
	require.Equal(t, uint32(7), entries[2].Value)
}

func TestPrivileges(t *testing.T) {
	path := writeTempImage(t, buildImage(t,
		[2]uint32{format.PrivilegesKey, format.PAL50IncompatibleMask | 1},
	))
	priv, err := Privileges(path)
	require.NoError(t, err)
	require.Equal(t, uint32(format.DirectoryBase), priv.EntryOffset)
	require.Equal(t, []string{"No Force Reboot", "PAL-50 Incompatible"}, priv.Set)

	missing := writeTempImage(t, buildImage(t))
	_, err = Privileges(missing)
	require.ErrorIs(t, err, xex.ErrEntryNotFound)
}
