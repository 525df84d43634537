package xex

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xenia-tools/xexkit/internal/format"
	"github.com/xenia-tools/xexkit/internal/writer"
)

func TestClearPAL50MinimalImage(t *testing.T) {
	// Header plus a single privileges entry whose value is exactly the
	// PAL-50 bit.
	img := testImage(t, [][2]uint32{
		{format.PrivilegesKey, 0x00000400},
	}, nil)
	orig := bytes.Clone(img)

	x, err := Parse(img)
	require.NoError(t, err)

	res, err := x.ClearPAL50()
	require.NoError(t, err)
	require.True(t, res.Changed)
	require.Equal(t, uint32(24), res.EntryOffset)
	require.Equal(t, uint32(0x00000400), res.OldValue)
	require.Equal(t, uint32(0x00000000), res.NewValue)

	// Only bytes [28,32) changed: 00 00 04 00 -> 00 00 00 00.
	require.Equal(t, orig[:28], x.Bytes()[:28])
	require.Equal(t, []byte{0, 0, 0, 0}, x.Bytes()[28:32])
}

func TestClearPAL50SingleFieldMutation(t *testing.T) {
	img := testImage(t, [][2]uint32{
		{format.KeyEntryPoint, 0x82010000},
		{format.PrivilegesKey, 0xFFFFFFFF},
		{format.KeyImageBaseAddress, 0x82000000},
	}, bytes.Repeat([]byte{0xAB}, 64))
	orig := bytes.Clone(img)

	x, err := Parse(img)
	require.NoError(t, err)
	res, err := x.ClearPAL50()
	require.NoError(t, err)
	require.True(t, res.Changed)
	require.Equal(t, uint32(0xFFFFFFFF&^uint32(0x400)), res.NewValue)
	require.Zero(t, res.NewValue&0x400)

	// 0xFFFFFFFF -> 0xFFFFFBFF changes exactly one byte of the value dword.
	valueOff := int(res.EntryOffset) + format.DirEntryValueOffset
	var diffs []int
	for i := range orig {
		if orig[i] != x.Bytes()[i] {
			diffs = append(diffs, i)
		}
	}
	require.Equal(t, []int{valueOff + 2}, diffs)
	require.Equal(t, byte(0xFB), x.Bytes()[valueOff+2])
}

func TestClearPAL50AlreadyClear(t *testing.T) {
	img := testImage(t, [][2]uint32{
		{format.PrivilegesKey, 0x000000FF},
	}, nil)
	orig := bytes.Clone(img)

	x, err := Parse(img)
	require.NoError(t, err)
	res, err := x.ClearPAL50()
	require.NoError(t, err)
	require.False(t, res.Changed)
	require.Equal(t, res.OldValue, res.NewValue)
	require.Equal(t, orig, x.Bytes())
}

func TestClearPAL50Idempotent(t *testing.T) {
	img := testImage(t, [][2]uint32{
		{format.PrivilegesKey, 0x00000400},
	}, nil)
	x, err := Parse(img)
	require.NoError(t, err)

	first, err := x.ClearPAL50()
	require.NoError(t, err)
	require.True(t, first.Changed)

	second, err := x.ClearPAL50()
	require.NoError(t, err)
	require.False(t, second.Changed)
	require.Equal(t, first.NewValue, second.OldValue)
}

func TestClearPAL50MissingEntry(t *testing.T) {
	img := testImage(t, [][2]uint32{
		{format.KeyEntryPoint, 0x82010000},
	}, nil)
	x, err := Parse(img)
	require.NoError(t, err)
	_, err = x.ClearPAL50()
	require.ErrorIs(t, err, ErrEntryNotFound)
}

func TestClearPAL50FirstDuplicateWins(t *testing.T) {
	img := testImage(t, [][2]uint32{
		{format.PrivilegesKey, 0x00000400},
		{format.PrivilegesKey, 0x00000400},
	}, nil)
	x, err := Parse(img)
	require.NoError(t, err)
	res, err := x.ClearPAL50()
	require.NoError(t, err)
	require.Equal(t, uint32(24), res.EntryOffset)
	// The duplicate at offset 32 keeps its value.
	require.Equal(t, []byte{0, 0, 4, 0}, x.Bytes()[36:40])
}

func TestSaveRoundTrip(t *testing.T) {
	img := testImage(t, [][2]uint32{
		{format.PrivilegesKey, 0x00000400},
	}, []byte("trailer"))
	x, err := Parse(img)
	require.NoError(t, err)
	_, err = x.ClearPAL50()
	require.NoError(t, err)

	var mem writer.MemWriter
	require.NoError(t, x.Save(&mem))
	require.Equal(t, x.Bytes(), mem.Buf)

	path := filepath.Join(t.TempDir(), "patched.xex")
	require.NoError(t, x.SaveFile(path))
	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, x.Bytes(), onDisk)

	// The patched output parses cleanly and reports the bit clear.
	y, err := Open(path)
	require.NoError(t, err)
	defer y.Close()
	priv, ok := y.Privileges()
	require.True(t, ok)
	require.Zero(t, priv&0x400)
}
