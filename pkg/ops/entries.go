package ops

import (
	"fmt"

	"github.com/xenia-tools/xexkit/internal/format"
	"github.com/xenia-tools/xexkit/xex"
)

// EntryInfo is one annotated optional-header directory record.
type EntryInfo struct {
	Index  int    `json:"index"`
	Offset uint32 `json:"offset"`
	Key    uint32 `json:"key"`
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Value  uint32 `json:"value"`
}

// Entries opens the image read-only and lists its directory in on-disk
// order, annotated with known key names and value storage shapes.
func Entries(path string) ([]EntryInfo, error) {
	if err := checkRegularFile(path); err != nil {
		return nil, err
	}
	x, err := xex.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer x.Close()

	dir := x.Directory()
	entries := make([]EntryInfo, 0, len(dir))
	for i, e := range dir {
		entries = append(entries, EntryInfo{
			Index:  i,
			Offset: e.FileOffset,
			Key:    e.Key,
			Name:   format.KeyName(e.Key),
			Kind:   format.KindOf(e.Key).String(),
			Value:  e.Value,
		})
	}
	return entries, nil
}
