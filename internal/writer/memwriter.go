package writer

// MemWriter captures image bytes in memory. Useful in tests and dry runs.
type MemWriter struct {
	Buf []byte
}

// WriteImage copies the provided buffer so later mutations don't leak in.
func (w *MemWriter) WriteImage(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	return nil
}
