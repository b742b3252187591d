package ensight

import (
	"bufio"
	"encoding/binary"
	"os"

	"artra/model"
)

// StringSize is the width of every text record in the binary files.
const StringSize = 80

// FixedString is an 80 byte, NUL padded text record. Text longer than
// StringSize is truncated.
type FixedString [StringSize]byte

func NewFixedString(s string) FixedString {
	var fs FixedString
	copy(fs[:], s)
	return fs
}

// String returns the text up to the first NUL.
func (fs FixedString) String() string {
	for i, c := range fs {
		if c == 0 {
			return string(fs[:i])
		}
	}
	return string(fs[:])
}

// binaryFile is a buffered binary output file. The first failure sticks
// and is reported by close.
type binaryFile struct {
	path  string
	f     *os.File
	w     *bufio.Writer
	order binary.ByteOrder
	err   error
}

func createBinary(op, path string, order binary.ByteOrder) (*binaryFile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, model.OpenError(op, path, err)
	}
	return &binaryFile{
		path:  path,
		f:     f,
		w:     bufio.NewWriterSize(f, 1<<16),
		order: order,
	}, nil
}

func (b *binaryFile) str(s string) {
	if b.err != nil {
		return
	}
	fs := NewFixedString(s)
	_, b.err = b.w.Write(fs[:])
}

func (b *binaryFile) int32(v int) {
	b.write(int32(v))
}

func (b *binaryFile) floats(v []float32) {
	b.write(v)
}

func (b *binaryFile) write(v interface{}) {
	if b.err != nil {
		return
	}
	b.err = binary.Write(b.w, b.order, v)
}

// close flushes and closes the file. It must run on every path once the
// file is created.
func (b *binaryFile) close(op string) error {
	if b.err == nil {
		b.err = b.w.Flush()
	}
	if err := b.f.Close(); err != nil && b.err == nil {
		b.err = err
	}
	if b.err != nil {
		return model.IOError(op, b.path, b.err)
	}
	return nil
}
