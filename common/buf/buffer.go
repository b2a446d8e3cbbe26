package buf

import (
	"io"
	"strconv"
)

// Buffer is a byte slice with a read cursor (start) and a write cursor (end).
// Not safe for concurrent use.
type Buffer struct {
	data        []byte
	start       int
	end         int
	capacity    int
	dataManaged bool
}

func NewSize(size int) *Buffer {
	if size <= 0 {
		return &Buffer{}
	}
	if size > MaxAllocSize {
		return &Buffer{
			data:     make([]byte, size),
			capacity: size,
		}
	}
	return &Buffer{
		data:        Get(size),
		capacity:    size,
		dataManaged: true,
	}
}

// As wraps data as a readable buffer.
func As(data []byte) *Buffer {
	return &Buffer{
		data:     data,
		end:      len(data),
		capacity: len(data),
	}
}

func (b *Buffer) Extend(n int) []byte {
	end := b.end + n
	if end > b.capacity {
		panic("buffer overflow: capacity " + strconv.Itoa(b.capacity) + ", end " + strconv.Itoa(b.end) + ", need " + strconv.Itoa(n))
	}
	ext := b.data[b.end:end]
	b.end = end
	return ext
}

func (b *Buffer) Truncate(to int) {
	b.end = b.start + to
}

func (b *Buffer) Write(data []byte) (n int, err error) {
	if len(data) == 0 {
		return
	}
	if b.IsFull() {
		return 0, io.ErrShortBuffer
	}
	n = copy(b.data[b.end:b.capacity], data)
	b.end += n
	if n < len(data) {
		err = io.ErrShortBuffer
	}
	return
}

// Peek returns the next n unread bytes without consuming them.
func (b *Buffer) Peek(n int) ([]byte, error) {
	if b.end-b.start < n {
		return nil, io.ErrUnexpectedEOF
	}
	return b.data[b.start : b.start+n], nil
}

func (b *Buffer) ReadBytes(n int) ([]byte, error) {
	if b.end-b.start < n {
		return nil, io.ErrUnexpectedEOF
	}
	nb := b.data[b.start : b.start+n]
	b.start += n
	return nb, nil
}

func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes())
	return int64(n), err
}

func (b *Buffer) Release() {
	if b == nil {
		return
	}
	if b.dataManaged {
		_ = Put(b.data)
	}
	*b = Buffer{}
}

func (b *Buffer) Start() int {
	return b.start
}

func (b *Buffer) Len() int {
	return b.end - b.start
}

func (b *Buffer) Cap() int {
	return b.capacity
}

func (b *Buffer) Bytes() []byte {
	return b.data[b.start:b.end]
}

func (b *Buffer) FreeLen() int {
	return b.capacity - b.end
}

func (b *Buffer) FreeBytes() []byte {
	return b.data[b.end:b.capacity]
}

func (b *Buffer) IsEmpty() bool {
	return b.end-b.start == 0
}

func (b *Buffer) IsFull() bool {
	return b.end == b.capacity
}
