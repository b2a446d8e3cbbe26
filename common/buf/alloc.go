package buf

// Inspired by https://github.com/xtaci/smux/blob/master/alloc.go

import (
	"errors"
	"math/bits"
	"sync"
)

const (
	minAllocBits = 6
	maxAllocBits = 16

	// MaxAllocSize is the largest slice served from the pools.
	MaxAllocSize = 1 << maxAllocBits
)

var DefaultAllocator = newDefaultAllocator()

type Allocator interface {
	Get(size int) []byte
	Put(buf []byte) error
}

// defaultAllocator keeps one pool per power of two between 64 bytes and 64 KiB,
// which covers every buffer size a wireless extensions ioctl can describe.
type defaultAllocator struct {
	buffers [maxAllocBits - minAllocBits + 1]sync.Pool
}

func newDefaultAllocator() Allocator {
	alloc := new(defaultAllocator)
	for index := range alloc.buffers {
		size := 1 << (index + minAllocBits)
		alloc.buffers[index].New = func() any {
			buffer := make([]byte, size)
			return &buffer
		}
	}
	return alloc
}

// Get a []byte from pool with most appropriate cap
func (alloc *defaultAllocator) Get(size int) []byte {
	if size <= 0 || size > MaxAllocSize {
		return nil
	}
	var index uint16
	if size > 1<<minAllocBits {
		index = msb(size)
		if size != 1<<index {
			index += 1
		}
		index -= minAllocBits
	}
	buffer := alloc.buffers[index].Get().(*[]byte)
	return (*buffer)[:size]
}

// Put returns a []byte to pool for future use,
// which the cap must be exactly 2^n
func (alloc *defaultAllocator) Put(buf []byte) error {
	bits := msb(cap(buf))
	if cap(buf) < 1<<minAllocBits || cap(buf) > MaxAllocSize || cap(buf) != 1<<bits {
		return errors.New("allocator Put() incorrect buffer size")
	}
	buf = buf[:cap(buf)]
	alloc.buffers[bits-minAllocBits].Put(&buf)
	return nil
}

func Get(size int) []byte {
	return DefaultAllocator.Get(size)
}

func Put(buf []byte) error {
	return DefaultAllocator.Put(buf)
}

// msb return the pos of most significant bit
func msb(size int) uint16 {
	return uint16(bits.Len32(uint32(size)) - 1)
}
