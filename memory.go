package daxa

import (
	"errors"
	"sync"
)

// ErrMemoryBlockExhausted is returned by MemoryBlock.CreateBuffer when no
// free range of the block fits the buffer.
var ErrMemoryBlockExhausted = errors.New("daxa: memory block has no room for the requested buffer")

// MemoryBlock is a native memory allocation that buffers can be placed into.
type MemoryBlock struct {
	object
	Info MemoryBlockInfo

	mu        sync.Mutex
	allocator LinearAllocator
}

// CreateMemory allocates a memory block satisfying info.Requirements.
func (d *Device) CreateMemory(info MemoryBlockInfo) (*MemoryBlock, error) {
	h, err := d.create("create memory", func(out *Handle) Result {
		return d.lib.CreateMemory(d.handle, &info, out)
	})
	if err != nil {
		return nil, err
	}

	ret := &MemoryBlock{
		object:    object{Device: d, Handle: h, kind: ObjectMemoryBlock},
		Info:      info,
		allocator: LinearAllocator{Size: info.Requirements.Size},
	}
	return ret, nil
}

// CreateBuffer sub-allocates a range of the block that satisfies the buffer's
// memory requirements and creates the buffer there. Destroying the buffer
// returns the range to the block.
func (m *MemoryBlock) CreateBuffer(info BufferInfo) (*Buffer, error) {
	req := m.Device.BufferMemoryRequirements(info)

	m.mu.Lock()
	a := m.allocator.Allocate(req.Size, req.Alignment)
	m.mu.Unlock()
	if a == nil {
		return nil, ErrMemoryBlockExhausted
	}

	b, err := m.Device.CreateBufferFromMemoryBlock(info, m, a.Offset)
	if err != nil {
		m.free(a)
		return nil, err
	}
	b.block = m
	b.allocation = a
	return b, nil
}

// Used returns the number of bytes of the block handed out to buffers.
func (m *MemoryBlock) Used() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.allocator.Used()
}

func (m *MemoryBlock) free(a *Allocation) {
	m.mu.Lock()
	m.allocator.Free(a)
	m.mu.Unlock()
}
