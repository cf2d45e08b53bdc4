package daxa

import (
	"errors"
	"fmt"
	"sync"

	gu "github.com/docker/go-units"
)

const StagingPoolName = "staging"

var errPoolExists = errors.New("daxa: a buffer pool with this name already exists")

// BufferPool is a named memory block that buffers are sub-allocated from.
// Buffers created through the pool are tracked and destroyed with it.
type BufferPool struct {
	Name  string
	Size  uint64
	Flags MemoryFlags
	Block *MemoryBlock

	manager *ResourceManager
	mu      sync.Mutex
	buffers map[*Buffer]struct{}
}

// CreateBuffer places a buffer of size bytes in the pool.
func (p *BufferPool) CreateBuffer(size uint64, name string) (*Buffer, error) {
	b, err := p.Block.CreateBuffer(BufferInfo{Size: size, AllocateInfo: p.Flags, Name: name})
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.buffers[b] = struct{}{}
	p.mu.Unlock()
	return b, nil
}

// AllocateFor places a buffer sized to src in the pool and copies src into
// it. The pool must be host visible.
func (p *BufferPool) AllocateFor(src ByteSource, name string) (*Buffer, error) {
	data := src.Bytes()
	b, err := p.CreateBuffer(uint64(len(data)), name)
	if err != nil {
		return nil, err
	}
	if err := b.Write(0, data); err != nil {
		p.Free(b)
		return nil, err
	}
	return b, nil
}

// Free destroys a buffer created by the pool and returns its range.
func (p *BufferPool) Free(b *Buffer) error {
	p.mu.Lock()
	_, ok := p.buffers[b]
	delete(p.buffers, b)
	p.mu.Unlock()
	if !ok {
		return fmt.Errorf("daxa: buffer %d is not part of pool %q", b.ID.Index(), p.Name)
	}
	return b.Destroy()
}

// Used returns the number of bytes handed out to buffers.
func (p *BufferPool) Used() uint64 {
	return p.Block.Used()
}

func (p *BufferPool) LogDetails() {
	p.mu.Lock()
	n := len(p.buffers)
	p.mu.Unlock()
	Logger().Info("daxa: buffer pool",
		"name", p.Name,
		"size", gu.BytesSize(float64(p.Size)),
		"used", gu.BytesSize(float64(p.Used())),
		"buffers", n)
}

// Destroy destroys every buffer still in the pool, then releases its memory
// block. It returns the first destroy error.
func (p *BufferPool) Destroy() error {
	p.mu.Lock()
	buffers := p.buffers
	p.buffers = map[*Buffer]struct{}{}
	p.mu.Unlock()

	var first error
	for b := range buffers {
		if err := b.Destroy(); err != nil && first == nil {
			first = err
		}
	}
	p.Block.Destroy()

	p.manager.mu.Lock()
	if p.manager.bufferPools[p.Name] == p {
		delete(p.manager.bufferPools, p.Name)
	}
	p.manager.mu.Unlock()

	return first
}

// ResourceManager owns named buffer pools on a device.
type ResourceManager struct {
	Device *Device

	mu          sync.Mutex
	bufferPools map[string]*BufferPool
}

func (d *Device) CreateResourceManager() *ResourceManager {
	return &ResourceManager{Device: d, bufferPools: make(map[string]*BufferPool)}
}

// AllocateBufferPool creates a memory block able to hold size bytes of
// buffers allocated with flags.
func (r *ResourceManager) AllocateBufferPool(name string, size uint64, flags MemoryFlags) (*BufferPool, error) {
	r.mu.Lock()
	_, exists := r.bufferPools[name]
	r.mu.Unlock()
	if exists {
		return nil, fmt.Errorf("%w: %q", errPoolExists, name)
	}

	req := r.Device.BufferMemoryRequirements(BufferInfo{Size: size, AllocateInfo: flags, Name: name})
	block, err := r.Device.CreateMemory(MemoryBlockInfo{Requirements: req, Flags: flags})
	if err != nil {
		return nil, err
	}

	p := &BufferPool{
		Name:    name,
		Size:    req.Size,
		Flags:   flags,
		Block:   block,
		manager: r,
		buffers: make(map[*Buffer]struct{}),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.bufferPools[name]; exists {
		block.Destroy()
		return nil, fmt.Errorf("%w: %q", errPoolExists, name)
	}
	r.bufferPools[name] = p

	return p, nil
}

// AllocateStagingPool creates the host visible pool uploads are staged in.
func (r *ResourceManager) AllocateStagingPool(size uint64) (*BufferPool, error) {
	return r.AllocateBufferPool(StagingPoolName, size, MemoryFlagHostAccessSequentialWrite)
}

func (r *ResourceManager) HasStagingPool() bool {
	return r.BufferPool(StagingPoolName) != nil
}

func (r *ResourceManager) GetStagingPool() *BufferPool {
	return r.BufferPool(StagingPoolName)
}

func (r *ResourceManager) BufferPool(name string) *BufferPool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bufferPools[name]
}

func (r *ResourceManager) LogDetails() {
	r.mu.Lock()
	pools := make([]*BufferPool, 0, len(r.bufferPools))
	for _, p := range r.bufferPools {
		pools = append(pools, p)
	}
	r.mu.Unlock()

	for _, p := range pools {
		p.LogDetails()
	}
}

// Destroy destroys every pool.
func (r *ResourceManager) Destroy() error {
	r.mu.Lock()
	pools := make([]*BufferPool, 0, len(r.bufferPools))
	for _, p := range r.bufferPools {
		pools = append(pools, p)
	}
	r.mu.Unlock()

	var first error
	for _, p := range pools {
		if err := p.Destroy(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
