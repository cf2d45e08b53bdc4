package daxa

import (
	"unsafe"
)

// Buffer is a native buffer id paired with the device that created it.
type Buffer struct {
	Device *Device
	ID     BufferID
	Size   uint64

	// set when the buffer was placed inside a MemoryBlock by MemoryBlock.CreateBuffer
	block      *MemoryBlock
	allocation *Allocation
}

// CreateBuffer creates a buffer with its own dedicated allocation.
func (d *Device) CreateBuffer(info BufferInfo) (*Buffer, error) {
	var id BufferID
	err := logFailure("create buffer", d.lib.CreateBuffer(d.handle, &info, &id))
	if err != nil {
		return nil, err
	}

	var ret Buffer
	ret.Device = d
	ret.ID = id
	ret.Size = info.Size

	return &ret, nil
}

// CreateBufferFromMemoryBlock creates a buffer aliasing memory already owned
// by block, starting at offset.
func (d *Device) CreateBufferFromMemoryBlock(info BufferInfo, block *MemoryBlock, offset uint64) (*Buffer, error) {
	placed := MemoryBlockBufferInfo{
		Buffer: info,
		Memory: block.Handle,
		Offset: offset,
	}

	var id BufferID
	err := logFailure("create buffer from memory block", d.lib.CreateBufferFromMemoryBlock(d.handle, &placed, &id))
	if err != nil {
		return nil, err
	}

	var ret Buffer
	ret.Device = d
	ret.ID = id
	ret.Size = info.Size

	return &ret, nil
}

// DestroyBuffer destroys a buffer by id. The native library defers the
// destruction until the GPU no longer uses it.
func (d *Device) DestroyBuffer(id BufferID) error {
	return logFailure("destroy buffer", d.lib.DestroyBuffer(d.handle, id))
}

// IsValid reports whether the native library still considers the buffer alive.
func (b *Buffer) IsValid() bool {
	return b.Device.IsBufferValid(b.ID)
}

func (b *Buffer) DeviceAddress() (BufferDeviceAddress, error) {
	return b.Device.BufferDeviceAddress(b.ID)
}

func (b *Buffer) HostAddress() (unsafe.Pointer, error) {
	return b.Device.BufferHostAddress(b.ID)
}

// Bytes maps the host address of the buffer to a byte slice of its size.
func (b *Buffer) Bytes() ([]byte, error) {
	ptr, err := b.HostAddress()
	if err != nil {
		return nil, err
	}
	return ToBytes(ptr, int(b.Size)), nil
}

// Destroy destroys the buffer and returns its range to the memory block it
// was placed in, if any.
func (b *Buffer) Destroy() error {
	err := b.Device.DestroyBuffer(b.ID)
	if b.block != nil && b.allocation != nil {
		b.block.free(b.allocation)
		b.allocation = nil
	}
	return err
}

// ToBytes takes an unsafe.Pointer and a length in bytes and returns a byte
// slice over that memory.
func ToBytes(ptr unsafe.Pointer, lenInBytes int) []byte {
	if ptr == nil || lenInBytes == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(ptr), lenInBytes)
}
