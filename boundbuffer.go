package daxa

import (
	"fmt"
)

// CreateHostBuffer creates a host visible buffer sized to src and copies the
// bytes of src into it.
func (d *Device) CreateHostBuffer(src ByteSource, name string) (*Buffer, error) {
	data := src.Bytes()
	if len(data) == 0 {
		return nil, fmt.Errorf("daxa: host buffer %q has no data", name)
	}

	b, err := d.CreateBuffer(BufferInfo{
		Size:         uint64(len(data)),
		AllocateInfo: MemoryFlagHostAccessSequentialWrite,
		Name:         name,
	})
	if err != nil {
		return nil, err
	}

	if err := b.Write(0, data); err != nil {
		b.Destroy()
		return nil, err
	}

	if _, ok := src.(IndexSource); ok {
		Logger().Debug("daxa: host index buffer created", "name", name, "size", len(data))
	}
	return b, nil
}

// Write copies data into the host mapping of the buffer at offset.
func (b *Buffer) Write(offset uint64, data []byte) error {
	if offset > b.Size || uint64(len(data)) > b.Size-offset {
		return fmt.Errorf("daxa: write of %d bytes at %d overflows buffer of %d", len(data), offset, b.Size)
	}

	mapped, err := b.Bytes()
	if err != nil {
		return err
	}
	copy(mapped[offset:], data)
	return nil
}
