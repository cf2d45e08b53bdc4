package daxa

import (
	vk "github.com/vulkan-go/vulkan"
)

// IndexType is the element type of an index buffer.
type IndexType = vk.IndexType

// ByteSource is anything that can be uploaded into a buffer.
type ByteSource interface {
	Bytes() []byte
}

// IndexSource is index data that knows its element type.
type IndexSource interface {
	ByteSource
	IndexType() IndexType
}

// Destroyer is implemented by resource wrappers whose destruction is reported
// by the native library.
type Destroyer interface {
	Destroy() error
}

// Releaser is implemented by reference counted objects.
type Releaser interface {
	Destroy()
}
