package daxa

import (
	"fmt"
	"sync"
)

// object is a reference counted native object created from a Device.
// Destroy drops the reference this wrapper holds, at most once.
type object struct {
	Device *Device
	Handle Handle

	kind     ObjectKind
	borrowed bool
	release  sync.Once
}

func (o *object) Kind() ObjectKind {
	return o.kind
}

// Destroy releases the native object. Objects borrowed from another object,
// such as the semaphores owned by a swapchain, are left alone.
func (o *object) Destroy() {
	if o.borrowed {
		return
	}
	o.release.Do(func() {
		o.Device.lib.Release(o.kind, o.Handle)
	})
}

func (o *object) String() string {
	return fmt.Sprintf("{ %s: %#x }", o.kind, uintptr(o.Handle))
}

// create runs a native creation call that writes an opaque handle.
func (d *Device) create(op string, fn func(out *Handle) Result) (Handle, error) {
	var h Handle
	if err := logFailure(op, fn(&h)); err != nil {
		return 0, err
	}
	return h, nil
}
