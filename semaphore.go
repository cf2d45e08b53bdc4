package daxa

import (
	"time"
)

// BinarySemaphore orders GPU work between submissions and presentation.
type BinarySemaphore struct {
	object
}

// TimelineSemaphore carries a monotonically increasing 64 bit value shared by
// host and GPU.
type TimelineSemaphore struct {
	object
}

func (d *Device) CreateBinarySemaphore(info BinarySemaphoreInfo) (*BinarySemaphore, error) {
	h, err := d.create("create binary semaphore", func(out *Handle) Result {
		return d.lib.CreateBinarySemaphore(d.handle, &info, out)
	})
	if err != nil {
		return nil, err
	}

	return &BinarySemaphore{
		object: object{Device: d, Handle: h, kind: ObjectBinarySemaphore},
	}, nil
}

func (d *Device) CreateTimelineSemaphore(info TimelineSemaphoreInfo) (*TimelineSemaphore, error) {
	h, err := d.create("create timeline semaphore", func(out *Handle) Result {
		return d.lib.CreateTimelineSemaphore(d.handle, &info, out)
	})
	if err != nil {
		return nil, err
	}

	return &TimelineSemaphore{
		object: object{Device: d, Handle: h, kind: ObjectTimelineSemaphore},
	}, nil
}

// Value returns the current counter value.
func (t *TimelineSemaphore) Value() (uint64, error) {
	var v uint64
	err := logFailure("timeline semaphore value", t.Device.lib.TimelineSemaphoreValue(t.Handle, &v))
	if err != nil {
		return 0, err
	}
	return v, nil
}

// WaitForValue blocks until the counter reaches value or the timeout
// elapses. A negative timeout waits forever. Timing out returns ResultTimeout.
func (t *TimelineSemaphore) WaitForValue(value uint64, timeout time.Duration) error {
	return logFailure("timeline semaphore wait", t.Device.lib.TimelineSemaphoreWait(t.Handle, value, timeoutNanos(timeout)))
}

func timeoutNanos(timeout time.Duration) uint64 {
	if timeout < 0 {
		return ^uint64(0)
	}
	return uint64(timeout.Nanoseconds())
}
