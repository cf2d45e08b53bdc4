package daxa

// TimelineQueryPool holds GPU timestamp queries.
type TimelineQueryPool struct {
	object
	QueryCount uint32
}

// QueryResult is a timestamp and whether the GPU has written it yet.
type QueryResult struct {
	Value     uint64
	Available bool
}

func (d *Device) CreateTimelineQueryPool(info TimelineQueryPoolInfo) (*TimelineQueryPool, error) {
	h, err := d.create("create timeline query pool", func(out *Handle) Result {
		return d.lib.CreateTimelineQueryPool(d.handle, &info, out)
	})
	if err != nil {
		return nil, err
	}

	return &TimelineQueryPool{
		object:     object{Device: d, Handle: h, kind: ObjectTimelineQueryPool},
		QueryCount: info.QueryCount,
	}, nil
}

// Results reads count queries starting at start. The native library writes a
// value and an availability word per query.
func (q *TimelineQueryPool) Results(start, count uint32) ([]QueryResult, error) {
	raw := make([]uint64, 2*int(count))
	err := logFailure("timeline query results", q.Device.lib.TimelineQueryResults(q.Handle, start, count, raw))
	if err != nil {
		return nil, err
	}

	ret := make([]QueryResult, count)
	for i := range ret {
		ret[i].Value = raw[2*i]
		ret[i].Available = raw[2*i+1] != 0
	}
	return ret, nil
}
