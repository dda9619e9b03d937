package h5load

// slab is one contiguous hyperslab of an upload, expressed as
// inclusive start / exclusive stop coordinates per dimension. Slabs
// always cover the full extent of every trailing dimension, so the
// covered elements are contiguous in row-major order.
type slab struct {
	start []uint64
	stop  []uint64
}

// numElements returns the element count covered by the slab.
func (s slab) numElements() uint64 {
	n := uint64(1)
	for i := range s.start {
		n *= s.stop[i] - s.start[i]
	}
	return n
}

// offset returns the row-major linear index of the slab's first
// element within dims.
func (s slab) offset(dims []uint64) uint64 {
	off := uint64(0)
	for i := range dims {
		off = off*dims[i] + s.start[i]
	}
	return off
}

// dims returns the slab's own extent per dimension.
func (s slab) dims() []uint64 {
	out := make([]uint64, len(s.start))
	for i := range s.start {
		out[i] = s.stop[i] - s.start[i]
	}
	return out
}

// planSlabs partitions a dataset of the given dims into fixed-size
// upload slabs. Rank 1 splits into runs of chunkElements. Rank 2
// splits into row bands sized so a band holds roughly chunkElements
// elements, capped at maxChunkRows rows. Rank 3 takes one depth slice
// at a time and row-bands within it. Higher ranks are not supported.
func planSlabs(dims []uint64, chunkElements, maxChunkRows int) ([]slab, bool) {
	switch len(dims) {
	case 1:
		step := uint64(chunkElements)
		var slabs []slab
		for start := uint64(0); start < dims[0]; start += step {
			stop := start + step
			if stop > dims[0] {
				stop = dims[0]
			}
			slabs = append(slabs, slab{start: []uint64{start}, stop: []uint64{stop}})
		}
		return slabs, true
	case 2:
		band := rowBand(dims[1], chunkElements, maxChunkRows)
		var slabs []slab
		for r := uint64(0); r < dims[0]; r += band {
			stop := r + band
			if stop > dims[0] {
				stop = dims[0]
			}
			slabs = append(slabs, slab{
				start: []uint64{r, 0},
				stop:  []uint64{stop, dims[1]},
			})
		}
		return slabs, true
	case 3:
		band := rowBand(dims[2], chunkElements, maxChunkRows)
		var slabs []slab
		for d := uint64(0); d < dims[0]; d++ {
			for r := uint64(0); r < dims[1]; r += band {
				stop := r + band
				if stop > dims[1] {
					stop = dims[1]
				}
				slabs = append(slabs, slab{
					start: []uint64{d, r, 0},
					stop:  []uint64{d + 1, stop, dims[2]},
				})
			}
		}
		return slabs, true
	default:
		return nil, false
	}
}

// rowBand returns how many rows of rowLen elements fit a chunk, at
// least 1 and at most maxChunkRows.
func rowBand(rowLen uint64, chunkElements, maxChunkRows int) uint64 {
	if rowLen == 0 {
		return uint64(maxChunkRows)
	}
	band := uint64(chunkElements) / rowLen
	if band < 1 {
		band = 1
	}
	if band > uint64(maxChunkRows) {
		band = uint64(maxChunkRows)
	}
	return band
}
