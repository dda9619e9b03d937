package h5load

import (
	"reflect"
)

// nestValues reshapes a flat row-major slice into nested slices
// matching dims, the layout the HSDS value endpoint expects for
// multi-dimensional writes. Rank 0 and 1 pass through unchanged.
func nestValues(flat interface{}, dims []uint64) interface{} {
	return nest(reflect.ValueOf(flat), dims)
}

func nest(flat reflect.Value, dims []uint64) interface{} {
	if len(dims) <= 1 {
		return flat.Interface()
	}
	inner := 1
	for _, d := range dims[1:] {
		inner *= int(d)
	}
	out := make([]interface{}, int(dims[0]))
	for i := range out {
		out[i] = nest(flat.Slice(i*inner, (i+1)*inner), dims[1:])
	}
	return out
}

// slabValues extracts the slab's elements from a flat row-major slice
// and nests them to the slab's own dims. Valid only for slabs from
// planSlabs, which are contiguous by construction.
func slabValues(flat interface{}, dims []uint64, s slab) interface{} {
	rv := reflect.ValueOf(flat)
	off := int(s.offset(dims))
	n := int(s.numElements())
	return nest(rv.Slice(off, off+n), s.dims())
}
