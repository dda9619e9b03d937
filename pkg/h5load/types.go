package h5load

import (
	"reflect"

	hdf5 "github.com/robert-malhotra/go-hdf5/hdf5"

	"github.com/hdf-forge/hsds-go/pkg/hsds"
)

// typeTagFor maps a native element type onto the HSDS predefined type
// tag used when creating the mirror dataset. The second return is
// false for element types the service has no little-endian predefined
// tag for.
func typeTagFor(t reflect.Type) (string, bool) {
	switch t.Kind() {
	case reflect.Float64:
		return hsds.TypeIEEEF64LE, true
	case reflect.Float32:
		return hsds.TypeIEEEF32LE, true
	case reflect.Int64:
		return hsds.TypeStandardI64LE, true
	case reflect.Int32:
		return hsds.TypeStandardI32LE, true
	case reflect.Int16:
		return hsds.TypeStandardI16LE, true
	case reflect.Int8:
		return hsds.TypeStandardI8LE, true
	case reflect.Uint8:
		return hsds.TypeStandardU8LE, true
	case reflect.String:
		return hsds.TypeString, true
	default:
		return "", false
	}
}

// readFlat reads the whole dataset as a flat slice of its native Go
// element type.
func readFlat(ds *hdf5.Dataset, elem reflect.Type) (interface{}, error) {
	switch elem.Kind() {
	case reflect.Float64:
		return ds.ReadFloat64()
	case reflect.Float32:
		return ds.ReadFloat32()
	case reflect.Int64:
		return ds.ReadInt64()
	case reflect.Int32:
		return ds.ReadInt32()
	case reflect.Int16:
		return ds.ReadInt16()
	case reflect.Int8:
		return ds.ReadInt8()
	case reflect.Uint8:
		return ds.ReadUint8()
	case reflect.String:
		return ds.ReadString()
	default:
		return nil, errUnsupportedElem
	}
}
