package hsds

import (
	"encoding/json"
)

// Predefined HSDS type tags.
const (
	TypeStandardI8LE  = "H5T_STD_I8LE"
	TypeStandardI16LE = "H5T_STD_I16LE"
	TypeStandardI32LE = "H5T_STD_I32LE"
	TypeStandardI64LE = "H5T_STD_I64LE"
	TypeStandardU8LE  = "H5T_STD_U8LE"
	TypeStandardU16LE = "H5T_STD_U16LE"
	TypeStandardU32LE = "H5T_STD_U32LE"
	TypeStandardU64LE = "H5T_STD_U64LE"
	TypeIEEEF32LE     = "H5T_IEEE_F32LE"
	TypeIEEEF64LE     = "H5T_IEEE_F64LE"
	TypeString        = "H5T_STRING"
)

// String type members.
const (
	CharSetASCII = "H5T_CSET_ASCII"
	CharSetUTF8  = "H5T_CSET_UTF8"

	StrPadNullPad  = "H5T_STR_NULLPAD"
	StrPadNullTerm = "H5T_STR_NULLTERM"
	StrPadSpacePad = "H5T_STR_SPACEPAD"

	LengthVariable = "H5T_VARIABLE"
)

// StringType is the structured spec for HSDS string types. Length is
// either the string "H5T_VARIABLE" or a fixed byte count.
type StringType struct {
	Class   string      `json:"class"`
	CharSet string      `json:"charSet"`
	StrPad  string      `json:"strPad"`
	Length  interface{} `json:"length"`
}

// VariableUTF8String returns a variable-length UTF-8 string type.
func VariableUTF8String() StringType {
	return StringType{Class: TypeString, CharSet: CharSetUTF8, StrPad: StrPadNullPad, Length: LengthVariable}
}

// VariableASCIIString returns a variable-length ASCII string type.
func VariableASCIIString() StringType {
	return StringType{Class: TypeString, CharSet: CharSetASCII, StrPad: StrPadNullPad, Length: LengthVariable}
}

// FixedUTF8String returns a fixed-length UTF-8 string type.
func FixedUTF8String(length int) StringType {
	return StringType{Class: TypeString, CharSet: CharSetUTF8, StrPad: StrPadNullPad, Length: length}
}

// FixedASCIIString returns a fixed-length ASCII string type.
func FixedASCIIString(length int) StringType {
	return StringType{Class: TypeString, CharSet: CharSetASCII, StrPad: StrPadNullPad, Length: length}
}

// TypeSpec selects a dataset/datatype type on the wire: a predefined
// tag string, a structured string type, or a compound definition.
// Exactly one field may be set.
type TypeSpec struct {
	Predefined string
	String     *StringType
	Compound   *DataType
}

// PredefinedType wraps a predefined HSDS type tag.
func PredefinedType(tag string) TypeSpec {
	return TypeSpec{Predefined: tag}
}

// StringTypeSpec wraps a structured string type.
func StringTypeSpec(st StringType) TypeSpec {
	return TypeSpec{String: &st}
}

// CompoundTypeSpec wraps a compound type definition.
func CompoundTypeSpec(dt DataType) TypeSpec {
	return TypeSpec{Compound: &dt}
}

func (t TypeSpec) MarshalJSON() ([]byte, error) {
	switch {
	case t.String != nil:
		return json.Marshal(t.String)
	case t.Compound != nil:
		return json.Marshal(t.Compound)
	case t.Predefined != "":
		return json.Marshal(t.Predefined)
	default:
		return nil, invalidParamf("empty type spec")
	}
}

// ShapeSpec selects a dataset shape on the wire: dimension list, or
// the null dataspace. A zero ShapeSpec marshals as the null shape.
type ShapeSpec struct {
	Dims []uint64
	Null bool
}

// SimpleShape returns a shape spec with the given dims.
func SimpleShape(dims ...uint64) ShapeSpec {
	return ShapeSpec{Dims: dims}
}

func (s ShapeSpec) MarshalJSON() ([]byte, error) {
	if s.Null || s.Dims == nil {
		return json.Marshal("H5S_NULL")
	}
	return json.Marshal(s.Dims)
}

// DatasetCreateRequest is the body of a dataset create.
type DatasetCreateRequest struct {
	Type               TypeSpec    `json:"type"`
	Shape              *ShapeSpec  `json:"shape,omitempty"`
	Maxdims            []uint64    `json:"maxdims,omitempty"`
	CreationProperties interface{} `json:"creationProperties,omitempty"`
	Link               *LinkRef    `json:"link,omitempty"`
}

// NewDatasetCreateRequest builds a create request for a predefined or
// string type tag with the given dims. H5T_STRING maps to a
// variable-length ASCII spec, everything else passes through as a
// predefined tag.
func NewDatasetCreateRequest(typeTag string, dims []uint64) DatasetCreateRequest {
	var spec TypeSpec
	if typeTag == TypeString {
		spec = StringTypeSpec(VariableASCIIString())
	} else {
		spec = PredefinedType(typeTag)
	}
	shape := SimpleShape(dims...)
	return DatasetCreateRequest{Type: spec, Shape: &shape}
}

// NewLinkedDatasetCreateRequest additionally links the new dataset
// into parentID under name.
func NewLinkedDatasetCreateRequest(typeTag string, dims []uint64, parentID, name string) DatasetCreateRequest {
	req := NewDatasetCreateRequest(typeTag, dims)
	req.Link = &LinkRef{ID: parentID, Name: name}
	return req
}
