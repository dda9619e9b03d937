package hsds

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeSpecMarshal(t *testing.T) {
	b, err := json.Marshal(PredefinedType(TypeIEEEF64LE))
	require.NoError(t, err)
	assert.JSONEq(t, `"H5T_IEEE_F64LE"`, string(b))

	b, err = json.Marshal(StringTypeSpec(FixedASCIIString(16)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"class":"H5T_STRING","charSet":"H5T_CSET_ASCII","strPad":"H5T_STR_NULLPAD","length":16}`, string(b))

	b, err = json.Marshal(StringTypeSpec(VariableUTF8String()))
	require.NoError(t, err)
	assert.JSONEq(t, `{"class":"H5T_STRING","charSet":"H5T_CSET_UTF8","strPad":"H5T_STR_NULLPAD","length":"H5T_VARIABLE"}`, string(b))

	_, err = json.Marshal(TypeSpec{})
	assert.Error(t, err)
}

func TestShapeSpecMarshal(t *testing.T) {
	b, err := json.Marshal(SimpleShape(10, 20))
	require.NoError(t, err)
	assert.JSONEq(t, `[10,20]`, string(b))

	b, err = json.Marshal(ShapeSpec{Null: true})
	require.NoError(t, err)
	assert.JSONEq(t, `"H5S_NULL"`, string(b))

	b, err = json.Marshal(ShapeSpec{})
	require.NoError(t, err)
	assert.JSONEq(t, `"H5S_NULL"`, string(b))
}

func TestNewDatasetCreateRequest(t *testing.T) {
	req := NewDatasetCreateRequest(TypeStandardI32LE, []uint64{100})
	b, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"H5T_STD_I32LE","shape":[100]}`, string(b))

	req = NewLinkedDatasetCreateRequest(TypeString, []uint64{4}, "g-root", "names")
	b, err = json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type":{"class":"H5T_STRING","charSet":"H5T_CSET_ASCII","strPad":"H5T_STR_NULLPAD","length":"H5T_VARIABLE"},
		"shape":[4],
		"link":{"id":"g-root","name":"names"}
	}`, string(b))
}
