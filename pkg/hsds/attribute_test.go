package hsds

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionForID(t *testing.T) {
	cases := []struct {
		id   string
		want string
	}{
		{"g-12345678-abcd", CollectionGroups},
		{"d-12345678-abcd", CollectionDatasets},
		{"t-12345678-abcd", CollectionDatatypes},
	}
	for _, tc := range cases {
		got, err := CollectionForID(tc.id)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	for _, bad := range []string{"x-12345678", "12345678", ""} {
		_, err := CollectionForID(bad)
		assert.ErrorIs(t, err, ErrInvalidParameter, "id %q", bad)
	}
}

func TestInferValueSpec(t *testing.T) {
	cases := []struct {
		name      string
		value     interface{}
		wantType  interface{}
		wantShape []uint64
	}{
		{"scalar string", "hello", VariableUTF8String(), nil},
		{"scalar int64", int64(42), TypeStandardI64LE, nil},
		{"scalar int", 42, TypeStandardI64LE, nil},
		{"scalar uint64", uint64(42), TypeStandardU64LE, nil},
		{"scalar float64", 3.14, TypeIEEEF64LE, nil},
		{"scalar float32", float32(3.14), TypeIEEEF32LE, nil},
		{"scalar bool", true, TypeStandardI8LE, nil},
		{"int slice", []int64{1, 2, 3}, TypeStandardI64LE, []uint64{3}},
		{"string slice", []string{"a", "b"}, VariableUTF8String(), []uint64{2}},
		{"float matrix", [][]float64{{1, 2, 3}, {4, 5, 6}}, TypeIEEEF64LE, []uint64{2, 3}},
		{"interface slice", []interface{}{1.0, 2.0}, TypeIEEEF64LE, []uint64{2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			typeSpec, shape, err := inferValueSpec(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.wantType, typeSpec)
			assert.Equal(t, tc.wantShape, shape)
		})
	}
}

func TestInferValueSpec_Unsupported(t *testing.T) {
	_, _, err := inferValueSpec(struct{ X int }{1})
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, _, err = inferValueSpec([]int{})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestAttributeService_Set_String(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/groups/g-abc/attributes/title", r.URL.Path)

		var req struct {
			Type  StringType  `json:"type"`
			Shape []uint64    `json:"shape"`
			Value interface{} `json:"value"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "H5T_STRING", req.Type.Class)
		assert.Equal(t, "H5T_CSET_UTF8", req.Type.CharSet)
		assert.Equal(t, "H5T_VARIABLE", req.Type.Length)
		assert.Nil(t, req.Shape)
		assert.Equal(t, "my experiment", req.Value)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	}, nil)

	err := client.Attributes.Set(context.Background(), "/d.h5", "g-abc", "title", "my experiment")
	require.NoError(t, err)
}

func TestAttributeService_Set_IntArrayRoutesToDataset(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/datasets/d-abc/attributes/counts", r.URL.Path)

		var req AttributePutRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "H5T_STD_I64LE", req.Type)
		assert.Equal(t, []uint64{3}, req.Shape)

		w.Write([]byte(`{}`))
	}, nil)

	err := client.Attributes.Set(context.Background(), "/d.h5", "d-abc", "counts", []int64{1, 2, 3})
	require.NoError(t, err)
}

func TestAttributeService_Set_UnknownPrefix(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be sent for an unroutable id")
	}, nil)

	err := client.Attributes.Set(context.Background(), "/d.h5", "x-abc", "a", 1)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestAttributeService_GetAndList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/groups/g-abc/attributes":
			json.NewEncoder(w).Encode(AttributeList{Attributes: []Attribute{
				{Name: "title"}, {Name: "units"},
			}})
		case "/groups/g-abc/attributes/units":
			json.NewEncoder(w).Encode(Attribute{
				Name:  "units",
				Shape: &Shape{Class: "H5S_SCALAR"},
				Value: "meters",
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}, nil)

	ctx := context.Background()
	list, err := client.Attributes.List(ctx, "/d.h5", CollectionGroups, "g-abc")
	require.NoError(t, err)
	require.Len(t, list.Attributes, 2)

	attr, err := client.Attributes.Get(ctx, "/d.h5", CollectionGroups, "g-abc", "units")
	require.NoError(t, err)
	assert.Equal(t, "meters", attr.Value)
}

func TestAttributeService_NameEscaping(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/groups/g-abc/attributes/scale%20factor", r.URL.EscapedPath())
		w.Write([]byte(`{}`))
	}, nil)

	err := client.Attributes.Delete(context.Background(), "/d.h5", CollectionGroups, "g-abc", "scale factor")
	require.NoError(t, err)
}
