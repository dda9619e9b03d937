package hsds

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatatypeService_Commit(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/datatypes", r.URL.Path)
		assert.Equal(t, "/types.h5", r.URL.Query().Get("domain"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "H5T_IEEE_F32LE", body["type"])
		link := body["link"].(map[string]interface{})
		assert.Equal(t, "g-root", link["id"])
		assert.Equal(t, "float32", link["name"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Datatype{ID: "t-new", AttributeCount: 0})
	}, nil)

	dt, err := client.Datatypes.Commit(context.Background(), "/types.h5", DatatypeCommitRequest{
		Type: PredefinedType(TypeIEEEF32LE),
		Link: &LinkRef{ID: "g-root", Name: "float32"},
	})
	require.NoError(t, err)
	assert.Equal(t, "t-new", dt.ID)
}

func TestDatatypeService_GetDelete(t *testing.T) {
	deleted := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/datatypes/t-abc", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			if deleted {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{}`))
				return
			}
			json.NewEncoder(w).Encode(Datatype{ID: "t-abc"})
		case http.MethodDelete:
			deleted = true
			w.Write([]byte(`{}`))
		}
	}, nil)

	ctx := context.Background()
	dt, err := client.Datatypes.Get(ctx, "/types.h5", "t-abc")
	require.NoError(t, err)
	assert.Equal(t, "t-abc", dt.ID)

	require.NoError(t, client.Datatypes.Delete(ctx, "/types.h5", "t-abc"))

	_, err = client.Datatypes.Get(ctx, "/types.h5", "t-abc")
	assert.ErrorIs(t, err, ErrNotFound)
}
