package hsds

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupService_Create_Anonymous(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/groups", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, body)

		json.NewEncoder(w).Encode(Group{ID: "g-new-1", Root: "g-root"})
	}, nil)

	group, err := client.Groups.Create(context.Background(), "/d.h5", nil)
	require.NoError(t, err)
	assert.Equal(t, "g-new-1", group.ID)
}

func TestGroupService_Create_WithParentLink(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req GroupCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.Link)
		assert.Equal(t, "g-parent", req.Link.ID)
		assert.Equal(t, "child", req.Link.Name)

		json.NewEncoder(w).Encode(Group{ID: "g-child"})
	}, nil)

	group, err := client.Groups.Create(context.Background(), "/d.h5", &GroupCreateRequest{
		Link: &LinkRef{ID: "g-parent", Name: "child"},
	})
	require.NoError(t, err)
	assert.Equal(t, "g-child", group.ID)
}

func TestGroupService_Get(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/groups/g-abc", r.URL.Path)
		assert.False(t, r.URL.Query().Has("getalias"))

		json.NewEncoder(w).Encode(Group{
			ID:             "g-abc",
			LinkCount:      3,
			AttributeCount: 2,
		})
	}, nil)

	group, err := client.Groups.Get(context.Background(), "/d.h5", "g-abc", false)
	require.NoError(t, err)
	assert.Equal(t, "g-abc", group.ID)
	assert.Equal(t, 3, group.LinkCount)
	assert.Equal(t, 2, group.AttributeCount)
}

func TestGroupService_Get_WithAlias(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("getalias"))
		json.NewEncoder(w).Encode(Group{ID: "g-abc", Alias: []string{"/data/raw"}})
	}, nil)

	group, err := client.Groups.Get(context.Background(), "/d.h5", "g-abc", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"/data/raw"}, group.Alias)
}

func TestGroupService_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/groups", r.URL.Path)
		json.NewEncoder(w).Encode(GroupList{Groups: []string{"g-1", "g-2"}})
	}, nil)

	list, err := client.Groups.List(context.Background(), "/d.h5")
	require.NoError(t, err)
	assert.Equal(t, []string{"g-1", "g-2"}, list.Groups)
}

func TestGroupService_Delete_ThenNotFound(t *testing.T) {
	deleted := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			deleted = true
			w.Write([]byte(`{}`))
		case http.MethodGet:
			if deleted {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"error": "group not found"}`))
				return
			}
			json.NewEncoder(w).Encode(Group{ID: "g-abc"})
		}
	}, nil)

	ctx := context.Background()
	require.NoError(t, client.Groups.Delete(ctx, "/d.h5", "g-abc"))

	_, err := client.Groups.Get(ctx, "/d.h5", "g-abc", false)
	assert.ErrorIs(t, err, ErrNotFound)
}
