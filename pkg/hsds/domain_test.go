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

func TestDomainService_Create(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/", r.URL.Path)
		assert.Equal(t, "/home/admin/new.h5", r.URL.Query().Get("domain"))

		// No body on a plain domain create.
		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, body)

		json.NewEncoder(w).Encode(Domain{
			Root:  "g-abc-123",
			Owner: "admin",
			Class: DomainClassDomain,
		})
	}, nil)

	domain, err := client.Domains.Create(context.Background(), "/home/admin/new.h5", nil)
	require.NoError(t, err)
	assert.Equal(t, "g-abc-123", domain.Root)
	assert.Equal(t, DomainClassDomain, domain.Class)
}

func TestDomainService_CreateFolder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)

		var req DomainCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 1, req.Folder)

		json.NewEncoder(w).Encode(Domain{Class: DomainClassFolder})
	}, nil)

	domain, err := client.Domains.CreateFolder(context.Background(), "/home/admin/folder")
	require.NoError(t, err)
	assert.Equal(t, DomainClassFolder, domain.Class)
}

func TestDomainService_Get_RoundTrip(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		json.NewEncoder(w).Encode(Domain{
			Root:         "g-root",
			Owner:        "admin",
			Created:      1700000000.5,
			LastModified: 1700000100.25,
		})
	}, nil)

	domain, err := client.Domains.Get(context.Background(), "/home/admin/data.h5")
	require.NoError(t, err)
	assert.Equal(t, "g-root", domain.Root)
	assert.Equal(t, "admin", domain.Owner)
	assert.InDelta(t, 1700000000.5, domain.Created, 0.001)
}

func TestDomainService_Delete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/", r.URL.Path)
		w.Write([]byte(`{"hrefs": []}`))
	}, nil)

	err := client.Domains.Delete(context.Background(), "/home/admin/old.h5")
	require.NoError(t, err)
}

func TestDomainService_List_NoDomainParam(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.False(t, r.URL.Query().Has("domain"))

		json.NewEncoder(w).Encode(DomainList{Domains: []DomainEntry{
			{Name: "/home/admin/a.h5", Class: DomainClassDomain},
			{Name: "/home/admin/sub", Class: DomainClassFolder},
		}})
	}, nil)

	list, err := client.Domains.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Domains, 2)
	assert.Equal(t, "/home/admin/a.h5", list.Domains[0].Name)
	assert.Equal(t, DomainClassFolder, list.Domains[1].Class)
}
