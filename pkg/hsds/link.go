package hsds

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// LinkService exposes link operations on groups.
type LinkService struct {
	client *Client
}

// ListOptions carries pagination for link listings. Limit caps the
// number of returned links; Marker is the link name to resume after.
type ListOptions struct {
	Limit  int
	Marker string
}

func (o *ListOptions) apply(q url.Values) {
	if o == nil {
		return
	}
	if o.Limit > 0 {
		q.Set("Limit", strconv.Itoa(o.Limit))
	}
	if o.Marker != "" {
		q.Set("Marker", o.Marker)
	}
}

// List lists the links in a group. opts may be nil.
func (s *LinkService) List(ctx context.Context, domain, groupID string, opts *ListOptions) (*LinkList, error) {
	q := withDomain(domain)
	opts.apply(q)

	httpReq, err := s.client.newRequest(ctx, http.MethodGet, "/groups/"+groupID+"/links", q, nil)
	if err != nil {
		return nil, err
	}

	var out LinkList
	if err := s.client.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create creates a link named name in the group. The request body
// selects the link flavor; see LinkCreateRequest.
func (s *LinkService) Create(ctx context.Context, domain, groupID, name string, req LinkCreateRequest) error {
	s.client.logger.Info("creating link", "domain", domain, "group", groupID, "name", name)

	httpReq, err := s.client.newRequest(ctx, http.MethodPut, linkPath(groupID, name), withDomain(domain), req)
	if err != nil {
		return err
	}
	return s.client.do(httpReq, nil)
}

// CreateHard links name to the object targetID.
func (s *LinkService) CreateHard(ctx context.Context, domain, groupID, name, targetID string) error {
	return s.Create(ctx, domain, groupID, name, LinkCreateRequest{ID: targetID})
}

// CreateSoft links name to the path h5path, resolved at access time.
func (s *LinkService) CreateSoft(ctx context.Context, domain, groupID, name, h5path string) error {
	return s.Create(ctx, domain, groupID, name, LinkCreateRequest{H5Path: h5path})
}

// CreateExternal links name to h5path inside another domain.
func (s *LinkService) CreateExternal(ctx context.Context, domain, groupID, name, h5path, h5domain string) error {
	return s.Create(ctx, domain, groupID, name, LinkCreateRequest{H5Path: h5path, H5Domain: h5domain})
}

// Get returns a single link by name.
func (s *LinkService) Get(ctx context.Context, domain, groupID, name string) (*LinkGetResponse, error) {
	httpReq, err := s.client.newRequest(ctx, http.MethodGet, linkPath(groupID, name), withDomain(domain), nil)
	if err != nil {
		return nil, err
	}

	var out LinkGetResponse
	if err := s.client.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete deletes a link. The target object is not affected.
func (s *LinkService) Delete(ctx context.Context, domain, groupID, name string) error {
	s.client.logger.Info("deleting link", "domain", domain, "group", groupID, "name", name)

	httpReq, err := s.client.newRequest(ctx, http.MethodDelete, linkPath(groupID, name), withDomain(domain), nil)
	if err != nil {
		return err
	}
	return s.client.do(httpReq, nil)
}

func linkPath(groupID, name string) string {
	return "/groups/" + groupID + "/links/" + url.PathEscape(name)
}
