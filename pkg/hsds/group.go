package hsds

import (
	"context"
	"net/http"
)

// GroupService exposes group operations.
type GroupService struct {
	client *Client
}

// Create creates a group in the domain. req may be nil; set req.Link
// to link the new group into a parent group in the same call, which
// is the only way an anonymous group becomes reachable by path.
func (s *GroupService) Create(ctx context.Context, domain string, req *GroupCreateRequest) (*Group, error) {
	s.client.logger.Info("creating group", "domain", domain)

	var body interface{}
	if req != nil {
		body = req
	}

	httpReq, err := s.client.newRequest(ctx, http.MethodPost, "/groups", withDomain(domain), body)
	if err != nil {
		return nil, err
	}

	var out Group
	if err := s.client.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List lists the IDs of all groups in the domain.
func (s *GroupService) List(ctx context.Context, domain string) (*GroupList, error) {
	httpReq, err := s.client.newRequest(ctx, http.MethodGet, "/groups", withDomain(domain), nil)
	if err != nil {
		return nil, err
	}

	var out GroupList
	if err := s.client.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns information about a group. When getAlias is true the
// response includes the group's alias paths.
func (s *GroupService) Get(ctx context.Context, domain, groupID string, getAlias bool) (*Group, error) {
	q := withDomain(domain)
	if getAlias {
		q.Set("getalias", "1")
	}

	httpReq, err := s.client.newRequest(ctx, http.MethodGet, "/groups/"+groupID, q, nil)
	if err != nil {
		return nil, err
	}

	var out Group
	if err := s.client.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete deletes a group.
func (s *GroupService) Delete(ctx context.Context, domain, groupID string) error {
	s.client.logger.Info("deleting group", "domain", domain, "group", groupID)

	httpReq, err := s.client.newRequest(ctx, http.MethodDelete, "/groups/"+groupID, withDomain(domain), nil)
	if err != nil {
		return err
	}
	return s.client.do(httpReq, nil)
}
