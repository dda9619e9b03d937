package hsds

import (
	"context"
	"net/http"
	"net/url"
)

// DomainService exposes domain and folder operations. Domains are the
// top-level path-addressed containers; the path travels in the
// `domain` query parameter of every call.
type DomainService struct {
	client *Client
}

// Create creates a new domain. req may be nil; pass &DomainCreateRequest{Folder: 1}
// (or use CreateFolder) to create a folder instead.
func (s *DomainService) Create(ctx context.Context, domain string, req *DomainCreateRequest) (*Domain, error) {
	s.client.logger.Info("creating domain", "domain", domain)

	var body interface{}
	if req != nil {
		body = req
	}

	httpReq, err := s.client.newRequest(ctx, http.MethodPut, "/", withDomain(domain), body)
	if err != nil {
		return nil, err
	}

	var out Domain
	if err := s.client.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateFolder creates a folder domain.
func (s *DomainService) CreateFolder(ctx context.Context, domain string) (*Domain, error) {
	return s.Create(ctx, domain, &DomainCreateRequest{Folder: 1})
}

// Get returns information about a domain.
func (s *DomainService) Get(ctx context.Context, domain string) (*Domain, error) {
	httpReq, err := s.client.newRequest(ctx, http.MethodGet, "/", withDomain(domain), nil)
	if err != nil {
		return nil, err
	}

	var out Domain
	if err := s.client.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete deletes a domain.
func (s *DomainService) Delete(ctx context.Context, domain string) error {
	s.client.logger.Info("deleting domain", "domain", domain)

	httpReq, err := s.client.newRequest(ctx, http.MethodDelete, "/", withDomain(domain), nil)
	if err != nil {
		return err
	}
	return s.client.do(httpReq, nil)
}

// List lists domains visible to the caller. Sent without a domain
// parameter, which the server interprets as a listing request.
func (s *DomainService) List(ctx context.Context) (*DomainList, error) {
	httpReq, err := s.client.newRequest(ctx, http.MethodGet, "/", url.Values{}, nil)
	if err != nil {
		return nil, err
	}

	var out DomainList
	if err := s.client.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
