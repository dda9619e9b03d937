package hsds

import (
	"context"
	"net/http"
)

// DatatypeService exposes committed datatype operations.
type DatatypeService struct {
	client *Client
}

// DatatypeCommitRequest is the body of a datatype commit.
type DatatypeCommitRequest struct {
	Type TypeSpec `json:"type"`
	Link *LinkRef `json:"link,omitempty"`
}

// Commit commits a named datatype to the domain.
func (s *DatatypeService) Commit(ctx context.Context, domain string, req DatatypeCommitRequest) (*Datatype, error) {
	s.client.logger.Info("committing datatype", "domain", domain)

	httpReq, err := s.client.newRequest(ctx, http.MethodPost, "/datatypes", withDomain(domain), req)
	if err != nil {
		return nil, err
	}

	var out Datatype
	if err := s.client.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns information about a committed datatype.
func (s *DatatypeService) Get(ctx context.Context, domain, datatypeID string) (*Datatype, error) {
	httpReq, err := s.client.newRequest(ctx, http.MethodGet, "/datatypes/"+datatypeID, withDomain(domain), nil)
	if err != nil {
		return nil, err
	}

	var out Datatype
	if err := s.client.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete deletes a committed datatype.
func (s *DatatypeService) Delete(ctx context.Context, domain, datatypeID string) error {
	s.client.logger.Info("deleting datatype", "domain", domain, "datatype", datatypeID)

	httpReq, err := s.client.newRequest(ctx, http.MethodDelete, "/datatypes/"+datatypeID, withDomain(domain), nil)
	if err != nil {
		return err
	}
	return s.client.do(httpReq, nil)
}
