package hsds

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// DatasetService exposes dataset operations, including shape and
// value access.
type DatasetService struct {
	client *Client
}

// ReadOptions narrows a value read. Select is an HSDS selection
// expression like "[0:3]" or "[3:9,0:5:2]"; Query is a server-side
// filter condition with an optional result Limit.
type ReadOptions struct {
	Select string
	Query  string
	Limit  int
}

// Create creates a dataset in the domain.
func (s *DatasetService) Create(ctx context.Context, domain string, req DatasetCreateRequest) (*Dataset, error) {
	s.client.logger.Info("creating dataset", "domain", domain)

	httpReq, err := s.client.newRequest(ctx, http.MethodPost, "/datasets", withDomain(domain), req)
	if err != nil {
		return nil, err
	}

	var out Dataset
	if err := s.client.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List lists the IDs of all datasets in the domain.
func (s *DatasetService) List(ctx context.Context, domain string) (*DatasetList, error) {
	httpReq, err := s.client.newRequest(ctx, http.MethodGet, "/datasets", withDomain(domain), nil)
	if err != nil {
		return nil, err
	}

	var out DatasetList
	if err := s.client.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns information about a dataset.
func (s *DatasetService) Get(ctx context.Context, domain, datasetID string) (*Dataset, error) {
	httpReq, err := s.client.newRequest(ctx, http.MethodGet, "/datasets/"+datasetID, withDomain(domain), nil)
	if err != nil {
		return nil, err
	}

	var out Dataset
	if err := s.client.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete deletes a dataset.
func (s *DatasetService) Delete(ctx context.Context, domain, datasetID string) error {
	s.client.logger.Info("deleting dataset", "domain", domain, "dataset", datasetID)

	httpReq, err := s.client.newRequest(ctx, http.MethodDelete, "/datasets/"+datasetID, withDomain(domain), nil)
	if err != nil {
		return err
	}
	return s.client.do(httpReq, nil)
}

// GetShape returns the dataset's current shape.
func (s *DatasetService) GetShape(ctx context.Context, domain, datasetID string) (*DatasetShapeResponse, error) {
	httpReq, err := s.client.newRequest(ctx, http.MethodGet, "/datasets/"+datasetID+"/shape", withDomain(domain), nil)
	if err != nil {
		return nil, err
	}

	var out DatasetShapeResponse
	if err := s.client.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateShape resizes the dataset. Dimensions can only grow, and only
// up to the maxdims the dataset was created with.
func (s *DatasetService) UpdateShape(ctx context.Context, domain, datasetID string, req ShapeUpdateRequest) error {
	s.client.logger.Info("resizing dataset", "domain", domain, "dataset", datasetID, "shape", req.Shape)

	httpReq, err := s.client.newRequest(ctx, http.MethodPut, "/datasets/"+datasetID+"/shape", withDomain(domain), req)
	if err != nil {
		return err
	}
	return s.client.do(httpReq, nil)
}

// GetType returns the dataset's type.
func (s *DatasetService) GetType(ctx context.Context, domain, datasetID string) (*DatasetTypeResponse, error) {
	httpReq, err := s.client.newRequest(ctx, http.MethodGet, "/datasets/"+datasetID+"/type", withDomain(domain), nil)
	if err != nil {
		return nil, err
	}

	var out DatasetTypeResponse
	if err := s.client.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// WriteValues writes data into the dataset. The request selects the
// target region (hyperslab or points) and carries the payload as JSON
// or base64.
func (s *DatasetService) WriteValues(ctx context.Context, domain, datasetID string, req DatasetValueRequest) error {
	httpReq, err := s.client.newRequest(ctx, http.MethodPut, "/datasets/"+datasetID+"/value", withDomain(domain), req)
	if err != nil {
		return err
	}
	return s.client.do(httpReq, nil)
}

// ReadValues reads dataset values and returns the response body as
// raw bytes, passed through untouched. opts may be nil.
func (s *DatasetService) ReadValues(ctx context.Context, domain, datasetID string, opts *ReadOptions) ([]byte, error) {
	q := withDomain(domain)
	applyReadOptions(q, opts)

	httpReq, err := s.client.newRequest(ctx, http.MethodGet, "/datasets/"+datasetID+"/value", q, nil)
	if err != nil {
		return nil, err
	}
	// Raw reads must not force a JSON response.
	httpReq.Header.Del("Accept")

	return s.client.doRaw(httpReq)
}

// ReadValuesJSON reads dataset values decoded from JSON. opts may be nil.
func (s *DatasetService) ReadValuesJSON(ctx context.Context, domain, datasetID string, opts *ReadOptions) (*ValueResponse, error) {
	q := withDomain(domain)
	applyReadOptions(q, opts)

	httpReq, err := s.client.newRequest(ctx, http.MethodGet, "/datasets/"+datasetID+"/value", q, nil)
	if err != nil {
		return nil, err
	}

	var out ValueResponse
	if err := s.client.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReadPoints reads the values at the given coordinates.
func (s *DatasetService) ReadPoints(ctx context.Context, domain, datasetID string, points [][]uint64) (*ValueResponse, error) {
	body := struct {
		Points [][]uint64 `json:"points"`
	}{Points: points}

	httpReq, err := s.client.newRequest(ctx, http.MethodPost, "/datasets/"+datasetID+"/value", withDomain(domain), body)
	if err != nil {
		return nil, err
	}

	var out ValueResponse
	if err := s.client.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func applyReadOptions(q url.Values, opts *ReadOptions) {
	if opts == nil {
		return
	}
	if opts.Select != "" {
		q.Set("select", opts.Select)
	}
	if opts.Query != "" {
		q.Set("query", opts.Query)
		if opts.Limit > 0 {
			q.Set("Limit", strconv.Itoa(opts.Limit))
		}
	}
}
