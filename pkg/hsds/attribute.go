package hsds

import (
	"context"
	"net/http"
	"net/url"
	"reflect"
	"strings"
)

// Object collections addressable by the attribute API.
const (
	CollectionGroups    = "groups"
	CollectionDatasets  = "datasets"
	CollectionDatatypes = "datatypes"
)

// AttributeService exposes attribute operations on groups, datasets,
// and committed datatypes.
type AttributeService struct {
	client *Client
}

// List lists the attributes attached to an object.
func (s *AttributeService) List(ctx context.Context, domain, collection, objectID string) (*AttributeList, error) {
	httpReq, err := s.client.newRequest(ctx, http.MethodGet, "/"+collection+"/"+objectID+"/attributes", withDomain(domain), nil)
	if err != nil {
		return nil, err
	}

	var out AttributeList
	if err := s.client.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns a single attribute by name.
func (s *AttributeService) Get(ctx context.Context, domain, collection, objectID, name string) (*Attribute, error) {
	httpReq, err := s.client.newRequest(ctx, http.MethodGet, attributePath(collection, objectID, name), withDomain(domain), nil)
	if err != nil {
		return nil, err
	}

	var out Attribute
	if err := s.client.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Put creates or replaces an attribute with an explicit type and shape.
func (s *AttributeService) Put(ctx context.Context, domain, collection, objectID, name string, req AttributePutRequest) error {
	s.client.logger.Info("putting attribute", "domain", domain, "collection", collection, "object", objectID, "name", name)

	httpReq, err := s.client.newRequest(ctx, http.MethodPut, attributePath(collection, objectID, name), withDomain(domain), req)
	if err != nil {
		return err
	}
	return s.client.do(httpReq, nil)
}

// Delete deletes an attribute.
func (s *AttributeService) Delete(ctx context.Context, domain, collection, objectID, name string) error {
	s.client.logger.Info("deleting attribute", "domain", domain, "collection", collection, "object", objectID, "name", name)

	httpReq, err := s.client.newRequest(ctx, http.MethodDelete, attributePath(collection, objectID, name), withDomain(domain), nil)
	if err != nil {
		return err
	}
	return s.client.do(httpReq, nil)
}

// Set creates or replaces an attribute, inferring the HSDS type and
// shape from the native Go value and the target collection from the
// object ID prefix (g- group, d- dataset, t- datatype). Scalars are
// written without a shape member; slices write dims equal to their
// lengths. Supported element types: string, signed and unsigned
// integers, floats, bool.
func (s *AttributeService) Set(ctx context.Context, domain, objectID, name string, value interface{}) error {
	collection, err := CollectionForID(objectID)
	if err != nil {
		return err
	}

	typeSpec, shape, err := inferValueSpec(value)
	if err != nil {
		return err
	}

	return s.Put(ctx, domain, collection, objectID, name, AttributePutRequest{
		Type:  typeSpec,
		Shape: shape,
		Value: value,
	})
}

// ListGroupAttributes lists a group's attributes.
func (s *AttributeService) ListGroupAttributes(ctx context.Context, domain, groupID string) (*AttributeList, error) {
	return s.List(ctx, domain, CollectionGroups, groupID)
}

// ListDatasetAttributes lists a dataset's attributes.
func (s *AttributeService) ListDatasetAttributes(ctx context.Context, domain, datasetID string) (*AttributeList, error) {
	return s.List(ctx, domain, CollectionDatasets, datasetID)
}

// ListDatatypeAttributes lists a committed datatype's attributes.
func (s *AttributeService) ListDatatypeAttributes(ctx context.Context, domain, datatypeID string) (*AttributeList, error) {
	return s.List(ctx, domain, CollectionDatatypes, datatypeID)
}

// PutGroupAttribute creates or replaces an attribute on a group.
func (s *AttributeService) PutGroupAttribute(ctx context.Context, domain, groupID, name string, req AttributePutRequest) error {
	return s.Put(ctx, domain, CollectionGroups, groupID, name, req)
}

// PutDatasetAttribute creates or replaces an attribute on a dataset.
func (s *AttributeService) PutDatasetAttribute(ctx context.Context, domain, datasetID, name string, req AttributePutRequest) error {
	return s.Put(ctx, domain, CollectionDatasets, datasetID, name, req)
}

// PutDatatypeAttribute creates or replaces an attribute on a
// committed datatype.
func (s *AttributeService) PutDatatypeAttribute(ctx context.Context, domain, datatypeID, name string, req AttributePutRequest) error {
	return s.Put(ctx, domain, CollectionDatatypes, datatypeID, name, req)
}

// CollectionForID maps an object ID onto its attribute collection by
// prefix. Unrecognized prefixes return ErrInvalidParameter.
func CollectionForID(objectID string) (string, error) {
	switch {
	case strings.HasPrefix(objectID, "g-"):
		return CollectionGroups, nil
	case strings.HasPrefix(objectID, "d-"):
		return CollectionDatasets, nil
	case strings.HasPrefix(objectID, "t-"):
		return CollectionDatatypes, nil
	default:
		return "", invalidParamf("unrecognized object id prefix: %q", objectID)
	}
}

// inferValueSpec derives the HSDS type spec and shape dims for a
// native value. A nil shape means scalar.
func inferValueSpec(value interface{}) (interface{}, []uint64, error) {
	rv := reflect.ValueOf(value)

	var shape []uint64
	for rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		shape = append(shape, uint64(rv.Len()))
		if rv.Len() == 0 {
			return nil, nil, invalidParamf("cannot infer type of empty array attribute")
		}
		rv = rv.Index(0)
	}
	if rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}

	var typeSpec interface{}
	switch rv.Kind() {
	case reflect.String:
		typeSpec = VariableUTF8String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		typeSpec = TypeStandardI64LE
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		typeSpec = TypeStandardU64LE
	case reflect.Float32:
		typeSpec = TypeIEEEF32LE
	case reflect.Float64:
		typeSpec = TypeIEEEF64LE
	case reflect.Bool:
		typeSpec = TypeStandardI8LE
	default:
		return nil, nil, invalidParamf("cannot infer HSDS type for value of kind %s", rv.Kind())
	}

	return typeSpec, shape, nil
}

func attributePath(collection, objectID, name string) string {
	return "/" + collection + "/" + objectID + "/attributes/" + url.PathEscape(name)
}
