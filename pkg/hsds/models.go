package hsds

import "encoding/json"

// The structures below mirror the HSDS JSON wire schema. They are
// ephemeral client-side representations of server state; the server
// owns every lifecycle and invariant. Timestamps are epoch seconds.

// DomainClass distinguishes regular domains from folders.
type DomainClass string

const (
	DomainClassDomain DomainClass = "domain"
	DomainClassFolder DomainClass = "folder"
)

// ACL holds the permission flags for a single user.
type ACL struct {
	Create    *bool `json:"create,omitempty"`
	Read      *bool `json:"read,omitempty"`
	Update    *bool `json:"update,omitempty"`
	Delete    *bool `json:"delete,omitempty"`
	ReadACL   *bool `json:"readACL,omitempty"`
	UpdateACL *bool `json:"updateACL,omitempty"`
}

// Href is a hypermedia reference returned alongside most resources.
type Href struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}

// Domain is a path-addressed container (file or folder).
type Domain struct {
	Root         string         `json:"root,omitempty"`
	Owner        string         `json:"owner,omitempty"`
	Class        DomainClass    `json:"class,omitempty"`
	Created      float64        `json:"created,omitempty"`
	LastModified float64        `json:"lastModified,omitempty"`
	Hrefs        []Href         `json:"hrefs,omitempty"`
	ACLs         map[string]ACL `json:"acls,omitempty"`
}

// DomainEntry is one row of a domain listing.
type DomainEntry struct {
	Name         string      `json:"name"`
	Class        DomainClass `json:"class,omitempty"`
	Owner        string      `json:"owner,omitempty"`
	Created      float64     `json:"created,omitempty"`
	LastModified float64     `json:"lastModified,omitempty"`
}

// DomainList is the response to a domain listing.
type DomainList struct {
	Domains []DomainEntry `json:"domains"`
	Hrefs   []Href        `json:"hrefs,omitempty"`
}

// DomainCreateRequest is the optional body of a domain create. Folder
// is 1 to create a folder instead of a regular domain.
type DomainCreateRequest struct {
	Folder int `json:"folder,omitempty"`
}

// Group is a node in the domain hierarchy.
type Group struct {
	ID             string   `json:"id"`
	Root           string   `json:"root,omitempty"`
	Domain         string   `json:"domain,omitempty"`
	Alias          []string `json:"alias,omitempty"`
	Created        float64  `json:"created,omitempty"`
	LastModified   float64  `json:"lastModified,omitempty"`
	AttributeCount int      `json:"attributeCount,omitempty"`
	LinkCount      int      `json:"linkCount,omitempty"`
	Hrefs          []Href   `json:"hrefs,omitempty"`
}

// GroupList is the response to a group listing.
type GroupList struct {
	Groups []string `json:"groups"`
	Hrefs  []Href   `json:"hrefs,omitempty"`
}

// LinkRef names an existing object so a freshly created group or
// dataset is linked into its parent in the same call.
type LinkRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GroupCreateRequest is the optional body of a group create.
type GroupCreateRequest struct {
	Link *LinkRef `json:"link,omitempty"`
}

// LinkClass is the HDF5 link kind.
type LinkClass string

const (
	LinkClassHard     LinkClass = "H5L_TYPE_HARD"
	LinkClassSoft     LinkClass = "H5L_TYPE_SOFT"
	LinkClassExternal LinkClass = "H5L_TYPE_EXTERNAL"
)

// Link is a named edge in a group. Hard links carry the target ID and
// collection, soft links an h5path, external links h5path + h5domain.
type Link struct {
	ID         string    `json:"id,omitempty"`
	Created    float64   `json:"created,omitempty"`
	Class      LinkClass `json:"class,omitempty"`
	Title      string    `json:"title"`
	Target     string    `json:"target,omitempty"`
	Href       string    `json:"href,omitempty"`
	Collection string    `json:"collection,omitempty"`
	H5Path     string    `json:"h5path,omitempty"`
	H5Domain   string    `json:"h5domain,omitempty"`
}

// LinkList is the response to a link listing.
type LinkList struct {
	Links []Link `json:"links"`
	Hrefs []Href `json:"hrefs,omitempty"`
}

// LinkGetResponse wraps a single link fetch.
type LinkGetResponse struct {
	Link    Link    `json:"link"`
	Created float64 `json:"created,omitempty"`
	Hrefs   []Href  `json:"hrefs,omitempty"`
}

// LinkCreateRequest selects the link flavor: set ID for a hard link,
// H5Path for a soft link, H5Path+H5Domain for an external link.
type LinkCreateRequest struct {
	ID       string `json:"id,omitempty"`
	H5Path   string `json:"h5path,omitempty"`
	H5Domain string `json:"h5domain,omitempty"`
}

// DataType describes a dataset or attribute type as reported by the
// server. Fields is populated for compound types.
type DataType struct {
	Class  string          `json:"class"`
	Base   string          `json:"base,omitempty"`
	Fields json.RawMessage `json:"fields,omitempty"`
}

// Shape describes a dataspace: H5S_SIMPLE with dims/maxdims,
// H5S_SCALAR, or H5S_NULL.
type Shape struct {
	Class   string   `json:"class"`
	Dims    []uint64 `json:"dims,omitempty"`
	Maxdims []uint64 `json:"maxdims,omitempty"`
}

// Dataset is a typed, shaped array object.
type Dataset struct {
	ID                 string          `json:"id"`
	Root               string          `json:"root,omitempty"`
	Domain             string          `json:"domain,omitempty"`
	Created            float64         `json:"created,omitempty"`
	LastModified       float64         `json:"lastModified,omitempty"`
	AttributeCount     int             `json:"attributeCount,omitempty"`
	Type               *DataType       `json:"type,omitempty"`
	Shape              *Shape          `json:"shape,omitempty"`
	Layout             json.RawMessage `json:"layout,omitempty"`
	CreationProperties json.RawMessage `json:"creationProperties,omitempty"`
	Hrefs              []Href          `json:"hrefs,omitempty"`
}

// DatasetList is the response to a dataset listing.
type DatasetList struct {
	Datasets []string `json:"datasets"`
	Hrefs    []Href   `json:"hrefs,omitempty"`
}

// DatasetShapeResponse wraps a shape fetch.
type DatasetShapeResponse struct {
	Shape        Shape   `json:"shape"`
	Created      float64 `json:"created,omitempty"`
	LastModified float64 `json:"lastModified,omitempty"`
	Hrefs        []Href  `json:"hrefs,omitempty"`
}

// DatasetTypeResponse wraps a type fetch.
type DatasetTypeResponse struct {
	Type  DataType `json:"type"`
	Hrefs []Href   `json:"hrefs,omitempty"`
}

// ShapeUpdateRequest resizes a dataset to the given dims.
type ShapeUpdateRequest struct {
	Shape []uint64 `json:"shape"`
}

// DatasetValueRequest is the body of a value write. Start/Stop/Step
// select a hyperslab, Points selects coordinates, and exactly one of
// Value (JSON data) or ValueBase64 carries the payload.
type DatasetValueRequest struct {
	Start       []uint64    `json:"start,omitempty"`
	Stop        []uint64    `json:"stop,omitempty"`
	Step        []uint64    `json:"step,omitempty"`
	Points      [][]uint64  `json:"points,omitempty"`
	Value       interface{} `json:"value,omitempty"`
	ValueBase64 string      `json:"value_base64,omitempty"`
}

// ValueResponse wraps a JSON value read.
type ValueResponse struct {
	Value interface{} `json:"value"`
	Hrefs []Href      `json:"hrefs,omitempty"`
}

// Datatype is a committed named type.
type Datatype struct {
	ID             string          `json:"id"`
	Root           string          `json:"root,omitempty"`
	Domain         string          `json:"domain,omitempty"`
	Created        float64         `json:"created,omitempty"`
	LastModified   float64         `json:"lastModified,omitempty"`
	AttributeCount int             `json:"attributeCount,omitempty"`
	Type           json.RawMessage `json:"type,omitempty"`
	Hrefs          []Href          `json:"hrefs,omitempty"`
}

// Attribute is a name-scoped value attached to a group, dataset, or
// committed datatype. Type is kept raw so predefined-tag, string, and
// compound specs all round-trip untouched.
type Attribute struct {
	Name    string          `json:"name,omitempty"`
	Type    json.RawMessage `json:"type,omitempty"`
	Shape   *Shape          `json:"shape,omitempty"`
	Value   interface{}     `json:"value,omitempty"`
	Created float64         `json:"created,omitempty"`
	Hrefs   []Href          `json:"hrefs,omitempty"`
}

// AttributeList is the response to an attribute listing.
type AttributeList struct {
	Attributes []Attribute `json:"attributes"`
	Hrefs      []Href      `json:"hrefs,omitempty"`
}

// AttributePutRequest is the body of an attribute put.
type AttributePutRequest struct {
	Type  interface{} `json:"type"`
	Shape []uint64    `json:"shape,omitempty"`
	Value interface{} `json:"value"`
}

// ErrorResponse is the JSON error body HSDS returns on failures. All
// fields are optional on the wire.
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}
