// Package h5load mirrors local HDF5 files into an HSDS domain. It
// walks the file with a pure-Go HDF5 reader and recreates the group
// hierarchy, datasets, and attributes through the HSDS REST API.
// Datasets too large for a single request upload in fixed-size
// hyperslab chunks.
//
// Per-item failures (an unreadable attribute, a failed chunk write,
// an unsupported element type) are logged and counted but do not
// abort the load. Load returns an error only when the file cannot be
// opened or the target domain cannot be created.
package h5load

import (
	"context"
	"errors"
	"fmt"
	"path"
	"reflect"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	hdf5 "github.com/robert-malhotra/go-hdf5/hdf5"

	"github.com/hdf-forge/hsds-go/pkg/hsds"
)

// Upload sizing defaults. A dataset whose byte size exceeds
// DefaultMaxPayloadBytes is split into hyperslab chunks of roughly
// DefaultChunkElements elements, with multi-dimensional bands capped
// at DefaultMaxChunkRows rows.
const (
	DefaultMaxPayloadBytes = 950000
	DefaultChunkElements   = 32768
	DefaultMaxChunkRows    = 128
)

var errUnsupportedElem = errors.New("unsupported element type")

// Loader copies HDF5 files into HSDS domains. Zero values for the
// sizing fields take the package defaults; a nil Logger discards logs.
type Loader struct {
	Client *hsds.Client
	Logger hclog.Logger

	MaxPayloadBytes int
	ChunkElements   int
	MaxChunkRows    int
}

// Stats reports what a single Load did. Warnings aggregates every
// per-item failure that was downgraded to a warning.
type Stats struct {
	Groups     int
	Datasets   int
	Attributes int

	ChunksWritten   int
	ChunksFailed    int
	DatasetsSkipped int

	Warnings error
}

// Load mirrors the HDF5 file at filePath into domain, creating the
// domain first. The returned Stats is non-nil whenever the walk ran,
// even if some items were skipped.
func (l *Loader) Load(ctx context.Context, filePath, domain string) (*Stats, error) {
	logger := l.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	maxPayload := l.MaxPayloadBytes
	if maxPayload <= 0 {
		maxPayload = DefaultMaxPayloadBytes
	}
	chunkElements := l.ChunkElements
	if chunkElements <= 0 {
		chunkElements = DefaultChunkElements
	}
	maxChunkRows := l.MaxChunkRows
	if maxChunkRows <= 0 {
		maxChunkRows = DefaultMaxChunkRows
	}

	file, err := hdf5.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening HDF5 file: %w", err)
	}
	defer file.Close()

	dom, err := l.Client.Domains.Create(ctx, domain, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating domain %s: %w", domain, err)
	}

	logger.Info("loading HDF5 file", "file", filePath, "domain", domain, "root", dom.Root)

	run := &loadRun{
		loader:        l,
		logger:        logger,
		domain:        domain,
		maxPayload:    maxPayload,
		chunkElements: chunkElements,
		maxChunkRows:  maxChunkRows,
		stats:         &Stats{},
		groupIDs:      map[string]string{"/": dom.Root},
	}

	err = hdf5.Walk(file.Root(), func(objPath string, obj interface{}, walkErr error) error {
		if walkErr != nil {
			run.warn(fmt.Errorf("error opening %s: %w", objPath, walkErr))
			return nil
		}
		switch o := obj.(type) {
		case *hdf5.Group:
			run.loadGroup(ctx, objPath, o)
		case *hdf5.Dataset:
			run.loadDataset(ctx, objPath, o)
		}
		return nil
	})
	if err != nil {
		run.warn(fmt.Errorf("error walking file: %w", err))
	}

	run.stats.Warnings = run.warnings.ErrorOrNil()
	return run.stats, nil
}

// loadRun carries the per-call state of one Load.
type loadRun struct {
	loader        *Loader
	logger        hclog.Logger
	domain        string
	maxPayload    int
	chunkElements int
	maxChunkRows  int

	stats    *Stats
	warnings *multierror.Error

	// groupIDs maps file paths onto created HSDS group IDs so children
	// can link under their parent.
	groupIDs map[string]string
}

func (r *loadRun) warn(err error) {
	r.logger.Warn("skipping item", "error", err)
	r.warnings = multierror.Append(r.warnings, err)
}

func (r *loadRun) loadGroup(ctx context.Context, objPath string, g *hdf5.Group) {
	id, ok := r.groupIDs[objPath]
	if !ok {
		parentID, ok := r.groupIDs[path.Dir(objPath)]
		if !ok {
			r.warn(fmt.Errorf("group %s: parent group was not created", objPath))
			return
		}

		created, err := r.loader.Client.Groups.Create(ctx, r.domain, &hsds.GroupCreateRequest{
			Link: &hsds.LinkRef{ID: parentID, Name: path.Base(objPath)},
		})
		if err != nil {
			r.warn(fmt.Errorf("group %s: %w", objPath, err))
			return
		}
		id = created.ID
		r.groupIDs[objPath] = id
		r.stats.Groups++
		r.logger.Debug("created group", "path", objPath, "id", id)
	}

	r.copyAttrs(ctx, objPath, id, g.Attrs(), g.Attr)
}

func (r *loadRun) loadDataset(ctx context.Context, objPath string, ds *hdf5.Dataset) {
	parentID, ok := r.groupIDs[path.Dir(objPath)]
	if !ok {
		r.warn(fmt.Errorf("dataset %s: parent group was not created", objPath))
		return
	}

	elem, err := ds.GoType()
	if err != nil {
		r.warn(fmt.Errorf("dataset %s: %w", objPath, err))
		r.stats.DatasetsSkipped++
		return
	}
	typeTag, ok := typeTagFor(elem)
	if !ok {
		r.warn(fmt.Errorf("dataset %s: %w: %s", objPath, errUnsupportedElem, elem))
		r.stats.DatasetsSkipped++
		return
	}

	dims := ds.Dims()
	req := hsds.NewLinkedDatasetCreateRequest(typeTag, dims, parentID, path.Base(objPath))
	if len(dims) == 0 {
		// Rank 0 in the source file is a scalar, which the service
		// expresses by omitting the shape member entirely.
		req.Shape = nil
	}
	created, err := r.loader.Client.Datasets.Create(ctx, r.domain, req)
	if err != nil {
		r.warn(fmt.Errorf("dataset %s: %w", objPath, err))
		r.stats.DatasetsSkipped++
		return
	}
	r.stats.Datasets++
	r.logger.Debug("created dataset", "path", objPath, "id", created.ID, "dims", dims, "type", typeTag)

	if ds.NumElements() > 0 {
		r.writeDatasetValues(ctx, objPath, created.ID, ds, elem, dims)
	}

	r.copyAttrs(ctx, objPath, created.ID, ds.Attrs(), ds.Attr)
}

func (r *loadRun) writeDatasetValues(ctx context.Context, objPath, datasetID string, ds *hdf5.Dataset, elem reflect.Type, dims []uint64) {
	flat, err := readFlat(ds, elem)
	if err != nil {
		r.warn(fmt.Errorf("dataset %s: reading values: %w", objPath, err))
		return
	}

	totalBytes := int(ds.NumElements()) * ds.DtypeSize()
	if totalBytes <= r.maxPayload {
		value := nestValues(flat, dims)
		if len(dims) == 0 {
			// Scalar reads come back as a one-element slice.
			value = reflect.ValueOf(flat).Index(0).Interface()
		}
		err := r.loader.Client.Datasets.WriteValues(ctx, r.domain, datasetID, hsds.DatasetValueRequest{
			Value: value,
		})
		if err != nil {
			r.warn(fmt.Errorf("dataset %s: writing values: %w", objPath, err))
			r.stats.ChunksFailed++
			return
		}
		r.stats.ChunksWritten++
		return
	}

	slabs, ok := planSlabs(dims, r.chunkElements, r.maxChunkRows)
	if !ok {
		r.warn(fmt.Errorf("dataset %s: rank %d too high for chunked upload", objPath, len(dims)))
		r.stats.DatasetsSkipped++
		return
	}

	r.logger.Info("chunked upload", "path", objPath, "bytes", totalBytes, "chunks", len(slabs))
	for _, s := range slabs {
		err := r.loader.Client.Datasets.WriteValues(ctx, r.domain, datasetID, hsds.DatasetValueRequest{
			Start: s.start,
			Stop:  s.stop,
			Value: slabValues(flat, dims, s),
		})
		if err != nil {
			r.warn(fmt.Errorf("dataset %s: chunk %v-%v: %w", objPath, s.start, s.stop, err))
			r.stats.ChunksFailed++
			continue
		}
		r.stats.ChunksWritten++
	}
}

func (r *loadRun) copyAttrs(ctx context.Context, objPath, objectID string, names []string, get func(string) *hdf5.Attribute) {
	for _, name := range names {
		attr := get(name)
		if attr == nil {
			r.warn(fmt.Errorf("attribute %s@%s: not readable", name, objPath))
			continue
		}
		value, err := attr.Value()
		if err != nil {
			r.warn(fmt.Errorf("attribute %s@%s: %w", name, objPath, err))
			continue
		}
		if err := r.loader.Client.Attributes.Set(ctx, r.domain, objectID, name, value); err != nil {
			r.warn(fmt.Errorf("attribute %s@%s: %w", name, objPath, err))
			continue
		}
		r.stats.Attributes++
	}
}
