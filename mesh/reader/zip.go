package reader

import (
	"archive/zip"
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"time"

	"github.com/achilleasa/objview/asset"
	"github.com/achilleasa/objview/log"
	"github.com/achilleasa/objview/mesh"
	"github.com/achilleasa/objview/mesh/writer"
)

type zipMeshReader struct {
	logger log.Logger
}

// Create a new zip mesh reader.
func newZipMeshReader() *zipMeshReader {
	return &zipMeshReader{
		logger: log.New("zip reader"),
	}
}

// Read a compiled mesh from a zip file.
func (p *zipMeshReader) Read(res *asset.Resource) (*mesh.Mesh, error) {
	p.logger.Noticef(`parsing compiled mesh from "%s"`, res.Path())
	start := time.Now()

	// zip package requires a reader implementing ReaderAt. To work around
	// this requirement we read the entire zip file into memory and create
	// a reader from the bytes package that implements ReaderAt
	data, err := io.ReadAll(res)
	if err != nil {
		return nil, err
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	var m *mesh.Mesh
	for _, f := range zr.File {
		if f.Name != writer.DataFile {
			p.logger.Warningf("unknown file %s in mesh zip file; skipping", f.Name)
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		m = &mesh.Mesh{}
		err = gob.NewDecoder(rc).Decode(m)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("zipMeshReader: failed to load %s: %s", f.Name, err.Error())
		}
	}

	if m == nil {
		return nil, fmt.Errorf("zipMeshReader: %s not found in %s", writer.DataFile, res.Path())
	}
	if err = m.Validate(); err != nil {
		return nil, err
	}

	p.logger.Noticef("loaded mesh in %d ms", time.Since(start).Nanoseconds()/1e6)
	return m, nil
}
