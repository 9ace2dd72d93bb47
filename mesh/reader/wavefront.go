package reader

import (
	"bufio"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/achilleasa/objview/asset"
	"github.com/achilleasa/objview/log"
	"github.com/achilleasa/objview/mesh"
	"github.com/achilleasa/objview/types"
)

// Longest line accepted by the scanner.
const maxLineLen = 1024 * 1024

// A single vertex reference inside a face definition. Indices hold the raw
// (1-based or negative) values as they appear in the file; a zero value
// means that the field was omitted.
type FaceVertex struct {
	Position int
	TexCoord int
	Normal   int
}

type wavefrontMeshReader struct {
	logger log.Logger
	opts   Options

	// The mesh being assembled.
	mesh *mesh.Mesh

	// Per-corner attribute references; copied to the mesh if the matching
	// attribute list is not empty once parsing completes.
	texCoordRefs []int32
	normalRefs   []int32

	// Number of malformed lines that were skipped or patched.
	malformed int
}

// Create a new wavefront mesh reader.
func newWavefrontReader(opts Options) *wavefrontMeshReader {
	return &wavefrontMeshReader{
		logger: log.New("wavefront reader"),
		opts:   opts,
		mesh:   &mesh.Mesh{},
	}
}

// Read mesh definition.
func (r *wavefrontMeshReader) Read(res *asset.Resource) (*mesh.Mesh, error) {
	r.logger.Noticef(`parsing mesh from "%s"`, res.Path())
	start := time.Now()

	if err := r.parse(res); err != nil {
		return nil, err
	}

	r.postProcess()

	if err := r.mesh.Validate(); err != nil {
		return nil, err
	}

	if r.malformed > 0 {
		r.logger.Warningf("encountered %d malformed line(s) while parsing %q", r.malformed, res.Path())
	}
	r.logger.Noticef(
		"parsed mesh with %d vertices and %d triangles in %d ms",
		len(r.mesh.Positions), r.mesh.TriangleCount(), time.Since(start).Nanoseconds()/1e6,
	)
	return r.mesh, nil
}

// Parse the supported subset of the wavefront object format. Records with an
// unknown prefix are ignored. Records with a known prefix but malformed
// numeric fields keep the zero value for the offending fields and are
// reported as warnings. Faces with an invalid vertex reference are dropped.
func (r *wavefrontMeshReader) parse(res *asset.Resource) error {
	var lineNum int = 0

	scanner := bufio.NewScanner(res)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "v":
			v, err := parseVec3(lineTokens)
			if err != nil {
				r.warn(res.Path(), lineNum, err)
			}
			r.mesh.Positions = append(r.mesh.Positions, v)
		case "vn":
			if !r.opts.ReadNormals {
				continue
			}
			v, err := parseVec3(lineTokens)
			if err != nil {
				r.warn(res.Path(), lineNum, err)
			}
			r.mesh.Normals = append(r.mesh.Normals, v)
		case "vt":
			if !r.opts.ReadTexCoords {
				continue
			}
			v, err := parseVec2(lineTokens)
			if err != nil {
				r.warn(res.Path(), lineNum, err)
			}
			r.mesh.TexCoords = append(r.mesh.TexCoords, v)
		case "f":
			if err := r.parseFace(res.Path(), lineNum, lineTokens); err != nil {
				r.warn(res.Path(), lineNum, err)
			}
		default:
			r.logger.Debugf("[%s: %d] ignoring unsupported record %q", res.Path(), lineNum, lineTokens[0])
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("[%s: %d] error: %s", res.Path(), lineNum+1, err.Error())
	}

	if len(r.mesh.TexCoords) != 0 {
		r.mesh.TexCoordIndices = r.texCoordRefs
	}
	if len(r.mesh.Normals) != 0 {
		r.mesh.NormalIndices = r.normalRefs
	}
	return nil
}

// Parse face definition and append its fan triangulation to the index list.
// Faces with fewer than 3 vertices are silently dropped. If any of the face
// vertices cannot be parsed or references a missing position, the whole face
// is dropped and an error is returned. A missing tex coord or normal only
// clears the attribute reference for that corner.
func (r *wavefrontMeshReader) parseFace(file string, line int, lineTokens []string) error {
	argCount := len(lineTokens) - 1
	if argCount < 3 {
		r.logger.Debugf("dropping face with %d vertices", argCount)
		return nil
	}

	posIndices := make([]uint32, argCount)
	texRefs := make([]int32, argCount)
	normalRefs := make([]int32, argCount)
	corners := make([]uint32, argCount)

	for arg := 0; arg < argCount; arg++ {
		fv, err := ParseFaceVertex(lineTokens[arg+1])
		if err != nil {
			return fmt.Errorf("face argument %d: %s", arg, err.Error())
		}

		offset, err := resolveIndex(fv.Position, len(r.mesh.Positions))
		if err != nil {
			return fmt.Errorf("could not select vertex coord for face argument %d: %s", arg, err.Error())
		}
		posIndices[arg] = uint32(offset)
		corners[arg] = uint32(arg)

		texRefs[arg] = -1
		if r.opts.ReadTexCoords && fv.TexCoord != 0 {
			if offset, err = resolveIndex(fv.TexCoord, len(r.mesh.TexCoords)); err != nil {
				r.warn(file, line, fmt.Errorf("could not select tex coord for face argument %d: %s", arg, err.Error()))
			} else {
				texRefs[arg] = int32(offset)
			}
		}

		normalRefs[arg] = -1
		if r.opts.ReadNormals && fv.Normal != 0 {
			if offset, err = resolveIndex(fv.Normal, len(r.mesh.Normals)); err != nil {
				r.warn(file, line, fmt.Errorf("could not select normal coord for face argument %d: %s", arg, err.Error()))
			} else {
				normalRefs[arg] = int32(offset)
			}
		}
	}

	for _, tri := range mesh.FanTriangulate(corners) {
		for _, corner := range tri {
			r.mesh.Indices = append(r.mesh.Indices, posIndices[corner])
			r.texCoordRefs = append(r.texCoordRefs, texRefs[corner])
			r.normalRefs = append(r.normalRefs, normalRefs[corner])
		}
	}

	return nil
}

// Apply the optional attribute generation passes selected by the reader options.
func (r *wavefrontMeshReader) postProcess() {
	if r.opts.SynthesizeUV && len(r.mesh.TexCoords) == 0 {
		synthesizeUVs(r.mesh)
	}

	if r.opts.ComputeNormals {
		r.mesh.Normals = mesh.ComputeNormals(r.mesh.Positions, r.mesh.Indices)
		r.mesh.NormalIndices = nil
	}

	if r.opts.GenerateColors {
		r.mesh.Colors = mesh.GenerateColors(len(r.mesh.Positions), r.opts.rng())
	}
}

// Record a recoverable parse problem.
func (r *wavefrontMeshReader) warn(file string, line int, err error) {
	r.malformed++
	r.logger.Warningf("[%s: %d] %s", file, line, err.Error())
}

// Generate one uv coordinate per triangle corner.
func synthesizeUVs(m *mesh.Mesh) {
	m.TexCoords = make([]types.Vec2, 0, len(m.Indices))
	for tri := 0; tri+2 < len(m.Indices); tri += 3 {
		uv := mesh.SynthesizeUV(
			m.Positions[m.Indices[tri]],
			m.Positions[m.Indices[tri+1]],
			m.Positions[m.Indices[tri+2]],
		)
		m.TexCoords = append(m.TexCoords, uv[:]...)
	}
	m.TexCoordIndices = nil
	m.SyntheticUV = true
}

// Parse a face vertex reference. The following formats are supported:
// - vertexIndex
// - vertexIndex/uvIndex
// - vertexIndex//normalIndex
// - vertexIndex/uvIndex/normalIndex
//
// An empty field between slashes marks an omitted index. Indices start from 1
// and may be negative to reference elements relative to the end of the
// matching list.
func ParseFaceVertex(token string) (FaceVertex, error) {
	var fv FaceVertex

	fields := strings.Split(token, "/")
	if len(fields) > 3 {
		return fv, fmt.Errorf("expected at most 3 indices in %q; got %d", token, len(fields))
	}

	if fields[0] == "" {
		return fv, fmt.Errorf("%q does not include a vertex index", token)
	}

	targets := []*int{&fv.Position, &fv.TexCoord, &fv.Normal}
	for i, field := range fields {
		if field == "" {
			continue
		}

		index, err := strconv.ParseInt(field, 10, 32)
		if err != nil {
			return FaceVertex{}, fmt.Errorf("invalid index %q in %q", field, token)
		}
		if index == 0 {
			return FaceVertex{}, fmt.Errorf("invalid index 0 in %q; indices start from 1", token)
		}
		*targets[i] = int(index)
	}

	return fv, nil
}

// Given a raw face index for a coord type (vertex, normal, tex) calculate the
// 0-based offset into the coord list. Negative indices reference elements
// from the end of the list.
func resolveIndex(index, coordListLen int) (int, error) {
	var offset int
	if index < 0 {
		offset = coordListLen + index
	} else {
		offset = index - 1
	}
	if offset < 0 || offset >= coordListLen {
		return -1, fmt.Errorf("index %d out of bounds", index)
	}
	return offset, nil
}

// Parse a Vec3 row. Missing or malformed components are left at zero and
// reported through the returned error.
func parseVec3(lineTokens []string) (types.Vec3, error) {
	v := types.Vec3{}
	err := parseFloats(lineTokens, v[:])
	return v, err
}

// Parse a Vec2 row. Missing or malformed components are left at zero and
// reported through the returned error.
func parseVec2(lineTokens []string) (types.Vec2, error) {
	v := types.Vec2{}
	err := parseFloats(lineTokens, v[:])
	return v, err
}

func parseFloats(lineTokens []string, out []float32) error {
	var firstErr error
	if len(lineTokens)-1 < len(out) {
		firstErr = fmt.Errorf(`unsupported syntax for "%s"; expected %d arguments; got %d`, lineTokens[0], len(out), len(lineTokens)-1)
	}

	for i := range out {
		if i+1 >= len(lineTokens) {
			break
		}
		coord, err := strconv.ParseFloat(lineTokens[i+1], 32)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf(`could not parse argument %d of "%s": %q is not a number`, i+1, lineTokens[0], lineTokens[i+1])
			}
			continue
		}
		if math.IsNaN(coord) || math.IsInf(coord, 0) {
			if firstErr == nil {
				firstErr = fmt.Errorf(`could not parse argument %d of "%s": %q is not a finite number`, i+1, lineTokens[0], lineTokens[i+1])
			}
			continue
		}
		out[i] = float32(coord)
	}
	return firstErr
}
