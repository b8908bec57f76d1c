package graphio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	logging "github.com/op/go-logging"
	"github.com/pkg/errors"

	"github.com/katalvlaran/dcjcycles/core"
)

var log = logging.MustGetLogger("graphio")

// ErrMalformedLine is returned for records that cannot be parsed.
var ErrMalformedLine = errors.New("graphio: malformed line")

// emptyLabel stands for an empty vertex label.
const emptyLabel = "-"

// Record tags.
const (
	tagVertex   = "V"
	tagEdge     = "E"
	tagSibling  = "S"
	tagFamily   = "F"
	tagCycle    = "C"
	tagConflict = "X"
)

// reader holds the state of one ReadGraph call.
type reader struct {
	g      *core.Graph
	ids    map[int]core.VertexID
	edges  map[string]core.Edge
	lineNo int
}

// ReadGraph parses an adjacency graph from r.
func ReadGraph(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	rd := &reader{
		g:     core.NewGraph(opts...),
		ids:   make(map[int]core.VertexID),
		edges: make(map[string]core.Edge),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		rd.lineNo++
		row := strings.TrimSpace(scanner.Text())
		if row == "" || strings.HasPrefix(row, "#") {
			continue
		}
		if err := rd.record(strings.Fields(row)); err != nil {
			return nil, errors.Wrapf(err, "line %d", rd.lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "graphio: read")
	}

	log.Debugf("Read %d vertices and %d edges in %d lines", rd.g.VertexCount(), rd.g.EdgeCount(), rd.lineNo)
	return rd.g, nil
}

func (rd *reader) record(words []string) error {
	switch words[0] {
	case tagVertex:
		return rd.vertex(words[1:])
	case tagEdge:
		return rd.edge(words[1:])
	case tagSibling:
		return rd.sibling(words[1:])
	case tagFamily:
		return rd.family(words[1:])
	default:
		return errors.Wrapf(ErrMalformedLine, "unknown record %q", words[0])
	}
}

// vertex parses "<index> <label> <part> <family> <direction> <left> <right>".
func (rd *reader) vertex(f []string) error {
	if len(f) != 7 {
		return errors.Wrapf(ErrMalformedLine, "vertex needs 7 fields, got %d", len(f))
	}
	index, err := atoi("index", f[0])
	if err != nil {
		return err
	}
	part, err := atoi("part", f[2])
	if err != nil {
		return err
	}
	family, err := atoi("family", f[3])
	if err != nil {
		return err
	}
	dir, err := parseDirection(f[4])
	if err != nil {
		return err
	}
	left, right, err := parsePair(f[5], f[6])
	if err != nil {
		return err
	}

	label := f[1]
	if label == emptyLabel {
		label = ""
	}
	id, err := rd.g.AddVertexAt(index,
		core.WithLabel(label),
		core.WithPart(part),
		core.WithFamily(family),
		core.WithDirection(dir),
		core.WithExtremities(left, right),
	)
	if err != nil {
		return err
	}
	rd.ids[index] = id

	return nil
}

// edge parses "<a> <b> <label> <from> <to>".
func (rd *reader) edge(f []string) error {
	if len(f) != 5 {
		return errors.Wrapf(ErrMalformedLine, "edge needs 5 fields, got %d", len(f))
	}
	a, err := rd.vertexID(f[0])
	if err != nil {
		return err
	}
	b, err := rd.vertexID(f[1])
	if err != nil {
		return err
	}
	if _, dup := rd.edges[f[2]]; dup {
		return errors.Wrapf(ErrMalformedLine, "duplicate edge label %q", f[2])
	}
	from, to, err := parsePair(f[3], f[4])
	if err != nil {
		return err
	}

	e, err := rd.g.AddEdge(a, b, core.WithEdgeLabel(f[2]), core.WithEdgeExtremities(from, to))
	if err != nil {
		return err
	}
	rd.edges[f[2]] = e

	return nil
}

// sibling parses "<edge-label> <edge-label>".
func (rd *reader) sibling(f []string) error {
	if len(f) != 2 {
		return errors.Wrapf(ErrMalformedLine, "sibling needs 2 fields, got %d", len(f))
	}
	a, ok := rd.edges[f[0]]
	if !ok {
		return errors.Wrapf(core.ErrEdgeNotFound, "edge %q", f[0])
	}
	b, ok := rd.edges[f[1]]
	if !ok {
		return errors.Wrapf(core.ErrEdgeNotFound, "edge %q", f[1])
	}

	return rd.g.SetSibling(a, b)
}

// family parses "<family> <name>"; the name may contain spaces.
func (rd *reader) family(f []string) error {
	if len(f) < 2 {
		return errors.Wrapf(ErrMalformedLine, "family needs a name")
	}
	id, err := atoi("family", f[0])
	if err != nil {
		return err
	}
	rd.g.SetFamilyName(id, strings.Join(f[1:], " "))

	return nil
}

func (rd *reader) vertexID(s string) (core.VertexID, error) {
	index, err := atoi("vertex", s)
	if err != nil {
		return core.VertexID{}, err
	}
	id, ok := rd.ids[index]
	if !ok {
		return core.VertexID{}, errors.Wrapf(core.ErrVertexNotFound, "vertex %d", index)
	}
	return id, nil
}

func atoi(field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedLine, "%s %q is not an integer", field, s)
	}
	return n, nil
}

func parsePair(a, b string) (core.Extremity, core.Extremity, error) {
	x, err := core.ParseExtremity(a)
	if err != nil {
		return x, x, errors.Wrap(ErrMalformedLine, err.Error())
	}
	y, err := core.ParseExtremity(b)
	if err != nil {
		return x, y, errors.Wrap(ErrMalformedLine, err.Error())
	}
	return x, y, nil
}

func parseDirection(s string) (core.Direction, error) {
	switch s {
	case "-":
		return core.Reverse, nil
	case "0":
		return core.Unoriented, nil
	case "+":
		return core.Forward, nil
	default:
		return core.Unoriented, errors.Wrapf(ErrMalformedLine, "direction %q", s)
	}
}
