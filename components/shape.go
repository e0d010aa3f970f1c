package components

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rotisserie/eris"

	"ebiten-seeker/ecs"
	"ebiten-seeker/handles"
	"ebiten-seeker/vec"
)

// ShapeKind selects the geometry a ShapeComponent renders.
type ShapeKind int

const (
	ShapeNone ShapeKind = iota
	ShapeCircle
	ShapeRectangle
	ShapeTriangle
	ShapePolygon
	ShapeLine
)

// ErrUnknownShapeKind is returned by SetShape for a kind it cannot build.
var ErrUnknownShapeKind = eris.New("unknown shape kind")

// circleSegments is the vertex count used to approximate a circle outline.
const circleSegments = 32

// lineWidth is the stroke width for line shapes, in pixels.
const lineWidth = 2

// shapeMesh is a built drawable: an outline in unit space, scaled and
// positioned at draw time.
type shapeMesh struct {
	vertices []vec.Vec2
	closed   bool // false for line meshes, which are stroked instead of filled
}

// ShapeComponent renders a parametric 2D shape. The drawable mesh is rebuilt
// by SetShape and owned exclusively; rebuilding replaces the previous mesh.
type ShapeComponent struct {
	kind     ShapeKind
	mesh     handles.Unique[*shapeMesh]
	position vec.Vec2
	rotation float64 // degrees
	scale    vec.Vec2
	fill     color.Color
	sides    int     // vertex count for ShapePolygon
	size     float64 // base radius / half-extent in pixels
}

// NewShapeComponent creates a shape component with no drawable. Call SetShape
// to give it geometry; until then it draws nothing.
func NewShapeComponent() *ShapeComponent {
	return &ShapeComponent{
		kind:  ShapeNone,
		scale: vec.V(1, 1),
		fill:  color.White,
		sides: 5,
		size:  20,
	}
}

// Kind returns the shape component ID.
func (s *ShapeComponent) Kind() ecs.ComponentID { return Shape }

// Init implements the component lifecycle; the mesh is built by SetShape.
func (s *ShapeComponent) Init() {}

// Update implements the component lifecycle; shapes do not tick.
func (s *ShapeComponent) Update(dt float64) {}

// Destroy drops the built mesh.
func (s *ShapeComponent) Destroy() {
	s.mesh.Reset(nil)
	s.kind = ShapeNone
}

// SetShape rebuilds the drawable mesh for kind. ShapeNone is a valid kind and
// leaves the component drawing nothing.
func (s *ShapeComponent) SetShape(kind ShapeKind) error {
	switch kind {
	case ShapeNone:
		s.mesh.Reset(nil)
	case ShapeCircle:
		s.mesh.Reset(&shapeMesh{vertices: ngonVertices(circleSegments), closed: true})
	case ShapeRectangle:
		s.mesh.Reset(&shapeMesh{
			vertices: []vec.Vec2{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}},
			closed:   true,
		})
	case ShapeTriangle:
		s.mesh.Reset(&shapeMesh{vertices: ngonVertices(3), closed: true})
	case ShapePolygon:
		s.mesh.Reset(&shapeMesh{vertices: ngonVertices(s.sides), closed: true})
	case ShapeLine:
		s.mesh.Reset(&shapeMesh{vertices: []vec.Vec2{{X: -1, Y: 0}, {X: 1, Y: 0}}})
	default:
		return eris.Wrapf(ErrUnknownShapeKind, "kind %d", kind)
	}
	s.kind = kind
	return nil
}

// ShapeKindOf returns the kind the component currently renders.
func (s *ShapeComponent) ShapeKindOf() ShapeKind { return s.kind }

// SetPosition sets the shape's center position.
func (s *ShapeComponent) SetPosition(p vec.Vec2) { s.position = p }

// Position returns the shape's center position.
func (s *ShapeComponent) Position() vec.Vec2 { return s.position }

// SetRotation sets the rotation around the center, in degrees.
func (s *ShapeComponent) SetRotation(degrees float64) { s.rotation = degrees }

// Rotation returns the rotation in degrees.
func (s *ShapeComponent) Rotation() float64 { return s.rotation }

// SetScale sets the per-axis scale factors.
func (s *ShapeComponent) SetScale(scale vec.Vec2) { s.scale = scale }

// Scale returns the per-axis scale factors.
func (s *ShapeComponent) Scale() vec.Vec2 { return s.scale }

// SetFillColor sets the fill (or stroke, for lines) color.
func (s *ShapeComponent) SetFillColor(c color.Color) { s.fill = c }

// FillColor returns the fill color.
func (s *ShapeComponent) FillColor() color.Color { return s.fill }

// SetSides sets the vertex count used by ShapePolygon. It takes effect on the
// next SetShape.
func (s *ShapeComponent) SetSides(n int) {
	if n >= 3 {
		s.sides = n
	}
}

// SetSize sets the base radius (or half-extent) in pixels.
func (s *ShapeComponent) SetSize(size float64) { s.size = size }

// Draw renders the shape to screen.
func (s *ShapeComponent) Draw(screen *ebiten.Image) {
	mesh := s.mesh.Get()
	if mesh == nil || len(mesh.vertices) == 0 {
		return
	}

	points := s.screenVertices(mesh)
	if !mesh.closed {
		a, b := points[0], points[1]
		vector.StrokeLine(screen,
			float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			lineWidth, s.fill, true)
		return
	}

	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := s.fill.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, fillSource(), op)
}

// screenVertices transforms the mesh's unit-space outline into screen space.
func (s *ShapeComponent) screenVertices(mesh *shapeMesh) []vec.Vec2 {
	radians := s.rotation * math.Pi / 180
	sin, cos := math.Sin(radians), math.Cos(radians)

	points := make([]vec.Vec2, len(mesh.vertices))
	for i, v := range mesh.vertices {
		v = vec.V(v.X*s.size*s.scale.X, v.Y*s.size*s.scale.Y)
		v = vec.V(v.X*cos-v.Y*sin, v.X*sin+v.Y*cos)
		points[i] = v.Add(s.position)
	}
	return points
}

// ngonVertices returns the unit-circle vertices of a regular n-gon with the
// first vertex pointing up.
func ngonVertices(n int) []vec.Vec2 {
	vertices := make([]vec.Vec2, 0, n)
	for i := 0; i < n; i++ {
		angle := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		vertices = append(vertices, vec.V(math.Cos(angle), math.Sin(angle)))
	}
	return vertices
}

// whiteImage backs triangle fills; created lazily so headless code paths
// never allocate a GPU image.
var whiteSource *ebiten.Image

func fillSource() *ebiten.Image {
	if whiteSource == nil {
		white := ebiten.NewImage(3, 3)
		white.Fill(color.White)
		whiteSource = white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSource
}
