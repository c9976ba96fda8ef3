// Package raster turns circles into the point sets the renderer submits to
// a drawing surface.
package raster

type Point struct {
	X int
	Y int
}

// PointSink receives batches of points. Any error stops rasterization.
type PointSink interface {
	DrawPoints(points []Point) error
}

// CirclePoints returns the outline of a circle using the midpoint circle
// algorithm. Each step emits the eight reflections of the current offset,
// so points on the axes and diagonals may repeat. Radius 0 yields just the
// center and a negative radius yields nothing.
func CirclePoints(cx, cy, radius int) []Point {
	if radius < 0 {
		return nil
	}
	if radius == 0 {
		return []Point{{X: cx, Y: cy}}
	}

	points := make([]Point, 0, 8*(radius+1))

	dx, dy := 0, radius
	d := radius - 1

	for dy >= dx {
		points = append(points,
			Point{cx + dx, cy + dy},
			Point{cx + dy, cy + dx},
			Point{cx - dx, cy + dy},
			Point{cx - dy, cy + dx},
			Point{cx + dx, cy - dy},
			Point{cx + dy, cy - dx},
			Point{cx - dx, cy - dy},
			Point{cx - dy, cy - dx},
		)

		switch {
		case d >= 2*dx:
			d -= 2*dx + 1
			dx++
		case d < 2*(radius-dy):
			d += 2*dy - 1
			dy--
		default:
			d += 2 * (dy - dx - 1)
			dy--
			dx++
		}
	}

	return points
}

// DrawCircle submits the outline of one circle as a single batch.
func DrawCircle(sink PointSink, cx, cy, radius int) error {
	points := CirclePoints(cx, cy, radius)
	if len(points) == 0 {
		return nil
	}
	return sink.DrawPoints(points)
}

// DrawFilledCircle approximates a disc with concentric outlines for every
// radius from 0 to radius. The rings leave small gaps between them, which
// is how the ball has always looked.
func DrawFilledCircle(sink PointSink, cx, cy, radius int) error {
	for r := 0; r <= radius; r++ {
		if err := DrawCircle(sink, cx, cy, r); err != nil {
			return err
		}
	}
	return nil
}
