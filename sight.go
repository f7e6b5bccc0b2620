package navkit

// lineOfSight reports whether the straight segment between the centers of
// tiles a and b crosses only passable tiles. Every tile the segment touches
// is tested (supercover). Where the segment passes exactly through a grid
// corner, both tiles beside the corner must be open, so a sightline never
// squeezes diagonally between two blocked tiles or clips a blocked corner.
func lineOfSight(m *Mesh, a, b Tile) bool {
	if m.occupiedTile(a) {
		return false
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	nx, ny := abs(dx), abs(dy)
	sx, sy := sign(dx), sign(dy)

	x, y := a.X, a.Y
	for ix, iy := 0, 0; ix < nx || iy < ny; {
		// Compare where the segment crosses the next vertical grid line
		// against the next horizontal one, scaled to integers.
		switch decision := (1+2*ix)*ny - (1+2*iy)*nx; {
		case decision == 0:
			if m.Occupied(x+sx, y) || m.Occupied(x, y+sy) {
				return false
			}
			x += sx
			y += sy
			ix++
			iy++
		case decision < 0:
			x += sx
			ix++
		default:
			y += sy
			iy++
		}
		if m.Occupied(x, y) {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
