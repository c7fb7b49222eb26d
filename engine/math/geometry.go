package math

// ComputeExtents returns the bounding box of interleaved vertex data whose
// first three floats of every stride are the position.
func ComputeExtents(vertices []float32, stride int) Extents3D {
	if stride < 3 || len(vertices) < 3 {
		return Extents3D{}
	}
	first := Vec3{vertices[0], vertices[1], vertices[2]}
	ext := Extents3D{Min: first, Max: first}
	for i := 0; i+2 < len(vertices); i += stride {
		p := Vec3{vertices[i], vertices[i+1], vertices[i+2]}
		ext.Min = Vec3{min(ext.Min.X, p.X), min(ext.Min.Y, p.Y), min(ext.Min.Z, p.Z)}
		ext.Max = Vec3{max(ext.Max.X, p.X), max(ext.Max.Y, p.Y), max(ext.Max.Z, p.Z)}
	}
	return ext
}

// TransformExtents returns the axis aligned box enclosing e after applying m.
func TransformExtents(e Extents3D, m Mat4) Extents3D {
	corners := [8]Vec3{
		{e.Min.X, e.Min.Y, e.Min.Z}, {e.Max.X, e.Min.Y, e.Min.Z},
		{e.Min.X, e.Max.Y, e.Min.Z}, {e.Max.X, e.Max.Y, e.Min.Z},
		{e.Min.X, e.Min.Y, e.Max.Z}, {e.Max.X, e.Min.Y, e.Max.Z},
		{e.Min.X, e.Max.Y, e.Max.Z}, {e.Max.X, e.Max.Y, e.Max.Z},
	}
	first := corners[0].Transform(m)
	out := Extents3D{Min: first, Max: first}
	for _, c := range corners[1:] {
		p := c.Transform(m)
		out.Min = Vec3{min(out.Min.X, p.X), min(out.Min.Y, p.Y), min(out.Min.Z, p.Z)}
		out.Max = Vec3{max(out.Max.X, p.X), max(out.Max.Y, p.Y), max(out.Max.Z, p.Z)}
	}
	return out
}
