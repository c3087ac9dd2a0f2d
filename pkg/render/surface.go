package render

// Surface is a dot canvas that shapes are rasterized onto.
//
// Coordinates are pixels and may be fractional; implementations truncate
// them. Text runs overlay dots. Frame renders everything drawn so far and is
// called once per logical draw.
type Surface interface {
	Set(x, y float64)
	SetText(x, y float64, text string)
	Frame() string
}
