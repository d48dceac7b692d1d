package model

// FigureKind is the chart type of a Figure
type FigureKind string

const (
	FigureLine FigureKind = "line"
	FigureBar  FigureKind = "bar"
)

// Axis describes one chart axis. Categories are listed in ascending order; Reversed asks the
// renderer to draw them from last to first.
type Axis struct {
	Title      string   `json:"title"`
	Categories []string `json:"categories,omitempty"`
	Reversed   bool     `json:"reversed,omitempty"`
}

// Point is one (category, value) pair
type Point struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

// Series is a named sequence of points
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Figure is a renderer-independent chart description
type Figure struct {
	Kind   FigureKind `json:"kind"`
	Title  string     `json:"title"`
	XAxis  Axis       `json:"x_axis"`
	YAxis  Axis       `json:"y_axis"`
	Series []Series   `json:"series"`
}

// IsEmpty reports whether the figure has no points to draw
func (f *Figure) IsEmpty() bool {
	for _, s := range f.Series {
		if len(s.Points) > 0 {
			return false
		}
	}
	return true
}

// FindSeries returns the series with the given name, or nil
func (f *Figure) FindSeries(name string) *Series {
	for i := range f.Series {
		if f.Series[i].Name == name {
			return &f.Series[i]
		}
	}
	return nil
}

// PointCount returns the number of points across all series
func (f *Figure) PointCount() int {
	n := 0
	for _, s := range f.Series {
		n += len(s.Points)
	}
	return n
}
