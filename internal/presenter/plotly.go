package presenter

// Plotly figure fragments. Only the attributes the dashboard sets are
// modelled; everything else is left to Plotly defaults.

// Font is a Plotly font object.
type Font struct {
	Color string `json:"color,omitempty"`
	Size  int    `json:"size,omitempty"`
}

// Title is a Plotly title object.
type Title struct {
	Text string  `json:"text"`
	Font *Font   `json:"font,omitempty"`
	X    float64 `json:"x,omitempty"`
}

// Line is a Plotly line style.
type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
}

// Marker is a Plotly marker style.
type Marker struct {
	Color  string   `json:"color,omitempty"`
	Colors []string `json:"colors,omitempty"`
	Size   int      `json:"size,omitempty"`
	Line   *Line    `json:"line,omitempty"`
}

// IndicatorNumber styles the number of an indicator trace.
type IndicatorNumber struct {
	Font   *Font  `json:"font,omitempty"`
	Prefix string `json:"prefix,omitempty"`
}

// IndicatorTrace is a "number" indicator.
type IndicatorTrace struct {
	Type   string           `json:"type"`
	Mode   string           `json:"mode"`
	Value  float64          `json:"value"`
	Title  *Title           `json:"title,omitempty"`
	Number *IndicatorNumber `json:"number,omitempty"`
}

// PieTrace is a pie, or a donut when Hole > 0.
type PieTrace struct {
	Type      string    `json:"type"`
	Labels    []string  `json:"labels"`
	Values    []float64 `json:"values"`
	Hole      float64   `json:"hole,omitempty"`
	Direction string    `json:"direction,omitempty"`
	Sort      bool      `json:"sort"`
	TextInfo  string    `json:"textinfo,omitempty"`
	HoverInfo string    `json:"hoverinfo,omitempty"`
	TextFont  *Font     `json:"textfont,omitempty"`
	Marker    *Marker   `json:"marker,omitempty"`
}

// BarTrace is a bar chart trace.
type BarTrace struct {
	Type         string    `json:"type"`
	Orientation  string    `json:"orientation,omitempty"`
	X            []float64 `json:"x"`
	Y            []string  `json:"y"`
	Text         []string  `json:"text,omitempty"`
	TextPosition string    `json:"textposition,omitempty"`
	Marker       *Marker   `json:"marker,omitempty"`
}

// ScatterTrace is a line/marker trace. Nil Y values are drawn as gaps.
type ScatterTrace struct {
	Type   string     `json:"type"`
	Mode   string     `json:"mode,omitempty"`
	X      []string   `json:"x"`
	Y      []*float64 `json:"y"`
	Line   *Line      `json:"line,omitempty"`
	Marker *Marker    `json:"marker,omitempty"`
}

// Axis is a Plotly axis object.
type Axis struct {
	ShowGrid  bool   `json:"showgrid"`
	GridColor string `json:"gridcolor,omitempty"`
	Visible   *bool  `json:"visible,omitempty"`
	TickFont  *Font  `json:"tickfont,omitempty"`
	Title     *Title `json:"title,omitempty"`
}

// Legend is a Plotly legend object.
type Legend struct {
	Orientation string  `json:"orientation,omitempty"`
	XAnchor     string  `json:"xanchor,omitempty"`
	YAnchor     string  `json:"yanchor,omitempty"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Font        *Font   `json:"font,omitempty"`
}

// Layout is a Plotly layout object.
type Layout struct {
	Title        *Title  `json:"title,omitempty"`
	Height       int     `json:"height,omitempty"`
	PaperBGColor string  `json:"paper_bgcolor,omitempty"`
	PlotBGColor  string  `json:"plot_bgcolor,omitempty"`
	ShowLegend   *bool   `json:"showlegend,omitempty"`
	Legend       *Legend `json:"legend,omitempty"`
	XAxis        *Axis   `json:"xaxis,omitempty"`
	YAxis        *Axis   `json:"yaxis,omitempty"`
}

func boolPtr(b bool) *bool {
	return &b
}
