package fit

import (
	"testing"

	"github.com/matzehuels/sketchfit/pkg/sketch"
)

func ptr(v float64) *float64 { return &v }

func TestInferMargins(t *testing.T) {
	tests := []struct {
		name string
		in   MarginInput
		want Margins
	}{
		{
			name: "declared size",
			in: MarginInput{
				DeclaredWidth: 500, PlotWidth: 400,
				Translate: Point{50, 20},
			},
			want: Margins{Left: 50, Right: 50, Top: 20, Bottom: 20},
		},
		{
			name: "declared both axes",
			in: MarginInput{
				DeclaredWidth: 600, DeclaredHeight: 400,
				PlotWidth: 500, PlotHeight: 300,
				Translate: Point{60, 30},
			},
			want: Margins{Left: 60, Right: 40, Top: 30, Bottom: 70},
		},
		{
			name: "symmetric without declared size",
			in:   MarginInput{PlotWidth: 400, PlotHeight: 300, Translate: Point{25, 10}},
			want: Margins{Left: 25, Right: 25, Top: 10, Bottom: 10},
		},
		{
			name: "config overrides some sides",
			in: MarginInput{
				DeclaredWidth: 500, PlotWidth: 400,
				Translate: Point{50, 20},
				Config:    &sketch.MarginConfig{Left: ptr(5), Bottom: ptr(0)},
			},
			want: Margins{Left: 5, Right: 50, Top: 20, Bottom: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferMargins(tt.in); got != tt.want {
				t.Errorf("InferMargins() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUsableSizeFloor(t *testing.T) {
	tests := []struct {
		canvas, start, end, want float64
	}{
		{600, 50, 50, 500},
		{100, 50, 45, 10},
		{100, 80, 80, 10},
		{0, 0, 0, 10},
	}
	for _, tt := range tests {
		if got := UsableSize(tt.canvas, tt.start, tt.end); got != tt.want {
			t.Errorf("UsableSize(%v, %v, %v) = %v, want %v", tt.canvas, tt.start, tt.end, got, tt.want)
		}
	}
}

func TestBarGeometry(t *testing.T) {
	t.Run("container wins", func(t *testing.T) {
		l := BarGeometry(BarInput{
			ContainerWidth:  800,
			ContainerHeight: 500,
			MarginInput: MarginInput{
				DeclaredWidth: 600, DeclaredHeight: 400,
				PlotWidth: 500, PlotHeight: 300,
				Translate: Point{50, 50},
			},
		})
		if l.CanvasWidth != 800 || l.CanvasHeight != 500 {
			t.Errorf("canvas = %vx%v, want 800x500", l.CanvasWidth, l.CanvasHeight)
		}
		if l.PlotWidth != 700 || l.PlotHeight != 400 {
			t.Errorf("plot = %vx%v, want 700x400", l.PlotWidth, l.PlotHeight)
		}
		if got := l.Transform(); got != "translate(50,50)" {
			t.Errorf("Transform() = %q", got)
		}
	})

	t.Run("declared size without container", func(t *testing.T) {
		l := BarGeometry(BarInput{MarginInput: MarginInput{
			DeclaredWidth: 600, DeclaredHeight: 400,
			PlotWidth: 500, PlotHeight: 300,
			Translate: Point{50, 50},
		}})
		if l.CanvasWidth != 600 || l.CanvasHeight != 400 || l.PlotWidth != 500 || l.PlotHeight != 300 {
			t.Errorf("layout = %+v, want unchanged 600x400 / 500x300", l)
		}
	})

	t.Run("height from aspect ratio", func(t *testing.T) {
		l := BarGeometry(BarInput{ContainerWidth: 300})
		if l.CanvasHeight != 200 {
			t.Errorf("canvas height = %v, want 200", l.CanvasHeight)
		}
	})

	t.Run("margin floor", func(t *testing.T) {
		l := BarGeometry(BarInput{
			ContainerWidth:  60,
			ContainerHeight: 40,
			MarginInput:     MarginInput{Config: sketch.Uniform(50)},
		})
		if l.PlotWidth != 10 || l.PlotHeight != 10 {
			t.Errorf("plot = %vx%v, want 10x10", l.PlotWidth, l.PlotHeight)
		}
	})
}

func TestPieGeometry(t *testing.T) {
	t.Run("centred in container", func(t *testing.T) {
		l := PieGeometry(PieInput{ContainerWidth: 400, ContainerHeight: 300})
		if l.PlotWidth != 300 || l.PlotHeight != 300 {
			t.Errorf("inner = %vx%v, want 300x300", l.PlotWidth, l.PlotHeight)
		}
		if got := l.Transform(); got != "translate(200,150)" {
			t.Errorf("Transform() = %q, want translate(200,150)", got)
		}
		if l.ViewBox != "0 0 400 300" {
			t.Errorf("ViewBox = %q", l.ViewBox)
		}
	})

	t.Run("configured margins", func(t *testing.T) {
		l := PieGeometry(PieInput{
			ContainerWidth:  400,
			ContainerHeight: 300,
			Config:          &sketch.MarginConfig{Left: ptr(20), Top: ptr(40), Bottom: ptr(10)},
		})
		// usable 380x250
		if l.PlotWidth != 250 {
			t.Errorf("inner = %v, want 250", l.PlotWidth)
		}
		if got := l.Transform(); got != "translate(210,165)" {
			t.Errorf("Transform() = %q, want translate(210,165)", got)
		}
	})

	t.Run("declared size", func(t *testing.T) {
		l := PieGeometry(PieInput{DeclaredWidth: 200, DeclaredHeight: 100})
		if l.CanvasWidth != 200 || l.CanvasHeight != 100 || l.PlotWidth != 100 {
			t.Errorf("layout = %+v", l)
		}
	})

	t.Run("square from plot extent", func(t *testing.T) {
		l := PieGeometry(PieInput{PlotWidth: 120, Config: sketch.Uniform(10)})
		if l.CanvasWidth != 140 || l.CanvasHeight != 140 {
			t.Errorf("canvas = %vx%v, want 140x140", l.CanvasWidth, l.CanvasHeight)
		}
		if l.PlotWidth != 120 {
			t.Errorf("inner = %v, want 120", l.PlotWidth)
		}
	})

	t.Run("never below one pixel", func(t *testing.T) {
		l := PieGeometry(PieInput{})
		if l.CanvasWidth != 1 || l.CanvasHeight != 1 {
			t.Errorf("canvas = %vx%v, want 1x1", l.CanvasWidth, l.CanvasHeight)
		}
		if l.PlotWidth != 10 {
			t.Errorf("inner = %v, want 10", l.PlotWidth)
		}
	})
}

func TestInferAnchor(t *testing.T) {
	tests := []struct {
		x, y float64
		want Anchor
	}{
		{0, 0, Anchor{}},
		{0.05, -0.1, Anchor{}},
		{100, 0, Anchor{Right: true}},
		{0, 250, Anchor{Bottom: true}},
		{-3, 12, Anchor{Right: true, Bottom: true}},
	}
	for _, tt := range tests {
		if got := InferAnchor(tt.x, tt.y); got != tt.want {
			t.Errorf("InferAnchor(%v, %v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestAnchoredOffset(t *testing.T) {
	if got := AnchoredOffset(100, 80, 40); got != 140 {
		t.Errorf("AnchoredOffset(100, 80, 40) = %v, want 140", got)
	}
	if got := AnchoredOffset(100, 80, 160); got != 20 {
		t.Errorf("AnchoredOffset(100, 80, 160) = %v, want 20", got)
	}
}
