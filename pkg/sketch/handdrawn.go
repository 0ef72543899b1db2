package sketch

import (
	"fmt"
	"hash/fnv"
	"math"
	"strings"
)

const (
	wobbleAmount   = 1.6  // max control point displacement in px
	wobbleSegment  = 40.0 // px per wobble segment on long edges
	strokeColor    = "#000"
	backgroundFill = "#fff"
	fontFamily     = "xkcd, 'Humor Sans', 'Comic Sans MS', sans-serif"
)

var defaultColors = []string{
	"#dd4528", "#28a3dd", "#f3db52", "#ed84b5",
	"#4ab74e", "#9179c0", "#8e6d5a", "#f19839", "#949494",
}

// hash mixes id with seed so every element gets its own stable wobble.
func hash(id string, seed uint64) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%s", seed, id)
	return h.Sum64()
}

// rng is a deterministic xorshift generator.
type rng struct{ state uint64 }

func newRNG(seed uint64) *rng {
	if seed == 0 {
		seed = 0x9e3779b97f4a7c15
	}
	return &rng{state: seed}
}

// next returns a value in [0, 1).
func (r *rng) next() float64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return float64(r.state>>11) / float64(1<<53)
}

func (r *rng) jitter() float64 {
	return (r.next()*2 - 1) * wobbleAmount
}

// wobbledLine draws a hand-drawn looking line from (x1,y1) to (x2,y2) as a
// chain of quadratic curves whose control points drift off the straight path.
func wobbledLine(x1, y1, x2, y2 float64, seed uint64, id string) string {
	r := newRNG(hash(id, seed))
	var b strings.Builder
	fmt.Fprintf(&b, "M%s,%s", num(x1), num(y1))
	wobbleTo(&b, r, x1, y1, x2, y2)
	return b.String()
}

// wobbledRect outlines a rectangle with four wobbled edges.
func wobbledRect(x, y, w, h float64, seed uint64, id string) string {
	r := newRNG(hash(id, seed))
	var b strings.Builder
	fmt.Fprintf(&b, "M%s,%s", num(x), num(y))
	wobbleTo(&b, r, x, y, x+w, y)
	wobbleTo(&b, r, x+w, y, x+w, y+h)
	wobbleTo(&b, r, x+w, y+h, x, y+h)
	wobbleTo(&b, r, x, y+h, x, y)
	b.WriteString("Z")
	return b.String()
}

func wobbleTo(b *strings.Builder, r *rng, x1, y1, x2, y2 float64) {
	length := math.Hypot(x2-x1, y2-y1)
	n := max(1, int(length/wobbleSegment))
	for i := 1; i <= n; i++ {
		t0 := float64(i-1) / float64(n)
		t1 := float64(i) / float64(n)
		tm := (t0 + t1) / 2
		cx := x1 + (x2-x1)*tm + r.jitter()
		cy := y1 + (y2-y1)*tm + r.jitter()
		ex := x1 + (x2-x1)*t1
		ey := y1 + (y2-y1)*t1
		fmt.Fprintf(b, " Q%s,%s %s,%s", num(cx), num(cy), num(ex), num(ey))
	}
}

// arcPath returns a closed annular sector centred on the origin between the
// given angles (radians, clockwise from twelve o'clock).
func arcPath(inner, outer, start, end float64) string {
	large := 0
	if end-start > math.Pi {
		large = 1
	}
	ox0, oy0 := polar(outer, start)
	ox1, oy1 := polar(outer, end)
	var b strings.Builder
	fmt.Fprintf(&b, "M%s,%s A%s,%s 0 %d 1 %s,%s",
		num(ox0), num(oy0), num(outer), num(outer), large, num(ox1), num(oy1))
	if inner > 0 {
		ix1, iy1 := polar(inner, end)
		ix0, iy0 := polar(inner, start)
		fmt.Fprintf(&b, " L%s,%s A%s,%s 0 %d 0 %s,%s",
			num(ix1), num(iy1), num(inner), num(inner), large, num(ix0), num(iy0))
	} else {
		b.WriteString(" L0,0")
	}
	b.WriteString("Z")
	return b.String()
}

func polar(r, angle float64) (float64, float64) {
	return r * math.Sin(angle), -r * math.Cos(angle)
}

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// textWidth estimates the rendered width of s at the given font size.
func textWidth(s string, fontSize float64) float64 {
	return float64(len([]rune(s))) * fontSize * 0.55
}
