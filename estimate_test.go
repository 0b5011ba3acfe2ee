package doctree_test

import (
	"testing"

	"github.com/teleivo/assertive/assert"

	"github.com/lmika-forks/doctree"
)

func TestEstimate(t *testing.T) {
	p := doctree.DefaultPrinter()

	tests := map[string]struct {
		doc  doctree.Doc
		want int
	}{
		"null":          {doctree.Null(), 0},
		"text":          {doctree.Text("hello"), 5},
		"positive int":  {doctree.Int(123), 3},
		"negative int":  {doctree.Int(-123), 4},
		"unsigned int":  {doctree.Int(uint(7)), 1},
		"float32":       {doctree.Float(float32(1.5)), 10},
		"float64":       {doctree.Float(1.5), 20},
		"concat":        {doctree.Concat(doctree.Text("ab"), doctree.Text("cde")), 5},
		"group":         {doctree.Group(doctree.Text("abc")), 3},
		"indent":        {doctree.Indent(doctree.Text("abc")), 3 + p.Indent},
		"dedent":        {doctree.Dedent(doctree.Text("abc")), 0}, // 3 - p.Indent(4) clamps to 0
		"dedent clamps": {doctree.Dedent(doctree.Text("")), 0},
		"join": {
			doctree.Join(doctree.Text(", "), []doctree.Doc{doctree.Text("a"), doctree.Text("bb")}),
			1 + 2 + 2,
		},
		"smart join matches join": {
			doctree.SmartJoin(doctree.Text(", "), []doctree.Doc{doctree.Text("a"), doctree.Text("bb")}),
			1 + 2 + 2,
		},
		"if break takes the max":  {doctree.IfBreak(doctree.Text("a"), doctree.Text("longer")), 6},
		"softline is half width":  {doctree.Softline(), p.MaxWidth / 2},
		"mediumline is half width": {doctree.Mediumline(), p.MaxWidth / 2},
		"hardline forces a group": {doctree.Hardline(), p.MaxWidth},
		"line forces a group":     {doctree.Line(), p.MaxWidth},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := doctree.Estimate(tt.doc, p)
			assert.Equals(t, got, tt.want)
		})
	}
}

func TestEstimateGroupContainingHardlineForcesBreak(t *testing.T) {
	p := doctree.DefaultPrinter()
	doc := doctree.Group(doctree.Concat(doctree.Text("a"), doctree.Hardline()))
	got := doctree.Estimate(doc, p)
	if got <= p.MaxWidth {
		t.Fatalf("estimate of a group containing a hardline must exceed MaxWidth, got %d", got)
	}
}
