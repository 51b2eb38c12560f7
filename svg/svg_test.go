package svg

import (
	"strings"
	"testing"

	"github.com/svgsort/svgsort"
	"github.com/tdewolff/test"
)

func parseString(t *testing.T, s string) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(s))
	test.Error(t, err)
	return doc
}

func TestParse(t *testing.T) {
	doc := parseString(t, `<svg width="100" height="100"><g transform="translate(10,10)"><path d="M0 0L5 5"/></g><rect x="1" y="2" width="3" height="4"/></svg>`)
	test.T(t, doc.Width, "100")
	test.T(t, doc.Height, "100")
	test.T(t, len(doc.Paths), 2)
	test.T(t, doc.Paths[0].String(), "M10 10L15 15")
	test.T(t, doc.Paths[1].String(), "M1 2L4 2L4 6L1 6Z")
}

func TestParseShapes(t *testing.T) {
	doc := parseString(t, `<svg><line x1="1" y1="2" x2="3" y2="4"/><polyline points="0,0 1,1"/><polygon points="0,0 2,0 1,2"/><ellipse cx="1" cy="1" rx="2" ry="1"/></svg>`)
	test.T(t, len(doc.Paths), 4)
	test.T(t, doc.Paths[0].String(), "M1 2L3 4")
	test.T(t, doc.Paths[1].String(), "M0 0L1 1")
	test.T(t, doc.Paths[2].String(), "M0 0L2 0 1 2Z")
	test.T(t, doc.Paths[3].String(), "M3 1A2 1 0 0 0 -1 1A2 1 0 0 0 3 1Z")
}

func TestParseNestedTransforms(t *testing.T) {
	doc := parseString(t, `<svg><g transform="translate(10,0)"><g transform="scale(2)"><path d="M1 1L2 2"/></g></g></svg>`)
	test.T(t, len(doc.Paths), 1)
	test.T(t, doc.Paths[0].String(), "M12 2L14 4")
}

func TestParseDefsUse(t *testing.T) {
	doc := parseString(t, `<svg width="100" height="100"><defs><circle id="c" cx="0" cy="0" r="5"/></defs><use href="#c" x="20" y="20"/></svg>`)
	test.T(t, len(doc.Paths), 1)
	test.T(t, doc.Paths[0].String(), "M25 20A5 5 0 0 0 15 20A5 5 0 0 0 25 20Z")

	doc = parseString(t, `<svg><defs><rect id="r" width="1" height="1"/></defs><use xlink:href="#r"/></svg>`)
	test.T(t, len(doc.Paths), 1)
	test.T(t, doc.Paths[0].String(), "M0 0L1 0L1 1L0 1Z")

	// unresolved references are skipped
	doc = parseString(t, `<svg><use href="#nope"/></svg>`)
	test.T(t, len(doc.Paths), 0)
}

func TestParseViewBox(t *testing.T) {
	doc := parseString(t, `<svg width="200" height="100" viewBox="0 0 100 50"><rect x="10" y="10" width="10" height="10"/></svg>`)
	test.T(t, doc.ViewBox, "0 0 100 50")
	test.T(t, len(doc.Paths), 1)
	test.T(t, doc.Paths[0].String(), "M20 20L40 20L40 40L20 40Z")
}

func TestParseDimensions(t *testing.T) {
	doc := parseString(t, `<svg width="10" height="20"><rect width="100%" height="50%"/></svg>`)
	test.T(t, doc.Paths[0].String(), "M0 0L10 0L10 10L0 10Z")

	doc = parseString(t, `<svg width="1in" height="1in"><rect width="100%" height="100%"/></svg>`)
	test.T(t, doc.Paths[0].String(), "M0 0L96 0L96 96L0 96Z")
}

func TestParseErrors(t *testing.T) {
	var tts = []string{
		`<p></p>`,
		`<svg></svg><svg></svg>`,
		`<svg><svg/></svg>`,
		`<svg><path d="X"/></svg>`,
		`<svg width="abc"></svg>`,
	}
	for _, tt := range tts {
		t.Run(tt, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt))
			test.That(t, err != nil)
		})
	}
}

func TestDocumentSplitReorder(t *testing.T) {
	doc := &Document{Paths: []*svgsort.Path{svgsort.MustParsePath("M5 5L6 6M1 1L2 2")}}
	test.Error(t, doc.SplitSubpaths())
	test.T(t, len(doc.Paths), 2)

	test.Error(t, doc.Reorder(svgsort.StartEnd, svgsort.XY(0.0, 0.0)))
	test.T(t, doc.Paths[0].String(), "M1 1L2 2")
	test.T(t, doc.Paths[1].String(), "M5 5L6 6")
}

func TestWrite(t *testing.T) {
	doc := &Document{
		Width:   "100",
		Height:  "50",
		ViewBox: "0 0 100 50",
		Paths:   []*svgsort.Path{svgsort.MustParsePath("M0 0L1 1")},
	}
	sb := &strings.Builder{}
	test.Error(t, Write(sb, doc))
	test.T(t, sb.String(), "<svg version=\"1.1\" xmlns=\"http://www.w3.org/2000/svg\" width=\"100\" height=\"50\" viewBox=\"0 0 100 50\">\n<path id=\"path-1\" d=\"M0 0L1 1\"/>\n</svg>\n")
}

func TestRoundTrip(t *testing.T) {
	orig := parseString(t, `<svg width="100" height="100"><path d="M0 0L5 5"/><circle cx="0" cy="0" r="5"/></svg>`)
	sb := &strings.Builder{}
	test.Error(t, Write(sb, orig))

	doc := parseString(t, sb.String())
	test.T(t, len(doc.Paths), len(orig.Paths))
	for i := range doc.Paths {
		test.T(t, doc.Paths[i].String(), orig.Paths[i].String())
	}
}
