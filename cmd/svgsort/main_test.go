package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/svgsort/svgsort"
	"github.com/svgsort/svgsort/svg"
	"github.com/tdewolff/test"
)

func TestParseOrigin(t *testing.T) {
	origin, err := parseOrigin("1.5, -2")
	test.Error(t, err)
	test.That(t, origin.Equals(svgsort.XY(1.5, -2.0)))

	for _, v := range []string{"", "1", "1,2,3", "a,b"} {
		_, err = parseOrigin(v)
		test.That(t, err != nil)
	}
}

func TestWriteDocument(t *testing.T) {
	doc := &svg.Document{
		Width:  "100",
		Height: "100",
		Paths:  []*svgsort.Path{svgsort.MustParsePath("M0 0L1 1")},
	}

	sb := &strings.Builder{}
	test.Error(t, writeDocument(sb, doc, false))
	test.That(t, strings.Contains(sb.String(), `d="M0 0L1 1"`))

	sb.Reset()
	test.Error(t, writeDocument(sb, doc, true))
	test.That(t, strings.Contains(sb.String(), "<svg"))
}

type failWriter struct{}

func (failWriter) Write(b []byte) (int, error) {
	return 0, fmt.Errorf("write refused")
}

func TestWriteDocumentError(t *testing.T) {
	doc := &svg.Document{Paths: []*svgsort.Path{svgsort.MustParsePath("M0 0L1 1")}}

	// a failing destination must surface through the minify writer's Close
	test.That(t, writeDocument(failWriter{}, doc, true) != nil)
	test.That(t, writeDocument(failWriter{}, doc, false) != nil)
}
