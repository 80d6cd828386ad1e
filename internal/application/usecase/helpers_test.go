package usecase_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/pagestate/internal/application/usecase"
	"github.com/bnema/pagestate/internal/infrastructure/dom"
	"github.com/bnema/pagestate/internal/infrastructure/persistence/memory"
	"github.com/bnema/pagestate/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func loadFixture(t *testing.T) *dom.Document {
	t.Helper()
	doc, err := dom.Load(filepath.Join("testdata", "page.html"), dom.Options{})
	require.NoError(t, err)
	return doc
}

func parseHTML(t *testing.T, body string) *dom.Document {
	t.Helper()
	doc, err := dom.Parse(strings.NewReader(body), dom.Options{})
	require.NoError(t, err)
	return doc
}

func newStore() *usecase.PreferenceStore {
	return usecase.NewPreferenceStore(memory.NewPreferenceRepository())
}

func defaultOptions() usecase.PageOptions {
	return usecase.PageOptions{Contract: usecase.DefaultDOMContract()}
}

// hiddenFlags returns the hidden state of every element matching selector.
func hiddenFlags(doc *dom.Document, selector string) []bool {
	elems := doc.QuerySelectorAll(selector)
	flags := make([]bool, len(elems))
	for i, el := range elems {
		flags[i] = el.Hidden()
	}
	return flags
}

func activeButtons(doc *dom.Document) []string {
	var codes []string
	for _, btn := range doc.QuerySelectorAll(".lang-btn") {
		if btn.HasClass("active") {
			code, _ := btn.Attr("data-lang")
			codes = append(codes, code)
		}
	}
	return codes
}
