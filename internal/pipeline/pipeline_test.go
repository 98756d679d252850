package pipeline

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/BaryoDev/NovelAssistant/internal/ingest"
	"github.com/BaryoDev/NovelAssistant/internal/prose"
)

func TestEachDocumentVisitsAllAndCollectsErrors(t *testing.T) {
	docs := []ingest.Document{
		{Title: "one", Text: "The storm rolled in."},
		{Title: "two", Text: "Nobody slept that night."},
		{Title: "three", Text: "Dawn came anyway."},
	}

	var called int32
	errs := EachDocument(docs, 2, func(i int, doc ingest.Document) error {
		atomic.AddInt32(&called, 1)
		if doc.Title == "two" {
			return errors.New("test error")
		}
		return nil
	})

	if called != int32(len(docs)) {
		t.Fatalf("expected %d calls, got %d", len(docs), called)
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
}

func TestEachDocumentIndexAddressedResults(t *testing.T) {
	docs := []ingest.Document{
		{Title: "a", Text: "Three words here."},
		{Title: "b", Text: "Now exactly four words."},
		{Title: "c", Text: "Five little words sit here."},
	}

	counts := make([]int, len(docs))
	errs := EachDocument(docs, 3, func(i int, doc ingest.Document) error {
		counts[i] = len(prose.Words(doc.Text))
		return nil
	})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	want := []int{3, 4, 5}
	for i := range want {
		if counts[i] != want[i] {
			t.Fatalf("expected counts %v, got %v", want, counts)
		}
	}
}

func TestEachDocumentEmptyInput(t *testing.T) {
	if errs := EachDocument(nil, 4, func(int, ingest.Document) error { return nil }); errs != nil {
		t.Fatalf("expected nil for no documents, got %v", errs)
	}
}
