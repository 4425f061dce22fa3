package primarium

import (
	"testing"

	"github.com/primarium/primarium/builder"
)

func TestDraftStoreRoundTrip(t *testing.T) {
	d := NewDraftStore(NewMemoryKV())

	list := builder.Seed("Florești")
	if _, err := list.Add(builder.TypeAbout); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := d.Save("s1", list, ".hero { color: red }"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, css, ok, err := d.Load("s1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !ok {
		t.Fatal("expected stored draft")
	}
	if css != ".hero { color: red }" {
		t.Errorf("css = %q", css)
	}
	if got.Len() != list.Len() {
		t.Errorf("component count = %d, want %d", got.Len(), list.Len())
	}
	if !got.Has(builder.TypeAbout) {
		t.Error("about component lost in round trip")
	}
}

func TestDraftStoreMissing(t *testing.T) {
	d := NewDraftStore(NewMemoryKV())
	_, _, ok, err := d.Load("nope")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ok {
		t.Error("expected miss for unknown settlement")
	}
}

func TestDraftStoreCorruptEntryIsMiss(t *testing.T) {
	kv := NewMemoryKV()
	if err := kv.Set(draftKey("s1"), []byte("{not json")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	d := NewDraftStore(kv)
	_, _, ok, err := d.Load("s1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ok {
		t.Error("corrupt draft should read as a miss, not an error")
	}
}

func TestDraftStoreClear(t *testing.T) {
	d := NewDraftStore(NewMemoryKV())
	if err := d.Save("s1", builder.Seed("X"), ""); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := d.Clear("s1"); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, _, ok, _ := d.Load("s1"); ok {
		t.Error("draft should be gone after Clear")
	}
	if err := d.Clear("s1"); err != nil {
		t.Errorf("Clear of missing draft should not error, got %v", err)
	}
}
