package builder

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestSeed(t *testing.T) {
	l := Seed("Dumbrăvița")

	if l.Len() != 3 {
		t.Fatalf("Seed length = %d, want 3 (header, hero, footer)", l.Len())
	}
	comps := l.Components()
	if comps[0].Type != TypeHeader {
		t.Errorf("first component = %s, want header", comps[0].Type)
	}
	if comps[1].Type != TypeHero {
		t.Errorf("second component = %s, want hero", comps[1].Type)
	}
	if comps[2].Type != TypeFooter {
		t.Errorf("last component = %s, want footer (auto-inserted)", comps[2].Type)
	}
	header, ok := comps[0].Content.(HeaderContent)
	if !ok {
		t.Fatalf("header content has type %T", comps[0].Content)
	}
	if header.Title != "Primăria Dumbrăvița" {
		t.Errorf("header title = %q, want %q", header.Title, "Primăria Dumbrăvița")
	}
	for i, c := range comps {
		if c.Position != i {
			t.Errorf("component %d position = %d, want %d", i, c.Position, i)
		}
	}
}

func TestAddAutoInsertsMandatory(t *testing.T) {
	l := NewList(nil)
	if _, err := l.Add(TypeAbout); err != nil {
		t.Fatalf("Add(about) failed: %v", err)
	}
	comps := l.Components()
	if len(comps) != 3 {
		t.Fatalf("length = %d, want 3 (header auto, about, footer auto)", len(comps))
	}
	if comps[0].Type != TypeHeader || comps[2].Type != TypeFooter {
		t.Errorf("mandatory components not auto-inserted: %s ... %s", comps[0].Type, comps[2].Type)
	}
}

func TestAddDuplicateMandatoryRejected(t *testing.T) {
	l := Seed("Test")
	before := l.Len()

	for _, typ := range []Type{TypeHeader, TypeFooter} {
		_, err := l.Add(typ)
		if !errors.Is(err, ErrMandatoryComponent) {
			t.Errorf("Add(%s) err = %v, want ErrMandatoryComponent", typ, err)
		}
	}
	if l.Len() != before {
		t.Errorf("length changed to %d after rejected adds, want %d", l.Len(), before)
	}
}

func TestAddSingletonRejected(t *testing.T) {
	l := Seed("Test")
	for _, typ := range []Type{TypeAbout, TypeBlog, TypeMap, TypeContact} {
		if _, err := l.Add(typ); err != nil {
			t.Fatalf("first Add(%s) failed: %v", typ, err)
		}
		before := l.Len()
		_, err := l.Add(typ)
		if !errors.Is(err, ErrSingletonComponent) {
			t.Errorf("second Add(%s) err = %v, want ErrSingletonComponent", typ, err)
		}
		if l.Len() != before {
			t.Errorf("length changed to %d after rejected Add(%s)", l.Len(), typ)
		}
	}
}

func TestAddRepeatableTypes(t *testing.T) {
	l := Seed("Test")
	// Seed already contains a hero; both hero and services may repeat.
	if _, err := l.Add(TypeHero); err != nil {
		t.Errorf("Add(hero) failed: %v", err)
	}
	if _, err := l.Add(TypeServices); err != nil {
		t.Errorf("Add(services) failed: %v", err)
	}
	if _, err := l.Add(TypeServices); err != nil {
		t.Errorf("second Add(services) failed: %v", err)
	}
}

func TestAddKeepsFooterLast(t *testing.T) {
	l := Seed("Test")
	if _, err := l.Add(TypeContact); err != nil {
		t.Fatalf("Add(contact) failed: %v", err)
	}
	comps := l.Components()
	if comps[len(comps)-1].Type != TypeFooter {
		t.Errorf("last component = %s, want footer", comps[len(comps)-1].Type)
	}
	if comps[len(comps)-2].Type != TypeContact {
		t.Errorf("contact not inserted above footer, got %s", comps[len(comps)-2].Type)
	}
}

func TestAddUnknownType(t *testing.T) {
	l := Seed("Test")
	_, err := l.Add(Type("sidebar"))
	if !errors.Is(err, ErrUnknownType) {
		t.Errorf("Add(sidebar) err = %v, want ErrUnknownType", err)
	}
}

func TestDeleteMandatoryIsNoOp(t *testing.T) {
	l := Seed("Test")
	comps := l.Components()
	before := l.Len()

	for _, c := range comps {
		if !c.Type.Mandatory() {
			continue
		}
		err := l.Delete(c.ID)
		if !errors.Is(err, ErrMandatoryComponent) {
			t.Errorf("Delete(%s) err = %v, want ErrMandatoryComponent", c.Type, err)
		}
	}
	if l.Len() != before {
		t.Errorf("length = %d after rejected deletes, want %d", l.Len(), before)
	}
	after := l.Components()
	for i := range comps {
		if comps[i].ID != after[i].ID {
			t.Errorf("component %d changed after rejected delete", i)
		}
	}
}

func TestDeleteRenumbers(t *testing.T) {
	l := Seed("Test")
	about, err := l.Add(TypeAbout)
	if err != nil {
		t.Fatalf("Add(about) failed: %v", err)
	}
	if _, err := l.Add(TypeContact); err != nil {
		t.Fatalf("Add(contact) failed: %v", err)
	}

	if err := l.Delete(about.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	for i, c := range l.Components() {
		if c.Position != i {
			t.Errorf("position[%d] = %d after delete, want %d", i, c.Position, i)
		}
		if c.ID == about.ID {
			t.Error("deleted component still present")
		}
	}
}

func TestDeleteNotFound(t *testing.T) {
	l := Seed("Test")
	if err := l.Delete("missing"); !errors.Is(err, ErrComponentNotFound) {
		t.Errorf("Delete(missing) err = %v, want ErrComponentNotFound", err)
	}
}

func TestMove(t *testing.T) {
	l := Seed("Test")
	if _, err := l.Add(TypeAbout); err != nil {
		t.Fatalf("Add(about) failed: %v", err)
	}
	// Order: header, hero, about, footer.
	comps := l.Components()
	hero, about := comps[1], comps[2]

	if err := l.Move(about.ID, MoveUp); err != nil {
		t.Fatalf("Move up failed: %v", err)
	}
	comps = l.Components()
	if comps[1].ID != about.ID || comps[2].ID != hero.ID {
		t.Errorf("Move up did not swap: got %s, %s", comps[1].Type, comps[2].Type)
	}
	if comps[1].Position != 1 || comps[2].Position != 2 {
		t.Errorf("positions not renumbered after move: %d, %d", comps[1].Position, comps[2].Position)
	}
}

func TestMoveAtBoundaryIsNoOp(t *testing.T) {
	l := Seed("Test")
	comps := l.Components()
	first, last := comps[0], comps[len(comps)-1]

	if err := l.Move(first.ID, MoveUp); err != nil {
		t.Errorf("Move first up returned error: %v", err)
	}
	if err := l.Move(last.ID, MoveDown); err != nil {
		t.Errorf("Move last down returned error: %v", err)
	}
	after := l.Components()
	if after[0].ID != first.ID || after[len(after)-1].ID != last.ID {
		t.Error("boundary move changed order")
	}
}

func TestSetAlignment(t *testing.T) {
	l := Seed("Test")
	hero := l.Components()[1]

	if err := l.SetAlignment(hero.ID, AlignRight); err != nil {
		t.Fatalf("SetAlignment failed: %v", err)
	}
	got, _ := l.Get(hero.ID)
	if got.Alignment != AlignRight {
		t.Errorf("alignment = %s, want right", got.Alignment)
	}
	if err := l.SetAlignment(hero.ID, Alignment("justify")); err == nil {
		t.Error("SetAlignment(justify) should fail")
	}
}

func TestSetContent(t *testing.T) {
	l := Seed("Test")
	hero := l.Components()[1]

	title := "Bun venit"
	if err := l.SetContent(hero.ID, HeroContent{Title: &title}); err != nil {
		t.Fatalf("SetContent failed: %v", err)
	}
	got, _ := l.Get(hero.ID)
	content, ok := got.Content.(HeroContent)
	if !ok || content.Title == nil || *content.Title != "Bun venit" {
		t.Errorf("hero content = %#v, want title %q", got.Content, "Bun venit")
	}

	// Payload variant must match the component type.
	err := l.SetContent(hero.ID, BlogContent{Title: "x"})
	if !errors.Is(err, ErrContentMismatch) {
		t.Errorf("SetContent mismatch err = %v, want ErrContentMismatch", err)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	l := Seed("Giroc")
	if _, err := l.Add(TypeBlog); err != nil {
		t.Fatalf("Add(blog) failed: %v", err)
	}
	hero := l.Components()[1]
	empty := ""
	if err := l.SetContent(hero.ID, HeroContent{Title: &empty}); err != nil {
		t.Fatalf("SetContent failed: %v", err)
	}

	data, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var restored List
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if restored.Len() != l.Len() {
		t.Fatalf("restored length = %d, want %d", restored.Len(), l.Len())
	}
	for i, want := range l.Components() {
		got := restored.Components()[i]
		if got.ID != want.ID || got.Type != want.Type || got.Alignment != want.Alignment || got.Position != want.Position {
			t.Errorf("component %d = %+v, want %+v", i, got, want)
		}
	}
	// Explicit-empty hero title must survive the round trip.
	got := restored.Components()[1].Content.(HeroContent)
	if got.Title == nil || *got.Title != "" {
		t.Errorf("explicit-empty hero title lost in round trip: %#v", got.Title)
	}
}

func TestUnmarshalUnknownTypeFails(t *testing.T) {
	data := []byte(`[{"id":"1","type":"carousel","content":{},"position":0,"alignment":"center"}]`)
	var l List
	if err := json.Unmarshal(data, &l); err == nil {
		t.Error("unmarshal of unknown component type should fail")
	}
}
