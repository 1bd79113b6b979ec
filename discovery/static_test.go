package discovery

import (
	"testing"

	"github.com/zen-xu/ghostty-fontcore/face"
)

func TestStaticDiscoverMatchesFamily(t *testing.T) {
	s := NewStatic()
	mono := face.NewDeferredFace(face.Descriptor{Family: "Mono", Monospace: face.BoolPtr(true)}, false, 'A')
	sans := face.NewDeferredFace(face.Descriptor{Family: "Sans"}, false, 'A')
	s.Add(mono.Descriptor, mono)
	s.Add(sans.Descriptor, sans)

	var got []*face.DeferredFace
	for d := range s.Discover(face.Descriptor{Family: "Mono"}) {
		got = append(got, d)
	}
	if len(got) != 1 || got[0] != mono {
		t.Fatalf("expected exactly mono, got %v", got)
	}
}

func TestStaticDiscoverEmptyQueryMatchesAll(t *testing.T) {
	s := NewStatic()
	a := face.NewDeferredFace(face.Descriptor{Family: "A"}, false, 'A')
	b := face.NewDeferredFace(face.Descriptor{Family: "B"}, false, 'A')
	s.Add(a.Descriptor, a)
	s.Add(b.Descriptor, b)

	count := 0
	for range s.Discover(face.Descriptor{}) {
		count++
	}
	if count != 2 {
		t.Fatalf("expected 2 matches, got %d", count)
	}
}

func TestStaticDiscoverFallbackFiltersByCodepointAndHints(t *testing.T) {
	s := NewStatic()
	emoji := face.NewDeferredFace(face.Descriptor{Family: "Emoji", Bold: face.BoolPtr(false)}, true, 0x1F600)
	text := face.NewDeferredFace(face.Descriptor{Family: "Text"}, false, 'A')
	s.Add(emoji.Descriptor, emoji)
	s.Add(text.Descriptor, text)

	var got []*face.DeferredFace
	for d := range s.DiscoverFallback(0x1F600, 12, false, false, false) {
		got = append(got, d)
	}
	if len(got) != 1 || got[0] != emoji {
		t.Fatalf("expected exactly emoji, got %v", got)
	}

	got = nil
	for d := range s.DiscoverFallback(0x1F600, 12, true, false, false) {
		got = append(got, d)
	}
	if len(got) != 0 {
		t.Fatalf("expected bold hint to exclude the non-bold emoji face, got %v", got)
	}
}

func TestStaticDiscoverYieldStopsEarly(t *testing.T) {
	s := NewStatic()
	for i := 0; i < 5; i++ {
		d := face.NewDeferredFace(face.Descriptor{Family: "X"}, false, 'A')
		s.Add(d.Descriptor, d)
	}

	count := 0
	for range s.Discover(face.Descriptor{Family: "X"}) {
		count++
		break
	}
	if count != 1 {
		t.Fatalf("expected iteration to stop after first yield, got %d", count)
	}
}
