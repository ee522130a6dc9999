package service

import (
	"strings"
	"testing"
)

func TestMakeSlugBase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Intro to Go", "intro-to-go"},
		{"Café Crème", "cafe-creme"},
		{"  Spaces   Everywhere  ", "spaces-everywhere"},
	}
	for _, c := range cases {
		if got := makeSlugBase(c.in); got != c.want {
			t.Errorf("makeSlugBase(%q) = %q, want %q", c.in, got, c.want)
		}
	}

	long := makeSlugBase(strings.Repeat("a", 500))
	if len(long) != maxSlugBaseLen {
		t.Errorf("超长标题基串长度 = %d, want %d", len(long), maxSlugBaseLen)
	}
}

func TestUniqueSlug(t *testing.T) {
	taken := map[string]bool{
		"my-post":   true,
		"my-post-1": true,
		"my-post-2": true,
	}
	isTaken := func(candidate string) (bool, error) {
		return taken[candidate], nil
	}

	got, err := uniqueSlug("my-post", isTaken)
	if err != nil {
		t.Fatalf("uniqueSlug: %v", err)
	}
	if got != "my-post-3" {
		t.Errorf("uniqueSlug = %q, want my-post-3", got)
	}

	got, err = uniqueSlug("fresh", isTaken)
	if err != nil {
		t.Fatalf("uniqueSlug: %v", err)
	}
	if got != "fresh" {
		t.Errorf("未占用的基串应原样返回, got %q", got)
	}
}
