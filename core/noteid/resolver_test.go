package noteid

import "testing"

func TestResolve_NotePath(t *testing.T) {
	id, ok := Resolve("/explore/65a1b2c3d4e5f60708091a0b")

	if !ok {
		t.Fatal("Resolve should recognize a note path")
	}
	if id != "65a1b2c3d4e5f60708091a0b" {
		t.Errorf("Resolve returned wrong id: %s", id)
	}
}

func TestResolve_TrailingSlash(t *testing.T) {
	id, ok := Resolve("/explore/65a1b2c3d4e5f60708091a0b/")

	if !ok {
		t.Fatal("Resolve should accept a trailing slash")
	}
	if id != "65a1b2c3d4e5f60708091a0b" {
		t.Errorf("Resolve returned wrong id: %s", id)
	}
}

func TestResolve_NonNotePaths(t *testing.T) {
	paths := []string{
		"",
		"/",
		"/explore",
		"/explore/",
		"/explore/tooshort",
		"/explore/65a1b2c3d4e5f60708091a0b/comments",
		"/user/65a1b2c3d4e5f60708091a0b",
		"/search_result?keyword=cats",
	}

	for _, p := range paths {
		if id, ok := Resolve(p); ok {
			t.Errorf("Resolve(%q) should not match, got id %q", p, id)
		}
	}
}

func TestResolve_NonHexID(t *testing.T) {
	if _, ok := Resolve("/explore/65a1b2c3d4e5f60708091g0b"); ok {
		t.Error("Resolve should reject ids with non-hex characters")
	}
}

func TestResolveURL(t *testing.T) {
	id, ok := ResolveURL("https://www.example.com/explore/65a1b2c3d4e5f60708091a0b?xsec_token=ABtoken&source=webshare")

	if !ok {
		t.Fatal("ResolveURL should recognize a note URL")
	}
	if id != "65a1b2c3d4e5f60708091a0b" {
		t.Errorf("ResolveURL returned wrong id: %s", id)
	}
}

func TestResolveURL_Invalid(t *testing.T) {
	if _, ok := ResolveURL("://not a url"); ok {
		t.Error("ResolveURL should reject unparseable URLs")
	}
}
