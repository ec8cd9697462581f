package config

import (
	"path/filepath"
	"reflect"
	"testing"

	tu "ocrscan/internal/testutil"
)

func TestConfig_SaveLoad(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)() // fallback
	defer tu.WithEnv(t, "TESSDATA_PREFIX", "")()

	// missing file -> defaults
	got, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !reflect.DeepEqual(got, Default()) {
		t.Fatalf("expected defaults, got %+v", got)
	}

	p, err := Save(Config{Languages: []string{"deu+eng", " eng ", ""}, PageSegMode: 6, Indent: "\t", Tessdata: " /opt/td "})
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if filepath.Base(p) != "config.json" {
		t.Fatalf("unexpected config path %s", p)
	}
	got, err = Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	want := Config{Languages: []string{"deu", "eng"}, PageSegMode: 6, Indent: "\t", Tessdata: "/opt/td"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected config after save+load: %+v", got)
	}
}

func TestConfig_PartialFileKeepsDefaults(t *testing.T) {
	defer tu.WithEnv(t, "TESSDATA_PREFIX", "/env/tessdata")()
	p := tu.WriteFile(t, t.TempDir(), "config.json", []byte(`{"psm": 99, "indent": ""}`))
	got, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if got.PageSegMode != 3 || got.Indent != "    " || got.Languages[0] != "eng" {
		t.Fatalf("defaults not restored: %+v", got)
	}
	if got.Tessdata != "/env/tessdata" {
		t.Fatalf("expected TESSDATA_PREFIX fallback, got %q", got.Tessdata)
	}
}

func TestConfig_InvalidJSON(t *testing.T) {
	p := tu.WriteFile(t, t.TempDir(), "config.json", []byte(`{`))
	if _, err := LoadFile(p); err == nil {
		t.Fatalf("expected error for invalid JSON")
	}
}

func TestParseLanguages(t *testing.T) {
	if got := ParseLanguages("eng+fra+eng"); !reflect.DeepEqual(got, []string{"eng", "fra"}) {
		t.Fatalf("unexpected languages: %v", got)
	}
	if got := ParseLanguages(""); !reflect.DeepEqual(got, []string{"eng"}) {
		t.Fatalf("expected default language, got %v", got)
	}
}
