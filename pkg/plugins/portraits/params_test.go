package portraits

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadParams_Defaults 缺失的键使用默认值
func TestLoadParams_Defaults(t *testing.T) {
	params, err := LoadParams([]byte("[Other]\nfoo = 1\n"))
	if err != nil {
		t.Fatalf("LoadParams failed: %v", err)
	}
	if params != DefaultParams() {
		t.Errorf("expected defaults, got %+v", params)
	}
	def := DefaultParams()
	if def.BarsHorizontalPadding != -60 || def.WindowVerticalMargin != 13 || def.ActorsQuantity != 4 {
		t.Errorf("unexpected defaults %+v", def)
	}
}

// TestLoadParams_File 从文件读取，带空格的键名
func TestLoadParams_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugins.ini")
	content := `[Portraits]
Bars Horizontal Padding = 30
Global Window Vertical Margin = 0
Actors Quantity = 6
ATB Compatibility = 1
TP and ATB Enabled = 1
Window Width = 816
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	params, err := LoadParams(path)
	if err != nil {
		t.Fatalf("LoadParams failed: %v", err)
	}
	want := Params{
		BarsHorizontalPadding: 30,
		WindowVerticalMargin:  0,
		ActorsQuantity:        6,
		ATBCompatibility:      1,
		TPAndATB:              1,
		WindowWidth:           816,
	}
	if params != want {
		t.Errorf("got %+v, want %+v", params, want)
	}
}

// TestLoadParams_Invalid 无法解析的值回退到默认值，文件不存在时返回错误
func TestLoadParams_Invalid(t *testing.T) {
	params, err := LoadParams([]byte("[Portraits]\nActors Quantity = many\n"))
	if err != nil {
		t.Fatalf("LoadParams failed: %v", err)
	}
	if params.ActorsQuantity != 4 {
		t.Errorf("invalid value should fall back to 4, got %d", params.ActorsQuantity)
	}

	params, err = LoadParams(filepath.Join(t.TempDir(), "missing.ini"))
	if err == nil {
		t.Error("expected error for missing file")
	}
	if params != DefaultParams() {
		t.Error("missing file should still yield defaults")
	}
}
