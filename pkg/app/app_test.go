package app

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/decker502/picanim/pkg/config"
	"github.com/decker502/picanim/pkg/scenes"
)

const testScript = `
commands:
  - code: setVariable
    params: [1, 3]
  - code: plugin
    params: ["PA_INIT \\V[1] 5 H 0"]
  - code: showPicture
    params: [2, Flag]
`

func testConfig() *config.AppConfig {
	cfg := config.DefaultAppConfig()
	cfg.Save.Enabled = false
	cfg.Battle.CurrencyUnit = "Gold"
	cfg.Battle.Party = []config.ActorConfig{
		{ID: 1, Name: "Harold", FaceName: "Actor1", HP: 10, MHP: 20, Icons: []int{4}},
		{ID: 2, Name: "Therese", FaceName: "Actor1", FaceIndex: 1, HP: 5, MHP: 20},
	}
	return cfg
}

func testAssets() fstest.MapFS {
	return fstest.MapFS{
		"data/scripts/demo.yaml": &fstest.MapFile{Data: []byte(testScript)},
		"data/plugins.ini":       &fstest.MapFile{Data: []byte("[Portraits]\nActors Quantity = 2\n")},
	}
}

func TestNewApp(t *testing.T) {
	a, err := NewApp(context.Background(), testConfig(), testAssets())
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	if _, ok := a.GetSceneManager().GetCurrentScene().(*scenes.PictureScene); !ok {
		t.Fatalf("Expected current scene to be *scenes.PictureScene, got %T", a.GetSceneManager().GetCurrentScene())
	}

	gs := a.GameState()
	if gs.CurrencyUnit != "Gold" {
		t.Errorf("Expected currency unit Gold, got %q", gs.CurrencyUnit)
	}
	if got := len(gs.Party.Members()); got != 2 {
		t.Errorf("Expected 2 party members, got %d", got)
	}

	a.GetSceneManager().Update()
	anim := gs.Screen.PictureAnimation(2)
	if anim == nil {
		t.Fatal("Expected picture 2 to carry an animation")
	}
	if anim.Config.CellCount != 3 {
		t.Errorf("Expected cell count from \\V[1] = 3, got %d", anim.Config.CellCount)
	}
}

func TestNewApp_MissingScript(t *testing.T) {
	cfg := testConfig()
	cfg.Paths.Script = "data/scripts/none.yaml"
	if _, err := NewApp(context.Background(), cfg, testAssets()); err == nil {
		t.Error("Expected error for a missing script")
	}
}

func TestNewApp_MissingParamsUsesDefaults(t *testing.T) {
	assets := testAssets()
	delete(assets, "data/plugins.ini")

	params, err := loadParams(assets, "data/plugins.ini")
	if err == nil {
		t.Error("Expected error for missing plugin parameters")
	}
	if params.ActorsQuantity != 4 {
		t.Errorf("Expected default actor quantity 4, got %d", params.ActorsQuantity)
	}

	if _, err := NewApp(context.Background(), testConfig(), assets); err != nil {
		t.Errorf("Expected NewApp to fall back to default parameters, got %v", err)
	}
}

func TestLayout(t *testing.T) {
	a := &App{cfg: config.DefaultAppConfig()}
	w, h := a.Layout(1920, 1080)
	if w != config.ScreenWidth || h != config.ScreenHeight {
		t.Errorf("Layout = %dx%d, want %dx%d", w, h, config.ScreenWidth, config.ScreenHeight)
	}
}
