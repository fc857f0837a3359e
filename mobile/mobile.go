//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。构建前需要把项目根目录的
// assets/ 复制到本目录：
//
//	cp -r assets mobile/
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.picanim -o build/android/picanim.aar -v ./mobile
package mobile

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/picanim/internal/logger"
	"github.com/decker502/picanim/pkg/app"
	"github.com/decker502/picanim/pkg/config"
	"github.com/decker502/picanim/pkg/embedded"
)

func init() {
	if err := logger.Init("info", ""); err != nil {
		panic(err)
	}

	// assetsFS 在 embed.go 中声明
	if err := embedded.InitSub(assetsFS, "assets"); err != nil {
		logger.Sugar.Fatalf("[Mobile] 资源初始化失败: %v", err)
	}

	cfg := config.DefaultAppConfig()
	gameApp, err := app.NewApp(context.Background(), cfg, embedded.FS())
	if err != nil {
		logger.Sugar.Fatalf("[Mobile] 初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
