// Package embedded 提供内嵌资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包保存资源根目录（包含 img/ 和 data/），让其他包不必依赖 main 包。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ErrNotInitialized Init 之前访问资源
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	assetsFS    fs.FS
	initialized bool
)

// Init 设置资源根目录
// 必须在 main() 开始时、任何资源加载之前调用
func Init(assets fs.FS) {
	assetsFS = assets
	initialized = assets != nil
}

// InitSub 以 embed 根目录下的 dir 子目录作为资源根目录
func InitSub(root fs.FS, dir string) error {
	sub, err := fs.Sub(root, dir)
	if err != nil {
		return fmt.Errorf("failed to open embedded directory %s: %w", dir, err)
	}
	Init(sub)
	return nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// FS 返回资源根目录，未初始化时返回 nil
func FS() fs.FS {
	if !initialized {
		return nil
	}
	return assetsFS
}

// cleanPath 标准化路径：正斜杠、去掉 "./" 前缀
func cleanPath(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

// ReadFile 读取资源文件内容
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	return fs.ReadFile(assetsFS, cleanPath(path))
}

// Exists 检查资源文件是否存在
func Exists(path string) bool {
	if !initialized {
		return false
	}
	_, err := fs.Stat(assetsFS, cleanPath(path))
	return err == nil
}

// Glob 匹配资源文件
func Glob(pattern string) ([]string, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	return fs.Glob(assetsFS, cleanPath(pattern))
}
