// Package script 把事件脚本文件转换为解释器的指令列表
//
// 支持两种格式：
//   - YAML：顶层 commands 列表，每项 {code, params}
//   - Lua：调用 showPicture / plugin / wait 等全局函数，按调用顺序生成指令
package script

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/decker502/picanim/pkg/event"
	"gopkg.in/yaml.v3"
)

// DefaultLuaTimeout Lua 脚本生成指令列表的最长执行时间
const DefaultLuaTimeout = 2 * time.Second

// File YAML 脚本文件结构
type File struct {
	Name     string          `yaml:"name"`
	Commands []event.Command `yaml:"commands"`
}

// ParseYAML 解析 YAML 脚本
func ParseYAML(data []byte) ([]event.Command, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	for i, cmd := range f.Commands {
		if cmd.Code == "" {
			return nil, fmt.Errorf("command %d: missing code", i)
		}
	}
	return f.Commands, nil
}

// LoadFile 从 fsys 读取脚本，按扩展名选择格式（.yaml/.yml 或 .lua）
func LoadFile(ctx context.Context, fsys fs.FS, name string) ([]event.Command, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", name, err)
	}

	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		cmds, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return cmds, nil
	case ".lua":
		ctx, cancel := context.WithTimeout(ctx, DefaultLuaTimeout)
		defer cancel()
		return ParseLua(ctx, name, string(data))
	default:
		return nil, fmt.Errorf("unsupported script format: %s", name)
	}
}
