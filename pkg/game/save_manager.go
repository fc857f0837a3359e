package game

import (
	"fmt"

	"github.com/decker502/picanim/internal/logger"
	"github.com/decker502/picanim/pkg/components"
	"github.com/decker502/picanim/pkg/ecs"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// saveDataVersion 存档格式版本
const saveDataVersion = 1

// 存储路径常量
const (
	screenObject   = "screen"
	screenProperty = "pictures"
)

// SavedPicture 一张图片的存档数据
//
// Animation 为 nil 表示图片没有绑定动画。
type SavedPicture struct {
	Picture   components.PictureComponent        `yaml:"picture"`
	Animation *components.CellAnimationComponent `yaml:"animation,omitempty"`
}

// ScreenSaveData 屏幕状态存档
//
// 保存内容：
//   - 显示中的图片（按实际编号升序）及其动画状态
//   - 暂存的动画配置（尚未被"显示图片"消费）
//   - 游戏变量
type ScreenSaveData struct {
	Version          int                             `yaml:"version"`
	InBattle         bool                            `yaml:"inBattle"`
	Pictures         []SavedPicture                  `yaml:"pictures"`
	PendingAnimation *components.CellAnimationConfig `yaml:"pendingAnimation,omitempty"`
	Variables        map[int]int                     `yaml:"variables,omitempty"`
}

// SaveManager 屏幕状态存档管理器
//
// 职责：
//   - 把图片和动画组件序列化为 YAML，写入 gdata 对象 screen/pictures
//   - 读档时清空屏幕并按存档恢复图片实体
//
// gdataManager 为 nil 时进入降级模式：保存静默跳过，读取报告没有存档。
type SaveManager struct {
	gdataManager *gdata.Manager
}

// NewSaveManager 创建存档管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，不持久化）
func NewSaveManager(gdataManager *gdata.Manager) *SaveManager {
	return &SaveManager{gdataManager: gdataManager}
}

// OpenSaveManager 按应用名打开 gdata 存储并创建存档管理器
//
// 打开失败时返回降级模式的管理器和错误，调用方记录日志后可继续使用。
func OpenSaveManager(appName string) (*SaveManager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewSaveManager(nil), fmt.Errorf("failed to open save storage %q: %w", appName, err)
	}
	return NewSaveManager(m), nil
}

// Enabled 是否可以持久化
func (sm *SaveManager) Enabled() bool {
	return sm != nil && sm.gdataManager != nil
}

// HasSave 是否存在屏幕存档
func (sm *SaveManager) HasSave() bool {
	if !sm.Enabled() {
		return false
	}
	return sm.gdataManager.ObjectPropExists(screenObject, screenProperty)
}

// Snapshot 从当前状态生成存档数据（不写入存储）
func Snapshot(gs *GameState) *ScreenSaveData {
	screen := gs.Screen
	data := &ScreenSaveData{
		Version:  saveDataVersion,
		InBattle: screen.InBattle(),
		Pictures: make([]SavedPicture, 0, len(screen.pictures)),
	}

	for _, realID := range screen.PictureIDs() {
		id := screen.pictures[realID]
		pic, ok := ecs.GetComponent[*components.PictureComponent](screen.entityManager, id)
		if !ok {
			continue
		}
		saved := SavedPicture{Picture: *pic}
		if anim, ok := ecs.GetComponent[*components.CellAnimationComponent](screen.entityManager, id); ok {
			animCopy := *anim
			saved.Animation = &animCopy
		}
		data.Pictures = append(data.Pictures, saved)
	}

	if pending := screen.PendingAnimation(); pending != nil {
		pendingCopy := *pending
		data.PendingAnimation = &pendingCopy
	}

	if len(gs.Variables.values) > 0 {
		data.Variables = make(map[int]int, len(gs.Variables.values))
		for k, v := range gs.Variables.values {
			data.Variables[k] = v
		}
	}
	return data
}

// Restore 用存档数据替换当前屏幕状态
//
// 渲染侧的缓存（PictureSpriteComponent）不保存，读档后由渲染系统重新加载图片。
func Restore(gs *GameState, data *ScreenSaveData) {
	screen := gs.Screen
	screen.Clear()
	screen.SetInBattle(data.InBattle)

	for _, saved := range data.Pictures {
		var anim *components.CellAnimationComponent
		if saved.Animation != nil {
			animCopy := *saved.Animation
			anim = &animCopy
		}
		screen.restorePicture(saved.Picture, anim)
	}

	if data.PendingAnimation != nil {
		pendingCopy := *data.PendingAnimation
		screen.pendingAnimation = &pendingCopy
	}

	gs.Variables = NewVariables()
	for k, v := range data.Variables {
		gs.Variables.SetValue(k, v)
	}
}

// Save 保存屏幕状态到 gdata
//
// 降级模式下返回 nil（不报错）
func (sm *SaveManager) Save(gs *GameState) error {
	if !sm.Enabled() {
		return nil
	}

	data, err := yaml.Marshal(Snapshot(gs))
	if err != nil {
		return fmt.Errorf("failed to marshal screen state: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(screenObject, screenProperty, data); err != nil {
		return fmt.Errorf("failed to save screen state: %w", err)
	}

	logger.Sugar.Infof("[SaveManager] Screen saved: %d pictures", len(gs.Screen.pictures))
	return nil
}

// Load 从 gdata 读取屏幕状态并恢复
//
// 返回：
//   - bool: 是否找到并恢复了存档
//   - error: 读取或反序列化失败（此时当前状态保持不变）
func (sm *SaveManager) Load(gs *GameState) (bool, error) {
	if !sm.HasSave() {
		return false, nil
	}

	raw, err := sm.gdataManager.LoadObjectProp(screenObject, screenProperty)
	if err != nil {
		return false, fmt.Errorf("failed to load screen state: %w", err)
	}

	var data ScreenSaveData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return false, fmt.Errorf("failed to unmarshal screen state: %w", err)
	}
	if data.Version > saveDataVersion {
		return false, fmt.Errorf("unsupported screen save version %d", data.Version)
	}

	Restore(gs, &data)
	logger.Sugar.Infof("[SaveManager] Screen loaded: %d pictures", len(data.Pictures))
	return true, nil
}
