package components

// PictureOrigin 图片的锚点
type PictureOrigin int

const (
	// OriginUpperLeft 以左上角为基准点
	OriginUpperLeft PictureOrigin = 0
	// OriginCenter 以中心为基准点
	OriginCenter PictureOrigin = 1
)

// PictureBlendMode 图片的合成方式
type PictureBlendMode int

const (
	BlendNormal   PictureBlendMode = 0
	BlendAdditive PictureBlendMode = 1
)

// PictureComponent 屏幕图片模型(纯数据)
//
// 每个显示中的图片编号对应一个实体，擦除图片时实体整体销毁。
// ScaleX/ScaleY 使用百分比（100 = 原尺寸），Opacity 范围 0-255。
type PictureComponent struct {
	ID        int              `yaml:"id"` // 实际图片编号（战斗中已加上偏移）
	Name      string           `yaml:"name"`
	Origin    PictureOrigin    `yaml:"origin"`
	X         float64          `yaml:"x"`
	Y         float64          `yaml:"y"`
	ScaleX    float64          `yaml:"scaleX"`
	ScaleY    float64          `yaml:"scaleY"`
	Opacity   float64          `yaml:"opacity"`
	BlendMode PictureBlendMode `yaml:"blendMode"`
}
