//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译，构建前需要把 assets/ 复制到本目录。
package mobile

import "embed"

//go:embed all:assets
var assetsFS embed.FS
