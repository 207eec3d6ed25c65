// Package data 内嵌玩法数据文件
//
// //go:embed 只能嵌入当前包目录下的文件，所以数据目录自带一个包，
// 桌面端和终端版入口都通过它把数据交给 embedded.Init。
package data

import "embed"

//go:embed *.yaml
var FS embed.FS
