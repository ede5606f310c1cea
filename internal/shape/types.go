// Package shape 提供粒子云的数学曲线/曲面生成器。
//
// 每种形状对应一个闭式参数方程，按粒子下标 i ∈ [0, count) 扫描参数，
// 输出长度为 count*3 的扁平坐标数组 (x0,y0,z0,x1,y1,z1,...)。
// 随机抖动统一使用注入的 *rand.Rand，便于测试固定种子。
package shape

import "strings"

// Type 形状标识符（封闭集合）
type Type int

const (
	Vortex Type = iota
	Koch
	Cardioid
	Butterfly
	Archimedes
	Catenary
	Lemniscate
	Rose
)

// typeInfo 形状的配置名与展示名
type typeInfo struct {
	name    string // 配置文件中使用的名字
	display string // 界面展示名
}

var typeInfos = map[Type]typeInfo{
	Vortex:     {"vortex", "宇宙漩涡"},
	Koch:       {"koch", "科赫雪花"},
	Cardioid:   {"cardioid", "心形线"},
	Butterfly:  {"butterfly", "蝴蝶曲线"},
	Archimedes: {"archimedes", "阿基米德螺旋"},
	Catenary:   {"catenary", "悬链曲面"},
	Lemniscate: {"lemniscate", "伯努利双扭线"},
	Rose:       {"rose", "玫瑰曲线"},
}

// String 返回配置名，未知类型返回 "unknown"
func (t Type) String() string {
	if info, ok := typeInfos[t]; ok {
		return info.name
	}
	return "unknown"
}

// DisplayName 返回中文展示名
func (t Type) DisplayName() string {
	if info, ok := typeInfos[t]; ok {
		return info.display
	}
	return "未知形状"
}

// Valid 报告 t 是否属于已知形状集合
func (t Type) Valid() bool {
	_, ok := typeInfos[t]
	return ok
}

// All 按默认播放顺序返回全部形状
func All() []Type {
	return []Type{Vortex, Koch, Cardioid, Butterfly, Archimedes, Catenary, Lemniscate, Rose}
}

// Parse 根据配置名（大小写不敏感）解析形状类型
func Parse(name string) (Type, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, info := range typeInfos {
		if info.name == name {
			return t, true
		}
	}
	return 0, false
}
