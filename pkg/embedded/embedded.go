// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的配置数据。
//
// 以 "data/" 开头的路径从嵌入文件系统读取（使用前必须调用 Init()），
// 其他路径（用户通过 -config 指定的文件、测试中的临时文件）直接从磁盘读取。
package embedded

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DataPrefix 嵌入数据的路径前缀
const DataPrefix = "data/"

var (
	dataFS      fs.FS
	initialized bool
)

// Init 初始化嵌入文件系统
// 必须在 main() 开始时、任何配置加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径分隔符并移除 "./" 前缀
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

// IsEmbeddedPath 报告路径是否指向嵌入数据
func IsEmbeddedPath(path string) bool {
	return strings.HasPrefix(normalize(path), DataPrefix)
}

// ReadFile 读取文件内容
// "data/" 开头的路径从嵌入文件系统读取，其余路径从磁盘读取
func ReadFile(path string) ([]byte, error) {
	if !IsEmbeddedPath(path) {
		return os.ReadFile(path)
	}
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}
	return fs.ReadFile(dataFS, normalize(path))
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	_, err := Stat(path)
	return err == nil
}

// Glob 在嵌入文件系统中匹配文件
// 路径模式必须以 "data/" 开头
func Glob(pattern string) ([]string, error) {
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}
	pattern = normalize(pattern)
	if !strings.HasPrefix(pattern, DataPrefix) {
		return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", pattern)
	}
	return fs.Glob(dataFS, pattern)
}

// Stat 获取文件信息
func Stat(path string) (fs.FileInfo, error) {
	if !IsEmbeddedPath(path) {
		return os.Stat(path)
	}
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}
	return fs.Stat(dataFS, normalize(path))
}
