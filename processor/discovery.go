package processor

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// compiledPattern 保存原始模式与编译后的 glob。
// 以 "**/" 开头的模式额外编译 root，使其也能匹配顶层文件（"**/*.py" 匹配 "a.py"）。
type compiledPattern struct {
	pattern string
	glob    glob.Glob
	root    glob.Glob
}

func compilePattern(pattern string) (compiledPattern, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return compiledPattern{}, err
	}
	cp := compiledPattern{pattern: pattern, glob: g}
	if rest, ok := strings.CutPrefix(pattern, "**/"); ok {
		if cp.root, err = glob.Compile(rest, '/'); err != nil {
			return compiledPattern{}, err
		}
	}
	return cp, nil
}

func (cp compiledPattern) match(path string) bool {
	return cp.glob.Match(path) || (cp.root != nil && cp.root.Match(path))
}

// FileDiscovery 递归查找目录下所有符合 include 且不符合 ignore 的文件
type FileDiscovery struct {
	rootDir        string
	includes       []compiledPattern
	ignorePatterns []compiledPattern
}

// NewFileDiscovery 创建 FileDiscovery 实例，模式非法时返回错误
func NewFileDiscovery(rootDir string, includes, ignores []string) (*FileDiscovery, error) {
	fd := &FileDiscovery{rootDir: rootDir}

	for _, pattern := range includes {
		cp, err := compilePattern(pattern)
		if err != nil {
			return nil, err
		}
		fd.includes = append(fd.includes, cp)
	}

	for _, pattern := range ignores {
		cp, err := compilePattern(pattern)
		if err != nil {
			return nil, err
		}
		fd.ignorePatterns = append(fd.ignorePatterns, cp)
	}

	return fd, nil
}

// DiscoverFiles 遍历目录树，按字典序返回匹配的文件
func (fd *FileDiscovery) DiscoverFiles() ([]string, error) {
	files := []string{}

	err := filepath.WalkDir(fd.rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(fd.rootDir, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			// 被忽略的目录整体跳过，根目录本身除外
			if relPath != "." && fd.shouldIgnore(relPath+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if fd.shouldIgnore(relPath) {
			return nil
		}
		if matchesAnyPattern(relPath, fd.includes) {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}

// shouldIgnore 判断路径是否命中任一 ignore 模式。
// 目录路径带有结尾的 "/"，以便匹配 "dir/**" 形式的模式。
func (fd *FileDiscovery) shouldIgnore(relPath string) bool {
	return matchesAnyPattern(relPath, fd.ignorePatterns)
}

func matchesAnyPattern(path string, patterns []compiledPattern) bool {
	for _, p := range patterns {
		if p.match(path) {
			return true
		}
	}
	return false
}
