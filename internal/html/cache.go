package html

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"text/template"
)

// ShowBoard вмещает 3 чанка по 4090 байт, плюс запас на разметку.
const maxHTMLFileSize = 16384

// DialogData — key→value для подстановки в шаблон.
// Ключи совпадают с именами %var% плейсхолдеров ("navigation", "schemename"...).
type DialogData map[string]any

// Cache загружает .htm/.html файлы из директории и хранит скомпилированные text/template.
// Файлы уже сконвертированы из %var% в {{index . "var"}} (см. cmd/htmlconvert).
type Cache struct {
	htmlDir   string
	templates map[string]*template.Template
	mu        sync.RWMutex
	lazy      bool
}

// NewCache создаёт кэш шаблонов.
// lazy == false — все файлы загружаются сразу, иначе при первом обращении.
func NewCache(htmlDir string, lazy bool) (*Cache, error) {
	c := &Cache{
		htmlDir:   htmlDir,
		templates: make(map[string]*template.Template),
		lazy:      lazy,
	}

	if !lazy {
		if err := c.preload(); err != nil {
			return nil, fmt.Errorf("preloading HTML templates: %w", err)
		}
	}

	return c, nil
}

// IsTemplateFile reports whether name has a .htm or .html extension.
func IsTemplateFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".htm" || ext == ".html"
}

// Get возвращает шаблон по относительному пути ("CommunityBoard/Custom/home.html").
func (c *Cache) Get(path string) (*template.Template, error) {
	path, err := cleanPath(path)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	tmpl, ok := c.templates[path]
	c.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	if !c.lazy {
		return nil, fmt.Errorf("template not found: %s", path)
	}

	return c.loadAndCache(path)
}

// Execute рендерит шаблон и возвращает HTML.
func (c *Cache) Execute(path string, data DialogData) (string, error) {
	tmpl, err := c.Get(path)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any(data)); err != nil {
		return "", fmt.Errorf("executing template %s: %w", path, err)
	}

	return buf.String(), nil
}

// Exists returns true if the template is cached or (in lazy mode) present on disk.
func (c *Cache) Exists(path string) bool {
	path, err := cleanPath(path)
	if err != nil {
		return false
	}

	c.mu.RLock()
	_, ok := c.templates[path]
	c.mu.RUnlock()
	if ok {
		return true
	}

	if c.lazy {
		_, err := os.Stat(filepath.Join(c.htmlDir, filepath.FromSlash(path)))
		return err == nil
	}

	return false
}

// Len возвращает число загруженных шаблонов.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.templates)
}

// Reload сбрасывает кэш и (в eager режиме) загружает файлы заново.
func (c *Cache) Reload() error {
	c.mu.Lock()
	c.templates = make(map[string]*template.Template)
	c.mu.Unlock()

	if c.lazy {
		return nil
	}
	return c.preload()
}

func cleanPath(path string) (string, error) {
	if strings.Contains(path, "..") {
		return "", fmt.Errorf("path traversal denied: %s", path)
	}
	return strings.TrimPrefix(filepath.ToSlash(path), "/"), nil
}

// preload обходит htmlDir и загружает все шаблоны.
func (c *Cache) preload() error {
	info, err := os.Stat(c.htmlDir)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("HTML directory does not exist, skipping preload", "dir", c.htmlDir)
			return nil
		}
		return fmt.Errorf("stat html dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("html dir is not a directory: %s", c.htmlDir)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	err = filepath.WalkDir(c.htmlDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsTemplateFile(d.Name()) {
			return nil
		}

		relPath, err := filepath.Rel(c.htmlDir, path)
		if err != nil {
			return fmt.Errorf("computing relative path for %s: %w", path, err)
		}

		if _, err := c.loadFile(filepath.ToSlash(relPath)); err != nil {
			slog.Warn("failed to load HTML template", "path", relPath, "error", err)
			return nil // битый файл не валит весь preload
		}

		count++
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking html dir: %w", err)
	}

	slog.Info("HTML templates preloaded", "count", count, "dir", c.htmlDir)
	return nil
}

// loadAndCache загружает файл с диска и кладёт в кэш.
func (c *Cache) loadAndCache(path string) (*template.Template, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check после взятия write lock.
	if tmpl, ok := c.templates[path]; ok {
		return tmpl, nil
	}

	return c.loadFile(path)
}

// loadFile читает и компилирует шаблон. Вызывающий держит c.mu.
func (c *Cache) loadFile(path string) (*template.Template, error) {
	fullPath := filepath.Join(c.htmlDir, filepath.FromSlash(path))

	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > maxHTMLFileSize {
		return nil, fmt.Errorf("file too large (%d bytes, max %d): %s", info.Size(), maxHTMLFileSize, path)
	}

	raw, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	// missingkey=zero не спасает map[string]any: {{index . "x"}} без ключа
	// печатает "<no value>", поэтому вызывающий заполняет все ключи страницы.
	tmpl, err := template.New(path).Option("missingkey=zero").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", path, err)
	}

	c.templates[path] = tmpl
	return tmpl, nil
}
