// htmlconvert переводит страницы диалогов и Community Board из %var% в синтаксис text/template
// и проверяет, что каталог страниц загружается кешем.
//
// Usage:
//
//	go run ./cmd/htmlconvert -dir data/html
//	go run ./cmd/htmlconvert -dir data/html -dry-run
//	go run ./cmd/htmlconvert -dir data/html -check
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/udisondev/la2go-board/internal/html"
)

// varPattern matches %variable% placeholders.
// Не матчит width=100%: имя должно начинаться с буквы и иметь минимум 2 символа.
var varPattern = regexp.MustCompile(`%([a-zA-Z][a-zA-Z0-9_.]+)%`)

var (
	// errLegacyVars — в каталоге остались %var% плейсхолдеры.
	errLegacyVars = errors.New("legacy %var% placeholders left")
	// errBrokenTemplate — файл не компилируется text/template.
	errBrokenTemplate = errors.New("template does not parse")
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fl := flag.NewFlagSet("htmlconvert", flag.ContinueOnError)
	dir := fl.String("dir", "data/html", "directory with .htm/.html files")
	dryRun := fl.Bool("dry-run", false, "show changes without writing")
	check := fl.Bool("check", false, "verify templates parse and no %var% is left")
	if err := fl.Parse(args); err != nil {
		return err
	}

	if *check {
		return checkDir(*dir, out)
	}

	stats, err := convert(*dir, *dryRun, out)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "files scanned:   %d\n", stats.scanned)
	fmt.Fprintf(out, "files converted: %d\n", stats.converted)
	fmt.Fprintf(out, "vars replaced:   %d\n", stats.varsReplaced)
	fmt.Fprintf(out, "unique vars:     %d\n", len(stats.uniqueVars))
	if *dryRun {
		fmt.Fprintln(out, "(dry-run, no files modified)")
	}
	return nil
}

type convertStats struct {
	scanned      int
	converted    int
	varsReplaced int
	uniqueVars   map[string]int
}

// walkTemplates вызывает fn для каждого .htm/.html файла под dir.
func walkTemplates(dir string, fn func(path string, d fs.DirEntry, content string) error) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !html.IsTemplateFile(d.Name()) {
			return nil
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		return fn(path, d, string(raw))
	})
}

func convert(dir string, dryRun bool, out io.Writer) (convertStats, error) {
	stats := convertStats{uniqueVars: make(map[string]int)}

	err := walkTemplates(dir, func(path string, d fs.DirEntry, content string) error {
		stats.scanned++

		converted, count, vars := convertContent(content)
		if count == 0 {
			return nil
		}

		stats.converted++
		stats.varsReplaced += count
		for v, c := range vars {
			stats.uniqueVars[v] += c
		}

		if dryRun {
			rel, _ := filepath.Rel(dir, path)
			fmt.Fprintf(out, "  %s: %d replacements\n", rel, count)
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		if err := os.WriteFile(path, []byte(converted), info.Mode().Perm()); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		return nil
	})

	return stats, err
}

func convertContent(content string) (string, int, map[string]int) {
	vars := make(map[string]int)
	count := 0

	result := varPattern.ReplaceAllStringFunc(content, func(match string) string {
		name := match[1 : len(match)-1]
		vars[name]++
		count++
		return `{{index . "` + name + `"}}`
	})

	return result, count, vars
}

// checkDir компилирует каждую страницу через html.Cache, как это делает сервер,
// и перечисляет битые шаблоны и файлы с неконвертированными плейсхолдерами.
func checkDir(dir string, out io.Writer) error {
	cache, err := html.NewCache(dir, true)
	if err != nil {
		return fmt.Errorf("opening templates: %w", err)
	}

	var broken, legacy []string
	err = walkTemplates(dir, func(path string, _ fs.DirEntry, content string) error {
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if _, err := cache.Get(rel); err != nil {
			fmt.Fprintf(out, "  broken %s: %v\n", rel, err)
			broken = append(broken, rel)
		}
		if varPattern.MatchString(content) {
			legacy = append(legacy, rel)
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "templates loaded: %d\n", cache.Len())

	slices.Sort(legacy)
	for _, p := range legacy {
		fmt.Fprintf(out, "  legacy %s\n", p)
	}

	var errs []error
	if len(broken) > 0 {
		errs = append(errs, fmt.Errorf("%w: %d files", errBrokenTemplate, len(broken)))
	}
	if len(legacy) > 0 {
		errs = append(errs, fmt.Errorf("%w: %d files", errLegacyVars, len(legacy)))
	}
	return errors.Join(errs...)
}
