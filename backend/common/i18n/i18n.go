package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DefaultLang is used when a message is missing in the requested language.
const DefaultLang = "en"

//go:embed locales/*.json
var embeddedLocales embed.FS

var (
	messages     = make(map[string]map[string]string)
	messagesLock sync.RWMutex
)

func init() {
	if err := loadFS(embeddedLocales, "locales"); err != nil {
		panic(fmt.Sprintf("load embedded locales: %v", err))
	}
}

// Init loads <lang>.json files from dir on top of the embedded locales.
func Init(dir string) error {
	return loadFS(os.DirFS(dir), ".")
}

func loadFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read locale directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := fs.ReadFile(fsys, filepath.ToSlash(filepath.Join(dir, entry.Name())))
		if err != nil {
			return fmt.Errorf("read locale %s: %w", entry.Name(), err)
		}
		var table map[string]string
		if err := json.Unmarshal(data, &table); err != nil {
			return fmt.Errorf("parse locale %s: %w", entry.Name(), err)
		}
		lang := strings.TrimSuffix(entry.Name(), ".json")

		messagesLock.Lock()
		if messages[lang] == nil {
			messages[lang] = make(map[string]string, len(table))
		}
		for code, msg := range table {
			messages[lang][code] = msg
		}
		messagesLock.Unlock()
	}
	return nil
}

// Translate 返回 code 在 lang 下的文案，缺失时回退到默认语言，再缺失则返回 code 本身
func Translate(code string, lang string, args ...interface{}) string {
	lang = NormalizeLang(lang)

	messagesLock.RLock()
	msg, ok := messages[lang][code]
	if !ok {
		msg, ok = messages[DefaultLang][code]
	}
	messagesLock.RUnlock()

	if !ok {
		return code
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// NormalizeLang maps tags such as "zh-CN" or "en_US" to the locale file name.
func NormalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if idx := strings.IndexAny(lang, "-_;"); idx != -1 {
		lang = lang[:idx]
	}
	if lang == "" {
		return DefaultLang
	}
	return lang
}

type langKey struct{}

func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, langKey{}, lang)
}

func LangFromContext(ctx context.Context) string {
	if lang, ok := ctx.Value(langKey{}).(string); ok && lang != "" {
		return lang
	}
	return DefaultLang
}
