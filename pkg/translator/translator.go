// Package translator loads the TOML message catalogs backing the
// translated error responses of the ops API.
package translator

import (
	"path/filepath"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Translator is the shared bundle. English is the fallback language.
var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string
}

const (
	LanguageEn = "en"
	LanguageFr = "fr"
)

// InitTranslator builds the bundle from every .toml catalog found in
// the configured folder. A missing folder or an unparsable catalog is
// logged and skipped; the bundle still works with English fallbacks.
func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	catalogs, err := filepath.Glob(filepath.Join(cfg.TranslationFolder, "*.toml"))
	if err != nil {
		zap.L().Error("failed to scan translation folder",
			zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}
	if len(catalogs) == 0 {
		zap.L().Warn("no translation catalogs found",
			zap.String("folder", cfg.TranslationFolder))
	}

	for _, catalog := range catalogs {
		if _, err := Translator.LoadMessageFile(catalog); err != nil {
			zap.L().Warn("failed to load translation catalog",
				zap.String("file", filepath.Base(catalog)), zap.Error(err))
			continue
		}
		zap.L().Debug("loaded translation catalog",
			zap.String("lang", strings.TrimSuffix(filepath.Base(catalog), ".toml")))
	}
}
