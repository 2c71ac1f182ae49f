// Package i18n loads the embedded message catalogues and resolves UI labels
// by message id, falling back to English and then to the id itself.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var locales embed.FS

// Catalog holds every embedded translation.
type Catalog struct {
	bundle *goi18n.Bundle
}

// NewCatalog parses the embedded catalogues.
func NewCatalog() (*Catalog, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	paths, err := fs.Glob(locales, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("list catalogues: %w", err)
	}

	for _, path := range paths {
		if _, err = bundle.LoadMessageFileFS(locales, path); err != nil {
			return nil, fmt.Errorf("load catalogue %s: %w", path, err)
		}
	}

	return &Catalog{bundle: bundle}, nil
}

// Languages returns the tags of the loaded catalogues.
func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}

// Translator resolves labels for the preferred languages, most preferred first.
func (c *Catalog) Translator(preferred ...string) *Translator {
	return &Translator{
		localizer: goi18n.NewLocalizer(c.bundle, preferred...),
	}
}

// Translator looks up labels by message id.
type Translator struct {
	localizer *goi18n.Localizer
}

// Translate returns the label for id, or id itself when no catalogue has it.
func (t *Translator) Translate(id string) string {
	label, err := t.localizer.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil || label == "" {
		return id
	}

	return label
}
