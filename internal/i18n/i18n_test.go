package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// TestTranslator_Languages resolves labels per language and falls back to English.
func TestTranslator_Languages(t *testing.T) {
	t.Parallel()

	catalog, err := NewCatalog()
	require.NoError(t, err)
	require.Contains(t, catalog.Languages(), language.Russian)

	require.Equal(t, "Collapse sidebar", catalog.Translator("en").Translate("Collapse sidebar"))
	require.Equal(t, "Развернуть боковую панель", catalog.Translator("ru").Translate("Expand sidebar"))
	require.Equal(t, "展开侧边栏", catalog.Translator("zh-Hans").Translate("Expand sidebar"))
	require.Equal(t, "Expand sidebar", catalog.Translator("de").Translate("Expand sidebar"))
}

// TestTranslator_UnknownID returns the id when no catalogue defines it.
func TestTranslator_UnknownID(t *testing.T) {
	t.Parallel()

	catalog, err := NewCatalog()
	require.NoError(t, err)

	require.Equal(t, "Pin sidebar", catalog.Translator("ru").Translate("Pin sidebar"))
}
