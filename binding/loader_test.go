package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var uiNames = []string{"age", "nationality", "employed", "date_of_birth"}

func TestLoaderBuildFromOverrides(t *testing.T) {
	overrides := map[string]string{
		"current_age": "age",
		"has_job":     "employed",
		"born":        "date_of_birth",
	}

	loader := NewLoader(overrides)
	require.NoError(t, loader.Build(uiNames))
	assert.Equal(t, overrides, loader.Built())
}

func TestLoaderBuildUnresolvedOverride(t *testing.T) {
	loader := NewLoader(map[string]string{"born": "no_such_widget"})

	err := loader.Build(uiNames)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnresolvedOverride)
}

func TestLoaderBuildSuppressedOverride(t *testing.T) {
	loader := NewLoader(map[string]string{
		"born":    "no_such_widget",
		"has_job": "employed",
	})
	loader.SuppressKeys = []string{"born"}

	require.NoError(t, loader.Build(uiNames))
	assert.Equal(t, map[string]string{"has_job": "employed"}, loader.Built())
}

func TestLoaderBuildComplementsMissingOverride(t *testing.T) {
	// The override target is gone, but the key itself fuzzy-matches a widget
	loader := NewLoader(map[string]string{"date_of_birth_edit": "gone_widget"})
	loader.Complement = true

	require.NoError(t, loader.Build(uiNames))
	assert.Equal(t, map[string]string{"date_of_birth_edit": "date_of_birth"}, loader.Built())
}

func TestLoaderBuildFromKeys(t *testing.T) {
	loader := NewKeyLoader([]string{"employed", "date_of_birth_edit"})

	require.NoError(t, loader.Build(uiNames))
	assert.Equal(t, map[string]string{
		"employed":           "employed",      // exact
		"date_of_birth_edit": "date_of_birth", // fuzzy
	}, loader.Built())
}

func TestLoaderBuildFromKeysUnresolvable(t *testing.T) {
	loader := NewKeyLoader([]string{"reason_of_application"})

	err := loader.Build(uiNames)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWidgetNotFound)

	loader.SuppressKeys = []string{"reason_of_application"}
	require.NoError(t, loader.Build(uiNames))
	assert.Empty(t, loader.Built())
}

func TestLoaderResolveOrder(t *testing.T) {
	loader := NewLoader(map[string]string{"born": "date_of_birth"})
	require.NoError(t, loader.Build(uiNames))

	// Override entry wins
	name, via, score, err := loader.Resolve("born", uiNames)
	require.NoError(t, err)
	assert.Equal(t, "date_of_birth", name)
	assert.Equal(t, MethodOverride, via)
	assert.Equal(t, 1.0, score)

	// Exact match when no override applies
	name, via, _, err = loader.Resolve("employed", uiNames)
	require.NoError(t, err)
	assert.Equal(t, "employed", name)
	assert.Equal(t, MethodExact, via)

	// Fuzzy fallback
	name, via, score, err = loader.Resolve("employed_box", uiNames)
	require.NoError(t, err)
	assert.Equal(t, "employed", name)
	assert.Equal(t, MethodFuzzy, via)
	assert.Greater(t, score, 0.9)

	// Nothing matches
	_, via, _, err = loader.Resolve("reason_of_application", uiNames)
	assert.ErrorIs(t, err, ErrWidgetNotFound)
	assert.Equal(t, MethodNone, via)
}

func TestLoaderResolveUnresolvedOverride(t *testing.T) {
	loader := NewLoader(map[string]string{"date_of_birth_edit": "gone_widget"})

	_, _, _, err := loader.Resolve("date_of_birth_edit", uiNames)
	assert.ErrorIs(t, err, ErrUnresolvedOverride)

	// Suppressed keys fall back to the remaining strategies
	loader.SuppressKeys = []string{"date_of_birth_edit"}
	name, via, _, err := loader.Resolve("date_of_birth_edit", uiNames)
	require.NoError(t, err)
	assert.Equal(t, MethodFuzzy, via)
	assert.Equal(t, "date_of_birth", name)
}
