// Copyright © 2025 The icelang-ls authors

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterExcludes_ByName(t *testing.T) {
	paths := []string{
		"src/main.ice",
		"src/legacy.ice",
		"lib/utils.ice",
	}
	result := filterExcludes(paths, []string{"legacy.ice"})
	assert.Equal(t, []string{"src/main.ice", "lib/utils.ice"}, result)
}

func TestFilterExcludes_ByDirectory(t *testing.T) {
	paths := []string{
		"src/main.ice",
		"build/output.ice",
		"build/sub/deep.ice",
		"lib/utils.ice",
	}
	result := filterExcludes(paths, []string{"build"})
	assert.Equal(t, []string{"src/main.ice", "lib/utils.ice"}, result)
}

func TestFilterExcludes_GlobPattern(t *testing.T) {
	paths := []string{
		"src/main.ice",
		"src/generated_foo.ice",
		"src/generated_bar.ice",
		"lib/utils.ice",
	}
	result := filterExcludes(paths, []string{"generated_*"})
	assert.Equal(t, []string{"src/main.ice", "lib/utils.ice"}, result)
}

func TestFilterExcludes_MultiplePatterns(t *testing.T) {
	paths := []string{
		"src/main.ice",
		"build/output.ice",
		"src/legacy.ice",
		"lib/utils.ice",
	}
	result := filterExcludes(paths, []string{"build", "legacy.ice"})
	assert.Equal(t, []string{"src/main.ice", "lib/utils.ice"}, result)
}

func TestFilterExcludes_EmptyExcludes(t *testing.T) {
	paths := []string{"src/main.ice"}
	result := filterExcludes(paths, nil)
	assert.Equal(t, []string{"src/main.ice"}, result)
}

func TestMatchesAny_FullPath(t *testing.T) {
	// filepath.Match on the full path
	assert.True(t, matchesAny("src/main.ice", []string{"src/*.ice"}))
	assert.False(t, matchesAny("lib/main.ice", []string{"src/*.ice"}))
}

func TestMatchesAny_BaseName(t *testing.T) {
	assert.True(t, matchesAny("deep/nested/legacy.ice", []string{"legacy.ice"}))
}

func TestMatchesAny_Component(t *testing.T) {
	assert.True(t, matchesAny("project/build/output.ice", []string{"build"}))
	assert.False(t, matchesAny("project/src/output.ice", []string{"build"}))
}

func TestSplitPath(t *testing.T) {
	components := splitPath("a/b/c.ice")
	assert.Contains(t, components, "c.ice")
	assert.Contains(t, components, "b")
	assert.Contains(t, components, "a")
}
