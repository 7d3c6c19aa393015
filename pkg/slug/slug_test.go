package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Electronics", "electronics"},
		{"spaces", "Home And Garden", "home-and-garden"},
		{"symbols", "Electronics & Gadgets!", "electronics-gadgets"},
		{"diacritics", "Café au Lait", "cafe-au-lait"},
		{"surrounding whitespace", "  Trimmed  ", "trimmed"},
		{"multiple hyphens", "a -- b", "a-b"},
		{"leading trailing hyphens", "-abc-", "abc"},
		{"digits", "Top 10 Picks", "top-10-picks"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Make(tc.input))
		})
	}
}

func TestMakeShape(t *testing.T) {
	inputs := []string{
		"Electronics & Gadgets!",
		"  --Weird__ input--  ",
		"Ünïcödé Nörmälïzätïön",
		"a          b",
		"UPPER lower MiXeD 42",
	}

	for _, input := range inputs {
		got := Make(input)
		if got == "" {
			continue
		}
		assert.True(t, IsValid(got), "Make(%q) = %q is not slug-shaped", input, got)
		assert.False(t, strings.HasPrefix(got, "-"))
		assert.False(t, strings.HasSuffix(got, "-"))
		assert.NotContains(t, got, "--")
	}
}

func TestMakeUnique(t *testing.T) {
	assert.Equal(t, "phones", MakeUnique("Phones", nil))
	assert.Equal(t, "phones-1", MakeUnique("Phones", []string{"phones"}))
	assert.Equal(t, "phones-3", MakeUnique("Phones", []string{"phones", "phones-1", "phones-2"}))
}

func TestWithSuffix(t *testing.T) {
	assert.Equal(t, "blue-shirt-xl", WithSuffix("Blue Shirt", "XL"))
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("electronics-gadgets"))
	assert.True(t, IsValid("a1"))
	assert.False(t, IsValid("Has Upper"))
	assert.False(t, IsValid("-leading"))
	assert.False(t, IsValid("trailing-"))
	assert.False(t, IsValid("double--hyphen"))
	assert.False(t, IsValid(""))
}
