package projstat

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestClassify(t *testing.T) {
	cfg := NewConfiguration()

	tests := []struct {
		ext  string
		want string
	}{
		{"jpg", "image"},
		{"gif", "image"},
		{"woff", "font"},
		{"xyz", "xyz"},
		{"", ""},
		{"JPG", "JPG"},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.Classify(tt.ext))
		})
	}
}

func TestClassify_FirstRegisteredTypeWins(t *testing.T) {
	cfg := NewConfiguration()
	cfg.AddType("raster", "png", "bmp")

	assert.Equal(t, "image", cfg.Classify("png"))

	cfg.RemoveType("image")
	assert.Equal(t, "raster", cfg.Classify("png"))
	assert.Equal(t, "jpg", cfg.Classify("jpg"))
}

func TestExtensionList_AddRemove(t *testing.T) {
	list := ExtensionList{"gitignore", "git"}

	assert.Equal(t, 2, list.Add("js", "js"))
	assert.Equal(t, ExtensionList{"gitignore", "git", "js", "js"}, list)

	assert.Equal(t, 2, list.Remove("js"))
	assert.Equal(t, ExtensionList{"gitignore", "git"}, list)

	assert.Equal(t, 0, list.Remove("missing"))
	assert.Equal(t, 0, list.Remove([]string{}...))
	assert.Len(t, list, 2)

	assert.Equal(t, 2, list.Remove())
	assert.Empty(t, list)
	assert.NotNil(t, list)
}

func TestExtensionList_AddThenRemoveRestoresLength(t *testing.T) {
	tests := []struct {
		name string
		exts []string
	}{
		{"single", []string{"php"}},
		{"several", []string{"php", "css", "h"}},
		{"duplicates", []string{"php", "php"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfiguration()
			before := len(cfg.Source)

			added := cfg.AddSource(tt.exts...)
			removed := cfg.RemoveSource(tt.exts...)

			assert.Equal(t, len(tt.exts), added)
			assert.Equal(t, added, removed)
			assert.Len(t, cfg.Source, before)
		})
	}
}

func TestConfiguration_RemoveIgnoreWithoutArgumentsClears(t *testing.T) {
	cfg := NewConfiguration()

	assert.Equal(t, 2, cfg.RemoveIgnore())
	assert.Empty(t, cfg.Ignore)
}

func TestConfiguration_AddTypeReplacesInPlace(t *testing.T) {
	cfg := NewConfiguration()
	cfg.AddType("docs", "md")
	cfg.AddType("image", "svg")

	require.Len(t, cfg.Types, 3)
	assert.Equal(t, "image", cfg.Types[0].Name)
	assert.Equal(t, []string{"svg"}, cfg.Types[0].Extensions)
	assert.Equal(t, "docs", cfg.Types[2].Name)

	exts, ok := cfg.Types.Lookup("docs")
	assert.True(t, ok)
	assert.Equal(t, []string{"md"}, exts)
}

func TestConfiguration_RemoveTypeMissingIsNoop(t *testing.T) {
	cfg := NewConfiguration()
	cfg.RemoveType("missing")

	assert.Len(t, cfg.Types, 2)
}

func TestConfiguration_Clone(t *testing.T) {
	cfg := NewConfiguration()
	clone := cfg.Clone()

	clone.AddIgnore("log")
	clone.Types[0].Extensions[0] = "tiff"
	clone.AddType("docs", "md")

	assert.Equal(t, NewConfiguration(), cfg)
}

func TestTypeMap_MarshalJSONKeepsOrder(t *testing.T) {
	cfg := NewConfiguration()
	cfg.AddType("cpp", "cpp", "h")
	cfg.AddType("archive")

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"ignore": ["gitignore", "git"],
		"source": [],
		"types": {
			"image": ["jpg", "png", "bmp", "gif"],
			"font": ["eot", "ttf", "woff"],
			"cpp": ["cpp", "h"],
			"archive": []
		}
	}`, string(data))
	assert.Contains(t, string(data), `"types":{"image":["jpg","png","bmp","gif"],"font":["eot","ttf","woff"],"cpp"`)
}

func TestTypeMap_MarshalYAMLKeepsOrder(t *testing.T) {
	cfg := NewConfiguration()
	cfg.AddType("cpp", "cpp", "h")

	data, err := yaml.Marshal(cfg.Types)
	require.NoError(t, err)

	assert.Equal(t, "image: [jpg, png, bmp, gif]\nfont: [eot, ttf, woff]\ncpp: [cpp, h]\n", string(data))
}

func TestProfiles(t *testing.T) {
	assert.Equal(t, []string{ProfileBase, ProfileWeb}, Profiles())

	cfg, err := NewProfileConfiguration(ProfileWeb)
	require.NoError(t, err)

	assert.Equal(t, ExtensionList{"gitignore", "git", "htaccess"}, cfg.Ignore)
	assert.Equal(t, ExtensionList{"js", "php", "css", "cpp", "h"}, cfg.Source)
	assert.Equal(t, "cpp", cfg.Classify("h"))
	assert.Equal(t, "image", cfg.Classify("png"))

	base, err := NewProfileConfiguration(" BASE ")
	require.NoError(t, err)
	assert.Equal(t, NewConfiguration(), base)

	_, err = NewProfileConfiguration("amp")
	require.ErrorIs(t, err, ErrUnknownProfile)
}
