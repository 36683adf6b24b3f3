package projstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Configuration(t *testing.T) {
	tests := []struct {
		name       string
		options    Options
		wantIgnore ExtensionList
		wantSource ExtensionList
		wantTypes  []string
	}{
		{
			name:       "defaults to base profile",
			options:    Options{},
			wantIgnore: ExtensionList{"gitignore", "git"},
			wantSource: ExtensionList{},
			wantTypes:  []string{"image", "font"},
		},
		{
			name:       "web profile",
			options:    Options{Profile: ProfileWeb},
			wantIgnore: ExtensionList{"gitignore", "git", "htaccess"},
			wantSource: ExtensionList{"js", "php", "css", "cpp", "h"},
			wantTypes:  []string{"image", "font", "cpp"},
		},
		{
			name: "clear then add",
			options: Options{
				Profile:     ProfileWeb,
				ClearIgnore: true,
				ClearSource: true,
				Ignore:      []string{"log"},
				Source:      []string{"go"},
			},
			wantIgnore: ExtensionList{"log"},
			wantSource: ExtensionList{"go"},
			wantTypes:  []string{"image", "font", "cpp"},
		},
		{
			name: "remove extensions and types",
			options: Options{
				Profile:      ProfileWeb,
				RemoveIgnore: []string{"git"},
				RemoveSource: []string{"cpp", "h"},
				RemoveTypes:  []string{"font", "cpp"},
			},
			wantIgnore: ExtensionList{"gitignore", "htaccess"},
			wantSource: ExtensionList{"js", "php", "css"},
			wantTypes:  []string{"image"},
		},
		{
			name: "types added in name order",
			options: Options{
				Types: map[string][]string{"web": {"html", "css"}, "docs": {"md"}},
			},
			wantIgnore: ExtensionList{"gitignore", "git"},
			wantSource: ExtensionList{},
			wantTypes:  []string{"image", "font", "docs", "web"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := tt.options.Configuration()
			require.NoError(t, err)

			assert.Equal(t, tt.wantIgnore, cfg.Ignore)
			assert.Equal(t, tt.wantSource, cfg.Source)

			names := make([]string, 0, len(cfg.Types))
			for _, group := range cfg.Types {
				names = append(names, group.Name)
			}

			assert.Equal(t, tt.wantTypes, names)
		})
	}
}

func TestOptions_ConfigurationUnknownProfile(t *testing.T) {
	_, err := Options{Profile: "lamp"}.Configuration()
	require.ErrorIs(t, err, ErrUnknownProfile)
}
