package styles

import (
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/numfield/internal/config"
)

func TestSelectTheme(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.ThemeConfig
		want Theme
	}{
		{
			name: "empty config picks default",
			cfg:  config.ThemeConfig{},
			want: DefaultTheme,
		},
		{
			name: "named dark family",
			cfg:  config.ThemeConfig{Name: "dracula"},
			want: DraculaTheme,
		},
		{
			name: "light variant",
			cfg:  config.ThemeConfig{Name: "nord", Variant: "light"},
			want: NordLightTheme,
		},
		{
			name: "dark variant",
			cfg:  config.ThemeConfig{Name: "nord", Variant: "dark"},
			want: NordTheme,
		},
		{
			name: "light variant falls back when missing",
			cfg:  config.ThemeConfig{Name: "dracula", Variant: "light"},
			want: DraculaTheme,
		},
		{
			name: "unknown family falls back to default",
			cfg:  config.ThemeConfig{Name: "solarized"},
			want: DefaultTheme,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := selectTheme(tt.cfg); got != tt.want {
				t.Errorf("selectTheme(%+v) = %+v, want %+v", tt.cfg, got, tt.want)
			}
		})
	}
}

func TestInitOverrides(t *testing.T) {
	defer func() { currentTheme = DefaultTheme }()

	Init(config.ThemeConfig{Name: "nord", Accent: "#ff0000"})

	got := Current()
	if got.Accent != lipgloss.Color("#ff0000") {
		t.Errorf("Accent = %v, want override #ff0000", got.Accent)
	}
	if got.Primary != NordTheme.Primary {
		t.Errorf("Primary = %v, want nord primary %v", got.Primary, NordTheme.Primary)
	}
}

func TestFamilyNames(t *testing.T) {
	names := FamilyNames()
	if len(names) != len(themeFamilies) {
		t.Fatalf("FamilyNames() returned %d names, want %d", len(names), len(themeFamilies))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("FamilyNames() not sorted: %q before %q", names[i-1], names[i])
		}
	}
}
