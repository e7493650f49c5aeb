package config

import (
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()
	if cfg.Padding != DefaultPadding {
		t.Errorf("expected padding %d, got %d", DefaultPadding, cfg.Padding)
	}
	if cfg.NoColor || cfg.Quiet || cfg.Progress {
		t.Error("boolean options must default to false")
	}
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{
			name: "no env keeps defaults",
			env:  map[string]string{},
			want: Config{Padding: DefaultPadding},
		},
		{
			name: "booleans",
			env: map[string]string{
				EnvNoColor:  "true",
				EnvQuiet:    "1",
				EnvProgress: "TRUE",
			},
			want: Config{NoColor: true, Quiet: true, Progress: true, Padding: DefaultPadding},
		},
		{
			name: "falsy values are ignored",
			env:  map[string]string{EnvNoColor: "0", EnvQuiet: "false"},
			want: Config{Padding: DefaultPadding},
		},
		{
			name: "unparsable boolean is ignored",
			env:  map[string]string{EnvQuiet: "yes please"},
			want: Config{Padding: DefaultPadding},
		},
		{
			name: "padding override",
			env:  map[string]string{EnvPadding: "8"},
			want: Config{Padding: 8},
		},
		{
			name: "negative padding is ignored",
			env:  map[string]string{EnvPadding: "-3"},
			want: Config{Padding: DefaultPadding},
		},
		{
			name: "unparsable padding is ignored",
			env:  map[string]string{EnvPadding: "wide"},
			want: Config{Padding: DefaultPadding},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			got := FromEnv(New())
			if *got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, *got)
			}
		})
	}
}
