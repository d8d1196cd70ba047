package branding

import "testing"

func TestLoadBrandEmptyYAMLKeepsDefaults(t *testing.T) {
	for _, raw := range [][]byte{nil, {}, []byte("\n")} {
		b := loadBrand(raw)

		if b.CLIName != "filadex" {
			t.Errorf("loadBrand(%q).CLIName = %q, want %q", raw, b.CLIName, "filadex")
		}
		if b.EnvPrefix != "FILADEX" {
			t.Errorf("loadBrand(%q).EnvPrefix = %q, want %q", raw, b.EnvPrefix, "FILADEX")
		}
		if b.HomeDir != ".filadex" {
			t.Errorf("loadBrand(%q).HomeDir = %q, want %q", raw, b.HomeDir, ".filadex")
		}
		if b.SlicerName != "BambuStudio" {
			t.Errorf("loadBrand(%q).SlicerName = %q, want %q", raw, b.SlicerName, "BambuStudio")
		}
	}
}

func TestLoadBrandPartialYAMLOverlaysOnlyGivenFields(t *testing.T) {
	b := loadBrand([]byte("cli_name: forkx\n"))

	if b.CLIName != "forkx" {
		t.Errorf("CLIName = %q, want %q", b.CLIName, "forkx")
	}
	if b.EnvPrefix != "FILADEX" {
		t.Errorf("EnvPrefix = %q, want default %q", b.EnvPrefix, "FILADEX")
	}
	if b.RepoURL != "https://github.com/filadex-labs/filadex" {
		t.Errorf("RepoURL = %q, want default kept", b.RepoURL)
	}
}

func TestLoadBrandMalformedYAMLKeepsDefaults(t *testing.T) {
	b := loadBrand([]byte("cli_name: [unclosed"))

	if b.CLIName != "filadex" {
		t.Errorf("CLIName = %q, want default %q after malformed input", b.CLIName, "filadex")
	}
}

func TestAccessorsReturnNonEmpty(t *testing.T) {
	for name, got := range map[string]string{
		"CLIName":     CLIName(),
		"DisplayName": DisplayName(),
		"Description": Description(),
		"HomeDir":     HomeDir(),
		"EnvPrefix":   EnvPrefix(),
		"GoModule":    GoModule(),
		"GitHubRepo":  GitHubRepo(),
		"RepoURL":     RepoURL(),
		"SlicerName":  SlicerName(),
	} {
		if got == "" {
			t.Errorf("%s() returned empty string", name)
		}
	}
}

func TestEnvVarPrefixesSuffix(t *testing.T) {
	if got := EnvVar("PROFILES_ROOT"); got != "FILADEX_PROFILES_ROOT" {
		t.Errorf("EnvVar(PROFILES_ROOT) = %q, want FILADEX_PROFILES_ROOT", got)
	}
}
