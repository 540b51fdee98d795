package config

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/kulina/kulina-ai/internal/provider"
)

// testKolosalKey builds a syntactically valid kol_ token of the given length.
func testKolosalKey(length int) string {
	return "kol_" + strings.Repeat("a", length-4)
}

func TestResolveCredentialValid(t *testing.T) {
	tests := []struct {
		providerName string
		envVar       string
		value        string
	}{
		{provider.NameKolosal, "TEST_KOLOSAL_KEY", testKolosalKey(450)},
		{provider.NameGoogleAI, "TEST_GOOGLE_KEY", "AIza" + strings.Repeat("b", 35)},
		{provider.NameOpenRouter, "TEST_OPENROUTER_KEY", "sk-or-" + strings.Repeat("c", 40)},
	}

	for _, tt := range tests {
		t.Run(tt.providerName, func(t *testing.T) {
			t.Setenv(tt.envVar, tt.value)

			cred, err := ResolveCredential(tt.providerName, tt.envVar)
			if err != nil {
				t.Fatalf("ResolveCredential: %v", err)
			}
			if cred.Value() != tt.value {
				t.Errorf("value mismatch")
			}
			if cred.Provider() != tt.providerName {
				t.Errorf("provider = %q", cred.Provider())
			}
		})
	}
}

func TestResolveCredentialMissingEnv(t *testing.T) {
	_, err := ResolveCredential(provider.NameKolosal, "TEST_UNSET_VARIABLE")
	if err == nil {
		t.Fatal("expected error for unset variable")
	}

	var cerr *CredentialError
	if !errors.As(err, &cerr) {
		t.Fatalf("error is %T, want *CredentialError", err)
	}
	if cerr.Provider != provider.NameKolosal {
		t.Errorf("provider = %q", cerr.Provider)
	}
	if cerr.EnvVar != "TEST_UNSET_VARIABLE" {
		t.Errorf("env var = %q", cerr.EnvVar)
	}
}

func TestResolveCredentialShapeRejections(t *testing.T) {
	tests := []struct {
		name         string
		providerName string
		value        string
	}{
		{"wrong prefix", provider.NameKolosal, "sk-" + strings.Repeat("a", 450)},
		{"too short", provider.NameKolosal, testKolosalKey(100)},
		{"too long", provider.NameKolosal, testKolosalKey(600)},
		{"illegal characters", provider.NameGoogleAI, "AIza" + strings.Repeat("b", 20) + "!!!" + strings.Repeat("b", 20)},
		{"googleai too short", provider.NameGoogleAI, "AIzaShort"},
		{"openrouter wrong prefix", provider.NameOpenRouter, "sk-" + strings.Repeat("c", 40)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_SHAPE_KEY", tt.value)

			_, err := ResolveCredential(tt.providerName, "TEST_SHAPE_KEY")
			if err == nil {
				t.Fatal("expected shape rejection")
			}
			if !IsCredentialError(err) {
				t.Errorf("error is %T, want credential error", err)
			}
			// Shape errors must describe the mismatch without quoting
			// the credential itself.
			if strings.Contains(err.Error(), tt.value) {
				t.Errorf("error message quotes the credential: %q", err.Error())
			}
		})
	}
}

func TestResolveCredentialStripsWhitespace(t *testing.T) {
	key := testKolosalKey(450)
	t.Setenv("TEST_PADDED_KEY", "  "+key[:200]+"\n"+key[200:]+" \n")

	cred, err := ResolveCredential(provider.NameKolosal, "TEST_PADDED_KEY")
	if err != nil {
		t.Fatalf("ResolveCredential: %v", err)
	}
	if cred.Value() != key {
		t.Errorf("whitespace not stripped")
	}
}

func TestCredentialStringNeverExposesValue(t *testing.T) {
	key := testKolosalKey(450)
	t.Setenv("TEST_STRING_KEY", key)

	cred, err := ResolveCredential(provider.NameKolosal, "TEST_STRING_KEY")
	if err != nil {
		t.Fatalf("ResolveCredential: %v", err)
	}

	rendered := cred.String()
	if strings.Contains(rendered, key) {
		t.Errorf("String() exposes the credential: %q", rendered)
	}
	if !strings.Contains(rendered, "length 450") {
		t.Errorf("String() missing length: %q", rendered)
	}
	if !strings.Contains(rendered, key[:credPrefixLen]) {
		t.Errorf("String() missing fixed prefix: %q", rendered)
	}

	formatted := fmt.Sprintf("%v %s", cred, cred)
	if strings.Contains(formatted, key) {
		t.Errorf("fmt rendering exposes the credential")
	}
}

func TestValidateShapeUnknownProvider(t *testing.T) {
	if err := validateShape("nonsense", "whatever"); err == nil {
		t.Error("expected error for unknown provider")
	}
}
