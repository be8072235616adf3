package modifier

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSpecQueries(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		seed string
		want []string
	}{
		{
			name: "prefix placement",
			spec: Spec{Group: Questions, Tokens: []string{"what", "why"}, Placement: Prefix},
			seed: "laptop",
			want: []string{"what laptop", "why laptop"},
		},
		{
			name: "suffix placement",
			spec: Spec{Group: Prepositions, Tokens: []string{"for"}, Placement: Suffix},
			seed: "laptop",
			want: []string{"laptop for"},
		},
		{
			name: "both placements, suffix form first per token",
			spec: Spec{Group: Comparisons, Tokens: []string{"vs", "like"}, Placement: Both},
			seed: "laptop",
			want: []string{"laptop vs", "vs laptop", "laptop like", "like laptop"},
		},
		{
			name: "no tokens yields the bare seed",
			spec: Spec{Group: Bare},
			seed: "laptop",
			want: []string{"laptop"},
		},
		{
			name: "multi-word seed",
			spec: Spec{Group: Questions, Tokens: []string{"what"}, Placement: Prefix},
			seed: "best laptop",
			want: []string{"what best laptop"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.spec.Queries(tt.seed)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Queries(%q) = %v, want %v", tt.seed, got, tt.want)
			}
		})
	}
}

func TestDefaultTableShape(t *testing.T) {
	table := Default()

	wantOrder := Order()
	if len(table) != len(wantOrder) {
		t.Fatalf("default table has %d groups, want %d", len(table), len(wantOrder))
	}
	for i, spec := range table {
		if spec.Group != wantOrder[i] {
			t.Errorf("group %d = %q, want %q", i, spec.Group, wantOrder[i])
		}
	}

	if table[0].Placement != Prefix {
		t.Errorf("Questions placement = %v, want Prefix", table[0].Placement)
	}
	if table[1].Placement != Both || table[2].Placement != Both {
		t.Error("Prepositions and Comparisons must use Both placement")
	}
	if len(table[3].Tokens) != 0 {
		t.Errorf("Bare group has tokens %v, want none", table[3].Tokens)
	}
}

func TestLoadTableMissingFileUsesDefaults(t *testing.T) {
	table, err := LoadTable(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if !reflect.DeepEqual(table, Default()) {
		t.Error("missing file should yield the default table")
	}
}

func TestLoadTableOverridesListedGroups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modifiers.yaml")
	content := "questions: [what, why]\ncomparisons: [vs]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}

	if got := table[0].Tokens; !reflect.DeepEqual(got, []string{"what", "why"}) {
		t.Errorf("Questions tokens = %v, want [what why]", got)
	}
	if got := table[2].Tokens; !reflect.DeepEqual(got, []string{"vs"}) {
		t.Errorf("Comparisons tokens = %v, want [vs]", got)
	}
	// Omitted group keeps its defaults.
	if got, want := table[1].Tokens, Default()[1].Tokens; !reflect.DeepEqual(got, want) {
		t.Errorf("Prepositions tokens = %v, want defaults %v", got, want)
	}
	// Placement is never overridden.
	if table[0].Placement != Prefix {
		t.Error("override must not change placement")
	}
}

func TestLoadTableInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modifiers.yaml")
	if err := os.WriteFile(path, []byte("questions: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTable(path); err == nil {
		t.Error("expected an error for invalid YAML")
	}
}
