package modifier

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fileTable is the structure of the optional modifiers override file. A group
// listed in the file replaces that group's default tokens; omitted groups
// keep their defaults. Placement rules are fixed and not configurable.
type fileTable struct {
	Questions    []string `yaml:"questions"`
	Prepositions []string `yaml:"prepositions"`
	Comparisons  []string `yaml:"comparisons"`
}

// LoadTable loads the modifier table, applying overrides from the YAML file
// at path if it exists. A missing file is not an error and yields the
// built-in defaults.
func LoadTable(path string) (Table, error) {
	table := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Override file is optional
			return table, nil
		}
		return nil, err
	}

	var ft fileTable
	if err := yaml.Unmarshal(data, &ft); err != nil {
		return nil, err
	}

	overrides := map[Group][]string{
		Questions:    ft.Questions,
		Prepositions: ft.Prepositions,
		Comparisons:  ft.Comparisons,
	}
	for i := range table {
		if tokens := overrides[table[i].Group]; len(tokens) > 0 {
			table[i].Tokens = tokens
		}
	}
	return table, nil
}
