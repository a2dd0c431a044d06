package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"upgrade-editor/internal/types"
)

// PartDefinitionFileAdapter reads part definitions written as YAML or,
// for files ending in .toml, TOML.
type PartDefinitionFileAdapter struct{}

func NewPartDefinitionFileAdapter() PartDefinitionFileAdapter {
	return PartDefinitionFileAdapter{}
}

func (a PartDefinitionFileAdapter) LoadDefinition(path string) (types.PartDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.PartDefinition{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("part definition not found").
			WithCause(err)
	}
	var definition types.PartDefinition
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &definition); err != nil {
			return types.PartDefinition{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to parse part definition toml").
				WithCause(err)
		}
		return definition, nil
	}
	if err := yaml.Unmarshal(data, &definition); err != nil {
		return types.PartDefinition{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse part definition yaml").
			WithCause(err)
	}
	return definition, nil
}
