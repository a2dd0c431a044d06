package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"upgrade-editor/internal/types"
)

type CraftFileAdapter struct{}

func NewCraftFileAdapter() CraftFileAdapter {
	return CraftFileAdapter{}
}

func (a CraftFileAdapter) LoadCraft(path string) (types.CraftFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.CraftFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("craft file not found").
			WithCause(err)
	}
	var craft types.CraftFile
	if err := yaml.Unmarshal(data, &craft); err != nil {
		return types.CraftFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse craft yaml").
			WithCause(err)
	}
	return craft, nil
}

// SaveCraft writes the craft atomically: temp file in the same directory,
// then rename over the existing file.
func (a CraftFileAdapter) SaveCraft(path string, craft types.CraftFile) error {
	data, err := yaml.Marshal(craft)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode craft yaml").
			WithCause(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create craft directory").
			WithCause(err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write craft file").
			WithCause(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to replace craft file").
			WithCause(err)
	}
	return nil
}
