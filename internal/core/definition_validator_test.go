package core

import (
	"context"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"

	"upgrade-editor/internal/types"
)

func TestValidateDefinition(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.PartDefinition)
		wantErr bool
		code    errbuilder.ErrCode
	}{
		{name: "valid", mutate: func(*types.PartDefinition) {}},
		{name: "empty part name", mutate: func(d *types.PartDefinition) { d.Name = " " }, wantErr: true, code: errbuilder.CodeInvalidArgument},
		{name: "empty module name", mutate: func(d *types.PartDefinition) { d.Modules[0].Name = "" }, wantErr: true, code: errbuilder.CodeInvalidArgument},
		{name: "unknown kind", mutate: func(d *types.PartDefinition) { d.Modules[1].Kind = "resource" }, wantErr: true, code: errbuilder.CodeInvalidArgument},
		{name: "separator in name", mutate: func(d *types.PartDefinition) { d.Modules[0].Upgrades[0].Name = "A,B" }, wantErr: true, code: errbuilder.CodeInvalidArgument},
		{name: "sentinel name", mutate: func(d *types.PartDefinition) { d.Modules[0].Upgrades[0].Name = "None" }, wantErr: true, code: errbuilder.CodeInvalidArgument},
		{name: "unnamed upgrade", mutate: func(d *types.PartDefinition) { d.Modules[2].Upgrades[0].Name = "" }, wantErr: true, code: errbuilder.CodeInvalidArgument},
		{name: "duplicate in module", mutate: func(d *types.PartDefinition) { d.Modules[0].Upgrades[1].Name = "A" }, wantErr: true, code: errbuilder.CodeAlreadyExists},
	}
	validator := NewDefinitionValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			definition := tankDefinition()
			tt.mutate(&definition)
			err := validator.ValidateDefinition(context.Background(), definition)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Equal(t, tt.code, errbuilder.CodeOf(err))
		})
	}
}
