//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"
)

func InitializeApplication() (*Application, func(), error) {
	wire.Build(
		infraSet,
		featureSet,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil, nil
}
