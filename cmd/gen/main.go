package main

import (
	"livesales/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/gormdb/query",
	})

	gen.ApplyBasic(model.All()...)

	gen.Execute()
}
