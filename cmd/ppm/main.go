package main

import (
	"github.com/joho/godotenv"

	"github.com/Xiaochen19/powerplantmatching/pkg/interfaces/cli/commands"
)

func main() {
	// A missing .env is fine; PPM_* variables can come from the environment
	_ = godotenv.Load()

	commands.Execute()
}
