package main

import (
	"github.com/joho/godotenv"

	"github.com/Soumo04/TalentNest/cmd"
)

func main() {
	_ = godotenv.Load()
	cmd.Execute()
}
