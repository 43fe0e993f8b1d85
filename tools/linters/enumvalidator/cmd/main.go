package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"replyflow.app/api/tools/linters/enumvalidator"
)

func main() {
	singlechecker.Main(enumvalidator.Analyzer)
}
