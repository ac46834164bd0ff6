package main

import (
	"github.com/kmicklas/ravel/cmd/ravelcheck/internal/fixture"
	"github.com/kmicklas/ravel/cmd/ravelcheck/internal/handler"
	"golang.org/x/tools/go/analysis/unitchecker"
)

func main() {
	unitchecker.Main(fixture.Analyzer, handler.Analyzer)
}
