// Package main exposes the repo analyzers to golangci-lint as a Go plugin.
//
//	linters-settings:
//	  custom:
//	    enumvalidator:
//	      path: bin/enumvalidator.so
//	      settings:
//	        types: [Entity, Action]
package main

import (
	"fmt"

	"golang.org/x/tools/go/analysis"

	"replyflow.app/api/tools/linters/enumvalidator"
)

// New is looked up by golangci-lint. conf carries the linter's settings block.
func New(conf any) ([]*analysis.Analyzer, error) {
	typeNames, err := enumTypes(conf)
	if err != nil {
		return nil, err
	}
	return []*analysis.Analyzer{enumvalidator.New(typeNames)}, nil
}

func enumTypes(conf any) ([]string, error) {
	settings, _ := conf.(map[string]any)
	raw, ok := settings["types"]
	if !ok {
		return enumvalidator.DefaultTypes, nil
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("enumvalidator: types must be a list, got %T", raw)
	}
	names := make([]string, 0, len(list))
	for _, v := range list {
		name, ok := v.(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("enumvalidator: type names must be non-empty strings, got %v", v)
		}
		names = append(names, name)
	}
	return names, nil
}

// main is required for the package to link; golangci-lint loads it as a plugin.
func main() {}
