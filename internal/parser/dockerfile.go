package parser

import (
	"errors"
	"fmt"
	"os"
	"strings"

	dfparser "github.com/moby/buildkit/frontend/dockerfile/parser"
)

// ErrNoInstructions is returned for Dockerfiles without any instruction.
var ErrNoInstructions = errors.New("dockerfile has no instructions")

// Instruction is one parsed Dockerfile instruction.
type Instruction struct {
	Cmd       string   // lower-cased instruction keyword, e.g. "from", "run"
	Flags     []string // e.g. "--platform=linux/amd64"
	Value     []string // instruction arguments
	Original  string   // source text, continuation lines joined
	StartLine int
	EndLine   int
}

// String renders the instruction the way the run log prints it.
func (i Instruction) String() string {
	return fmt.Sprintf("Command: %s, Value: %s", i.Cmd, strings.Join(i.Value, " "))
}

// ParseDockerfile parses the Dockerfile at path with the BuildKit parser and
// returns its top-level instructions in source order.
func ParseDockerfile(path string) ([]Instruction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dockerfile: %w", err)
	}
	defer f.Close()

	result, err := dfparser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse dockerfile: %w", err)
	}

	instructions := make([]Instruction, 0, len(result.AST.Children))
	for _, node := range result.AST.Children {
		inst := Instruction{
			Cmd:       strings.ToLower(node.Value),
			Flags:     node.Flags,
			Original:  node.Original,
			StartLine: node.StartLine,
			EndLine:   node.EndLine,
		}
		for n := node.Next; n != nil; n = n.Next {
			inst.Value = append(inst.Value, n.Value)
		}
		instructions = append(instructions, inst)
	}

	if len(instructions) == 0 {
		return nil, ErrNoInstructions
	}
	return instructions, nil
}
