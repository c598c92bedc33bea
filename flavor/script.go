package flavor

import (
	"context"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/inkduel/prefabs"
)

// Script generates the line from an embedded tengo script, the same way the
// engine scripts other data-driven behavior. The script receives the report
// as globals and must assign the result to `line`.
type Script struct {
	src []byte
}

// NewScript loads flavor.tengo through the prefab loader (disk override
// first, then the embedded copy).
func NewScript() (*Script, error) {
	src, err := prefabs.LoadScript("flavor.tengo")
	if err != nil {
		return nil, fmt.Errorf("flavor: load script: %w", err)
	}
	return &Script{src: src}, nil
}

// NewScriptSource builds a generator from raw script source.
func NewScriptSource(src []byte) *Script {
	return &Script{src: src}
}

func (s *Script) Line(ctx context.Context, r Report) (string, error) {
	script := tengo.NewScript(s.src)
	script.SetImports(stdlib.GetModuleMap("fmt", "math", "rand", "text"))
	_ = script.Add("winner_name", r.WinnerName)
	_ = script.Add("winner_style", r.WinnerStyle)
	_ = script.Add("loser_name", r.LoserName)
	_ = script.Add("loser_style", r.LoserStyle)
	_ = script.Add("winner_hp", r.WinnerHP)
	_ = script.Add("winner_max_hp", r.WinnerMaxHP)
	_ = script.Add("elapsed_seconds", r.ElapsedSeconds)

	compiled, err := script.RunContext(ctx)
	if err != nil {
		return "", fmt.Errorf("flavor: run script: %w", err)
	}
	line := compiled.Get("line").String()
	if line == "" || line == "<undefined>" {
		return "", fmt.Errorf("flavor: script produced no line")
	}
	return line, nil
}
