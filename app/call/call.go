package call

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/adrianliechti/wincher-mcp/pkg/wincher"

	"github.com/adrianliechti/go-cli"
)

func Run(ctx context.Context, d *wincher.Dispatcher, name, input string) error {
	args, err := ParseArgs(input)

	if err != nil {
		return err
	}

	text := d.Dispatch(ctx, name, args)

	cli.Info(strings.TrimRight(text, "\n"))
	return nil
}

// ParseArgs decodes a JSON object of tool arguments. Blank input means none.
func ParseArgs(input string) (map[string]any, error) {
	input = strings.TrimSpace(input)

	if input == "" {
		return map[string]any{}, nil
	}

	var args map[string]any

	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return nil, fmt.Errorf("arguments must be a JSON object: %w", err)
	}

	if args == nil {
		args = map[string]any{}
	}

	return args, nil
}
