package catalog

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/adrianliechti/wincher-mcp/pkg/markdown"
	"github.com/adrianliechti/wincher-mcp/pkg/wincher"
)

func Run(ctx context.Context) error {
	markdown.Render(os.Stdout, Markdown())
	return nil
}

// Markdown documents every operation with its endpoint and parameters.
func Markdown() string {
	var sb strings.Builder

	sb.WriteString("# Wincher Tools\n\n")
	sb.WriteString("| Tool | Endpoint | Required |\n")
	sb.WriteString("|------|----------|----------|\n")

	for _, op := range wincher.Operations() {
		method, path, _ := wincher.Endpoint(op.Name)

		required := strings.Join(op.Required(), ", ")

		if required == "" {
			required = "-"
		}

		fmt.Fprintf(&sb, "| `%s` | `%s %s` | %s |\n", op.Name, method, path, required)
	}

	for _, op := range wincher.Operations() {
		fmt.Fprintf(&sb, "\n## %s\n\n%s\n", op.Name, op.Description)

		if len(op.Parameters) > 0 {
			sb.WriteString("\n")
		}

		for _, p := range op.Parameters {
			typ := p.Type

			if p.Items != "" {
				typ += " of " + p.Items
			}

			fmt.Fprintf(&sb, "- `%s` (%s): %s\n", p.Name, typ, p.Description)
		}
	}

	return sb.String()
}
