package wincher

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/adrianliechti/wincher-mcp/pkg/tool"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Requester performs one API request and returns the raw JSON body.
// *rest.Client satisfies it.
type Requester interface {
	Execute(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error)
}

type Dispatcher struct {
	client Requester
	logger *zap.Logger
}

type Option func(*Dispatcher)

func WithLogger(logger *zap.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

func New(client Requester, options ...Option) *Dispatcher {
	d := &Dispatcher{
		client: client,
		logger: zap.NewNop(),
	}

	for _, o := range options {
		o(d)
	}

	return d
}

// Dispatch runs one invocation and always returns a non-empty text block.
// Failures are rendered as text rather than returned.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]any) string {
	started := time.Now()

	logger := d.logger.With(
		zap.String("invocation", uuid.NewString()),
		zap.String("tool", name),
	)

	text, err := d.invoke(ctx, name, args)

	if err != nil {
		logger.Warn("tool failed",
			zap.String("kind", Kind(err)),
			zap.Duration("duration", time.Since(started)),
			zap.Error(err),
		)

		return FormatError(err)
	}

	logger.Debug("tool succeeded",
		zap.Duration("duration", time.Since(started)),
		zap.Int("bytes", len(text)),
	)

	return text
}

func (d *Dispatcher) invoke(ctx context.Context, name string, args map[string]any) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &panicError{value: r}
		}
	}()

	op, ok := Lookup(name)

	if !ok {
		return "", &UnknownOperationError{Name: name}
	}

	if args == nil {
		args = map[string]any{}
	}

	if err := validate(op, args); err != nil {
		return "", err
	}

	b, ok := bindings[name]

	if !ok {
		return "", fmt.Errorf("no binding for %s", name)
	}

	path, err := expandPath(b.Path, args)

	if err != nil {
		return "", err
	}

	var body any

	if b.Body != nil {
		body = b.Body(args)
	}

	data, err := d.client.Execute(ctx, b.Method, path, nil, body)

	if err != nil {
		return "", err
	}

	return Render(name, data, args)
}

func validate(op Descriptor, args map[string]any) error {
	for _, name := range op.Required() {
		if v, ok := args[name]; !ok || v == nil {
			return &MissingArgumentError{Name: name}
		}
	}

	return nil
}

// Tools exposes the catalog as tools backed by Dispatch.
func (d *Dispatcher) Tools(ctx context.Context) ([]tool.Tool, error) {
	var result []tool.Tool

	for _, op := range Operations() {
		name := op.Name

		result = append(result, tool.Tool{
			Name:        op.Name,
			Description: op.Description,

			Schema: op.Schema(),

			Execute: func(ctx context.Context, args map[string]any) (any, error) {
				return d.Dispatch(ctx, name, args), nil
			},
		})
	}

	return result, nil
}
