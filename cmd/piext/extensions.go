package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/ManuelSelch/pi-agent-demo/pkg/extension"
	"github.com/ManuelSelch/pi-agent-demo/pkg/guard"
	"github.com/ManuelSelch/pi-agent-demo/pkg/presenter"
)

// presenterNotifier adapts the CLI presenter to the host notification
// subsystem so commands invoked locally behave as they do under the host.
type presenterNotifier struct {
	presenter presenter.Presenter
}

func (n *presenterNotifier) Notify(_ context.Context, message string, severity extension.Severity) {
	switch severity {
	case extension.SeverityWarning:
		n.presenter.Warning(message)
	case extension.SeverityError:
		n.presenter.Error(errors.New(message), "extension")
	default:
		n.presenter.Info(message)
	}
}

// newGuard builds the command guard from configuration. Defaults preserve
// the stock behavior: inspect only the bash tool, block only sudo.
func newGuard() (*guard.Guard, error) {
	opts := []guard.Option{}

	if patterns := viper.GetStringSlice("guard.shell_tools"); len(patterns) > 0 {
		opts = append(opts, guard.WithShellTools(patterns...))
	}

	var rules []guard.Rule
	if err := viper.UnmarshalKey("guard.rules", &rules); err != nil {
		return nil, errors.Wrap(err, "invalid guard.rules configuration")
	}
	if len(rules) > 0 {
		opts = append(opts, guard.WithExtraRules(rules...))
	}

	return guard.New(opts...)
}

// newRegistry wires all extensions in this repository against an in-process
// registry, mirroring what the agent host does at load time.
func newRegistry() (*extension.Registry, error) {
	registry := extension.NewRegistry(&presenterNotifier{presenter: out})

	extension.RegisterHello(registry)

	g, err := newGuard()
	if err != nil {
		return nil, err
	}
	g.Register(registry)

	return registry, nil
}
