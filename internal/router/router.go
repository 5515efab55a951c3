package router

import (
	"github.com/charmbracelet/log"

	"labshell/internal/logger"
	"labshell/internal/parser"
	"labshell/pkg/labtypes"
)

// Router is the single entry point for command routing. It is stateless
// across calls: each Route invocation reads a fresh session snapshot and
// resolves fully before the host accepts the next line.
type Router struct {
	registry   *Registry
	tools      labtypes.ToolInvoker
	privileged labtypes.PrivilegedOps
	logger     *log.Logger
}

// New creates a Router over the given registry and injected capabilities.
func New(registry *Registry, tools labtypes.ToolInvoker, privileged labtypes.PrivilegedOps) *Router {
	return &Router{
		registry:   registry,
		tools:      tools,
		privileged: privileged,
		logger:     logger.NewStyledLogger("Router"),
	}
}

// Route turns one raw input line into an Outcome. Every path answers:
// empty input yields an empty Outcome, every other state yields at least one
// Result, and no failure escapes as a panic or error.
func (r *Router) Route(raw string, session labtypes.SessionState) labtypes.Outcome {
	inv, ok := parser.Parse(raw)
	if !ok {
		return labtypes.Outcome{}
	}

	r.logger.Debug("Routing", "command", inv.Name, "input", raw)

	cmd, found := r.registry.Resolve(inv.Name)
	if !found {
		return labtypes.Single(r.unknownInput(raw, inv.Name))
	}

	if result, allowed := CheckAccess(cmd, session); !allowed {
		r.logger.Debug("Guard rejected", "command", inv.Name)
		return labtypes.Single(result)
	}

	outcome := r.dispatch(cmd, labtypes.ExecContext{
		Args:       inv.Args,
		Session:    session,
		Tools:      r.tools,
		Privileged: r.privileged,
	})
	logger.CommandRouted(inv.Name, len(outcome.Results), outcome.Exit)
	return outcome
}

// dispatch runs the handler with a recover barrier. Handlers receive
// pre-normalized adapter results and are not expected to panic; the barrier
// keeps the router's never-throws contract if one does.
func (r *Router) dispatch(cmd labtypes.Command, ctx labtypes.ExecContext) (outcome labtypes.Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Handler panicked", "command", cmd.Name(), "error", rec)
			outcome = labtypes.Single(labtypes.Errorf("Command %s failed: %v", cmd.Name(), rec))
		}
	}()
	return cmd.Execute(ctx)
}

// unknownInput builds the error Result for input that resolves to no
// registration, distinguishing an unknown command name from input that does
// not look like a command at all.
func (r *Router) unknownInput(raw, name string) labtypes.Result {
	token := SanitizeToken(name)
	if parser.HasSlash(raw) {
		return labtypes.Errorf("Unknown command: /%s. Type /help to list commands.", token)
	}
	return labtypes.Errorf("Unrecognized input: %q is not a command. Commands start with /; type /help to list them.", token)
}

// Registry exposes the routing table, used by the help command and the host
// shell's completion setup.
func (r *Router) Registry() *Registry {
	return r.registry
}
