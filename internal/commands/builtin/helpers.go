// Package builtin implements the LabShell command set. Each command
// registers itself with the router's global registry during initialization.
package builtin

import (
	"fmt"
	"strings"

	"labshell/pkg/labtypes"
)

// usageError builds the single error Result returned for missing or invalid
// positional arguments.
func usageError(usage string) labtypes.Outcome {
	return labtypes.Single(labtypes.Errorf("Usage: %s", usage))
}

// adapterError surfaces a normalized tool failure verbatim as an error Result.
func adapterError(result labtypes.ToolResult) labtypes.Outcome {
	return labtypes.Single(labtypes.Error(result.Message))
}

// subcommand splits an argument remainder into its first token and the rest.
func subcommand(args string) (string, string) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return "", ""
	}
	return strings.ToLower(fields[0]), strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(args), fields[0]))
}

// dataString reads a string field out of a tool response payload.
func dataString(data map[string]interface{}, key string) string {
	if data == nil {
		return ""
	}
	s, _ := data[key].(string)
	return s
}

// dataList reads a list of objects out of a tool response payload.
func dataList(data map[string]interface{}, key string) []map[string]interface{} {
	if data == nil {
		return nil
	}
	raw, _ := data[key].([]interface{})
	items := make([]map[string]interface{}, 0, len(raw))
	for _, entry := range raw {
		if m, ok := entry.(map[string]interface{}); ok {
			items = append(items, m)
		}
	}
	return items
}

// itemLine renders one inventory item as "name (status)" with fallbacks for
// partially populated payloads.
func itemLine(item map[string]interface{}) string {
	name := dataString(item, "name")
	if name == "" {
		name = dataString(item, "id")
	}
	if name == "" {
		name = "unnamed"
	}
	if status := dataString(item, "status"); status != "" {
		return fmt.Sprintf("  %s (%s)", name, status)
	}
	return "  " + name
}
