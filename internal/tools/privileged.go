package tools

import "labshell/pkg/labtypes"

// Privileged bundles the injected privileged business-logic capabilities.
// Each is wrapped in its own Adapter so handlers observe the same normalized
// contract as ordinary tool calls; the access guard treats the commands that
// reach them identically.
type Privileged struct {
	unlock  *Adapter
	install *Adapter
}

// NewPrivileged wraps the account-unlock and agent-install capabilities.
// Either may be nil, in which case its invocations fail with a fixed message.
func NewPrivileged(unlock, install CallFunc) Privileged {
	return Privileged{
		unlock:  NewAdapter(unlock),
		install: NewAdapter(install),
	}
}

// UnlockAccount implements labtypes.PrivilegedOps.
func (p Privileged) UnlockAccount(username string) labtypes.ToolResult {
	return p.unlock.Invoke("security.unlock", map[string]interface{}{"username": username})
}

// InstallAgent implements labtypes.PrivilegedOps.
func (p Privileged) InstallAgent(host string) labtypes.ToolResult {
	return p.install.Invoke("agent.install", map[string]interface{}{"host": host})
}
