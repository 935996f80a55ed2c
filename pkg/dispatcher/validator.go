// Package dispatcher runs worker jobs: it validates commands against a
// runner's capability set, pushes them over the runner transport, stores
// results, and wakes the waiting supervisor run.
package dispatcher

import (
	"path"
	"strings"

	"github.com/swarmlet/swarmlet/pkg/models"
)

// Runner capability names.
const (
	CapabilityExecFull     = "exec.full"
	CapabilityExecReadonly = "exec.readonly"
	CapabilityDocker       = "docker"
)

// forbiddenChars are shell metacharacters that make a read-only command
// unanalyzable (chaining, redirection, substitution, escaping).
var forbiddenChars = []rune{';', '|', '&', '>', '<', '$', '(', ')', '`', '\n', '\\'}

// destructiveCommands are rejected in read-only mode even before the
// allowlist check, so the rejection can say why.
var destructiveCommands = map[string]bool{
	"rm": true, "rmdir": true, "mkfs": true, "dd": true,
	"shutdown": true, "reboot": true, "halt": true, "poweroff": true,
	"useradd": true, "userdel": true, "usermod": true, "groupadd": true,
	"passwd": true, "chmod": true, "chown": true, "chgrp": true,
	"iptables": true, "ip6tables": true, "ufw": true, "firewall-cmd": true,
	"mount": true, "umount": true, "fdisk": true, "parted": true,
	"kill": true, "killall": true, "pkill": true,
}

// readonlyAllowlist is the closed set of commands a read-only runner may
// execute.
var readonlyAllowlist = map[string]bool{
	"uname": true, "uptime": true, "date": true, "whoami": true, "id": true,
	"df": true, "du": true, "free": true, "ps": true, "top": true,
	"hostname": true, "cat": true, "head": true, "tail": true, "ls": true,
	"pwd": true, "env": true, "printenv": true, "echo": true,
	"false": true, "true": true,
	"systemctl": true, "journalctl": true, "docker": true,
}

// dockerReadonlySubcommands are the docker subcommands allowed in
// read-only mode.
var dockerReadonlySubcommands = map[string]bool{
	"ps": true, "logs": true, "stats": true, "inspect": true,
	"images": true, "info": true, "version": true,
}

// ValidateCommand checks a command against a runner's capability set
// before any dispatch attempt. exec.full allows anything; exec.readonly
// applies the metacharacter scan, the destructive blocklist, the
// read-only allowlist, and the per-command subcommand rules. Rejections
// are validation_error DomainErrors naming the offending command.
func ValidateCommand(command string, capabilities []string) error {
	trimmed := strings.TrimSpace(command)
	if trimmed == "" {
		return models.NewValidationError("command is empty")
	}

	caps := make(map[string]bool, len(capabilities))
	for _, c := range capabilities {
		caps[c] = true
	}

	if caps[CapabilityExecFull] {
		return nil
	}
	if !caps[CapabilityExecReadonly] {
		return models.NewValidationError("runner has no exec capability")
	}

	for _, ch := range forbiddenChars {
		if strings.ContainsRune(command, ch) {
			return models.NewValidationError("command contains forbidden character %q", string(ch))
		}
	}

	fields := strings.Fields(trimmed)
	argv0 := fields[0]
	if strings.Contains(argv0, "/") {
		argv0 = path.Base(argv0)
	}

	if destructiveCommands[argv0] {
		return models.NewValidationError("command %q is destructive and not allowed on a read-only runner", argv0)
	}
	if !readonlyAllowlist[argv0] {
		return models.NewValidationError("command %q is not in the read-only allowlist", argv0)
	}

	switch argv0 {
	case "systemctl":
		if len(fields) < 2 || fields[1] != "status" {
			return models.NewValidationError("systemctl only allows the status subcommand on a read-only runner")
		}
	case "journalctl":
		if !containsField(fields, "--no-pager") {
			return models.NewValidationError("journalctl requires --no-pager on a read-only runner")
		}
	case "docker":
		if !caps[CapabilityDocker] {
			return models.NewValidationError("command %q requires the docker capability", argv0)
		}
		if len(fields) < 2 || !dockerReadonlySubcommands[fields[1]] {
			return models.NewValidationError("docker subcommand is not allowed on a read-only runner")
		}
	}

	return nil
}

func containsField(fields []string, want string) bool {
	for _, f := range fields {
		if f == want {
			return true
		}
	}
	return false
}
