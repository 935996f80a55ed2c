package dispatcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmlet/swarmlet/pkg/models"
)

var readonly = []string{CapabilityExecReadonly}

func requireValidationError(t *testing.T, err error) *models.DomainError {
	t.Helper()
	require.Error(t, err)
	var derr *models.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, models.ErrorTypeValidation, derr.Type)
	return derr
}

func TestFullExecAllowsAnything(t *testing.T) {
	full := []string{CapabilityExecFull}
	assert.NoError(t, ValidateCommand("rm -rf /tmp/scratch", full))
	assert.NoError(t, ValidateCommand("bash -c 'echo $(date) | tee log'", full))
}

func TestEmptyCommandRejected(t *testing.T) {
	requireValidationError(t, ValidateCommand("   ", readonly))
}

func TestNoExecCapabilityRejected(t *testing.T) {
	err := requireValidationError(t, ValidateCommand("uptime", []string{CapabilityDocker}))
	assert.Contains(t, err.UserMessage, "capability")
}

func TestReadonlyAllowlist(t *testing.T) {
	allowed := []string{
		"uname -a", "uptime", "date", "whoami", "id", "df -h", "du -sh .",
		"free -m", "ps aux", "top -b -n 1", "hostname", "cat /proc/loadavg",
		"head -n 20 /var/log/syslog", "tail -n 50 /var/log/syslog",
		"ls -la /tmp", "pwd", "env", "printenv PATH", "echo hello",
		"false", "true",
	}
	for _, cmd := range allowed {
		assert.NoError(t, ValidateCommand(cmd, readonly), cmd)
	}

	for _, cmd := range []string{"curl http://example.com", "wget x", "vim /etc/hosts", "nc -l 8080"} {
		err := requireValidationError(t, ValidateCommand(cmd, readonly))
		assert.Contains(t, err.UserMessage, "allowlist", cmd)
	}
}

func TestDestructiveCommandsRejectedByName(t *testing.T) {
	err := requireValidationError(t, ValidateCommand("rm -rf /", readonly))
	assert.Contains(t, err.UserMessage, `"rm"`)
	assert.Contains(t, err.UserMessage, "destructive")

	for _, cmd := range []string{
		"dd if=/dev/zero of=/dev/sda", "shutdown -h now", "reboot",
		"chmod 777 /etc/passwd", "iptables -F", "mount /dev/sdb1 /mnt",
		"kill -9 1", "pkill sshd", "mkfs.ext4 /dev/sdb",
	} {
		requireValidationError(t, ValidateCommand(cmd, readonly))
	}
}

func TestForbiddenMetacharacters(t *testing.T) {
	for _, cmd := range []string{
		"ls; rm -rf /",
		"cat /etc/passwd | grep root",
		"uptime & reboot",
		"echo hi > /etc/motd",
		"cat < /dev/random",
		"echo $HOME",
		"echo (test)",
		"echo `id`",
		"ls \\",
		"uptime\nreboot",
	} {
		err := requireValidationError(t, ValidateCommand(cmd, readonly))
		assert.Contains(t, err.UserMessage, "forbidden character", cmd)
	}
}

func TestArgvZeroUsesLastPathSegment(t *testing.T) {
	// An absolute path cannot smuggle a blocked command past the list.
	err := requireValidationError(t, ValidateCommand("/bin/rm -rf /", readonly))
	assert.Contains(t, err.UserMessage, `"rm"`)
	assert.Contains(t, err.UserMessage, "destructive")

	assert.NoError(t, ValidateCommand("/usr/bin/uptime", readonly))
}

func TestSystemctlStatusOnly(t *testing.T) {
	assert.NoError(t, ValidateCommand("systemctl status nginx", readonly))
	requireValidationError(t, ValidateCommand("systemctl restart nginx", readonly))
	requireValidationError(t, ValidateCommand("systemctl", readonly))
}

func TestJournalctlRequiresNoPager(t *testing.T) {
	assert.NoError(t, ValidateCommand("journalctl -u nginx --no-pager", readonly))
	requireValidationError(t, ValidateCommand("journalctl -u nginx", readonly))
}

func TestDockerNeedsCapabilityAndReadonlySubcommand(t *testing.T) {
	withDocker := []string{CapabilityExecReadonly, CapabilityDocker}

	err := requireValidationError(t, ValidateCommand("docker ps", readonly))
	assert.Contains(t, err.UserMessage, "docker capability")

	for _, cmd := range []string{
		"docker ps", "docker logs web", "docker stats --no-stream",
		"docker inspect web", "docker images", "docker info", "docker version",
	} {
		assert.NoError(t, ValidateCommand(cmd, withDocker), cmd)
	}

	for _, cmd := range []string{"docker rm web", "docker run alpine", "docker exec web sh", "docker"} {
		requireValidationError(t, ValidateCommand(cmd, withDocker))
	}
}
