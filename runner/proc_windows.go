//go:build windows

package runner

import (
	"os/exec"
	"strconv"
)

// setProcAttr routes cancellation through taskkill so the provider CLI's
// children are terminated too (Windows has no Setpgid).
func setProcAttr(cmd *exec.Cmd) {
	cmd.Cancel = func() error {
		return killProcessTree(cmd)
	}
}

// killProcessTree kills the process and its children using taskkill.
func killProcessTree(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	kill := exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(cmd.Process.Pid))
	if err := kill.Run(); err != nil {
		return cmd.Process.Kill()
	}
	return nil
}
