//go:build !windows

package runner

import (
	"os/exec"
	"syscall"
)

// setProcAttr configures the command to create a new process group so
// cancellation reaches the provider CLI's children too.
func setProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return killProcessTree(cmd)
	}
}

// killProcessTree signals the whole process group.
func killProcessTree(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	if err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL); err != nil {
		return cmd.Process.Kill()
	}
	return nil
}
