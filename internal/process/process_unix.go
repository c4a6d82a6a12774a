//go:build !windows

package process

import (
	"os/exec"
	"syscall"
)

// Isolate places cmd in a new process group and makes context
// cancellation kill the whole group. Call before cmd.Start.
func Isolate(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		KillProcessGroup(cmd.Process.Pid)
		return nil
	}
}

// KillProcessGroup sends SIGKILL to the process group led by pid.
func KillProcessGroup(pid int) {
	// Best-effort; exec falls back to killing the leader.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
