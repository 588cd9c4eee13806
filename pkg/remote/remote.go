// Package remote runs short commands on home machines over ssh.
package remote

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
)

// Executor opens a fresh ssh connection per command. Hosts are addressed
// by name or ip, port 22 is assumed unless the host carries one. The login
// user is passed per call because every target machine has its own account.
type Executor struct {
	keyFile     string
	dialTimeout time.Duration
	runTimeout  time.Duration
}

// NewExecutor creates an executor authenticating with the given private key
// file. An empty keyFile falls back to the usual keys under ~/.ssh. Zero
// timeouts default to 2s for the tcp dial and 3s for the whole command.
func NewExecutor(keyFile string, dialTimeout, runTimeout time.Duration) *Executor {
	if dialTimeout == 0 {
		dialTimeout = 2 * time.Second
	}
	if runTimeout == 0 {
		runTimeout = 3 * time.Second
	}
	return &Executor{keyFile: keyFile, dialTimeout: dialTimeout, runTimeout: runTimeout}
}

// Run executes command on host as user and returns its combined stdout.
// The call is bounded by the executor's run timeout and by ctx.
func (e *Executor) Run(ctx context.Context, user, host, command string) (string, error) {
	signer, err := e.loadKey()
	if err != nil {
		return "", fmt.Errorf("load ssh key: %w", err)
	}

	conf := &ssh.ClientConfig{
		User:            user,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), //nolint:gosec // home lan hosts, no known_hosts maintained
		Timeout:         e.dialTimeout,
	}

	addr := host
	if !strings.Contains(addr, ":") {
		addr = net.JoinHostPort(addr, "22")
	}

	ctx, cancel := context.WithTimeout(ctx, e.runTimeout)
	defer cancel()

	type result struct {
		out string
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := e.exec(conf, addr, command)
		done <- result{out: out, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("ssh %s: %w", host, ctx.Err())
	case res := <-done:
		return res.out, res.err
	}
}

// exec dials, opens a session and captures stdout
func (e *Executor) exec(conf *ssh.ClientConfig, addr, command string) (string, error) {
	client, err := ssh.Dial("tcp", addr, conf)
	if err != nil {
		return "", fmt.Errorf("dial %s: %w", addr, err)
	}
	defer client.Close()

	session, err := client.NewSession()
	if err != nil {
		return "", fmt.Errorf("open session: %w", err)
	}
	defer session.Close()

	out, err := session.Output(command)
	if err != nil {
		return "", fmt.Errorf("run %q on %s: %w", command, addr, err)
	}
	return string(out), nil
}

// loadKey reads and parses the private key, probing ~/.ssh when no file is set
func (e *Executor) loadKey() (ssh.Signer, error) {
	path := e.keyFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		for _, name := range []string{"id_ed25519", "id_rsa"} {
			candidate := filepath.Join(home, ".ssh", name)
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			return nil, fmt.Errorf("no ssh key under %s", filepath.Join(home, ".ssh"))
		}
	}

	data, err := os.ReadFile(path) //nolint:gosec // key path comes from local config
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}
	signer, err := ssh.ParsePrivateKey(data)
	if err != nil {
		return nil, fmt.Errorf("parse key %s: %w", path, err)
	}
	return signer, nil
}
