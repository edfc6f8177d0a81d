package driverservice

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"k8s.io/apimachinery/pkg/util/wait"
)

const (
	defaultPollInterval = 200 * time.Millisecond
	defaultStopTimeout  = 5 * time.Second
)

// Spec describes how to run a WebDriver server executable (chromedriver, geckodriver...).
type Spec struct {
	Name       string
	Executable string
	// Args builds the command line for the port the server must listen on.
	Args func(port int) []string
	Env  []string
}

type Service interface {
	URL() string
	Stop() error
}

type Launcher interface {
	Start(ctx context.Context, spec Spec) (Service, error)
}

type ProcessLauncher struct {
	client       HTTPClient
	pollInterval time.Duration
	stopTimeout  time.Duration
	l            *zap.Logger
}

func NewProcessLauncher(client HTTPClient, l *zap.Logger) *ProcessLauncher {
	return &ProcessLauncher{
		client:       client,
		pollInterval: defaultPollInterval,
		stopTimeout:  defaultStopTimeout,
		l:            l,
	}
}

// Start spawns the executable on a free loopback port and waits until its status endpoint answers
// or ctx is done. The process is stopped again when it does not get ready.
func (p *ProcessLauncher) Start(ctx context.Context, spec Spec) (Service, error) {
	path, err := exec.LookPath(spec.Executable)
	if err != nil {
		return nil, errors.Wrapf(err, "%s executable not found", spec.Name)
	}

	port, err := FreePort()
	if err != nil {
		return nil, err
	}

	sl := p.l.Sugar().With(zap.String("driver", spec.Name), zap.Int("port", port))
	out, err := zap.NewStdLogAt(p.l.Named(spec.Name), zap.DebugLevel)
	if err != nil {
		return nil, err
	}

	var args []string
	if spec.Args != nil {
		args = spec.Args(port)
	}
	cmd := exec.Command(path, args...)
	cmd.Env = append(os.Environ(), spec.Env...)
	cmd.Stdout = out.Writer()
	cmd.Stderr = out.Writer()

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, errors.Wrapf(err, "failed to start %s", spec.Name)
	}

	proc := &Process{
		cmd:         cmd,
		url:         fmt.Sprintf("http://127.0.0.1:%d", port),
		exited:      make(chan struct{}),
		stopTimeout: p.stopTimeout,
		l:           sl,
	}
	go proc.wait()

	if err := p.waitStarted(ctx, proc); err != nil {
		_ = proc.Stop()
		return nil, errors.Wrapf(err, "%s did not get ready", spec.Name)
	}

	sl.Infof("driver process is ready in %v", time.Since(start))
	return proc, nil
}

func (p *ProcessLauncher) waitStarted(ctx context.Context, proc *Process) error {
	var lastErr error
	err := wait.PollUntilContextCancel(ctx, p.pollInterval, true, func(ctx context.Context) (bool, error) {
		select {
		case <-proc.exited:
			return false, errors.Errorf("driver process exited: %v", proc.waitErr)
		default:
		}
		if _, err := CheckStatus(ctx, p.client, proc.url); err != nil {
			lastErr = err
			return false, nil
		}
		return true, nil
	})
	if err != nil && lastErr != nil && ctx.Err() != nil {
		return errors.Wrapf(err, "last error was: %s", lastErr.Error())
	}
	return err
}

// Process is a running driver executable.
type Process struct {
	cmd         *exec.Cmd
	url         string
	exited      chan struct{}
	waitErr     error
	stopOnce    sync.Once
	stopErr     error
	stopTimeout time.Duration
	l           *zap.SugaredLogger
}

func (p *Process) URL() string {
	return p.url
}

// Stop interrupts the process and kills it when it does not exit within the stop timeout.
// It is safe to call Stop more than once.
func (p *Process) Stop() error {
	p.stopOnce.Do(func() {
		p.stopErr = p.stop()
	})
	return p.stopErr
}

func (p *Process) stop() error {
	select {
	case <-p.exited:
		return nil
	default:
	}

	if err := p.cmd.Process.Signal(os.Interrupt); err != nil {
		// interrupt is not available on windows
		if err := p.kill(); err != nil {
			return err
		}
	}

	select {
	case <-p.exited:
	case <-time.After(p.stopTimeout):
		p.l.Warnf("driver process did not exit within %v, killing it", p.stopTimeout)
		if err := p.kill(); err != nil {
			return err
		}
		<-p.exited
	}
	p.l.Debug("driver process stopped")
	return nil
}

func (p *Process) kill() error {
	if err := p.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return errors.Wrap(err, "failed to kill driver process")
	}
	return nil
}

func (p *Process) wait() {
	p.waitErr = p.cmd.Wait()
	close(p.exited)
}

// DefaultHTTPClient is used for readiness checks of local driver processes.
func DefaultHTTPClient() *http.Client {
	return &http.Client{Timeout: 2 * time.Second}
}
