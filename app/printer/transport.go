package printer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	"github.com/google/uuid"
)

// Transport failure taxonomy. Every transport error wraps exactly one
// of these sentinels so the API layer can tell a misconfiguration from
// a transient failure without parsing messages.
var (
	ErrDeviceUnavailable  = errors.New("printer device unavailable")
	ErrPermissionDenied   = errors.New("printer device permission denied")
	ErrWriteFailed        = errors.New("printer write failed")
	ErrSpoolerUnavailable = errors.New("print spooler unavailable")
	ErrSpoolRejected      = errors.New("print job rejected by spooler")
)

// Status reports whether the output path is currently usable.
type Status struct {
	Ready  bool   `json:"ready"`
	Detail string `json:"detail"`
}

// Transport delivers an encoded job to a physical or logical output.
// A nil error means the job was accepted for printing, not that paper
// came out; neither strategy polls for completion. Reprints are new,
// independent jobs; no dedupe state is kept.
type Transport interface {
	// Print sends the raw byte buffer and returns an opaque job id.
	Print(ctx context.Context, data []byte) (string, error)
	// Status checks reachability without sending a job. It never
	// returns an error: unreachable means Ready=false with detail.
	Status(ctx context.Context) Status
}

// Transport modes, selected by deployment configuration.
const (
	ModeDevice  = "device"
	ModeSpooler = "spooler"
)

// New builds the transport for the configured mode.
func New(mode, devicePath, queue string) (Transport, error) {
	switch mode {
	case ModeDevice, "":
		if devicePath == "" {
			return nil, fmt.Errorf("printer: device path required for device mode")
		}
		return &DeviceTransport{Path: devicePath}, nil
	case ModeSpooler:
		if queue == "" {
			return nil, fmt.Errorf("printer: queue name required for spooler mode")
		}
		return &SpoolerTransport{Queue: queue}, nil
	default:
		return nil, fmt.Errorf("printer: unknown transport mode %q (use device or spooler)", mode)
	}
}

// DeviceTransport writes the job straight to a printer device file,
// e.g. /dev/usb/lp0. The OS serializes concurrent writers; a write
// either succeeds whole or the caller re-renders and resends.
type DeviceTransport struct {
	Path string
}

func (t *DeviceTransport) Print(_ context.Context, data []byte) (string, error) {
	f, err := os.OpenFile(t.Path, os.O_WRONLY, 0)
	if err != nil {
		return "", classifyDeviceError(t.Path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return "", fmt.Errorf("%w: writing %s: %v", ErrWriteFailed, t.Path, err)
	}
	return uuid.NewString(), nil
}

func (t *DeviceTransport) Status(_ context.Context) Status {
	if _, err := os.Stat(t.Path); err != nil {
		return Status{Ready: false, Detail: fmt.Sprintf("printer device not found at %s", t.Path)}
	}
	f, err := os.OpenFile(t.Path, os.O_WRONLY, 0)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return Status{Ready: false, Detail: fmt.Sprintf("no write permission on %s (add the user to the lp group)", t.Path)}
		}
		return Status{Ready: false, Detail: fmt.Sprintf("printer device not accessible: %v", err)}
	}
	f.Close()
	return Status{Ready: true, Detail: fmt.Sprintf("printer device %s is writable", t.Path)}
}

func classifyDeviceError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: no printer at %s", ErrDeviceUnavailable, path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s (add the user to the lp group)", ErrPermissionDenied, path)
	default:
		return fmt.Errorf("%w: opening %s: %v", ErrWriteFailed, path, err)
	}
}

// SpoolerTransport hands the job to the OS print queue via lp(1) in
// raw mode and parses the assigned job id from its output.
type SpoolerTransport struct {
	Queue string
}

func (t *SpoolerTransport) Print(ctx context.Context, data []byte) (string, error) {
	cmd := exec.CommandContext(ctx, "lp", "-d", t.Queue, "-o", "raw")
	cmd.Stdin = bytes.NewReader(data)
	output, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: queue %s: %s", ErrSpoolRejected, t.Queue, firstLine(output))
		}
		return "", fmt.Errorf("%w: %v", ErrSpoolerUnavailable, err)
	}
	return parseJobID(string(output)), nil
}

// parseJobID extracts the job id from lp output shaped like
// "request id is PACS-42 (1 file(s))". If the shape is unfamiliar the
// raw first line stands in; the job was accepted either way.
func parseJobID(output string) string {
	line := firstLine([]byte(output))
	const marker = "request id is "
	if idx := strings.Index(line, marker); idx != -1 {
		rest := line[idx+len(marker):]
		if fields := strings.Fields(rest); len(fields) > 0 {
			return fields[0]
		}
	}
	return line
}

func (t *SpoolerTransport) Status(ctx context.Context) Status {
	cmd := exec.CommandContext(ctx, "lpstat", "-p", t.Queue)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Status{Ready: false, Detail: fmt.Sprintf("spooler not reachable (is CUPS running?): %v", err)}
	}
	// lpstat prints "printer NAME is idle. enabled since ..." for a
	// healthy queue and "disabled" for a stopped one.
	text := string(output)
	if strings.Contains(text, "disabled") {
		return Status{Ready: false, Detail: fmt.Sprintf("queue %s is disabled", t.Queue)}
	}
	if strings.Contains(text, "idle") || strings.Contains(text, "enabled") {
		return Status{Ready: true, Detail: fmt.Sprintf("queue %s is ready", t.Queue)}
	}
	return Status{Ready: false, Detail: strings.TrimSpace(firstLine(output))}
}

func firstLine(output []byte) string {
	s := strings.TrimSpace(string(output))
	if idx := strings.IndexByte(s, '\n'); idx != -1 {
		return s[:idx]
	}
	return s
}
