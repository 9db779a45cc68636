// Package host implements a Chrome native messaging host: a long-lived
// process that exchanges length-prefixed JSON messages with a browser over
// its standard streams, and that registers itself with the browser through
// a manifest file plus a discovery-store record pointing at it.
//
// Create a Host with New(), provide a Processor for incoming messages, and
// run the blocking Listen() loop.  First-run setup is GenerateManifest()
// followed by Register(); both are idempotent, as is UnRegister().
package host

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mitosagi/NativeMessaging/channel"
	"github.com/mitosagi/NativeMessaging/manifest"
	"github.com/mitosagi/NativeMessaging/store"
)

// Message is one native messaging payload.  See channel.Message.
type Message = channel.Message

// confirmationKey is the field under which a confirmation receipt carries
// the message it acknowledges.
const confirmationKey = "original"

// ErrNotRegistered reports a Listen() call on a host with no current
// discovery-store record.  A host Chrome launched is necessarily
// registered, so hitting this means the host was started by hand or its
// registration points at a stale manifest.
var ErrNotRegistered = errors.New("host: not registered with the browser")

// ErrNoProcessor reports a Listen() call on a host constructed without a
// Processor.
var ErrNoProcessor = errors.New("host: no message processor configured")

// Processor handles messages received from the browser.  It is invoked
// once per message, after any confirmation receipt has been written to the
// output stream.
type Processor interface {
	ProcessReceivedMessage(Message)
}

// Host owns the receive loop and the registration lifecycle for one native
// messaging host.  Its identity (hostname) and manifest path are fixed at
// construction; the only mutable state is the open channel during Listen.
type Host struct {
	hostname     string
	manifestPath string
	execPath     string
	confirm      bool
	system       bool

	ch   *channel.Channel
	st   store.Store
	log  *slog.Logger
	proc Processor
}

// Option configures a Host at construction.
type Option func(*Host)

// WithConfirmationReceipt makes the host acknowledge every received
// message by echoing it back, wrapped under "original", before the
// processor runs.
func WithConfirmationReceipt() Option {
	return func(h *Host) { h.confirm = true }
}

// WithStreams substitutes the byte streams the host talks to the browser
// over.  The default is the process's stdin and stdout; tests inject
// in-memory pipes.
func WithStreams(in io.Reader, out io.Writer) Option {
	return func(h *Host) { h.ch = channel.New(in, out) }
}

// WithStore substitutes the discovery store.  The default is the
// platform's real store (the registry on Windows, a records file
// elsewhere).
func WithStore(s store.Store) Option {
	return func(h *Host) { h.st = s }
}

// WithProcessor sets the handler invoked for each received message.
// Listen() fails without one.
func WithProcessor(p Processor) Option {
	return func(h *Host) { h.proc = p }
}

// WithLogger sets the diagnostic logger.  Hosts must log to stderr or a
// file: stdout carries the wire protocol.
func WithLogger(log *slog.Logger) Option {
	return func(h *Host) { h.log = log }
}

// WithInstallDir overrides the directory the manifest lives in.  The
// manifest path is always <dir>/<hostname>.json.
func WithInstallDir(dir string) Option {
	return func(h *Host) { h.manifestPath = manifest.PathFor(dir, h.hostname) }
}

// WithSystemInstall targets the machine-wide discovery store and manifest
// directory instead of the per-user ones.  Registration then typically
// needs elevated privileges.
func WithSystemInstall() Option {
	return func(h *Host) { h.system = true }
}

// WithExecutable overrides the executable path recorded in generated
// manifests.  The default is the running binary.
func WithExecutable(path string) Option {
	return func(h *Host) { h.execPath = path }
}

// New returns a Host with the given immutable hostname.  The hostname must
// follow Chrome's host-name grammar (dot-separated lowercase
// alphanumerics and underscores).
func New(hostname string, opts ...Option) (*Host, error) {
	if !manifest.ValidateName(hostname) {
		return nil, fmt.Errorf("host: invalid hostname %q", hostname)
	}

	h := &Host{
		hostname: hostname,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}

	if h.ch == nil {
		h.ch = channel.New(os.Stdin, os.Stdout)
	}
	if h.st == nil {
		h.st = defaultStore(h.system)
	}
	if h.manifestPath == "" {
		dir, err := installDir(h.system)
		if err != nil {
			return nil, fmt.Errorf("host: resolving manifest directory: %w", err)
		}
		h.manifestPath = manifest.PathFor(dir, hostname)
	}
	if h.execPath == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("host: resolving executable path: %w", err)
		}
		if h.execPath, err = filepath.Abs(exe); err != nil {
			return nil, fmt.Errorf("host: resolving executable path: %w", err)
		}
	}
	return h, nil
}

// installDir picks the manifest directory for the install scope.
func installDir(system bool) (string, error) {
	if system {
		return manifest.SystemDir()
	}
	return manifest.UserDir()
}

// Hostname returns the host's identity string.
func (h *Host) Hostname() string { return h.hostname }

// ManifestPath returns where GenerateManifest writes the manifest, derived
// from the install directory and the hostname.
func (h *Host) ManifestPath() string { return h.manifestPath }

// GenerateManifest writes the host's manifest file, replacing any previous
// one.  Origins must be concrete (no wildcard patterns); Chrome would
// reject the manifest otherwise.  The discovery store is not touched.
func (h *Host) GenerateManifest(description string, allowedOrigins []string) error {
	if err := manifest.ValidateOrigins(allowedOrigins); err != nil {
		return err
	}

	m := manifest.Manifest{
		Name:           h.hostname,
		Description:    description,
		Path:           h.execPath,
		AllowedOrigins: allowedOrigins,
	}
	if err := manifest.Write(h.manifestPath, m); err != nil {
		return err
	}
	h.log.Info("wrote manifest", "host", h.hostname, "path", h.manifestPath)
	return nil
}

// Register upserts the discovery-store record for this host, pointing the
// browser at the manifest.  Repeated calls are safe: the host ends up
// registered regardless of prior state.
func (h *Host) Register() error {
	if err := h.st.Set(h.hostname, h.manifestPath); err != nil {
		return fmt.Errorf("host: registering %s: %w", h.hostname, err)
	}
	h.log.Info("registered host", "host", h.hostname, "manifest", h.manifestPath)
	return nil
}

// UnRegister deletes the discovery-store record for this host.  A missing
// record is a no-op.
func (h *Host) UnRegister() error {
	if err := h.st.Delete(h.hostname); err != nil {
		return fmt.Errorf("host: unregistering %s: %w", h.hostname, err)
	}
	h.log.Info("unregistered host", "host", h.hostname)
	return nil
}

// IsRegisteredWithChrome reports whether the discovery store holds a record
// for this host pointing at the current manifest path.  A record with any
// other path counts as not registered: it forces re-registration after the
// host's install location changes.
func (h *Host) IsRegisteredWithChrome() (bool, error) {
	path, ok, err := h.st.Lookup(h.hostname)
	if err != nil {
		return false, fmt.Errorf("host: checking registration of %s: %w", h.hostname, err)
	}
	return ok && path == h.manifestPath, nil
}

// SendMessage writes one message to the browser.  It does not return until
// the full frame has been committed to the output stream.
func (h *Host) SendMessage(m Message) error {
	return h.ch.Send(m)
}

// Listen runs the blocking receive loop: for each message from the
// browser, send a confirmation receipt if enabled, then invoke the
// processor.  It returns nil when the browser closes the stream, and the
// underlying framing or decoding error if the stream becomes unusable.
//
// Listen refuses to start while the host is not registered.  The loop has
// no timeout and no cancellation: the host's lifetime tracks the browser's
// pipe.
func (h *Host) Listen() error {
	switch ok, err := h.IsRegisteredWithChrome(); {
	case err != nil:
		return err
	case !ok:
		return fmt.Errorf("%w: %s", ErrNotRegistered, h.hostname)
	}
	if h.proc == nil {
		return ErrNoProcessor
	}

	h.log.Info("listening", "host", h.hostname, "confirm", h.confirm)
	for {
		m, err := h.ch.Receive()
		if err == io.EOF {
			// The browser closed the pipe: clean shutdown.
			h.log.Info("stream closed by browser", "host", h.hostname)
			return nil
		}
		if err != nil {
			return fmt.Errorf("host: receiving message: %w", err)
		}
		h.log.Debug("received message", "host", h.hostname, "fields", len(m))

		if h.confirm {
			if err := h.ch.Send(Message{confirmationKey: m}); err != nil {
				return fmt.Errorf("host: sending confirmation receipt: %w", err)
			}
		}
		h.proc.ProcessReceivedMessage(m)
	}
}
