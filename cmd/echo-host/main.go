// echo-host is a Chrome native messaging host that echoes every message
// back, with confirmation receipts enabled.  Run it once with -register to
// install it, then let Chrome launch it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mitosagi/NativeMessaging/host"
	"github.com/mitosagi/NativeMessaging/internal/logging"
)

// hostname identifies this host to Chrome.
const hostname = "com.mitosagi.echo"

// echo sends each received message straight back to the browser.
type echo struct {
	h *host.Host
}

func (e *echo) ProcessReceivedMessage(m host.Message) {
	if err := e.h.SendMessage(m); err != nil {
		fmt.Fprintf(os.Stderr, "Error echoing message: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	register := flag.Bool("register", false, "write the manifest, register with Chrome, and exit")
	unregister := flag.Bool("unregister", false, "remove the registration and exit")
	origin := flag.String("origin", "", "allowed extension origin (with -register)")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	log, err := logging.New(*logLevel, "text")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	e := &echo{}
	h, err := host.New(hostname,
		host.WithConfirmationReceipt(),
		host.WithProcessor(e),
		host.WithLogger(log),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	e.h = h

	switch {
	case *register:
		if *origin == "" {
			fmt.Fprintln(os.Stderr, "Error: -register needs -origin")
			os.Exit(1)
		}
		err = h.GenerateManifest("Echo native messaging host", []string{*origin})
		if err == nil {
			err = h.Register()
		}
	case *unregister:
		err = h.UnRegister()
	default:
		err = h.Listen()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
