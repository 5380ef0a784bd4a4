package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sourcegraph/jsonrpc2"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/lspkit/lsp"
	"github.com/lspkit/lsp/internal/config"
	"github.com/lspkit/lsp/internal/debug"
)

const name = "lspdump"

const version = "0.1.0"

var revision = "HEAD"

func main() {
	if err := realMain(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	os.Exit(0)
}

func realMain() error {
	app := &cli.App{
		Name:    name,
		Version: fmt.Sprintf("Version:%s, Revision:%s\n", version, revision),
		Usage:   "Decode and trace captured Language Server Protocol traffic.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Specifies an alternative per-user configuration file.",
			},
			&cli.StringFlag{
				Name:  "codec",
				Value: "vscode",
				Usage: "Stream framing: vscode (Content-Length headers), varint or plain.",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"V"},
				Usage:   "Print debug output while decoding.",
			},
		},
		Commands: cli.Commands{
			{
				Name:    "methods",
				Aliases: []string{"m"},
				Usage:   "list every known protocol method",
				Action: func(c *cli.Context) error {
					for _, info := range lsp.Methods() {
						kind := "request"
						if info.Notification {
							kind = "notification"
						}
						fmt.Printf("%-12s %s\n", kind, info.Method)
					}
					return nil
				},
			},
		},
		ArgsUsage: "[capture file]",
		Action:    dump,
	}
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "Print version.",
	}
	cli.HelpFlag = &cli.BoolFlag{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   "Print help.",
	}

	return app.Run(os.Args)
}

// message is the JSON-RPC 2.0 envelope as far as tracing cares: enough
// to tell requests, notifications and responses apart.
type message struct {
	ID     json.RawMessage `json:"id,omitempty"`
	Method string          `json:"method,omitempty"`
	Params json.RawMessage `json:"params,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *responseError  `json:"error,omitempty"`
}

type responseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func dump(c *cli.Context) error {
	debug.SetEnabled(c.Bool("verbose"))

	cfg, err := config.GetConfig(c.String("config"))
	if err != nil {
		return err
	}

	var codec jsonrpc2.ObjectCodec
	switch c.String("codec") {
	case "vscode":
		codec = jsonrpc2.VSCodeObjectCodec{}
	case "varint":
		codec = jsonrpc2.VarintObjectCodec{}
	case "plain":
		codec = jsonrpc2.PlainObjectCodec{}
	default:
		return xerrors.Errorf("unknown codec %q", c.String("codec"))
	}

	var in io.Reader = os.Stdin
	if c.Args().Present() {
		f, err := os.Open(c.Args().First())
		if err != nil {
			return xerrors.Errorf("cannot open capture, %+v", err)
		}
		defer f.Close()
		in = f
	}

	r := bufio.NewReader(in)
	for n := 1; ; n++ {
		var raw json.RawMessage
		if err := codec.ReadObject(r, &raw); err != nil {
			if err == io.EOF {
				return nil
			}
			return xerrors.Errorf("message %d: %+v", n, err)
		}
		var msg message
		if err := json.Unmarshal(raw, &msg); err != nil {
			return xerrors.Errorf("message %d: %+v", n, err)
		}
		printMessage(os.Stdout, cfg, n, &msg)
	}
}

func printMessage(w io.Writer, cfg *config.Config, n int, msg *message) {
	if msg.Method != "" && !cfg.Allowed(msg.Method) {
		debug.DPrintf("#%d filtered out: %s\n", n, msg.Method)
		return
	}

	switch {
	case msg.Method != "" && msg.ID != nil:
		fmt.Fprintf(w, "#%d --> request %s id=%s", n, msg.Method, msg.ID)
		describeParams(w, cfg, msg.Method, msg.Params)
	case msg.Method != "":
		fmt.Fprintf(w, "#%d --> notification %s", n, msg.Method)
		describeParams(w, cfg, msg.Method, msg.Params)
	case msg.Error != nil:
		fmt.Fprintf(w, "#%d <-- error id=%s code=%d %s\n", n, msg.ID, msg.Error.Code, msg.Error.Message)
	default:
		fmt.Fprintf(w, "#%d <-- response id=%s %s\n", n, msg.ID, payload(cfg, msg.Result))
	}
}

func describeParams(w io.Writer, cfg *config.Config, method string, params json.RawMessage) {
	decoded, err := lsp.DecodeParams(method, params)
	switch {
	case err != nil:
		fmt.Fprintf(w, " (params: %v)\n", err)
	case decoded == nil:
		fmt.Fprintln(w)
	default:
		fmt.Fprintf(w, " %s\n", payload(cfg, params))
	}
}

func payload(cfg *config.Config, raw json.RawMessage) string {
	if len(raw) == 0 {
		return "(empty)"
	}
	s := string(raw)
	if cfg.MaxPayload > 0 && len(s) > cfg.MaxPayload {
		s = s[:cfg.MaxPayload] + "..."
	}
	return s
}
