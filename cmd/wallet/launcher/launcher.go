// The launcher is the entry point of the wallet-bcs command-line interface.
// It wires together CLI flags, logging, optional Sentry reporting, and the
// debugging commands exposed over the BCS codec.
package launcher

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/evalphobia/logrus_sentry"
	"github.com/sirupsen/logrus"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-sui-wallet/bcs"
	"github.com/rony4d/go-sui-wallet/flags"
	"github.com/rony4d/go-sui-wallet/types"
)

// Launch parses args and runs the selected command.
func Launch(args []string) error {
	return newApp().Run(args)
}

func newApp() *cli.App {
	app := flags.NewApp("BCS payload toolbox for the Sui wallet")
	app.Flags = append(app.Flags, flags.CommonFlags()...)
	app.Before = setupLogging
	app.Commands = []cli.Command{
		{
			Name:      "dump",
			Usage:     "Hex-dump a BCS payload",
			ArgsUsage: "<0xhex>",
			Action:    dumpAction,
		},
		{
			Name:  "uleb",
			Usage: "Work with raw ULEB128 values",
			Subcommands: []cli.Command{
				{
					Name:      "encode",
					Usage:     "Encode a decimal value to its minimal ULEB128 form",
					ArgsUsage: "<decimal>",
					Action:    ulebEncodeAction,
				},
				{
					Name:      "decode",
					Usage:     "Decode a ULEB128 value from the front of a hex payload",
					ArgsUsage: "<0xhex>",
					Action:    ulebDecodeAction,
				},
			},
		},
		{
			Name:  "coin",
			Usage: "Work with encoded Coin objects",
			Subcommands: []cli.Command{
				{
					Name:      "decode",
					Usage:     "Decode a BCS-encoded Coin and print its fields",
					ArgsUsage: "<0xhex>",
					Action:    coinDecodeAction,
				},
			},
		},
	}
	return app
}

// setupLogging configures the global logrus logger from the log.* flags and
// installs the Sentry hook when a DSN is given.
func setupLogging(ctx *cli.Context) error {
	levels := []logrus.Level{
		logrus.FatalLevel,
		logrus.ErrorLevel,
		logrus.WarnLevel,
		logrus.InfoLevel,
		logrus.DebugLevel,
		logrus.TraceLevel,
	}
	verbosity := ctx.GlobalInt("log.verbosity")
	if verbosity < 0 || verbosity >= len(levels) {
		return fmt.Errorf("log.verbosity %d out of range [0,%d]", verbosity, len(levels)-1)
	}
	logrus.SetLevel(levels[verbosity])

	switch format := ctx.GlobalString("log.format"); format {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{
			ForceColors: ctx.GlobalBool("log.color"),
		})
	default:
		return fmt.Errorf("unknown log.format %q", format)
	}

	if dsn := ctx.GlobalString("sentry.dsn"); dsn != "" {
		hook, err := logrus_sentry.NewSentryHook(dsn, []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		})
		if err != nil {
			return fmt.Errorf("sentry hook: %w", err)
		}
		logrus.AddHook(hook)
	}
	return nil
}

// hexArg decodes the single 0x-prefixed hex argument of a command.
func hexArg(ctx *cli.Context) ([]byte, error) {
	if ctx.NArg() != 1 {
		return nil, fmt.Errorf("expected one hex argument")
	}
	return hexutil.Decode(ctx.Args().First())
}

func dumpAction(ctx *cli.Context) error {
	raw, err := hexArg(ctx)
	if err != nil {
		return err
	}
	logrus.WithField("bytes", len(raw)).Debug("dumping payload")
	fmt.Fprint(ctx.App.Writer, bcs.Dump(raw))
	return nil
}

func ulebEncodeAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("expected one decimal argument")
	}
	v, err := strconv.ParseUint(ctx.Args().First(), 10, 64)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, hexutil.Encode(bcs.ULEBEncode(v)))
	return nil
}

func ulebDecodeAction(ctx *cli.Context) error {
	raw, err := hexArg(ctx)
	if err != nil {
		return err
	}
	v, n, err := bcs.ULEBDecode(raw)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "%d (%d bytes)\n", v, n)
	return nil
}

func coinDecodeAction(ctx *cli.Context) error {
	raw, err := hexArg(ctx)
	if err != nil {
		return err
	}
	var coin types.Coin
	if err := bcs.UnmarshalValue(raw, &coin); err != nil {
		logrus.WithError(err).Error("coin decode failed")
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "value:     %d\n", coin.Value)
	fmt.Fprintf(ctx.App.Writer, "owner:     %s\n", coin.Owner)
	fmt.Fprintf(ctx.App.Writer, "is_locked: %t\n", coin.IsLocked)
	return nil
}
