// a50ctl configures an Astro A50 gen 4 base station from the command
// line: read and change settings, snapshot them to the device's saved
// bank, and apply TOML settings profiles.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "a50ctl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("a50ctl", pflag.ContinueOnError)
	flags.Usage = func() { printUsage(flags) }

	var opts cliOptions
	flags.BoolVar(&opts.saved, "saved", false, "read from the saved bank instead of the active configuration")
	flags.DurationVar(&opts.timeout, "timeout", 0, "per-operation USB timeout (default 3s)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every USB exchange to stderr")

	if err := flags.Parse(args); err != nil {
		return err
	}

	rest := flags.Args()
	if len(rest) == 0 {
		printUsage(flags)
		return fmt.Errorf("missing command")
	}

	cmd, cmdArgs := rest[0], rest[1:]
	switch cmd {
	case "status":
		return cmdStatus(opts, cmdArgs)
	case "get":
		return cmdGet(opts, cmdArgs)
	case "set":
		return cmdSet(opts, cmdArgs)
	case "save":
		return cmdSave(opts, cmdArgs)
	case "apply":
		return cmdApply(opts, cmdArgs)
	case "probe":
		return cmdProbe(opts, cmdArgs)
	case "help":
		printUsage(flags)
		return nil
	default:
		return fmt.Errorf("unknown command %q (run \"a50ctl help\")", cmd)
	}
}

func printUsage(flags *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Usage: a50ctl [flags] <command> [args]

Commands:
  status                      headset power, dock, battery and balance
  get <param> [args]          read a setting (see parameters below)
  set <param> <value> [args]  change a setting in the active configuration
  save                        snapshot the active configuration to the saved bank
  apply <profile.toml>        apply a settings profile
  probe <opcode> [payload]    send a raw opcode (hex) and print the response

Parameters:
  mic-level, side-tone, alert-volume, default-balance, noise-gate,
  active-eq-preset, mic-eq-preset, auto-shutoff, brightness,
  slider <name>, eq-name <preset>, eq-gains <preset>,
  eq-band <preset> <band>

Flags:
%s`, flags.FlagUsages())
}
