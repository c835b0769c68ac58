// Command sixfiveohtwo loads a raw memory image onto a bus and runs it
// through the cpu package until the CPU halts (KIL) or the configured
// instruction limit is reached.
package main

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/urfave/cli.v2"

	"sixfiveohtwo/cpu"
	"sixfiveohtwo/mem"
)

func main() {
	app := &cli.App{
		Name:    "sixfiveohtwo",
		Usage:   "load and run a 6502 memory image",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "image",
				Aliases: []string{"i"},
				Usage:   "path to a raw 64KB (or smaller) memory image",
			},
			&cli.UintFlag{
				Name:    "load",
				Aliases: []string{"l"},
				Usage:   "address to load the image at",
				Value:   0x0200,
			},
			&cli.UintFlag{
				Name:  "reset",
				Usage: "override the reset vector ($FFFC/$FFFD) after loading",
			},
			&cli.BoolFlag{
				Name:  "reset-override",
				Usage: "whether to apply -reset (distinguishes 0x0000 from unset)",
			},
			&cli.Uint64Flag{
				Name:  "max-steps",
				Usage: "stop after this many instructions even if not halted (0 = unlimited)",
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "log one line per fetched instruction to stderr",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	imagePath := c.String("image")
	if imagePath == "" {
		return cli.Exit("missing required -image flag", 1)
	}

	program, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("reading image %q: %w", imagePath, err)
	}

	bus := mem.NewBus()
	bus.LoadProgram(program, uint16(c.Uint("load")))
	if c.Bool("reset-override") {
		bus.WriteU16(0xFFFC, uint16(c.Uint("reset")))
	}

	core := cpu.New(bus)
	if c.Bool("trace") {
		core.Trace = log.New(os.Stderr, "", 0)
	}

	maxSteps := c.Uint64("max-steps")
	steps := uint64(0)
	core.RunUntil(func(c *cpu.Cpu) bool {
		if maxSteps != 0 && steps >= maxSteps {
			return true
		}
		steps++
		return false
	})

	fmt.Printf("halted=%v steps=%d cycles=%d PC=%#04x A=%#02x X=%#02x Y=%#02x S=%#02x P=%#02x\n",
		core.Halted, steps, core.Cycles, core.PC, core.A, core.X, core.Y, core.S, core.P)
	return nil
}
