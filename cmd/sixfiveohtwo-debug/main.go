// Command sixfiveohtwo-debug is a terminal single-step visualizer: it loads
// a memory image, then lets the user step the CPU one instruction at a time
// while watching registers, flags, and a window of RAM.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"gopkg.in/urfave/cli.v2"

	"sixfiveohtwo/cpu"
	"sixfiveohtwo/mask"
	"sixfiveohtwo/mem"
)

func main() {
	app := &cli.App{
		Name:  "sixfiveohtwo-debug",
		Usage: "single-step a 6502 memory image in a terminal UI",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "image",
				Aliases:  []string{"i"},
				Usage:    "path to a raw memory image",
				Required: true,
			},
			&cli.UintFlag{
				Name:    "load",
				Aliases: []string{"l"},
				Usage:   "address to load the image at",
				Value:   0x0200,
			},
		},
		Action: func(c *cli.Context) error {
			program, err := os.ReadFile(c.String("image"))
			if err != nil {
				return fmt.Errorf("reading image: %w", err)
			}
			offset := uint16(c.Uint("load"))

			bus := mem.NewBus()
			bus.LoadProgram(program, offset)
			bus.WriteU16(0xFFFC, offset)

			m, err := tea.NewProgram(model{cpu: cpu.New(bus), offset: offset}).Run()
			if err != nil {
				return err
			}
			_ = m.(model)
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type model struct {
	cpu    *cpu.Cpu
	offset uint16
	prevPC uint16
}

func (m model) Init() tea.Cmd { return nil }

// Update advances the Cpu by exactly one instruction per space/j keystroke,
// mirroring a single-stepping debugger rather than a free-running one.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.PC
			if !m.cpu.Step() {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// renderPage renders one 16-byte row of RAM as a line, highlighting the
// byte the program counter currently points at.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i, b := range m.cpu.Bus.RAM[start : start+16] {
		if start+uint16(i) == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

// flagMark and flagString render P as one two-character mark per flag,
// aligned under the "N V _ B D I Z C" header, reusing the mask package's
// 1-indexed-from-MSB bit accessors, which line up exactly with the status
// register's documented bit order.
func flagMark(set bool) string {
	if set {
		return "/ "
	}
	return "  "
}

func (m model) flagString() string {
	var sb strings.Builder
	sb.WriteString(flagMark(mask.IsSet(m.cpu.P, mask.I1)))
	sb.WriteString(flagMark(mask.IsSet(m.cpu.P, mask.I2)))
	sb.WriteString(flagMark(mask.IsSet(m.cpu.P, mask.I3)))
	sb.WriteString(flagMark(mask.IsSet(m.cpu.P, mask.I4)))
	sb.WriteString(flagMark(mask.IsSet(m.cpu.P, mask.I5)))
	sb.WriteString(flagMark(mask.IsSet(m.cpu.P, mask.I6)))
	sb.WriteString(flagMark(mask.IsSet(m.cpu.P, mask.I7)))
	sb.WriteString(flagMark(mask.IsSet(m.cpu.P, mask.I8)))
	return sb.String()
}

func (m model) status() string {
	return fmt.Sprintf(`
PC: %04x (%04x)
 A: %02x
 X: %02x
 Y: %02x
 S: %02x
cyc: %d
N V _ B D I Z C
%s`,
		m.cpu.PC, m.prevPC, m.cpu.A, m.cpu.X, m.cpu.Y, m.cpu.S, m.cpu.Cycles, m.flagString())
}

func (m model) pageTable() string {
	header := "page | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}

	rows := []string{header}
	offsets := []int{
		0, 16, 32, 48, 64,
		int(m.offset),
		int(m.offset + 16*1),
		int(m.offset + 16*2),
		int(m.offset + 16*3),
		int(m.offset + 16*4),
	}
	for _, i := range offsets {
		rows = append(rows, m.renderPage(uint16(i)))
	}
	return strings.Join(rows, "\n")
}

func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		m.cpu.Disassemble(m.cpu.PC),
		spew.Sdump(cpu.Opcodes[m.cpu.Bus.ReadU8(m.cpu.PC)]),
	)
}
