package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/ls8/io"
)

// Channel is an output channel interface.
type Channel io.Channel

// State is the execution state of the CPU.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_STOPPED = State(0) // stopped
	STATE_RUNNING = State(1) // running
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE":    fmt.Sprintf("%d", MEMORY_SIZE),
	"REGISTER_COUNT": fmt.Sprintf("%d", REGISTER_COUNT),
	"SP_INIT":        fmt.Sprintf("%d", SP_INIT),
}

// Cpu is the simulation context for the LS-8.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory   Memory    // Program and stack memory.
	Register Registers // Register bank; r7 is the stack pointer.
	Pc       int       // Current program counter.
	Flags    Flags     // Result of the last comparison.
	State    State     // Execution state.

	Ticks int // Instructions executed since reset.

	channel Channel // PRN output.
}

// NewCpu creates a new, reset, CPU.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// SetChannel sets the PRN output channel. A nil channel discards output.
func (cpu *Cpu) SetChannel(channel Channel) {
	cpu.channel = channel
}

// GetChannel gets the PRN output channel.
func (cpu *Cpu) GetChannel() Channel {
	return cpu.channel
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc",
		"fl",
		"r0", "r1", "r2", "r3", "r4", "r5", "r6", "sp",
		"state",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%02X", cpu.Pc)
		case "fl":
			strval = cpu.Flags.String()
		case "r0", "r1", "r2", "r3", "r4", "r5", "r6":
			val := cpu.Register[reg[1]-'0']
			strval = fmt.Sprintf("%02X (%d)", val, val)
		case "sp":
			val := cpu.Register[REGISTER_SP]
			strval = fmt.Sprintf("%02X depth %d", val, cpu.StackDepth())
		case "state":
			strval = cpu.State.String()
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Trace returns a single line summary of the PC, the bytes at the PC,
// and the register bank.
func (cpu *Cpu) Trace() (text string) {
	text = fmt.Sprintf("TRACE: %02X |", cpu.Pc)
	for n := range 3 {
		val, err := cpu.Memory.Read(cpu.Pc + n)
		if err != nil {
			text += " --"
		} else {
			text += fmt.Sprintf(" %02X", val)
		}
	}
	text += " |"
	for _, val := range cpu.Register {
		text += fmt.Sprintf(" %02X", val)
	}

	return
}

// Reset the CPU state.
// - Clears memory, registers and flags.
// - Places the stack pointer at SP_INIT.
// - Zeros the PC and statistics counters.
// - Rewinds the output channel.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Memory.Reset()
	cpu.Register.Reset()
	cpu.Pc = 0
	cpu.Flags = FLAG_NONE
	cpu.State = STATE_STOPPED
	cpu.Ticks = 0

	if cpu.channel != nil {
		cpu.channel.Rewind()
	}
}

// Load copies a program image into memory starting at address 0.
func (cpu *Cpu) Load(image []uint8) (err error) {
	if len(image) > len(cpu.Memory) {
		err = ErrAddress(len(image) - 1)
		return
	}

	copy(cpu.Memory[:], image)

	if cpu.Verbose {
		log.Printf("cpu: loaded %d bytes", len(image))
	}

	return
}

// Start places the CPU in the running state.
func (cpu *Cpu) Start() {
	if cpu.Verbose {
		log.Printf("cpu: start at 0x%02x", cpu.Pc)
	}

	cpu.State = STATE_RUNNING
}

// Stop places the CPU in the stopped state.
func (cpu *Cpu) Stop() {
	if cpu.Verbose {
		log.Printf("cpu: stop at 0x%02x after %d ticks", cpu.Pc, cpu.Ticks)
	}

	cpu.State = STATE_STOPPED
}

// Running returns true while the CPU is executing.
func (cpu *Cpu) Running() bool {
	return cpu.State == STATE_RUNNING
}

// Fetch decodes the instruction at the PC. Only the operand bytes the opcode
// uses are read.
func (cpu *Cpu) Fetch() (ins Instruction, err error) {
	opcode, err := cpu.Memory.Read(cpu.Pc)
	if err != nil {
		return
	}

	ins.Code = Code(opcode)
	if _, ok := Lookup(ins.Code); !ok {
		err = ErrOpcode(ins.Code)
		return
	}

	operands := [2](*uint8){&ins.A, &ins.B}
	for n := range ins.Code.Operands() {
		*operands[n], err = cpu.Memory.Read(cpu.Pc + 1 + n)
		if err != nil {
			return
		}
	}

	return
}

// Execute executes a single decoded instruction at the PC, and advances the
// PC past it unless the instruction places the PC itself.
func (cpu *Cpu) Execute(ins Instruction) (err error) {
	handler, ok := Lookup(ins.Code)
	if !ok {
		err = ErrOpcode(ins.Code)
		return
	}

	if cpu.Verbose {
		log.Printf("%02x: %v", cpu.Pc, ins)
	}

	err = handler(cpu, ins)
	if err != nil {
		return
	}

	if !ins.Code.SetsPc() {
		cpu.Pc += ins.Code.Size()
	}

	return
}

// Tick executes a single CPU instruction cycle. Any error stops the CPU,
// and is returned as an *ErrFault.
func (cpu *Cpu) Tick() (err error) {
	pc := cpu.Pc
	var ins Instruction

	defer func() {
		if err != nil {
			cpu.Stop()
			err = &ErrFault{Pc: pc, Code: ins.Code, Err: err}
		}
	}()

	if cpu.Verbose {
		log.Print(cpu.Trace())
	}

	ins, err = cpu.Fetch()
	if err != nil {
		return
	}

	err = cpu.Execute(ins)
	if err != nil {
		return
	}

	cpu.Ticks++

	return
}

// Run starts the CPU and executes instructions until it halts or faults.
func (cpu *Cpu) Run() (err error) {
	cpu.Start()

	for cpu.Running() {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}
