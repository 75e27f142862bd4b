package cpu

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// ParseImage parses a program image. Each line holds one byte as a binary
// literal such as "10000010"; text after '#' is a comment, and blank lines
// are skipped. Bytes are placed at consecutive addresses from 0.
func ParseImage(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			prog = nil
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	prog = &Program{}
	address := 0

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		line, _, _ = strings.Cut(text, "#")
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		var value uint64
		value, err = strconv.ParseUint(line, 2, 8)
		if err != nil {
			err = ErrParseBinary(line)
			return
		}

		if address >= MEMORY_SIZE {
			err = ErrImageSize
			return
		}

		prog.Opcodes = append(prog.Opcodes, Opcode{
			LineNo:  lineno,
			Address: address,
			Words:   []string{line},
			Bytes:   []uint8{uint8(value)},
		})
		address++
	}

	err = scanner.Err()
	return
}
