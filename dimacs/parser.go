// Package dimacs parses the DIMACS CNF format, used as the demo search
// engine's input format since SMT-LIB parsing is out of scope for this
// module.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kjmnn/yaga/cnf"
)

// Problem is a parsed DIMACS CNF instance.
type Problem struct {
	// NumVars is the variable count declared in the "p cnf" header.
	NumVars int
	// Clauses are the parsed clauses, in file order.
	Clauses []*cnf.Clause
}

// Parse reads a DIMACS CNF file from r. Lines starting with 'c' or '%' are
// comments. The header line is "p cnf <nvars> <nclauses>"; every clause is
// a sequence of signed, non-zero integers terminated by a 0.
func Parse(r io.Reader) (*Problem, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var problem Problem
	sawHeader := false
	var pending []cnf.Literal
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") || strings.HasPrefix(line, "%") {
			continue
		}

		fields := strings.Fields(line)
		if fields[0] == "p" {
			if sawHeader {
				return nil, fmt.Errorf("dimacs: line %d: duplicate header", lineNo)
			}
			if len(fields) < 4 || fields[1] != "cnf" {
				return nil, fmt.Errorf("dimacs: line %d: malformed header %q", lineNo, line)
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad variable count: %w", lineNo, err)
			}
			problem.NumVars = n
			sawHeader = true
			continue
		}

		if !sawHeader {
			return nil, fmt.Errorf("dimacs: line %d: clause before header", lineNo)
		}

		for _, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad literal %q: %w", lineNo, f, err)
			}
			if n == 0 {
				problem.Clauses = append(problem.Clauses, cnf.NewClause(pending...))
				pending = nil
				continue
			}
			pending = append(pending, cnf.LiteralFromSigned(n))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: %w", err)
	}
	if !sawHeader {
		return nil, fmt.Errorf("dimacs: missing \"p cnf\" header")
	}
	if len(pending) > 0 {
		return nil, fmt.Errorf("dimacs: trailing clause not terminated by 0")
	}

	return &problem, nil
}
