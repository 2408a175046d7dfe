// Package shell drives the search engine over the line-oriented control
// protocol: one command per line, a two-letter prefix followed by integer
// arguments and an optional trailing position, one response line per
// command.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/ianhowey12/Chess-Engine/internal/search"
)

// Protocol binds an engine to the control-line command set.
type Protocol struct {
	engine *search.Engine
	logger *log.Logger
}

func NewProtocol(engine *search.Engine, logger *log.Logger) *Protocol {
	return &Protocol{engine: engine, logger: logger}
}

// Run reads commands from r and writes one response line per command to w,
// until go (leave control mode), ex (exit) or EOF. A command that fails to
// parse or that the engine rejects answers 0 and leaves later commands
// unaffected.
func (p *Protocol) Run(r io.Reader, w io.Writer) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 4096), 1<<20)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "go" || fields[0] == "ex" {
			return
		}
		response, err := p.handle(fields[0], fields[1:])
		if err != nil {
			p.logger.Println(err)
			response = "0"
		}
		fmt.Fprintln(w, response)
	}
}

func (p *Protocol) handle(command string, args []string) (string, error) {
	switch command {
	case "in":
		return p.initCommand(args)
	case "se":
		return p.setupCommand(args)
	case "e0":
		if err := p.engine.EvaluateStart(); err != nil {
			return "0", nil
		}
		return "1", nil
	case "e1":
		if err := p.engine.EvaluateStop(); err != nil {
			return "0", nil
		}
		return "1", nil
	case "et":
		return p.evaluateTimeCommand(args)
	case "tl":
		return p.testLegalityCommand(args)
	case "tc":
		return p.testCheckCommand(args)
	case "gd":
		return p.outputCommand(), nil
	}
	return "", fmt.Errorf("unknown command %q", command)
}

func intArgs(args []string, n int) ([]int, error) {
	if len(args) < n {
		return nil, fmt.Errorf("got %d arguments, want %d", len(args), n)
	}
	values := make([]int, n)
	for i := 0; i < n; i++ {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d: %v", i, err)
		}
		values[i] = v
	}
	return values, nil
}

func (p *Protocol) initCommand(args []string) (string, error) {
	v, err := intArgs(args, 4)
	if err != nil {
		return "", err
	}
	if err := p.engine.Init(v[0], v[1], v[2], v[3]); err != nil {
		return "0", nil
	}
	return "1", nil
}

func (p *Protocol) setupCommand(args []string) (string, error) {
	v, err := intArgs(args, 1)
	if err != nil {
		return "", err
	}
	pos, err := parsePosition(args[1:])
	if err != nil {
		return "", err
	}
	if err := p.engine.SetupEvaluation(v[0], pos); err != nil {
		return "0", nil
	}
	return "1", nil
}

func (p *Protocol) evaluateTimeCommand(args []string) (string, error) {
	v, err := intArgs(args, 1)
	if err != nil {
		return "", err
	}
	if err := p.engine.EvaluateTime(time.Duration(v[0]) * time.Millisecond); err != nil {
		return "0", nil
	}
	return "1", nil
}

func (p *Protocol) testLegalityCommand(args []string) (string, error) {
	v, err := intArgs(args, 2)
	if err != nil {
		return "", err
	}
	pos, err := parsePosition(args[2:])
	if err != nil {
		return "", err
	}
	if search.TestLegality(v[0], v[1], &pos) {
		return "1", nil
	}
	return "0", nil
}

func (p *Protocol) testCheckCommand(args []string) (string, error) {
	v, err := intArgs(args, 1)
	if err != nil {
		return "", err
	}
	pos, err := parsePosition(args[1:])
	if err != nil {
		return "", err
	}
	if search.TestCheck(v[0] != 0, &pos) {
		return "1", nil
	}
	return "0", nil
}

// outputCommand serializes the session report: the choice count, each
// sorted root choice as from/to/eval-milli/move-text (or the root's own
// eval when there are no choices), then the session counters.
func (p *Protocol) outputCommand() string {
	out := p.engine.Output()
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d", len(out.Choices))
	if len(out.Choices) == 0 {
		fmt.Fprintf(&sb, " %d", evalMilli(out.RootEval))
	}
	for _, c := range out.Choices {
		fmt.Fprintf(&sb, " %d %d %d %s", c.From, c.To, evalMilli(c.Eval), c.San)
	}
	fmt.Fprintf(&sb, " %d %d %d %d %d %d %d",
		out.NodesAdded, out.MovesAdded, out.NodesExamined,
		out.WhiteWinsFound, out.BlackWinsFound, out.StalematesFound, out.NormalsFound)
	return sb.String()
}
