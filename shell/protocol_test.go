package shell

import (
	"log"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/ianhowey12/Chess-Engine/internal/search"
)

func runCommands(t *testing.T, commands []string) []string {
	t.Helper()
	engine := search.NewEngine()
	t.Cleanup(engine.Close)
	p := NewProtocol(engine, log.New(os.Stderr, "", 0))
	var out strings.Builder
	p.Run(strings.NewReader(strings.Join(commands, "\n")+"\n"), &out)
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestProtocolInit(t *testing.T) {
	responses := runCommands(t, []string{
		"in 100000 1000000 2 0",
		"in 1 1 1 1",
		"ex",
	})
	if len(responses) != 2 || responses[0] != "1" || responses[1] != "0" {
		t.Fatalf("responses = %v, want [1 0]", responses)
	}
}

func TestProtocolSession(t *testing.T) {
	start := search.StartingPosition()
	responses := runCommands(t, []string{
		"in 100000 1000000 2 0",
		"se 0 " + wirePosition(&start),
		"gd",
		"go",
	})
	if len(responses) != 3 {
		t.Fatalf("got %d responses, want 3", len(responses))
	}
	if responses[0] != "1" || responses[1] != "1" {
		t.Fatalf("init/setup responses = %v", responses[:2])
	}
	fields := strings.Fields(responses[2])
	numChoices, err := strconv.Atoi(fields[0])
	if err != nil || numChoices != 20 {
		t.Fatalf("gd reported %q choices, want 20", fields[0])
	}
	// 1 count + 20 choices of 4 fields + 7 counters.
	if want := 1 + numChoices*4 + 7; len(fields) != want {
		t.Fatalf("gd response has %d fields, want %d", len(fields), want)
	}
	nodesAdded, _ := strconv.Atoi(fields[len(fields)-7])
	if nodesAdded != 21 {
		t.Errorf("nodesAdded = %d, want 21", nodesAdded)
	}
}

func TestProtocolTimedSession(t *testing.T) {
	start := search.StartingPosition()
	responses := runCommands(t, []string{
		"in 50000 500000 3 20",
		"se 0 " + wirePosition(&start),
		"et 20",
		"gd",
		"ex",
	})
	if len(responses) != 4 {
		t.Fatalf("got %d responses, want 4", len(responses))
	}
	if responses[2] != "1" {
		t.Fatalf("et response = %q, want 1", responses[2])
	}
	if !strings.HasPrefix(responses[3], "20 ") {
		t.Errorf("gd after timed session = %q, want 20 choices", responses[3])
	}
}

func TestProtocolLegalityAndCheck(t *testing.T) {
	start := search.StartingPosition()
	wire := wirePosition(&start)
	responses := runCommands(t, []string{
		"tl 12 28 " + wire,
		"tl 12 36 " + wire,
		"tc 0 " + wire,
		"tc 1 " + wire,
		"ex",
	})
	want := []string{"1", "0", "0", "0"}
	for i, w := range want {
		if responses[i] != w {
			t.Errorf("response %d = %q, want %q", i, responses[i], w)
		}
	}
}

func TestProtocolBadCommandsDoNotStick(t *testing.T) {
	responses := runCommands(t, []string{
		"zz 1 2 3",
		"in abc 1000000 2 0",
		"se 0",
		"in 100000 1000000 2 0",
		"ex",
	})
	want := []string{"0", "0", "0", "1"}
	if len(responses) != len(want) {
		t.Fatalf("got %d responses, want %d", len(responses), len(want))
	}
	for i, w := range want {
		if responses[i] != w {
			t.Errorf("response %d = %q, want %q", i, responses[i], w)
		}
	}
}

func TestProtocolSetupBeforeInitAnswersZero(t *testing.T) {
	start := search.StartingPosition()
	responses := runCommands(t, []string{
		"se 0 " + wirePosition(&start),
		"e0",
		"ex",
	})
	if responses[0] != "0" || responses[1] != "0" {
		t.Errorf("responses = %v, want [0 0]", responses)
	}
}
