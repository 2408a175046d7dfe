package search

import (
	"strings"

	"github.com/ianhowey12/Chess-Engine/internal/arena"
	"github.com/ianhowey12/Chess-Engine/internal/board"
)

// Choice is one root move with its eval and rendered move text.
type Choice struct {
	From int
	To   int
	Eval float64
	San  string
}

// Output is the session report: root choices sorted best-first for the
// side to move, the root eval, and the session counters.
type Output struct {
	Choices  []Choice
	RootEval float64

	NodesAdded    int64
	MovesAdded    int64
	NodesExamined int64

	WhiteWinsFound  int64
	BlackWinsFound  int64
	StalematesFound int64
	NormalsFound    int64
}

// Output snapshots the root's children and sorts them by eval, descending
// when white is to move and ascending when black is. Call only while no
// session is running; EvaluateStop/EvaluateTime leave the tree stable.
func (e *Engine) Output() Output {
	out := Output{
		NodesAdded:      e.stats.NodesAdded.Load(),
		MovesAdded:      e.stats.MovesAdded.Load(),
		NodesExamined:   e.stats.NodesExamined.Load(),
		WhiteWinsFound:  e.stats.WhiteWinsFound.Load(),
		BlackWinsFound:  e.stats.BlackWinsFound.Load(),
		StalematesFound: e.stats.StalematesFound.Load(),
		NormalsFound:    e.stats.NormalsFound.Load(),
	}
	if !e.setupDone || e.arena.NumNodes() == 0 {
		return out
	}

	root := e.arena.Root()
	out.RootEval = root.Eval()
	start, count := root.Children()
	if count == 0 || start == arena.None {
		return out
	}

	children := make([]*arena.Node, count)
	for i := int32(0); i < count; i++ {
		children[i] = e.arena.Node(start + i)
	}
	sortChoices(children, root.Side)

	out.Choices = make([]Choice, count)
	for i, c := range children {
		out.Choices[i] = Choice{
			From: int(c.From),
			To:   int(c.To),
			Eval: c.Eval(),
			San:  MoveString(&e.rootPos.Board, board.Square(c.From), int(c.To)),
		}
	}
	return out
}

// sortChoices is an insertion sort; root child counts never exceed a few
// hundred.
func sortChoices(children []*arena.Node, side board.Side) {
	for i := 1; i < len(children); i++ {
		n := children[i]
		e := n.Eval()
		j := i - 1
		for j >= 0 {
			je := children[j].Eval()
			if side == board.Black {
				if je <= e {
					break
				}
			} else {
				if je >= e {
					break
				}
			}
			children[j+1] = children[j]
			j--
		}
		children[j+1] = n
	}
}

var pieceLetters = map[board.Piece]string{
	board.WhiteKnight: "N", board.BlackKnight: "N",
	board.WhiteBishop: "B", board.BlackBishop: "B",
	board.WhiteRook: "R", board.BlackRook: "R",
	board.WhiteQueen: "Q", board.BlackQueen: "Q",
	board.WhiteKing: "K", board.BlackKing: "K",
}

var promotionLetters = map[board.Piece]string{
	board.WhiteKnight: "N", board.BlackKnight: "N",
	board.WhiteBishop: "B", board.BlackBishop: "B",
	board.WhiteRook: "R", board.BlackRook: "R",
	board.WhiteQueen: "Q", board.BlackQueen: "Q",
}

// MoveString renders a move played on b as move text: castles as 0-0 and
// 0-0-0, otherwise piece letter (pawns none), source square, destination
// square and a trailing promotion letter.
func MoveString(b *board.Board, from board.Square, to int) string {
	p := b[from]
	if (p == board.WhiteKing && from == 4 && to == 6) ||
		(p == board.BlackKing && from == 60 && to == 62) {
		return "0-0"
	}
	if (p == board.WhiteKing && from == 4 && to == 2) ||
		(p == board.BlackKing && from == 60 && to == 58) {
		return "0-0-0"
	}

	trueTo, promotion := board.DecodeTo(to)
	var sb strings.Builder
	if letter, ok := pieceLetters[p]; ok {
		sb.WriteString(letter)
	}
	sb.WriteString(squareName(from))
	sb.WriteString(squareName(trueTo))
	if promotion != board.Empty {
		sb.WriteString(promotionLetters[promotion])
	}
	return sb.String()
}

func squareName(sq board.Square) string {
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}
