package explorer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/LIAMBB/chess-compute-core/components"
	"github.com/LIAMBB/chess-compute-core/store"
)

// Browse walks the stored tree from rootID. It reads a child number, 'b' to
// go back or 'q' to quit from in, and writes the boards to out.
func Browse(s *store.Store, rootID int64, evaluator *components.Evaluator, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	currentID := rootID
	var history []int64

	for {
		board, err := s.Board(currentID)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nCurrent Board State (ID: %d):\n", currentID)
		fmt.Fprint(out, board.ToString())
		fmt.Fprintf(out, "%s to move, castling %s, evaluation %d\n",
			board.PlayerTurn(), board.CastlingRights(), evaluator.Evaluate(board))

		children, err := s.Children(currentID)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, "\nAvailable Moves:")
		if len(children) == 0 {
			fmt.Fprintln(out, "No further moves stored.")
		}
		for i, child := range children {
			fmt.Fprintf(out, "%d: %s (state ID %d)\n", i, child.Move, child.ChildID)
		}

		fmt.Fprint(out, "\nEnter move number, 'b' to go back, or 'q' to quit: ")
		input, err := reader.ReadString('\n')
		if err != nil && input == "" {
			if err == io.EOF {
				return nil
			}
			return err
		}
		input = strings.TrimSpace(input)

		switch input {
		case "b":
			if len(history) == 0 {
				fmt.Fprintln(out, "Cannot go back further")
				continue
			}
			currentID = history[len(history)-1]
			history = history[:len(history)-1]
		case "q":
			return nil
		default:
			moveIndex, err := strconv.Atoi(input)
			if err != nil || moveIndex < 0 || moveIndex >= len(children) {
				fmt.Fprintln(out, "Invalid input. Please enter a valid move number.")
				continue
			}
			history = append(history, currentID)
			currentID = children[moveIndex].ChildID
		}
	}
}
