package identifier

import (
	"testing"

	"github.com/lox/bridgebid/bridge/domain"
)

func TestParseBoardDerivesDealerAndVulnerabilityFromBoardNumber(t *testing.T) {
	deal := sampleDeal(t)
	id := "1-" + Encode(deal)

	board, err := ParseBoard(id)
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	if board.Number != 1 {
		t.Fatalf("Number = %d, want 1", board.Number)
	}
	if board.Dealer != domain.North {
		t.Fatalf("Dealer = %v, want North", board.Dealer)
	}
	if board.Vulnerability != domain.VulnerabilityForBoard(1) {
		t.Fatalf("Vulnerability = %v, want %v", board.Vulnerability, domain.VulnerabilityForBoard(1))
	}
	if len(board.Calls) != 0 {
		t.Fatalf("Calls = %v, want none", board.Calls)
	}
}

func TestParseBoardAcceptsColonSeparatedCallHistory(t *testing.T) {
	deal := sampleDeal(t)
	id := "1-" + Encode(deal) + ":1S,P,2H,P"

	board, err := ParseBoard(id)
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	want := []string{"1S", "P", "2H", "P"}
	if len(board.Calls) != len(want) {
		t.Fatalf("Calls = %v, want %v", board.Calls, want)
	}
	for i, w := range want {
		if board.Calls[i].String() != w {
			t.Fatalf("Calls[%d] = %v, want %s", i, board.Calls[i], w)
		}
	}
}

func TestParseBoardAcceptsThreeHyphenSeparatedForm(t *testing.T) {
	deal := sampleDeal(t)
	id := "1-" + Encode(deal) + "-1S P"

	board, err := ParseBoard(id)
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	if len(board.Calls) != 2 || board.Calls[0].String() != "1S" || board.Calls[1].String() != "P" {
		t.Fatalf("Calls = %v, want [1S P]", board.Calls)
	}
}

func TestParseBoardRejectsMissingDealComponent(t *testing.T) {
	if _, err := ParseBoard("1"); err == nil {
		t.Fatal("expected error for an identifier with no deal")
	}
}

func TestParseBoardRejectsInvalidBoardNumber(t *testing.T) {
	deal := sampleDeal(t)
	if _, err := ParseBoard("abc-" + Encode(deal)); err == nil {
		t.Fatal("expected error for a non-numeric board number")
	}
}

func TestParseBoardRejectsBadDealHex(t *testing.T) {
	if _, err := ParseBoard("1-00"); err == nil {
		t.Fatal("expected error for a malformed deal hex")
	}
}
