package domain

import "testing"

func TestCardIndexRoundTrip(t *testing.T) {
	t.Parallel()
	for idx := 0; idx < 52; idx++ {
		c := CardFromIndex(idx)
		if c.Index() != idx {
			t.Errorf("card %v: got index %d, want %d", c, c.Index(), idx)
		}
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  Card
		ok    bool
	}{
		{"AS", NewCard(Spades, Ace), true},
		{"2h", NewCard(Hearts, Two), true},
		{"Td", NewCard(Diamonds, Ten), true},
		{"0c", NewCard(Clubs, Ten), true},
		{"Zz", Card{}, false},
		{"A", Card{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseCard(tt.input)
		if ok != tt.ok {
			t.Fatalf("ParseCard(%q) ok=%v, want %v", tt.input, ok, tt.ok)
		}
		if ok && got != tt.want {
			t.Errorf("ParseCard(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseHandAndHCP(t *testing.T) {
	t.Parallel()
	h, ok := ParseHand("K6.AQT43.KT4.543")
	if !ok {
		t.Fatal("ParseHand failed")
	}
	if h.Len() != 13 {
		t.Fatalf("expected 13 cards, got %d", h.Len())
	}
	// Suit order is clubs.diamonds.hearts.spades, so: K6=clubs(2),
	// AQT43=diamonds(5), KT4=hearts(3), 543=spades(3).
	if got := h.Length(Clubs); got != 2 {
		t.Errorf("clubs length = %d, want 2", got)
	}
	if got := h.Length(Diamonds); got != 5 {
		t.Errorf("diamonds length = %d, want 5", got)
	}
	wantHCP := King.HCP() + Ace.HCP() + Queen.HCP() + King.HCP()
	if got := h.HCP(); got != wantHCP {
		t.Errorf("HCP = %d, want %d", got, wantHCP)
	}
}

func TestShapeClassification(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		shape [4]int
		want  Shape
	}{
		{"4333", [4]int{4, 3, 3, 3}, Balanced},
		{"4432", [4]int{4, 4, 3, 2}, Balanced},
		{"5332", [4]int{5, 3, 3, 2}, Balanced},
		{"5422", [4]int{5, 4, 2, 2}, SemiBalanced},
		{"6322", [4]int{6, 3, 2, 2}, SemiBalanced},
		{"5431", [4]int{5, 4, 3, 1}, SemiBalanced},
		{"7222", [4]int{7, 2, 2, 2}, Unbalanced},
		{"5440", [4]int{5, 4, 4, 0}, Unbalanced},
		{"6610", [4]int{6, 6, 1, 0}, Unbalanced},
	}
	for _, tt := range tests {
		if got := classifyShape(tt.shape); got != tt.want {
			t.Errorf("%s: classifyShape(%v) = %v, want %v", tt.name, tt.shape, got, tt.want)
		}
	}
}

func TestHasStopper(t *testing.T) {
	t.Parallel()
	h, _ := ParseHand("A.K6.Q65.J654")
	if !h.HasStopper(Clubs) {
		t.Error("bare ace should stop")
	}
	if !h.HasStopper(Diamonds) {
		t.Error("Kx should stop")
	}
	if !h.HasStopper(Hearts) {
		t.Error("Qxx should stop")
	}
	if !h.HasStopper(Spades) {
		t.Error("Jxxx should stop")
	}

	h2, _ := ParseHand("K.Q6.J65.9654")
	if h2.HasStopper(Clubs) {
		t.Error("bare king should not stop")
	}
}

func TestPositionRotation(t *testing.T) {
	t.Parallel()
	if North.Partner() != South {
		t.Errorf("North partner = %v, want South", North.Partner())
	}
	if East.LHO() != South {
		t.Errorf("East LHO = %v, want South", East.LHO())
	}
	if West.RHO() != South {
		t.Errorf("West RHO = %v, want South", West.RHO())
	}
	if !SameSide(North, South) {
		t.Error("North and South should be same side")
	}
	if SameSide(North, East) {
		t.Error("North and East should not be same side")
	}
}

func TestVulnerabilityAndDealerForBoard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		board      int
		wantVuln   Vulnerability
		wantDealer Position
	}{
		{1, VulnNone, North},
		{2, VulnNS, East},
		{3, VulnEW, South},
		{4, VulnBoth, West},
		{8, VulnNone, West},
		{16, VulnEW, West},
	}
	for _, tt := range tests {
		if got := VulnerabilityForBoard(tt.board); got != tt.wantVuln {
			t.Errorf("board %d: vuln = %v, want %v", tt.board, got, tt.wantVuln)
		}
		if got := DealerForBoard(tt.board); got != tt.wantDealer {
			t.Errorf("board %d: dealer = %v, want %v", tt.board, got, tt.wantDealer)
		}
	}
}

func TestCallRenderAndParseRoundTrip(t *testing.T) {
	t.Parallel()
	calls := []Call{Pass, Double, Redouble, NewBid(1, Notrump), NewBid(7, StrainOf(Clubs))}
	for _, c := range calls {
		s := c.String()
		got, ok := ParseCall(s)
		if !ok {
			t.Fatalf("ParseCall(%q) failed", s)
		}
		if got != c {
			t.Errorf("round trip %v -> %q -> %v", c, s, got)
		}
	}
}
