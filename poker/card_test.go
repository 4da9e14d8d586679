package poker

import "testing"

func TestParseCards(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		suits   []Suit
		ranks   []Rank
		wantErr bool
	}{
		{
			name:  "royal flush",
			input: "AsKsQsJsTs",
			suits: []Suit{Spades, Spades, Spades, Spades, Spades},
			ranks: []Rank{Ace, King, Queen, Jack, Ten},
		},
		{
			name:  "mixed suits",
			input: "AhKdQcJs9s",
			suits: []Suit{Hearts, Diamonds, Clubs, Spades, Spades},
			ranks: []Rank{Ace, King, Queen, Jack, Nine},
		},
		{
			name:  "case insensitive",
			input: "asKHqDjc",
			suits: []Suit{Spades, Hearts, Diamonds, Clubs},
			ranks: []Rank{Ace, King, Queen, Jack},
		},
		{
			name:    "invalid rank",
			input:   "XsKs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "AsKx",
			wantErr: true,
		},
		{
			name:    "odd length",
			input:   "AsK",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards, err := ParseCards(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCards(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCards(%q) failed: %v", tt.input, err)
			}
			if len(cards) != len(tt.ranks) {
				t.Fatalf("ParseCards(%q) returned %d cards, want %d", tt.input, len(cards), len(tt.ranks))
			}
			for i, c := range cards {
				if c.Suit != tt.suits[i] || c.Rank != tt.ranks[i] {
					t.Errorf("card %d = %s, want %s%s", i, c, tt.ranks[i], tt.suits[i])
				}
			}
		})
	}
}

func TestCardString(t *testing.T) {
	card, err := ParseCard("Ah")
	if err != nil {
		t.Fatal(err)
	}
	if got := card.String(); got != "A♥" {
		t.Errorf("String() = %q, want %q", got, "A♥")
	}
	if !card.IsRed() {
		t.Error("hearts should be red")
	}
}
