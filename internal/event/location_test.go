package event

import "testing"

func TestCleanLocation(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		city string
		want string
	}{
		{"empty input", "", "Detroit", "Downtown Detroit"},
		{"city only", "Detroit", "Detroit", "Downtown Detroit"},
		{"venue prefix with tba", "Venue: TBA", "Detroit", "Detroit Area"},
		{"location prefix stripped", "Location: The Fillmore Detroit", "Detroit", "The Fillmore Detroit"},
		{"address prefix stripped", "Address: 2115 Woodward Ave", "Detroit", "2115 Woodward Ave"},
		{"where prefix leaves city", "Where: Detroit", "Detroit", "Detroit Area"},
		{"too short", "NYC", "Detroit", "Detroit Area"},
		{"online placeholder", "Online", "Detroit", "Detroit Area"},
		{"virtual placeholder", "virtual", "Detroit", "Detroit Area"},
		{"to be announced", "To Be Announced", "Detroit", "Detroit Area"},
		{"real venue kept", "Majestic Theatre", "Detroit", "Majestic Theatre"},
		{"surrounding whitespace", "  Majestic Theatre  ", "Detroit", "Majestic Theatre"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanLocation(tt.raw, tt.city)
			if got != tt.want {
				t.Errorf("CleanLocation(%q, %q) = %q, want %q", tt.raw, tt.city, got, tt.want)
			}
			if got == "" {
				t.Error("CleanLocation must never return an empty string")
			}
		})
	}
}
