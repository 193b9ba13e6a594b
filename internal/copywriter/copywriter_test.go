package copywriter

import "testing"

func TestParseVariants(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantLen int
		wantErr bool
	}{
		{
			name:    "bareArray",
			content: `[{"headline":"A","primary_text":"B"},{"headline":"C","primary_text":"D"}]`,
			wantLen: 2,
		},
		{
			name:    "variantsWrapper",
			content: `{"variants":[{"headline":"A","primary_text":"B"}]}`,
			wantLen: 1,
		},
		{
			name:    "fencedJSON",
			content: "```json\n[{\"headline\":\"A\",\"primary_text\":\"B\"}]\n```",
			wantLen: 1,
		},
		{
			name:    "bareFence",
			content: "```\n{\"variants\":[{\"headline\":\"A\",\"primary_text\":\"B\"}]}\n```",
			wantLen: 1,
		},
		{
			name:    "invalidJSON",
			content: "not json at all",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseVariants(tt.content)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseVariants() error: %v", err)
			}
			if len(got) != tt.wantLen {
				t.Errorf("got %d variants, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestParseVariant(t *testing.T) {
	got, err := parseVariant("```json\n{\"headline\":\"Learn Go\",\"primary_text\":\"Join today.\"}\n```")
	if err != nil {
		t.Fatalf("parseVariant() error: %v", err)
	}
	want := Variant{Headline: "Learn Go", PrimaryText: "Join today."}
	if got != want {
		t.Errorf("parseVariant() = %+v, want %+v", got, want)
	}

	if _, err := parseVariant("nope"); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
