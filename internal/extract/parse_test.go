package extract

import "testing"

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain json", in: `{"a": 1}`, want: `{"a": 1}`},
		{name: "fenced json", in: "```json\n{\"a\": 1}\n```", want: `{"a": 1}`},
		{name: "fenced without language", in: "```\n{\"a\": 1}\n```", want: `{"a": 1}`},
		{name: "surrounding whitespace", in: "  \n{\"a\": 1}\n  ", want: `{"a": 1}`},
		{name: "stray backticks", in: "`{\"a\": 1}`", want: `{"a": 1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractJSON(tc.in); got != tc.want {
				t.Fatalf("extractJSON(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDecodeDocumentWeakTyping(t *testing.T) {
	var doc struct {
		Name  string `json:"name"`
		Score int    `json:"score"`
	}

	raw := "```json\n{\"name\": \"Python\", \"score\": \"85\"}\n```"
	if err := decodeDocument(raw, &doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Name != "Python" || doc.Score != 85 {
		t.Fatalf("unexpected decode result %+v", doc)
	}
}

func TestDecodeDocumentInvalidJSON(t *testing.T) {
	var doc struct{}
	if err := decodeDocument("not json at all", &doc); err == nil {
		t.Fatalf("expected error for invalid json")
	}
}
