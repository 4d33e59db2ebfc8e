package url

import "testing"

func TestSplitBang(t *testing.T) {
	tests := []struct {
		name             string
		input            string
		wantBang         string
		wantRemainder    string
		wantHasRemainder bool
		wantFound        bool
	}{
		{name: "bang with query", input: "!g golang", wantBang: "g", wantRemainder: "golang", wantHasRemainder: true, wantFound: true},
		{name: "multi-word query", input: "!ddg rust async await", wantBang: "ddg", wantRemainder: "rust async await", wantHasRemainder: true, wantFound: true},
		{name: "only one separator consumed", input: "!w  two spaces", wantBang: "w", wantRemainder: " two spaces", wantHasRemainder: true, wantFound: true},
		{name: "tab separator", input: "!g\tgo", wantBang: "g", wantRemainder: "go", wantHasRemainder: true, wantFound: true},
		{name: "multibyte separator", input: "!g\u00a0go", wantBang: "g", wantRemainder: "go", wantHasRemainder: true, wantFound: true},
		{name: "trailing space only", input: "!g ", wantBang: "g", wantRemainder: "", wantHasRemainder: true, wantFound: true},
		{name: "bang without separator", input: "!g", wantBang: "g", wantFound: true},
		{name: "lone bang", input: "!", wantBang: "", wantFound: true},
		{name: "empty keyword", input: "! query", wantBang: "", wantRemainder: "query", wantHasRemainder: true, wantFound: true},
		{name: "no bang prefix", input: "plain text"},
		{name: "bang not at start", input: "test !g"},
		{name: "empty input", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bang, remainder, hasRemainder, found := SplitBang(tt.input)
			if bang != tt.wantBang || remainder != tt.wantRemainder ||
				hasRemainder != tt.wantHasRemainder || found != tt.wantFound {
				t.Errorf("SplitBang(%q) = (%q, %q, %v, %v), want (%q, %q, %v, %v)",
					tt.input, bang, remainder, hasRemainder, found,
					tt.wantBang, tt.wantRemainder, tt.wantHasRemainder, tt.wantFound)
			}
		})
	}
}

func TestEscapeQuery(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "c++ vector", want: "c%2B%2B%20vector"},
		{input: "golang", want: "golang"},
		{input: "a-b_c.d~e", want: "a-b_c.d~e"},
		{input: "!g test", want: "%21g%20test"},
		{input: "a&b=c/d?e#f", want: "a%26b%3Dc%2Fd%3Fe%23f"},
		{input: "café", want: "caf%C3%A9"},
		{input: "100%", want: "100%25"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := EscapeQuery(tt.input); got != tt.want {
				t.Errorf("EscapeQuery(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatSearchURL(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		template string
		want     string
	}{
		{
			name:     "encodes reserved characters",
			query:    "c++ vector",
			template: "https://x/?q={searchTerms}",
			want:     "https://x/?q=c%2B%2B%20vector",
		},
		{
			name:     "placeholder in the middle",
			query:    "rust",
			template: "https://duckduckgo.com/ac/?q={searchTerms}&type=list",
			want:     "https://duckduckgo.com/ac/?q=rust&type=list",
		},
		{
			name:     "already encoded input is encoded again",
			query:    "c%2B%2B",
			template: "https://x/?q={searchTerms}",
			want:     "https://x/?q=c%252B%252B",
		},
		{
			name:     "missing placeholder returns template",
			query:    "anything",
			template: "https://x/static",
			want:     "https://x/static",
		},
		{
			name:     "empty query",
			query:    "",
			template: "https://x/?q={searchTerms}",
			want:     "https://x/?q=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSearchURL(tt.query, tt.template); got != tt.want {
				t.Errorf("FormatSearchURL(%q, %q) = %q, want %q", tt.query, tt.template, got, tt.want)
			}
		})
	}
}
