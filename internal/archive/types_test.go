package archive

import "testing"

func TestSplitTitle(t *testing.T) {
	cases := []struct {
		title     string
		namespace string
		base      string
	}{
		{"Cultures:Aurora", "Cultures", "Aurora"},
		{"Aurora", "", "Aurora"},
		{"Meta: State of the World", "Meta", "State of the World"},
		{":Orphan", "", "Orphan"},
		{"", "", ""},
	}
	for _, tc := range cases {
		ns, base := SplitTitle(tc.title)
		if ns != tc.namespace || base != tc.base {
			t.Errorf("SplitTitle(%q) = (%q, %q), want (%q, %q)",
				tc.title, ns, base, tc.namespace, tc.base)
		}
	}
}

func TestChronicleVisible(t *testing.T) {
	cases := []struct {
		name string
		c    Chronicle
		want bool
	}{
		{"complete with final", Chronicle{Status: ChronicleStatusComplete, FinalContent: "x"}, true},
		{"complete with draft only", Chronicle{Status: ChronicleStatusComplete, DraftContent: "x"}, true},
		{"complete but empty", Chronicle{Status: ChronicleStatusComplete}, false},
		{"pending with content", Chronicle{Status: ChronicleStatusPending, FinalContent: "x"}, false},
		{"failed", Chronicle{Status: ChronicleStatusFailed, FinalContent: "x"}, false},
	}
	for _, tc := range cases {
		if got := tc.c.Visible(); got != tc.want {
			t.Errorf("%s: Visible() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRenderedContentPrefersFinal(t *testing.T) {
	c := Chronicle{DraftContent: "draft", FinalContent: "final"}
	if got := c.RenderedContent(); got != "final" {
		t.Errorf("RenderedContent = %q", got)
	}
	c.FinalContent = "   "
	if got := c.RenderedContent(); got != "draft" {
		t.Errorf("RenderedContent with blank final = %q", got)
	}
}

func TestArticleVisible(t *testing.T) {
	if (StaticArticle{Status: ArticleStatusDraft}).Visible() {
		t.Error("draft should not be visible")
	}
	if !(StaticArticle{Status: ArticleStatusPublished}).Visible() {
		t.Error("published should be visible")
	}
}
